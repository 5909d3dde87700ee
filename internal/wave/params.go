package wave

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// StabilityLimit is the largest Courant coefficient k for which the 2D
// five-point leapfrog scheme stays bounded (c*dt/dx <= 1/sqrt(2)).
const StabilityLimit = 0.5

var (
	// ErrInvalidDimensions rejects a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidSteps rejects a non-positive timestep count.
	ErrInvalidSteps = errors.New("timestep count must be positive")
	// ErrInvalidCoefficient rejects a speed, dt or dx that is negative,
	// zero where it must be positive, or not finite.
	ErrInvalidCoefficient = errors.New("invalid wave coefficient")
	// ErrUnstable rejects k above StabilityLimit unless AllowUnstable is set.
	ErrUnstable = errors.New("courant coefficient exceeds stability limit")
)

// Params fixes the shape and coefficients of a run.
type Params struct {
	Width  int
	Height int
	Steps  int

	Speed float32
	Dt    float32
	Dx    float32

	// AllowUnstable lets a run proceed with k above StabilityLimit. The
	// field then diverges.
	AllowUnstable bool
}

// Courant returns k = (speed*dt/dx)^2.
func (p Params) Courant() float32 {
	r := p.Speed * p.Dt / p.Dx
	return r * r
}

// Validate rejects parameters that must never reach a dispatch.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.Steps <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSteps, p.Steps)
	}
	// Written as !(x > 0) so NaN fails too.
	if !(p.Dx > 0) || math32.IsInf(p.Dx, 0) {
		return fmt.Errorf("%w: dx=%g", ErrInvalidCoefficient, p.Dx)
	}
	if !(p.Dt > 0) || math32.IsInf(p.Dt, 0) {
		return fmt.Errorf("%w: dt=%g", ErrInvalidCoefficient, p.Dt)
	}
	if !(p.Speed >= 0) || math32.IsInf(p.Speed, 0) {
		return fmt.Errorf("%w: speed=%g", ErrInvalidCoefficient, p.Speed)
	}
	k := p.Courant()
	if math32.IsNaN(k) || math32.IsInf(k, 0) {
		return fmt.Errorf("%w: k=%g", ErrInvalidCoefficient, k)
	}
	if k > StabilityLimit && !p.AllowUnstable {
		return fmt.Errorf("%w: k=%g > %g", ErrUnstable, k, StabilityLimit)
	}
	return nil
}
