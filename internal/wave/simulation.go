package wave

import (
	"errors"
	"fmt"
)

// Observer is called after every completed timestep with the number of
// steps done so far. The grid's current role holds the host copy only for
// host backends; device backends must be read back through Field.
type Observer func(step int, g *Grid)

// Simulation drives a Backend through a fixed number of timesteps.
type Simulation struct {
	params  Params
	k       float32
	grid    *Grid
	backend Backend
	done    int
	err     error

	Observer Observer
}

// New validates p, seeds a grid from initial and loads it into b. Nothing is
// dispatched if the parameters are rejected.
func New(p Params, initial InitFunc, b Backend) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if initial == nil {
		return nil, errors.New("nil initial condition")
	}
	if b == nil {
		return nil, &StageError{Stage: StageInit, Err: ErrBackendUnavailable}
	}
	g := NewGrid(p.Width, p.Height)
	g.Seed(initial)
	if err := b.Load(g); err != nil {
		return nil, &StageError{Stage: StageInit, Err: err}
	}
	return &Simulation{
		params:  p,
		k:       p.Courant(),
		grid:    g,
		backend: b,
	}, nil
}

// Params returns the run's parameters.
func (s *Simulation) Params() Params { return s.params }

// Grid exposes the host-side grid state.
func (s *Simulation) Grid() *Grid { return s.grid }

// Done returns the number of completed timesteps.
func (s *Simulation) Done() int { return s.done }

// Complete reports whether all Params.Steps timesteps have run.
func (s *Simulation) Complete() bool { return s.done >= s.params.Steps }

// Backend returns the backend the simulation dispatches to.
func (s *Simulation) Backend() Backend { return s.backend }

// Step runs one barrier-synchronised pass over every cell and rotates the
// buffer roles. After the last timestep it returns ErrComplete and
// dispatches nothing.
func (s *Simulation) Step() error {
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrFailed, s.err)
	}
	if s.Complete() {
		return fmt.Errorf("%w: %d/%d steps", ErrComplete, s.done, s.params.Steps)
	}
	if err := s.backend.Step(s.grid.Roles(), s.k); err != nil {
		s.err = &StageError{Stage: StageDispatch, Step: s.done + 1, Err: err}
		return s.err
	}
	s.grid.Rotate()
	s.done++
	if s.Observer != nil {
		s.Observer(s.done, s.grid)
	}
	return nil
}

// Run executes the remaining timesteps up to Params.Steps.
func (s *Simulation) Run() error {
	for !s.Complete() {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Field reads back the field bound to the current role as a flat row-major
// slice of Width*Height values.
func (s *Simulation) Field() ([]float32, error) {
	if s.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailed, s.err)
	}
	out := make([]float32, s.params.Width*s.params.Height)
	if err := s.backend.Read(s.grid.Roles().Current, out); err != nil {
		s.err = &StageError{Stage: StageReadback, Step: s.done, Err: err}
		return nil, s.err
	}
	return out, nil
}
