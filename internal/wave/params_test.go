package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() Params {
	return Params{Width: 8, Height: 8, Steps: 1, Speed: 0.5, Dt: 1, Dx: 1}
}

func TestCourant(t *testing.T) {
	assert.Equal(t, float32(0.25), validParams().Courant())
	p := Params{Speed: 1, Dt: 0.1, Dx: 1}
	assert.InDelta(t, 0.01, p.Courant(), 1e-7)
}

func TestValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name   string
		mutate func(p *Params)
		want   error
	}{
		{"ok", func(p *Params) {}, nil},
		{"zero width", func(p *Params) { p.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(p *Params) { p.Height = -3 }, ErrInvalidDimensions},
		{"zero steps", func(p *Params) { p.Steps = 0 }, ErrInvalidSteps},
		{"zero dx", func(p *Params) { p.Dx = 0 }, ErrInvalidCoefficient},
		{"negative dt", func(p *Params) { p.Dt = -1 }, ErrInvalidCoefficient},
		{"negative speed", func(p *Params) { p.Speed = -1 }, ErrInvalidCoefficient},
		{"unstable", func(p *Params) { p.Speed = 1 }, ErrUnstable},
		{"unstable allowed", func(p *Params) { p.Speed = 1; p.AllowUnstable = true }, nil},
		{"nan speed", func(p *Params) { p.Speed = nan }, ErrInvalidCoefficient},
		{"nan dt", func(p *Params) { p.Dt = nan }, ErrInvalidCoefficient},
		{"nan dx", func(p *Params) { p.Dx = nan }, ErrInvalidCoefficient},
		{"inf dx", func(p *Params) { p.Dx = inf }, ErrInvalidCoefficient},
		{"inf dt", func(p *Params) { p.Dt = inf }, ErrInvalidCoefficient},
		{"inf speed", func(p *Params) { p.Speed = inf }, ErrInvalidCoefficient},
		{"nan speed unstable allowed", func(p *Params) { p.Speed = nan; p.AllowUnstable = true }, ErrInvalidCoefficient},
		{"overflowing k unstable allowed", func(p *Params) { p.Speed = 1e30; p.AllowUnstable = true }, ErrInvalidCoefficient},
		{"fine spacing", func(p *Params) { p.Dt = 0.5; p.Dx = 0.5 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
