package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"wavesim/internal/render"
	"wavesim/internal/wave"
)

// viewer animates a Simulation, advancing a few timesteps per tick until
// the configured step count is reached.
type viewer struct {
	sim           *wave.Simulation
	stepsPerFrame int
	scale         float32
	width, height int

	field  []float32
	pixels []byte

	lastSimDuration time.Duration
}

func newViewer(sim *wave.Simulation, stepsPerFrame int, scale float32) *viewer {
	p := sim.Params()
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	return &viewer{
		sim:           sim,
		stepsPerFrame: stepsPerFrame,
		scale:         scale,
		width:         p.Width,
		height:        p.Height,
		pixels:        make([]byte, p.Width*p.Height*4),
	}
}

// Update advances the simulation and refreshes the field readback.
func (v *viewer) Update() error {
	total := v.sim.Params().Steps
	if v.field != nil && v.sim.Done() >= total {
		return nil
	}
	simStart := time.Now()
	for i := 0; i < v.stepsPerFrame && v.sim.Done() < total; i++ {
		if err := v.sim.Step(); err != nil {
			return err
		}
	}
	field, err := v.sim.Field()
	if err != nil {
		return err
	}
	v.field = field
	v.lastSimDuration = time.Since(simStart)
	return render.Colorize(v.pixels, v.field, v.sim.Grid().Elevation, v.scale)
}

// Draw renders the latest field and a status line.
func (v *viewer) Draw(screen *ebiten.Image) {
	if v.field != nil {
		screen.WritePixels(v.pixels)
	}
	msg := fmt.Sprintf("Step %d/%d (%s)\nTPS: %.1f\nSim: %.2f ms",
		v.sim.Done(), v.sim.Params().Steps, v.sim.Backend().Name(),
		ebiten.ActualTPS(), v.lastSimDuration.Seconds()*1000)
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the logical screen size used by Ebiten.
func (v *viewer) Layout(_, _ int) (int, int) { return v.width, v.height }

// runViewer opens the window and blocks until it is closed.
func runViewer(sim *wave.Simulation, stepsPerFrame int, scale float32) error {
	p := sim.Params()
	ebiten.SetWindowSize(p.Width*windowScale, p.Height*windowScale)
	ebiten.SetWindowTitle("wavesim")
	return ebiten.RunGame(newViewer(sim, stepsPerFrame, scale))
}
