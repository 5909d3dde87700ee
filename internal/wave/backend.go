package wave

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrBackendUnavailable is returned when a backend is not compiled in or
// has no usable device.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Backend is a parallel compute substrate for the stencil.
type Backend interface {
	Name() string
	// Load binds or uploads elevation and the three slots of g.
	Load(g *Grid) error
	// Step fills the scratch slot from current, oldest and elevation. It
	// returns only once every cell of the pass has been written.
	Step(roles Roles, k float32) error
	// Read copies slot s into dst.
	Read(slot int, dst []float32) error
	Close()
}

// BackendOptions tunes the CPU backends. Zero values pick defaults.
type BackendOptions struct {
	Workers  int
	TileRows int
	TileCols int
}

func (o BackendOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Backend names accepted by NewBackend.
const (
	BackendCPU    = "cpu"
	BackendPool   = "pool"
	BackendOpenCL = "opencl"
)

// NewBackend selects a backend by name.
func NewBackend(name string, opts BackendOptions) (Backend, error) {
	switch name {
	case BackendCPU, "":
		return newCPUBackend(opts), nil
	case BackendPool:
		return newPoolBackend(opts), nil
	case BackendOpenCL:
		return newOpenCLBackend()
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// hostSlots is the host memory shared by the CPU backends.
type hostSlots struct {
	grid *Grid
}

func (h *hostSlots) Load(g *Grid) error {
	if g == nil {
		return errors.New("nil grid")
	}
	h.grid = g
	return nil
}

func (h *hostSlots) Read(slot int, dst []float32) error {
	if h.grid == nil {
		return errors.New("backend not loaded")
	}
	src := h.grid.Slot(slot)
	if len(dst) != len(src) {
		return fmt.Errorf("readback buffer size %d, want %d", len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
