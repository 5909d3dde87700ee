package wave

import (
	"errors"
	"sync"
)

const defaultBandRows = 8

// poolBackend runs the stencil on persistent worker goroutines. Each worker
// owns a fixed set of row bands and is woken by a step counter.
type poolBackend struct {
	hostSlots
	opts BackendOptions

	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int
	quit    bool
	started bool
	masks   [][]tile

	// Published under mu before each step.
	roles Roles
	k     float32
}

func newPoolBackend(opts BackendOptions) *poolBackend {
	if opts.TileRows <= 0 {
		opts.TileRows = defaultBandRows
	}
	b := &poolBackend{opts: opts}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *poolBackend) Name() string { return BackendPool }

func (b *poolBackend) Load(g *Grid) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.hostSlots.Load(g); err != nil {
		return err
	}
	b.masks = assignBands(b.opts.workers(), g.Width, g.Height, b.opts.TileRows)
	if !b.started {
		b.started = true
		for i := range b.masks {
			go b.workerLoop(i)
		}
	}
	return nil
}

// workerLoop executes the bands assigned to worker index for every step.
func (b *poolBackend) workerLoop(index int) {
	lastStep := 0
	b.mu.Lock()
	for {
		for b.step == lastStep && !b.quit {
			b.cond.Wait()
		}
		if b.quit {
			b.mu.Unlock()
			return
		}
		lastStep = b.step
		bands := b.masks[index]
		roles, k := b.roles, b.k
		g := b.grid
		b.mu.Unlock()

		next := g.Slot(roles.Scratch)
		curr := g.Slot(roles.Current)
		prev := g.Slot(roles.Oldest)
		for _, t := range bands {
			stepTile(next, curr, prev, g.Elevation, g.Width, g.Height, k, t)
		}

		b.mu.Lock()
		b.pending--
		if b.pending == 0 {
			b.cond.Broadcast()
		}
	}
}

func (b *poolBackend) Step(roles Roles, k float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started || b.quit {
		return errors.New("worker pool not running")
	}
	b.roles = roles
	b.k = k
	b.pending = len(b.masks)
	b.step++
	b.cond.Broadcast()
	for b.pending > 0 {
		b.cond.Wait()
	}
	return nil
}

// Close stops the worker goroutines.
func (b *poolBackend) Close() {
	b.mu.Lock()
	b.quit = true
	b.cond.Broadcast()
	b.mu.Unlock()
}
