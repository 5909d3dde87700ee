package wave

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTileRows = 32
	defaultTileCols = 256
)

// cpuBackend fans each timestep out over 2D tiles and waits for all of them.
type cpuBackend struct {
	hostSlots
	opts  BackendOptions
	tiles []tile
}

func newCPUBackend(opts BackendOptions) *cpuBackend {
	if opts.TileRows <= 0 {
		opts.TileRows = defaultTileRows
	}
	if opts.TileCols <= 0 {
		opts.TileCols = defaultTileCols
	}
	return &cpuBackend{opts: opts}
}

func (b *cpuBackend) Name() string { return BackendCPU }

func (b *cpuBackend) Load(g *Grid) error {
	if err := b.hostSlots.Load(g); err != nil {
		return err
	}
	b.tiles = splitTiles(g.Width, g.Height, b.opts.TileRows, b.opts.TileCols)
	return nil
}

func (b *cpuBackend) Step(roles Roles, k float32) error {
	g := b.grid
	if g == nil {
		return errors.New("backend not loaded")
	}
	next := g.Slot(roles.Scratch)
	curr := g.Slot(roles.Current)
	prev := g.Slot(roles.Oldest)

	var eg errgroup.Group
	eg.SetLimit(b.opts.workers())
	for _, t := range b.tiles {
		eg.Go(func() error {
			stepTile(next, curr, prev, g.Elevation, g.Width, g.Height, k, t)
			return nil
		})
	}
	return eg.Wait()
}

func (b *cpuBackend) Close() {}
