package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackendByName(t *testing.T) {
	for _, name := range []string{"", BackendCPU, BackendPool} {
		b, err := NewBackend(name, BackendOptions{})
		require.NoError(t, err, name)
		assert.NotEmpty(t, b.Name())
		b.Close()
	}
	_, err := NewBackend("abacus", BackendOptions{})
	assert.ErrorContains(t, err, `unknown backend "abacus"`)
}

func TestHostReadChecksSize(t *testing.T) {
	b := newCPUBackend(BackendOptions{})
	require.Error(t, b.Read(0, make([]float32, 4)), "not loaded")
	g := NewGrid(3, 3)
	require.NoError(t, b.Load(g))
	assert.Error(t, b.Read(0, make([]float32, 4)))
	g.Slot(2)[4] = 9
	dst := make([]float32, 9)
	require.NoError(t, b.Read(2, dst))
	assert.Equal(t, float32(9), dst[4])
}

func TestPoolStopsOnClose(t *testing.T) {
	b := newPoolBackend(BackendOptions{Workers: 2})
	assert.Error(t, b.Step(Roles{0, 1, 2}, 0.1), "not started")
	g := NewGrid(6, 6)
	g.Seed(PointSplash(3, 3, 1))
	require.NoError(t, b.Load(g))
	require.NoError(t, b.Step(g.Roles(), 0.25))
	assert.Equal(t, float32(0.25), g.Scratch()[g.Index(2, 3)])
	b.Close()
	assert.Error(t, b.Step(g.Roles(), 0.25))
}

func TestWorkerCountsAgree(t *testing.T) {
	var want []float32
	for _, workers := range []int{1, 2, 5} {
		for _, name := range []string{BackendCPU, BackendPool} {
			b, err := NewBackend(name, BackendOptions{Workers: workers, TileRows: 2, TileCols: 3})
			require.NoError(t, err)
			p := Params{Width: 13, Height: 11, Steps: 25, Speed: 1, Dt: 0.6, Dx: 1}
			sim, err := New(p, ScatteredSplashes(13, 11, 9, 4), b)
			require.NoError(t, err)
			require.NoError(t, sim.Run())
			field, err := sim.Field()
			require.NoError(t, err)
			b.Close()
			if want == nil {
				want = field
				continue
			}
			require.Equal(t, want, field, "%s with %d workers", name, workers)
		}
	}
}
