package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisc(t *testing.T) {
	assert.Equal(t, []Offset{{0, 0}}, Disc(0))
	assert.Len(t, Disc(1), 5)
	assert.Len(t, Disc(2), 13)
}

func TestIslandSplashLayout(t *testing.T) {
	initial := IslandSplash(512, 512)
	e, d := initial(256, 256)
	assert.Equal(t, float32(-100), e)
	assert.Equal(t, float32(10), d)
	_, d = initial(256, 258)
	assert.Equal(t, float32(10), d)
	_, d = initial(256, 259)
	assert.Zero(t, d)

	e, _ = initial(400, 400)
	assert.Equal(t, float32(100), e)
	e, _ = initial(400, 450)
	assert.Equal(t, float32(100), e)
	e, _ = initial(400, 451)
	assert.Equal(t, float32(-100), e)
}

func TestScatteredSplashesSeeded(t *testing.T) {
	sample := func(seed int64) []float32 {
		initial := ScatteredSplashes(20, 20, seed, 8)
		out := make([]float32, 0, 800)
		for i := 0; i < 20; i++ {
			for j := 0; j < 20; j++ {
				e, d := initial(i, j)
				out = append(out, e, d)
			}
		}
		return out
	}
	assert.Equal(t, sample(1), sample(1))
	assert.NotEqual(t, sample(1), sample(2))

	initial := ScatteredSplashes(20, 20, 1, 8)
	for j := 0; j < 20; j++ {
		e, d := initial(0, j)
		assert.Equal(t, float32(-100), e, "edges stay water")
		assert.Zero(t, d)
	}
}
