package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float32{3, -4, 0, 1})
	assert.Equal(t, -4.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.Equal(t, 0.0, s.Mean)
	assert.InDelta(t, 5.0990195, s.L2, 1e-6)
	assert.Equal(t, 4.0, s.MaxAbs)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestMaxAbs(t *testing.T) {
	assert.Equal(t, float32(2.5), MaxAbs([]float32{1, -2.5, 2}))
	assert.Zero(t, MaxAbs(nil))

	nan := float32(math.NaN())
	assert.True(t, math.IsNaN(float64(MaxAbs([]float32{nan, nan}))), "all NaN")
	assert.True(t, math.IsNaN(float64(MaxAbs([]float32{1, nan, -3}))), "one NaN")
	assert.True(t, math.IsInf(float64(MaxAbs([]float32{1, float32(math.Inf(-1))})), 1))
	assert.True(t, math.IsNaN(Summarize([]float32{0, nan}).MaxAbs))
}
