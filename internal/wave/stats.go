package wave

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"
)

// Summary describes the distribution of values in a field.
type Summary struct {
	Min, Max float64
	Mean     float64
	L2       float64
	MaxAbs   float64
}

// MaxAbs returns the largest magnitude in field, or NaN if any cell is NaN.
func MaxAbs(field []float32) float32 {
	var m float32
	for _, v := range field {
		if math32.IsNaN(v) {
			return v
		}
		if a := math32.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Summarize computes min, max, mean, L2 norm and peak magnitude of field.
func Summarize(field []float32) Summary {
	if len(field) == 0 {
		return Summary{}
	}
	vals := make([]float64, len(field))
	for i, v := range field {
		vals[i] = float64(v)
	}
	return Summary{
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   floats.Sum(vals) / float64(len(vals)),
		L2:     floats.Norm(vals, 2),
		MaxAbs: float64(MaxAbs(field)),
	}
}
