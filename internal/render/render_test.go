package render

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	field := []float32{2, -0.5, 0, 7}
	elevation := []float32{-1, -1, -1, 3}
	dst := make([]byte, 16)
	require.NoError(t, Colorize(dst, field, elevation, 1))

	assert.Equal(t, []byte{255, 96, 0, 255}, dst[0:4], "clamped positive")
	assert.Equal(t, []byte{0, 48, 127, 255}, dst[4:8], "negative")
	assert.Equal(t, []byte{0, 0, 0, 255}, dst[8:12], "still water")
	assert.Equal(t, []byte{30, 40, 80, 255}, dst[12:16], "land")

	assert.Error(t, Colorize(make([]byte, 3), field, nil, 1))
	assert.Error(t, Colorize(dst, field, elevation[:2], 1))
	assert.NoError(t, Colorize(dst, field, nil, 0))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	field := make([]float32, 6*4)
	field[5] = 1
	require.NoError(t, WritePNG(&buf, 6, 4, field, nil, 1))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	r, _, _, _ := img.At(5, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	assert.Error(t, WritePNG(&buf, 5, 4, field, nil, 1))
}

func TestRawRoundTrip(t *testing.T) {
	field := []float32{0, 1.5, -2, float32(math.Inf(1))}
	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, field))
	assert.Equal(t, 16, buf.Len())
	assert.Equal(t, []byte{0, 0, 0xc0, 0x3f}, buf.Bytes()[4:8])
	got, err := ReadRaw(&buf, len(field))
	require.NoError(t, err)
	assert.Equal(t, field, got)

	_, err = ReadRaw(bytes.NewReader([]byte{1, 2}), 1)
	assert.Error(t, err)
}
