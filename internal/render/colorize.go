// Package render turns wave fields into pixels and files.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// landRGBA is the fixed slate colour of land cells.
var landRGBA = [4]byte{30, 40, 80, 255}

// Colorize writes RGBA bytes for field into dst. Positive heights shade
// towards red, negative towards blue, with full intensity at |v| >= scale.
// Cells whose elevation is above zero are drawn as land. elevation may be
// nil.
func Colorize(dst []byte, field, elevation []float32, scale float32) error {
	if len(dst) != len(field)*4 {
		return fmt.Errorf("pixel buffer size %d, want %d", len(dst), len(field)*4)
	}
	if elevation != nil && len(elevation) != len(field) {
		return fmt.Errorf("elevation size %d, want %d", len(elevation), len(field))
	}
	if scale <= 0 {
		scale = 1
	}
	for i, v := range field {
		base := i * 4
		if elevation != nil && elevation[i] > 0 {
			copy(dst[base:base+4], landRGBA[:])
			continue
		}
		n := v / scale
		if n > 1 {
			n = 1
		} else if n < -1 {
			n = -1
		}
		var r, g, b byte
		if n >= 0 {
			r = byte(n * 255)
			g = byte(n * 96)
		} else {
			b = byte(-n * 255)
			g = byte(-n * 96)
		}
		dst[base] = r
		dst[base+1] = g
		dst[base+2] = b
		dst[base+3] = 255
	}
	return nil
}

// WritePNG encodes field as a width x height PNG.
func WritePNG(w io.Writer, width, height int, field, elevation []float32, scale float32) error {
	if width*height != len(field) {
		return fmt.Errorf("field has %d cells, want %dx%d", len(field), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := Colorize(img.Pix, field, elevation, scale); err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
