package render

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteRaw dumps field as little-endian float32 values in row-major order.
func WriteRaw(w io.Writer, field []float32) error {
	if err := binary.Write(w, binary.LittleEndian, field); err != nil {
		return fmt.Errorf("writing raw field: %w", err)
	}
	return nil
}

// ReadRaw reads n float32 values written by WriteRaw.
func ReadRaw(r io.Reader, n int) ([]float32, error) {
	field := make([]float32, n)
	if err := binary.Read(r, binary.LittleEndian, field); err != nil {
		return nil, fmt.Errorf("reading raw field: %w", err)
	}
	return field, nil
}
