package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wavesim/internal/wave"
)

// probe records the wave height at one cell after every timestep, like a
// tide gauge.
type probe struct {
	row, col int
	samples  []float32
}

// parseProbe parses "row,col".
func parseProbe(s string) (*probe, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("probe %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", s, err)
	}
	return &probe{row: row, col: col}, nil
}

// check rejects probes outside the grid.
func (p *probe) check(g *wave.Grid) error {
	if !g.InBounds(p.row, p.col) {
		return fmt.Errorf("probe (%d,%d) outside %dx%d grid", p.row, p.col, g.Width, g.Height)
	}
	return nil
}

// observe is a wave.Observer reading the host copy of the current field.
func (p *probe) observe(_ int, g *wave.Grid) {
	p.samples = append(p.samples, g.Current()[g.Index(p.row, p.col)])
}

// summary reports min, max, average and last sample.
func (p *probe) summary() string {
	if len(p.samples) == 0 {
		return fmt.Sprintf("probe (%d,%d): no samples", p.row, p.col)
	}
	minVal := p.samples[0]
	maxVal := p.samples[0]
	var sum float32
	for _, v := range p.samples {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}
	avg := sum / float32(len(p.samples))
	last := p.samples[len(p.samples)-1]
	return fmt.Sprintf("probe (%d,%d): %d samples (min %.4f max %.4f avg %.4f last %.4f)",
		p.row, p.col, len(p.samples), minVal, maxVal, avg, last)
}

// writeCSV writes "step,height" rows, steps counted from 1.
func (p *probe) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "height"}); err != nil {
		return err
	}
	for i, v := range p.samples {
		row := []string{strconv.Itoa(i + 1), strconv.FormatFloat(float64(v), 'g', -1, 32)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
