package wave

// Cell evaluates the update rule for row i, column j from the grid's
// current and oldest buffers. It reads nothing but elevation, current and
// oldest, so cells may be evaluated in any order and concurrently.
func Cell(g *Grid, k float32, i, j int) float32 {
	return cellValue(g.Current(), g.Oldest(), g.Elevation, g.Width, g.Height, k, i, j)
}

func cellValue(curr, prev, elev []float32, width, height int, k float32, i, j int) float32 {
	idx := i*width + j
	if elev[idx] > 0 {
		return curr[idx]
	}
	if i == 0 || i == height-1 || j == 0 || j == width-1 {
		return 0
	}
	return leapfrog(curr, prev, idx, width, k)
}

// leapfrog is the interior water update. The explicit float32 conversions
// keep the compiler from fusing multiply-adds, so every backend computes
// the same bits.
func leapfrog(curr, prev []float32, idx, width int, k float32) float32 {
	c := curr[idx]
	lap := curr[idx-width] + curr[idx+width] + curr[idx-1] + curr[idx+1] - float32(4*c)
	return float32(2*c) - prev[idx] + float32(k*lap)
}

// tile is a half-open block of rows [r0, r1) and columns [c0, c1).
type tile struct {
	r0, r1 int
	c0, c1 int
}

// stepTile writes next for every cell of t.
func stepTile(next, curr, prev, elev []float32, width, height int, k float32, t tile) {
	lastRow := height - 1
	lastCol := width - 1
	for i := t.r0; i < t.r1; i++ {
		base := i * width
		edgeRow := i == 0 || i == lastRow
		for j := t.c0; j < t.c1; j++ {
			idx := base + j
			switch {
			case elev[idx] > 0:
				next[idx] = curr[idx]
			case edgeRow || j == 0 || j == lastCol:
				next[idx] = 0
			default:
				next[idx] = leapfrog(curr, prev, idx, width, k)
			}
		}
	}
}

// splitTiles cuts a width x height grid into tiles of at most rows x cols
// cells. Non-positive sizes mean the full extent.
func splitTiles(width, height, rows, cols int) []tile {
	if rows <= 0 || rows > height {
		rows = height
	}
	if cols <= 0 || cols > width {
		cols = width
	}
	tiles := make([]tile, 0, ((height+rows-1)/rows)*((width+cols-1)/cols))
	for r0 := 0; r0 < height; r0 += rows {
		r1 := min(r0+rows, height)
		for c0 := 0; c0 < width; c0 += cols {
			c1 := min(c0+cols, width)
			tiles = append(tiles, tile{r0: r0, r1: r1, c0: c0, c1: c1})
		}
	}
	return tiles
}

// assignBands distributes row bands across workers in round robin fashion.
func assignBands(workerCount, width, height, bandRows int) [][]tile {
	if workerCount < 1 {
		workerCount = 1
	}
	bands := splitTiles(width, height, bandRows, width)
	masks := make([][]tile, workerCount)
	for idx, b := range bands {
		w := idx % workerCount
		masks[w] = append(masks[w], b)
	}
	return masks
}
