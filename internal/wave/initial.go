package wave

import "math/rand"

const (
	seaFloor       = -100
	landHeight     = 100
	splashHeight   = 10
	splashRadius   = 2
	islandCenter   = 400.0 / 512
	islandRadius   = 50.0 / 512
	ridgeMinLen    = 4
	ridgeMaxLen    = 24
	scatterRidges  = 6
	scatterMaxDisc = 3
)

// Offset is a cell displacement relative to a centre.
type Offset struct {
	DI, DJ int
}

// Disc returns the offsets of every cell within radius of the origin.
func Disc(radius int) []Offset {
	footprint := make([]Offset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for di := -radius; di <= radius; di++ {
		for dj := -radius; dj <= radius; dj++ {
			if di*di+dj*dj <= r2 {
				footprint = append(footprint, Offset{DI: di, DJ: dj})
			}
		}
	}
	return footprint
}

// IslandSplash is the default scene: deep water, one round island in the
// lower right and a small splash at the centre of the grid.
func IslandSplash(width, height int) InitFunc {
	ci, cj := height/2, width/2
	li := int(islandCenter * float64(height))
	lj := int(islandCenter * float64(width))
	lr := int(islandRadius * float64(min(width, height)))
	return func(i, j int) (float32, float32) {
		elevation := float32(seaFloor)
		var displacement float32
		if sq(i-ci)+sq(j-cj) <= splashRadius*splashRadius {
			displacement = splashHeight
		}
		if sq(i-li)+sq(j-lj) <= lr*lr {
			elevation = landHeight
		}
		return elevation, displacement
	}
}

// PointSplash is all water with a single displaced cell at (pi, pj).
func PointSplash(pi, pj int, amplitude float32) InitFunc {
	return func(i, j int) (float32, float32) {
		if i == pi && j == pj {
			return -1, amplitude
		}
		return -1, 0
	}
}

// ScatteredSplashes lays out count splash discs and a few straight land
// ridges, deterministically from seed. width and height must match the
// grid the function seeds.
func ScatteredSplashes(width, height int, seed int64, count int) InitFunc {
	rng := rand.New(rand.NewSource(seed))
	elevation := make([]float32, width*height)
	displacement := make([]float32, width*height)
	for i := range elevation {
		elevation[i] = seaFloor
	}
	set := func(dst []float32, i, j int, v float32) {
		if i > 0 && i < height-1 && j > 0 && j < width-1 {
			dst[i*width+j] = v
		}
	}

	if width > 4 && height > 4 {
		for r := 0; r < scatterRidges; r++ {
			length := ridgeMinLen + rng.Intn(ridgeMaxLen-ridgeMinLen+1)
			i := rng.Intn(height-4) + 2
			j := rng.Intn(width-4) + 2
			di, dj := 0, 1
			if rng.Intn(2) == 0 {
				di, dj = 1, 0
			}
			for l := 0; l < length; l++ {
				set(elevation, i, j, landHeight)
				i += di
				j += dj
			}
		}
	}
	for s := 0; s < count; s++ {
		ci := rng.Intn(height)
		cj := rng.Intn(width)
		amp := float32(rng.Float64()*2 - 1)
		for _, o := range Disc(rng.Intn(scatterMaxDisc + 1)) {
			set(displacement, ci+o.DI, cj+o.DJ, amp)
		}
	}

	return func(i, j int) (float32, float32) {
		idx := i*width + j
		return elevation[idx], displacement[idx]
	}
}

func sq(v int) int { return v * v }
