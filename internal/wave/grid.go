package wave

// Slot roles. Each of the three wave buffers is bound to exactly one role
// at a time; the binding rotates every timestep.
const (
	roleOldest = iota
	roleCurrent
	roleScratch
)

// Roles maps the logical roles of a timestep onto slot indices of a Grid.
type Roles struct {
	Oldest  int
	Current int
	Scratch int
}

// Grid stores the elevation map and the three wave buffers required by the
// leapfrog solver. All fields are sized Width*Height, row-major.
type Grid struct {
	Width, Height int
	Elevation     []float32
	slots         [3][]float32
	roles         [3]int
}

// InitFunc returns the elevation and the initial displacement of cell (i, j),
// where i is the row and j the column.
type InitFunc func(i, j int) (elevation, displacement float32)

// NewGrid allocates a Grid with properly sized buffers. The slots start out
// bound oldest=0, current=1, scratch=2.
func NewGrid(width, height int) *Grid {
	size := width * height
	g := &Grid{
		Width:     width,
		Height:    height,
		Elevation: make([]float32, size),
	}
	for i := range g.slots {
		g.slots[i] = make([]float32, size)
	}
	g.roles = [3]int{0, 1, 2}
	return g
}

// Seed fills elevation from init and seeds both the oldest and current
// buffers with the same displacement, so the first step starts from rest.
func (g *Grid) Seed(init InitFunc) {
	oldest := g.Oldest()
	current := g.Current()
	scratch := g.Scratch()
	for i := 0; i < g.Height; i++ {
		base := i * g.Width
		for j := 0; j < g.Width; j++ {
			e, d := init(i, j)
			idx := base + j
			g.Elevation[idx] = e
			oldest[idx] = d
			current[idx] = d
			scratch[idx] = 0
		}
	}
}

// Index returns the linear index of row i, column j.
func (g *Grid) Index(i, j int) int {
	return i*g.Width + j
}

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Height && j >= 0 && j < g.Width
}

// IsLand reports whether the cell at idx is land.
func (g *Grid) IsLand(idx int) bool {
	return g.Elevation[idx] > 0
}

// IsBoundary reports whether (i, j) lies on the outer edge of the grid.
func (g *Grid) IsBoundary(i, j int) bool {
	return i == 0 || i == g.Height-1 || j == 0 || j == g.Width-1
}

// Roles returns the current slot binding.
func (g *Grid) Roles() Roles {
	return Roles{
		Oldest:  g.roles[roleOldest],
		Current: g.roles[roleCurrent],
		Scratch: g.roles[roleScratch],
	}
}

// Slot returns the storage bound to slot index s.
func (g *Grid) Slot(s int) []float32 {
	return g.slots[s]
}

// Oldest returns the slot holding timestep t-1.
func (g *Grid) Oldest() []float32 { return g.slots[g.roles[roleOldest]] }

// Current returns the slot holding timestep t, the latest completed field.
func (g *Grid) Current() []float32 { return g.slots[g.roles[roleCurrent]] }

// Scratch returns the slot the next step writes into.
func (g *Grid) Scratch() []float32 { return g.slots[g.roles[roleScratch]] }

// Rotate advances the bindings one timestep: scratch becomes current,
// current becomes oldest and the old oldest is reused as scratch. Buffer
// contents are never copied.
func (g *Grid) Rotate() {
	g.roles[roleOldest], g.roles[roleCurrent], g.roles[roleScratch] =
		g.roles[roleCurrent], g.roles[roleScratch], g.roles[roleOldest]
}
