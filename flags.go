package main

import "flag"

// Command-line flags. Simulation and compute flags override the settings
// file only when given explicitly.
var (
	configFlag = flag.String("config", "settings.json", "JSON settings file; missing file means defaults")

	widthFlag  = flag.Int("width", defaultWidth, "grid width in cells")
	heightFlag = flag.Int("height", defaultHeight, "grid height in cells")
	stepsFlag  = flag.Int("steps", defaultSteps, "number of timesteps")
	speedFlag  = flag.Float64("speed", defaultSpeed, "wave speed")
	dtFlag     = flag.Float64("dt", defaultDt, "time increment")
	dxFlag     = flag.Float64("dx", defaultDx, "spatial increment")

	sceneFlag    = flag.String("scene", defaultScene, "initial condition: island, point or scatter")
	seedFlag     = flag.Int64("seed", defaultSeed, "random seed for the scatter scene")
	splashesFlag = flag.Int("splashes", defaultSplashes, "number of splashes in the scatter scene")

	backendFlag  = flag.String("backend", defaultBackend, "compute backend: cpu, pool or opencl")
	workersFlag  = flag.Int("workers", 0, "CPU worker count (0 = NumCPU)")
	tileRowsFlag = flag.Int("tile-rows", 0, "rows per CPU tile or band (0 = backend default)")
	tileColsFlag = flag.Int("tile-cols", 0, "columns per CPU tile (0 = backend default)")

	// allowUnstableFlag lets runs with k above the stability limit proceed.
	allowUnstableFlag = flag.Bool("allow-unstable", false, "run even when the Courant coefficient exceeds the stability limit")

	logEveryFlag = flag.Int("log-every", defaultLogEvery, "log progress every N steps (0 disables)")

	pngFlag      = flag.String("png", "", "write the final field as a PNG to this path")
	pngScaleFlag = flag.Float64("png-scale", defaultPNGScale, "wave height mapped to full colour intensity")
	rawFlag      = flag.String("raw", "", "write the final field as little-endian float32 to this path")

	probeFlag    = flag.String("probe", "", "record the height at cell \"row,col\" every step (host backends)")
	probeOutFlag = flag.String("probe-out", "", "write probe samples as CSV to this path")

	// viewFlag opens a window that animates the run instead of batch stepping.
	viewFlag          = flag.Bool("view", false, "animate the simulation in a window")
	stepsPerFrameFlag = flag.Int("steps-per-frame", defaultStepsPerFrame, "timesteps advanced per rendered frame with -view")

	cpuProfileFlag  = flag.String("cpuprofile", "", "write a CPU profile to this path")
	heapProfileFlag = flag.String("memprofile", "", "write a heap profile to this path at exit")
)

// applyFlags overlays explicitly set flags onto s.
func applyFlags(s *Settings) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			s.Simulation.Width = *widthFlag
		case "height":
			s.Simulation.Height = *heightFlag
		case "steps":
			s.Simulation.Steps = *stepsFlag
		case "speed":
			s.Simulation.Speed = float32(*speedFlag)
		case "dt":
			s.Simulation.Dt = float32(*dtFlag)
		case "dx":
			s.Simulation.Dx = float32(*dxFlag)
		case "scene":
			s.Simulation.Scene = *sceneFlag
		case "seed":
			s.Simulation.Seed = *seedFlag
		case "splashes":
			s.Simulation.Splashes = *splashesFlag
		case "backend":
			s.Compute.Backend = *backendFlag
		case "workers":
			s.Compute.Workers = *workersFlag
		case "tile-rows":
			s.Compute.TileRows = *tileRowsFlag
		case "tile-cols":
			s.Compute.TileCols = *tileColsFlag
		}
	})
}
