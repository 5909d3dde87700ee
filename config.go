package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"wavesim/internal/wave"
)

// Default run configuration. The default scene is a 512x512
// basin, a splash at the centre and a round island in the lower right.
const (
	defaultWidth         = 512
	defaultHeight        = 512
	defaultSteps         = 2500
	defaultSpeed         = 1.0
	defaultDt            = 0.1
	defaultDx            = 1.0
	defaultBackend       = wave.BackendCPU
	defaultScene         = sceneIsland
	defaultSeed          = 1
	defaultSplashes      = 12
	defaultLogEvery      = 500
	defaultPNGScale      = 1.0
	defaultStepsPerFrame = 4
	windowScale          = 2
)

// Scene names accepted by -scene.
const (
	sceneIsland  = "island"
	scenePoint   = "point"
	sceneScatter = "scatter"
)

// Settings is the optional JSON settings file. Zero fields keep defaults.
type Settings struct {
	Simulation SimulationSettings `json:"simulation"`
	Compute    ComputeSettings    `json:"compute"`
}

// SimulationSettings describes the grid, coefficients and initial scene.
type SimulationSettings struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Steps    int     `json:"steps"`
	Speed    float32 `json:"speed"`
	Dt       float32 `json:"dt"`
	Dx       float32 `json:"dx"`
	Scene    string  `json:"scene"`
	Seed     int64   `json:"seed"`
	Splashes int     `json:"splashes"`
}

// ComputeSettings selects the backend and its parallelism.
type ComputeSettings struct {
	Backend  string `json:"backend"`
	Workers  int    `json:"workers"`
	TileRows int    `json:"tileRows"`
	TileCols int    `json:"tileCols"`
}

func defaultSettings() Settings {
	return Settings{
		Simulation: SimulationSettings{
			Width:    defaultWidth,
			Height:   defaultHeight,
			Steps:    defaultSteps,
			Speed:    defaultSpeed,
			Dt:       defaultDt,
			Dx:       defaultDx,
			Scene:    defaultScene,
			Seed:     defaultSeed,
			Splashes: defaultSplashes,
		},
		Compute: ComputeSettings{
			Backend: defaultBackend,
		},
	}
}

// loadSettings returns defaults overlaid with the JSON file at path. A
// missing file is not an error.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// params converts the simulation settings into solver parameters.
func (s Settings) params(allowUnstable bool) wave.Params {
	return wave.Params{
		Width:         s.Simulation.Width,
		Height:        s.Simulation.Height,
		Steps:         s.Simulation.Steps,
		Speed:         s.Simulation.Speed,
		Dt:            s.Simulation.Dt,
		Dx:            s.Simulation.Dx,
		AllowUnstable: allowUnstable,
	}
}

func (s Settings) backendOptions() wave.BackendOptions {
	return wave.BackendOptions{
		Workers:  s.Compute.Workers,
		TileRows: s.Compute.TileRows,
		TileCols: s.Compute.TileCols,
	}
}

// initFunc builds the initial condition named by the scene setting.
func (s Settings) initFunc() (wave.InitFunc, error) {
	w, h := s.Simulation.Width, s.Simulation.Height
	switch s.Simulation.Scene {
	case sceneIsland:
		return wave.IslandSplash(w, h), nil
	case scenePoint:
		return wave.PointSplash(h/2, w/2, 1), nil
	case sceneScatter:
		return wave.ScatteredSplashes(w, h, s.Simulation.Seed, s.Simulation.Splashes), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", s.Simulation.Scene)
	}
}
