package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavesim/internal/wave"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)

	p := s.params(false)
	assert.Equal(t, 512, p.Width)
	assert.Equal(t, 2500, p.Steps)
	assert.InDelta(t, 0.01, p.Courant(), 1e-7)
	require.NoError(t, p.Validate())
}

func TestLoadSettingsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	raw := `{"simulation": {"width": 64, "steps": 10, "scene": "scatter"}, "compute": {"backend": "pool", "workers": 3}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	s, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 64, s.Simulation.Width)
	assert.Equal(t, defaultHeight, s.Simulation.Height, "unset fields keep defaults")
	assert.Equal(t, 10, s.Simulation.Steps)
	assert.Equal(t, sceneScatter, s.Simulation.Scene)
	assert.Equal(t, wave.BackendPool, s.Compute.Backend)
	assert.Equal(t, wave.BackendOptions{Workers: 3}, s.backendOptions())
}

func TestLoadSettingsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err := loadSettings(path)
	assert.ErrorContains(t, err, "parsing")
}

func TestInitFuncScenes(t *testing.T) {
	s := defaultSettings()
	s.Simulation.Width, s.Simulation.Height = 20, 10
	for _, scene := range []string{sceneIsland, scenePoint, sceneScatter} {
		s.Simulation.Scene = scene
		initial, err := s.initFunc()
		require.NoError(t, err, scene)
		require.NotNil(t, initial)
	}

	s.Simulation.Scene = scenePoint
	initial, err := s.initFunc()
	require.NoError(t, err)
	_, d := initial(5, 10)
	assert.Equal(t, float32(1), d)

	s.Simulation.Scene = "tsunami"
	_, err = s.initFunc()
	assert.ErrorContains(t, err, `unknown scene "tsunami"`)
}

func TestApplyFlagsOnlyExplicit(t *testing.T) {
	require.NoError(t, flag.Set("steps", "7"))
	require.NoError(t, flag.Set("backend", "pool"))
	t.Cleanup(func() {
		_ = flag.Set("steps", "2500")
		_ = flag.Set("backend", "cpu")
	})

	s := defaultSettings()
	s.Simulation.Width = 99
	applyFlags(&s)
	assert.Equal(t, 7, s.Simulation.Steps)
	assert.Equal(t, wave.BackendPool, s.Compute.Backend)
	assert.Equal(t, 99, s.Simulation.Width, "unset flag keeps settings value")
}
