package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	data := []byte("controls:\n  damping_factor: 0.1\nassets:\n  root: /srv/pool\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), cfg.Controls.DampingFactor)
	assert.Equal(t, "/srv/pool", cfg.Assets.Root)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Controls.EnableDamping)
	assert.Equal(t, float32(75), cfg.Camera.Fov)
}

func TestLoadInvalidFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pool.yaml")
	want := Default()
	want.Debug.ShowFPS = true
	want.Camera.Position = [3]float32{1, 2, 3}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("POOL_ASSETS_DIR", "/tmp/assets")
	t.Setenv("POOL_TARGET_FPS", "144")
	t.Setenv("POOL_SHOW_FPS", "true")
	t.Setenv("POOL_LOADER_WORKERS", "not-a-number")

	cfg := ApplyEnv(Default())
	assert.Equal(t, "/tmp/assets", cfg.Assets.Root)
	assert.Equal(t, 144, cfg.Window.TargetFPS)
	assert.True(t, cfg.Debug.ShowFPS)
	assert.Equal(t, 4, cfg.Assets.Workers)
}
