package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.True(t, cfg.Jobs.ReconcileEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Jobs.ReconcileInterval)
	assert.Equal(t, 0.045, cfg.Simulator.WicketChance)
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crease.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: "9090"
jobs:
  reconcile_interval: 30s
simulator:
  six: 12
  wicket_chance: 0.06
`), 0o600))

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Jobs.ReconcileInterval)
	assert.Equal(t, 12.0, cfg.Simulator.Six)
	assert.Equal(t, 0.06, cfg.Simulator.WicketChance)
	assert.Equal(t, 35.0, cfg.Simulator.Dot, "untouched keys keep defaults")
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	t.Setenv("DB_DRIVER", "mysql")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JOBS_RECONCILE_INTERVAL_SECONDS", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("CREASE_FLAG", "false")
	v, err := getEnvAsBool("CREASE_FLAG", true)
	require.NoError(t, err)
	assert.False(t, v)

	t.Setenv("CREASE_FLAG", "nah")
	_, err = getEnvAsBool("CREASE_FLAG", true)
	assert.Error(t, err)
}
