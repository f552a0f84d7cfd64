package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazegen.yaml")
	yml := `generate:
  topology: polar
  rows: 8
  algorithm: wilson
  weave: crossings
  masks:
    - [0, 0, 1, 1]
logging:
  level: DEBUG
store:
  driver: postgres
  postgres:
    host: db.internal
    database: mazes
metrics:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Polar, cfg.Generate.Topology)
	assert.Equal(t, 8, cfg.Generate.Rows)
	assert.Equal(t, 10, cfg.Generate.Columns) // default kept
	assert.Equal(t, "wilson", cfg.Generate.Algorithm)
	assert.Equal(t, grid.WeaveCrossings, cfg.Generate.Weave)
	assert.Equal(t, [][4]int{{0, 0, 1, 1}}, cfg.Generate.Masks)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, store.DialectPostgres, cfg.Store.Driver)
	assert.Equal(t, "db.internal", cfg.Store.Postgres.Host)
	assert.Equal(t, 5432, cfg.Store.Postgres.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  topology: octagon\n"), 0o644))
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Generate.Rows = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
	assert.ErrorIs(t, cfg.Validate(), maze.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Store.SQLitePath = ""
	assert.ErrorIs(t, cfg.Validate(), store.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Metrics = config.Default().Metrics
	cfg.Metrics.Enabled, cfg.Metrics.TextfilePath = true, ""
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazegen.yaml")
	want := config.Default()
	want.Generate.Topology, want.Generate.Wrap = grid.Weave, grid.WrapCylinder
	require.NoError(t, want.Write(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
