package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "runs.db")
	s, err := store.Open(context.Background(), store.DefaultConfig(path))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func generatedRun(t *testing.T, algorithm string, seed int64) store.Run {
	t.Helper()
	cfg := maze.DefaultConfig()
	cfg.Rows, cfg.Columns = 6, 6
	cfg.Algorithm, cfg.Seed = algorithm, seed
	res, err := maze.Generate(cfg, nil)
	require.NoError(t, err)
	run, err := store.NewRun(res)
	require.NoError(t, err)
	return run
}

func TestSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	run := generatedRun(t, "wilson", 7)
	require.NoError(t, s.Save(ctx, &run))

	got, err := s.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "wilson", got.Algorithm)
	assert.Equal(t, "square", got.Topology)
	assert.Equal(t, 36, got.Cells)
	assert.Equal(t, 35, got.Links)
	assert.Equal(t, run.CreatedAt.Truncate(time.Microsecond), got.CreatedAt)
	assert.Equal(t, run.Duration.Truncate(time.Microsecond), got.Duration)

	cfg, err := got.MazeConfig()
	require.NoError(t, err)
	res, err := maze.Generate(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, got.Diameter, res.Diameter.Length)
}

func TestGetMissing(t *testing.T) {
	_, err := openTemp(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveDuplicate(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	run := generatedRun(t, "prim", 1)
	require.NoError(t, s.Save(ctx, &run))
	assert.ErrorIs(t, s.Save(ctx, &run), store.ErrDuplicate)
}

func TestSaveFillsID(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	run := generatedRun(t, "prim", 1)
	run.ID = ""
	require.NoError(t, s.Save(ctx, &run))
	assert.Len(t, run.ID, 36)
}

func TestListFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for k, algo := range []string{"wilson", "kruskal", "wilson", "sidewinder"} {
		run := generatedRun(t, algo, int64(k+1))
		run.CreatedAt = base.Add(time.Duration(k) * time.Minute)
		require.NoError(t, s.Save(ctx, &run))
	}

	all, err := s.List(ctx, store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "sidewinder", all[0].Algorithm)
	assert.Equal(t, int64(1), all[3].Seed)

	wilson, err := s.List(ctx, store.ListOptions{Algorithm: "wilson"})
	require.NoError(t, err)
	require.Len(t, wilson, 2)
	assert.Equal(t, int64(3), wilson[0].Seed)

	limited, err := s.List(ctx, store.ListOptions{Limit: 1, Topology: "square"})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	run := generatedRun(t, "aldous_broder", 2)
	require.NoError(t, s.Save(ctx, &run))
	require.NoError(t, s.Delete(ctx, run.ID))
	assert.ErrorIs(t, s.Delete(ctx, run.ID), store.ErrNotFound)
	_, err := s.Get(ctx, run.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReopenKeepsRuns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := store.Open(ctx, store.DefaultConfig(path))
	require.NoError(t, err)
	run := generatedRun(t, "hunt_and_kill", 4)
	require.NoError(t, s.Save(ctx, &run))
	require.NoError(t, s.Close())

	s, err = store.Open(ctx, store.DefaultConfig(path))
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "hunt_and_kill", got.Algorithm)
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, store.Config{}.Validate(), store.ErrInvalidConfig)
	assert.ErrorIs(t, store.Config{Driver: "oracle", SQLitePath: "x"}.Validate(), store.ErrInvalidConfig)
	pg := store.Config{Driver: store.DialectPostgres}
	assert.ErrorIs(t, pg.Validate(), store.ErrInvalidConfig)
	pg.Postgres = store.DefaultPostgresConfig()
	assert.NoError(t, pg.Validate())
	_, err := store.Open(context.Background(), store.Config{})
	assert.ErrorIs(t, err, store.ErrInvalidConfig)
}
