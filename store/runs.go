package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvmaze/maze"
	"gopkg.in/yaml.v3"
)

// Run is one archived generation.
type Run struct {
	ID        string
	CreatedAt time.Time
	Topology  string
	Algorithm string
	Seed      int64
	Rows      int
	Columns   int
	Cells     int
	Links     int
	DeadEnds  int
	Diameter  int
	Steps     int
	Exhausted bool
	Duration  time.Duration
	// Config is the YAML of the maze.Config that produced the run.
	Config string
}

// NewRun summarizes res under a fresh random id.
func NewRun(res *maze.Result) (Run, error) {
	if res == nil {
		return Run{}, errors.New("store: nil result")
	}
	raw, err := yaml.Marshal(res.Config)
	if err != nil {
		return Run{}, fmt.Errorf("store: encode config: %w", err)
	}
	return Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Topology:  res.Config.Topology.String(),
		Algorithm: res.Carve.Algorithm,
		Seed:      res.Config.Seed,
		Rows:      res.Config.Rows,
		Columns:   res.Grid.Cols(0),
		Cells:     res.Stats.Cells,
		Links:     res.Stats.Links,
		DeadEnds:  res.Stats.DeadEnds,
		Diameter:  res.Diameter.Length,
		Steps:     res.Carve.Steps,
		Exhausted: res.Carve.Exhausted,
		Duration:  res.Elapsed,
		Config:    string(raw),
	}, nil
}

// MazeConfig decodes the stored config.
func (r Run) MazeConfig() (maze.Config, error) {
	var cfg maze.Config
	if err := yaml.Unmarshal([]byte(r.Config), &cfg); err != nil {
		return maze.Config{}, fmt.Errorf("store: decode config of run %s: %w", r.ID, err)
	}
	return cfg, nil
}

const runColumns = `id, created_at, topology, algorithm, seed, rows_count, columns_count,
	cells, links, dead_ends, diameter, steps, exhausted, duration_us, config`

// Save archives r. An empty id is filled with a new UUID.
func (s *Store) Save(ctx context.Context, r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, s.qb.Build(`INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		r.ID, r.CreatedAt.UnixMicro(), r.Topology, r.Algorithm, r.Seed, r.Rows, r.Columns,
		r.Cells, r.Links, r.DeadEnds, r.Diameter, r.Steps, boolInt(r.Exhausted),
		r.Duration.Microseconds(), r.Config)
	if err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, r.ID)
		}
		return fmt.Errorf("store: save run %s: %w", r.ID, err)
	}
	return nil
}

// Get loads one run by id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, s.qb.Build(`SELECT `+runColumns+` FROM runs WHERE id = ?`), id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get run %s: %w", id, err)
	}
	return r, nil
}

// ListOptions filter List. Zero values mean no filter and a limit of 50.
type ListOptions struct {
	Algorithm string
	Topology  string
	Limit     int
}

// List returns runs newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Run, error) {
	var (
		where []string
		args  []any
	)
	if opts.Algorithm != "" {
		where = append(where, "algorithm = ?")
		args = append(args, opts.Algorithm)
	}
	if opts.Topology != "" {
		where = append(where, "topology = ?")
		args = append(args, opts.Topology)
	}
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	q := `SELECT ` + runColumns + ` FROM runs`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, opts.Limit)

	rows, err := s.db.QueryContext(ctx, s.qb.Build(q), args...)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list runs: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Delete removes a run; a missing id is ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.qb.Build(`DELETE FROM runs WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("store: delete run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete run %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		created   int64
		exhausted int
		micros    int64
	)
	err := sc.Scan(&r.ID, &created, &r.Topology, &r.Algorithm, &r.Seed, &r.Rows, &r.Columns,
		&r.Cells, &r.Links, &r.DeadEnds, &r.Diameter, &r.Steps, &exhausted, &micros, &r.Config)
	if err != nil {
		return Run{}, err
	}
	r.CreatedAt = time.UnixMicro(created).UTC()
	r.Exhausted = exhausted != 0
	r.Duration = time.Duration(micros) * time.Microsecond
	return r, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
