// Package store archives generated mazes in SQLite (modernc.org/sqlite) or
// PostgreSQL (github.com/lib/pq). Each run keeps its summary numbers and
// the YAML of the config that produced it, so any run can be regenerated.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when no run has the requested id.
	ErrNotFound = errors.New("store: run not found")
	// ErrDuplicate is returned when a run id is already archived.
	ErrDuplicate = errors.New("store: duplicate run id")
	// ErrInvalidConfig reports an unusable Config.
	ErrInvalidConfig = errors.New("store: invalid config")
)

// Store is an open archive.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open connects according to cfg and creates the schema when missing.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dialect := NewDialect(cfg.Driver)

	var dsn string
	switch dialect.(type) {
	case *PostgresDialect:
		dsn = cfg.Postgres.DSN()
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create directory: %w", err)
			}
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dialect.DriverName(), err)
	}
	if _, ok := dialect.(*PostgresDialect); ok {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	} else {
		// One writer keeps SQLite pragmas applied to every statement.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}
	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: init %q: %w", stmt, err)
		}
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// Dialect reports the active SQL dialect.
func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at BIGINT NOT NULL,
			topology TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			seed BIGINT NOT NULL,
			rows_count INTEGER NOT NULL,
			columns_count INTEGER NOT NULL,
			cells INTEGER NOT NULL,
			links INTEGER NOT NULL,
			dead_ends INTEGER NOT NULL,
			diameter INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			exhausted INTEGER NOT NULL DEFAULT 0,
			duration_us BIGINT NOT NULL,
			config TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
	}
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("store: migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
