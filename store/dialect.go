package store

import (
	"fmt"
	"strings"
)

// Dialect hides the SQL differences between SQLite and PostgreSQL.
type Dialect interface {
	// DriverName is the database/sql driver: "sqlite" or "postgres".
	DriverName() string
	// Placeholder returns the parameter marker for a 1-based position.
	Placeholder(position int) string
	// InitStatements run once per connection pool, before migrations.
	InitStatements() []string
	// IsDuplicateKeyError reports a unique-constraint violation.
	IsDuplicateKeyError(err error) bool
}

// DialectType names a Dialect in configuration.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect returns the Dialect for t; anything unknown falls back to SQLite.
func NewDialect(t DialectType) Dialect {
	if t == DialectPostgres {
		return &PostgresDialect{}
	}
	return &SQLiteDialect{}
}

// SQLiteDialect targets modernc.org/sqlite.
type SQLiteDialect struct{}

func (*SQLiteDialect) DriverName() string { return "sqlite" }
func (*SQLiteDialect) Placeholder(int) string { return "?" }
func (*SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

func (*SQLiteDialect) IsDuplicateKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// PostgresDialect targets github.com/lib/pq.
type PostgresDialect struct{}

func (*PostgresDialect) DriverName() string { return "postgres" }
func (*PostgresDialect) Placeholder(position int) string { return fmt.Sprintf("$%d", position) }
func (*PostgresDialect) InitStatements() []string { return nil }

// IsDuplicateKeyError matches SQLSTATE 23505 (unique_violation).
func (*PostgresDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "23505")
}

// QueryBuilder rewrites "?" placeholders for a Dialect.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder binds a QueryBuilder to d.
func NewQueryBuilder(d Dialect) *QueryBuilder { return &QueryBuilder{dialect: d} }

// Build converts every "?" in query into the dialect's placeholder.
//
//	input:    "SELECT id FROM runs WHERE seed = ? AND algorithm = ?"
//	Postgres: "SELECT id FROM runs WHERE seed = $1 AND algorithm = $2"
func (qb *QueryBuilder) Build(query string) string {
	if _, ok := qb.dialect.(*SQLiteDialect); ok {
		return query
	}
	var sb strings.Builder
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			sb.WriteString(qb.dialect.Placeholder(position))
			position++
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}
