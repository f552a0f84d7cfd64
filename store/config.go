package store

import (
	"fmt"
	"time"
)

// Config selects and configures the archive database.
type Config struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver     DialectType    `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds connection and pool settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DefaultConfig archives into an SQLite file at path.
func DefaultConfig(path string) Config {
	return Config{
		Driver:     DialectSQLite,
		SQLitePath: path,
		Postgres:   DefaultPostgresConfig(),
	}
}

// DefaultPostgresConfig returns local defaults with a small pool.
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Host:            "localhost",
		Port:            5432,
		Database:        "lvmaze",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// DSN renders the lib/pq keyword/value connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Validate checks the fields the selected driver needs.
func (c Config) Validate() error {
	switch c.Driver {
	case "", DialectSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite_path is empty", ErrInvalidConfig)
		}
	case DialectPostgres:
		if c.Postgres.Host == "" || c.Postgres.Database == "" {
			return fmt.Errorf("%w: postgres host and database are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, c.Driver)
	}
	return nil
}
