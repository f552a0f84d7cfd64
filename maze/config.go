// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// config.go — the host-facing generation request and its validation.

package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/grid"
)

// ErrInvalidConfig wraps every rejection of a Config.
var ErrInvalidConfig = errors.New("maze: invalid config")

// Config is everything a host supplies to generate one maze.
type Config struct {
	Topology grid.Topology `yaml:"topology" json:"topology"`
	Rows     int           `yaml:"rows" json:"rows"`
	Columns  int           `yaml:"columns" json:"columns"`

	// Levels stacks square grids; 0 keeps the single default level.
	Levels int       `yaml:"levels" json:"levels"`
	Wrap   grid.Wrap `yaml:"wrap" json:"wrap"`

	// Masks are [x0, y0, x1, y1] inclusive rectangles excluded up front.
	Masks    [][4]int           `yaml:"masks,omitempty" json:"masks,omitempty"`
	CellSize float64            `yaml:"cell_size" json:"cell_size"`
	Weave    grid.WeaveStrategy `yaml:"weave" json:"weave"`

	Algorithm      string  `yaml:"algorithm" json:"algorithm"`
	Seed           int64   `yaml:"seed" json:"seed"`
	MaxSteps       int     `yaml:"max_steps" json:"max_steps"`
	Bias           float64 `yaml:"bias" json:"bias"`
	RelativeWeight float64 `yaml:"relative_weight" json:"relative_weight"`

	// Braid is the share of dead ends to braid away after carving.
	Braid float64 `yaml:"braid" json:"braid"`
	// Sparse is the share of carved cells to cull as dead ends, after braiding.
	Sparse float64 `yaml:"sparse" json:"sparse"`
}

// DefaultConfig returns a 10×10 square recursive-backtracker maze.
func DefaultConfig() Config {
	return Config{
		Topology:       grid.Square,
		Rows:           10,
		Columns:        10,
		Levels:         1,
		CellSize:       1,
		Algorithm:      "recursive_backtracker",
		Seed:           1,
		MaxSteps:       carve.DefaultMaxSteps,
		RelativeWeight: 1,
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
	switch {
	case c.Rows < 1:
		return bad("rows must be >= 1 (%d)", c.Rows)
	case c.Topology != grid.Polar && c.Columns < 1:
		return bad("columns must be >= 1 (%d)", c.Columns)
	case c.Levels < 0:
		return bad("levels must be >= 0 (%d)", c.Levels)
	case c.CellSize < 0 || math.IsNaN(c.CellSize):
		return bad("cell_size must be > 0 (%v)", c.CellSize)
	case !inUnit(c.Braid):
		return bad("braid must be in [0,1] (%v)", c.Braid)
	case !inUnit(c.Sparse):
		return bad("sparse must be in [0,1] (%v)", c.Sparse)
	case math.IsNaN(c.Bias) || c.Bias < -1 || c.Bias > 1:
		return bad("bias must be in [-1,1] (%v)", c.Bias)
	}
	for _, m := range c.Masks {
		if m[0] > m[2] || m[1] > m[3] {
			return bad("mask %v is inverted", m)
		}
	}
	if _, err := carve.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func inUnit(f float64) bool { return f >= 0 && f <= 1 }

// gridOptions translates the shape half of c.
func (c Config) gridOptions() []grid.Option {
	opts := []grid.Option{grid.WithWrap(c.Wrap), grid.WithWeaveStrategy(c.Weave)}
	if c.Levels > 0 {
		opts = append(opts, grid.WithLevels(c.Levels))
	}
	if c.CellSize > 0 {
		opts = append(opts, grid.WithCellSize(c.CellSize))
	}
	for _, m := range c.Masks {
		opts = append(opts, grid.WithMask(m[0], m[1], m[2], m[3]))
	}
	return opts
}

func (c Config) carveOptions() carve.Options {
	return carve.Options{MaxSteps: c.MaxSteps, Bias: c.Bias, RelativeWeight: c.RelativeWeight}
}
