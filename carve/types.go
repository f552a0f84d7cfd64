// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// types.go — the Algorithm contract, carving options, results and errors.

package carve

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
var ErrUnknownAlgorithm = errors.New("carve: unknown algorithm")

// DefaultMaxSteps bounds a run when Options.MaxSteps is zero or negative.
const DefaultMaxSteps = 100000

// Algorithm mutates the links of g in place. Running out of candidates is a
// normal stop; every partial state keeps the grid's link symmetry.
type Algorithm interface {
	Name() string
	Carve(g *grid.Grid, src *rng.Source, opts Options) Result
}

// Options tune a carving run. The zero value is usable.
type Options struct {
	// MaxSteps caps loop iterations; <= 0 selects DefaultMaxSteps.
	MaxSteps int `yaml:"max_steps" json:"max_steps"`
	// Bias in [-1,1] skews weighted choices toward the last (positive) or
	// first (negative) candidate; sidewinder uses it as its close rate.
	Bias float64 `yaml:"bias" json:"bias"`
	// RelativeWeight scales Bias; <= 0 selects 1.
	RelativeWeight float64 `yaml:"relative_weight" json:"relative_weight"`
}

// DefaultOptions returns the default budget, no bias and unit weight.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps, RelativeWeight: 1}
}

func (o Options) normalized() Options {
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if math.IsNaN(o.Bias) {
		o.Bias = 0
	}
	o.Bias = math.Max(-1, math.Min(1, o.Bias))
	if !(o.RelativeWeight > 0) {
		o.RelativeWeight = 1
	}
	return o
}

// Result reports what a run did.
type Result struct {
	Algorithm string `yaml:"algorithm" json:"algorithm"`
	// Steps is the number of loop iterations consumed.
	Steps int `yaml:"steps" json:"steps"`
	// Links is the net number of passages added.
	Links int `yaml:"links" json:"links"`
	// Exhausted is set when the step budget stopped the run.
	Exhausted bool `yaml:"exhausted" json:"exhausted"`
}

// budget counts steps against a cap.
type budget struct {
	max       int
	used      int
	exhausted bool
}

func newBudget(o Options) *budget { return &budget{max: o.MaxSteps} }

// take consumes one step, or reports false once the cap is reached.
func (b *budget) take() bool {
	if b.used >= b.max {
		b.exhausted = true
		return false
	}
	b.used++
	return true
}

func (b *budget) result(name string, g *grid.Grid, linksBefore int) Result {
	return Result{
		Algorithm: name,
		Steps:     b.used,
		Links:     g.LinkCount() - linksBefore,
		Exhausted: b.exhausted,
	}
}

// unvisited filters cells without links.
func unvisited(g *grid.Grid, cells []int) []int {
	var out []int
	for _, j := range cells {
		if g.Cell(j).LinkCount() == 0 {
			out = append(out, j)
		}
	}
	return out
}

// visited filters cells with at least one link.
func visited(g *grid.Grid, cells []int) []int {
	var out []int
	for _, j := range cells {
		if g.Cell(j).LinkCount() > 0 {
			out = append(out, j)
		}
	}
	return out
}
