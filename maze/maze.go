// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// maze.go — one-shot generation pipeline and the per-cell render snapshot.

package maze

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// Result is the finished maze handed to a host.
type Result struct {
	Config Config
	Grid   *grid.Grid
	Carve  carve.Result

	// Distances are labelled from Diameter.From.
	Distances *distance.Distances
	Diameter  distance.Span
	// Solution is the cell path Diameter.From → Diameter.To.
	Solution []int

	Stats        grid.Stats
	Blueprint    grid.Blueprint
	DeadEndsLeft int // after braiding; zero when Braid is 0
	Culled       int // cells uncarved by sparsifying
	Elapsed      time.Duration
}

// CellInfo is the per-cell view a renderer consumes.
type CellInfo struct {
	Index      int        `yaml:"index" json:"index"`
	Row        int        `yaml:"row" json:"row"`
	Col        int        `yaml:"col" json:"col"`
	Level      int        `yaml:"level" json:"level"`
	Kind       string     `yaml:"kind" json:"kind"`
	Position   grid.Point `yaml:"position" json:"position"`
	WallMask   uint32     `yaml:"wall_mask" json:"wall_mask"`
	Links      []int      `yaml:"links" json:"links"`
	Group      int        `yaml:"group" json:"group"`
	Distance   int        `yaml:"distance" json:"distance"`
	Normalized float64    `yaml:"normalized" json:"normalized"`
	Reached    bool       `yaml:"reached" json:"reached"`
}

// Generate builds the grid, carves it, braids and sparsifies it, then
// labels distances from one end of the diameter. A nil logger discards.
func Generate(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	began := time.Now()

	g, err := grid.New(cfg.Topology, cfg.Rows, cfg.Columns, cfg.gridOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	algo, _ := carve.Lookup(cfg.Algorithm)
	src := rng.New(cfg.Seed)

	res := &Result{Config: cfg, Grid: g}
	res.Carve = algo.Carve(g, src, cfg.carveOptions())
	logger.Debug("carved",
		"algorithm", res.Carve.Algorithm,
		"steps", res.Carve.Steps,
		"links", res.Carve.Links,
		"exhausted", res.Carve.Exhausted)

	if cfg.Braid > 0 {
		res.DeadEndsLeft = g.BraidDeadEnds(cfg.Braid, src)
		logger.Debug("braided", "fraction", cfg.Braid, "dead_ends_left", res.DeadEndsLeft)
	}
	if cfg.Sparse > 0 {
		res.Culled = g.SparseDeadEnds(cfg.Sparse, src)
		logger.Debug("sparsified", "fraction", cfg.Sparse, "culled", res.Culled)
	}

	span, dists, err := distance.Diameter(g)
	if err != nil {
		return nil, fmt.Errorf("maze: distances: %w", err)
	}
	res.Diameter, res.Distances = span, dists
	if res.Solution, err = dists.PathTo(span.To); err != nil {
		return nil, fmt.Errorf("maze: solution: %w", err)
	}
	res.Stats = g.Stats()
	res.Blueprint = g.Blueprint()
	res.Elapsed = time.Since(began)

	logger.Info("maze generated",
		"topology", cfg.Topology.String(),
		"algorithm", res.Carve.Algorithm,
		"seed", src.Seed(),
		"cells", res.Stats.Cells,
		"links", res.Stats.Links,
		"dead_ends", res.Stats.DeadEnds,
		"diameter", span.Length,
		"elapsed", res.Elapsed)
	return res, nil
}

// Cells flattens the grid into renderer-ready records in storage order.
func (r *Result) Cells() []CellInfo {
	out := make([]CellInfo, 0, r.Grid.Size())
	for c := range r.Grid.EachCell() {
		info := CellInfo{
			Index:    c.Index,
			Row:      c.Row,
			Col:      c.Col,
			Level:    c.Level,
			Kind:     c.Kind.String(),
			Position: r.Grid.Position(c.Index),
			WallMask: r.Grid.WallMask(c.Index),
			Links:    c.Links(),
			Group:    c.Group,
		}
		info.Distance, info.Reached = r.Distances.Get(c.Index)
		info.Normalized, _ = r.Distances.Normalized(c.Index)
		out = append(out, info)
	}
	return out
}
