// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// crossstitch.go — cross-stitch walks with alternating hunt scans.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// CrossStitch random-walks into unlinked cells; when the walk dies it scans
// the grid for an unlinked cell beside the carved region, alternating the
// scan direction on every restart, and resumes there. Each stitch is a new
// Group.
//
// The run ends on the step budget or as soon as a scan finds no candidate.
// Stopping there leaves the links exactly as a budget-only stop would, since
// every later scan is a no-op. Result.Steps and Result.Exhausted do differ:
// an early stop reports the steps actually taken and Exhausted == false,
// where a budget-only run would report MaxSteps and Exhausted == true.
type CrossStitch struct{}

func (CrossStitch) Name() string { return "cross_stitch" }

func (a CrossStitch) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	cur := g.RandomCell(src, true)
	if cur == grid.NoCell {
		return b.result(a.Name(), g, before)
	}
	stitch := 0
	g.Cell(cur).Group = stitch
	for b.take() {
		nbs := unvisited(g, g.Neighbors(cur))
		if next, ok := rng.WeightedChoice(src, nbs, o.Bias, o.RelativeWeight); ok {
			g.Link(cur, next)
			g.Cell(next).Group = stitch
			cur = next
			continue
		}
		stitch++
		cur = hunt(g, src, stitch%2 == 1, stitch)
		if cur == grid.NoCell {
			break
		}
	}
	return b.result(a.Name(), g, before)
}
