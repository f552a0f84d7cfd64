// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// huntandkill.go — hunt-and-kill walks and the shared hunt scan.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// HuntAndKill random-walks into unlinked cells until stuck, then hunts in
// storage order for an unlinked cell beside the carved region, joins it and
// walks on. Each walk tags its cells with a fresh Group.
type HuntAndKill struct{}

func (HuntAndKill) Name() string { return "hunt_and_kill" }

func (a HuntAndKill) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	cur := g.RandomCell(src, true)
	group := 0
	if cur != grid.NoCell {
		g.Cell(cur).Group = group
	}
	for cur != grid.NoCell {
		if !b.take() {
			break
		}
		next, ok := rng.WeightedChoice(src, unvisited(g, g.Neighbors(cur)), o.Bias, o.RelativeWeight)
		if ok {
			g.Link(cur, next)
			g.Cell(next).Group = group
			cur = next
			continue
		}
		group++
		cur = hunt(g, src, false, group)
	}
	return b.result(a.Name(), g, before)
}

// hunt finds the first unlinked cell (scanning backwards when reverse) with a
// linked neighbor, links the two and returns it; NoCell when none is left.
func hunt(g *grid.Grid, src *rng.Source, reverse bool, group int) int {
	cells := g.AllCells()
	for k := range cells {
		c := cells[k]
		if reverse {
			c = cells[len(cells)-1-k]
		}
		if c.LinkCount() > 0 {
			continue
		}
		if j, ok := rng.Choice(src, visited(g, g.Neighbors(c.Index))); ok {
			g.Link(c.Index, j)
			c.Group = group
			return c.Index
		}
	}
	return grid.NoCell
}
