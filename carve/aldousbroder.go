// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// aldousbroder.go — Aldous-Broder random walk.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// AldousBroder performs an unbiased random walk, linking each step that
// enters a cell with no links. It stops once every cell reachable from the
// start has a link.
//
// Produces uniform spanning trees; expected time is the cover time of the
// grid, so large grids may hit the step budget.
type AldousBroder struct{}

func (AldousBroder) Name() string { return "aldous_broder" }

func (a AldousBroder) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	cur := g.RandomCell(src, true)
	if cur == grid.NoCell {
		return b.result(a.Name(), g, before)
	}
	remaining := len(unvisited(g, reachable(g, cur))) - 1
	if g.Cell(cur).LinkCount() > 0 {
		remaining++
	}
	for remaining > 0 {
		if !b.take() {
			break
		}
		next, ok := rng.Choice(src, g.Neighbors(cur))
		if !ok {
			break
		}
		if g.Cell(next).LinkCount() == 0 {
			g.Link(cur, next)
			remaining--
		}
		cur = next
	}
	return b.result(a.Name(), g, before)
}

// reachable lists cells connected to start through Neighbors, start first.
func reachable(g *grid.Grid, start int) []int {
	seen := map[int]bool{start: true}
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}
