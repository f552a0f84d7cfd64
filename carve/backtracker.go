// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// backtracker.go — recursive backtracker on an explicit stack.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/zyedidia/generic/stack"
)

// RecursiveBacktracker carves depth-first with an explicit stack. The cell
// where a walk dies is tagged grid.GroupLoner; the first advance after
// backtracking opens a new expedition Group.
//
// Time: O(N); each cell is pushed and popped once.
type RecursiveBacktracker struct{}

func (RecursiveBacktracker) Name() string { return "recursive_backtracker" }

func (a RecursiveBacktracker) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	start := g.RandomCell(src, true)
	if start == grid.NoCell {
		return b.result(a.Name(), g, before)
	}
	expedition := 0
	backtracking := false
	g.Cell(start).Group = expedition

	st := stack.New[int]()
	st.Push(start)
	for st.Size() > 0 {
		if !b.take() {
			break
		}
		cur := st.Peek()
		next, ok := rng.WeightedChoice(src, unvisited(g, g.Neighbors(cur)), o.Bias, o.RelativeWeight)
		if !ok {
			st.Pop()
			if !backtracking {
				g.Cell(cur).Group = grid.GroupLoner
			}
			backtracking = true
			continue
		}
		if backtracking {
			expedition++
			backtracking = false
		}
		g.Link(cur, next)
		g.Cell(next).Group = expedition
		st.Push(next)
	}
	return b.result(a.Name(), g, before)
}
