// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// sidewinder.go — sidewinder runs closed toward the anchor.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// Sidewinder walks each row, growing a run forward and, at random points,
// closing it by linking one run member across (north on square grids).
// A run closes early with probability (1+Bias)/2, and only when the cells
// ahead can still close a run of their own.
//
// Time: O(N). One step per cell.
type Sidewinder struct{}

func (Sidewinder) Name() string { return "sidewinder" }

func (a Sidewinder) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	cells := g.AllCells()
	// canClose[i]: i or some cell ahead of it in its run can close.
	canClose := make([]bool, g.Len())
	for k := len(cells) - 1; k >= 0; k-- {
		i := cells[k].Index
		canClose[i] = g.RunClose(i) != grid.NoCell
		if f := g.RunForward(i); f != grid.NoCell && canClose[f] {
			canClose[i] = true
		}
	}

	p := (1 + o.Bias) / 2
	var closers []int
	for _, c := range cells {
		if !b.take() {
			break
		}
		i := c.Index
		if g.RunClose(i) != grid.NoCell {
			closers = append(closers, i)
		}
		fwd := g.RunForward(i)
		atEnd := fwd == grid.NoCell
		if atEnd || (len(closers) > 0 && canClose[fwd] && src.Chance(p)) {
			if m, ok := rng.Choice(src, closers); ok {
				g.Link(m, g.RunClose(m))
			}
			closers = closers[:0]
			continue
		}
		g.Link(i, fwd)
	}
	return b.result(a.Name(), g, before)
}
