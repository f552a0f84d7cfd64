// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// deadends.go — dead-end queries plus the braid and sparse post passes.

package grid

import (
	"math"

	"github.com/katalvlaran/lvmaze/rng"
)

// DeadEnds returns cells with exactly one link, in storage order.
func (g *Grid) DeadEnds() []int {
	var out []int
	for c := range g.EachCell() {
		if c.LinkCount() == 1 {
			out = append(out, c.Index)
		}
	}
	return out
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// BraidDeadEnds shuffles the dead ends, takes the first fraction of them
// (clamped to [0,1]) and links each one that is still a dead end to a random
// neighbor it is not linked to yet. Only neighbors that are already carved
// (at least one link) qualify, and those with fewer than two links are
// preferred. It returns the number of dead ends left.
//
// The dead-end count never rises: the braided cell leaves the set and the
// chosen neighbor ends up with at least two links.
func (g *Grid) BraidDeadEnds(fraction float64, src *rng.Source) int {
	ends := g.DeadEnds()
	rng.ShuffleSlice(src, ends)
	take := int(clampFraction(fraction) * float64(len(ends)))

	for _, i := range ends[:take] {
		c := g.cells[i]
		if c.LinkCount() != 1 {
			continue
		}
		var open, preferred []int
		for _, j := range g.Neighbors(i) {
			n := g.cells[j].LinkCount()
			if n == 0 || c.IsLinked(j) {
				continue
			}
			open = append(open, j)
			if n < 2 {
				preferred = append(preferred, j)
			}
		}
		if len(preferred) > 0 {
			open = preferred
		}
		if j, ok := rng.Choice(src, open); ok {
			g.Link(i, j)
		}
	}
	return len(g.DeadEnds())
}

// SparseDeadEnds uncarves dead ends until fraction (clamped to [0,1]) of the
// cells linked at call time have lost all their links, stopping early when
// no dead end remains. It returns the number of cells uncarved.
func (g *Grid) SparseDeadEnds(fraction float64, src *rng.Source) int {
	linked := 0
	for c := range g.EachCell() {
		if c.LinkCount() > 0 {
			linked++
		}
	}
	target := int(clampFraction(fraction) * float64(linked))

	removed := 0
	for removed < target {
		ends := g.DeadEnds()
		if len(ends) == 0 {
			break
		}
		rng.ShuffleSlice(src, ends)
		for _, i := range ends {
			if removed >= target {
				break
			}
			c := g.cells[i]
			if c.LinkCount() != 1 {
				continue
			}
			j := c.Links()[0]
			g.Unlink(i, j)
			removed++
			if g.cells[j].LinkCount() == 0 {
				removed++
			}
		}
	}
	return removed
}
