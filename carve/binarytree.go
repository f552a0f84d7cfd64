// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// binarytree.go — binary tree carving toward the anchor.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// BinaryTree links every cell, in storage order, to one of its tree
// candidates (north or east on square grids; see Grid.TreeCandidates).
//
// Time: O(N). One step per cell.
type BinaryTree struct{}

func (BinaryTree) Name() string { return "binary_tree" }

func (a BinaryTree) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()
	for c := range g.EachCell() {
		if !b.take() {
			break
		}
		cands := g.TreeCandidates(c.Index)
		if j, ok := rng.WeightedChoice(src, cands, o.Bias, o.RelativeWeight); ok {
			g.Link(c.Index, j)
		}
	}
	return b.result(a.Name(), g, before)
}
