// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// kruskal.go — randomized Kruskal over a disjoint-set forest.

package carve

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// Kruskal shuffles every adjacency edge and links those joining two
// different sets of a union-find forest.
//
// On a Weave grid using grid.WeaveCrossings, it first tries Size() random
// crossings, each accepted only when both of its passages join distinct
// sets. Edges touching a crossing are then skipped.
//
// Time: O(E·α(N)). One step per crossing attempt and per edge.
type Kruskal struct{}

func (Kruskal) Name() string { return "kruskal" }

type edge struct{ a, b int }

func (a Kruskal) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	forest := unionfind.New[int]()
	var edges []edge
	for c := range g.EachCell() {
		forest.Add(c.Index)
		for _, j := range g.Adjacent(c.Index) {
			if c.Index < j {
				edges = append(edges, edge{c.Index, j})
			}
		}
	}
	// links already present count as merged
	for c := range g.EachCell() {
		for _, j := range c.Links() {
			forest.Union(c.Index, j)
		}
	}

	if g.Topology() == grid.Weave && g.WeaveStrategy() == grid.WeaveCrossings {
		for k := g.Size(); k > 0; k-- {
			if !b.take() {
				return b.result(a.Name(), g, before)
			}
			addCrossing(g, src, forest, g.RandomCell(src, true))
		}
	}

	rng.ShuffleSlice(src, edges)
	for _, e := range edges {
		if crossed(g, e.a) || crossed(g, e.b) {
			continue
		}
		if !b.take() {
			break
		}
		if forest.Union(e.a, e.b) {
			g.Link(e.a, e.b)
		}
	}
	return b.result(a.Name(), g, before)
}

func crossed(g *grid.Grid, i int) bool {
	return g.Cell(i).Under() != grid.NoCell
}

// addCrossing lays a crossing at m when neither passage would close a loop.
func addCrossing(g *grid.Grid, src *rng.Source, f *unionfind.Forest[int], m int) bool {
	c := g.Cell(m)
	if c == nil || c.Kind != grid.KindOver || c.LinkCount() > 0 {
		return false
	}
	n, e, s, w := c.Neighbor(grid.North), c.Neighbor(grid.East), c.Neighbor(grid.South), c.Neighbor(grid.West)
	if n == grid.NoCell || e == grid.NoCell || s == grid.NoCell || w == grid.NoCell {
		return false
	}
	horizontal := src.Intn(2) == 0
	over, under := [2]int{w, e}, [2]int{n, s}
	if !horizontal {
		over, under = under, over
	}
	ro0, ro1 := f.Find(over[0]), f.Find(over[1])
	ru0, ru1 := f.Find(under[0]), f.Find(under[1])
	if ro0 == ro1 || ru0 == ru1 || (ru0 == ro0 && ru1 == ro1) || (ru0 == ro1 && ru1 == ro0) {
		return false
	}
	u, ok := g.AddCrossing(m, horizontal)
	if !ok {
		return false
	}
	f.Union(over[0], m)
	f.Union(m, over[1])
	f.Union(under[0], u)
	f.Union(u, under[1])
	return true
}
