// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// prim.go — Prim over randomly weighted adjacency edges.

package carve

import (
	"container/heap"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// Prim grows a minimum spanning tree over randomly weighted adjacency edges
// from a random root, always linking the lightest edge that leaves the tree.
// Regions the root cannot reach get roots of their own.
//
// Time: O(E log E). One step per heap pop.
type Prim struct{}

func (Prim) Name() string { return "prim" }

func (a Prim) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	inTree := make(map[int]bool, g.Size())
	pq := &weightedPQ{}
	heap.Init(pq)
	grow := func(u int) {
		inTree[u] = true
		for _, v := range g.Adjacent(u) {
			if !inTree[v] {
				heap.Push(pq, weightedEdge{from: u, to: v, weight: src.Float64()})
			}
		}
	}

	roots := []int{g.RandomCell(src, true)}
	for c := range g.EachCell() {
		roots = append(roots, c.Index)
	}
	for _, root := range roots {
		if root == grid.NoCell || inTree[root] {
			continue
		}
		grow(root)
		for pq.Len() > 0 {
			if !b.take() {
				return b.result(a.Name(), g, before)
			}
			e := heap.Pop(pq).(weightedEdge)
			if inTree[e.to] {
				continue
			}
			g.Link(e.from, e.to)
			grow(e.to)
		}
	}
	return b.result(a.Name(), g, before)
}

type weightedEdge struct {
	from, to int
	weight   float64
}

// weightedPQ implements heap.Interface as a min-heap on weight.
type weightedPQ []weightedEdge

func (pq weightedPQ) Len() int            { return len(pq) }
func (pq weightedPQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq weightedPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *weightedPQ) Push(x interface{}) { *pq = append(*pq, x.(weightedEdge)) }
func (pq *weightedPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}
