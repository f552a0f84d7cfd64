// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// wilson.go — Wilson's loop-erased random walks.

package carve

import (
	"slices"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// Wilson grows a uniform spanning tree with loop-erased random walks: from a
// random cell outside the tree, walk until the tree is hit, erasing any loop
// the moment it closes, then link the surviving path in.
//
// Every connected region of the grid is seeded with one random root, so the
// pool of unvisited cells always drains.
type Wilson struct{}

func (Wilson) Name() string { return "wilson" }

func (a Wilson) Carve(g *grid.Grid, src *rng.Source, opts Options) Result {
	o := opts.normalized()
	b := newBudget(o)
	before := g.LinkCount()

	n := g.Len()
	inTree := make([]bool, n)
	isTree := func(i int) bool { return i >= n || inTree[i] }

	// pool of cells still outside the tree, with O(1) removal
	var pool []int
	pos := make([]int, n)
	drop := func(i int) {
		k := pos[i]
		last := pool[len(pool)-1]
		pool[k], pos[last] = last, k
		pool = pool[:len(pool)-1]
	}

	seen := make([]bool, n)
	for c := range g.EachCell() {
		if seen[c.Index] {
			continue
		}
		region := reachable(g, c.Index)
		rooted := false
		for _, i := range region {
			seen[i] = true
			if g.Cell(i).LinkCount() > 0 {
				inTree[i] = true
				rooted = true
				continue
			}
			pos[i] = len(pool)
			pool = append(pool, i)
		}
		if !rooted {
			root := region[src.Intn(len(region))]
			inTree[root] = true
			drop(root)
		}
	}

	for len(pool) > 0 {
		cur := pool[src.Intn(len(pool))]
		path := []int{cur}
		for !isTree(cur) {
			if !b.take() {
				return b.result(a.Name(), g, before)
			}
			next, ok := rng.Choice(src, g.Neighbors(cur))
			if !ok {
				break
			}
			if k := slices.Index(path, next); k >= 0 {
				path = path[:k+1]
			} else {
				path = append(path, next)
			}
			cur = next
		}
		if !isTree(cur) {
			// isolated cell: nothing to join
			inTree[cur] = true
			drop(cur)
			continue
		}
		for k := 0; k+1 < len(path); k++ {
			g.Link(path[k], path[k+1])
			inTree[path[k]] = true
			drop(path[k])
		}
	}
	return b.result(a.Name(), g, before)
}
