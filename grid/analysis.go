// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// analysis.go — connected components, perfection check and summary statistics.

package grid

import "github.com/zyedidia/generic/mapset"

// Components groups unmasked cells that are joined by passages. Components
// are ordered by their lowest arena index; members follow BFS order.
//
// Time: O(N + L). Memory: O(N).
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	for c := range g.EachCell() {
		if seen[c.Index] {
			continue
		}
		// BFS to collect component
		queue := []int{c.Index}
		seen[c.Index] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.cells[queue[qi]].Links() {
				if !seen[v] && !g.cells[v].Masked {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// IsPerfect reports whether the passages form a spanning tree over the
// unmasked cells: one component and exactly N-1 links.
func (g *Grid) IsPerfect() bool {
	n := g.Size()
	if n == 0 {
		return false
	}
	return g.LinkCount() == n-1 && len(g.Components()) == 1
}

// Stats collects cell, link, dead-end, link-degree and group counts.
func (g *Grid) Stats() Stats {
	st := Stats{Masked: len(g.masked)}
	groups := mapset.New[int]()
	links := 0
	for c := range g.EachCell() {
		st.Cells++
		n := c.LinkCount()
		links += n
		if n == 1 {
			st.DeadEnds++
		}
		st.MaxLinks = max(st.MaxLinks, n)
		groups.Put(c.Group)
	}
	st.Links = links / 2
	st.Groups = groups.Size()
	return st
}
