// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// weave.go — weave topology: under cells, tunnels and crossings.

package grid

// straight reports whether over cell m carries a passage perpendicular to
// direction d and nothing along it, so a tunnel along d can pass beneath.
func (g *Grid) straight(m *Cell, d int) bool {
	along := d == North || d == South
	n, s := m.Neighbor(North), m.Neighbor(South)
	e, w := m.Neighbor(East), m.Neighbor(West)
	linkedNS := (n != NoCell && m.IsLinked(n)) || (s != NoCell && m.IsLinked(s))
	linkedEW := (e != NoCell && m.IsLinked(e)) || (w != NoCell && m.IsLinked(w))
	if along {
		return e != NoCell && w != NoCell && m.IsLinked(e) && m.IsLinked(w) && !linkedNS
	}
	return n != NoCell && s != NoCell && m.IsLinked(n) && m.IsLinked(s) && !linkedEW
}

// tunnelTarget returns the cell two hops from c along d when the middle cell
// can host a tunnel, else NoCell.
func (g *Grid) tunnelTarget(c *Cell, d int) int {
	m := c.Neighbor(d)
	if !g.visible(m) {
		return NoCell
	}
	mc := g.cells[m]
	if mc.Kind != KindOver || mc.under != NoCell || !g.straight(mc, d) {
		return NoCell
	}
	far := mc.Neighbor(d)
	if !g.visible(far) || far == c.Index || g.cells[far].Kind != KindOver {
		return NoCell
	}
	return far
}

// tunnelUnder appends an under cell beneath over cell m. The under cell takes
// m's two neighbors along the tunnel axis and replaces their back-references
// to m. No links are made.
func (g *Grid) tunnelUnder(m int, vertical bool) int {
	mc := g.cells[m]
	u := newCell(len(g.cells), mc.Row, mc.Col, mc.Level, KindUnder, 4)
	u.over = m
	u.Group = mc.Group
	g.cells = append(g.cells, u)
	mc.under = u.Index

	a, b := West, East
	if vertical {
		a, b = South, North
	}
	for _, d := range [2]int{a, b} {
		j := mc.neighbors[d]
		u.neighbors[d] = j
		if j != NoCell {
			r := Reverse(KindUnder, d)
			if g.cells[j].neighbors[r] == m {
				g.cells[j].neighbors[r] = u.Index
			}
		}
	}
	g.anchor = nil
	return u.Index
}

// AddCrossing lays a crossing at over cell m: m is linked through along one
// axis (east-west when horizontalOver, else north-south) and an under cell
// carries the perpendicular passage. m must be unlinked with four plain
// over-cell neighbors. It returns the under cell and true on success.
func (g *Grid) AddCrossing(m int, horizontalOver bool) (int, bool) {
	if g.topology != Weave {
		return NoCell, false
	}
	mc := g.Cell(m)
	if mc == nil || mc.Masked || mc.Kind != KindOver || mc.under != NoCell || mc.LinkCount() > 0 {
		return NoCell, false
	}
	for d := North; d <= West; d++ {
		j := mc.neighbors[d]
		jc := g.Cell(j)
		if !g.visible(j) || jc.Kind != KindOver || jc.under != NoCell || jc.neighbors[Reverse(KindOver, d)] != m {
			return NoCell, false
		}
	}
	overA, overB := West, East
	if !horizontalOver {
		overA, overB = North, South
	}
	g.link(m, mc.neighbors[overA])
	g.link(m, mc.neighbors[overB])
	u := g.tunnelUnder(m, horizontalOver)
	uc := g.cells[u]
	for _, j := range uc.neighbors {
		if j != NoCell {
			g.link(u, j)
		}
	}
	return u, true
}
