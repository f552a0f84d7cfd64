// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// blueprint.go — wall masks and the line/polygon geometry handed to renderers.

package grid

// WallMask returns one bit per direction slot of cell i; a set bit means a
// wall: no visible neighbor there, or one that is not linked. Polar cells
// also carry the PolarOutward bit, set when some outward edge is walled.
func (g *Grid) WallMask(i int) uint32 {
	c := g.Cell(i)
	if c == nil || c.Masked {
		return 0
	}
	var mask uint32
	for d, j := range c.neighbors {
		if !g.visible(j) || !c.IsLinked(j) {
			mask |= 1 << uint(d)
		}
	}
	if c.Kind == KindPolar {
		walled := true
		for _, j := range c.outward {
			if g.visible(j) {
				walled = false
				if !c.IsLinked(j) {
					walled = true
					break
				}
			}
		}
		if walled {
			mask |= 1 << PolarOutward
		}
	}
	return mask
}

// Segment is one wall, drawn on the side of Cell facing Slot.
type Segment struct {
	A, B Point
	Cell int
	Slot int
}

// Polygon is the outline of one cell.
type Polygon struct {
	Cell   int
	Points []Point
}

// Blueprint is the renderable geometry of a grid.
type Blueprint struct {
	Walls []Segment
	Cells []Polygon
}

// Blueprint derives wall segments and cell outlines from positions and wall
// masks. A wall shared by two cells is emitted once. Under cells have no
// geometry of their own.
func (g *Grid) Blueprint() Blueprint {
	var bp Blueprint
	for c := range g.EachCell() {
		if c.Kind == KindUnder {
			continue
		}
		bp.Cells = append(bp.Cells, Polygon{Cell: c.Index, Points: g.shape.outline(g, c)})
		mask := g.WallMask(c.Index)
		for d, j := range c.neighbors {
			if mask&(1<<uint(d)) == 0 || !g.ownsWall(c, j) {
				continue
			}
			if a, b, ok := g.shape.wall(g, c, d); ok {
				bp.Walls = append(bp.Walls, Segment{A: a, B: b, Cell: c.Index, Slot: d})
			}
		}
		if c.Kind == KindPolar && c.Row > 0 && len(g.visibleOutward(c)) == 0 {
			if a, b, ok := g.shape.wall(g, c, PolarOutward); ok {
				bp.Walls = append(bp.Walls, Segment{A: a, B: b, Cell: c.Index, Slot: PolarOutward})
			}
		}
	}
	return bp
}

// ownsWall decides which side of a shared edge draws it.
func (g *Grid) ownsWall(c *Cell, j int) bool {
	if !g.visible(j) || c.Index < j {
		return true
	}
	return g.cells[j].slotOf(c.Index) == NoCell
}

func (g *Grid) visibleOutward(c *Cell) []int {
	var out []int
	for _, j := range c.outward {
		if g.visible(j) {
			out = append(out, j)
		}
	}
	return out
}
