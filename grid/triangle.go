// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// triangle.go — triangle topology: alternating up/down cells.

package grid

import "math"

// triangleShape alternates upright and inverted cells along each row.
// Slots: W, E, Vertical (south for upright cells, north otherwise).
type triangleShape struct{}

func (triangleShape) prepare(g *Grid) { g.allocRect(KindTriangle, 3) }

func (triangleShape) configure(g *Grid) {
	for _, c := range g.cells {
		c.neighbors[TriWest] = g.locateRect(c.Col-1, c.Row, c.Level)
		c.neighbors[TriEast] = g.locateRect(c.Col+1, c.Row, c.Level)
		if c.IsUpright() {
			c.neighbors[TriVertical] = g.locateRect(c.Col, c.Row-1, c.Level)
		} else {
			c.neighbors[TriVertical] = g.locateRect(c.Col, c.Row+1, c.Level)
		}
	}
}

func (triangleShape) locate(g *Grid, col, row, level int) int {
	return g.locateRect(col, row, level)
}

func (triangleShape) treeCandidates(g *Grid, c *Cell) []int {
	if c.IsUpright() {
		return g.closer(c, []int{TriEast})
	}
	return g.closer(c, []int{TriVertical, TriEast})
}

func (triangleShape) runForward(g *Grid, c *Cell) int {
	if j := c.Neighbor(TriEast); j == c.Index+1 {
		return j
	}
	return NoCell
}

func (triangleShape) runClose(g *Grid, c *Cell) int {
	if c.IsUpright() {
		return NoCell
	}
	return c.Neighbor(TriVertical)
}

func triangleMetrics(g *Grid) (w, h float64) {
	return g.cellSize, g.cellSize * math.Sqrt(3) / 2
}

// vertices returns base-left, base-right and apex.
func (triangleShape) vertices(g *Grid, c *Cell) (Point, Point, Point) {
	w, h := triangleMetrics(g)
	cx := float64(c.Col+1) * w / 2
	y0 := float64(c.Row) * h
	y1 := y0 + h
	if c.IsUpright() {
		return Point{X: cx - w/2, Y: y0}, Point{X: cx + w/2, Y: y0}, Point{X: cx, Y: y1}
	}
	return Point{X: cx - w/2, Y: y1}, Point{X: cx + w/2, Y: y1}, Point{X: cx, Y: y0}
}

func (t triangleShape) center(g *Grid, c *Cell) Point {
	a, b, apex := t.vertices(g, c)
	return Point{X: (a.X + b.X + apex.X) / 3, Y: (a.Y + b.Y + apex.Y) / 3}
}

func (t triangleShape) outline(g *Grid, c *Cell) []Point {
	a, b, apex := t.vertices(g, c)
	return []Point{a, b, apex}
}

func (t triangleShape) wall(g *Grid, c *Cell, d int) (Point, Point, bool) {
	a, b, apex := t.vertices(g, c)
	switch d {
	case TriWest:
		return a, apex, true
	case TriEast:
		return b, apex, true
	case TriVertical:
		return a, b, true
	}
	return Point{}, Point{}, false
}
