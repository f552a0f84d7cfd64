// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// square.go — the per-topology shape strategy and the square topology with
// its levels and wrap modes.

package grid

import "fmt"

// shape is the per-topology strategy a Grid dispatches to. Carving loops
// stay topology-agnostic by asking the grid, which asks its shape.
type shape interface {
	prepare(g *Grid)
	configure(g *Grid)
	locate(g *Grid, col, row, level int) int
	treeCandidates(g *Grid, c *Cell) []int
	runForward(g *Grid, c *Cell) int
	runClose(g *Grid, c *Cell) int
	center(g *Grid, c *Cell) Point
	outline(g *Grid, c *Cell) []Point
	// wall returns the segment drawn for slot d of c; ok=false when the
	// slot has no edge of its own (e.g. Up/Down).
	wall(g *Grid, c *Cell, d int) (a, b Point, ok bool)
}

func shapeFor(t Topology) (shape, error) {
	switch t {
	case Square:
		return squareShape{kind: KindSquare}, nil
	case Weave:
		return squareShape{kind: KindOver}, nil
	case Triangle:
		return triangleShape{}, nil
	case Hex:
		return hexShape{}, nil
	case Polar:
		return polarShape{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(t))
}

// squareShape serves Square and Weave grids. Slots: N, E, S, W (+Up, Down).
type squareShape struct {
	kind Kind
}

func (s squareShape) slots(g *Grid) int {
	if g.levels > 1 {
		return 6
	}
	return 4
}

func (s squareShape) prepare(g *Grid) { g.allocRect(s.kind, s.slots(g)) }

func (s squareShape) configure(g *Grid) {
	for _, c := range g.cells {
		c.neighbors[North] = g.locateRect(c.Col, c.Row+1, c.Level)
		c.neighbors[East] = g.locateRect(c.Col+1, c.Row, c.Level)
		c.neighbors[South] = g.locateRect(c.Col, c.Row-1, c.Level)
		c.neighbors[West] = g.locateRect(c.Col-1, c.Row, c.Level)
		if len(c.neighbors) > Down {
			c.neighbors[Up] = g.locateRect(c.Col, c.Row, c.Level+1)
			c.neighbors[Down] = g.locateRect(c.Col, c.Row, c.Level-1)
		}
	}
}

func (squareShape) locate(g *Grid, col, row, level int) int {
	return g.locateRect(col, row, level)
}

func (squareShape) treeCandidates(g *Grid, c *Cell) []int {
	if len(c.neighbors) > Down {
		return g.closer(c, []int{North, East, Up})
	}
	return g.closer(c, []int{North, East})
}

func (squareShape) runForward(g *Grid, c *Cell) int {
	j := c.Neighbor(East)
	if j != c.Index+1 {
		return NoCell
	}
	return j
}

func (squareShape) runClose(g *Grid, c *Cell) int {
	if c.Row == g.rows-1 {
		if j := c.Neighbor(Up); j != NoCell && g.cells[j].Row == c.Row {
			return j
		}
		return NoCell
	}
	j := c.Neighbor(North)
	if j == NoCell || g.cells[j].Row != c.Row+1 {
		return NoCell
	}
	return j
}

func (squareShape) center(g *Grid, c *Cell) Point {
	s := g.cellSize
	return Point{X: (float64(c.Col) + 0.5) * s, Y: (float64(c.Row) + 0.5) * s, Z: float64(c.Level) * s}
}

func (squareShape) corners(g *Grid, c *Cell) (x0, y0, x1, y1, z float64) {
	s := g.cellSize
	x0, y0 = float64(c.Col)*s, float64(c.Row)*s
	return x0, y0, x0 + s, y0 + s, float64(c.Level) * s
}

func (sq squareShape) outline(g *Grid, c *Cell) []Point {
	x0, y0, x1, y1, z := sq.corners(g, c)
	return []Point{{x0, y0, z}, {x1, y0, z}, {x1, y1, z}, {x0, y1, z}}
}

func (sq squareShape) wall(g *Grid, c *Cell, d int) (Point, Point, bool) {
	x0, y0, x1, y1, z := sq.corners(g, c)
	switch d {
	case North:
		return Point{x0, y1, z}, Point{x1, y1, z}, true
	case East:
		return Point{x1, y0, z}, Point{x1, y1, z}, true
	case South:
		return Point{x0, y0, z}, Point{x1, y0, z}, true
	case West:
		return Point{x0, y0, z}, Point{x0, y1, z}, true
	}
	return Point{}, Point{}, false
}
