// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// hex.go — hex topology: offset-column layout and six-way neighbors.

package grid

import "math"

// hexShape lays out flat-topped hexagons with odd columns shifted half a
// cell south. Slots run clockwise from the top edge.
type hexShape struct{}

// hexOffsets holds (dcol, drow) per slot for even and odd columns.
var hexOffsets = [2][6][2]int{
	{{0, 1}, {1, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1}},
	{{0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}},
}

func (hexShape) prepare(g *Grid) { g.allocRect(KindHex, 6) }

func (hexShape) configure(g *Grid) {
	for _, c := range g.cells {
		offs := hexOffsets[c.Col&1]
		for d, o := range offs {
			c.neighbors[d] = g.locateRect(c.Col+o[0], c.Row+o[1], c.Level)
		}
	}
}

func (hexShape) locate(g *Grid, col, row, level int) int {
	return g.locateRect(col, row, level)
}

func (hexShape) treeCandidates(g *Grid, c *Cell) []int {
	return g.closer(c, []int{HexNorth, HexNorthEast})
}

func (hexShape) runForward(g *Grid, c *Cell) int {
	d := HexSouthEast
	if c.Col&1 == 1 {
		d = HexNorthEast
	}
	if j := c.Neighbor(d); j == c.Index+1 {
		return j
	}
	return NoCell
}

func (hexShape) runClose(g *Grid, c *Cell) int {
	return c.Neighbor(HexNorth)
}

func (hexShape) center(g *Grid, c *Cell) Point {
	s := g.cellSize
	h := math.Sqrt(3) * s
	y := (float64(c.Row) + 0.5) * h
	if c.Col&1 == 1 {
		y -= h / 2
	}
	return Point{X: s + 1.5*s*float64(c.Col), Y: y}
}

// corner k sits at 60·k degrees, counter-clockwise from east.
func (hx hexShape) corner(g *Grid, c *Cell, k int) Point {
	ctr := hx.center(g, c)
	a := math.Pi / 3 * float64(k%6)
	return Point{X: ctr.X + g.cellSize*math.Cos(a), Y: ctr.Y + g.cellSize*math.Sin(a)}
}

func (hx hexShape) outline(g *Grid, c *Cell) []Point {
	out := make([]Point, 6)
	for k := range out {
		out[k] = hx.corner(g, c, k)
	}
	return out
}

// hexEdges maps a slot to its two corner numbers.
var hexEdges = [6][2]int{{1, 2}, {0, 1}, {5, 0}, {4, 5}, {3, 4}, {2, 3}}

func (hx hexShape) wall(g *Grid, c *Cell, d int) (Point, Point, bool) {
	if d < 0 || d >= 6 {
		return Point{}, Point{}, false
	}
	e := hexEdges[d]
	return hx.corner(g, c, e[0]), hx.corner(g, c, e[1]), true
}
