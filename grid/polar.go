// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// polar.go — polar topology: rings that subdivide as their circumference grows.

package grid

import "math"

// polarShape arranges rings around a single centre cell. Ring r holds
// count(r-1)·ratio cells, ratio being the previous ring's estimated cell
// width over the ring height, rounded. Slots: CW, CCW, Inward; outward
// neighbors live in Cell.outward.
type polarShape struct{}

func (polarShape) prepare(g *Grid) {
	g.ringCount = make([]int, g.rows)
	g.ringStart = make([]int, g.rows)
	g.ringCount[0] = 1
	rowHeight := 1 / float64(g.rows)
	for r := 1; r < g.rows; r++ {
		radius := float64(r) / float64(g.rows)
		circumference := 2 * math.Pi * radius
		prev := g.ringCount[r-1]
		width := circumference / float64(prev)
		ratio := int(math.Round(width / rowHeight))
		if ratio < 1 {
			ratio = 1
		}
		g.ringCount[r] = prev * ratio
	}
	total := 0
	for r, n := range g.ringCount {
		g.ringStart[r] = total
		total += n
	}
	g.cells = make([]*Cell, 0, total)
	for r, n := range g.ringCount {
		for c := 0; c < n; c++ {
			g.cells = append(g.cells, newCell(len(g.cells), r, c, 0, KindPolar, 3))
		}
	}
}

func (p polarShape) configure(g *Grid) {
	for _, c := range g.cells {
		if c.Row == 0 {
			continue
		}
		n := g.ringCount[c.Row]
		if n > 1 {
			c.neighbors[Clockwise] = p.locate(g, c.Col+1, c.Row, 0)
			c.neighbors[CounterClockwise] = p.locate(g, c.Col-1, c.Row, 0)
		}
		ratio := n / g.ringCount[c.Row-1]
		parent := p.locate(g, c.Col/ratio, c.Row-1, 0)
		c.neighbors[Inward] = parent
		g.cells[parent].outward = append(g.cells[parent].outward, c.Index)
	}
}

// locate always wraps the column within its ring.
func (polarShape) locate(g *Grid, col, row, level int) int {
	if level != 0 || row < 0 || row >= g.rows {
		return NoCell
	}
	n := g.ringCount[row]
	col -= floorDiv(col, n) * n
	return g.ringStart[row] + col
}

// treeCandidates links inward, or clockwise without crossing the ring seam.
func (polarShape) treeCandidates(g *Grid, c *Cell) []int {
	var out []int
	if j := c.Neighbor(Inward); g.visible(j) {
		out = append(out, j)
	}
	if c.Col < g.ringCount[c.Row]-1 {
		if j := c.Neighbor(Clockwise); g.visible(j) {
			out = append(out, j)
		}
	}
	return out
}

func (polarShape) runForward(g *Grid, c *Cell) int {
	if j := c.Neighbor(Clockwise); j == c.Index+1 {
		return j
	}
	return NoCell
}

func (polarShape) runClose(g *Grid, c *Cell) int {
	return c.Neighbor(Inward)
}

func (polarShape) angles(g *Grid, c *Cell) (theta0, theta1 float64) {
	n := float64(g.ringCount[c.Row])
	step := 2 * math.Pi / n
	return float64(c.Col) * step, float64(c.Col+1) * step
}

func polarPoint(radius, theta float64) Point {
	return Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}

func (p polarShape) center(g *Grid, c *Cell) Point {
	if c.Row == 0 {
		return Point{}
	}
	t0, t1 := p.angles(g, c)
	return polarPoint((float64(c.Row)+0.5)*g.cellSize, (t0+t1)/2)
}

func (p polarShape) outline(g *Grid, c *Cell) []Point {
	s := g.cellSize
	if c.Row == 0 {
		n := 6
		if g.rows > 1 {
			n = max(n, g.ringCount[1])
		}
		out := make([]Point, n)
		for k := range out {
			out[k] = polarPoint(s, 2*math.Pi*float64(k)/float64(n))
		}
		return out
	}
	t0, t1 := p.angles(g, c)
	inner, outer := float64(c.Row)*s, float64(c.Row+1)*s
	return []Point{polarPoint(inner, t0), polarPoint(outer, t0), polarPoint(outer, t1), polarPoint(inner, t1)}
}

// wall draws radial segments for CW/CCW, the inner chord for Inward and the
// outer chord for PolarOutward.
func (p polarShape) wall(g *Grid, c *Cell, d int) (Point, Point, bool) {
	if c.Row == 0 {
		return Point{}, Point{}, false
	}
	s := g.cellSize
	t0, t1 := p.angles(g, c)
	inner, outer := float64(c.Row)*s, float64(c.Row+1)*s
	switch d {
	case Clockwise:
		return polarPoint(inner, t1), polarPoint(outer, t1), true
	case CounterClockwise:
		return polarPoint(inner, t0), polarPoint(outer, t0), true
	case Inward:
		return polarPoint(inner, t0), polarPoint(inner, t1), true
	case PolarOutward:
		return polarPoint(outer, t0), polarPoint(outer, t1), true
	}
	return Point{}, Point{}, false
}
