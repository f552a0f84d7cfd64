// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// grid.go — the cell arena: construction, lookup, masking, iteration,
// random sampling and the symmetric link primitives.

package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmaze/rng"
)

// Grid owns every cell of one topology. The shape is fixed at construction;
// afterwards only link and mask state change (weave grids may also append
// under cells).
type Grid struct {
	topology Topology
	shape    shape
	rows     int
	cols     int
	levels   int
	wrap     Wrap
	cellSize float64
	weave    WeaveStrategy

	cells  []*Cell
	dense  int   // cells allocated by prepare; under cells follow
	masked []int // masking order

	ringStart []int // polar: arena offset of each ring
	ringCount []int // polar: cells per ring

	anchor []int // cached raw-adjacency distance field for TreeCandidates
}

// New builds a grid of the given topology. For Polar, rows is the ring
// count and cols is ignored.
//
// Errors: ErrUnknownTopology, ErrInvalidDimensions, ErrUnsupportedWrap,
// ErrInvalidMask (all wrapped with context).
// Complexity: O(N) time and memory for N cells.
func New(top Topology, rows, cols int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sh, err := shapeFor(top)
	if err != nil {
		return nil, err
	}
	if rows < 1 || (top != Polar && cols < 1) {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidDimensions, rows, cols)
	}
	if o.Levels > 1 && top != Square {
		return nil, fmt.Errorf("%w: %s grids have a single level", ErrInvalidDimensions, top)
	}
	if o.Wrap != WrapNone {
		if top != Square && top != Weave {
			return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedWrap, o.Wrap, top)
		}
		if cols < 3 || (o.Wrap == WrapTorus && rows < 3) {
			return nil, fmt.Errorf("%w: %s wrap needs at least 3 cells per wrapped axis", ErrInvalidDimensions, o.Wrap)
		}
	}

	g := &Grid{
		topology: top,
		shape:    sh,
		rows:     rows,
		cols:     cols,
		levels:   o.Levels,
		wrap:     o.Wrap,
		cellSize: o.CellSize,
		weave:    o.Weave,
	}
	if top == Polar {
		g.cols = 0
	}
	g.prepare()
	g.configure()
	for _, r := range o.Masks {
		g.maskRect(r)
	}
	return g, nil
}

// prepare allocates every cell.
func (g *Grid) prepare() {
	g.shape.prepare(g)
	g.dense = len(g.cells)
}

// configure wires neighbor slots per topology rule.
func (g *Grid) configure() {
	g.shape.configure(g)
}

// allocRect fills the arena in col + row*cols + level*rows*cols order.
func (g *Grid) allocRect(kind Kind, slots int) {
	g.cells = make([]*Cell, 0, g.rows*g.cols*g.levels)
	for l := 0; l < g.levels; l++ {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				g.cells = append(g.cells, newCell(len(g.cells), r, c, l, kind, slots))
			}
		}
	}
}

// locateRect folds (col,row,level) per the wrap mode and returns the
// arena index, or NoCell when off-grid. Masking is not considered.
func (g *Grid) locateRect(col, row, level int) int {
	if level < 0 || level >= g.levels {
		return NoCell
	}
	if g.wrap != WrapNone && (col < 0 || col >= g.cols) {
		turns := floorDiv(col, g.cols)
		col -= turns * g.cols
		if g.wrap == WrapMobius && turns%2 != 0 && row >= 0 && row < g.rows {
			row = g.rows - 1 - row
		}
	}
	if g.wrap == WrapTorus {
		row -= floorDiv(row, g.rows) * g.rows
	}
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return NoCell
	}
	return col + row*g.cols + level*g.rows*g.cols
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Topology returns the grid's topology.
func (g *Grid) Topology() Topology { return g.topology }

// Wrap returns the edge wrap mode.
func (g *Grid) Wrap() Wrap { return g.wrap }

// WeaveStrategy returns the crossing strategy (meaningful for Weave grids).
func (g *Grid) WeaveStrategy() WeaveStrategy { return g.weave }

// CellSize returns the geometry scale.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Rows returns the row count (ring count for Polar).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in row (cells in ring for Polar),
// or 0 for a row outside the grid.
func (g *Grid) Cols(row int) int {
	if row < 0 || row >= g.rows {
		return 0
	}
	if g.topology == Polar {
		return g.ringCount[row]
	}
	return g.cols
}

// Levels returns the number of stacked levels.
func (g *Grid) Levels() int { return g.levels }

// Len returns the arena size, masked and under cells included.
func (g *Grid) Len() int { return len(g.cells) }

// Size returns the number of unmasked cells.
func (g *Grid) Size() int { return len(g.cells) - len(g.masked) }

// Cell returns the cell at arena index i, or nil when i is out of range.
func (g *Grid) Cell(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return g.cells[i]
}

// CellAt returns the arena index of (col,row,level). Off-grid coordinates
// (after wrapping) and masked cells report ok=false.
func (g *Grid) CellAt(col, row, level int) (int, bool) {
	i := g.shape.locate(g, col, row, level)
	if i == NoCell || g.cells[i].Masked {
		return NoCell, false
	}
	return i, true
}

// visible reports whether i names an unmasked cell.
func (g *Grid) visible(i int) bool {
	return i >= 0 && i < len(g.cells) && !g.cells[i].Masked
}

// Masked returns masked cell indices in masking order.
func (g *Grid) Masked() []int {
	out := make([]int, len(g.masked))
	copy(out, g.masked)
	return out
}

// Mask removes the cell at (col,row,level) from the active graph: every
// visible neighbor forgets it and its links are cut. It returns false when
// there is no such unmasked cell.
func (g *Grid) Mask(col, row, level int) bool {
	i, ok := g.CellAt(col, row, level)
	if !ok {
		return false
	}
	g.maskIndex(i)
	return true
}

func (g *Grid) maskIndex(i int) {
	c := g.cells[i]
	c.Masked = true
	g.masked = append(g.masked, i)
	for _, j := range c.neighbors {
		if j != NoCell {
			g.cells[j].forget(i)
		}
	}
	for _, j := range c.outward {
		g.cells[j].forget(i)
	}
	for _, j := range c.Links() {
		g.Unlink(i, j)
	}
	g.anchor = nil
}

// maskRect masks the clipped rectangle on every level. For Polar, X is the
// position within the ring.
func (g *Grid) maskRect(r Rect) {
	for l := 0; l < g.levels; l++ {
		for row := max(r.Y0, 0); row <= min(r.Y1, g.rows-1); row++ {
			for col := max(r.X0, 0); col <= min(r.X1, g.Cols(row)-1); col++ {
				g.Mask(col, row, l)
			}
		}
	}
}

// EachCell yields unmasked cells in storage order. The sequence is lazy and
// restartable; under cells appended while iterating are visited too.
func (g *Grid) EachCell() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := 0; i < len(g.cells); i++ {
			c := g.cells[i]
			if c.Masked {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// AllCells collects EachCell into a slice.
func (g *Grid) AllCells() []*Cell {
	out := make([]*Cell, 0, g.Size())
	for c := range g.EachCell() {
		out = append(out, c)
	}
	return out
}

// Neighbors returns the visible neighbors of cell i: slots in order, then
// the outward list, then (weave tunnels only) cells reachable by tunnelling.
func (g *Grid) Neighbors(i int) []int {
	c := g.Cell(i)
	if c == nil || c.Masked {
		return nil
	}
	out := make([]int, 0, len(c.neighbors)+len(c.outward))
	for _, j := range c.neighbors {
		if g.visible(j) {
			out = append(out, j)
		}
	}
	for _, j := range c.outward {
		if g.visible(j) {
			out = append(out, j)
		}
	}
	if g.topology == Weave && g.weave == WeaveTunnels && c.Kind == KindOver {
		for d := North; d <= West; d++ {
			if far := g.tunnelTarget(c, d); far != NoCell {
				out = append(out, far)
			}
		}
	}
	return out
}

// RandomCell picks uniformly among unmasked cells, or among every arena
// cell when filterMask is false. It returns NoCell on an empty pool.
func (g *Grid) RandomCell(src *rng.Source, filterMask bool) int {
	if !filterMask {
		if len(g.cells) == 0 {
			return NoCell
		}
		return src.Intn(len(g.cells))
	}
	n := g.Size()
	if n <= 0 {
		return NoCell
	}
	k := src.Intn(n)
	for c := range g.EachCell() {
		if k == 0 {
			return c.Index
		}
		k--
	}
	return NoCell
}

// RandomCellSeeded reseeds src and then picks. Calls sharing a seed return
// correlated picks.
func (g *Grid) RandomCellSeeded(src *rng.Source, seed int64, filterMask bool) int {
	src.Reseed(seed)
	return g.RandomCell(src, filterMask)
}

// IsLinked reports whether a passage joins cells a and b.
func (g *Grid) IsLinked(a, b int) bool {
	c := g.Cell(a)
	return c != nil && c.IsLinked(b)
}

// Link opens a passage between a and b in both directions. On a weave grid,
// linking an over cell to a tunnel target digs an under cell beneath the
// middle cell and links through it instead.
func (g *Grid) Link(a, b int) {
	ca, cb := g.Cell(a), g.Cell(b)
	if ca == nil || cb == nil || a == b {
		return
	}
	if g.topology == Weave && ca.Kind == KindOver && ca.slotOf(b) == NoCell {
		for d := North; d <= West; d++ {
			if g.tunnelTarget(ca, d) == b {
				u := g.tunnelUnder(ca.neighbors[d], d == North || d == South)
				g.link(a, u)
				g.link(u, b)
				return
			}
		}
	}
	g.link(a, b)
}

// link is the symmetric primitive; both halves always change together.
func (g *Grid) link(a, b int) {
	g.cells[a].links.Put(b)
	g.cells[b].links.Put(a)
}

// Unlink closes the passage between a and b in both directions.
func (g *Grid) Unlink(a, b int) {
	ca, cb := g.Cell(a), g.Cell(b)
	if ca == nil || cb == nil {
		return
	}
	ca.links.Remove(b)
	cb.links.Remove(a)
}

// LinkCount returns the number of passages in the grid.
func (g *Grid) LinkCount() int {
	n := 0
	for c := range g.EachCell() {
		n += c.LinkCount()
	}
	return n / 2
}

// Position returns the centre of cell i, scaled by the cell size.
func (g *Grid) Position(i int) Point {
	c := g.Cell(i)
	if c == nil {
		return Point{}
	}
	if c.Kind == KindUnder {
		c = g.cells[c.over]
	}
	return g.shape.center(g, c)
}

// TreeCandidates returns the neighbors binary-tree carving may link cell i
// to: the topology's preferred directions that lead one step closer to an
// anchor cell, falling back to any closer neighbor.
func (g *Grid) TreeCandidates(i int) []int {
	c := g.Cell(i)
	if c == nil || c.Masked || c.Kind == KindUnder {
		return nil
	}
	return g.shape.treeCandidates(g, c)
}

// RunForward returns the cell that continues a sidewinder run from i (the
// next cell in storage order along the row), or NoCell.
func (g *Grid) RunForward(i int) int {
	c := g.Cell(i)
	if c == nil || c.Masked || c.Kind == KindUnder {
		return NoCell
	}
	j := g.shape.runForward(g, c)
	if !g.visible(j) {
		return NoCell
	}
	return j
}

// RunClose returns the cell a sidewinder run member closes into, or NoCell.
func (g *Grid) RunClose(i int) int {
	c := g.Cell(i)
	if c == nil || c.Masked || c.Kind == KindUnder {
		return NoCell
	}
	j := g.shape.runClose(g, c)
	if !g.visible(j) {
		return NoCell
	}
	return j
}

// Adjacent returns the visible slot and outward neighbors of cell i,
// skipping under cells and tunnel targets.
func (g *Grid) Adjacent(i int) []int {
	c := g.Cell(i)
	if c == nil || c.Masked {
		return nil
	}
	return g.rawNeighbors(c)
}

// rawNeighbors lists visible slot and outward neighbors, skipping under cells.
func (g *Grid) rawNeighbors(c *Cell) []int {
	out := make([]int, 0, len(c.neighbors)+len(c.outward))
	for _, j := range c.neighbors {
		if g.visible(j) && g.cells[j].Kind != KindUnder {
			out = append(out, j)
		}
	}
	for _, j := range c.outward {
		if g.visible(j) {
			out = append(out, j)
		}
	}
	return out
}

// anchorField returns, per cell, the raw-adjacency BFS depth from the last
// unmasked cell of its component in storage order (-1 for masked and
// under cells).
func (g *Grid) anchorField() []int {
	if g.anchor != nil && len(g.anchor) == len(g.cells) {
		return g.anchor
	}
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	for i := g.dense - 1; i >= 0; i-- {
		if g.cells[i].Masked || dist[i] >= 0 {
			continue
		}
		dist[i] = 0
		queue := []int{i}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.rawNeighbors(g.cells[u]) {
				if dist[v] < 0 {
					dist[v] = dist[u] + 1
					queue = append(queue, v)
				}
			}
		}
	}
	g.anchor = dist
	return dist
}

// closer filters the preferred slots of c to neighbors strictly closer to
// the anchor; when none qualifies, any closer neighbor is returned.
func (g *Grid) closer(c *Cell, preferred []int) []int {
	dist := g.anchorField()
	d := dist[c.Index]
	ok := func(j int) bool {
		return g.visible(j) && g.cells[j].Kind != KindUnder && dist[j] >= 0 && dist[j] < d
	}
	var out []int
	for _, s := range preferred {
		if j := c.Neighbor(s); ok(j) {
			out = append(out, j)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, j := range g.rawNeighbors(c) {
		if ok(j) {
			out = append(out, j)
		}
	}
	return out
}
