// Package distance labels grid cells with their breadth-first distance from
// a source, following links only (never raw adjacency).
package distance

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/zyedidia/generic/queue"
)

// unreached marks a cell without a label.
const unreached = -1

// Distances is the result of one Compute call. A cell that was not reached
// has no distance; that is distinct from the source's distance 0.
type Distances struct {
	source  int
	dist    []int
	parent  []int
	order   []int
	maxCell int
	maxDist int
}

// walker holds the mutable BFS state.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue *queue.Queue[int]
	res   *Distances
}

// Compute labels every cell reachable from source through links.
// Returns ErrGridNil, ErrSourceNotFound, ErrOptionViolation, the context
// error, or a wrapped OnVisit error.
//
// Time: O(N + L). Memory: O(N).
func Compute(g *grid.Grid, source int, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	c := g.Cell(source)
	if c == nil || c.Masked {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	n := g.Len()
	res := &Distances{
		source:  source,
		dist:    make([]int, n),
		parent:  make([]int, n),
		order:   make([]int, 0, n),
		maxCell: source,
	}
	for i := range res.dist {
		res.dist[i] = unreached
		res.parent[i] = grid.NoCell
	}
	w := &walker{g: g, opts: o, queue: queue.New[int](), res: res}
	w.enqueue(source, 0, grid.NoCell)
	return res, w.loop()
}

func (w *walker) enqueue(cell, depth, parent int) {
	w.res.dist[cell] = depth
	w.res.parent[cell] = parent
	if depth > w.res.maxDist {
		w.res.maxDist = depth
		w.res.maxCell = cell
	}
	w.queue.Enqueue(cell)
}

func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue.Dequeue()
		d := w.res.dist[u]
		w.res.order = append(w.res.order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("distance: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, v := range w.g.Cell(u).Links() {
			if w.res.dist[v] == unreached && !w.g.Cell(v).Masked {
				w.enqueue(v, d+1, u)
			}
		}
	}
	return nil
}

// Source returns the cell the labelling started from.
func (d *Distances) Source() int { return d.source }

// Get returns the distance of cell i and whether it was reached.
func (d *Distances) Get(i int) (int, bool) {
	if i < 0 || i >= len(d.dist) || d.dist[i] == unreached {
		return 0, false
	}
	return d.dist[i], true
}

// Max returns the farthest cell and its distance. Ties go to the cell
// labelled first, which follows storage order of the link lists.
func (d *Distances) Max() (cell, dist int) {
	return d.maxCell, d.maxDist
}

// Order returns reached cells in visit order.
func (d *Distances) Order() []int {
	out := make([]int, len(d.order))
	copy(out, d.order)
	return out
}

// Reached returns the number of labelled cells.
func (d *Distances) Reached() int { return len(d.order) }

// Normalized maps the distance of cell i into [0,1] relative to Max, for
// colouring. A lone source maps to 0.
func (d *Distances) Normalized(i int) (float64, bool) {
	v, ok := d.Get(i)
	if !ok {
		return 0, false
	}
	if d.maxDist == 0 {
		return 0, true
	}
	return float64(v) / float64(d.maxDist), true
}

// PathTo reconstructs the shortest path from the source to goal, both ends
// included. Returns ErrUnreached if goal has no label.
func (d *Distances) PathTo(goal int) ([]int, error) {
	if _, ok := d.Get(goal); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreached, goal)
	}
	// build reversed path
	var path []int
	for cur := goal; cur != grid.NoCell; cur = d.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Diameter approximates the longest shortest path with two passes: from the
// first linked cell (or first cell, when nothing is linked) to its farthest
// cell A, then from A to its farthest cell B. Exact on trees. It returns the
// span A→B and the distances labelled from A.
func Diameter(g *grid.Grid, opts ...Option) (Span, *Distances, error) {
	if g == nil {
		return Span{}, nil, ErrGridNil
	}
	start := grid.NoCell
	for c := range g.EachCell() {
		if start == grid.NoCell {
			start = c.Index
		}
		if c.LinkCount() > 0 {
			start = c.Index
			break
		}
	}
	if start == grid.NoCell {
		return Span{}, nil, fmt.Errorf("%w: grid has no unmasked cells", ErrSourceNotFound)
	}
	first, err := Compute(g, start, opts...)
	if err != nil {
		return Span{}, nil, err
	}
	a, _ := first.Max()
	second, err := Compute(g, a, opts...)
	if err != nil {
		return Span{}, nil, err
	}
	b, length := second.Max()
	return Span{From: a, To: b, Length: length}, second, nil
}
