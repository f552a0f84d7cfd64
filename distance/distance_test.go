package distance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor links a 1×n row end to end.
func corridor(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.Square, 1, n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		g.Link(i, i+1)
	}
	return g
}

func TestCompute_Corridor(t *testing.T) {
	g := corridor(t, 5)
	d, err := distance.Compute(g, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		v, ok := d.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	cell, dist := d.Max()
	assert.Equal(t, 4, cell)
	assert.Equal(t, 4, dist)

	path, err := d.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)

	n, ok := d.Normalized(2)
	require.True(t, ok)
	assert.InDelta(t, 0.5, n, 1e-12)
}

// TestCompute_Unreached distinguishes "distance 0" from "not reached".
func TestCompute_Unreached(t *testing.T) {
	g, err := grid.New(grid.Square, 1, 3)
	require.NoError(t, err)
	g.Link(0, 1)
	d, err := distance.Compute(g, 0)
	require.NoError(t, err)

	v, ok := d.Get(0)
	assert.True(t, ok)
	assert.Zero(t, v)
	_, ok = d.Get(2)
	assert.False(t, ok)
	_, ok = d.Normalized(2)
	assert.False(t, ok)
	_, err = d.PathTo(2)
	assert.True(t, errors.Is(err, distance.ErrUnreached))
	assert.Equal(t, 2, d.Reached())
}

func TestCompute_Errors(t *testing.T) {
	g, err := grid.New(grid.Square, 2, 2, grid.WithMask(0, 0, 0, 0))
	require.NoError(t, err)

	_, err = distance.Compute(nil, 0)
	assert.ErrorIs(t, err, distance.ErrGridNil)
	_, err = distance.Compute(g, 0)
	assert.ErrorIs(t, err, distance.ErrSourceNotFound, "masked source")
	_, err = distance.Compute(g, 99)
	assert.ErrorIs(t, err, distance.ErrSourceNotFound)
	_, err = distance.Compute(g, 1, distance.WithMaxDepth(-1))
	assert.ErrorIs(t, err, distance.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = distance.Compute(g, 1, distance.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = distance.Compute(g, 1, distance.WithOnVisit(func(int, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestCompute_MaxDepth(t *testing.T) {
	g := corridor(t, 6)
	var visited []int
	d, err := distance.Compute(g, 0, distance.WithMaxDepth(2),
		distance.WithOnVisit(func(cell, _ int) error { visited = append(visited, cell); return nil }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, visited)
	assert.Equal(t, visited, d.Order())
	_, ok := d.Get(3)
	assert.False(t, ok)
}

// TestCompute_Deterministic recomputes on a carved maze and checks the
// BFS recurrence for every reached cell.
func TestCompute_Deterministic(t *testing.T) {
	g, err := grid.New(grid.Hex, 8, 8)
	require.NoError(t, err)
	carve.HuntAndKill{}.Carve(g, rng.New(3), carve.Options{})
	g.BraidDeadEnds(0.5, rng.New(3))

	a, err := distance.Compute(g, 10)
	require.NoError(t, err)
	b, err := distance.Compute(g, 10)
	require.NoError(t, err)
	assert.Equal(t, a.Order(), b.Order())

	for c := range g.EachCell() {
		v, ok := a.Get(c.Index)
		require.True(t, ok)
		if c.Index == 10 {
			assert.Zero(t, v)
			continue
		}
		best := -1
		for _, j := range c.Links() {
			if w, ok := a.Get(j); ok && (best < 0 || w < best) {
				best = w
			}
		}
		assert.Equal(t, best+1, v, "cell %d", c.Index)
	}
}

func TestDiameter(t *testing.T) {
	g := corridor(t, 7)
	span, d, err := distance.Diameter(g)
	require.NoError(t, err)
	assert.Equal(t, 6, span.Length)
	assert.ElementsMatch(t, []int{0, 6}, []int{span.From, span.To})
	assert.Equal(t, span.From, d.Source())

	// on a perfect maze the two-pass result is the true diameter
	m, err := grid.New(grid.Square, 6, 6)
	require.NoError(t, err)
	carve.Wilson{}.Carve(m, rng.New(12), carve.Options{})
	span, _, err = distance.Diameter(m)
	require.NoError(t, err)
	longest := 0
	for c := range m.EachCell() {
		d, err := distance.Compute(m, c.Index)
		require.NoError(t, err)
		_, far := d.Max()
		longest = max(longest, far)
	}
	assert.Equal(t, longest, span.Length)

	empty, err := grid.New(grid.Square, 1, 1, grid.WithMask(0, 0, 0, 0))
	require.NoError(t, err)
	_, _, err = distance.Diameter(empty)
	assert.ErrorIs(t, err, distance.ErrSourceNotFound)
}
