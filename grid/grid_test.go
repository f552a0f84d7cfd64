package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction and lookup
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects meaningless shapes and options.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		top  grid.Topology
		rows int
		cols int
		opts []grid.Option
		err  error
	}{
		{"ZeroRows", grid.Square, 0, 3, nil, grid.ErrInvalidDimensions},
		{"ZeroCols", grid.Hex, 3, 0, nil, grid.ErrInvalidDimensions},
		{"UnknownTopology", grid.Topology(42), 3, 3, nil, grid.ErrUnknownTopology},
		{"LevelsOnHex", grid.Hex, 3, 3, []grid.Option{grid.WithLevels(2)}, grid.ErrInvalidDimensions},
		{"NegativeLevels", grid.Square, 3, 3, []grid.Option{grid.WithLevels(0)}, grid.ErrInvalidDimensions},
		{"WrapOnPolar", grid.Polar, 3, 0, []grid.Option{grid.WithWrap(grid.WrapCylinder)}, grid.ErrUnsupportedWrap},
		{"WrapTooNarrow", grid.Square, 3, 2, []grid.Option{grid.WithWrap(grid.WrapCylinder)}, grid.ErrInvalidDimensions},
		{"TorusTooShort", grid.Square, 2, 5, []grid.Option{grid.WithWrap(grid.WrapTorus)}, grid.ErrInvalidDimensions},
		{"InvertedMask", grid.Square, 3, 3, []grid.Option{grid.WithMask(2, 0, 1, 0)}, grid.ErrInvalidMask},
		{"BadCellSize", grid.Square, 3, 3, []grid.Option{grid.WithCellSize(0)}, grid.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.top, tc.rows, tc.cols, tc.opts...)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
}

func TestParseTopology(t *testing.T) {
	top, err := grid.ParseTopology(" Hex ")
	require.NoError(t, err)
	assert.Equal(t, grid.Hex, top)

	_, err = grid.ParseTopology("octagon")
	assert.ErrorIs(t, err, grid.ErrUnknownTopology)
}

// TestCellAt_BoundsAndWrap checks "no cell" off the edge and each wrap fold.
func TestCellAt_BoundsAndWrap(t *testing.T) {
	g, err := grid.New(grid.Square, 3, 4)
	require.NoError(t, err)
	i, ok := g.CellAt(1, 2, 0)
	require.True(t, ok)
	assert.Equal(t, 1+2*4, i)
	for _, xy := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		_, ok := g.CellAt(xy[0], xy[1], 0)
		assert.False(t, ok, "CellAt(%d,%d)", xy[0], xy[1])
	}
	_, ok = g.CellAt(0, 0, 1)
	assert.False(t, ok)

	cyl, err := grid.New(grid.Square, 3, 4, grid.WithWrap(grid.WrapCylinder))
	require.NoError(t, err)
	i, ok = cyl.CellAt(-1, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 3, cyl.Cell(i).Col)
	_, ok = cyl.CellAt(0, 3, 0)
	assert.False(t, ok, "cylinder does not wrap rows")

	mob, err := grid.New(grid.Square, 3, 4, grid.WithWrap(grid.WrapMobius))
	require.NoError(t, err)
	i, ok = mob.CellAt(4, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, mob.Cell(i).Col)
	assert.Equal(t, 2, mob.Cell(i).Row, "rows mirror across the seam")

	tor, err := grid.New(grid.Square, 3, 4, grid.WithWrap(grid.WrapTorus))
	require.NoError(t, err)
	i, ok = tor.CellAt(0, -1, 0)
	require.True(t, ok)
	assert.Equal(t, 2, tor.Cell(i).Row)
}

// TestNeighborReciprocity asserts the reverse-slot table for every
// non-weave topology, including the polar inward/outward fan.
func TestNeighborReciprocity(t *testing.T) {
	build := map[string]func() (*grid.Grid, error){
		"square":   func() (*grid.Grid, error) { return grid.New(grid.Square, 4, 5) },
		"leveled":  func() (*grid.Grid, error) { return grid.New(grid.Square, 3, 3, grid.WithLevels(3)) },
		"cylinder": func() (*grid.Grid, error) { return grid.New(grid.Square, 3, 4, grid.WithWrap(grid.WrapCylinder)) },
		"mobius":   func() (*grid.Grid, error) { return grid.New(grid.Square, 3, 4, grid.WithWrap(grid.WrapMobius)) },
		"torus":    func() (*grid.Grid, error) { return grid.New(grid.Square, 3, 4, grid.WithWrap(grid.WrapTorus)) },
		"triangle": func() (*grid.Grid, error) { return grid.New(grid.Triangle, 4, 7) },
		"hex":      func() (*grid.Grid, error) { return grid.New(grid.Hex, 4, 5) },
		"polar":    func() (*grid.Grid, error) { return grid.New(grid.Polar, 5, 0) },
	}
	for name, mk := range build {
		t.Run(name, func(t *testing.T) {
			g, err := mk()
			require.NoError(t, err)
			for c := range g.EachCell() {
				for d := 0; d < c.Slots(); d++ {
					j := c.Neighbor(d)
					if j == grid.NoCell {
						continue
					}
					r := grid.Reverse(c.Kind, d)
					if r == grid.NoCell {
						assert.Contains(t, g.Cell(j).Outward(), c.Index)
						continue
					}
					assert.Equal(t, c.Index, g.Cell(j).Neighbor(r), "cell %d slot %d", c.Index, d)
				}
			}
		})
	}
}

func TestPolarRingCounts(t *testing.T) {
	g, err := grid.New(grid.Polar, 4, 0)
	require.NoError(t, err)
	counts := []int{g.Cols(0), g.Cols(1), g.Cols(2), g.Cols(3)}
	assert.Equal(t, []int{1, 6, 12, 24}, counts)
	assert.Equal(t, 43, g.Len())
	assert.Len(t, g.Cell(0).Outward(), 6)

	// columns wrap within a ring
	i, ok := g.CellAt(-1, 1, 0)
	require.True(t, ok)
	assert.Equal(t, 5, g.Cell(i).Col)
}

//----------------------------------------------------------------------------//
// Masking, links, iteration
//----------------------------------------------------------------------------//

// TestMask_ClearsBackReferences masks the centre of a 3×3 grid.
func TestMask_ClearsBackReferences(t *testing.T) {
	g, err := grid.New(grid.Square, 3, 3)
	require.NoError(t, err)
	center, _ := g.CellAt(1, 1, 0)
	north, _ := g.CellAt(1, 2, 0)
	g.Link(center, north)

	require.True(t, g.Mask(1, 1, 0))
	assert.False(t, g.Mask(1, 1, 0), "already masked")

	assert.Len(t, g.AllCells(), 8)
	for c := range g.EachCell() {
		assert.NotEqual(t, center, c.Index)
		for d := 0; d < c.Slots(); d++ {
			assert.NotEqual(t, center, c.Neighbor(d))
		}
	}
	assert.False(t, g.IsLinked(north, center))
	assert.False(t, g.IsLinked(center, north))
	_, ok := g.CellAt(1, 1, 0)
	assert.False(t, ok)
	assert.Equal(t, []int{center}, g.Masked())
}

// TestLinkSymmetry runs random link/unlink/mask operations and checks that
// the link relation stays symmetric.
func TestLinkSymmetry(t *testing.T) {
	g, err := grid.New(grid.Hex, 6, 6)
	require.NoError(t, err)
	src := rng.New(7)
	for step := 0; step < 400; step++ {
		a := g.RandomCell(src, true)
		nb := g.Neighbors(a)
		b, ok := rng.Choice(src, nb)
		if !ok {
			continue
		}
		switch src.Intn(10) {
		case 0:
			c := g.Cell(a)
			g.Mask(c.Col, c.Row, c.Level)
		case 1, 2:
			g.Unlink(a, b)
		default:
			g.Link(a, b)
		}
	}
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < g.Len(); j++ {
			assert.Equal(t, g.IsLinked(i, j), g.IsLinked(j, i), "pair %d,%d", i, j)
		}
	}
}

func TestEachCell_RestartableAndStoppable(t *testing.T) {
	g, err := grid.New(grid.Triangle, 2, 3)
	require.NoError(t, err)
	var first, second []int
	for c := range g.EachCell() {
		first = append(first, c.Index)
	}
	for c := range g.EachCell() {
		second = append(second, c.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, first)
	assert.Equal(t, first, second)

	n := 0
	for range g.EachCell() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRandomCell(t *testing.T) {
	g, err := grid.New(grid.Square, 3, 3, grid.WithMask(0, 0, 2, 1))
	require.NoError(t, err)
	src := rng.New(3)
	for k := 0; k < 50; k++ {
		i := g.RandomCell(src, true)
		assert.Equal(t, 2, g.Cell(i).Row, "only the top row is unmasked")
	}

	a := g.RandomCellSeeded(src, 99, false)
	b := g.RandomCellSeeded(src, 99, false)
	assert.Equal(t, a, b, "same seed, same pick")

	all, err := grid.New(grid.Square, 1, 1, grid.WithMask(0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.NoCell, all.RandomCell(src, true))
}

//----------------------------------------------------------------------------//
// Topology strategy hooks
//----------------------------------------------------------------------------//

func TestTreeCandidates_Square(t *testing.T) {
	g, err := grid.New(grid.Square, 3, 3)
	require.NoError(t, err)
	at := func(c, r int) int { i, _ := g.CellAt(c, r, 0); return i }

	assert.Equal(t, []int{at(0, 1), at(1, 0)}, g.TreeCandidates(at(0, 0)))
	assert.Equal(t, []int{at(1, 2)}, g.TreeCandidates(at(0, 2)), "top row goes east")
	assert.Equal(t, []int{at(2, 1)}, g.TreeCandidates(at(2, 0)), "east column goes north")
	assert.Empty(t, g.TreeCandidates(at(2, 2)), "anchor has none")
}

func TestRunForwardAndClose(t *testing.T) {
	g, err := grid.New(grid.Square, 2, 3, grid.WithLevels(2))
	require.NoError(t, err)
	at := func(c, r, l int) int { i, _ := g.CellAt(c, r, l); return i }

	assert.Equal(t, at(1, 0, 0), g.RunForward(at(0, 0, 0)))
	assert.Equal(t, grid.NoCell, g.RunForward(at(2, 0, 0)))
	assert.Equal(t, at(0, 1, 0), g.RunClose(at(0, 0, 0)))
	assert.Equal(t, at(0, 1, 1), g.RunClose(at(0, 1, 0)), "top row of a lower level closes upward")
	assert.Equal(t, grid.NoCell, g.RunClose(at(0, 1, 1)))

	cyl, err := grid.New(grid.Square, 3, 3, grid.WithWrap(grid.WrapCylinder))
	require.NoError(t, err)
	last, _ := cyl.CellAt(2, 0, 0)
	assert.Equal(t, grid.NoCell, cyl.RunForward(last), "runs never cross the seam")
}
