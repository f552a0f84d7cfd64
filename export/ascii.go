// SPDX-License-Identifier: MIT
// Package: lvmaze/export
//
// ascii.go — text drawing of rectangular grids, north at the top.

package export

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// ASCII draws every level of a square or weave maze as a box-drawing of
// "+", "-" and "|". Masked cells are filled with "#", weave crossings show
// a "+" in the middle, and the diameter endpoints are marked S and F.
func ASCII(res *maze.Result) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}
	g := res.Grid
	if top := g.Topology(); top != grid.Square && top != grid.Weave {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, top)
	}

	var sb strings.Builder
	for level := 0; level < g.Levels(); level++ {
		if level > 0 {
			sb.WriteByte('\n')
		}
		drawLevel(&sb, res, level)
	}
	return sb.String(), nil
}

func drawLevel(sb *strings.Builder, res *maze.Result, level int) {
	g := res.Grid
	rows, cols := g.Rows(), g.Cols(0)

	// walls reports the wall bits of (col,row), merging a crossing's under
	// cell. Masked or missing cells are solid.
	walls := func(col, row int) (uint32, bool) {
		i, ok := g.CellAt(col, row, level)
		if !ok {
			return ^uint32(0), false
		}
		m := g.WallMask(i)
		if u := g.Cell(i).Under(); u != grid.NoCell {
			m &= g.WallMask(u)
		}
		return m, true
	}
	walled := func(m uint32, d int) bool { return m&(1<<uint(d)) != 0 }

	sb.WriteByte('+')
	for c := 0; c < cols; c++ {
		m, _ := walls(c, rows-1)
		sb.WriteString(edge(walled(m, grid.North), "---", "   "))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')

	for r := rows - 1; r >= 0; r-- {
		first, _ := walls(0, r)
		sb.WriteString(edge(walled(first, grid.West), "|", " "))
		for c := 0; c < cols; c++ {
			m, ok := walls(c, r)
			sb.WriteString(body(res, c, r, level, ok))
			sb.WriteString(edge(walled(m, grid.East), "|", " "))
		}
		sb.WriteByte('\n')

		sb.WriteByte('+')
		for c := 0; c < cols; c++ {
			m, _ := walls(c, r)
			sb.WriteString(edge(walled(m, grid.South), "---", "   "))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
}

func body(res *maze.Result, col, row, level int, ok bool) string {
	if !ok {
		return "###"
	}
	i, _ := res.Grid.CellAt(col, row, level)
	switch {
	case i == res.Diameter.From:
		return " S "
	case i == res.Diameter.To:
		return " F "
	case res.Grid.Cell(i).Under() != grid.NoCell:
		return " + "
	}
	return "   "
}

func edge(wall bool, solid, open string) string {
	if wall {
		return solid
	}
	return open
}
