// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// cell.go — the arena cell and its link bookkeeping.

package grid

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Cell is one node of the maze graph. Cells live in the Grid's arena and
// refer to each other by arena index; NoCell marks an absent reference.
//
// Exported fields are identity and visualization metadata. Neighbor slots
// and links change only through Grid methods so that the link relation
// stays symmetric.
type Cell struct {
	Index int
	Row   int
	Col   int
	Level int
	Kind  Kind
	// Group is a visualization tag (e.g. carving expedition); no structural meaning.
	Group  int
	Masked bool

	neighbors []int
	outward   []int
	links     mapset.Set[int]
	under     int // over cells: the under cell tunnelling below, else NoCell
	over      int // under cells: the over cell above, else NoCell
}

func newCell(index, row, col, level int, kind Kind, slots int) *Cell {
	nb := make([]int, slots)
	for i := range nb {
		nb[i] = NoCell
	}
	return &Cell{
		Index:     index,
		Row:       row,
		Col:       col,
		Level:     level,
		Kind:      kind,
		neighbors: nb,
		links:     mapset.New[int](),
		under:     NoCell,
		over:      NoCell,
	}
}

// Slots returns the number of direction slots.
func (c *Cell) Slots() int { return len(c.neighbors) }

// Neighbor returns the arena index in slot d, or NoCell.
func (c *Cell) Neighbor(d int) int {
	if d < 0 || d >= len(c.neighbors) {
		return NoCell
	}
	return c.neighbors[d]
}

// Outward returns a copy of the polar outward neighbor list.
func (c *Cell) Outward() []int {
	return slices.Clone(c.outward)
}

// Links returns linked cell indices in ascending order.
func (c *Cell) Links() []int {
	out := make([]int, 0, c.links.Size())
	c.links.Each(func(j int) { out = append(out, j) })
	slices.Sort(out)
	return out
}

// IsLinked reports whether a passage joins c and cell j.
func (c *Cell) IsLinked(j int) bool { return c.links.Has(j) }

// LinkCount returns the number of passages leaving c.
func (c *Cell) LinkCount() int { return c.links.Size() }

// Under returns the under cell tunnelling below an over cell, or NoCell.
func (c *Cell) Under() int { return c.under }

// Over returns the over cell above an under cell, or NoCell.
func (c *Cell) Over() int { return c.over }

// IsUpright reports whether a triangle cell points up (base on the south side).
func (c *Cell) IsUpright() bool { return (c.Row+c.Col)%2 == 0 }

// slotOf returns the first slot of c pointing at j, or NoCell.
func (c *Cell) slotOf(j int) int {
	for d, n := range c.neighbors {
		if n == j {
			return d
		}
	}
	return NoCell
}

// forget clears every reference c holds to j (slots and outward list).
func (c *Cell) forget(j int) {
	for d, n := range c.neighbors {
		if n == j {
			c.neighbors[d] = NoCell
		}
	}
	if k := slices.Index(c.outward, j); k >= 0 {
		c.outward = slices.Delete(c.outward, k, k+1)
	}
}
