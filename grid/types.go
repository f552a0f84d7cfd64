// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// types.go — topology selectors, direction slots, construction options
// and sentinel errors.

package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimensions indicates a non-positive extent, a level count the
	// topology cannot carry, or a wrap mode on too small an extent.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrUnknownTopology indicates an unrecognised Topology value or name.
	ErrUnknownTopology = errors.New("grid: unknown topology")
	// ErrInvalidMask indicates an inverted mask rectangle.
	ErrInvalidMask = errors.New("grid: invalid mask rectangle")
	// ErrUnsupportedWrap indicates a wrap mode on a topology that cannot wrap.
	ErrUnsupportedWrap = errors.New("grid: wrap mode not supported by topology")
)

// NoCell marks an absent neighbor or a failed lookup.
const NoCell = -1

// GroupLoner is the distinguished group tag for cells popped as dead ends.
const GroupLoner = -1

// Topology selects the cell layout of a Grid.
type Topology int

const (
	// Square is the orthogonal four-neighbor layout (six with levels).
	Square Topology = iota
	// Triangle alternates upright and inverted triangles along each row.
	Triangle
	// Hex is a flat-topped, column-offset hexagonal layout.
	Hex
	// Polar arranges cells in concentric rings around a single centre cell.
	Polar
	// Weave is a square layout whose passages may cross over and under.
	Weave
)

var topologyNames = [...]string{"square", "triangle", "hex", "polar", "weave"}

// String returns the lower-case topology name.
func (t Topology) String() string {
	if t < 0 || int(t) >= len(topologyNames) {
		return fmt.Sprintf("Topology(%d)", int(t))
	}
	return topologyNames[t]
}

// ParseTopology resolves a topology name, case-insensitively.
func ParseTopology(s string) (Topology, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range topologyNames {
		if n == key {
			return Topology(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(topologyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	v, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Wrap folds coordinates that fall off an edge back into the grid.
type Wrap int

const (
	// WrapNone leaves edges open: off-grid lookups yield NoCell.
	WrapNone Wrap = iota
	// WrapCylinder joins the first and last columns.
	WrapCylinder
	// WrapMobius joins the first and last columns with the rows mirrored.
	WrapMobius
	// WrapTorus joins columns and rows.
	WrapTorus
)

var wrapNames = [...]string{"none", "cylinder", "mobius", "torus"}

// String returns the lower-case wrap name.
func (w Wrap) String() string {
	if w < 0 || int(w) >= len(wrapNames) {
		return fmt.Sprintf("Wrap(%d)", int(w))
	}
	return wrapNames[w]
}

// ParseWrap resolves a wrap mode name; the empty string is WrapNone.
func ParseWrap(s string) (Wrap, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return WrapNone, nil
	}
	for i, n := range wrapNames {
		if n == key {
			return Wrap(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown wrap %q", ErrUnsupportedWrap, s)
}

// MarshalText implements encoding.TextMarshaler.
func (w Wrap) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wrap) UnmarshalText(b []byte) error {
	v, err := ParseWrap(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// WeaveStrategy decides how a weave grid acquires crossings.
type WeaveStrategy int

const (
	// WeaveTunnels lets over cells report tunnel neighbors two hops away;
	// linking to one digs an under cell on the spot.
	WeaveTunnels WeaveStrategy = iota
	// WeaveCrossings reports only direct neighbors; crossings are laid
	// explicitly with AddCrossing.
	WeaveCrossings
)

// String returns the strategy name.
func (s WeaveStrategy) String() string {
	if s == WeaveCrossings {
		return "crossings"
	}
	return "tunnels"
}

// ParseWeaveStrategy resolves "tunnels" (or "") and "crossings".
func ParseWeaveStrategy(s string) (WeaveStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tunnels":
		return WeaveTunnels, nil
	case "crossings", "kruskal":
		return WeaveCrossings, nil
	}
	return 0, fmt.Errorf("%w: unknown weave strategy %q", ErrUnknownTopology, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s WeaveStrategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *WeaveStrategy) UnmarshalText(b []byte) error {
	v, err := ParseWeaveStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Kind is the closed variant tag of a Cell.
type Kind uint8

const (
	KindSquare Kind = iota
	KindTriangle
	KindHex
	KindPolar
	KindOver
	KindUnder
)

var kindNames = [...]string{"square", "triangle", "hex", "polar", "over", "under"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Square, weave over and weave under slots.
const (
	North = iota
	East
	South
	West
	Up
	Down
)

// Triangle slots. TriVertical points south for upright cells, north otherwise.
const (
	TriWest = iota
	TriEast
	TriVertical
)

// Hex slots, clockwise from the top edge.
const (
	HexNorth = iota
	HexNorthEast
	HexSouthEast
	HexSouth
	HexSouthWest
	HexNorthWest
)

// Polar slots. Outward neighbors live in a separate list (Cell.Outward);
// PolarOutward is only used as a wall-mask bit.
const (
	Clockwise = iota
	CounterClockwise
	Inward
	PolarOutward
)

// Reverse returns the slot that points back across direction d for a cell
// of kind k, or NoCell when the reciprocal is not a slot (polar Inward,
// whose reciprocal is the Outward list).
func Reverse(k Kind, d int) int {
	switch k {
	case KindSquare, KindOver, KindUnder:
		switch d {
		case North, East, South, West:
			return (d + 2) % 4
		case Up:
			return Down
		case Down:
			return Up
		}
	case KindTriangle:
		switch d {
		case TriWest:
			return TriEast
		case TriEast:
			return TriWest
		case TriVertical:
			return TriVertical
		}
	case KindHex:
		if d >= 0 && d < 6 {
			return (d + 3) % 6
		}
	case KindPolar:
		switch d {
		case Clockwise:
			return CounterClockwise
		case CounterClockwise:
			return Clockwise
		}
	}
	return NoCell
}

// Rect is an inclusive mask patch in (column, row) space: X0..X1, Y0..Y1.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Point is a cell centre or polygon vertex. Z carries the level offset.
type Point struct {
	X, Y, Z float64
}

// Option configures a Grid at construction.
type Option func(*Options)

// Options holds construction parameters. Invalid values are recorded and
// surfaced from New.
type Options struct {
	// Levels stacks square grids vertically (Up/Down slots). Default 1.
	Levels int
	// Wrap folds edges (square and weave only).
	Wrap Wrap
	// Masks are applied, in order, right after the neighbors are wired.
	Masks []Rect
	// CellSize scales every position. Default 1.
	CellSize float64
	// Weave selects the crossing strategy of a Weave grid.
	Weave WeaveStrategy

	err error
}

// DefaultOptions returns one level, no wrap, no masks, unit cells and
// tunnel weaving.
func DefaultOptions() Options {
	return Options{Levels: 1, CellSize: 1, Wrap: WrapNone, Weave: WeaveTunnels}
}

// WithLevels sets the number of stacked levels (square only when > 1).
func WithLevels(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: levels must be >= 1 (%d)", ErrInvalidDimensions, n)
			return
		}
		o.Levels = n
	}
}

// WithWrap selects an edge wrap mode.
func WithWrap(w Wrap) Option {
	return func(o *Options) {
		if w < WrapNone || w > WrapTorus {
			o.err = fmt.Errorf("%w: %d", ErrUnsupportedWrap, int(w))
			return
		}
		o.Wrap = w
	}
}

// WithMask excludes the inclusive rectangle [x0..x1]×[y0..y1] on every level.
// Parts outside the grid are clipped.
func WithMask(x0, y0, x1, y1 int) Option {
	return func(o *Options) {
		if x0 > x1 || y0 > y1 {
			o.err = fmt.Errorf("%w: [%d,%d,%d,%d]", ErrInvalidMask, x0, y0, x1, y1)
			return
		}
		o.Masks = append(o.Masks, Rect{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
}

// WithCellSize scales positions and blueprint geometry.
func WithCellSize(size float64) Option {
	return func(o *Options) {
		if !(size > 0) {
			o.err = fmt.Errorf("%w: cell size must be > 0 (%v)", ErrInvalidDimensions, size)
			return
		}
		o.CellSize = size
	}
}

// WithWeaveStrategy selects tunnels or explicit crossings for Weave grids.
func WithWeaveStrategy(s WeaveStrategy) Option {
	return func(o *Options) {
		o.Weave = s
	}
}

// Stats summarises a grid for hosts and logs.
type Stats struct {
	Cells    int `json:"cells" yaml:"cells"`
	Links    int `json:"links" yaml:"links"`
	DeadEnds int `json:"dead_ends" yaml:"dead_ends"`
	MaxLinks int `json:"max_links" yaml:"max_links"`
	Groups   int `json:"groups" yaml:"groups"`
	Masked   int `json:"masked" yaml:"masked"`
}
