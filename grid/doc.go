// Package grid models a maze as a graph of cells held in a single arena.
//
// What:
//
//   - Grid owns every Cell of one Topology (Square, Triangle, Hex, Polar,
//     Weave) and wires neighbor slots per topology rule.
//   - Cells refer to each other by arena index; NoCell marks "no neighbor".
//   - Links (carved passages) are symmetric: Link and Unlink always change
//     both endpoints.
//   - Masking removes a cell from iteration, sampling and every neighbor's view.
//   - Post-processing: DeadEnds, BraidDeadEnds, SparseDeadEnds.
//   - Analysis and rendering data: Components, IsPerfect, Stats, WallMask,
//     Position, Blueprint.
//
// Slot order is part of the contract (algorithms index by direction):
//
//   - Square / Weave: North, East, South, West (+ Up, Down with levels).
//   - Triangle:       TriWest, TriEast, TriVertical.
//   - Hex:            HexNorth, HexNorthEast, HexSouthEast, HexSouth, HexSouthWest, HexNorthWest.
//   - Polar:          Clockwise, CounterClockwise, Inward; outward list apart.
//
// North is row+1. Storage is col + row*cols + level*rows*cols; polar rings
// are stored centre-out; weave under cells are appended after the dense block.
//
// Wrapping (square and weave only):
//
//   - WrapCylinder: columns wrap.
//   - WrapMobius:   columns wrap with rows mirrored across the seam.
//   - WrapTorus:    columns and rows wrap.
//
// Weave:
//
//	With WeaveTunnels an over cell also reports the cell two hops away when
//	the middle cell carries a straight passage across the tunnel axis.
//	Linking to it digs an under cell. WeaveCrossings reports direct
//	neighbors only; AddCrossing lays crossings explicitly.
//
// Complexity:
//
//   - New:            O(N) time and memory.
//   - EachCell:       O(N) per pass, lazy.
//   - Components:     O(N + L).
//   - BraidDeadEnds:  O(N·d).
//   - SparseDeadEnds: O(N²) worst case (rescans after each sweep).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive extent, levels on a non-square grid,
//     wrap on fewer than three cells per wrapped axis, bad cell size.
//   - ErrUnknownTopology:   topology value or name not recognised.
//   - ErrInvalidMask:       inverted mask rectangle.
//   - ErrUnsupportedWrap:   wrap requested on triangle, hex or polar grids.
//
// Off-grid lookups are never errors: they yield NoCell.
package grid
