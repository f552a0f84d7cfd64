// Package export turns a generated maze into files a host can consume.
//
// What:
//
//   - Document / WriteYAML / ReadYAML — a self-describing YAML snapshot:
//     config, carve report, stats, diameter, solution, per-cell records
//     and wall segments. The embedded config regenerates the same maze.
//   - Render / WritePNG — a raster preview of the blueprint, optionally
//     shaded by normalized distance, with the solution path and
//     start/finish markers composited on top.
//   - ASCII — a text drawing for single-level square and weave grids.
//
// Errors:
//
//   - ErrNilResult for a nil *maze.Result.
//   - ErrUnsupported when ASCII is asked for another topology.
//   - I/O and codec errors are wrapped with %w.
package export
