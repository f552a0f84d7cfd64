// Package maze is the host-facing entry point: a Config goes in, a carved
// grid with distances, diameter, stats and blueprint comes out.
//
// What:
//
//   - Config      — topology, size, wrap, masks, weave strategy, algorithm,
//     seed, bias, braid and sparse fractions (yaml/json tagged).
//   - Generate    — build grid → carve → braid → sparsify → diameter →
//     solution path → stats → blueprint.
//   - Result      — the finished maze; Cells() flattens it for renderers.
//
// Generation is single-threaded and synchronous. A Result is a snapshot:
// mutating Result.Grid afterwards leaves Distances stale.
//
// Errors:
//
//   - ErrInvalidConfig wraps every configuration problem, including the
//     grid package's dimension, mask and wrap errors and carve's
//     ErrUnknownAlgorithm.
package maze
