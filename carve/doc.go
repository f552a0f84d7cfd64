// Package carve turns a grid.Grid into a maze by adding links.
//
// What:
//
//   - BinaryTree, Sidewinder: single pass in storage order; directions come
//     from the grid's topology strategy (TreeCandidates, RunForward, RunClose).
//   - AldousBroder, Wilson: uniform spanning trees by random walks.
//   - HuntAndKill, RecursiveBacktracker, CrossStitch: walk-and-resume carvers
//     that tag cells with visualization groups.
//   - Kruskal (union-find, optional weave crossings) and Prim (min-heap over
//     random edge weights).
//
// Every algorithm run to completion on a connected, unmasked grid leaves a
// perfect maze: one component, N-1 links.
//
// Options:
//
//   - MaxSteps: loop-iteration budget; <= 0 selects DefaultMaxSteps.
//     Exhaustion is a normal stop reported in Result.Exhausted.
//   - Bias, RelativeWeight: candidate k weighs 1 + RelativeWeight·|Bias|·k,
//     k counted from the first candidate for Bias > 0, from the last for
//     Bias < 0. Sidewinder closes runs with probability (1+Bias)/2.
//
// Randomness comes only from the *rng.Source argument.
//
// Errors:
//
//   - ErrUnknownAlgorithm: Lookup with an unregistered name.
//
// Running out of candidates is never an error.
package carve
