// SPDX-License-Identifier: MIT

// Package rng is the single seedable random source used by grid sampling,
// carving algorithms and post-processing passes.
//
// What:
//
//   - Source wraps a *math/rand.Rand together with the seed it was built from.
//   - Reseed is an explicit, observable side effect: two picks made after
//     reseeding with the same value are correlated, and that is intended.
//   - Choice / ShuffleSlice / WeightedIndex cover every draw the carving
//     algorithms make, so no package reaches for the global rand functions.
//
// Determinism:
//
//	seed == 0 selects DefaultSeed; any other seed is used verbatim. The same
//	seed and the same call sequence always produce the same maze.
//
// Concurrency:
//
//	A Source is NOT goroutine-safe. Use Derive to split independent streams.
package rng
