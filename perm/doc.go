// Package perm provides the candidate representation shared by every
// permutation-based genetic algorithm in this module.
//
// A candidate is a Permutation: an ordering of the indices 0..n-1 where each
// index appears exactly once. Indices refer to the symbols of an Alphabet
// (city names, program identifiers, ...), so the engine never touches the
// problem-specific names while adapters can always decode a result.
//
// The package also owns:
//
//   - Validate: the single source of truth for the candidate invariant.
//   - Generator: an iterative (Heap's algorithm) enumeration of all n!
//     orderings. It is lazy, finite and restartable; nothing is built eagerly.
//   - Factorial: n! with an explicit ceiling so callers can decide up front
//     whether exhaustive enumeration is affordable.
//   - RNG helpers: deterministic, seed-driven *rand.Rand construction and
//     Fisher–Yates shuffles. There is no hidden global random source.
//
// Concurrency:
//   - Permutation values are plain slices; share them read-only or Clone them.
//   - math/rand.Rand is NOT goroutine-safe; derive one stream per worker with DeriveRand.
package perm
