// Package permga is a small toolkit for optimizing orderings with a
// generational genetic algorithm.
//
// 🚀 What is permga?
//
//	A deterministic, seed-driven GA engine over permutations plus two
//	ready-made problem adapters:
//		• perm/    : candidates: Permutation, Alphabet, validation, Heap's-algorithm
//		              generator, seeded RNG helpers
//		• matrix/  : Dense lookup tables (distances, ratings) with strict numeric checks
//		• ga/      : Problem contract, initializers, selection, crossover, mutation,
//		              the Engine (New/Step/Run), statistics and results
//		• tsp/     : Traveling Salesman: cities → distance table → tours, 2-opt polish
//		• schedule/: TV scheduling: ratings table → program-to-slot assignments
//
// ✨ Why permga?
//
//   - Reproducible – the same seed gives the same run, for any worker count
//   - Pluggable – every operator is a small interface selected with an Option
//   - Safe – every candidate is a valid permutation at every generation
//
// Quick example:
//
//	cities := []tsp.City{{Name: "A"}, {Name: "B", X: 1}, {Name: "C", X: 1, Y: 1}, {Name: "D", Y: 1}}
//	route, _, err := tsp.Solve(cities, ga.DefaultConfig(), ga.WithSeed(7))
//	// route: A -> B -> C -> D -> A (d=4)
//
// Runnable demos live in examples/tspcities and examples/tvschedule.
//
//	go get github.com/katalvlaran/permga
package permga
