// Package tsp adapts the Traveling Salesman Problem to the ga engine.
//
// A Problem is built from named cities on the plane. Candidates are
// permutations of the city indices; a candidate is read as a closed round
// trip that returns from the last city to the first. Fitness is the negated
// tour length, so the engine's "higher is better" convention minimizes
// distance.
//
// What this package provides:
//   - City, Route: input and decoded output types.
//   - NewProblem: Euclidean distance table (matrix.Dense, symmetric, zero diagonal).
//   - Problem.TourLength / Problem.Fitness / Problem.Decode.
//   - Solve: one-call wrapper around ga.Solve returning a canonical Route.
//   - Closed, Canonical, EqualCyclic: tour utilities over index permutations.
//
// Design:
//   - A Problem is immutable after NewProblem and safe for concurrent Fitness calls.
//   - No logging, no panics on user input; sentinel errors live in types.go.
//   - Tour lengths are rounded to 1e-9 so equal tours compare equal across
//     platforms.
//
// Example:
//
//	cities := []tsp.City{{Name: "A"}, {Name: "B", X: 1}, {Name: "C", X: 1, Y: 1}, {Name: "D", Y: 1}}
//	route, res, err := tsp.Solve(cities, ga.DefaultConfig(), ga.WithSeed(7))
//	if err != nil { /* handle */ }
//	fmt.Println(route, res.Generations)
package tsp
