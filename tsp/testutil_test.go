// Package tsp_test holds shared fixtures for the TSP adapter tests.
package tsp_test

import (
	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/tsp"
)

// unitSquare returns the corners of the unit square in perimeter order.
// The optimal closed tour is the perimeter, length 4.
func unitSquare() []tsp.City {
	return []tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 0, Y: 1},
		{Name: "C", X: 1, Y: 1},
		{Name: "D", X: 1, Y: 0},
	}
}

// onLine returns n cities at x = 0..n-1; the optimal tour has length 2(n-1).
func onLine(n int) []tsp.City {
	out := make([]tsp.City, n)
	for i := range out {
		out[i] = tsp.City{Name: string(rune('a' + i)), X: float64(i)}
	}
	return out
}

// exhaustiveConfig sizes the population to cover every ordering when paired
// with ga.SampleInit.
func exhaustiveConfig(n int) ga.Config {
	return ga.Config{PopulationSize: n, Generations: 10, CrossoverRate: 0.8, MutationRate: 0.2, Elitism: 1}
}
