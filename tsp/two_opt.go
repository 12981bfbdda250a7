// Package tsp - 2-opt local search over index permutations.
//
// TwoOpt performs deterministic first-improvement 2-opt on a cyclic tour.
// For positions i < k the move replaces edges (a,b),(c,d) with (a,c),(b,d)
// by reversing the segment [i+1..k]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), a=T[i], b=T[i+1], c=T[k], d=T[(k+1) mod n].
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Distances are prefetched into a flat buffer once per Problem.
//   - Only strictly improving moves (Δ < −eps) are applied, so the loop terminates.
//
// Complexity:
//   - One pass: O(n²) candidate checks; each accepted move costs O(n).
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/perm"
)

// twoOptEps is the minimum improvement for a move to be accepted.
const twoOptEps = 1e-12

// TwoOpt returns a 2-optimal copy of tour: no single segment reversal makes it
// shorter. maxMoves > 0 bounds the number of accepted moves; 0 means run to
// the local optimum.
//
// Errors: perm sentinels when tour is not a permutation of the city indices.
func (p *Problem) TwoOpt(tour perm.Permutation, maxMoves int) (perm.Permutation, error) {
	n := len(p.cities)
	if err := perm.Validate(tour, n); err != nil {
		return nil, err
	}
	cur := tour.Clone()
	if n < 4 {
		// every tour on three or fewer cities is the same cycle
		return cur, nil
	}

	w := p.flat()
	at := func(u, v int) float64 { return w[u*n+v] }

	var (
		accepted   int
		a, b, c, d int
		i, k       int
		delta      float64
	)
	for {
		improved := false
		for i = 0; i <= n-3; i++ {
			for k = i + 2; k <= n-1; k++ {
				if i == 0 && k == n-1 {
					// edges (T[0],T[1]) and (T[n-1],T[0]) share T[0]
					continue
				}
				a, b = cur[i], cur[i+1]
				c, d = cur[k], cur[(k+1)%n]
				delta = at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -twoOptEps {
					continue
				}
				reverseInPlace(cur, i+1, k)
				accepted++
				improved = true
				if maxMoves > 0 && accepted >= maxMoves {
					return cur, nil
				}
			}
		}
		if !improved {
			return cur, nil
		}
	}
}

// flat returns the distance table as a row-major slice, w[u*n+v] = d(u,v).
func (p *Problem) flat() []float64 {
	n := len(p.cities)
	w := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row, _ := p.dist.Row(i)
		w = append(w, row...)
	}
	return w
}

// TwoOptMutator is a ga.Mutator that applies a random inversion and then
// polishes the result with at most MaxMoves 2-opt moves (0: to the local
// optimum). Plugging it into the engine turns the run into a memetic search.
type TwoOptMutator struct {
	Problem  *Problem
	MaxMoves int
}

var _ ga.Mutator = TwoOptMutator{}

// Mutate implements ga.Mutator. Candidates that do not fit Problem are
// returned perturbed but unpolished.
func (m TwoOptMutator) Mutate(tour perm.Permutation, rng *rand.Rand) perm.Permutation {
	out := ga.InversionMutation{}.Mutate(tour, rng)
	if m.Problem == nil {
		return out
	}
	polished, err := m.Problem.TwoOpt(out, m.MaxMoves)
	if err != nil {
		return out
	}
	return polished
}
