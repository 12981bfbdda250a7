// Package ga_test holds shared helpers for the engine tests.
package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/perm"
	"github.com/stretchr/testify/require"
)

const seedDet = int64(42)

// matchProblem scores a candidate by the number of positions holding their
// own index, so the identity is the unique optimum with fitness L.
func matchProblem(n int) ga.ProblemFunc {
	return ga.ProblemFunc{N: n, Eval: func(p perm.Permutation) float64 {
		var hits float64
		for i, v := range p {
			if i == v {
				hits++
			}
		}
		return hits
	}}
}

// fixedSource is a rand.Source returning one constant, which makes
// rng.Float64() == v / 2^63 exactly.
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v }
func (fixedSource) Seed(int64)     {}

// randAt returns a generator whose Float64() always yields u, u = k/2^63.
func randAt(v int64) *rand.Rand { return rand.New(fixedSource{v: v}) }

// requireValidPopulation asserts the population-size and candidate invariants.
func requireValidPopulation(t *testing.T, pop ga.Population, n, l int) {
	t.Helper()
	require.Equal(t, n, pop.Len(), "generation %d", pop.Generation)
	for i, m := range pop.Members {
		require.NoError(t, perm.Validate(m.Genome, l), "generation %d member %d", pop.Generation, i)
	}
}

// countingInit wraps an Initializer and records how often it ran.
type countingInit struct {
	inner ga.Initializer
	calls int
}

func (c *countingInit) Initialize(p ga.Problem, n int, rng *rand.Rand) ([]perm.Permutation, error) {
	c.calls++
	return c.inner.Initialize(p, n, rng)
}

// genomeSet collects the string keys of every member.
func genomeSet(pop ga.Population) map[string]struct{} {
	out := make(map[string]struct{}, pop.Len())
	for _, m := range pop.Members {
		out[m.Genome.String()] = struct{}{}
	}
	return out
}
