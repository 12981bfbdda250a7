package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/perm"
	"github.com/katalvlaran/permga/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	p, err := tsp.NewProblem(unitSquare())
	require.NoError(t, err)

	crossed := perm.Permutation{0, 2, 1, 3}
	out, err := p.TwoOpt(crossed, 0)
	require.NoError(t, err)
	d, err := p.TourLength(out)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
	assert.Equal(t, perm.Permutation{0, 2, 1, 3}, crossed, "input untouched")
}

func TestTwoOpt_NeverWorse(t *testing.T) {
	rng := perm.NewRand(21)
	cities := make([]tsp.City, 15)
	for i := range cities {
		cities[i] = tsp.City{Name: string(rune('A' + i)), X: rng.Float64(), Y: rng.Float64()}
	}
	p, err := tsp.NewProblem(cities)
	require.NoError(t, err)

	for trial := 0; trial < 10; trial++ {
		tour := perm.Random(15, rng)
		before, err := p.TourLength(tour)
		require.NoError(t, err)

		out, err := p.TwoOpt(tour, 0)
		require.NoError(t, err)
		require.NoError(t, perm.Validate(out, 15))
		after, err := p.TourLength(out)
		require.NoError(t, err)
		assert.LessOrEqual(t, after, before)

		again, err := p.TwoOpt(out, 0)
		require.NoError(t, err)
		assert.Equal(t, out, again, "a 2-optimal tour is a fixed point")
	}
}

func TestTwoOpt_CollinearOptimum(t *testing.T) {
	p, err := tsp.NewProblem(onLine(7))
	require.NoError(t, err)
	out, err := p.TwoOpt(perm.Permutation{0, 6, 1, 5, 2, 4, 3}, 0)
	require.NoError(t, err)
	d, err := p.TourLength(out)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, d, 1e-9)
}

func TestTwoOpt_MaxMoves(t *testing.T) {
	p, err := tsp.NewProblem(onLine(7))
	require.NoError(t, err)
	start := perm.Permutation{0, 6, 1, 5, 2, 4, 3}
	before, _ := p.TourLength(start)

	out, err := p.TwoOpt(start, 1)
	require.NoError(t, err)
	after, _ := p.TourLength(out)
	assert.Less(t, after, before)
	assert.False(t, math.IsNaN(after))
}

func TestTwoOpt_Errors(t *testing.T) {
	p, err := tsp.NewProblem(unitSquare())
	require.NoError(t, err)
	_, err = p.TwoOpt(perm.Permutation{0, 1}, 0)
	assert.ErrorIs(t, err, perm.ErrLength)
}

func TestTwoOptMutator_InEngine(t *testing.T) {
	p, err := tsp.NewProblem(onLine(8))
	require.NoError(t, err)

	cfg := ga.Config{PopulationSize: 20, Generations: 15, CrossoverRate: 0.8, MutationRate: 0.5, Elitism: 1}
	res, err := ga.Solve(p, cfg, ga.WithSeed(3), ga.WithMutator(tsp.TwoOptMutator{Problem: p}))
	require.NoError(t, err)
	assert.InDelta(t, -14.0, res.Best.Fitness, 1e-9)
}

func TestTwoOptMutator_NoProblem(t *testing.T) {
	out := tsp.TwoOptMutator{}.Mutate(perm.Identity(6), perm.NewRand(1))
	require.NoError(t, perm.Validate(out, 6))
}
