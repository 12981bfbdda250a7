package ga

import (
	"math"

	"github.com/katalvlaran/permga/perm"
	"github.com/sourcegraph/conc/pool"
)

// MinFitness is the defined score of a degenerate candidate (zero length,
// foreign indices). It is finite so selection arithmetic stays well defined.
const MinFitness = -math.MaxFloat64

// Problem is the fitness contract the engine optimizes.
//
// Size returns L, the length of every candidate; candidates are permutations
// of 0..L-1. Fitness must be deterministic and free of side effects, because
// it is called concurrently when the engine runs with several workers.
// Higher is better.
type Problem interface {
	Size() int
	Fitness(p perm.Permutation) float64
}

// ProblemFunc adapts a plain function to Problem.
type ProblemFunc struct {
	N    int
	Eval func(p perm.Permutation) float64
}

// Size implements Problem.
func (f ProblemFunc) Size() int { return f.N }

// Fitness implements Problem. A nil Eval or an empty candidate scores MinFitness.
func (f ProblemFunc) Fitness(p perm.Permutation) float64 {
	if f.Eval == nil || len(p) == 0 {
		return MinFitness
	}
	return f.Eval(p)
}

// EvaluateAll scores genomes in order. With workers > 1 the candidates are
// scored on a bounded goroutine pool; each goroutine writes only its own slot
// of the result slice. NaN scores are replaced with MinFitness.
//
// Complexity: O(len(genomes)) fitness calls.
func EvaluateAll(problem Problem, genomes []perm.Permutation, workers int) []float64 {
	scores := make([]float64, len(genomes))
	if workers <= 1 || len(genomes) < 2 {
		for i, g := range genomes {
			scores[i] = score(problem, g)
		}
		return scores
	}

	p := pool.New().WithMaxGoroutines(workers)
	for i := range genomes {
		p.Go(func() {
			scores[i] = score(problem, genomes[i])
		})
	}
	p.Wait()

	return scores
}

func score(problem Problem, g perm.Permutation) float64 {
	f := problem.Fitness(g)
	if math.IsNaN(f) {
		return MinFitness
	}
	return f
}
