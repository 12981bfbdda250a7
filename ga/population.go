package ga

import (
	"sort"

	"github.com/katalvlaran/permga/perm"
	"gonum.org/v1/gonum/stat"
)

// Individual is a scored candidate.
type Individual struct {
	Genome  perm.Permutation
	Fitness float64
}

// Clone returns a deep copy of the individual.
func (in Individual) Clone() Individual {
	return Individual{Genome: in.Genome.Clone(), Fitness: in.Fitness}
}

// Population is the set of candidates alive in one generation.
//
// The engine never mutates a Population after publishing it; each generation
// gets a fresh one. Callers receiving a Population (hooks, Engine.Population)
// must treat it as read-only.
type Population struct {
	Members    []Individual
	Generation int
}

func newPopulation(genomes []perm.Permutation, scores []float64, generation int) Population {
	members := make([]Individual, len(genomes))
	for i := range genomes {
		members[i] = Individual{Genome: genomes[i], Fitness: scores[i]}
	}
	return Population{Members: members, Generation: generation}
}

// Len returns the number of members.
func (p Population) Len() int { return len(p.Members) }

// Scores returns the fitness values in member order.
func (p Population) Scores() []float64 {
	out := make([]float64, len(p.Members))
	for i, m := range p.Members {
		out[i] = m.Fitness
	}
	return out
}

// Ranked returns member indices ordered by fitness, best first. Ties keep
// member order, which keeps elitism deterministic.
//
// Complexity: O(n log n).
func (p Population) Ranked() []int {
	idx := make([]int, len(p.Members))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.Members[idx[a]].Fitness > p.Members[idx[b]].Fitness
	})

	return idx
}

// Sorted returns copies of the members ordered best first.
func (p Population) Sorted() []Individual {
	out := make([]Individual, 0, len(p.Members))
	for _, i := range p.Ranked() {
		out = append(out, p.Members[i].Clone())
	}
	return out
}

// Best returns a copy of the fittest member; see BestOf.
func (p Population) Best() (Individual, error) { return BestOf(p) }

// BestOf returns a copy of the fittest member (the first one on ties).
func BestOf(p Population) (Individual, error) {
	if len(p.Members) == 0 {
		return Individual{}, ErrEmptyPopulation
	}
	best := 0
	for i := 1; i < len(p.Members); i++ {
		if p.Members[i].Fitness > p.Members[best].Fitness {
			best = i
		}
	}

	return p.Members[best].Clone(), nil
}

// GenerationStats summarizes the fitness distribution of one generation.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	StdDev     float64
}

// Summarize computes GenerationStats for p. StdDev is the sample standard
// deviation (zero for fewer than two members).
func Summarize(p Population) GenerationStats {
	s := GenerationStats{Generation: p.Generation}
	if len(p.Members) == 0 {
		return s
	}
	scores := p.Scores()
	s.Best, s.Worst = scores[0], scores[0]
	for _, v := range scores[1:] {
		if v > s.Best {
			s.Best = v
		}
		if v < s.Worst {
			s.Worst = v
		}
	}
	if len(scores) < 2 {
		s.Mean = scores[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(scores, nil)

	return s
}

// Result is the outcome of a run: the best candidate found across all
// generations, how many generations were executed and the per-generation
// statistics (History[0] describes the initial population).
type Result struct {
	Best        Individual
	Generations int
	History     []GenerationStats
}
