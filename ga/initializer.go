package ga

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/permga/perm"
)

// DefaultEnumerationCeiling bounds exhaustive enumeration (8! orderings).
const DefaultEnumerationCeiling uint64 = 40320

// Initializer produces the starting population: exactly n valid
// permutations of length p.Size().
type Initializer interface {
	Initialize(p Problem, n int, rng *rand.Rand) ([]perm.Permutation, error)
}

// ShuffleInit builds every candidate by an independent Fisher–Yates shuffle.
// Duplicates are possible.
type ShuffleInit struct{}

// Initialize implements Initializer.
//
// Complexity: O(n·L).
func (ShuffleInit) Initialize(p Problem, n int, rng *rand.Rand) ([]perm.Permutation, error) {
	l := p.Size()
	out := make([]perm.Permutation, n)
	for i := range out {
		out[i] = perm.Random(l, rng)
	}

	return out, nil
}

// SampleInit draws n distinct permutations without replacement.
//
// When L! ≤ Ceiling the ranks are sampled uniformly (Floyd's algorithm) and
// materialized by streaming a perm.Generator, so the full permutation list is
// never built. Larger spaces fall back to shuffling with duplicate rejection.
// A population larger than L! is a configuration error.
//
// A zero Ceiling means DefaultEnumerationCeiling.
type SampleInit struct {
	Ceiling uint64
}

// Initialize implements Initializer.
func (s SampleInit) Initialize(p Problem, n int, rng *rand.Rand) ([]perm.Permutation, error) {
	l := p.Size()
	if err := checkDistinct(l, n); err != nil {
		return nil, err
	}
	total, ok := perm.Factorial(l, ceilingOr(s.Ceiling))
	if !ok {
		return rejectionSample(l, n, rng), nil
	}

	ranks := sampleRanks(total, n, rng)
	out := make([]perm.Permutation, 0, n)
	g := perm.NewGenerator(l)
	var (
		rank uint64
		next int
	)
	for g.Next() && next < len(ranks) {
		if rank == ranks[next] {
			out = append(out, g.Current())
			next++
		}
		rank++
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out, nil
}

// checkDistinct rejects populations larger than the L! distinct permutations.
func checkDistinct(l, n int) error {
	total, ok := perm.Factorial(l, uint64(n))
	if ok && total < uint64(n) {
		return configErr("PopulationSize", n,
			fmt.Sprintf("exceeds the %d distinct permutations of length %d", total, l))
	}
	return nil
}

func ceilingOr(c uint64) uint64 {
	if c == 0 {
		return DefaultEnumerationCeiling
	}
	return c
}

// sampleRanks returns n distinct values from [0,total), ascending.
// Floyd's algorithm: O(n) draws regardless of total.
func sampleRanks(total uint64, n int, rng *rand.Rand) []uint64 {
	chosen := make(map[uint64]struct{}, n)
	out := make([]uint64, 0, n)
	for j := total - uint64(n); j < total; j++ {
		t := uint64(rng.Int63n(int64(j + 1)))
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })

	return out
}

func rejectionSample(l, n int, rng *rand.Rand) []perm.Permutation {
	seen := make(map[string]struct{}, n)
	out := make([]perm.Permutation, 0, n)
	for len(out) < n {
		c := perm.Random(l, rng)
		key := c.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	return out
}

// ExhaustiveSeedInit enumerates every ordering, seeds the population with the
// globally best one and fills the remaining n-1 slots with shuffles of it.
// Enumeration beyond Ceiling (zero means DefaultEnumerationCeiling) is a
// configuration error.
type ExhaustiveSeedInit struct {
	Ceiling uint64
}

// Initialize implements Initializer.
//
// Complexity: O(L!·F) for the enumeration, F being the cost of one fitness call.
func (s ExhaustiveSeedInit) Initialize(p Problem, n int, rng *rand.Rand) ([]perm.Permutation, error) {
	best, err := ExhaustiveBest(p, s.Ceiling)
	if err != nil {
		return nil, err
	}
	out := make([]perm.Permutation, n)
	out[0] = best.Genome
	for i := 1; i < n; i++ {
		c := best.Genome.Clone()
		perm.Shuffle(c, rng)
		out[i] = c
	}

	return out, nil
}

// ExhaustiveBest scores all L! orderings of p and returns the best one (the
// first in enumeration order on ties). It is the exact oracle for instances
// small enough to enumerate.
//
// Errors:
//   - ErrDegenerateInstance if p is nil or L < 1.
//   - *ConfigError if L! exceeds ceiling (zero means DefaultEnumerationCeiling).
func ExhaustiveBest(p Problem, ceiling uint64) (Individual, error) {
	if p == nil || p.Size() < 1 {
		return Individual{}, ErrDegenerateInstance
	}
	l := p.Size()
	ceiling = ceilingOr(ceiling)
	if _, ok := perm.Factorial(l, ceiling); !ok {
		return Individual{}, configErr("EnumerationCeiling", ceiling,
			fmt.Sprintf("%d! orderings exceed the enumeration ceiling", l))
	}

	var (
		g    = perm.NewGenerator(l)
		best Individual
		have bool
	)
	for g.Next() {
		c := g.Current()
		f := score(p, c)
		if !have || f > best.Fitness {
			best = Individual{Genome: c, Fitness: f}
			have = true
		}
	}

	return best, nil
}
