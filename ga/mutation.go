package ga

import (
	"math/rand"

	"github.com/katalvlaran/permga/perm"
)

// Mutator perturbs one candidate. Implementations return a new permutation
// and leave the input untouched.
type Mutator interface {
	Mutate(p perm.Permutation, rng *rand.Rand) perm.Permutation
}

// SwapMutation exchanges the symbols at two distinct random positions.
// Candidates shorter than 2 are returned as copies.
type SwapMutation struct{}

// Mutate implements Mutator.
//
// Complexity: O(L) (the copy); the swap itself is O(1).
func (SwapMutation) Mutate(p perm.Permutation, rng *rand.Rand) perm.Permutation {
	out := p.Clone()
	if len(out) < 2 {
		return out
	}
	i, j := distinctPair(len(out), rng)
	out[i], out[j] = out[j], out[i]

	return out
}

// InversionMutation reverses the segment between two distinct random
// positions (inclusive), the 2-opt move on a tour.
type InversionMutation struct{}

// Mutate implements Mutator.
func (InversionMutation) Mutate(p perm.Permutation, rng *rand.Rand) perm.Permutation {
	out := p.Clone()
	if len(out) < 2 {
		return out
	}
	i, j := distinctPair(len(out), rng)
	if i > j {
		i, j = j, i
	}
	for i < j {
		out[i], out[j] = out[j], out[i]
		i++
		j--
	}

	return out
}

// distinctPair draws i != j uniformly from [0, n), n >= 2.
func distinctPair(n int, rng *rand.Rand) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// ScrambleMutation shuffles the symbols inside a random segment of at least
// two positions. The segment may be shuffled back into its original order.
type ScrambleMutation struct{}

// Mutate implements Mutator.
func (ScrambleMutation) Mutate(p perm.Permutation, rng *rand.Rand) perm.Permutation {
	out := p.Clone()
	if len(out) < 2 {
		return out
	}
	i, j := distinctPair(len(out), rng)
	if i > j {
		i, j = j, i
	}
	seg := out[i : j+1]
	rng.Shuffle(len(seg), func(a, b int) { seg[a], seg[b] = seg[b], seg[a] })

	return out
}
