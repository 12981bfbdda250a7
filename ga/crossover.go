package ga

import (
	"math/rand"

	"github.com/katalvlaran/permga/perm"
)

// Crossover recombines two parents into two children. Implementations must
// not modify the parents and must return valid permutations of the same
// alphabet.
type Crossover interface {
	Cross(a, b perm.Permutation, rng *rand.Rand) (perm.Permutation, perm.Permutation)
}

// PrefixCrossover is the order-preserving one-cut crossover: with a cut drawn
// uniformly from [1, L-2], child 1 keeps a[:cut] and appends the remaining
// symbols in b's order; child 2 is built symmetrically. For L < 3 (or parents
// of different length) the children are copies of the parents.
type PrefixCrossover struct{}

// Cross implements Crossover.
//
// Complexity: O(L).
func (PrefixCrossover) Cross(a, b perm.Permutation, rng *rand.Rand) (perm.Permutation, perm.Permutation) {
	l := len(a)
	if l < 3 || len(b) != l {
		return a.Clone(), b.Clone()
	}
	cut := 1 + rng.Intn(l-2)

	return CrossAt(a, b, cut)
}

// CrossAt applies the prefix crossover at a fixed cut. A cut outside [0, L]
// or parents of different length yield copies of the parents.
func CrossAt(a, b perm.Permutation, cut int) (perm.Permutation, perm.Permutation) {
	if len(a) != len(b) || cut < 0 || cut > len(a) {
		return a.Clone(), b.Clone()
	}
	return prefixChild(a, b, cut), prefixChild(b, a, cut)
}

// prefixChild copies head[:cut] then every symbol of tail not yet used, in
// tail's order. Both parents are assumed to be permutations of 0..L-1.
func prefixChild(head, tail perm.Permutation, cut int) perm.Permutation {
	var (
		l     = len(head)
		used  = make([]bool, l)
		child = make(perm.Permutation, 0, l)
	)
	for _, v := range head[:cut] {
		child = append(child, v)
		used[v] = true
	}
	for _, v := range tail {
		if !used[v] {
			child = append(child, v)
			used[v] = true
		}
	}

	return child
}

// OrderCrossover is the two-cut order crossover (OX): each child keeps the
// segment [i, j) of one parent in place and fills the remaining positions,
// starting right after the segment and wrapping around, with the other
// parent's symbols in the order they appear from j onwards.
// For L < 2 the children are copies.
type OrderCrossover struct{}

// Cross implements Crossover.
//
// Complexity: O(L).
func (OrderCrossover) Cross(a, b perm.Permutation, rng *rand.Rand) (perm.Permutation, perm.Permutation) {
	l := len(a)
	if l < 2 || len(b) != l {
		return a.Clone(), b.Clone()
	}
	i := rng.Intn(l)
	j := rng.Intn(l)
	if i > j {
		i, j = j, i
	}
	if i == j {
		// keep the segment non-empty; i <= l-1 so j <= l
		j = i + 1
	}

	return oxChild(a, b, i, j), oxChild(b, a, i, j)
}

func oxChild(keep, fill perm.Permutation, i, j int) perm.Permutation {
	var (
		l     = len(keep)
		child = make(perm.Permutation, l)
		used  = make([]bool, l)
	)
	for k := range child {
		child[k] = -1
	}
	for k := i; k < j; k++ {
		child[k] = keep[k]
		used[keep[k]] = true
	}
	pos := j % l
	for k := 0; k < l; k++ {
		v := fill[(j+k)%l]
		if used[v] {
			continue
		}
		for child[pos] != -1 {
			pos = (pos + 1) % l
		}
		child[pos] = v
		used[v] = true
	}

	return child
}
