// Package tsp - tour utilities over index permutations.
//
// A candidate permutation is an open cyclic order; the helpers here close it,
// bring it into a canonical rotation/orientation, and compare tours as cycles.
//
// Design:
//   - O(n) time for every helper; inputs are never modified.
//   - Invalid permutations yield perm sentinels, never panics.
package tsp

import "github.com/katalvlaran/permga/perm"

// Closed returns the tour with its start appended, e.g. [2 0 1] → [2 0 1 2].
// An empty tour yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Closed(tour perm.Permutation) []int {
	if len(tour) == 0 {
		return []int{}
	}
	out := make([]int, len(tour)+1)
	copy(out, tour)
	out[len(tour)] = tour[0]

	return out
}

// Canonical returns the representative of tour's cycle class: rotated so
// that city 0 comes first, then oriented so that out[1] < out[n-1]. Two
// tours describing the same undirected cycle have equal canonical forms.
//
// Complexity: O(n) time, O(n) space.
func Canonical(tour perm.Permutation) (perm.Permutation, error) {
	n := len(tour)
	if err := perm.Validate(tour, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return perm.Permutation{}, nil
	}

	var (
		out   = make(perm.Permutation, n)
		pivot int
		i     int
	)
	for i = 0; i < n; i++ {
		if tour[i] == 0 {
			pivot = i
			break
		}
	}
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	// Compare right vs left neighbour of the start.
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return out, nil
}

// reverseInPlace reverses the inclusive segment t[i..k].
func reverseInPlace(t perm.Permutation, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

// EqualCyclic reports whether a and b describe the same undirected cycle:
// equal up to rotation and reversal. Invalid permutations are never equal.
//
// Complexity: O(n).
func EqualCyclic(a, b perm.Permutation) bool {
	if len(a) != len(b) {
		return false
	}
	ca, err := Canonical(a)
	if err != nil {
		return false
	}
	cb, err := Canonical(b)
	if err != nil {
		return false
	}

	return ca.Equal(cb)
}
