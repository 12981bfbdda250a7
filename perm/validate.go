package perm

import "fmt"

// Validate checks the candidate invariant: p has length n and holds every
// index of 0..n-1 exactly once.
//
// Errors (wrapped with the offending position):
//   - ErrLength    : len(p) != n.
//   - ErrOutOfRange: an element is outside [0..n-1].
//   - ErrDuplicate : an element occurs twice.
//
// Complexity: O(n) time, O(n) space (one marker slice).
func Validate(p Permutation, n int) error {
	if len(p) != n {
		return fmt.Errorf("want %d elements, got %d: %w", n, len(p), ErrLength)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 0 || v >= n {
			return fmt.Errorf("p[%d]=%d not in [0,%d): %w", i, v, n, ErrOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("p[%d]=%d: %w", i, v, ErrDuplicate)
		}
		seen[v] = true
	}

	return nil
}

// Factorial returns n! when it does not exceed ceiling. ok is false when the
// value would exceed ceiling (or overflow uint64), in which case the returned
// count is meaningless. Negative n yields (0, false).
//
// Complexity: O(min(n, 21)).
func Factorial(n int, ceiling uint64) (count uint64, ok bool) {
	if n < 0 {
		return 0, false
	}
	count = 1
	for k := 2; k <= n; k++ {
		// count*k > ceiling  <=>  count > ceiling/k (integer division is exact enough here).
		if count > ceiling/uint64(k) {
			return 0, false
		}
		count *= uint64(k)
	}
	if count > ceiling {
		return 0, false
	}

	return count, true
}
