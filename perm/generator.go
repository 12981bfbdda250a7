package perm

// Generator enumerates all n! orderings of 0..n-1 with the iterative form of
// Heap's algorithm: each successive permutation differs from the previous one
// by a single swap, and no recursion is involved.
//
// The sequence is lazy (one permutation of state), finite (exactly n! items,
// one empty permutation for n==0) and restartable via Reset.
//
// Usage:
//
//	g := perm.NewGenerator(4)
//	for g.Next() {
//		p := g.Current()
//		_ = p
//	}
//
// A Generator is not safe for concurrent use.
type Generator struct {
	n       int
	a       Permutation // current arrangement
	c       []int       // Heap's per-level counters
	i       int         // current level
	started bool
	done    bool
	count   int
}

// NewGenerator returns a generator over the permutations of 0..n-1.
// Negative n is treated as 0.
func NewGenerator(n int) *Generator {
	if n < 0 {
		n = 0
	}
	g := &Generator{n: n}
	g.Reset()

	return g
}

// Reset rewinds the generator to the identity permutation.
//
// Complexity: O(n).
func (g *Generator) Reset() {
	g.a = Identity(g.n)
	g.c = make([]int, g.n)
	g.i = 1
	g.started = false
	g.done = false
	g.count = 0
}

// Next advances to the following permutation and reports whether one exists.
//
// Complexity: amortized O(1) per call.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		g.count = 1
		return true
	}
	for g.i < g.n {
		if g.c[g.i] < g.i {
			if g.i%2 == 0 {
				g.a[0], g.a[g.i] = g.a[g.i], g.a[0]
			} else {
				g.a[g.c[g.i]], g.a[g.i] = g.a[g.i], g.a[g.c[g.i]]
			}
			g.c[g.i]++
			g.i = 1
			g.count++
			return true
		}
		g.c[g.i] = 0
		g.i++
	}
	g.done = true

	return false
}

// Current returns a copy of the current permutation. It must only be called
// after Next returned true.
func (g *Generator) Current() Permutation {
	return g.a.Clone()
}

// Count returns how many permutations have been produced since the last Reset.
func (g *Generator) Count() int { return g.count }

// Len returns n.
func (g *Generator) Len() int { return g.n }
