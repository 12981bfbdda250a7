package perm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for candidate validation and alphabet handling.
var (
	// ErrLength is returned when a permutation does not have the expected length.
	ErrLength = errors.New("perm: length mismatch")

	// ErrOutOfRange is returned when a permutation holds an index outside [0..n-1].
	ErrOutOfRange = errors.New("perm: index out of range")

	// ErrDuplicate is returned when an index occurs more than once.
	ErrDuplicate = errors.New("perm: duplicate index")

	// ErrEmptyAlphabet is returned when an alphabet has no symbols.
	ErrEmptyAlphabet = errors.New("perm: empty alphabet")

	// ErrBadSymbol is returned for empty, duplicate or unknown symbol names.
	ErrBadSymbol = errors.New("perm: invalid symbol")
)

// Permutation is an ordering of the indices 0..n-1.
type Permutation []int

// Identity returns the permutation [0, 1, ..., n-1].
// For n<=0 it returns an empty, non-nil permutation.
//
// Complexity: O(n).
func Identity(n int) Permutation {
	if n < 0 {
		n = 0
	}
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Clone returns an independent copy of p. Clone of nil is nil.
//
// Complexity: O(n).
func (p Permutation) Clone() Permutation {
	if p == nil {
		return nil
	}
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// Equal reports element-wise equality.
func (p Permutation) Equal(other Permutation) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// String renders p as "[2 0 1]".
func (p Permutation) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

// Alphabet is an ordered set of distinct, non-empty symbol names.
// Position i of the alphabet is the meaning of index i in a Permutation.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

// NewAlphabet builds an Alphabet from symbols, preserving their order.
//
// Errors:
//   - ErrEmptyAlphabet if no symbols are given.
//   - ErrBadSymbol (wrapped) on empty or repeated names.
//
// Complexity: O(n) time and space.
func NewAlphabet(symbols ...string) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	a := Alphabet{
		symbols: make([]string, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}
	for i, s := range symbols {
		if s == "" {
			return Alphabet{}, fmt.Errorf("symbol %d is empty: %w", i, ErrBadSymbol)
		}
		if _, dup := a.index[s]; dup {
			return Alphabet{}, fmt.Errorf("symbol %q repeated: %w", s, ErrBadSymbol)
		}
		a.symbols[i] = s
		a.index[s] = i
	}

	return a, nil
}

// Len returns the number of symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbol returns the name at index i, or "" when i is out of range.
func (a Alphabet) Symbol(i int) string {
	if i < 0 || i >= len(a.symbols) {
		return ""
	}
	return a.symbols[i]
}

// Symbols returns a copy of the names in alphabet order.
func (a Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Index returns the index of name and whether it exists.
func (a Alphabet) Index(name string) (int, bool) {
	i, ok := a.index[name]
	return i, ok
}

// Decode maps a permutation to symbol names. The permutation must be valid
// for this alphabet.
//
// Complexity: O(n).
func (a Alphabet) Decode(p Permutation) ([]string, error) {
	if err := Validate(p, a.Len()); err != nil {
		return nil, err
	}
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = a.symbols[v]
	}

	return out, nil
}

// Encode maps symbol names to a permutation. Every symbol of the alphabet
// must appear exactly once.
//
// Complexity: O(n).
func (a Alphabet) Encode(names []string) (Permutation, error) {
	p := make(Permutation, len(names))
	for i, name := range names {
		idx, ok := a.index[name]
		if !ok {
			return nil, fmt.Errorf("unknown symbol %q: %w", name, ErrBadSymbol)
		}
		p[i] = idx
	}
	if err := Validate(p, a.Len()); err != nil {
		return nil, err
	}

	return p, nil
}
