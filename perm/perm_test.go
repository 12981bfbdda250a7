package perm_test

import (
	"testing"

	"github.com/katalvlaran/permga/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, perm.Validate(perm.Permutation{2, 0, 1}, 3))
	require.NoError(t, perm.Validate(perm.Permutation{}, 0))

	assert.ErrorIs(t, perm.Validate(perm.Permutation{0, 1}, 3), perm.ErrLength)
	assert.ErrorIs(t, perm.Validate(perm.Permutation{0, 3, 1}, 3), perm.ErrOutOfRange)
	assert.ErrorIs(t, perm.Validate(perm.Permutation{0, -1, 1}, 3), perm.ErrOutOfRange)
	assert.ErrorIs(t, perm.Validate(perm.Permutation{0, 1, 1}, 3), perm.ErrDuplicate)
}

func TestPermutation_CloneEqual(t *testing.T) {
	p := perm.Permutation{3, 1, 0, 2}
	c := p.Clone()
	require.True(t, p.Equal(c))

	c[0] = 9
	assert.Equal(t, 3, p[0], "clone must not alias the original")
	assert.False(t, p.Equal(c))
	assert.False(t, p.Equal(p[:2]))
	assert.Nil(t, perm.Permutation(nil).Clone())
	assert.Equal(t, "[3 1 0 2]", p.String())
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, perm.Permutation{0, 1, 2, 3}, perm.Identity(4))
	assert.Empty(t, perm.Identity(-2))
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n       int
		ceiling uint64
		want    uint64
		ok      bool
	}{
		{0, 10, 1, true},
		{1, 10, 1, true},
		{4, 24, 24, true},
		{4, 23, 0, false},
		{8, 40320, 40320, true},
		{20, ^uint64(0), 2432902008176640000, true},
		{21, ^uint64(0), 0, false},
		{-1, 10, 0, false},
	}
	for _, tc := range cases {
		got, ok := perm.Factorial(tc.n, tc.ceiling)
		assert.Equal(t, tc.ok, ok, "n=%d ceiling=%d", tc.n, tc.ceiling)
		if tc.ok {
			assert.Equal(t, tc.want, got, "n=%d", tc.n)
		}
	}
}

func TestAlphabet_EncodeDecode(t *testing.T) {
	a, err := perm.NewAlphabet("A", "B", "C")
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "B", a.Symbol(1))
	assert.Equal(t, "", a.Symbol(7))

	names, err := a.Decode(perm.Permutation{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, names)

	p, err := a.Encode([]string{"B", "C", "A"})
	require.NoError(t, err)
	assert.Equal(t, perm.Permutation{1, 2, 0}, p)

	_, err = a.Encode([]string{"B", "C", "Z"})
	assert.ErrorIs(t, err, perm.ErrBadSymbol)
	_, err = a.Encode([]string{"B", "B", "A"})
	assert.ErrorIs(t, err, perm.ErrDuplicate)
	_, err = a.Decode(perm.Permutation{0, 1})
	assert.ErrorIs(t, err, perm.ErrLength)
}

func TestNewAlphabet_Errors(t *testing.T) {
	_, err := perm.NewAlphabet()
	assert.ErrorIs(t, err, perm.ErrEmptyAlphabet)
	_, err = perm.NewAlphabet("A", "")
	assert.ErrorIs(t, err, perm.ErrBadSymbol)
	_, err = perm.NewAlphabet("A", "A")
	assert.ErrorIs(t, err, perm.ErrBadSymbol)
}
