package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	ts, err := Parse([][]int{
		{0, 0, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []Term{
		NewTerm(Zero, Zero, Zero),
		NewTerm(Zero, Zero, One),
		NewTerm(One, Zero, Zero),
	}, ts)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([][]int{{0, 1}, {1}})
	assert.ErrorIs(t, err, ErrWidth)
	assert.Contains(t, err.Error(), "row 1")

	_, err = Parse([][]int{{0, 2}})
	assert.ErrorIs(t, err, ErrBadValue)

	ts, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, ts)
}

func TestFromMinterms(t *testing.T) {
	ts, err := FromMinterms(4, []uint{0, 5, 15})
	require.NoError(t, err)
	assert.Equal(t, []string{"0000", "0101", "1111"}, Strings(ts))

	_, err = FromMinterms(3, []uint{8})
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = FromMinterms(0, nil)
	assert.ErrorIs(t, err, ErrWidth)
}

func TestMinterms(t *testing.T) {
	assert.Equal(t, []uint{5}, Minterms(MustParseTerm("101")))
	assert.Equal(t, []uint{4, 5, 6, 7}, Minterms(MustParseTerm("1--")))
	assert.Equal(t, []uint{1, 3, 9, 11}, Minterms(MustParseTerm("-0-1")))
	assert.Equal(t, []uint{0}, Minterms(Term{}))
}
