// This file converts truth-table rows into terms.

package qmc

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// These errors are returned when input rows cannot be converted to terms.
var (
	ErrWidth    = errors.New("inconsistent term width")
	ErrBadValue = errors.New("invalid bit value")
)

// Parse converts rows of 0/1 values into unconsumed terms, mapping 1 to One
// and 0 to Zero.  All rows must have the same width.
func Parse(rows [][]int) ([]Term, error) {
	ts := make([]Term, len(rows))
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d: %w: expected %d columns but saw %d",
				r, ErrWidth, len(rows[0]), len(row))
		}
		bits := make([]Bit, len(row))
		for c, v := range row {
			switch v {
			case 0:
				bits[c] = Zero
			case 1:
				bits[c] = One
			default:
				return nil, fmt.Errorf("row %d, column %d: %w %d", r, c, ErrBadValue, v)
			}
		}
		ts[r] = Term{Bits: bits}
	}
	return ts, nil
}

// FromMinterms converts minterm numbers into width-bit terms.  The most
// significant bit of each number becomes position 0.
func FromMinterms(width int, ms []uint) ([]Term, error) {
	if width <= 0 || width > 63 {
		return nil, fmt.Errorf("%w: %d is not in [1, 63]", ErrWidth, width)
	}
	ts := make([]Term, len(ms))
	for i, m := range ms {
		if m >= 1<<uint(width) {
			return nil, fmt.Errorf("minterm %d does not fit in %d bits: %w", m, width, ErrBadValue)
		}
		bits := make([]Bit, width)
		for c := range bits {
			if (m>>uint(width-c-1))&1 == 1 {
				bits[c] = One
			}
		}
		ts[i] = Term{Bits: bits}
	}
	return ts, nil
}

// Minterms expands a term into the numbers of all minterms it covers, in
// ascending order.  The term may be at most 63 bits wide.
func Minterms(t Term) []uint {
	ms := []uint{0}
	for _, b := range t.Bits {
		for i := range ms {
			ms[i] <<= 1
		}
		switch b {
		case One:
			for i := range ms {
				ms[i] |= 1
			}
		case DontCare:
			for i := range ms {
				ms = append(ms, ms[i]|1)
			}
		}
	}
	slices.Sort(ms)
	return ms
}
