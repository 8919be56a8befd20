// This file defines the tri-state bits and terms manipulated by the
// Quine–McCluskey procedure.

package qmc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// A Bit is a single position of a term.
type Bit uint8

// These are the three values a Bit can take.
const (
	Zero Bit = iota
	One
	DontCare
)

// String returns "0", "1", or "-".
func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	case DontCare:
		return "-"
	default:
		return fmt.Sprintf("Bit(%d)", uint8(b))
	}
}

// ErrBadTerm is returned when a string cannot be parsed as a term.
var ErrBadTerm = errors.New("invalid term")

// A Term is a product term: a fixed-width sequence of bits plus a marker
// indicating whether the term merged with another term during the current
// generation.
type Term struct {
	Bits     []Bit // Position 0 is the most significant variable
	Consumed bool  // Set once the term takes part in a successful merge
}

// NewTerm returns an unconsumed term holding a copy of the given bits.
func NewTerm(bits ...Bit) Term {
	return Term{Bits: slices.Clone(bits)}
}

// ParseTerm parses a string over the alphabet {0, 1, -} into a term.
func ParseTerm(s string) (Term, error) {
	bits := make([]Bit, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		case '-':
			bits[i] = DontCare
		default:
			return Term{}, fmt.Errorf("%w %q: unexpected %q at position %d", ErrBadTerm, s, c, i)
		}
	}
	return Term{Bits: bits}, nil
}

// MustParseTerm is like ParseTerm but panics on error.
func MustParseTerm(s string) Term {
	t, err := ParseTerm(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Width returns the number of positions in the term.
func (t Term) Width() int {
	return len(t.Bits)
}

// Ones returns the number of positions equal to One.
func (t Term) Ones() int {
	n := 0
	for _, b := range t.Bits {
		if b == One {
			n++
		}
	}
	return n
}

// DontCares returns the number of positions equal to DontCare.
func (t Term) DontCares() int {
	n := 0
	for _, b := range t.Bits {
		if b == DontCare {
			n++
		}
	}
	return n
}

// String renders the term's bits as a string over {0, 1, -}.  The consumed
// marker is not included.
func (t Term) String() string {
	var sb strings.Builder
	sb.Grow(len(t.Bits))
	for _, b := range t.Bits {
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Key returns the identity used for deduplication.  Two terms with the same
// bits have the same key regardless of their consumed markers.
func (t Term) Key() string {
	return t.String()
}

// Equal reports whether two terms have identical bits.
func (t Term) Equal(u Term) bool {
	return slices.Equal(t.Bits, u.Bits)
}

// Clone returns a deep copy of the term.
func (t Term) Clone() Term {
	return Term{Bits: slices.Clone(t.Bits), Consumed: t.Consumed}
}

// Covers reports whether a fully specified minterm lies within the term,
// that is, whether every non-DontCare position of t agrees with m.
func (t Term) Covers(m Term) bool {
	mustMatchWidths(t, m)
	for i, b := range t.Bits {
		if b != DontCare && b != m.Bits[i] {
			return false
		}
	}
	return true
}

// Unique returns the terms with duplicate bit sequences removed.  The first
// occurrence of each term is kept and the original order is preserved.
func Unique(ts []Term) []Term {
	seen := make(map[string]struct{}, len(ts))
	out := make([]Term, 0, len(ts))
	for _, t := range ts {
		k := t.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Strings renders each term in turn.
func Strings(ts []Term) []string {
	ss := make([]string, len(ts))
	for i, t := range ts {
		ss[i] = t.String()
	}
	return ss
}

// mustMatchWidths aborts on a width mismatch.  All terms in one computation
// share a width, so a mismatch means the input was malformed upstream.
func mustMatchWidths(a, b Term) {
	if len(a.Bits) != len(b.Bits) {
		panic(fmt.Sprintf("qmc: width mismatch between %q (%d) and %q (%d)",
			a, len(a.Bits), b, len(b.Bits)))
	}
}
