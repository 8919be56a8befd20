// This file implements the merging of terms that differ in a single
// position.

package qmc

// Merge combines two terms of equal width into a more general term.  It
// succeeds only when the terms differ in exactly one position, both terms
// having a defined bit there, and agree everywhere else, with DontCare
// positions lining up.  The result has DontCare at the differing position and
// is unconsumed.  Merge panics if the widths differ.
func Merge(a, b Term) (Term, bool) {
	mustMatchWidths(a, b)
	bits := make([]Bit, len(a.Bits))
	diffs := 0
	for i, ba := range a.Bits {
		bb := b.Bits[i]
		switch {
		case ba == bb:
			bits[i] = ba
		case ba == DontCare || bb == DontCare:
			// A don't-care against a defined bit can never merge.
			return Term{}, false
		default:
			// Zero against One
			diffs++
			if diffs > 1 {
				return Term{}, false
			}
			bits[i] = DontCare
		}
	}
	if diffs != 1 {
		return Term{}, false
	}
	return Term{Bits: bits}, true
}

// A merge records a successful merge of a[I] and b[J] into Result.
type merge struct {
	Result Term
	I, J   int
}

// pairs attempts to merge every term of a with every term of b.  It does not
// modify its inputs, which makes it safe to run on overlapping groups from
// several goroutines.
func pairs(a, b []Term) []merge {
	var ms []merge
	for i := range a {
		for j := range b {
			if t, ok := Merge(a[i], b[j]); ok {
				ms = append(ms, merge{Result: t, I: i, J: j})
			}
		}
	}
	return ms
}

// markConsumed flags every input that took part in one of the merges and
// returns the merged terms.
func markConsumed(a, b []Term, ms []merge) []Term {
	if len(ms) == 0 {
		return nil
	}
	out := make([]Term, len(ms))
	for k, m := range ms {
		a[m.I].Consumed = true
		b[m.J].Consumed = true
		out[k] = m.Result
	}
	return out
}

// CombineSets merges every term of a with every term of b.  Each term that
// participates in at least one merge has its Consumed marker set in place.
// The merged terms are returned in the order found, duplicates included.  The
// result is empty if no pair merged.
func CombineSets(a, b []Term) []Term {
	return markConsumed(a, b, pairs(a, b))
}
