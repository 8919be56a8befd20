// This file drives the Quine–McCluskey procedure to a fixed point.

package qmc

import "golang.org/x/sync/errgroup"

// A Generation summarizes one round of the fixed-point loop.
type Generation struct {
	Round  int // Round number, starting from 1
	Groups int // Number of nonempty popcount groups
	Inputs int // Number of terms entering the round
	Merged int // Number of distinct terms produced by merging
	Primes int // Number of unconsumed terms harvested as prime implicants
}

// A Solver finds prime implicants.  The zero value is ready to use and runs
// sequentially.
type Solver struct {
	Workers int              // Maximum number of group pairs to combine concurrently; <= 1 means sequential
	Trace   func(Generation) // Called after every round if non-nil
}

// PrimeImplicants returns the prime implicants of the function whose true
// rows are given by ts, using a zero-value Solver.
func PrimeImplicants(ts []Term) []Term {
	var s Solver
	return s.PrimeImplicants(ts)
}

// PrimeImplicants repeatedly groups the current terms by popcount, merges
// adjacent groups, and harvests every term that failed to merge, until a
// round produces no merges.  It returns the deduplicated prime implicants in
// the order they were discovered.  The input slice is not modified, and any
// Consumed markers it carries are ignored.  PrimeImplicants panics if the
// terms differ in width.
func (s *Solver) PrimeImplicants(ts []Term) []Term {
	// Start every term unconsumed.
	current := make([]Term, len(ts))
	for i, t := range ts {
		mustMatchWidths(ts[0], t)
		current[i] = Term{Bits: t.Bits}
	}

	var primes []Term
	for round := 1; len(current) > 0; round++ {
		// Merge adjacent groups.  This marks consumed terms in place.
		groups := Group(current)
		merged := s.combine(groups)

		// Every term that didn't merge with anything is prime.
		nPrimes := len(primes)
		for _, g := range groups {
			for _, t := range g {
				if !t.Consumed {
					primes = append(primes, t)
				}
			}
		}

		if s.Trace != nil {
			s.Trace(Generation{
				Round:  round,
				Groups: len(groups),
				Inputs: len(current),
				Merged: len(merged),
				Primes: len(primes) - nPrimes,
			})
		}

		// The merged terms, if any, form the next round's input.
		current = merged
	}
	return Unique(primes)
}

// combine merges every pair of adjacent groups, either sequentially or
// concurrently according to s.Workers.
func (s *Solver) combine(groups [][]Term) []Term {
	if s.Workers <= 1 || len(groups) < 3 {
		return CombineGroups(groups)
	}

	// Adjacent pairs share a group, so the goroutines only compute merge
	// outcomes.  Each pair writes to its own slot.
	outcomes := make([][]merge, len(groups)-1)
	var eg errgroup.Group
	eg.SetLimit(s.Workers)
	for i := range outcomes {
		i := i // per-iteration copy (go directive < 1.22)
		eg.Go(func() error {
			outcomes[i] = pairs(groups[i], groups[i+1])
			return nil
		})
	}
	_ = eg.Wait() // The workers never fail.

	// Apply the consumed markers and gather the results in pair order so the
	// outcome matches a sequential run.
	var merged []Term
	for i, ms := range outcomes {
		merged = append(merged, markConsumed(groups[i], groups[i+1], ms)...)
	}
	return Unique(merged)
}
