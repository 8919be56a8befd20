// This file partitions terms by their number of 1 bits.

package qmc

import "golang.org/x/exp/slices"

// Group partitions terms into buckets of equal popcount (the number of One
// positions, ignoring DontCare).  Buckets are returned in ascending popcount
// order, and popcounts with no terms produce no bucket.  Terms keep their
// relative input order within a bucket.
func Group(ts []Term) [][]Term {
	// Bucket the terms by popcount.
	byOnes := make(map[int][]Term)
	for _, t := range ts {
		n := t.Ones()
		byOnes[n] = append(byOnes[n], t)
	}

	// Emit the nonempty buckets in ascending order.
	keys := make([]int, 0, len(byOnes))
	for k := range byOnes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	groups := make([][]Term, len(keys))
	for i, k := range keys {
		groups[i] = byOnes[k]
	}
	return groups
}

// CombineGroups runs CombineSets on every pair of adjacent groups, marking
// consumed terms in place, and returns the deduplicated merge results.
func CombineGroups(groups [][]Term) []Term {
	var merged []Term
	for i := 0; i+1 < len(groups); i++ {
		merged = append(merged, CombineSets(groups[i], groups[i+1])...)
	}
	return Unique(merged)
}
