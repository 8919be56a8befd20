// This file builds the prime-implicant chart, which records which prime
// implicants cover which minterms.

package qmc

import (
	"gonum.org/v1/gonum/mat"
)

// A Chart is a prime-implicant chart.  Entry (i, j) of M is 1 if prime
// implicant j covers minterm i and 0 otherwise.
type Chart struct {
	Minterms []Term     // One per row
	Primes   []Term     // One per column
	M        *mat.Dense // Nil if either list is empty
}

// NewChart builds the chart of the given prime implicants over the given
// minterms.  All terms must have the same width, and the minterms must not
// contain DontCare positions.
func NewChart(primes, minterms []Term) *Chart {
	c := &Chart{Minterms: minterms, Primes: primes}
	nr, nc := len(minterms), len(primes)
	if nr == 0 || nc == 0 {
		return c
	}
	c.M = mat.NewDense(nr, nc, nil)
	for i, m := range minterms {
		for j, p := range primes {
			if p.Covers(m) {
				c.M.Set(i, j, 1.0)
			}
		}
	}
	return c
}

// CoverCounts returns, for each minterm, the number of prime implicants that
// cover it.
func (c *Chart) CoverCounts() []int {
	counts := make([]int, len(c.Minterms))
	if c.M == nil {
		return counts
	}

	// Multiply the chart by a vector of all ones to sum each row.
	_, nc := c.M.Dims()
	ones := make([]float64, nc)
	for j := range ones {
		ones[j] = 1.0
	}
	var sums mat.VecDense
	sums.MulVec(c.M, mat.NewVecDense(nc, ones))
	for i := range counts {
		counts[i] = int(sums.AtVec(i))
	}
	return counts
}

// Uncovered returns the indexes of all minterms that no prime implicant
// covers.  A correct set of prime implicants leaves nothing uncovered.
func (c *Chart) Uncovered() []int {
	var un []int
	for i, n := range c.CoverCounts() {
		if n == 0 {
			un = append(un, i)
		}
	}
	return un
}
