/*
Package qmc computes the prime implicants of a Boolean function with the
Quine–McCluskey method.

The input is a list of fixed-width terms, one per row of the truth table that
evaluates to true.  Terms are grouped by their number of 1 bits, terms in
adjacent groups that differ in exactly one position are merged into a more
general term with a don't-care in that position, and the process repeats until
no more merges are possible.  Every term that never merged is a prime
implicant.

The package produces the complete set of prime implicants.  It does not select
a minimal cover from them.
*/
package qmc
