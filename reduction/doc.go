// Package reduction implements the standard persistence reduction of a
// boundary matrix over GF(2).
//
// What & Why:
//
//	After reduction the "low" function (largest nonzero row of a column) is
//	injective over the nonzero columns. Zero columns mark births; a nonzero
//	column c with low r pairs the birth at r with the death at c.
//
// Algorithm (left-to-right sweep):
//
//	for c = 0..N-1:
//	    while column c ≠ 0 and some finalized column p has low(p) = low(c):
//	        column c ← column c + column p        (symmetric difference)
//	    if column c ≠ 0: owner[low(c)] = c
//
// Only already-reduced columns are ever added into a later one, and each
// addition strictly decreases low(c), so the loop terminates.
//
// Complexity:
//
//	Worst case O(N³) like dense Gaussian elimination; sparse filtrations run
//	far below that. Extra memory: one []int of size N (the owner table).
package reduction
