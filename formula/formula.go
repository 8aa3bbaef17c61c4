// Package formula provides the generic (arbitrary-arity) entry points for
// the two counter shapes the library exposes: "flat" single-group formulas
// and "tupled" (F, X) path-semantical formulas. Go's type system already
// gives fixed-arity callers the dispatch-by-arity that a macro would
// synthesize in a language without it — a caller who wrote
// func(a, b, c uint64) uint64 simply calls bitword.Count3 directly. Flat
// and Tupled exist for the generic slice-based surface: arbitrary N, or N
// large enough that writing out the fixed-arity signature is impractical.
package formula

import (
	"tautology/pathsem"
	"tautology/recur"
)

// Flat counts satisfying assignments of a single-group formula over n
// propositional variables, dispatching internally to the fixed-arity
// counters for n<=10 and the case-splitting counter beyond that.
func Flat(n int, f func(vars []uint64) uint64) uint64 {
	return recur.CountN(n, f)
}

// FlatProven reports whether a single-group formula is a tautology over
// its n variables.
func FlatProven(n int, f func(vars []uint64) uint64) bool {
	return recur.Proven(n, f)
}

// Tupled counts path-1 compatible satisfying assignments of a formula over
// m function-level (F) and n value-level (X) propositional variables.
func Tupled(m, n int, f func(fs, xs []uint64) uint64) uint64 {
	return pathsem.CountNM(m, n, f)
}

// TupledProven reports whether a tupled formula is a path-1 tautology.
func TupledProven(m, n int, f func(fs, xs []uint64) uint64) bool {
	return pathsem.ProvenM(m, n, f)
}
