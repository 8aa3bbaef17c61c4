// Package recur extends the six-variable bit-parallel evaluator to
// arbitrarily many variables by exhaustive case-splitting.
package recur

import (
	"math/bits"

	"tautology/bitword"
	"tautology/quality"
)

// CountN counts the satisfying assignments of an N-variable formula, given
// as a closure over a slice of N words. It installs its own ambient seed
// scope, but the fixed-arity bitword counter that evaluates f (directly for
// n<=10, at every leaf of the case split beyond that) installs a further
// fresh scope on each call, so Qubit draws inside f see that inner seed and
// different case-split branches of one CountN call see different seeds.
func CountN(n int, f func(vars []uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return countN(n, f)
}

// countN is the recursive worker; its recursion levels install no seed
// scope of their own, and the scopes f runs under come from the bitword
// counters it delegates to.
func countN(n int, f func(vars []uint64) uint64) uint64 {
	switch n {
	case 0:
		// No variables: one assignment, whose truth value is bit 0.
		return uint64(bits.OnesCount64(f(nil) & 1))
	case 1:
		return bitword.Count1(func(a uint64) uint64 { return f([]uint64{a}) })
	case 2:
		return bitword.Count2(func(a, b uint64) uint64 { return f([]uint64{a, b}) })
	case 3:
		return bitword.Count3(func(a, b, c uint64) uint64 { return f([]uint64{a, b, c}) })
	case 4:
		return bitword.Count4(func(a, b, c, d uint64) uint64 { return f([]uint64{a, b, c, d}) })
	case 5:
		return bitword.Count5(func(a, b, c, d, e uint64) uint64 { return f([]uint64{a, b, c, d, e}) })
	case 6:
		return bitword.Count6(func(a, b, c, d, e, g uint64) uint64 {
			return f([]uint64{a, b, c, d, e, g})
		})
	case 7:
		return bitword.Count7(func(a, b, c, d, e, g, h uint64) uint64 {
			return f([]uint64{a, b, c, d, e, g, h})
		})
	case 8:
		return bitword.Count8(func(a, b, c, d, e, g, h, i uint64) uint64 {
			return f([]uint64{a, b, c, d, e, g, h, i})
		})
	case 9:
		return bitword.Count9(func(a, b, c, d, e, g, h, i, j uint64) uint64 {
			return f([]uint64{a, b, c, d, e, g, h, i, j})
		})
	case 10:
		return bitword.Count10(func(a, b, c, d, e, g, h, i, j, k uint64) uint64 {
			return f([]uint64{a, b, c, d, e, g, h, i, j, k})
		})
	default:
		if n >= 19 {
			return countSplit(n, 9, 512, f)
		}
		return countSplit(n, 5, 32, f)
	}
}

// countSplit case-splits on the first k of n variables, looping over all
// 2^k combinations of T/F for them and recursing countN(n-k, ...) for the
// rest, which the recursive call's closure writes into the shared scratch
// buffer before delegating to f.
func countSplit(n, k, rounds int, f func(vars []uint64) uint64) uint64 {
	args := make([]uint64, n)
	var sum uint64
	for i := 0; i < rounds; i++ {
		for bit := 0; bit < k; bit++ {
			if i&(1<<uint(bit)) != 0 {
				args[bit] = bitword.T
			} else {
				args[bit] = bitword.F
			}
		}
		sum += countN(n-k, func(vs []uint64) uint64 {
			copy(args[k:], vs)
			return f(args)
		})
	}
	return sum
}

// Proven reports whether f is a tautology over all N variables.
func Proven(n int, f func(vars []uint64) uint64) bool {
	return CountN(n, f) == uint64(1)<<uint(n)
}
