// Package pathsem implements the path-semantical, level-1 counter: a
// two-level logic where "function" propositions F and "value" propositions
// X must agree on X whenever they agree on F.
package pathsem

import (
	"tautology/bitword"
	"tautology/recur"
)

// LenNM returns L(m,n), the number of path-1 compatible assignments on m
// function-level and n value-level propositions.
func LenNM(m, n int) uint64 {
	twoM1 := int64(1) << uint(m+1)
	twoN2 := (int64(1) << uint(n)) - 2
	return uint64(twoM1 + int64(m+1)*twoN2)
}

func bitOf(v uint64) uint64 { return v & 1 }

// CountNM counts path-1 compatible satisfying assignments of form, a
// formula over m F-propositions and n X-propositions, by inclusion-exclusion
// over the ordinary N-ary counter: every F-pattern with X all-0, every
// F-pattern with X all-1, and every X row under the all-1 F-pattern and
// under each of the m "one-zero" F-patterns, minus the all-0 and all-1 X
// rows those last m+1 counts share with the first two.
func CountNM(m, n int, form func(fs, xs []uint64) uint64) uint64 {
	zerosX := make([]uint64, n)
	onesX := make([]uint64, n)
	for i := range onesX {
		onesX[i] = bitword.T
	}
	onesF := make([]uint64, m)
	for i := range onesF {
		onesF[i] = bitword.T
	}

	a0 := recur.CountN(m, func(fs []uint64) uint64 { return form(fs, zerosX) })
	a1 := recur.CountN(m, func(fs []uint64) uint64 { return form(fs, onesX) })

	b := recur.CountN(n, func(xs []uint64) uint64 { return form(onesF, xs) })
	b -= bitOf(form(onesF, zerosX))
	b -= bitOf(form(onesF, onesX))

	var c uint64
	for p := 0; p < m; p++ {
		fsP := make([]uint64, m)
		copy(fsP, onesF)
		fsP[p] = bitword.F

		cp := recur.CountN(n, func(xs []uint64) uint64 { return form(fsP, xs) })
		cp -= bitOf(form(fsP, zerosX))
		cp -= bitOf(form(fsP, onesX))
		c += cp
	}

	return a0 + a1 + b + c
}

// ProvenM reports whether form is a path-1 tautology: its CountNM equals
// the closed-form L(m,n).
func ProvenM(m, n int, form func(fs, xs []uint64) uint64) bool {
	return CountNM(m, n, form) == LenNM(m, n)
}

func setPattern(words []uint64, pattern int) {
	for i := range words {
		if pattern&(1<<uint(i)) != 0 {
			words[i] = bitword.T
		} else {
			words[i] = bitword.F
		}
	}
}

// CountK evaluates form directly against the hand-enumerable list of
// path-1 compatible rows for small m+n (3..10 in the library's intended
// range, though the enumeration is exact for any m,n): the all-0 and
// all-1 X rows paired with every F-pattern, plus every interior X row
// paired with the m+1 boundary F-patterns (all-1 and each one-zero
// variant). This is the "hand-constructed pattern list" counter; CountNM
// is the general inclusion-exclusion counter. They agree on every input.
func CountK(m, n int, form func(fs, xs []uint64) uint64) uint64 {
	var total uint64

	fs := make([]uint64, m)
	allZeroX := make([]uint64, n)
	allOneX := make([]uint64, n)
	for i := range allOneX {
		allOneX[i] = bitword.T
	}

	mCombos := 1 << uint(m)
	for pattern := 0; pattern < mCombos; pattern++ {
		setPattern(fs, pattern)
		total += bitOf(form(fs, allZeroX))
		total += bitOf(form(fs, allOneX))
	}

	allOneF := make([]uint64, m)
	for i := range allOneF {
		allOneF[i] = bitword.T
	}
	xs := make([]uint64, n)

	nCombos := 1 << uint(n)
	for pattern := 1; pattern < nCombos-1; pattern++ {
		setPattern(xs, pattern)
		total += bitOf(form(allOneF, xs))
		for p := 0; p < m; p++ {
			fsP := make([]uint64, m)
			copy(fsP, allOneF)
			fsP[p] = bitword.F
			total += bitOf(form(fsP, xs))
		}
	}

	return total
}

// ProveK reports whether form is a path-1 tautology under the
// hand-enumerated counter.
func ProveK(m, n int, form func(fs, xs []uint64) uint64) bool {
	return CountK(m, n, form) == LenNM(m, n)
}
