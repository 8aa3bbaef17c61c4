package bitword

import (
	"math/bits"

	"tautology/quality"
)

// maskK is the low 2^K bits, the window a K-variable truth table occupies.
func maskK(k uint) uint64 {
	if k >= 64 {
		return T
	}
	return (uint64(1) << (uint64(1) << k)) - 1
}

// Count1 is the population count of f(P0) over its one-variable domain.
func Count1(f func(a uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return uint64(bits.OnesCount64(f(P0) & maskK(1)))
}

// Count2 is the population count of f(P0,P1) over its two-variable domain.
func Count2(f func(a, b uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return uint64(bits.OnesCount64(f(P0, P1) & maskK(2)))
}

// Count3 counts satisfying rows of a three-variable formula.
func Count3(f func(a, b, c uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return uint64(bits.OnesCount64(f(P0, P1, P2) & maskK(3)))
}

// Count4 counts satisfying rows of a four-variable formula.
func Count4(f func(a, b, c, d uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return uint64(bits.OnesCount64(f(P0, P1, P2, P3) & maskK(4)))
}

// Count5 counts satisfying rows of a five-variable formula.
func Count5(f func(a, b, c, d, e uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return uint64(bits.OnesCount64(f(P0, P1, P2, P3, P4) & maskK(5)))
}

// Count6 counts satisfying rows of a six-variable formula.
func Count6(f func(a, b, c, d, e, g uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	return uint64(bits.OnesCount64(f(P0, P1, P2, P3, P4, P5) & maskK(6)))
}

// Count7 extends Count6 with one free variable held at T or F in turn.
func Count7(f func(a, b, c, d, e, g, h uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	var total uint64
	for _, v7 := range [2]uint64{F, T} {
		total += uint64(bits.OnesCount64(f(P0, P1, P2, P3, P4, P5, v7)))
	}
	return total
}

// Count8 extends Count6 with two free variables.
func Count8(f func(a, b, c, d, e, g, h, i uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	var total uint64
	for _, v7 := range [2]uint64{F, T} {
		for _, v8 := range [2]uint64{F, T} {
			total += uint64(bits.OnesCount64(f(P0, P1, P2, P3, P4, P5, v7, v8)))
		}
	}
	return total
}

// Count9 extends Count6 with three free variables.
func Count9(f func(a, b, c, d, e, g, h, i, j uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	var total uint64
	for _, v7 := range [2]uint64{F, T} {
		for _, v8 := range [2]uint64{F, T} {
			for _, v9 := range [2]uint64{F, T} {
				total += uint64(bits.OnesCount64(f(P0, P1, P2, P3, P4, P5, v7, v8, v9)))
			}
		}
	}
	return total
}

// Count10 extends Count6 with four free variables.
func Count10(f func(a, b, c, d, e, g, h, i, j, k uint64) uint64) uint64 {
	release := quality.ScopedSeed()
	defer release()
	var total uint64
	for _, v7 := range [2]uint64{F, T} {
		for _, v8 := range [2]uint64{F, T} {
			for _, v9 := range [2]uint64{F, T} {
				for _, v10 := range [2]uint64{F, T} {
					total += uint64(bits.OnesCount64(f(P0, P1, P2, P3, P4, P5, v7, v8, v9, v10)))
				}
			}
		}
	}
	return total
}

// Prove1 reports whether f is a tautology over its one-variable domain.
func Prove1(f func(a uint64) uint64) bool { return Count1(f) == 1<<1 }

// Prove2 reports whether f is a tautology over its two-variable domain.
func Prove2(f func(a, b uint64) uint64) bool { return Count2(f) == 1<<2 }

// Prove3 reports whether f is a tautology over its three-variable domain.
func Prove3(f func(a, b, c uint64) uint64) bool { return Count3(f) == 1<<3 }

// Prove4 reports whether f is a tautology over its four-variable domain.
func Prove4(f func(a, b, c, d uint64) uint64) bool { return Count4(f) == 1<<4 }

// Prove5 reports whether f is a tautology over its five-variable domain.
func Prove5(f func(a, b, c, d, e uint64) uint64) bool { return Count5(f) == 1<<5 }

// Prove6 reports whether f is a tautology over its six-variable domain.
func Prove6(f func(a, b, c, d, e, g uint64) uint64) bool { return Count6(f) == 1<<6 }

// Prove7 reports whether f is a tautology over its seven-variable domain.
func Prove7(f func(a, b, c, d, e, g, h uint64) uint64) bool { return Count7(f) == 1<<7 }

// Prove8 reports whether f is a tautology over its eight-variable domain.
func Prove8(f func(a, b, c, d, e, g, h, i uint64) uint64) bool { return Count8(f) == 1<<8 }

// Prove9 reports whether f is a tautology over its nine-variable domain.
func Prove9(f func(a, b, c, d, e, g, h, i, j uint64) uint64) bool { return Count9(f) == 1<<9 }

// Prove10 reports whether f is a tautology over its ten-variable domain.
func Prove10(f func(a, b, c, d, e, g, h, i, j, k uint64) uint64) bool {
	return Count10(f) == 1<<10
}
