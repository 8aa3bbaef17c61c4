// Package bench runs a growing-N sweep of the recursive counter and
// renders its timing profile as an interactive chart, the way
// Additionnals/plot_pacs_sweep.go charted a parameter sweep for the
// signature scheme this module grew out of.
package bench

import (
	"time"

	"tautology/bitword"
	"tautology/prof"
	"tautology/recur"
)

// Point is one sample of the sweep: N variables, the resulting count, and
// how long CountN took.
type Point struct {
	N       int
	Count   uint64
	Elapsed time.Duration
}

// Sweep runs recur.CountN(n, tautology) for n from 1 to maxN and records
// both the satisfying-assignment count (always 2^n for a tautology) and
// the wall-clock cost, profiled through prof.Track under the "countn"
// operation name.
func Sweep(maxN int) []Point {
	points := make([]Point, 0, maxN)
	// Law of excluded middle over all N variables: always a tautology,
	// regardless of N, so Count should equal 2^N at every sweep point.
	excludedMiddle := func(vars []uint64) uint64 {
		acc := bitword.T
		for _, v := range vars {
			acc = bitword.And(acc, bitword.Or(v, bitword.Not(v)))
		}
		return acc
	}
	for n := 1; n <= maxN; n++ {
		start := time.Now()
		count := recur.CountN(n, excludedMiddle)
		prof.Track(start, "countn")
		points = append(points, Point{N: n, Count: count, Elapsed: time.Since(start)})
	}
	return points
}
