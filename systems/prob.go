package systems

import (
	"math/big"

	"tautology/recur"
)

// Prob returns the rational probability that f holds given that the
// record's own FullRules hold. See ProbUnderRules for the general form and
// the undefined case.
func Prob(zero Record, f func(Record) uint64) (prob *big.Rat, ok bool) {
	return ProbUnderRules(zero, FullRules, f)
}

// ProbUnderRules returns the rational probability that f holds given an
// arbitrary rule predicate, rather than the record's own FullRules. Both
// counts are taken via the same bit-parallel N-ary counter Count and Prove
// use: popcount(rules & f) over popcount(rules), across every assignment of
// the record's underlying words. It reports ok=false if no assignment
// satisfies the rules at all, the "probability undefined" case from a
// contradictory rule set.
func ProbUnderRules(zero Record, rules func(Record) uint64, f func(Record) uint64) (prob *big.Rat, ok bool) {
	n := NumWords(zero)

	ruleCount := recur.CountN(n, func(words []uint64) uint64 {
		return rules(instantiate(zero, words))
	})
	if ruleCount == 0 {
		return nil, false
	}

	bothCount := recur.CountN(n, func(words []uint64) uint64 {
		r := instantiate(zero, words)
		return rules(r) & f(r)
	})

	return big.NewRat(int64(bothCount), int64(ruleCount)), true
}

// ProbImply returns the conditional probability of b given both a and the
// record's own FullRules. See ProbImplyUnderRules for the general form and
// the undefined case.
func ProbImply(zero Record, a, b func(Record) uint64) (prob *big.Rat, ok bool) {
	return ProbImplyUnderRules(zero, FullRules, a, b)
}

// ProbImplyUnderRules returns the conditional probability of b given both a
// and an arbitrary rule predicate, with the same undefined case as
// ProbUnderRules.
func ProbImplyUnderRules(zero Record, rules func(Record) uint64, a, b func(Record) uint64) (prob *big.Rat, ok bool) {
	n := NumWords(zero)

	ruleAndACount := recur.CountN(n, func(words []uint64) uint64 {
		r := instantiate(zero, words)
		return rules(r) & a(r)
	})
	if ruleAndACount == 0 {
		return nil, false
	}

	allCount := recur.CountN(n, func(words []uint64) uint64 {
		r := instantiate(zero, words)
		return rules(r) & a(r) & b(r)
	})

	return big.NewRat(int64(allCount), int64(ruleAndACount)), true
}
