package enumerable

import "tautology/bitword"

// Pred1 is a one-argument boolean function, the smallest nontrivial
// Enumerable domain: false_1, not, id, true_1.
type Pred1 = func(uint64) uint64

// Pred1Domain enumerates the four one-argument boolean connectives in the
// fixed order false_1 -> not -> id -> true_1.
type Pred1Domain struct{}

func false1(uint64) uint64 { return bitword.F }
func true1(uint64) uint64  { return bitword.T }

// Start returns false_1, the first member of the domain.
func (Pred1Domain) Start() Pred1 { return false1 }

// Inc returns the next function in the fixed order, or false if val was
// true_1 (the last member).
func (Pred1Domain) Inc(val Pred1) (Pred1, bool) {
	switch fnID(val) {
	case 0:
		return bitword.Not, true
	case 1:
		return bitword.ID, true
	case 2:
		return true1, true
	default:
		return nil, false
	}
}

// fnID identifies which of the four Pred1 members val is, by its behavior
// on 0 and T rather than by pointer identity (Go function values are not
// comparable).
func fnID(f Pred1) int {
	switch {
	case f(0) == bitword.F && f(bitword.T) == bitword.F:
		return 0 // false_1
	case f(0) == bitword.T && f(bitword.T) == bitword.F:
		return 1 // not
	case f(0) == bitword.F && f(bitword.T) == bitword.T:
		return 2 // id
	default:
		return 3 // true_1
	}
}
