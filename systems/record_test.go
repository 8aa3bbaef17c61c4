package systems

import (
	"testing"

	"tautology/bitword"
)

// Animal is a minimal three-word logical system: "all men are mortal" plus a
// named individual.
type Animal struct {
	Man     uint64
	Mortal  uint64
	Person  uint64
}

func (a *Animal) CoreRules() uint64 {
	return bitword.Imply(a.Man, a.Mortal)
}

func TestConstructAndNumWords(t *testing.T) {
	var a Animal
	if NumWords(a) != 3 {
		t.Fatalf("NumWords = %d, want 3", NumWords(a))
	}
	Construct(&a, []uint64{bitword.T, bitword.F, bitword.T})
	if a.Man != bitword.T || a.Mortal != bitword.F || a.Person != bitword.T {
		t.Fatalf("Construct did not populate fields in order: %+v", a)
	}
}

func TestProveUnderRules(t *testing.T) {
	var zero Animal
	// Prove folds the record's own FullRules in automatically (imply(full_rules,
	// statement)), so a direct consequence of the core rule proves without the
	// caller restating the rule inside the formula.
	if !Prove(&zero, func(r Record) uint64 {
		a := r.(*Animal)
		return bitword.Imply(a.Man, a.Mortal)
	}) {
		t.Fatalf("man -> mortal should be proven under the core rule")
	}
	// Person is unconstrained by the rules, so this is not a consequence.
	if Prove(&zero, func(r Record) uint64 {
		a := r.(*Animal)
		return bitword.Imply(a.Person, a.Mortal)
	}) {
		t.Fatalf("person -> mortal should not be proven; the rules say nothing about person")
	}
}

func TestEqExcImply(t *testing.T) {
	var zero Animal
	isMan := func(r Record) uint64 { return r.(*Animal).Man }
	isMan2 := func(r Record) uint64 { return r.(*Animal).Man }
	if !Eq(&zero, isMan, isMan2) {
		t.Fatalf("a proposition should be equivalent to itself")
	}
	isNotMan := func(r Record) uint64 { return bitword.Not(r.(*Animal).Man) }
	if !Exc(&zero, isMan, isNotMan) {
		t.Fatalf("man and not-man should be exclusive")
	}
	if !Imply(&zero, isMan, isMan) {
		t.Fatalf("a proposition should imply itself")
	}
}

func TestDoesNotMeanAndMeans(t *testing.T) {
	var zero Animal
	man := func(r Record) uint64 { return r.(*Animal).Man }
	mortal := func(r Record) uint64 { return r.(*Animal).Mortal }
	person := func(r Record) uint64 { return r.(*Animal).Person }

	// Under "man -> mortal", knowing someone is a man means they're mortal,
	// and it can't also be used to conclude they're not mortal.
	if !Means(&zero, man, mortal) {
		t.Fatalf("man should mean mortal under the core rule")
	}
	// The rules say nothing at all linking Person to Man or Mortal.
	if !DoesNotMean(&zero, person, mortal) {
		t.Fatalf("being a person should not mean mortal under rules that don't mention it")
	}
}

func TestProbUndefinedWhenRulesContradictory(t *testing.T) {
	var zero Animal
	contradiction := func(r Record) uint64 { a := r.(*Animal); return bitword.And(a.Man, bitword.Not(a.Man)) }
	_, ok := ProbUnderRules(&zero, contradiction, func(r Record) uint64 { return bitword.T })
	if ok {
		t.Fatalf("prob should be undefined when the rules are contradictory")
	}
}

func TestProbHalfUnconstrained(t *testing.T) {
	var zero Animal
	alwaysTrue := func(r Record) uint64 { return bitword.T }
	isMan := func(r Record) uint64 { return r.(*Animal).Man }
	p, ok := ProbUnderRules(&zero, alwaysTrue, isMan)
	if !ok {
		t.Fatalf("prob should be defined when rules are satisfiable")
	}
	if p.Num().Int64() != 1 || p.Denom().Int64() != 2 {
		t.Fatalf("P(Man) under no constraints should be 1/2, got %v", p)
	}
}

// Citizen nests Animal as its inner system, adding one axiom linking the
// two: a citizen must be a person.
type Citizen struct {
	Animal
	Citizen uint64
}

func (c *Citizen) CoreRules() uint64 { return bitword.Imply(c.Citizen, bitword.T) }
func (c *Citizen) Inner() Record     { return &c.Animal }
func (c *Citizen) ExtendRules(inner Record) uint64 {
	a := inner.(*Animal)
	return bitword.Imply(c.Citizen, a.Person)
}

func TestFullRulesRecursesThroughNestedSystem(t *testing.T) {
	if NumWords(Citizen{}) != 4 {
		t.Fatalf("NumWords(Citizen) = %d, want 4 (3 from Animal + 1 own)", NumWords(Citizen{}))
	}
	var zero Citizen
	// Prove folds FullRules(r) in automatically, so citizen -> person
	// (Citizen's own extend rule) combined with the Animal's man -> mortal
	// together force this without the formula restating either rule itself.
	ok := Prove(&zero, func(r Record) uint64 {
		c := r.(*Citizen)
		return bitword.Imply(
			bitword.And(c.Citizen, c.Man),
			bitword.And(c.Person, c.Mortal),
		)
	})
	if !ok {
		t.Fatalf("citizen+man should force person+mortal under the combined rule set")
	}
}
