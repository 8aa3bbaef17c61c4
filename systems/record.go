// Package systems implements the "configurable logical system" plumbing:
// records of 64-bit propositional words, nested core/extend rule
// composition, and provability services built on top of the N-ary
// counter.
package systems

import (
	"reflect"

	"tautology/bitword"
	"tautology/recur"
)

// Record is implemented by a logical system: a bundle of propositional
// variables together with its own axioms.
type Record interface {
	CoreRules() uint64
}

// Extendable is implemented by a Record that wraps a nested inner Record
// and adds axioms linking the two.
type Extendable interface {
	Record
	Inner() Record
	ExtendRules(inner Record) uint64
}

// FullRules computes core_rules(r) AND extend_rules(r, inner) AND
// inner.FullRules(), recursing down the chain of nested systems. A Record
// that is not Extendable has full rules equal to its own core rules.
func FullRules(r Record) uint64 {
	ext, ok := r.(Extendable)
	if !ok {
		return r.CoreRules()
	}
	return r.CoreRules() & ext.ExtendRules(ext.Inner()) & FullRules(ext.Inner())
}

// Construct populates dst, a pointer to a Record struct, from a flat slice
// of 64-bit words by walking its fields in declaration order: a uint64
// field consumes one word, a nested struct field delegates to its own
// field walk. This is the interface the external derive-style code
// generator targets.
func Construct(dst interface{}, words []uint64) {
	v := reflect.ValueOf(dst).Elem()
	construct(v, words)
}

func construct(v reflect.Value, words []uint64) []uint64 {
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Uint64:
			f.SetUint(words[0])
			words = words[1:]
		case reflect.Struct:
			words = construct(f, words)
		default:
			panic("systems: Construct only supports uint64 and nested struct fields")
		}
	}
	return words
}

// NumWords returns the number of uint64 leaf fields in a Record's struct
// layout, recursing into nested structs the same way Construct does. This
// is the arity N fed to the N-ary counter by Count and Prove.
func NumWords(zero interface{}) int {
	return numWords(reflect.TypeOf(zero))
}

func numWords(t reflect.Type) int {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	n := 0
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i).Type
		switch ft.Kind() {
		case reflect.Uint64:
			n++
		case reflect.Struct:
			n += numWords(ft)
		default:
			panic("systems: NumWords only supports uint64 and nested struct fields")
		}
	}
	return n
}

// instantiate builds a fresh *T (T being zero's concrete type) populated
// from words, returned as a Record.
func instantiate(zero interface{}, words []uint64) Record {
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	p := reflect.New(t)
	construct(p.Elem(), words)
	return p.Interface().(Record)
}

// Count returns the number of word assignments for which imply(full_rules,
// f(record)) holds, enumerating every assignment of the record's
// underlying 64-bit words. Folding full_rules in here, rather than in
// Prove, matches the original's count (imply(v.full_rules(), f(v))) so
// that an assignment violating the system's own rules never counts
// against a caller's statement.
func Count(zero Record, f func(Record) uint64) uint64 {
	n := NumWords(zero)
	return recur.CountN(n, func(words []uint64) uint64 {
		r := instantiate(zero, words)
		return bitword.Imply(FullRules(r), f(r))
	})
}

// Prove reports whether imply(full_rules, f(record)) is a tautology over
// the record's underlying words — i.e. whether f holds on every
// assignment consistent with the system's own rules.
func Prove(zero Record, f func(Record) uint64) bool {
	return Count(zero, f) == uint64(1)<<uint(NumWords(zero))
}

// DoesNotMean reports that, according to the record's rules, the
// assumption leads to neither the conclusion nor its opposite.
func DoesNotMean(zero Record, assumption, conclusion func(Record) uint64) bool {
	return !Prove(zero, func(r Record) uint64 { return bitword.Imply(assumption(r), conclusion(r)) }) &&
		!Prove(zero, func(r Record) uint64 { return bitword.Imply(assumption(r), bitword.Not(conclusion(r))) })
}

// Means reports that, according to the record's rules, the conclusion
// follows from the assumption but the assumption cannot also force the
// opposite conclusion.
func Means(zero Record, assumption, conclusion func(Record) uint64) bool {
	return Prove(zero, func(r Record) uint64 { return bitword.Imply(assumption(r), conclusion(r)) }) &&
		!Prove(zero, func(r Record) uint64 { return bitword.Imply(assumption(r), bitword.Not(conclusion(r))) })
}

// Eq reports that, according to the record's rules, a and b are
// equivalent.
func Eq(zero Record, a, b func(Record) uint64) bool {
	return Prove(zero, func(r Record) uint64 { return bitword.Eq(a(r), b(r)) })
}

// Exc reports that, according to the record's rules, a and b are
// mutually exclusive.
func Exc(zero Record, a, b func(Record) uint64) bool {
	return Prove(zero, func(r Record) uint64 {
		return bitword.And(
			bitword.Imply(a(r), bitword.Not(b(r))),
			bitword.Imply(b(r), bitword.Not(a(r))),
		)
	})
}

// Imply reports that, according to the record's rules, a implies b.
func Imply(zero Record, a, b func(Record) uint64) bool {
	return Prove(zero, func(r Record) uint64 { return bitword.Imply(a(r), b(r)) })
}
