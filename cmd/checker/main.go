// Command checker runs a fixed battery of textbook tautologies and
// path-semantical identities through the prover, prints the verdicts and a
// row of the formula's truth table, and commits the whole run to a Merkle
// transcript so the battery's results can be attested later.
package main

import (
	"fmt"
	"log"

	"tautology/bitword"
	"tautology/pathsem"
	"tautology/transcript"
)

func main() {
	tlog := &transcript.Log{}

	modusPonensFn := func(p, q uint64) uint64 {
		return bitword.Imply(bitword.And(bitword.Imply(p, q), p), q)
	}
	modusPonens := bitword.Prove2(modusPonensFn)
	tlog.Record("prove2:modus-ponens", 2, bitword.Count2(modusPonensFn), modusPonens)
	fmt.Println("modus ponens:", modusPonens)
	fmt.Println("  row 0 (p=F,q=F):", bitword.BitValue(modusPonensFn(0, 0)&1))
	if !modusPonens {
		log.Fatalf("modus ponens should be a tautology")
	}

	syllogismFn := func(man, mortal, socrates uint64) uint64 {
		return bitword.Imply(
			bitword.And(bitword.Imply(man, mortal), bitword.Imply(socrates, man)),
			bitword.Imply(socrates, mortal),
		)
	}
	syllogism := bitword.Prove3(syllogismFn)
	tlog.Record("prove3:hypothetical-syllogism", 3, bitword.Count3(syllogismFn), syllogism)
	fmt.Println("hypothetical syllogism:", syllogism)
	if !syllogism {
		log.Fatalf("hypothetical syllogism should be a tautology")
	}

	deMorganFn := func(a, b uint64) uint64 {
		return bitword.Eq(bitword.Not(bitword.And(a, b)), bitword.Or(bitword.Not(a), bitword.Not(b)))
	}
	deMorgan := bitword.Prove2(deMorganFn)
	tlog.Record("prove2:de-morgan", 2, bitword.Count2(deMorganFn), deMorgan)
	fmt.Println("De Morgan:", deMorgan)
	if !deMorgan {
		log.Fatalf("De Morgan's law should be a tautology")
	}

	count4Fn := func(a, b, c, d uint64) uint64 {
		return bitword.And(bitword.Or(a, b), bitword.Or(c, d))
	}
	count4 := bitword.Count4(count4Fn)
	tlog.Record("count4:and-or-or", 4, count4, count4 == 1<<4)
	fmt.Println("count4(and(or(a,b),or(c,d))):", count4)

	pathFn := func(fs, xs []uint64) uint64 {
		f, g := fs[0], fs[1]
		x, y := xs[0], xs[1]
		return bitword.Imply(
			bitword.And3(bitword.Imply(f, x), bitword.Imply(g, y), bitword.Eq(f, g)),
			bitword.Eq(x, y),
		)
	}
	pathIdentity := pathsem.ProveK(2, 2, pathFn)
	tlog.Record("path1_proveK:f-g-x-y", 4, pathsem.CountK(2, 2, pathFn), pathIdentity)
	fmt.Println("path-1 identity (m=2,n=2):", pathIdentity, "expected length:", pathsem.LenNM(2, 2))
	if !pathIdentity {
		log.Fatalf("path-1 identity should be a tautology")
	}

	root := tlog.Commit().Root()
	fmt.Printf("transcript root: %x (%d entries)\n", root, len(tlog.Entries()))
}
