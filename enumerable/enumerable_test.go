package enumerable

import (
	"testing"

	"tautology/bitword"
)

func TestPred1DomainOrder(t *testing.T) {
	d := Pred1Domain{}
	var seen []int
	val := d.Start()
	seen = append(seen, fnID(val))
	for {
		next, ok := d.Inc(val)
		if !ok {
			break
		}
		val = next
		seen = append(seen, fnID(val))
	}
	want := []int{0, 1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("got %d domain members, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("domain order mismatch at %d: got %d want %d", i, seen[i], want[i])
		}
	}
}

func TestAnyFindsTrue1(t *testing.T) {
	got := Any[Pred1](Pred1Domain{}, func(f Pred1) uint64 { return f(bitword.T) })
	if got != bitword.T {
		t.Fatalf("any should find a function that returns T on T (id, true_1)")
	}
}

func TestAllFailsBecauseNotIsntAlwaysTrue(t *testing.T) {
	got := All[Pred1](Pred1Domain{}, func(f Pred1) uint64 { return f(bitword.T) })
	if got != bitword.F {
		t.Fatalf("all should fail since false_1(T) = F")
	}
}

func TestAllHoldsForConstantTrue(t *testing.T) {
	got := All[Pred1](Pred1Domain{}, func(f Pred1) uint64 { return bitword.T })
	if got != bitword.T {
		t.Fatalf("all should hold when every output is T regardless of domain")
	}
}
