package bitword

// Not returns the bitwise complement: true where a was false and vice versa.
func Not(a uint64) uint64 { return ^a }

// ID returns its argument unchanged.
func ID(a uint64) uint64 { return a }

// And returns true only where both arguments are true.
func And(a, b uint64) uint64 { return a & b }

// Or returns true where at least one argument is true.
func Or(a, b uint64) uint64 { return a | b }

// Xor returns true where exactly one argument is true.
func Xor(a, b uint64) uint64 { return a ^ b }

// Eq returns true where the two arguments agree (bitwise XNOR).
func Eq(a, b uint64) uint64 { return ^(a ^ b) }

// Imply returns the material conditional a -> b.
func Imply(a, b uint64) uint64 { return ^a | b }

// TrueK ignores every argument and returns T.
func TrueK(_ ...uint64) uint64 { return T }

// FalseK ignores every argument and returns F.
func FalseK(_ ...uint64) uint64 { return F }

// And3 is the conjunction of three arguments.
func And3(a, b, c uint64) uint64 { return And(And(a, b), c) }

// And4 is the conjunction of four arguments.
func And4(a, b, c, d uint64) uint64 { return And(And(a, b), And(c, d)) }

// And5 is the conjunction of five arguments.
func And5(a, b, c, d, e uint64) uint64 { return And(And(a, b), And3(c, d, e)) }

// And6 is the conjunction of six arguments.
func And6(a, b, c, d, e, f uint64) uint64 { return And(And3(a, b, c), And3(d, e, f)) }

// And7 is the conjunction of seven arguments.
func And7(a, b, c, d, e, f, g uint64) uint64 { return And(And4(a, b, c, d), And3(e, f, g)) }

// And8 is the conjunction of eight arguments.
func And8(a, b, c, d, e, f, g, h uint64) uint64 { return And(And4(a, b, c, d), And4(e, f, g, h)) }

// And9 is the conjunction of nine arguments.
func And9(a, b, c, d, e, f, g, h, i uint64) uint64 {
	return And(And5(a, b, c, d, e), And4(f, g, h, i))
}

// And10 is the conjunction of ten arguments.
func And10(a, b, c, d, e, f, g, h, i, j uint64) uint64 {
	return And(And5(a, b, c, d, e), And5(f, g, h, i, j))
}

// Or3 is the disjunction of three arguments.
func Or3(a, b, c uint64) uint64 { return Or(Or(a, b), c) }

// Or4 is the disjunction of four arguments.
func Or4(a, b, c, d uint64) uint64 { return Or(Or(a, b), Or(c, d)) }

// Or5 is the disjunction of five arguments.
func Or5(a, b, c, d, e uint64) uint64 { return Or(Or3(a, b, c), Or(d, e)) }

// Or6 is the disjunction of six arguments.
func Or6(a, b, c, d, e, f uint64) uint64 { return Or(Or3(a, b, c), Or3(d, e, f)) }

// Or7 is the disjunction of seven arguments.
func Or7(a, b, c, d, e, f, g uint64) uint64 { return Or(Or4(a, b, c, d), Or3(e, f, g)) }

// Or8 is the disjunction of eight arguments.
func Or8(a, b, c, d, e, f, g, h uint64) uint64 { return Or(Or4(a, b, c, d), Or4(e, f, g, h)) }

// Or9 is the disjunction of nine arguments.
func Or9(a, b, c, d, e, f, g, h, i uint64) uint64 {
	return Or(Or5(a, b, c, d, e), Or4(f, g, h, i))
}

// Or10 is the disjunction of ten arguments.
func Or10(a, b, c, d, e, f, g, h, i, j uint64) uint64 {
	return Or(Or5(a, b, c, d, e), Or5(f, g, h, i, j))
}

// Xor3 is "exactly one true" among three arguments.
func Xor3(a, b, c uint64) uint64 {
	return Or(
		And(Xor(a, b), Not(c)),
		Not(Or3(a, b, Not(c))),
	)
}

// Xor4 is "exactly one true" among four arguments.
func Xor4(a, b, c, d uint64) uint64 {
	return Or(
		And(Xor3(a, b, c), Not(d)),
		Not(Or4(a, b, c, Not(d))),
	)
}

// Xor5 is "exactly one true" among five arguments.
func Xor5(a, b, c, d, e uint64) uint64 {
	return Or(
		And(Xor4(a, b, c, d), Not(e)),
		Not(Or5(a, b, c, d, Not(e))),
	)
}

// Xor6 is "exactly one true" among six arguments.
func Xor6(a, b, c, d, e, f uint64) uint64 {
	return Or(
		And(Xor5(a, b, c, d, e), Not(f)),
		Not(Or6(a, b, c, d, e, Not(f))),
	)
}

// Xor7 is "exactly one true" among seven arguments.
func Xor7(a, b, c, d, e, f, g uint64) uint64 {
	return Or(
		And(Xor6(a, b, c, d, e, f), Not(g)),
		Not(Or7(a, b, c, d, e, f, Not(g))),
	)
}

// Xor8 is "exactly one true" among eight arguments.
func Xor8(a, b, c, d, e, f, g, h uint64) uint64 {
	return Or(
		And(Xor7(a, b, c, d, e, f, g), Not(h)),
		Not(Or8(a, b, c, d, e, f, g, Not(h))),
	)
}

// Xor9 is "exactly one true" among nine arguments.
func Xor9(a, b, c, d, e, f, g, h, i uint64) uint64 {
	return Or(
		And(Xor8(a, b, c, d, e, f, g, h), Not(i)),
		Not(Or9(a, b, c, d, e, f, g, h, Not(i))),
	)
}

// Xor10 is "exactly one true" among ten arguments.
func Xor10(a, b, c, d, e, f, g, h, i, j uint64) uint64 {
	return Or(
		And(Xor9(a, b, c, d, e, f, g, h, i), Not(j)),
		Not(Or10(a, b, c, d, e, f, g, h, i, Not(j))),
	)
}

// Imply3 is the chain a->b->c (conjunction of consecutive implications).
func Imply3(a, b, c uint64) uint64 { return And(Imply(a, b), Imply(b, c)) }

// Imply4 is the chain a->b->c->d.
func Imply4(a, b, c, d uint64) uint64 {
	return And3(Imply(a, b), Imply(b, c), Imply(c, d))
}

// Imply5 is the chain a->b->c->d->e.
func Imply5(a, b, c, d, e uint64) uint64 {
	return And4(Imply(a, b), Imply(b, c), Imply(c, d), Imply(d, e))
}

// Imply6 is the chain a->b->c->d->e->f.
func Imply6(a, b, c, d, e, f uint64) uint64 {
	return And5(Imply(a, b), Imply(b, c), Imply(c, d), Imply(d, e), Imply(e, f))
}

// Imply7 is the chain a->b->c->d->e->f->g.
func Imply7(a, b, c, d, e, f, g uint64) uint64 {
	return And6(Imply(a, b), Imply(b, c), Imply(c, d), Imply(d, e), Imply(e, f), Imply(f, g))
}

// Imply8 is the chain a->...->h.
func Imply8(a, b, c, d, e, f, g, h uint64) uint64 {
	return And7(Imply(a, b), Imply(b, c), Imply(c, d), Imply(d, e),
		Imply(e, f), Imply(f, g), Imply(g, h))
}

// Imply9 is the chain a->...->i.
func Imply9(a, b, c, d, e, f, g, h, i uint64) uint64 {
	return And8(Imply(a, b), Imply(b, c), Imply(c, d), Imply(d, e),
		Imply(e, f), Imply(f, g), Imply(g, h), Imply(h, i))
}

// Imply10 is the chain a->...->j.
func Imply10(a, b, c, d, e, f, g, h, i, j uint64) uint64 {
	return And9(Imply(a, b), Imply(b, c), Imply(c, d), Imply(d, e),
		Imply(e, f), Imply(f, g), Imply(g, h), Imply(h, i), Imply(i, j))
}

// AndN is the conjunction of an arbitrary number of arguments, chunking ten
// at a time and recursing on the remainder.
func AndN(vs []uint64) uint64 {
	switch len(vs) {
	case 0:
		return T
	case 1:
		return vs[0]
	case 2:
		return And(vs[0], vs[1])
	case 3:
		return And3(vs[0], vs[1], vs[2])
	case 4:
		return And4(vs[0], vs[1], vs[2], vs[3])
	case 5:
		return And5(vs[0], vs[1], vs[2], vs[3], vs[4])
	case 6:
		return And6(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5])
	case 7:
		return And7(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6])
	case 8:
		return And8(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7])
	case 9:
		return And9(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8])
	case 10:
		return And10(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8], vs[9])
	default:
		return And(AndN(vs[:10]), AndN(vs[10:]))
	}
}

// OrN is the disjunction of an arbitrary number of arguments.
func OrN(vs []uint64) uint64 {
	switch len(vs) {
	case 0:
		return F
	case 1:
		return vs[0]
	case 2:
		return Or(vs[0], vs[1])
	case 3:
		return Or3(vs[0], vs[1], vs[2])
	case 4:
		return Or4(vs[0], vs[1], vs[2], vs[3])
	case 5:
		return Or5(vs[0], vs[1], vs[2], vs[3], vs[4])
	case 6:
		return Or6(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5])
	case 7:
		return Or7(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6])
	case 8:
		return Or8(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7])
	case 9:
		return Or9(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8])
	case 10:
		return Or10(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8], vs[9])
	default:
		return Or(OrN(vs[:10]), OrN(vs[10:]))
	}
}

// XorN is "exactly one true" among an arbitrary number of arguments.
func XorN(vs []uint64) uint64 {
	switch len(vs) {
	case 0:
		return F
	case 1:
		return vs[0]
	case 2:
		return Xor(vs[0], vs[1])
	case 3:
		return Xor3(vs[0], vs[1], vs[2])
	case 4:
		return Xor4(vs[0], vs[1], vs[2], vs[3])
	case 5:
		return Xor5(vs[0], vs[1], vs[2], vs[3], vs[4])
	case 6:
		return Xor6(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5])
	case 7:
		return Xor7(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6])
	case 8:
		return Xor8(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7])
	case 9:
		return Xor9(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8])
	case 10:
		return Xor10(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8], vs[9])
	default:
		x := len(vs)
		return Or(
			And(XorN(vs[:x-1]), Not(vs[x-1])),
			Not(Or(OrN(vs[:x-1]), Not(vs[x-1]))),
		)
	}
}

// ImplyN is the conjunction of consecutive implications v0->v1, v1->v2, ...
// It is NOT right-associated implication; this matches the naming and
// majority behavior in the upstream source (see SPEC_FULL.md, spec.md §9).
func ImplyN(vs []uint64) uint64 {
	switch len(vs) {
	case 0:
		return T
	case 1:
		return vs[0]
	case 2:
		return Imply(vs[0], vs[1])
	case 3:
		return Imply3(vs[0], vs[1], vs[2])
	case 4:
		return Imply4(vs[0], vs[1], vs[2], vs[3])
	case 5:
		return Imply5(vs[0], vs[1], vs[2], vs[3], vs[4])
	case 6:
		return Imply6(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5])
	case 7:
		return Imply7(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6])
	case 8:
		return Imply8(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7])
	case 9:
		return Imply9(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8])
	case 10:
		return Imply10(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7], vs[8], vs[9])
	default:
		x := len(vs)
		return And(ImplyN(vs[:x-1]), Imply(vs[x-2], vs[x-1]))
	}
}
