// Package blade provides basis blades and sparse multivectors encoded by
// bitmap, for euclidean algebras of up to eight dimensions.
//
// Bit i of a basis marks the vector e(i+1), so in three dimensions
//
//	e1    001
//	e2    010
//	e12   011
//	e3    100
//	e123  111
//
// A basis names its vectors in ascending order; e31 is -1 times basis
// 101, which is e13.
package blade

import (
	"fmt"
	"math/bits"
	"sort"
)

const (
	E1 = uint8(1)
	E2 = uint8(1 << 1)
	E3 = uint8(1 << 2)
)

// Scalar returns a 0-grade Blade.
func Scalar(x float64) Blade { return Blade{Scalar: x} }

type Blade struct {
	Scalar float64

	// Basis is a bitmap of independent vectors, if any; vectors must be in
	// canonical ordering so account for sign changes of Scalar when specifying.
	Basis uint8
}

// Grade returns the number of independent vectors of Blade.
func (a Blade) Grade() int {
	return bits.OnesCount8(a.Basis)
}

// Mul returns the geometric product of ab; assumes orthonormal bases and
// annihilates dependent vectors.
func (a Blade) Mul(b Blade) Blade {
	return Blade{Sign(a.Basis, b.Basis) * a.Scalar * b.Scalar, a.Basis ^ b.Basis}
}

// NormSq returns the scalar a·Rev(a).
func (a Blade) NormSq() float64 {
	return a.Mul(a.Rev()).Scalar
}

func (a Blade) Inverse() Blade {
	b := a.Rev()
	b.Scalar /= a.NormSq()
	return b
}

// Rev returns the reverse, negated for grades 2 and 3 modulo 4.
func (a Blade) Rev() Blade {
	if a.Grade()%4 > 1 {
		a.Scalar *= -1
	}
	return a
}

// Conj returns the Clifford conjugate, negated for grades 1 and 2 modulo 4.
func (a Blade) Conj() Blade {
	if x := a.Grade() % 4; x == 1 || x == 2 {
		a.Scalar *= -1
	}
	return a
}

func (a Blade) String() string {
	return fmt.Sprintf("Blade(%v, %08b)", a.Scalar, a.Basis)
}

// Sign returns the sign of the product of basis a with basis b, -1 when
// reordering their vectors into canonical order takes an odd number of
// swaps.
func Sign(a, b uint8) float64 {
	a = a >> 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a = a >> 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Multivector is a sum of blades; results of its methods hold at most one
// blade per basis, sorted by basis.
type Multivector []Blade

func (a Multivector) Mul(b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Mul(b1))
		}
	}
	return simplify(c)
}

func (a Multivector) Add(b Multivector) Multivector {
	c := make(Multivector, len(a))
	copy(c, a)
	return simplify(append(c, b...))
}

func (a Multivector) Rev() Multivector {
	var b Multivector
	for _, v := range a {
		b = append(b, v.Rev())
	}
	return b
}

func (a Multivector) ScalarOf(basis uint8) float64 {
	for _, v := range a {
		if v.Basis == basis {
			return v.Scalar
		}
	}
	return 0
}

func (a Multivector) Scalar() float64 { return a.ScalarOf(0) }

// simplify sums blades of equal basis and drops zeros.
func simplify(a Multivector) Multivector {
	m := make(map[uint8]float64)
	for _, v := range a {
		m[v.Basis] += v.Scalar
	}
	var b Multivector
	for k, v := range m {
		if v != 0 {
			b = append(b, Blade{Scalar: v, Basis: k})
		}
	}
	sort.Slice(b, func(i, j int) bool {
		return b[i].Basis < b[j].Basis
	})
	return b
}
