package g3

import "dasa.cc/ga/blade"

// bitmaps pairs each MultiVector component with its blade basis and the
// sign relating the two; e31 is stored as -e13.
var bitmaps = [8]struct {
	basis uint8
	sign  float64
}{
	{0, 1},
	{blade.E1, 1},
	{blade.E2, 1},
	{blade.E3, 1},
	{blade.E2 | blade.E3, 1},
	{blade.E1 | blade.E3, -1},
	{blade.E1 | blade.E2, 1},
	{blade.E1 | blade.E2 | blade.E3, 1},
}

// Blades returns the nonzero components of a as bitmap blades.
func (a MultiVector) Blades() blade.Multivector {
	var m blade.Multivector
	for i, b := range bitmaps {
		if x := a.At(i); x != 0 {
			m = append(m, blade.Blade{Scalar: b.sign * x, Basis: b.basis})
		}
	}
	return m
}

// FromBlades sums m into a MultiVector. Blades outside e1, e2, e3 are
// dropped.
func FromBlades(m blade.Multivector) MultiVector {
	var a MultiVector
	for _, v := range m {
		for i, b := range bitmaps {
			if v.Basis == b.basis {
				a.Set(i, a.At(i)+b.sign*v.Scalar)
			}
		}
	}
	return a
}
