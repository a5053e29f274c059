package g3

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// NearlyEqualRel reports whether a is within tol of ref relative to
// |ref|. References too small to divide by are compared absolutely.
func NearlyEqualRel(a, ref, tol float64) bool {
	if math.Abs(ref) > minNormal/epsilon {
		return scalar.EqualWithinRel(a, ref, tol)
	}
	return scalar.EqualWithinAbs(a, ref, tol)
}

// NearlyEqual compares a against ref component by component with
// NearlyEqualRel. Both are widened to MultiVector first so kinds need not
// match. A null never compares equal.
func NearlyEqual(a, ref Element, tol float64) bool {
	x, y := a.MV(), ref.MV()
	for i := 0; i < y.Len(); i++ {
		if !NearlyEqualRel(x.At(i), y.At(i), tol) {
			return false
		}
	}
	return true
}

// Close reports whether the euclidean distance between a and b is within
// tol scaled by the larger of 1, |a| and |b|.
func Close(a, b Element, tol float64) bool {
	x, y := Components(a.MV()), Components(b.MV())
	d := floats.Distance(x, y, 2)
	s := math.Max(1, math.Max(floats.Norm(x, 2), floats.Norm(y, 2)))
	return d <= tol*s
}
