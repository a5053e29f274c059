package g3

import "math"

const (
	// expRadius is the magnitude a MultiVector is halved below before
	// summing its series.
	expRadius = 0.5

	// expTerms bounds the number of series terms.
	expTerms = 55

	// expTol is the ratio of term to partial sum at which the series stops.
	expTol = 0x1p-50
)

// Exp returns cos|a| + sin|a|·â, a rotor in the plane of a.
func (a BiVector) Exp() Spinor {
	if !a.Valid() {
		return Null[Spinor]()
	}
	m := a.Mag()
	if m < minNormal {
		return One[Spinor]()
	}
	return Spinor{Scalar(math.Cos(m)), a.Scale(math.Sin(m) / m)}
}

// Exp factors into exp(a.Sca)·exp(a.Biv), the grades commute.
func (a Spinor) Exp() Spinor {
	if !a.Valid() {
		return Null[Spinor]()
	}
	return a.Biv.Exp().Scale(math.Exp(float64(a.Sca)))
}

// Exp sums the power series of a after halving a until its magnitude is
// at most 0.5, then squares the sum once per halving. It returns a null
// if the series fails to converge.
func (a MultiVector) Exp() MultiVector {
	if !a.Valid() {
		return Null[MultiVector]()
	}
	n := 0
	for a.Mag() > expRadius {
		a = a.Scale(0.5)
		n++
	}

	sum := One[MultiVector]()
	term := sum
	for k := 1; ; k++ {
		if k > expTerms {
			return Null[MultiVector]()
		}
		term = term.MulMV(a).Scale(1 / float64(k))
		sum = sum.Add(term)
		if term.Mag() <= expTol*sum.Mag() {
			break
		}
	}

	for ; n > 0; n-- {
		sum = sum.MulMV(sum)
	}
	return sum
}

// Log returns the principal logarithm of a, using the e23 plane when a
// is a negative scalar.
func (a Spinor) Log() Spinor { return a.LogPlane(E23) }

// LogPlane returns the principal logarithm of a, a scalar log|a| plus a
// bivector of angle at most π. When a is a negative scalar the plane of
// rotation is undefined and the direction of fallback is used. A null is
// returned when |a| is below machine epsilon.
func (a Spinor) LogPlane(fallback BiVector) Spinor {
	if !a.Valid() {
		return Null[Spinor]()
	}
	m := a.Mag()
	if m < epsilon {
		return Null[Spinor]()
	}
	u := a.Scale(1 / m)
	lm := Scalar(math.Log(m))

	c := float64(u.Sca)
	switch {
	case c > 1-epsilon:
		// angle and sine agree to rounding
		return Spinor{lm, u.Biv}
	case c < -(1 - epsilon):
		return Spinor{lm, fallback.Direction().Scale(math.Pi)}
	}
	s := u.Biv.Mag()
	phi := math.Atan2(s, c)
	return Spinor{lm, u.Biv.Scale(phi / s)}
}

// Sqrt returns the principal square root of a, using the e23 plane when
// a is a negative scalar.
func (a Spinor) Sqrt() Spinor { return a.SqrtPlane(E23) }

// SqrtPlane returns exp(log(a)/2), or zero when |a| is below machine
// epsilon. See LogPlane for fallback.
func (a Spinor) SqrtPlane(fallback BiVector) Spinor {
	if !a.Valid() {
		return Null[Spinor]()
	}
	if a.Mag() < epsilon {
		return Spinor{}
	}
	return a.LogPlane(fallback).Scale(0.5).Exp()
}
