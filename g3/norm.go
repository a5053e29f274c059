package g3

import (
	"math"
	"math/cmplx"
)

// MagSq is the scalar part of a·Rev(a). In a euclidean algebra that is
// the sum of squared components for every type.

func (a Scalar) MagSq() float64    { return float64(a * a) }
func (a Vector) MagSq() float64    { return dotProd(a, a) }
func (a BiVector) MagSq() float64  { return dotProd(a, a) }
func (a TriVector) MagSq() float64 { return float64(a * a) }
func (a Spinor) MagSq() float64    { return a.Sca.MagSq() + a.Biv.MagSq() }
func (a ImSpin) MagSq() float64    { return a.Vec.MagSq() + a.Tri.MagSq() }
func (a ComPlex) MagSq() float64   { return a.Sca.MagSq() + a.Tri.MagSq() }
func (a DirPlex) MagSq() float64   { return a.Vec.MagSq() + a.Biv.MagSq() }

func (a MultiVector) MagSq() float64 {
	return a.Sca.MagSq() + a.Vec.MagSq() + a.Biv.MagSq() + a.Tri.MagSq()
}

func (a Scalar) Mag() float64      { return math.Abs(float64(a)) }
func (a Vector) Mag() float64      { return math.Sqrt(a.MagSq()) }
func (a BiVector) Mag() float64    { return math.Sqrt(a.MagSq()) }
func (a TriVector) Mag() float64   { return math.Abs(float64(a)) }
func (a Spinor) Mag() float64      { return math.Sqrt(a.MagSq()) }
func (a ImSpin) Mag() float64      { return math.Sqrt(a.MagSq()) }
func (a ComPlex) Mag() float64     { return math.Sqrt(a.MagSq()) }
func (a DirPlex) Mag() float64     { return math.Sqrt(a.MagSq()) }
func (a MultiVector) Mag() float64 { return math.Sqrt(a.MagSq()) }

// recip returns 1/x, or NaN when x is zero, subnormal or not finite.
func recip(x float64) float64 {
	if !valid(x) || x == 0 {
		return nan
	}
	return 1 / x
}

// Direction returns a scaled to unit magnitude, or a null when the
// magnitude is zero or subnormal.

func (a Scalar) Direction() Scalar           { return a.Scale(recip(a.Mag())) }
func (a Vector) Direction() Vector           { return a.Scale(recip(a.Mag())) }
func (a BiVector) Direction() BiVector       { return a.Scale(recip(a.Mag())) }
func (a TriVector) Direction() TriVector     { return a.Scale(recip(a.Mag())) }
func (a Spinor) Direction() Spinor           { return a.Scale(recip(a.Mag())) }
func (a ImSpin) Direction() ImSpin           { return a.Scale(recip(a.Mag())) }
func (a ComPlex) Direction() ComPlex         { return a.Scale(recip(a.Mag())) }
func (a DirPlex) Direction() DirPlex         { return a.Scale(recip(a.Mag())) }
func (a MultiVector) Direction() MultiVector { return a.Scale(recip(a.Mag())) }

// Inverse returns Rev(a)/MagSq(a) for types where a·Rev(a) is a scalar,
// or a null when MagSq(a) is zero or subnormal.

func (a Scalar) Inverse() Scalar       { return a.Rev().Scale(recip(a.MagSq())) }
func (a Vector) Inverse() Vector       { return a.Rev().Scale(recip(a.MagSq())) }
func (a BiVector) Inverse() BiVector   { return a.Rev().Scale(recip(a.MagSq())) }
func (a TriVector) Inverse() TriVector { return a.Rev().Scale(recip(a.MagSq())) }
func (a Spinor) Inverse() Spinor       { return a.Rev().Scale(recip(a.MagSq())) }
func (a ImSpin) Inverse() ImSpin       { return a.Rev().Scale(recip(a.MagSq())) }
func (a ComPlex) Inverse() ComPlex     { return a.Rev().Scale(recip(a.MagSq())) }

// Inverse uses a·Conj(a), a ComPlex that commutes with a:
// a⁻¹ = Conj(a)·(a·Conj(a))⁻¹.
func (a DirPlex) Inverse() DirPlex {
	c := a.MulDplx(a.Conj()).Complex()
	return a.Conj().MulCplx(c.Inverse())
}

// Inverse returns Conj(a)·Rev(a)·Odd(a)/d with d the scalar part of
// a·Conj(a)·Rev(a)·Odd(a); the product is a scalar in three dimensions.
func (a MultiVector) Inverse() MultiVector {
	n := a.Conj().MulMV(a.Rev()).MulMV(a.Odd())
	f := recip(float64(a.MulMV(n).Sca))
	return n.Scale(f)
}

// Amplitude is the principal square root of a·Conj(a) read as a complex
// number with i = e123. Blades return their magnitude.

func (a Scalar) Amplitude() ComPlex    { return ComPlex{Sca: Scalar(a.Mag())} }
func (a Vector) Amplitude() ComPlex    { return ComPlex{Sca: Scalar(a.Mag())} }
func (a BiVector) Amplitude() ComPlex  { return ComPlex{Sca: Scalar(a.Mag())} }
func (a TriVector) Amplitude() ComPlex { return ComPlex{Sca: Scalar(a.Mag())} }

func (a Spinor) Amplitude() ComPlex      { return amplitude(a.MV()) }
func (a ImSpin) Amplitude() ComPlex      { return amplitude(a.MV()) }
func (a ComPlex) Amplitude() ComPlex     { return amplitude(a.MV()) }
func (a DirPlex) Amplitude() ComPlex     { return amplitude(a.MV()) }
func (a MultiVector) Amplitude() ComPlex { return amplitude(a) }

func amplitude(a MultiVector) ComPlex {
	if !a.Valid() {
		return Null[ComPlex]()
	}
	z := a.MulMV(a.Conj()).Complex().Complex()
	// a signed zero imaginary part picks the root below the branch cut
	z = complex(real(z), imag(z)+0)
	return ComPlexOf(cmplx.Sqrt(z))
}
