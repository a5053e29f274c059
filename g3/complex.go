package g3

import (
	"math"
	"math/cmplx"
)

// ComPlexOf returns z with the imaginary unit mapped to e123.
func ComPlexOf(z complex128) ComPlex {
	return ComPlex{Scalar(real(z)), TriVector(imag(z))}
}

// Complex returns a as a complex number with e123 mapped to i.
func (a ComPlex) Complex() complex128 {
	return complex(float64(a.Sca), float64(a.Tri))
}

// Exp returns cos(t) + sin(t)·e123.
func (a TriVector) Exp() ComPlex {
	if !a.Valid() {
		return Null[ComPlex]()
	}
	t := float64(a)
	return ComPlex{Scalar(math.Cos(t)), TriVector(math.Sin(t))}
}

func (a ComPlex) Exp() ComPlex {
	if !a.Valid() {
		return Null[ComPlex]()
	}
	return ComPlexOf(cmplx.Exp(a.Complex()))
}

// Log returns the principal logarithm, or a null at zero.
func (a ComPlex) Log() ComPlex {
	if !a.Valid() || a.Mag() < epsilon {
		return Null[ComPlex]()
	}
	return ComPlexOf(cmplx.Log(a.Complex()))
}

// Sqrt returns the principal square root.
func (a ComPlex) Sqrt() ComPlex {
	if !a.Valid() {
		return Null[ComPlex]()
	}
	return ComPlexOf(cmplx.Sqrt(a.Complex()))
}
