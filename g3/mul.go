package g3

// Forward geometric products, defined for rank(a) <= rank(b) in the
// order Scalar, Vector, BiVector, TriVector, Spinor, ImSpin, ComPlex,
// DirPlex, MultiVector. The remaining pairs are in mulback.go.
//
// With v, w vectors, A, B bivectors and I = e123 the kernels are
//
//	vw = v·w + v×w           (scalar, bivector)
//	vB = B×v + (v·B)I        (vector, trivector)
//	Av = v×A + (A·v)I
//	AB = -A·B - A×B          (scalar, bivector)
//	vI = v as bivector, AI = -A as vector, II = -1

func (a Scalar) MulSca(b Scalar) Scalar          { return a * b }
func (a Scalar) MulVec(b Vector) Vector          { return b.Scale(float64(a)) }
func (a Scalar) MulBiv(b BiVector) BiVector      { return b.Scale(float64(a)) }
func (a Scalar) MulTri(b TriVector) TriVector    { return b.Scale(float64(a)) }
func (a Scalar) MulSpin(b Spinor) Spinor         { return b.Scale(float64(a)) }
func (a Scalar) MulImsp(b ImSpin) ImSpin         { return b.Scale(float64(a)) }
func (a Scalar) MulCplx(b ComPlex) ComPlex       { return b.Scale(float64(a)) }
func (a Scalar) MulDplx(b DirPlex) DirPlex       { return b.Scale(float64(a)) }
func (a Scalar) MulMV(b MultiVector) MultiVector { return b.Scale(float64(a)) }

func (a Vector) MulVec(b Vector) Spinor {
	return Spinor{Scalar(dotProd(a, b)), crossProd(a, b)}
}

func (a Vector) MulBiv(b BiVector) ImSpin {
	return ImSpin{crossProd(b, a), TriVector(dotProd(a, b))}
}

func (a Vector) MulTri(b TriVector) BiVector {
	return scale3(float64(b), a)
}

func (a Vector) MulSpin(b Spinor) ImSpin {
	return ImSpin{
		add3(scale3(float64(b.Sca), a), crossProd(b.Biv, a)),
		TriVector(dotProd(a, b.Biv)),
	}
}

func (a Vector) MulImsp(b ImSpin) Spinor {
	return Spinor{
		Scalar(dotProd(a, b.Vec)),
		add3(crossProd(a, b.Vec), scale3(float64(b.Tri), a)),
	}
}

func (a Vector) MulCplx(b ComPlex) DirPlex {
	return DirPlex{scale3(float64(b.Sca), a), scale3(float64(b.Tri), a)}
}

func (a Vector) MulDplx(b DirPlex) MultiVector {
	return MultiVector{
		Sca: Scalar(dotProd(a, b.Vec)),
		Vec: crossProd(b.Biv, a),
		Biv: crossProd(a, b.Vec),
		Tri: TriVector(dotProd(a, b.Biv)),
	}
}

func (a Vector) MulMV(b MultiVector) MultiVector {
	return MultiVector{
		Sca: Scalar(dotProd(a, b.Vec)),
		Vec: add3(scale3(float64(b.Sca), a), crossProd(b.Biv, a)),
		Biv: add3(crossProd(a, b.Vec), scale3(float64(b.Tri), a)),
		Tri: TriVector(dotProd(a, b.Biv)),
	}
}

func (a BiVector) MulBiv(b BiVector) Spinor {
	return Spinor{Scalar(-dotProd(a, b)), neg3(crossProd(a, b))}
}

func (a BiVector) MulTri(b TriVector) Vector {
	return scale3(-float64(b), a)
}

func (a BiVector) MulSpin(b Spinor) Spinor {
	return Spinor{
		Scalar(-dotProd(a, b.Biv)),
		sub3(scale3(float64(b.Sca), a), crossProd(a, b.Biv)),
	}
}

func (a BiVector) MulImsp(b ImSpin) ImSpin {
	return ImSpin{
		sub3(crossProd(b.Vec, a), scale3(float64(b.Tri), a)),
		TriVector(dotProd(a, b.Vec)),
	}
}

func (a BiVector) MulCplx(b ComPlex) DirPlex {
	return DirPlex{scale3(-float64(b.Tri), a), scale3(float64(b.Sca), a)}
}

func (a BiVector) MulDplx(b DirPlex) MultiVector {
	return MultiVector{
		Sca: Scalar(-dotProd(a, b.Biv)),
		Vec: crossProd(b.Vec, a),
		Biv: neg3(crossProd(a, b.Biv)),
		Tri: TriVector(dotProd(a, b.Vec)),
	}
}

func (a BiVector) MulMV(b MultiVector) MultiVector {
	return MultiVector{
		Sca: Scalar(-dotProd(a, b.Biv)),
		Vec: sub3(crossProd(b.Vec, a), scale3(float64(b.Tri), a)),
		Biv: sub3(scale3(float64(b.Sca), a), crossProd(a, b.Biv)),
		Tri: TriVector(dotProd(a, b.Vec)),
	}
}

// The pseudoscalar commutes with everything.

func (a TriVector) MulTri(b TriVector) Scalar {
	return Scalar(-a * b)
}

func (a TriVector) MulSpin(b Spinor) ImSpin {
	t := float64(a)
	return ImSpin{scale3(-t, b.Biv), TriVector(t * float64(b.Sca))}
}

func (a TriVector) MulImsp(b ImSpin) Spinor {
	t := float64(a)
	return Spinor{Scalar(-t * float64(b.Tri)), scale3(t, b.Vec)}
}

func (a TriVector) MulCplx(b ComPlex) ComPlex {
	t := float64(a)
	return ComPlex{Scalar(-t * float64(b.Tri)), TriVector(t * float64(b.Sca))}
}

func (a TriVector) MulDplx(b DirPlex) DirPlex {
	t := float64(a)
	return DirPlex{scale3(-t, b.Biv), scale3(t, b.Vec)}
}

func (a TriVector) MulMV(b MultiVector) MultiVector {
	t := float64(a)
	return MultiVector{
		Sca: Scalar(-t * float64(b.Tri)),
		Vec: scale3(-t, b.Biv),
		Biv: scale3(t, b.Vec),
		Tri: TriVector(t * float64(b.Sca)),
	}
}

func (a Spinor) MulSpin(b Spinor) Spinor {
	s, r := float64(a.Sca), float64(b.Sca)
	return Spinor{
		Scalar(s*r - dotProd(a.Biv, b.Biv)),
		sub3(add3(scale3(s, b.Biv), scale3(r, a.Biv)), crossProd(a.Biv, b.Biv)),
	}
}

func (a Spinor) MulImsp(b ImSpin) ImSpin {
	s, u := float64(a.Sca), float64(b.Tri)
	return ImSpin{
		sub3(add3(scale3(s, b.Vec), crossProd(b.Vec, a.Biv)), scale3(u, a.Biv)),
		TriVector(s*u + dotProd(a.Biv, b.Vec)),
	}
}

func (a Spinor) MulCplx(b ComPlex) MultiVector {
	s, r, u := float64(a.Sca), float64(b.Sca), float64(b.Tri)
	return MultiVector{
		Sca: Scalar(s * r),
		Vec: scale3(-u, a.Biv),
		Biv: scale3(r, a.Biv),
		Tri: TriVector(s * u),
	}
}

func (a Spinor) MulDplx(b DirPlex) MultiVector {
	s := float64(a.Sca)
	return MultiVector{
		Sca: Scalar(-dotProd(a.Biv, b.Biv)),
		Vec: add3(scale3(s, b.Vec), crossProd(b.Vec, a.Biv)),
		Biv: sub3(scale3(s, b.Biv), crossProd(a.Biv, b.Biv)),
		Tri: TriVector(dotProd(a.Biv, b.Vec)),
	}
}

func (a Spinor) MulMV(b MultiVector) MultiVector {
	s, r, u := float64(a.Sca), float64(b.Sca), float64(b.Tri)
	return MultiVector{
		Sca: Scalar(s*r - dotProd(a.Biv, b.Biv)),
		Vec: sub3(add3(scale3(s, b.Vec), crossProd(b.Vec, a.Biv)), scale3(u, a.Biv)),
		Biv: sub3(add3(scale3(s, b.Biv), scale3(r, a.Biv)), crossProd(a.Biv, b.Biv)),
		Tri: TriVector(s*u + dotProd(a.Biv, b.Vec)),
	}
}

func (a ImSpin) MulImsp(b ImSpin) Spinor {
	t, u := float64(a.Tri), float64(b.Tri)
	return Spinor{
		Scalar(dotProd(a.Vec, b.Vec) - t*u),
		add3(crossProd(a.Vec, b.Vec), add3(scale3(u, a.Vec), scale3(t, b.Vec))),
	}
}

func (a ImSpin) MulCplx(b ComPlex) MultiVector {
	t, r, u := float64(a.Tri), float64(b.Sca), float64(b.Tri)
	return MultiVector{
		Sca: Scalar(-t * u),
		Vec: scale3(r, a.Vec),
		Biv: scale3(u, a.Vec),
		Tri: TriVector(t * r),
	}
}

func (a ImSpin) MulDplx(b DirPlex) MultiVector {
	t := float64(a.Tri)
	return MultiVector{
		Sca: Scalar(dotProd(a.Vec, b.Vec)),
		Vec: sub3(crossProd(b.Biv, a.Vec), scale3(t, b.Biv)),
		Biv: add3(crossProd(a.Vec, b.Vec), scale3(t, b.Vec)),
		Tri: TriVector(dotProd(a.Vec, b.Biv)),
	}
}

func (a ImSpin) MulMV(b MultiVector) MultiVector {
	return a.Vec.MulMV(b).Add(a.Tri.MulMV(b))
}

// ComPlex multiplies as a complex number with i = e123.

func (a ComPlex) MulCplx(b ComPlex) ComPlex {
	s, t, r, u := float64(a.Sca), float64(a.Tri), float64(b.Sca), float64(b.Tri)
	return ComPlex{Scalar(s*r - t*u), TriVector(s*u + t*r)}
}

func (a ComPlex) MulDplx(b DirPlex) DirPlex {
	s, t := float64(a.Sca), float64(a.Tri)
	return DirPlex{
		sub3(scale3(s, b.Vec), scale3(t, b.Biv)),
		add3(scale3(s, b.Biv), scale3(t, b.Vec)),
	}
}

func (a ComPlex) MulMV(b MultiVector) MultiVector {
	s, t, r, u := float64(a.Sca), float64(a.Tri), float64(b.Sca), float64(b.Tri)
	return MultiVector{
		Sca: Scalar(s*r - t*u),
		Vec: sub3(scale3(s, b.Vec), scale3(t, b.Biv)),
		Biv: add3(scale3(s, b.Biv), scale3(t, b.Vec)),
		Tri: TriVector(s*u + t*r),
	}
}

func (a DirPlex) MulDplx(b DirPlex) MultiVector {
	return a.Vec.MulDplx(b).Add(a.Biv.MulDplx(b))
}

func (a DirPlex) MulMV(b MultiVector) MultiVector {
	return a.Vec.MulMV(b).Add(a.Biv.MulMV(b))
}

// MulMV is the general product, the sum of the 64 basis blade products
// grouped by grade of a.
func (a MultiVector) MulMV(b MultiVector) MultiVector {
	p := b.Scale(float64(a.Sca))
	p = p.Add(a.Vec.MulMV(b))
	p = p.Add(a.Biv.MulMV(b))
	return p.Add(a.Tri.MulMV(b))
}
