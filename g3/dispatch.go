package g3

// Dynamic operators over Element. Binary products look up a flat table
// of forward kernels indexed by kind; the backward half reuses the
// forward entry, directly for the central kinds and through reversion
// otherwise. Arguments must not be nil.

// as returns e as a T, projecting through MV when e is not a T value.
func as[T entity[T]](e Element) T {
	if x, ok := e.(T); ok {
		return x
	}
	var x T
	return narrow(x.Kind(), e.MV()).(T)
}

func sca(e Element) Scalar     { return as[Scalar](e) }
func vec(e Element) Vector     { return as[Vector](e) }
func biv(e Element) BiVector   { return as[BiVector](e) }
func tri(e Element) TriVector  { return as[TriVector](e) }
func spin(e Element) Spinor    { return as[Spinor](e) }
func imsp(e Element) ImSpin    { return as[ImSpin](e) }
func cplx(e Element) ComPlex   { return as[ComPlex](e) }
func dplx(e Element) DirPlex   { return as[DirPlex](e) }
func mv(e Element) MultiVector { return e.MV() }

type product func(a, b Element) Element

var forward = [numKinds][numKinds]product{
	KindScalar: {
		KindScalar:      func(a, b Element) Element { return sca(a).MulSca(sca(b)) },
		KindVector:      func(a, b Element) Element { return sca(a).MulVec(vec(b)) },
		KindBiVector:    func(a, b Element) Element { return sca(a).MulBiv(biv(b)) },
		KindTriVector:   func(a, b Element) Element { return sca(a).MulTri(tri(b)) },
		KindSpinor:      func(a, b Element) Element { return sca(a).MulSpin(spin(b)) },
		KindImSpin:      func(a, b Element) Element { return sca(a).MulImsp(imsp(b)) },
		KindComPlex:     func(a, b Element) Element { return sca(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return sca(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return sca(a).MulMV(mv(b)) },
	},
	KindVector: {
		KindVector:      func(a, b Element) Element { return vec(a).MulVec(vec(b)) },
		KindBiVector:    func(a, b Element) Element { return vec(a).MulBiv(biv(b)) },
		KindTriVector:   func(a, b Element) Element { return vec(a).MulTri(tri(b)) },
		KindSpinor:      func(a, b Element) Element { return vec(a).MulSpin(spin(b)) },
		KindImSpin:      func(a, b Element) Element { return vec(a).MulImsp(imsp(b)) },
		KindComPlex:     func(a, b Element) Element { return vec(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return vec(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return vec(a).MulMV(mv(b)) },
	},
	KindBiVector: {
		KindBiVector:    func(a, b Element) Element { return biv(a).MulBiv(biv(b)) },
		KindTriVector:   func(a, b Element) Element { return biv(a).MulTri(tri(b)) },
		KindSpinor:      func(a, b Element) Element { return biv(a).MulSpin(spin(b)) },
		KindImSpin:      func(a, b Element) Element { return biv(a).MulImsp(imsp(b)) },
		KindComPlex:     func(a, b Element) Element { return biv(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return biv(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return biv(a).MulMV(mv(b)) },
	},
	KindTriVector: {
		KindTriVector:   func(a, b Element) Element { return tri(a).MulTri(tri(b)) },
		KindSpinor:      func(a, b Element) Element { return tri(a).MulSpin(spin(b)) },
		KindImSpin:      func(a, b Element) Element { return tri(a).MulImsp(imsp(b)) },
		KindComPlex:     func(a, b Element) Element { return tri(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return tri(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return tri(a).MulMV(mv(b)) },
	},
	KindSpinor: {
		KindSpinor:      func(a, b Element) Element { return spin(a).MulSpin(spin(b)) },
		KindImSpin:      func(a, b Element) Element { return spin(a).MulImsp(imsp(b)) },
		KindComPlex:     func(a, b Element) Element { return spin(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return spin(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return spin(a).MulMV(mv(b)) },
	},
	KindImSpin: {
		KindImSpin:      func(a, b Element) Element { return imsp(a).MulImsp(imsp(b)) },
		KindComPlex:     func(a, b Element) Element { return imsp(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return imsp(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return imsp(a).MulMV(mv(b)) },
	},
	KindComPlex: {
		KindComPlex:     func(a, b Element) Element { return cplx(a).MulCplx(cplx(b)) },
		KindDirPlex:     func(a, b Element) Element { return cplx(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return cplx(a).MulMV(mv(b)) },
	},
	KindDirPlex: {
		KindDirPlex:     func(a, b Element) Element { return dplx(a).MulDplx(dplx(b)) },
		KindMultiVector: func(a, b Element) Element { return dplx(a).MulMV(mv(b)) },
	},
	KindMultiVector: {
		KindMultiVector: func(a, b Element) Element { return mv(a).MulMV(mv(b)) },
	},
}

// central reports whether k commutes with every element.
func central(k Kind) bool {
	return k == KindScalar || k == KindTriVector || k == KindComPlex
}

// Mul returns the geometric product ab as the kind given by the
// product table.
func Mul(a, b Element) Element {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka <= kb:
		return forward[ka][kb](a, b)
	case central(ka) || central(kb):
		return forward[kb][ka](b, a)
	}
	return Rev(forward[kb][ka](Rev(b), Rev(a)))
}

// Add returns a+b as the smallest kind holding the grades of both.
func Add(a, b Element) Element {
	k := KindOf(a.Kind().Grades() | b.Kind().Grades())
	return narrow(k, a.MV().Add(b.MV()))
}

// Sub returns a-b as the smallest kind holding the grades of both.
func Sub(a, b Element) Element {
	k := KindOf(a.Kind().Grades() | b.Kind().Grades())
	return narrow(k, a.MV().Sub(b.MV()))
}

// Scale returns fe with the kind of e.
func Scale(e Element, f float64) Element { return narrow(e.Kind(), e.MV().Scale(f)) }

func Neg(e Element) Element  { return narrow(e.Kind(), e.MV().Neg()) }
func Rev(e Element) Element  { return narrow(e.Kind(), e.MV().Rev()) }
func Odd(e Element) Element  { return narrow(e.Kind(), e.MV().Odd()) }
func Conj(e Element) Element { return narrow(e.Kind(), e.MV().Conj()) }

// Dual returns e·e123, swapping grade k for grade 3-k.
func Dual(e Element) Element {
	g := e.Kind().Grades()
	var d uint8
	for i := uint(0); i < 4; i++ {
		if g&(1<<i) != 0 {
			d |= 1 << (3 - i)
		}
	}
	return narrow(KindOf(d), e.MV().Dual())
}

// MagSq returns the squared magnitude of e.
func MagSq(e Element) float64 { return e.MV().MagSq() }

// Inverse returns the multiplicative inverse of e with the kind of e,
// or a null when e has none.
func Inverse(e Element) Element {
	switch e.Kind() {
	case KindScalar:
		return sca(e).Inverse()
	case KindVector:
		return vec(e).Inverse()
	case KindBiVector:
		return biv(e).Inverse()
	case KindTriVector:
		return tri(e).Inverse()
	case KindSpinor:
		return spin(e).Inverse()
	case KindImSpin:
		return imsp(e).Inverse()
	case KindComPlex:
		return cplx(e).Inverse()
	case KindDirPlex:
		return dplx(e).Inverse()
	}
	return mv(e).Inverse()
}

// Amplitude returns the amplitude of e by its kind, so blades held in a
// wider kind are not mistaken for their MultiVector form.
func Amplitude(e Element) ComPlex {
	switch e.Kind() {
	case KindScalar:
		return sca(e).Amplitude()
	case KindVector:
		return vec(e).Amplitude()
	case KindBiVector:
		return biv(e).Amplitude()
	case KindTriVector:
		return tri(e).Amplitude()
	case KindSpinor:
		return spin(e).Amplitude()
	case KindImSpin:
		return imsp(e).Amplitude()
	case KindComPlex:
		return cplx(e).Amplitude()
	case KindDirPlex:
		return dplx(e).Amplitude()
	}
	return mv(e).Amplitude()
}

// Direction returns e scaled to unit magnitude with the kind of e, or a
// null when the magnitude is zero or subnormal.
func Direction(e Element) Element { return narrow(e.Kind(), e.MV().Direction()) }
