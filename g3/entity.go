package g3

import "golang.org/x/exp/constraints"

// Scalar is a grade 0 blade.
type Scalar float64

// Vector is a grade 1 blade with components e1, e2, e3.
type Vector [3]float64

// BiVector is a grade 2 blade with components e23, e31, e12.
type BiVector [3]float64

// TriVector is a grade 3 blade, a multiple of the pseudoscalar e123.
type TriVector float64

// Spinor holds the even grades 0 and 2.
type Spinor struct {
	Sca Scalar
	Biv BiVector
}

// ImSpin holds the odd grades 1 and 3; it is the dual of a Spinor.
type ImSpin struct {
	Vec Vector
	Tri TriVector
}

// ComPlex holds grades 0 and 3. It commutes with everything and
// multiplies as a complex number with i = e123.
type ComPlex struct {
	Sca Scalar
	Tri TriVector
}

// DirPlex holds the spatially directed grades 1 and 2.
type DirPlex struct {
	Vec Vector
	Biv BiVector
}

// MultiVector holds all four grades.
type MultiVector struct {
	Sca Scalar
	Vec Vector
	Biv BiVector
	Tri TriVector
}

// NewVector returns a Vector from components of any numeric kind.
func NewVector[T constraints.Integer | constraints.Float](x, y, z T) Vector {
	return Vector{float64(x), float64(y), float64(z)}
}

// NewBiVector returns a BiVector from e23, e31, e12 components of any numeric kind.
func NewBiVector[T constraints.Integer | constraints.Float](yz, zx, xy T) BiVector {
	return BiVector{float64(yz), float64(zx), float64(xy)}
}

func (Scalar) Kind() Kind      { return KindScalar }
func (Vector) Kind() Kind      { return KindVector }
func (BiVector) Kind() Kind    { return KindBiVector }
func (TriVector) Kind() Kind   { return KindTriVector }
func (Spinor) Kind() Kind      { return KindSpinor }
func (ImSpin) Kind() Kind      { return KindImSpin }
func (ComPlex) Kind() Kind     { return KindComPlex }
func (DirPlex) Kind() Kind     { return KindDirPlex }
func (MultiVector) Kind() Kind { return KindMultiVector }

func (Scalar) Len() int      { return 1 }
func (Vector) Len() int      { return 3 }
func (BiVector) Len() int    { return 3 }
func (TriVector) Len() int   { return 1 }
func (Spinor) Len() int      { return 4 }
func (ImSpin) Len() int      { return 4 }
func (ComPlex) Len() int     { return 2 }
func (DirPlex) Len() int     { return 6 }
func (MultiVector) Len() int { return 8 }

func at3(a [3]float64, i int) float64 {
	if i < 0 || i > 2 {
		return nan
	}
	return a[i]
}

func (a Scalar) At(i int) float64 {
	if i != 0 {
		return nan
	}
	return float64(a)
}

func (a Vector) At(i int) float64   { return at3(a, i) }
func (a BiVector) At(i int) float64 { return at3(a, i) }

func (a TriVector) At(i int) float64 {
	if i != 0 {
		return nan
	}
	return float64(a)
}

func (a Spinor) At(i int) float64 {
	if i == 0 {
		return float64(a.Sca)
	}
	return at3(a.Biv, i-1)
}

func (a ImSpin) At(i int) float64 {
	if i == 3 {
		return float64(a.Tri)
	}
	return at3(a.Vec, i)
}

func (a ComPlex) At(i int) float64 {
	switch i {
	case 0:
		return float64(a.Sca)
	case 1:
		return float64(a.Tri)
	}
	return nan
}

func (a DirPlex) At(i int) float64 {
	if i < 3 {
		return at3(a.Vec, i)
	}
	return at3(a.Biv, i-3)
}

func (a MultiVector) At(i int) float64 {
	switch {
	case i == 0:
		return float64(a.Sca)
	case i < 4:
		return at3(a.Vec, i-1)
	case i < 7:
		return at3(a.Biv, i-4)
	case i == 7:
		return float64(a.Tri)
	}
	return nan
}

func set3(a *[3]float64, i int, v float64) {
	if i >= 0 && i < 3 {
		a[i] = v
	}
}

func (a *Scalar) Set(i int, v float64) {
	if i == 0 {
		*a = Scalar(v)
	}
}

func (a *Vector) Set(i int, v float64)   { set3((*[3]float64)(a), i, v) }
func (a *BiVector) Set(i int, v float64) { set3((*[3]float64)(a), i, v) }

func (a *TriVector) Set(i int, v float64) {
	if i == 0 {
		*a = TriVector(v)
	}
}

func (a *Spinor) Set(i int, v float64) {
	if i == 0 {
		a.Sca = Scalar(v)
		return
	}
	a.Biv.Set(i-1, v)
}

func (a *ImSpin) Set(i int, v float64) {
	if i == 3 {
		a.Tri = TriVector(v)
		return
	}
	a.Vec.Set(i, v)
}

func (a *ComPlex) Set(i int, v float64) {
	switch i {
	case 0:
		a.Sca = Scalar(v)
	case 1:
		a.Tri = TriVector(v)
	}
}

func (a *DirPlex) Set(i int, v float64) {
	if i < 3 {
		a.Vec.Set(i, v)
		return
	}
	a.Biv.Set(i-3, v)
}

func (a *MultiVector) Set(i int, v float64) {
	switch {
	case i == 0:
		a.Sca = Scalar(v)
	case i < 4:
		a.Vec.Set(i-1, v)
	case i < 7:
		a.Biv.Set(i-4, v)
	case i == 7:
		a.Tri = TriVector(v)
	}
}

func (a Scalar) MV() MultiVector      { return MultiVector{Sca: a} }
func (a Vector) MV() MultiVector      { return MultiVector{Vec: a} }
func (a BiVector) MV() MultiVector    { return MultiVector{Biv: a} }
func (a TriVector) MV() MultiVector   { return MultiVector{Tri: a} }
func (a Spinor) MV() MultiVector      { return MultiVector{Sca: a.Sca, Biv: a.Biv} }
func (a ImSpin) MV() MultiVector      { return MultiVector{Vec: a.Vec, Tri: a.Tri} }
func (a ComPlex) MV() MultiVector     { return MultiVector{Sca: a.Sca, Tri: a.Tri} }
func (a DirPlex) MV() MultiVector     { return MultiVector{Vec: a.Vec, Biv: a.Biv} }
func (a MultiVector) MV() MultiVector { return a }

// Widening conversions into the two grade containers.

func (a Scalar) Spinor() Spinor      { return Spinor{Sca: a} }
func (a Scalar) ComPlex() ComPlex    { return ComPlex{Sca: a} }
func (a Vector) ImSpin() ImSpin      { return ImSpin{Vec: a} }
func (a Vector) DirPlex() DirPlex    { return DirPlex{Vec: a} }
func (a BiVector) Spinor() Spinor    { return Spinor{Biv: a} }
func (a BiVector) DirPlex() DirPlex  { return DirPlex{Biv: a} }
func (a TriVector) ImSpin() ImSpin   { return ImSpin{Tri: a} }
func (a TriVector) ComPlex() ComPlex { return ComPlex{Tri: a} }

// Even returns the grade 0 and 2 part of a.
func (a MultiVector) Even() Spinor { return Spinor{a.Sca, a.Biv} }

// OddPart returns the grade 1 and 3 part of a.
func (a MultiVector) OddPart() ImSpin { return ImSpin{a.Vec, a.Tri} }

// Complex returns the grade 0 and 3 part of a.
func (a MultiVector) Complex() ComPlex { return ComPlex{a.Sca, a.Tri} }

// Directed returns the grade 1 and 2 part of a.
func (a MultiVector) Directed() DirPlex { return DirPlex{a.Vec, a.Biv} }

// narrow projects m onto kind k, dropping grades k cannot hold.
func narrow(k Kind, m MultiVector) Element {
	switch k {
	case KindScalar:
		return m.Sca
	case KindVector:
		return m.Vec
	case KindBiVector:
		return m.Biv
	case KindTriVector:
		return m.Tri
	case KindSpinor:
		return m.Even()
	case KindImSpin:
		return m.OddPart()
	case KindComPlex:
		return m.Complex()
	case KindDirPlex:
		return m.Directed()
	}
	return m
}

// Components returns the components of e in grade order.
func Components(e Element) []float64 {
	p := make([]float64, e.Len())
	for i := range p {
		p[i] = e.At(i)
	}
	return p
}
