package g3

// Backward geometric products, rank(a) > rank(b). Pairs that commute,
// anything against a Scalar, TriVector or ComPlex, alias the forward
// product. The rest use reversion, ab = (b̃ã)~.

func (a Vector) MulSca(b Scalar) Vector { return a.Scale(float64(b)) }

func (a BiVector) MulSca(b Scalar) BiVector { return a.Scale(float64(b)) }

func (a BiVector) MulVec(b Vector) ImSpin {
	return ImSpin{crossProd(b, a), TriVector(dotProd(a, b))}
}

func (a TriVector) MulSca(b Scalar) TriVector { return a.Scale(float64(b)) }
func (a TriVector) MulVec(b Vector) BiVector  { return b.MulTri(a) }
func (a TriVector) MulBiv(b BiVector) Vector  { return b.MulTri(a) }

func (a Spinor) MulSca(b Scalar) Spinor    { return a.Scale(float64(b)) }
func (a Spinor) MulVec(b Vector) ImSpin    { return b.MulSpin(a.Rev()).Rev() }
func (a Spinor) MulBiv(b BiVector) Spinor  { return b.Rev().MulSpin(a.Rev()).Rev() }
func (a Spinor) MulTri(b TriVector) ImSpin { return b.MulSpin(a) }

func (a ImSpin) MulSca(b Scalar) ImSpin    { return a.Scale(float64(b)) }
func (a ImSpin) MulVec(b Vector) Spinor    { return b.MulImsp(a.Rev()).Rev() }
func (a ImSpin) MulBiv(b BiVector) ImSpin  { return b.Rev().MulImsp(a.Rev()).Rev() }
func (a ImSpin) MulTri(b TriVector) Spinor { return b.MulImsp(a) }
func (a ImSpin) MulSpin(b Spinor) ImSpin   { return b.Rev().MulImsp(a.Rev()).Rev() }

func (a ComPlex) MulSca(b Scalar) ComPlex      { return a.Scale(float64(b)) }
func (a ComPlex) MulVec(b Vector) DirPlex      { return b.MulCplx(a) }
func (a ComPlex) MulBiv(b BiVector) DirPlex    { return b.MulCplx(a) }
func (a ComPlex) MulTri(b TriVector) ComPlex   { return b.MulCplx(a) }
func (a ComPlex) MulSpin(b Spinor) MultiVector { return b.MulCplx(a) }
func (a ComPlex) MulImsp(b ImSpin) MultiVector { return b.MulCplx(a) }

func (a DirPlex) MulSca(b Scalar) DirPlex       { return a.Scale(float64(b)) }
func (a DirPlex) MulVec(b Vector) MultiVector   { return b.MulDplx(a.Rev()).Rev() }
func (a DirPlex) MulBiv(b BiVector) MultiVector { return b.Rev().MulDplx(a.Rev()).Rev() }
func (a DirPlex) MulTri(b TriVector) DirPlex    { return b.MulDplx(a) }
func (a DirPlex) MulSpin(b Spinor) MultiVector  { return b.Rev().MulDplx(a.Rev()).Rev() }
func (a DirPlex) MulImsp(b ImSpin) MultiVector  { return b.Rev().MulDplx(a.Rev()).Rev() }
func (a DirPlex) MulCplx(b ComPlex) DirPlex     { return b.MulDplx(a) }

func (a MultiVector) MulSca(b Scalar) MultiVector    { return a.Scale(float64(b)) }
func (a MultiVector) MulVec(b Vector) MultiVector    { return b.MulMV(a.Rev()).Rev() }
func (a MultiVector) MulBiv(b BiVector) MultiVector  { return b.Rev().MulMV(a.Rev()).Rev() }
func (a MultiVector) MulTri(b TriVector) MultiVector { return b.MulMV(a) }
func (a MultiVector) MulSpin(b Spinor) MultiVector   { return b.Rev().MulMV(a.Rev()).Rev() }
func (a MultiVector) MulImsp(b ImSpin) MultiVector   { return b.Rev().MulMV(a.Rev()).Rev() }
func (a MultiVector) MulCplx(b ComPlex) MultiVector  { return b.MulMV(a) }
func (a MultiVector) MulDplx(b DirPlex) MultiVector  { return b.Rev().MulMV(a.Rev()).Rev() }
