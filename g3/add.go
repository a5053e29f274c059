package g3

func (a Scalar) Add(b Scalar) Scalar    { return a + b }
func (a Scalar) Sub(b Scalar) Scalar    { return a - b }
func (a Scalar) Scale(f float64) Scalar { return a * Scalar(f) }

func (a Vector) Add(b Vector) Vector    { return add3(a, b) }
func (a Vector) Sub(b Vector) Vector    { return sub3(a, b) }
func (a Vector) Scale(f float64) Vector { return scale3(f, a) }

func (a BiVector) Add(b BiVector) BiVector  { return add3(a, b) }
func (a BiVector) Sub(b BiVector) BiVector  { return sub3(a, b) }
func (a BiVector) Scale(f float64) BiVector { return scale3(f, a) }

func (a TriVector) Add(b TriVector) TriVector { return a + b }
func (a TriVector) Sub(b TriVector) TriVector { return a - b }
func (a TriVector) Scale(f float64) TriVector { return a * TriVector(f) }

func (a Spinor) Add(b Spinor) Spinor { return Spinor{a.Sca + b.Sca, a.Biv.Add(b.Biv)} }
func (a Spinor) Sub(b Spinor) Spinor { return Spinor{a.Sca - b.Sca, a.Biv.Sub(b.Biv)} }

func (a Spinor) Scale(f float64) Spinor {
	return Spinor{a.Sca.Scale(f), a.Biv.Scale(f)}
}

func (a ImSpin) Add(b ImSpin) ImSpin { return ImSpin{a.Vec.Add(b.Vec), a.Tri + b.Tri} }
func (a ImSpin) Sub(b ImSpin) ImSpin { return ImSpin{a.Vec.Sub(b.Vec), a.Tri - b.Tri} }

func (a ImSpin) Scale(f float64) ImSpin {
	return ImSpin{a.Vec.Scale(f), a.Tri.Scale(f)}
}

func (a ComPlex) Add(b ComPlex) ComPlex { return ComPlex{a.Sca + b.Sca, a.Tri + b.Tri} }
func (a ComPlex) Sub(b ComPlex) ComPlex { return ComPlex{a.Sca - b.Sca, a.Tri - b.Tri} }

func (a ComPlex) Scale(f float64) ComPlex {
	return ComPlex{a.Sca.Scale(f), a.Tri.Scale(f)}
}

func (a DirPlex) Add(b DirPlex) DirPlex { return DirPlex{a.Vec.Add(b.Vec), a.Biv.Add(b.Biv)} }
func (a DirPlex) Sub(b DirPlex) DirPlex { return DirPlex{a.Vec.Sub(b.Vec), a.Biv.Sub(b.Biv)} }

func (a DirPlex) Scale(f float64) DirPlex {
	return DirPlex{a.Vec.Scale(f), a.Biv.Scale(f)}
}

func (a MultiVector) Add(b MultiVector) MultiVector {
	return MultiVector{a.Sca + b.Sca, a.Vec.Add(b.Vec), a.Biv.Add(b.Biv), a.Tri + b.Tri}
}

func (a MultiVector) Sub(b MultiVector) MultiVector {
	return MultiVector{a.Sca - b.Sca, a.Vec.Sub(b.Vec), a.Biv.Sub(b.Biv), a.Tri - b.Tri}
}

func (a MultiVector) Scale(f float64) MultiVector {
	return MultiVector{a.Sca.Scale(f), a.Vec.Scale(f), a.Biv.Scale(f), a.Tri.Scale(f)}
}

// Dot returns the inner product of a and b, the scalar part of ab.
func Dot(a, b Vector) float64 { return dotProd(a, b) }

// Wedge returns the outer product a∧b, the bivector part of ab.
func Wedge(a, b Vector) BiVector { return crossProd(a, b) }
