package g3

// The involutions flip signs by grade:
//
//	Neg    0 1 2 3
//	Rev        2 3   reverses the order of vector factors
//	Odd      1   3   inverts the frame
//	Conj     1 2     dirverse, the Clifford conjugate
//
// Each composes from the other two, Rev = Odd∘Conj and so on, and all
// of them commute. Dual multiplies on the right by e123.

func (a Scalar) Neg() Scalar     { return -a }
func (a Scalar) Rev() Scalar     { return a }
func (a Scalar) Odd() Scalar     { return a }
func (a Scalar) Conj() Scalar    { return a }
func (a Scalar) Dual() TriVector { return TriVector(a) }

func (a Vector) Neg() Vector    { return neg3(a) }
func (a Vector) Rev() Vector    { return a }
func (a Vector) Odd() Vector    { return neg3(a) }
func (a Vector) Conj() Vector   { return neg3(a) }
func (a Vector) Dual() BiVector { return BiVector(a) }

func (a BiVector) Neg() BiVector  { return neg3(a) }
func (a BiVector) Rev() BiVector  { return neg3(a) }
func (a BiVector) Odd() BiVector  { return a }
func (a BiVector) Conj() BiVector { return neg3(a) }
func (a BiVector) Dual() Vector   { return neg3(a) }

func (a TriVector) Neg() TriVector  { return -a }
func (a TriVector) Rev() TriVector  { return -a }
func (a TriVector) Odd() TriVector  { return -a }
func (a TriVector) Conj() TriVector { return a }
func (a TriVector) Dual() Scalar    { return Scalar(-a) }

func (a Spinor) Neg() Spinor  { return Spinor{-a.Sca, a.Biv.Neg()} }
func (a Spinor) Rev() Spinor  { return Spinor{a.Sca, a.Biv.Neg()} }
func (a Spinor) Odd() Spinor  { return a }
func (a Spinor) Conj() Spinor { return Spinor{a.Sca, a.Biv.Neg()} }
func (a Spinor) Dual() ImSpin { return ImSpin{a.Biv.Dual(), a.Sca.Dual()} }

func (a ImSpin) Neg() ImSpin  { return ImSpin{a.Vec.Neg(), -a.Tri} }
func (a ImSpin) Rev() ImSpin  { return ImSpin{a.Vec, -a.Tri} }
func (a ImSpin) Odd() ImSpin  { return ImSpin{a.Vec.Neg(), -a.Tri} }
func (a ImSpin) Conj() ImSpin { return ImSpin{a.Vec.Neg(), a.Tri} }
func (a ImSpin) Dual() Spinor { return Spinor{a.Tri.Dual(), a.Vec.Dual()} }

func (a ComPlex) Neg() ComPlex  { return ComPlex{-a.Sca, -a.Tri} }
func (a ComPlex) Rev() ComPlex  { return ComPlex{a.Sca, -a.Tri} }
func (a ComPlex) Odd() ComPlex  { return ComPlex{a.Sca, -a.Tri} }
func (a ComPlex) Conj() ComPlex { return a }
func (a ComPlex) Dual() ComPlex { return ComPlex{a.Tri.Dual(), a.Sca.Dual()} }

func (a DirPlex) Neg() DirPlex  { return DirPlex{a.Vec.Neg(), a.Biv.Neg()} }
func (a DirPlex) Rev() DirPlex  { return DirPlex{a.Vec, a.Biv.Neg()} }
func (a DirPlex) Odd() DirPlex  { return DirPlex{a.Vec.Neg(), a.Biv} }
func (a DirPlex) Conj() DirPlex { return DirPlex{a.Vec.Neg(), a.Biv.Neg()} }
func (a DirPlex) Dual() DirPlex { return DirPlex{a.Biv.Dual(), a.Vec.Dual()} }

func (a MultiVector) Neg() MultiVector {
	return MultiVector{-a.Sca, a.Vec.Neg(), a.Biv.Neg(), -a.Tri}
}

func (a MultiVector) Rev() MultiVector {
	return MultiVector{a.Sca, a.Vec, a.Biv.Neg(), -a.Tri}
}

func (a MultiVector) Odd() MultiVector {
	return MultiVector{a.Sca, a.Vec.Neg(), a.Biv, -a.Tri}
}

func (a MultiVector) Conj() MultiVector {
	return MultiVector{a.Sca, a.Vec.Neg(), a.Biv.Neg(), a.Tri}
}

func (a MultiVector) Dual() MultiVector {
	return MultiVector{a.Tri.Dual(), a.Biv.Dual(), a.Vec.Dual(), a.Sca.Dual()}
}
