package g3

// entity is satisfied by the nine value types.
type entity[T any] interface {
	Element
	null() T
	one() T
}

// Null returns a T with every component NaN.
func Null[T entity[T]]() T {
	var x T
	return x.null()
}

// Zero returns the additive identity of T.
func Zero[T entity[T]]() T {
	var x T
	return x
}

// One returns the multiplicative identity of T, a unit scalar part with
// other grades zero. Types without a scalar grade have no identity and
// return zero.
func One[T entity[T]]() T {
	var x T
	return x.one()
}

// IsValid reports whether every component of e is zero or normal.
func IsValid(e Element) bool { return e != nil && e.Valid() }

func (Scalar) null() Scalar           { return Scalar(nan) }
func (Vector) null() Vector           { return null3 }
func (BiVector) null() BiVector       { return null3 }
func (TriVector) null() TriVector     { return TriVector(nan) }
func (Spinor) null() Spinor           { return Spinor{Scalar(nan), null3} }
func (ImSpin) null() ImSpin           { return ImSpin{null3, TriVector(nan)} }
func (ComPlex) null() ComPlex         { return ComPlex{Scalar(nan), TriVector(nan)} }
func (DirPlex) null() DirPlex         { return DirPlex{null3, null3} }
func (MultiVector) null() MultiVector { return MultiVector{Scalar(nan), null3, null3, TriVector(nan)} }

func (Scalar) one() Scalar           { return 1 }
func (Vector) one() Vector           { return Vector{} }
func (BiVector) one() BiVector       { return BiVector{} }
func (TriVector) one() TriVector     { return 0 }
func (Spinor) one() Spinor           { return Spinor{Sca: 1} }
func (ImSpin) one() ImSpin           { return ImSpin{} }
func (ComPlex) one() ComPlex         { return ComPlex{Sca: 1} }
func (DirPlex) one() DirPlex         { return DirPlex{} }
func (MultiVector) one() MultiVector { return MultiVector{Sca: 1} }

func (a Scalar) Valid() bool    { return valid(float64(a)) }
func (a Vector) Valid() bool    { return valid3(a) }
func (a BiVector) Valid() bool  { return valid3(a) }
func (a TriVector) Valid() bool { return valid(float64(a)) }
func (a Spinor) Valid() bool    { return a.Sca.Valid() && a.Biv.Valid() }
func (a ImSpin) Valid() bool    { return a.Vec.Valid() && a.Tri.Valid() }
func (a ComPlex) Valid() bool   { return a.Sca.Valid() && a.Tri.Valid() }
func (a DirPlex) Valid() bool   { return a.Vec.Valid() && a.Biv.Valid() }

func (a MultiVector) Valid() bool {
	return a.Sca.Valid() && a.Vec.Valid() && a.Biv.Valid() && a.Tri.Valid()
}
