// Package g3 provides value types and a closed operator table for the
// geometric algebra of three dimensional euclidean space.
//
// The algebra has eight basis elements:
//
//	grade 0   e0              squares to +1
//	grade 1   e1, e2, e3      square to +1
//	grade 2   e23, e31, e12   square to -1
//	grade 3   e123            squares to -1
//
// Vectors form a right handed frame, e1e2e3 = e123, and bivectors are
// ordered cyclically, e23 = e2e3, e31 = e3e1, e12 = e1e2.
//
// Nine types carry the grade structure. Scalar, Vector, BiVector and
// TriVector are blades; Spinor, ImSpin, ComPlex and DirPlex hold two
// grades each; MultiVector holds all four. Every operator returns the
// smallest of these types that can hold its result.
//
// Nothing in this package returns an error or panics on bad values.
// An invalid value, called null, has at least one NaN component and
// every operation on a null yields a null. Check with Valid.
package g3

import "math"

const (
	// epsilon is the distance from 1.0 to the next float64.
	epsilon = 0x1p-52

	// minNormal is the smallest positive normal float64.
	minNormal = 0x1p-1022
)

// nan is returned by indexed reads that are out of range.
var nan = math.NaN()

// Kind enumerates the entity types in rank order; forward products are
// defined for rank(left) <= rank(right).
type Kind uint8

const (
	KindScalar Kind = iota
	KindVector
	KindBiVector
	KindTriVector
	KindSpinor
	KindImSpin
	KindComPlex
	KindDirPlex
	KindMultiVector

	numKinds = int(KindMultiVector) + 1
)

var kindNames = [...]string{
	KindScalar:      "Scalar",
	KindVector:      "Vector",
	KindBiVector:    "BiVector",
	KindTriVector:   "TriVector",
	KindSpinor:      "Spinor",
	KindImSpin:      "ImSpin",
	KindComPlex:     "ComPlex",
	KindDirPlex:     "DirPlex",
	KindMultiVector: "MultiVector",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Grade bits, combined into the masks returned by Kind.Grades.
const (
	G0 uint8 = 1 << iota
	G1
	G2
	G3
)

var kindGrades = [...]uint8{
	KindScalar:      G0,
	KindVector:      G1,
	KindBiVector:    G2,
	KindTriVector:   G3,
	KindSpinor:      G0 | G2,
	KindImSpin:      G1 | G3,
	KindComPlex:     G0 | G3,
	KindDirPlex:     G1 | G2,
	KindMultiVector: G0 | G1 | G2 | G3,
}

// Grades returns the bitmask of grades k can hold.
func (k Kind) Grades() uint8 {
	if int(k) < len(kindGrades) {
		return kindGrades[k]
	}
	return 0
}

// KindOf returns the smallest kind holding every grade in mask. Grade
// sets without a named container promote to KindMultiVector.
func KindOf(mask uint8) Kind {
	for k := KindScalar; k < KindMultiVector; k++ {
		if kindGrades[k] == mask&0xf {
			return k
		}
	}
	return KindMultiVector
}

// Element is implemented by all nine entity types.
type Element interface {
	// Kind reports the concrete type.
	Kind() Kind

	// Len is the number of stored components.
	Len() int

	// At returns the i'th component in grade order, scalar, vector,
	// bivector then trivector. Out of range reads return NaN.
	At(i int) float64

	// MV widens to a MultiVector, zero filling missing grades.
	MV() MultiVector

	// Valid reports whether every component is zero or a normal float.
	Valid() bool
}

// Setter is implemented by pointers to entity types.
type Setter interface {
	Element

	// Set stores v at component i; out of range writes are ignored.
	Set(i int, v float64)
}

// Basis elements.
const (
	E0   Scalar    = 1
	E123 TriVector = 1
)

var (
	E1 = Vector{1, 0, 0}
	E2 = Vector{0, 1, 0}
	E3 = Vector{0, 0, 1}

	E23 = BiVector{1, 0, 0}
	E31 = BiVector{0, 1, 0}
	E12 = BiVector{0, 0, 1}
)

func dotProd(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func crossProd(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func add3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale3(s float64, a [3]float64) [3]float64 {
	return [3]float64{s * a[0], s * a[1], s * a[2]}
}

func neg3(a [3]float64) [3]float64 {
	return [3]float64{-a[0], -a[1], -a[2]}
}

// valid reports whether x is exactly zero or normal.
func valid(x float64) bool {
	if x == 0 {
		return true
	}
	x = math.Abs(x)
	return x >= minNormal && x <= math.MaxFloat64
}

func valid3(a [3]float64) bool {
	return valid(a[0]) && valid(a[1]) && valid(a[2])
}

var null3 = [3]float64{nan, nan, nan}
