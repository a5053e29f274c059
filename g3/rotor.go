package g3

import "golang.org/x/image/math/f64"

// Rotor returns exp(-angle/2·p̂), the spinor that turns vectors in the
// plane p by angle, from e1 toward e2 for p = e12.
func Rotor(angle float64, plane BiVector) Spinor {
	return plane.Direction().Scale(-angle / 2).Exp()
}

// Rotate returns a·v·a⁻¹; for a unit rotor a that is a pure rotation.
func (a Spinor) Rotate(v Vector) Vector {
	return a.MulVec(v).MulSpin(a.Inverse()).Vec
}

// Reflect returns the mirror image of v in the plane with normal n,
// -n·v·n⁻¹.
func Reflect(v, n Vector) Vector {
	return n.Neg().MulVec(v).MulVec(n.Inverse()).Vec
}

// Mat3 returns the rotation of a as a row major matrix acting on column
// vectors.
func (a Spinor) Mat3() f64.Mat3 {
	x, y, z := a.Rotate(E1), a.Rotate(E2), a.Rotate(E3)
	return f64.Mat3{
		x[0], y[0], z[0],
		x[1], y[1], z[1],
		x[2], y[2], z[2],
	}
}

// Vec3 returns a as an f64.Vec3.
func (a Vector) Vec3() f64.Vec3 { return f64.Vec3(a) }

// VectorOf returns v as a Vector.
func VectorOf(v f64.Vec3) Vector { return Vector(v) }
