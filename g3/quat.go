package g3

import "gonum.org/v1/gonum/num/quat"

// Quaternion units map to bivectors as i = -e23, j = -e31, k = -e12,
// so that ij = k and a rotor turns vectors the same way the quaternion
// does under q·v·q*.

// Quat returns a as a quaternion.
func (a Spinor) Quat() quat.Number {
	return quat.Number{
		Real: float64(a.Sca),
		Imag: -a.Biv[0],
		Jmag: -a.Biv[1],
		Kmag: -a.Biv[2],
	}
}

// SpinorOfQuat returns q as a Spinor.
func SpinorOfQuat(q quat.Number) Spinor {
	return Spinor{Scalar(q.Real), BiVector{-q.Imag, -q.Jmag, -q.Kmag}}
}
