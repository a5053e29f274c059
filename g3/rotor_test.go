package g3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/num/quat"
)

func TestRotate(t *testing.T) {
	R := Rotor(math.Pi/2, E12)
	t.Logf("   R: %v", R)
	t.Logf(" |R|: %v", R.Mag())
	t.Logf("  R~: %v", R.Rev())
	t.Logf(" RR~: %v", R.MulSpin(R.Rev()))

	tests := []struct {
		name       string
		have, want Vector
	}{
		{"e1", R.Rotate(E1), E2},
		{"e2", R.Rotate(E2), E1.Neg()},
		{"axis", R.Rotate(E3), E3},
		{"e23 plane", Rotor(math.Pi/2, E23).Rotate(E2), E3},
		{"half turn", Rotor(math.Pi, E31).Rotate(Vector{1, 2, 3}), Vector{-1, 2, -3}},
		{"scaled plane", Rotor(math.Pi/2, E12.Scale(7)).Rotate(E1), E2},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.have, approx); diff != "" {
			t.Errorf("%s (-want +have):\n%s", tt.name, diff)
		}
	}

	// a rotor need not be unit
	if have := R.Scale(3).Rotate(E1); !Close(have, E2, 1e-15) {
		t.Errorf("have %v", have)
	}
}

func TestRotorCompose(t *testing.T) {
	f := func(p Element, a, b float64) bool {
		plane := biv(p)
		return Close(Rotor(a, plane).MulSpin(Rotor(b, plane)), Rotor(a+b, plane), 1e-14)
	}
	check(t, f, only(KindBiVector), anyReal, anyReal)

	g := func(p, v Element, a float64) bool {
		w := Rotor(a, biv(p)).Rotate(vec(v))
		return NearlyEqualRel(w.Mag(), vec(v).Mag(), 1e-14)
	}
	check(t, g, only(KindBiVector), only(KindVector), anyReal)
}

func TestReflect(t *testing.T) {
	if have, want := Reflect(Vector{1, 2, 3}, E1), (Vector{-1, 2, 3}); !Close(have, want, 1e-15) {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := Reflect(Vector{1, 2, 3}, E3.Scale(-4)), (Vector{1, 2, -3}); !Close(have, want, 1e-15) {
		t.Errorf("have %v, want %v", have, want)
	}

	// two reflections make a rotation by twice the angle between normals
	n, m := E1, Vector{1, 1, 0}.Direction()
	v := Vector{0.3, -2, 1}
	if have, want := Reflect(Reflect(v, n), m), Rotor(math.Pi/2, E12).Rotate(v); !Close(have, want, 1e-14) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestMat3(t *testing.T) {
	want := f64.Mat3{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	have := Rotor(math.Pi/2, E12).Mat3()
	if diff := cmp.Diff(want, have, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("(-want +have):\n%s", diff)
	}

	R := Rotor(0.7, BiVector{1, -2, 0.5})
	M := R.Mat3()
	v := Vector{0.3, -2, 1}
	var mv Vector
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mv[i] += M[3*i+j] * v[j]
		}
	}
	if diff := cmp.Diff(R.Rotate(v), mv, approx); diff != "" {
		t.Errorf("(-rotate +mat3):\n%s", diff)
	}

	if VectorOf(v.Vec3()) != v || v.Vec3() != (f64.Vec3{0.3, -2, 1}) {
		t.Errorf("vec3 round trip: %v", v.Vec3())
	}
}

func TestQuat(t *testing.T) {
	i, j, k := quat.Number{Imag: 1}, quat.Number{Jmag: 1}, quat.Number{Kmag: 1}
	if have, want := SpinorOfQuat(i).MulSpin(SpinorOfQuat(j)), SpinorOfQuat(k); have != want {
		t.Errorf("ij: have %v, want %v", have, want)
	}
	if have, want := SpinorOfQuat(j).MulSpin(SpinorOfQuat(k)), SpinorOfQuat(i); have != want {
		t.Errorf("jk: have %v, want %v", have, want)
	}

	f := func(p, v Element, a float64) bool {
		R := Rotor(a, biv(p))
		q := R.Quat()
		if SpinorOfQuat(q) != R {
			return false
		}
		w := vec(v)
		qv := quat.Mul(quat.Mul(q, quat.Number{Imag: w[0], Jmag: w[1], Kmag: w[2]}), quat.Conj(q))
		return Close(R.Rotate(w), Vector{qv.Imag, qv.Jmag, qv.Kmag}, 1e-14)
	}
	check(t, f, only(KindBiVector), only(KindVector), anyReal)
}

func TestDotWedge(t *testing.T) {
	a, b := Vector{2, 3, 5}, Vector{7, 11, 13}
	if Dot(a, b) != 112 {
		t.Errorf("dot: have %v", Dot(a, b))
	}
	if Wedge(a, b) != (BiVector{-16, 9, 1}) {
		t.Errorf("wedge: have %v", Wedge(a, b))
	}
	if (Spinor{Scalar(Dot(a, b)), Wedge(a, b)}) != a.MulVec(b) {
		t.Error("ab != a·b + a^b")
	}
	if Wedge(b, a) != Wedge(a, b).Neg() {
		t.Error("wedge does not anticommute")
	}
}
