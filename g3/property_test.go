package g3

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdditiveGroup(t *testing.T) {
	commutes := func(a, b Element) bool {
		return cmp.Equal(Add(a, b), Add(b, a), approx)
	}
	check(t, commutes, anyKind, anyKind)

	associates := func(a, b, c Element) bool {
		return near(Add(Add(a, b), c), Add(a, Add(b, c)))
	}
	check(t, associates, anyKind, anyKind, anyKind)

	identity := func(a Element) bool {
		z := narrow(a.Kind(), MultiVector{})
		return cmp.Equal(a, Add(a, z), approx) && Sub(a, a).MV() == MultiVector{}
	}
	check(t, identity, anyKind)

	anticommutes := func(a, b Element) bool {
		return cmp.Equal(Sub(a, b), Neg(Sub(b, a)), approx)
	}
	check(t, anticommutes, anyKind, anyKind)
}

func TestAddKinds(t *testing.T) {
	tests := []struct {
		a, b Element
		want Kind
	}{
		{E1, E2, KindVector},
		{E0, E12, KindSpinor},
		{E0, E123, KindComPlex},
		{E1, E12, KindDirPlex},
		{E1, E123, KindImSpin},
		{E0, Spinor{}, KindSpinor},
		{E1, ImSpin{}, KindImSpin},
		{E0, E1, KindMultiVector},
		{E12, E123, KindMultiVector},
		{ComPlex{}, DirPlex{}, KindMultiVector},
		{MultiVector{}, E0, KindMultiVector},
	}
	for _, tt := range tests {
		for _, f := range []func(a, b Element) Element{Add, Sub} {
			if have := f(tt.a, tt.b).Kind(); have != tt.want {
				t.Errorf("%s, %s: have %s, want %s", tt.a.Kind(), tt.b.Kind(), have, tt.want)
			}
			if have := f(tt.b, tt.a).Kind(); have != tt.want {
				t.Errorf("%s, %s: have %s, want %s", tt.b.Kind(), tt.a.Kind(), have, tt.want)
			}
		}
	}
	if have := Sub(E1, E12); have != (DirPlex{E1, E12.Neg()}) {
		t.Errorf("e1-e12: have %v", have)
	}
}

func TestScaleDistributes(t *testing.T) {
	f := func(a, b Element, s float64) bool {
		return cmp.Equal(Scale(Add(a, b), s), Add(Scale(a, s), Scale(b, s)), approx)
	}
	check(t, f, anyKind, anyKind, anyReal)

	g := func(a Element, s, u float64) bool {
		return cmp.Equal(Scale(a, s+u), Add(Scale(a, s), Scale(a, u)), approx)
	}
	check(t, g, anyKind, anyReal, anyReal)
}

func TestMulAssociates(t *testing.T) {
	f := func(a, b, c Element) bool {
		return near(Mul(Mul(a, b), c), Mul(a, Mul(b, c)))
	}
	check(t, f, anyKind, anyKind, anyKind)

	// association patterns over five vectors
	r := rand.New(rand.NewSource(5))
	for n := 0; n < 64; n++ {
		var v [5]Element
		for i := range v {
			v[i] = random(r, KindVector)
		}
		want := Mul(Mul(Mul(Mul(v[0], v[1]), v[2]), v[3]), v[4])
		patterns := []Element{
			Mul(v[0], Mul(v[1], Mul(v[2], Mul(v[3], v[4])))),
			Mul(Mul(v[0], v[1]), Mul(Mul(v[2], v[3]), v[4])),
			Mul(Mul(v[0], Mul(v[1], v[2])), Mul(v[3], v[4])),
			Mul(v[0], Mul(Mul(v[1], v[2]), Mul(v[3], v[4]))),
			Mul(Mul(Mul(v[0], v[1]), Mul(v[2], v[3])), v[4]),
		}
		for i, p := range patterns {
			if diff := cmp.Diff(want, p, approx); diff != "" {
				t.Fatalf("pattern %v (-want +have):\n%s", i, diff)
			}
		}
	}
}

func TestMulDistributes(t *testing.T) {
	left := func(a, b, c Element) bool {
		return near(Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c)))
	}
	check(t, left, anyKind, anyKind, anyKind)

	right := func(a, b, c Element) bool {
		return near(Mul(Add(a, b), c), Add(Mul(a, c), Mul(b, c)))
	}
	check(t, right, anyKind, anyKind, anyKind)
}

func TestCentral(t *testing.T) {
	f := func(a, b Element) bool {
		if !central(a.Kind()) {
			return true
		}
		return cmp.Equal(Mul(a, b), Mul(b, a), approx)
	}
	check(t, f, anyKind, anyKind)
}

func TestInverseProperty(t *testing.T) {
	f := func(a Element) bool {
		inv := Inverse(a)
		if inv.Kind() != a.Kind() {
			return false
		}
		if a.MV().Amplitude().Mag() < 0.1 {
			// too close to singular for a fixed tolerance
			return true
		}
		one := MultiVector{Sca: 1}
		return Close(Mul(a, inv), one, 1e-10) && Close(Mul(inv, a), one, 1e-10)
	}
	check(t, f, anyKind)
}

func TestNormProperty(t *testing.T) {
	f := func(a Element, s float64) bool {
		sq := float64(Mul(a, Rev(a)).MV().Sca)
		return NearlyEqualRel(MagSq(a), sq, 1e-12) &&
			NearlyEqualRel(Scale(a, s).MV().Mag(), math.Abs(s)*a.MV().Mag(), 1e-12)
	}
	check(t, f, anyKind, anyReal)
}
