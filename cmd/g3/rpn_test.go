package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"dasa.cc/ga/g3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type flat struct {
	Kind g3.Kind
	C    []float64
}

var approx = cmp.Options{
	cmp.Transformer("flat", func(e g3.Element) flat { return flat{e.Kind(), g3.Components(e)} }),
	cmpopts.EquateApprox(1e-12, 1e-12),
	cmpopts.EquateNaNs(),
}

func TestEval(t *testing.T) {
	tests := []struct {
		line string
		want []g3.Element
	}{
		{"1 2 +", []g3.Element{g3.Scalar(3)}},
		{"1 2 -", []g3.Element{g3.Scalar(-1)}},
		{"e1 e2 *", []g3.Element{g3.Spinor{Biv: g3.E12}}},
		{"e12 vec 1 2 3 *", []g3.Element{g3.ImSpin{Vec: g3.Vector{2, -1, 0}, Tri: 3}}},
		{"vec 1 2 3 vec 1 2 3 /", []g3.Element{g3.Spinor{Sca: 1}}},
		{"spin 1 0 0 1 neg", []g3.Element{g3.Spinor{Sca: -1, Biv: g3.BiVector{0, 0, -1}}}},
		{"spin 1 0 0 1 rev", []g3.Element{g3.Spinor{Sca: 1, Biv: g3.BiVector{0, 0, -1}}}},
		{"e1 dual", []g3.Element{g3.E23}},
		{"vec 3 0 4 mag", []g3.Element{g3.Scalar(5)}},
		{"vec 3 0 4 amp", []g3.Element{g3.ComPlex{Sca: 5}}},
		{"tri -5 amp", []g3.Element{g3.ComPlex{Sca: 5}}},
		{"cplx 0 -5 amp", []g3.Element{g3.ComPlex{Tri: 5}}},
		{"vec 3 0 4 unit", []g3.Element{g3.Vector{0.6, 0, 0.8}}},
		{"vec 1e-310 0 0 unit", []g3.Element{g3.Null[g3.Vector]()}},
		{"0 unit", []g3.Element{g3.Null[g3.Scalar]()}},
		{"e123 exp", []g3.Element{g3.ComPlex{Sca: g3.Scalar(math.Cos(1)), Tri: g3.TriVector(math.Sin(1))}}},
		{"0 exp", []g3.Element{g3.Scalar(1)}},
		{"e12 exp log", []g3.Element{g3.Spinor{Biv: g3.E12}}},
		{"-1 sqrt", []g3.Element{g3.Spinor{Biv: g3.E23}}},
		{"cplx -4 0 sqrt", []g3.Element{g3.ComPlex{Tri: 2}}},
		{"1 2 swap", []g3.Element{g3.Scalar(2), g3.Scalar(1)}},
		{"1 dup", []g3.Element{g3.Scalar(1), g3.Scalar(1)}},
		{"1 2 drop", []g3.Element{g3.Scalar(1)}},
		{"1 2 clear", nil},
		{"tri 2 e1 +", []g3.Element{g3.ImSpin{Vec: g3.E1, Tri: 2}}},
	}
	for _, tt := range tests {
		m := &machine{}
		if err := m.eval(tt.line); err != nil {
			t.Errorf("%q: %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, m.stack, approx, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q (-want +have):\n%s", tt.line, diff)
		}
	}
}

func TestEvalError(t *testing.T) {
	tests := []struct {
		line string
		want string
		size int
	}{
		{"+", "underflow", 0},
		{"1 *", "underflow", 1},
		{"swap", "underflow", 0},
		{"vec 1 2", "want 3 components", 0},
		{"1 vec 1 x 3", "vec:", 1},
		{"vec 1 2 3 log", "unsupported Vector", 1},
		{"e1 sqrt", "unsupported Vector", 1},
		{"1 dupe", `did you mean "dup"`, 1},
		{"zzz", `unknown word "zzz"`, 0},
	}
	for _, tt := range tests {
		m := &machine{}
		err := m.eval(tt.line)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: have %v, want %q", tt.line, err, tt.want)
		}
		if len(m.stack) != tt.size {
			t.Errorf("%q: stack has %v elements, want %v", tt.line, len(m.stack), tt.size)
		}
	}

	m := &machine{}
	if err := m.eval("drop"); !errors.Is(err, errUnderflow) {
		t.Errorf("drop: have %v", err)
	}
}

func TestPrint(t *testing.T) {
	m := &machine{}
	if err := m.eval("1 e12"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.print(&buf); err != nil {
		t.Fatal(err)
	}
	want := " 1 Scalar      " + "     +1.000000\n" +
		" 0 BiVector    " + "     +0.000000      +0.000000      +1.000000\n"
	if have := buf.String(); have != want {
		t.Errorf("have\n%s\nwant\n%s", have, want)
	}

	buf.Reset()
	m.format = g3.Enote
	m.stack = m.stack[:1]
	if err := m.print(&buf); err != nil {
		t.Fatal(err)
	}
	if have, want := buf.String(), " 0 Scalar      "+"+1.000000000000000e+00\n"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestWords(t *testing.T) {
	m := &machine{}
	for _, w := range words() {
		if _, ok := constructors[w]; ok {
			continue
		}
		m.stack = []g3.Element{g3.Spinor{Sca: 1, Biv: g3.E12}, g3.Spinor{Sca: 2}}
		if err := m.eval(w); err != nil {
			t.Errorf("%s: %v", w, err)
		}
	}
}
