package g3

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

func TestPut(t *testing.T) {
	tests := []struct {
		e    Element
		f    Format
		want string
	}{
		{Scalar(1.5), Fixed, "     +1.500000"},
		{Vector{1, -2.5, 0}, Fixed, "     +1.000000      -2.500000      +0.000000"},
		{ComPlex{0.25, -1e6}, Fixed, "     +0.250000 -1000000.000000"},
		{TriVector(-3), Enote, "-3.000000000000000e+00"},
		{Scalar(math.NaN()), Fixed, "           nan"},
		{Scalar(math.NaN()), Enote, "                   nan"},
		{Scalar(math.Inf(1)), Fixed, "          +Inf"},
		{TriVector(math.Inf(-1)), Enote, "                  -Inf"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Put(&buf, tt.e, tt.f); err != nil {
			t.Fatal(err)
		}
		if have := buf.String(); have != tt.want {
			t.Errorf("have %q, want %q", have, tt.want)
		}
	}
	if have, want := (Spinor{1, E12}).String(), "     +1.000000      +0.000000      +0.000000      +1.000000"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestPutError(t *testing.T) {
	err := Put(failWriter{}, E1, Fixed)
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("have %v, want %v", err, io.ErrClosedPipe)
	}
	t.Log(err)
}

func TestGet(t *testing.T) {
	want := MultiVector{0.5, Vector{-1.25, 3, 0}, BiVector{1e-3, 2e10, -7}, 0.125}
	for _, f := range []Format{Fixed, Enote} {
		var buf bytes.Buffer
		if err := Put(&buf, want, f); err != nil {
			t.Fatal(err)
		}
		var have MultiVector
		if err := Get(&buf, &have); err != nil {
			t.Fatal(err)
		}
		if have != want {
			t.Errorf("format %v: have %v, want %v", f, have, want)
		}
	}

	// infinities keep a single sign and read back
	inf := Vector{math.Inf(1), 1, math.Inf(-1)}
	for _, f := range []Format{Fixed, Enote} {
		var buf bytes.Buffer
		if err := Put(&buf, inf, f); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "++") {
			t.Errorf("format %v: have %q", f, buf.String())
		}
		var have Vector
		if err := Get(&buf, &have); err != nil || have != inf {
			t.Errorf("format %v: have %v, %v", f, have, err)
		}
	}

	// several entities on one stream
	r := strings.NewReader("1 2 3\n  -4 nan\t6 7")
	var v Vector
	var s Spinor
	if err := Get(r, &v); err != nil || v != (Vector{1, 2, 3}) {
		t.Errorf("have %v, %v", v, err)
	}
	if err := Get(r, &s); err != nil || s.Sca != -4 || !math.IsNaN(s.Biv[0]) || s.Biv[2] != 7 {
		t.Errorf("have %v, %v", s, err)
	}
}

func TestGetError(t *testing.T) {
	for _, in := range []string{"1 2 x", "1 2", ""} {
		v := Vector{9, 9, 9}
		err := Get(strings.NewReader(in), &v)
		if err == nil {
			t.Errorf("%q: have nil error", in)
		}
		if v.Valid() {
			t.Errorf("%q: have %v, want null", in, v)
		}
		t.Log(err)
	}
	var s Scalar
	if err := Get(strings.NewReader(""), &s); !errors.Is(err, io.EOF) {
		t.Errorf("have %v, want %v", err, io.EOF)
	}
}
