package g3

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Format selects the text encoding used by Put.
type Format uint8

const (
	// Fixed writes components as %+14.6f.
	Fixed Format = iota

	// Enote writes components as %+22.15e.
	Enote
)

func (f Format) layout() (verb byte, width, prec int) {
	if f == Enote {
		return 'e', 22, 15
	}
	return 'f', 14, 6
}

// appendComponent writes x in fixed width with a leading sign. NaN is
// written as nan so that it reads back with Get.
func appendComponent(b []byte, x float64, f Format) []byte {
	verb, width, prec := f.layout()
	var s []byte
	switch {
	case math.IsNaN(x):
		s = []byte("nan")
	case math.IsInf(x, 0):
		// already signed
		s = strconv.AppendFloat(s, x, verb, prec, 64)
	default:
		if !math.Signbit(x) {
			s = append(s, '+')
		}
		s = strconv.AppendFloat(s, x, verb, prec, 64)
	}
	for n := len(s); n < width; n++ {
		b = append(b, ' ')
	}
	return append(b, s...)
}

// AppendText appends the components of e to b in grade order separated
// by single spaces.
func AppendText(b []byte, e Element, f Format) []byte {
	for i := 0; i < e.Len(); i++ {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendComponent(b, e.At(i), f)
	}
	return b
}

// Put writes the text form of e to w.
func Put(w io.Writer, e Element, f Format) error {
	if _, err := w.Write(AppendText(nil, e, f)); err != nil {
		return fmt.Errorf("g3: writing %s: %w", e.Kind(), err)
	}
	return nil
}

// Get reads e.Len() whitespace separated components from r into e. On
// failure every component of e is set to NaN and the error is returned.
// The token nan reads back as NaN without error.
func Get(r io.Reader, e Setter) error {
	for i := 0; i < e.Len(); i++ {
		var x float64
		if _, err := fmt.Fscan(r, &x); err != nil {
			for j := 0; j < e.Len(); j++ {
				e.Set(j, nan)
			}
			return fmt.Errorf("g3: reading %s component %d: %w", e.Kind(), i, err)
		}
		e.Set(i, x)
	}
	return nil
}

func text(e Element) string { return string(AppendText(nil, e, Fixed)) }

func (a Scalar) String() string      { return text(a) }
func (a Vector) String() string      { return text(a) }
func (a BiVector) String() string    { return text(a) }
func (a TriVector) String() string   { return text(a) }
func (a Spinor) String() string      { return text(a) }
func (a ImSpin) String() string      { return text(a) }
func (a ComPlex) String() string     { return text(a) }
func (a DirPlex) String() string     { return text(a) }
func (a MultiVector) String() string { return text(a) }
