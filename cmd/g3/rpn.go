package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"dasa.cc/ga/g3"
)

var errUnderflow = errors.New("stack underflow")

// machine is an RPN stack of g3 elements.
type machine struct {
	stack  []g3.Element
	format g3.Format
}

// constructors push an entity read from the tokens that follow.
var constructors = map[string]func() g3.Setter{
	"vec":  func() g3.Setter { return new(g3.Vector) },
	"biv":  func() g3.Setter { return new(g3.BiVector) },
	"tri":  func() g3.Setter { return new(g3.TriVector) },
	"spin": func() g3.Setter { return new(g3.Spinor) },
	"imsp": func() g3.Setter { return new(g3.ImSpin) },
	"cplx": func() g3.Setter { return new(g3.ComPlex) },
	"dplx": func() g3.Setter { return new(g3.DirPlex) },
	"mv":   func() g3.Setter { return new(g3.MultiVector) },
}

var basis = map[string]g3.Element{
	"e0":   g3.E0,
	"e1":   g3.E1,
	"e2":   g3.E2,
	"e3":   g3.E3,
	"e23":  g3.E23,
	"e31":  g3.E31,
	"e12":  g3.E12,
	"e123": g3.E123,
}

var binary = map[string]func(a, b g3.Element) (g3.Element, error){
	"+": func(a, b g3.Element) (g3.Element, error) { return g3.Add(a, b), nil },
	"-": func(a, b g3.Element) (g3.Element, error) { return g3.Sub(a, b), nil },
	"*": func(a, b g3.Element) (g3.Element, error) { return g3.Mul(a, b), nil },
	"/": func(a, b g3.Element) (g3.Element, error) { return g3.Mul(a, g3.Inverse(b)), nil },
}

var unary = map[string]func(e g3.Element) (g3.Element, error){
	"neg":  wrap(g3.Neg),
	"rev":  wrap(g3.Rev),
	"odd":  wrap(g3.Odd),
	"conj": wrap(g3.Conj),
	"dual": wrap(g3.Dual),
	"inv":  wrap(g3.Inverse),
	"mag":  func(e g3.Element) (g3.Element, error) { return g3.Scalar(math.Sqrt(g3.MagSq(e))), nil },
	"amp":  func(e g3.Element) (g3.Element, error) { return g3.Amplitude(e), nil },
	"exp":  expOf,
	"log":  logOf,
	"sqrt": sqrtOf,
	"unit": wrap(g3.Direction),
}

func wrap(f func(g3.Element) g3.Element) func(g3.Element) (g3.Element, error) {
	return func(e g3.Element) (g3.Element, error) { return f(e), nil }
}

func expOf(e g3.Element) (g3.Element, error) {
	switch x := e.(type) {
	case g3.Scalar:
		return g3.Scalar(math.Exp(float64(x))), nil
	case g3.BiVector:
		return x.Exp(), nil
	case g3.TriVector:
		return x.Exp(), nil
	case g3.Spinor:
		return x.Exp(), nil
	case g3.ComPlex:
		return x.Exp(), nil
	}
	return e.MV().Exp(), nil
}

// even returns e as a Spinor when its grades allow.
func even(e g3.Element) (g3.Spinor, bool) {
	if e.Kind().Grades()&^(g3.G0|g3.G2) != 0 {
		return g3.Spinor{}, false
	}
	return e.MV().Even(), true
}

func logOf(e g3.Element) (g3.Element, error) {
	if x, ok := e.(g3.ComPlex); ok {
		return x.Log(), nil
	}
	if s, ok := even(e); ok {
		return s.Log(), nil
	}
	return nil, fmt.Errorf("log: unsupported %s", e.Kind())
}

func sqrtOf(e g3.Element) (g3.Element, error) {
	if x, ok := e.(g3.ComPlex); ok {
		return x.Sqrt(), nil
	}
	if s, ok := even(e); ok {
		return s.Sqrt(), nil
	}
	return nil, fmt.Errorf("sqrt: unsupported %s", e.Kind())
}

var stackOps = map[string]func(m *machine) error{
	"dup": func(m *machine) error {
		if len(m.stack) < 1 {
			return errUnderflow
		}
		m.push(m.stack[len(m.stack)-1])
		return nil
	},
	"drop": func(m *machine) error {
		_, err := m.pop(1)
		return err
	},
	"swap": func(m *machine) error {
		p, err := m.pop(2)
		if err != nil {
			return err
		}
		m.push(p[1], p[0])
		return nil
	},
	"clear": func(m *machine) error {
		m.stack = m.stack[:0]
		return nil
	},
}

// words returns every word eval accepts, sorted.
func words() []string {
	var p []string
	for k := range constructors {
		p = append(p, k)
	}
	for k := range basis {
		p = append(p, k)
	}
	for k := range binary {
		p = append(p, k)
	}
	for k := range unary {
		p = append(p, k)
	}
	for k := range stackOps {
		p = append(p, k)
	}
	sort.Strings(p)
	return p
}

var dictionary = newIndex(words()...)

func (m *machine) push(es ...g3.Element) { m.stack = append(m.stack, es...) }

// pop removes and returns the top n elements in stack order, leaving the
// stack untouched when it holds fewer than n.
func (m *machine) pop(n int) ([]g3.Element, error) {
	if len(m.stack) < n {
		return nil, errUnderflow
	}
	i := len(m.stack) - n
	p := append([]g3.Element(nil), m.stack[i:]...)
	m.stack = m.stack[:i]
	return p, nil
}

// eval runs each whitespace separated token of line in order. It stops
// at the first error; tokens before it keep their effect.
func (m *machine) eval(line string) error {
	toks := strings.Fields(line)
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if x, err := strconv.ParseFloat(tok, 64); err == nil {
			m.push(g3.Scalar(x))
			continue
		}
		if e, ok := basis[tok]; ok {
			m.push(e)
			continue
		}
		if f, ok := constructors[tok]; ok {
			e := f()
			n := e.Len()
			if len(toks)-i-1 < n {
				return fmt.Errorf("%s: want %v components, have %v", tok, n, len(toks)-i-1)
			}
			args := strings.Join(toks[i+1:i+1+n], " ")
			if err := g3.Get(strings.NewReader(args), e); err != nil {
				return fmt.Errorf("%s: %w", tok, err)
			}
			m.push(deref(e))
			i += n
			continue
		}
		if f, ok := binary[tok]; ok {
			p, err := m.pop(2)
			if err != nil {
				return fmt.Errorf("%s: %w", tok, err)
			}
			e, err := f(p[0], p[1])
			if err != nil {
				m.push(p...)
				return err
			}
			m.push(e)
			continue
		}
		if f, ok := unary[tok]; ok {
			p, err := m.pop(1)
			if err != nil {
				return fmt.Errorf("%s: %w", tok, err)
			}
			e, err := f(p[0])
			if err != nil {
				m.push(p...)
				return err
			}
			m.push(e)
			continue
		}
		if f, ok := stackOps[tok]; ok {
			if err := f(m); err != nil {
				return fmt.Errorf("%s: %w", tok, err)
			}
			continue
		}
		if s := dictionary.match(tok, 0.33); len(s) > 0 {
			return fmt.Errorf("unknown word %q, did you mean %q?", tok, s[0])
		}
		return fmt.Errorf("unknown word %q", tok)
	}
	return nil
}

// deref returns the value s points to.
func deref(s g3.Setter) g3.Element {
	switch x := s.(type) {
	case *g3.Vector:
		return *x
	case *g3.BiVector:
		return *x
	case *g3.TriVector:
		return *x
	case *g3.Spinor:
		return *x
	case *g3.ImSpin:
		return *x
	case *g3.ComPlex:
		return *x
	case *g3.DirPlex:
		return *x
	case *g3.MultiVector:
		return *x
	}
	return s.MV()
}

// print writes the stack bottom first, one element per line.
func (m *machine) print(w io.Writer) error {
	for i, e := range m.stack {
		if _, err := fmt.Fprintf(w, "%2d %-11s ", len(m.stack)-1-i, e.Kind()); err != nil {
			return err
		}
		if err := g3.Put(w, e, m.format); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
