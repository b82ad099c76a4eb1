package perm

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Layer is one step of a permutation program.
type Layer interface {
	check(width int) error
}

// Program is an ordered list of layers.
type Program []Layer

// RoundConstants adds C[i] to lane i.
type RoundConstants struct {
	C []fr.Element
}

// SBox raises lanes [0, Lanes) to the power Exp.
type SBox struct {
	Lanes int
	Exp   uint64
}

// Linear multiplies the state by the dense matrix M.
type Linear struct {
	M [][]fr.Element
}

// Feistel is one MiMC round on two lanes:
// (xL, xR) <- (xR + (xL + C)^Exp, xL).
type Feistel struct {
	C   fr.Element
	Exp uint64
}

// Flystel applies the open Anemoi Flystel to every (x_i, y_i) column pair:
// x -= Beta*y^2 + Gamma; y -= x^(1/Exp); x += Beta*y^2 + Delta.
type Flystel struct {
	Beta, Gamma, Delta fr.Element
	Exp                uint64
}

// Griffin is the Griffin non-linear layer. Alpha and Beta are indexed by
// lane-2.
type Griffin struct {
	Alpha, Beta []fr.Element
	Exp         uint64
}

// GTDS is the Arion generalized triangular dynamical system. G1, G2 and H
// are indexed by lane for lanes 0..width-2.
type GTDS struct {
	D, E      uint64
	G1, G2, H []fr.Element
}

// Bars applies the Monolith bar to lanes [0, Lanes).
type Bars struct {
	Lanes int
}

// Bricks is the Monolith Feistel-type squaring layer:
// x_i += x_{i-1}^2 for i >= 1, using the input values.
type Bricks struct{}

func (l RoundConstants) check(width int) error {
	if len(l.C) != width {
		return fmt.Errorf("perm: %d round constants for width %d", len(l.C), width)
	}
	return nil
}

func (l SBox) check(width int) error {
	if l.Lanes < 1 || l.Lanes > width || l.Exp == 0 {
		return fmt.Errorf("perm: invalid sbox layer (%d lanes, exponent %d)", l.Lanes, l.Exp)
	}
	return nil
}

func (l Linear) check(width int) error {
	if len(l.M) != width {
		return fmt.Errorf("perm: linear layer has %d rows for width %d", len(l.M), width)
	}
	for _, row := range l.M {
		if len(row) != width {
			return fmt.Errorf("perm: linear layer is not %dx%d", width, width)
		}
	}
	return nil
}

func (l Feistel) check(width int) error {
	if width != 2 {
		return fmt.Errorf("perm: feistel round needs width 2, got %d", width)
	}
	return nil
}

func (l Flystel) check(width int) error {
	if width%2 != 0 {
		return fmt.Errorf("perm: flystel needs an even width, got %d", width)
	}
	return nil
}

func (l Griffin) check(width int) error {
	if width < 3 || len(l.Alpha) != width-2 || len(l.Beta) != width-2 {
		return fmt.Errorf("perm: griffin layer does not match width %d", width)
	}
	return nil
}

func (l GTDS) check(width int) error {
	n := width - 1
	if width < 2 || len(l.G1) != n || len(l.G2) != n || len(l.H) != n {
		return fmt.Errorf("perm: gtds layer does not match width %d", width)
	}
	return nil
}

func (l Bars) check(width int) error {
	if l.Lanes < 1 || l.Lanes > width {
		return fmt.Errorf("perm: %d bar lanes for width %d", l.Lanes, width)
	}
	return nil
}

func (Bricks) check(int) error { return nil }

// Validate checks that every layer fits a state of the given width.
func (p Program) Validate(width int) error {
	if len(p) == 0 {
		return fmt.Errorf("perm: empty program")
	}
	for i, l := range p {
		if err := l.check(width); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// Run interprets the program over a and returns the permuted state. The
// input slice is not modified.
func Run[E any](a Arith[E], p Program, state []E) []E {
	s := make([]E, len(state))
	copy(s, state)
	for _, l := range p {
		s = apply(a, l, s)
	}
	return s
}

func apply[E any](a Arith[E], l Layer, s []E) []E {
	switch l := l.(type) {
	case RoundConstants:
		for i := range s {
			s[i] = a.AddConst(s[i], &l.C[i])
		}
		return s
	case SBox:
		for i := 0; i < l.Lanes; i++ {
			s[i] = Power(a, s[i], l.Exp)
		}
		return s
	case Linear:
		return mix(a, l.M, s)
	case Feistel:
		t := Power(a, a.AddConst(s[0], &l.C), l.Exp)
		return []E{a.Add(s[1], t), s[0]}
	case Flystel:
		return flystel(a, l, s)
	case Griffin:
		return griffin(a, l, s)
	case GTDS:
		return gtds(a, l, s)
	case Bars:
		for i := 0; i < l.Lanes; i++ {
			s[i] = a.Bar(s[i])
		}
		return s
	case Bricks:
		out := make([]E, len(s))
		out[0] = s[0]
		for i := 1; i < len(s); i++ {
			out[i] = a.Add(s[i], a.Mul(s[i-1], s[i-1]))
		}
		return out
	default:
		panic(fmt.Sprintf("perm: unknown layer %T", l))
	}
}

func mix[E any](a Arith[E], m [][]fr.Element, s []E) []E {
	out := make([]E, len(s))
	for i, row := range m {
		sum := a.MulConst(s[0], &row[0])
		for j := 1; j < len(row); j++ {
			sum = a.Add(sum, a.MulConst(s[j], &row[j]))
		}
		out[i] = sum
	}
	return out
}

func flystel[E any](a Arith[E], l Flystel, s []E) []E {
	cols := len(s) / 2
	for i := 0; i < cols; i++ {
		x, y := s[i], s[cols+i]
		x = a.Sub(x, a.AddConst(a.MulConst(a.Mul(y, y), &l.Beta), &l.Gamma))
		y = a.Sub(y, a.Root(x, l.Exp))
		x = a.Add(x, a.AddConst(a.MulConst(a.Mul(y, y), &l.Beta), &l.Delta))
		s[i], s[cols+i] = x, y
	}
	return s
}

func griffin[E any](a Arith[E], l Griffin, s []E) []E {
	out := make([]E, len(s))
	out[0] = a.Root(s[0], l.Exp)
	out[1] = Power(a, s[1], l.Exp)
	for i := 2; i < len(s); i++ {
		var gamma fr.Element
		gamma.SetUint64(uint64(i - 1))
		lin := a.Add(a.MulConst(out[0], &gamma), out[1])
		if i > 2 {
			lin = a.Add(lin, s[i-1])
		}
		q := a.Add(a.Mul(lin, lin), a.AddConst(a.MulConst(lin, &l.Alpha[i-2]), &l.Beta[i-2]))
		out[i] = a.Mul(s[i], q)
	}
	return out
}

func gtds[E any](a Arith[E], l GTDS, s []E) []E {
	n := len(s)
	out := make([]E, n)
	out[n-1] = a.Root(s[n-1], l.E)
	sigma := a.Add(s[n-1], out[n-1])
	for i := n - 2; i >= 0; i-- {
		sigma2 := a.Mul(sigma, sigma)
		g := a.AddConst(a.Add(sigma2, a.MulConst(sigma, &l.G1[i])), &l.G2[i])
		h := a.Add(sigma2, a.MulConst(sigma, &l.H[i]))
		out[i] = a.Add(a.Mul(Power(a, s[i], l.D), g), h)
		if i > 0 {
			sigma = a.Add(sigma, a.Add(s[i], out[i]))
		}
	}
	return out
}
