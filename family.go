// Package zkhash implements the native side of a set of algebraic hash
// families over the BLS12-377 scalar field (Poseidon, MiMC, Anemoi, Griffin,
// Arion and Monolith). Every family is described by a single layer program
// which the circuit packages under gnark/ interpret as well, so the native
// digests and the arithmetized ones are computed by the same code.
package zkhash

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/zkhash/internal/perm"
)

// Family is a permutation-based sponge hash over Fr.
type Family struct {
	name   string
	sponge perm.Sponge
	wires  int
}

func newFamily(name string, width, rate int, program perm.Program) (*Family, error) {
	s := perm.Sponge{Width: width, Rate: rate, Program: program}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", name, err)
	}
	c := perm.Count(program, width)
	return &Family{
		name:   name,
		sponge: s,
		wires:  2*width + c.Wires(),
	}, nil
}

func (f *Family) Name() string  { return f.name }
func (f *Family) Width() int    { return f.sponge.Width }
func (f *Family) Rate() int     { return f.sponge.Rate }
func (f *Family) Capacity() int { return f.sponge.Width - f.sponge.Rate }

// Sponge returns the layer program of the family with its geometry. The
// returned value shares the constant tables of the family and must not be
// modified.
func (f *Family) Sponge() perm.Sponge { return f.sponge }

// GateWires is the number of wires one permutation needs: its input and
// output state plus every non-linear intermediate value.
func (f *Family) GateWires() int { return f.wires }

// Permute applies the permutation to state in place.
func (f *Family) Permute(state []fr.Element) error {
	if len(state) != f.Width() {
		return fmt.Errorf("zkhash: %s: state has %d lanes, want %d", f.name, len(state), f.Width())
	}
	copy(state, perm.Run[fr.Element](perm.Native{}, f.sponge.Program, state))
	return nil
}

// Hash absorbs exactly Rate() elements into a zero state, permutes once and
// returns the rate lanes.
func (f *Family) Hash(input []fr.Element) ([]fr.Element, error) {
	out, err := perm.Hash[fr.Element](perm.Native{}, f.sponge, input)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.name, err)
	}
	return out, nil
}

// Chain applies Hash n times, feeding each digest back as the next input.
func (f *Family) Chain(input []fr.Element, n int) ([]fr.Element, error) {
	out, err := perm.Chain[fr.Element](perm.Native{}, f.sponge, input, n)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.name, err)
	}
	return out, nil
}

// Sum hashes an arbitrary number of elements with 10* padding and returns a
// single element.
func (f *Family) Sum(inputs ...fr.Element) (fr.Element, error) {
	out, err := perm.Sum[fr.Element](perm.Native{}, f.sponge, inputs...)
	if err != nil {
		return fr.Element{}, fmt.Errorf("zkhash: %s: %w", f.name, err)
	}
	return out, nil
}

func (f *Family) String() string { return f.name }

// Families returns every family, sorted by name.
func Families() []*Family {
	out := []*Family{Anemoi(), Arion(), Griffin(), MiMC(), Monolith(), Poseidon()}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Lookup returns the family with the given (case-insensitive) name.
func Lookup(name string) (*Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(f.name, name) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("zkhash: unknown family %q", name)
}

// Input returns the fixed test input [0, 1, ..., n-1].
func Input(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(i))
	}
	return out
}
