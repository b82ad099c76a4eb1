package perm

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Sponge is a fixed-width sponge around a program. The rate lanes are the
// leading lanes of the state.
type Sponge struct {
	Width   int
	Rate    int
	Program Program
}

// Validate checks the sponge geometry and the program.
func (s Sponge) Validate() error {
	if s.Rate < 1 || s.Rate >= s.Width {
		return fmt.Errorf("perm: rate %d out of range for width %d", s.Rate, s.Width)
	}
	return s.Program.Validate(s.Width)
}

// Hash absorbs exactly Rate inputs into a zero state, permutes once and
// squeezes the rate lanes.
func Hash[E any](a Arith[E], s Sponge, input []E) ([]E, error) {
	if len(input) != s.Rate {
		return nil, fmt.Errorf("perm: got %d inputs, want %d", len(input), s.Rate)
	}
	state := zeros(a, s.Width)
	copy(state, input)
	state = Run(a, s.Program, state)
	return state[:s.Rate:s.Rate], nil
}

// Chain applies Hash n times, feeding each digest back as the next input.
func Chain[E any](a Arith[E], s Sponge, input []E, n int) ([]E, error) {
	if n < 1 {
		return nil, fmt.Errorf("perm: chain length must be positive, got %d", n)
	}
	out := input
	for i := 0; i < n; i++ {
		var err error
		if out, err = Hash(a, s, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Sum hashes a variable-length input: the message is padded with a one and
// then zeros up to a multiple of Rate, every block is added into the rate
// lanes followed by a permutation, and the first lane is squeezed.
func Sum[E any](a Arith[E], s Sponge, inputs ...E) (E, error) {
	var zero E
	if len(inputs) == 0 {
		return zero, fmt.Errorf("perm: need at least 1 input")
	}
	var one fr.Element
	one.SetOne()
	msg := make([]E, 0, len(inputs)+s.Rate)
	msg = append(msg, inputs...)
	msg = append(msg, a.Constant(&one))
	for len(msg)%s.Rate != 0 {
		msg = append(msg, zeros(a, 1)[0])
	}

	state := zeros(a, s.Width)
	for off := 0; off < len(msg); off += s.Rate {
		for i := 0; i < s.Rate; i++ {
			state[i] = a.Add(state[i], msg[off+i])
		}
		state = Run(a, s.Program, state)
	}
	return state[0], nil
}

func zeros[E any](a Arith[E], n int) []E {
	var z fr.Element
	out := make([]E, n)
	for i := range out {
		out[i] = a.Constant(&z)
	}
	return out
}
