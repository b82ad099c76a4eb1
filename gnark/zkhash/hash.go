package zkhash

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/zkhash"
	"github.com/vocdoni/zkhash/internal/perm"
)

// Permute returns the permutation of state.
func (a *Arithmetizer) Permute(f *zkhash.Family, state []frontend.Variable) ([]frontend.Variable, error) {
	if len(state) != f.Width() {
		return nil, fmt.Errorf("zkhash: %s: state has %d lanes, want %d", f.Name(), len(state), f.Width())
	}
	return perm.Run[frontend.Variable](a, f.Sponge().Program, state), nil
}

// Hash computes the rate-sized digest of a rate-sized input.
func (a *Arithmetizer) Hash(f *zkhash.Family, input []frontend.Variable) ([]frontend.Variable, error) {
	out, err := perm.Hash[frontend.Variable](a, f.Sponge(), input)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.Name(), err)
	}
	return out, nil
}

// Chain applies Hash n times to its own output.
func (a *Arithmetizer) Chain(f *zkhash.Family, input []frontend.Variable, n int) ([]frontend.Variable, error) {
	out, err := perm.Chain[frontend.Variable](a, f.Sponge(), input, n)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.Name(), err)
	}
	return out, nil
}

// Sum hashes an arbitrary number of variables into one.
func (a *Arithmetizer) Sum(f *zkhash.Family, inputs ...frontend.Variable) (frontend.Variable, error) {
	out, err := perm.Sum[frontend.Variable](a, f.Sponge(), inputs...)
	if err != nil {
		var zero frontend.Variable
		return zero, fmt.Errorf("zkhash: %s: %w", f.Name(), err)
	}
	return out, nil
}

// Hash computes f's digest of inputs inside a gnark circuit.
func Hash(api frontend.API, f *zkhash.Family, inputs ...frontend.Variable) ([]frontend.Variable, error) {
	return New(api).Hash(f, inputs)
}

// Sum computes f's variable-length digest of inputs inside a gnark circuit.
func Sum(api frontend.API, f *zkhash.Family, inputs ...frontend.Variable) (frontend.Variable, error) {
	return New(api).Sum(f, inputs...)
}
