// Package zkhash arithmetizes the zkhash families over emulated BLS12-377
// scalars, for circuits hosted on another curve such as BW6-761.
package zkhash

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/lookup/logderivlookup"
	"github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/vocdoni/zkhash"
	gzkhash "github.com/vocdoni/zkhash/gnark/zkhash"
	"github.com/vocdoni/zkhash/internal/params"
	"github.com/vocdoni/zkhash/internal/perm"
)

func init() {
	solver.RegisterHint(rootHint)
}

func rootHint(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	return emulated.UnwrapHint(inputs, outputs, gzkhash.RootHint)
}

// Arithmetizer interprets permutation programs over emulated elements.
type Arithmetizer struct {
	api   frontend.API
	field *emulated.Field[FrParams]
	sbox  logderivlookup.Table
}

var _ perm.Arith[*Element] = (*Arithmetizer)(nil)

// New returns an arithmetizer emulating BLS12-377 Fr on top of api.
func New(api frontend.API) (*Arithmetizer, error) {
	field, err := emulated.NewField[FrParams](api)
	if err != nil {
		return nil, err
	}
	return &Arithmetizer{api: api, field: field}, nil
}

// Field returns the emulated field the arithmetizer works in.
func (a *Arithmetizer) Field() *emulated.Field[FrParams] { return a.field }

func (a *Arithmetizer) Constant(c *fr.Element) *Element { return constElement(a.field, c) }
func (a *Arithmetizer) Add(x, y *Element) *Element      { return a.field.Add(x, y) }
func (a *Arithmetizer) Sub(x, y *Element) *Element      { return a.field.Sub(x, y) }
func (a *Arithmetizer) Mul(x, y *Element) *Element      { return a.field.Mul(x, y) }

func (a *Arithmetizer) AddConst(x *Element, c *fr.Element) *Element {
	return a.field.Add(x, constElement(a.field, c))
}

func (a *Arithmetizer) MulConst(x *Element, c *fr.Element) *Element {
	return a.field.Mul(x, constElement(a.field, c))
}

func (a *Arithmetizer) Root(x *Element, e uint64) *Element {
	exp := a.field.NewElement(new(big.Int).SetUint64(e))
	res, err := a.field.NewHint(rootHint, 1, exp, x)
	if err != nil {
		panic(fmt.Errorf("zkhash: emulated root hint: %w", err))
	}
	y := res[0]
	a.field.AssertIsEqual(perm.Power[*Element](a, y, e), x)
	return y
}

// Bar works on the canonical bits of x. The high part and the substituted
// bytes fit in the host field, so the selector and lookups are native.
func (a *Arithmetizer) Bar(x *Element) *Element {
	api := a.api
	bs := a.field.ToBitsCanonical(x)
	hi := bits.FromBinary(api, bs[params.BarBits:])
	isTop := api.IsZero(api.Sub(hi, params.BarTop()))

	idx := make([]frontend.Variable, params.BarBits/8)
	for k := range idx {
		idx[k] = bits.FromBinary(api, bs[8*k:8*k+8])
	}
	subst := a.table().Lookup(idx...)

	out := make([]frontend.Variable, 0, len(bs))
	for _, v := range subst {
		out = append(out, bits.ToBinary(api, v, bits.WithNbDigits(8))...)
	}
	out = append(out, bs[params.BarBits:]...)
	return a.field.Select(isTop, x, a.field.FromBits(out...))
}

func (a *Arithmetizer) table() logderivlookup.Table {
	if a.sbox == nil {
		a.sbox = logderivlookup.New(a.api)
		for _, v := range params.SBoxTable() {
			a.sbox.Insert(uint64(v))
		}
	}
	return a.sbox
}

// Permute returns the permutation of state.
func (a *Arithmetizer) Permute(f *zkhash.Family, state []*Element) ([]*Element, error) {
	if len(state) != f.Width() {
		return nil, fmt.Errorf("zkhash: %s: state has %d lanes, want %d", f.Name(), len(state), f.Width())
	}
	return perm.Run[*Element](a, f.Sponge().Program, state), nil
}

// Hash computes the rate-sized digest of a rate-sized input.
func (a *Arithmetizer) Hash(f *zkhash.Family, input []*Element) ([]*Element, error) {
	out, err := perm.Hash[*Element](a, f.Sponge(), input)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.Name(), err)
	}
	return out, nil
}

// Chain applies Hash n times to its own output.
func (a *Arithmetizer) Chain(f *zkhash.Family, input []*Element, n int) ([]*Element, error) {
	out, err := perm.Chain[*Element](a, f.Sponge(), input, n)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.Name(), err)
	}
	return out, nil
}

// Sum hashes an arbitrary number of elements into one.
func (a *Arithmetizer) Sum(f *zkhash.Family, inputs ...*Element) (*Element, error) {
	out, err := perm.Sum[*Element](a, f.Sponge(), inputs...)
	if err != nil {
		return nil, fmt.Errorf("zkhash: %s: %w", f.Name(), err)
	}
	return out, nil
}

// Hash computes f's digest of emulated inputs. Outputs are reduced.
func Hash(api frontend.API, f *zkhash.Family, inputs ...Element) ([]Element, error) {
	a, err := New(api)
	if err != nil {
		return nil, err
	}
	in := make([]*Element, len(inputs))
	for i := range inputs {
		in[i] = a.field.NewElement(inputs[i])
	}
	digest, err := a.Hash(f, in)
	if err != nil {
		return nil, err
	}
	out := make([]Element, len(digest))
	for i, d := range digest {
		out[i] = *a.field.Reduce(d)
	}
	return out, nil
}

// Sum computes f's variable-length digest of emulated inputs.
func Sum(api frontend.API, f *zkhash.Family, inputs ...Element) (Element, error) {
	a, err := New(api)
	if err != nil {
		return Element{}, err
	}
	in := make([]*Element, len(inputs))
	for i := range inputs {
		in[i] = a.field.NewElement(inputs[i])
	}
	out, err := a.Sum(f, in...)
	if err != nil {
		return Element{}, err
	}
	return *a.field.Reduce(out), nil
}
