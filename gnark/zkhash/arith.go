// Package zkhash arithmetizes the zkhash families inside a gnark circuit
// whose native field is the BLS12-377 scalar field.
package zkhash

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/lookup/logderivlookup"
	"github.com/consensys/gnark/std/math/bits"

	"github.com/vocdoni/zkhash/internal/params"
	"github.com/vocdoni/zkhash/internal/perm"
)

func init() {
	solver.RegisterHint(RootHint)
}

// RootHint computes outputs[0] = inputs[1]^(1/inputs[0]) modulo field.
func RootHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs) != 2 || len(outputs) != 1 {
		return fmt.Errorf("zkhash: root hint expects 2 inputs and 1 output")
	}
	if !inputs[0].IsUint64() {
		return fmt.Errorf("zkhash: root exponent %s out of range", inputs[0])
	}
	inv, err := params.InverseExponentMod(field, inputs[0].Uint64())
	if err != nil {
		return err
	}
	outputs[0].Exp(inputs[1], inv, field)
	return nil
}

// Arithmetizer interprets permutation programs over circuit variables.
// Power maps become chained multiplications, roots are hinted and checked
// by re-raising them, and bars use a byte lookup table shared by every bar
// of the circuit.
type Arithmetizer struct {
	api   frontend.API
	sbox  logderivlookup.Table
	shift *big.Int
}

var _ perm.Arith[frontend.Variable] = (*Arithmetizer)(nil)

// New returns an arithmetizer bound to api. The circuit field must be the
// BLS12-377 scalar field.
func New(api frontend.API) *Arithmetizer {
	return &Arithmetizer{
		api:   api,
		shift: new(big.Int).Lsh(big.NewInt(1), params.BarBits),
	}
}

func (a *Arithmetizer) Constant(c *fr.Element) frontend.Variable {
	return c.BigInt(new(big.Int))
}

func (a *Arithmetizer) Add(x, y frontend.Variable) frontend.Variable { return a.api.Add(x, y) }
func (a *Arithmetizer) Sub(x, y frontend.Variable) frontend.Variable { return a.api.Sub(x, y) }
func (a *Arithmetizer) Mul(x, y frontend.Variable) frontend.Variable { return a.api.Mul(x, y) }

func (a *Arithmetizer) AddConst(x frontend.Variable, c *fr.Element) frontend.Variable {
	return a.api.Add(x, c.BigInt(new(big.Int)))
}

func (a *Arithmetizer) MulConst(x frontend.Variable, c *fr.Element) frontend.Variable {
	return a.api.Mul(x, c.BigInt(new(big.Int)))
}

// Root hints y = x^(1/e) and constrains y^e == x.
func (a *Arithmetizer) Root(x frontend.Variable, e uint64) frontend.Variable {
	res, err := a.api.Compiler().NewHint(RootHint, 1, e, x)
	if err != nil {
		panic(fmt.Errorf("zkhash: root hint: %w", err))
	}
	y := res[0]
	a.api.AssertIsEqual(perm.Power[frontend.Variable](a, y, e), x)
	return y
}

// Bar decomposes x canonically, substitutes the bytes of its low 64 bits
// through the lookup table and recombines. Lanes in the top block pass
// through unchanged.
func (a *Arithmetizer) Bar(x frontend.Variable) frontend.Variable {
	api := a.api
	bs := bits.ToBinary(api, x, bits.WithNbDigits(api.Compiler().FieldBitLen()))
	hi := bits.FromBinary(api, bs[params.BarBits:])
	isTop := api.IsZero(api.Sub(hi, params.BarTop()))

	idx := make([]frontend.Variable, params.BarBits/8)
	for k := range idx {
		idx[k] = bits.FromBinary(api, bs[8*k:8*k+8])
	}
	subst := a.table().Lookup(idx...)

	var lo frontend.Variable = 0
	for k, v := range subst {
		lo = api.Add(lo, api.Mul(v, uint64(1)<<(8*k)))
	}
	barred := api.Add(api.Mul(hi, a.shift), lo)
	return api.Select(isTop, x, barred)
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
