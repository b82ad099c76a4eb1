package perm

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/zkhash/internal/params"
)

// Native evaluates programs over BLS12-377 Fr.
type Native struct{}

var _ Arith[fr.Element] = Native{}

func (Native) Constant(c *fr.Element) fr.Element { return *c }

func (Native) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	return *z.Add(&a, &b)
}

func (Native) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	return *z.Sub(&a, &b)
}

func (Native) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	return *z.Mul(&a, &b)
}

func (Native) AddConst(a fr.Element, c *fr.Element) fr.Element {
	var z fr.Element
	return *z.Add(&a, c)
}

func (Native) MulConst(a fr.Element, c *fr.Element) fr.Element {
	var z fr.Element
	return *z.Mul(&a, c)
}

func (Native) Root(a fr.Element, e uint64) fr.Element {
	var z fr.Element
	return *z.Exp(a, params.InverseExponent(e))
}

func (Native) Bar(a fr.Element) fr.Element {
	return params.Bar(&a)
}
