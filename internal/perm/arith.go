// Package perm holds the permutation programs shared by the native
// evaluator and the arithmetizers. A permutation is described once, as a
// list of layers, and interpreted over any algebra implementing Arith.
package perm

import (
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Arith is the algebra a program is interpreted over: native field
// elements, circuit variables or emulated elements.
type Arith[E any] interface {
	Constant(c *fr.Element) E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	AddConst(a E, c *fr.Element) E
	MulConst(a E, c *fr.Element) E
	// Root returns a^(1/e), the inverse of the power map x -> x^e.
	Root(a E, e uint64) E
	// Bar applies the Monolith bar to a.
	Bar(a E) E
}

// Power evaluates x^e by left-to-right square-and-multiply.
func Power[E any](a Arith[E], x E, e uint64) E {
	if e == 0 {
		panic("perm: zero exponent")
	}
	r := x
	for i := bits.Len64(e) - 2; i >= 0; i-- {
		r = a.Mul(r, r)
		if (e>>uint(i))&1 == 1 {
			r = a.Mul(r, x)
		}
	}
	return r
}
