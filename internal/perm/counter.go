package perm

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/zkhash/internal/params"
)

// BarWires is the number of wires one bar allocates beyond its input: the
// canonical bit decomposition, eight byte indices with their substituted
// images, and the top-block selector.
const BarWires = fr.Bits + 2*params.BarBits/8 + 1

// Counter is an algebra that evaluates nothing and counts the non-linear
// values a program produces. Linear operations are free.
type Counter struct {
	Muls  int
	Roots int
	Bars  int
}

var _ Arith[struct{}] = (*Counter)(nil)

func (*Counter) Constant(*fr.Element) struct{}           { return struct{}{} }
func (*Counter) Add(_, _ struct{}) struct{}              { return struct{}{} }
func (*Counter) Sub(_, _ struct{}) struct{}              { return struct{}{} }
func (*Counter) AddConst(struct{}, *fr.Element) struct{} { return struct{}{} }
func (*Counter) MulConst(struct{}, *fr.Element) struct{} { return struct{}{} }

func (c *Counter) Mul(_, _ struct{}) struct{} {
	c.Muls++
	return struct{}{}
}

// Root counts the hinted root and the multiplications re-raising it.
func (c *Counter) Root(_ struct{}, e uint64) struct{} {
	c.Roots++
	c.Muls += params.PowerCost(e)
	return struct{}{}
}

func (c *Counter) Bar(struct{}) struct{} {
	c.Bars++
	return struct{}{}
}

// Wires is the number of intermediate wires counted so far.
func (c *Counter) Wires() int {
	return c.Muls + c.Roots + BarWires*c.Bars
}

// Count runs p over a fresh counter on a state of the given width.
func Count(p Program, width int) *Counter {
	c := new(Counter)
	Run[struct{}](c, p, make([]struct{}, width))
	return c
}
