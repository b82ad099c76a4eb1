package perm

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/zkhash/internal/params"
)

func elems(vs ...uint64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i].SetUint64(v)
	}
	return out
}

// toy is a small width-3 program touching every layer kind that fits the
// width.
func toy() Sponge {
	rc := elems(1, 2, 3)
	m := params.Circulant(2, 1, 1)
	one := elems(1)[0]
	return Sponge{
		Width: 3,
		Rate:  2,
		Program: Program{
			RoundConstants{C: rc},
			SBox{Lanes: 3, Exp: 17},
			Linear{M: m},
			Griffin{Alpha: elems(3), Beta: elems(5), Exp: 17},
			GTDS{D: 17, E: 257, G1: elems(1, 2), G2: elems(3, 4), H: []fr.Element{one, one}},
			Bars{Lanes: 2},
			Bricks{},
			Linear{M: m},
		},
	}
}

func TestPower(t *testing.T) {
	x := elems(987654321)[0]
	for _, e := range []uint64{1, 2, 3, 17, 257, 1<<20 + 5} {
		got := Power[fr.Element](Native{}, x, e)
		var want fr.Element
		want.Exp(x, new(big.Int).SetUint64(e))
		require.True(t, got.Equal(&want), "e=%d", e)
	}
	require.Panics(t, func() { Power[fr.Element](Native{}, x, 0) })
}

func TestRootInvertsPower(t *testing.T) {
	x := elems(42)[0]
	for _, e := range []uint64{17, 257} {
		y := Native{}.Root(x, e)
		back := Power[fr.Element](Native{}, y, e)
		require.True(t, back.Equal(&x))
	}
}

func TestFeistel(t *testing.T) {
	c := elems(9)[0]
	p := Program{Feistel{C: c, Exp: 17}}
	in := elems(2, 5)
	out := Run[fr.Element](Native{}, p, in)

	var want fr.Element
	want.Add(&in[0], &c)
	want.Exp(want, big.NewInt(17))
	want.Add(&want, &in[1])
	require.True(t, out[0].Equal(&want))
	require.True(t, out[1].Equal(&in[0]))
}

func TestFlystelIsInvertible(t *testing.T) {
	var beta, gamma fr.Element
	beta.SetUint64(params.Generator)
	gamma.Inverse(&beta)
	l := Flystel{Beta: beta, Gamma: gamma, Exp: 17}
	in := elems(11, 22, 33, 44)
	out := Run[fr.Element](Native{}, Program{l}, in)

	// Undo the three steps column by column.
	for i := 0; i < 2; i++ {
		x, y := out[i], out[2+i]
		var t2 fr.Element
		t2.Square(&y).Mul(&t2, &beta)
		x.Sub(&x, &t2)
		var xe fr.Element
		xe.Exp(x, params.InverseExponent(17))
		y.Add(&y, &xe)
		t2.Square(&y).Mul(&t2, &beta).Add(&t2, &gamma)
		x.Add(&x, &t2)
		require.True(t, x.Equal(&in[i]))
		require.True(t, y.Equal(&in[2+i]))
	}
}

func TestRunKeepsInput(t *testing.T) {
	s := toy()
	require.NoError(t, s.Validate())
	in := elems(1, 2, 3)
	cp := append([]fr.Element(nil), in...)
	out1 := Run[fr.Element](Native{}, s.Program, in)
	out2 := Run[fr.Element](Native{}, s.Program, in)
	require.Equal(t, cp, in)
	require.Equal(t, out1, out2)
	require.NotEqual(t, in, out1)
}

func TestProgramValidate(t *testing.T) {
	require.Error(t, Program{}.Validate(3))
	require.Error(t, Program{RoundConstants{C: elems(1, 2)}}.Validate(3))
	require.Error(t, Program{SBox{Lanes: 4, Exp: 17}}.Validate(3))
	require.Error(t, Program{Feistel{Exp: 17}}.Validate(3))
	require.Error(t, Program{Flystel{Exp: 17}}.Validate(3))
	require.Error(t, Program{Linear{M: params.Circulant(1, 2)}}.Validate(3))
	require.Error(t, Program{Bars{Lanes: 0}}.Validate(3))
	require.NoError(t, toy().Program.Validate(3))

	s := toy()
	s.Rate = 3
	require.Error(t, s.Validate())
}

func TestSponge(t *testing.T) {
	s := toy()
	_, err := Hash[fr.Element](Native{}, s, elems(1))
	require.Error(t, err)

	in := elems(4, 5)
	h, err := Hash[fr.Element](Native{}, s, in)
	require.NoError(t, err)
	require.Len(t, h, 2)
	want := Run[fr.Element](Native{}, s.Program, elems(4, 5, 0))
	require.Equal(t, want[:2], h)

	c, err := Chain[fr.Element](Native{}, s, in, 3)
	require.NoError(t, err)
	seq := in
	for range 3 {
		seq, err = Hash[fr.Element](Native{}, s, seq)
		require.NoError(t, err)
	}
	require.Equal(t, seq, c)
	_, err = Chain[fr.Element](Native{}, s, in, 0)
	require.Error(t, err)
}

func TestSumPadding(t *testing.T) {
	s := toy()
	_, err := Sum[fr.Element](Native{}, s)
	require.Error(t, err)

	// One element fills a block with its padding.
	got, err := Sum[fr.Element](Native{}, s, elems(7)...)
	require.NoError(t, err)
	want := Run[fr.Element](Native{}, s.Program, elems(7, 1, 0))
	require.True(t, got.Equal(&want[0]))

	// A full block needs a second, padding-only block.
	got, err = Sum[fr.Element](Native{}, s, elems(7, 8)...)
	require.NoError(t, err)
	st := Run[fr.Element](Native{}, s.Program, elems(7, 8, 0))
	st[0].Add(&st[0], &elems(1)[0])
	st = Run[fr.Element](Native{}, s.Program, st)
	require.True(t, got.Equal(&st[0]))

	// Padding separates messages that differ by trailing zeros.
	a, err := Sum[fr.Element](Native{}, s, elems(7)...)
	require.NoError(t, err)
	b, err := Sum[fr.Element](Native{}, s, elems(7, 0)...)
	require.NoError(t, err)
	require.False(t, a.Equal(&b))
}

func TestCounter(t *testing.T) {
	p := Program{
		SBox{Lanes: 2, Exp: 17},
		Bars{Lanes: 1},
		Bricks{},
	}
	c := Count(p, 3)
	require.Equal(t, 2*params.PowerCost(17)+2, c.Muls)
	require.Equal(t, 1, c.Bars)
	require.Equal(t, 0, c.Roots)
	require.Equal(t, c.Muls+BarWires, c.Wires())

	r := Count(Program{GTDS{D: 17, E: 257, G1: elems(1, 2), G2: elems(1, 2), H: elems(1, 2)}}, 3)
	require.Equal(t, 1, r.Roots)
	// root check, then per lane: sigma^2, x^d, the product, plus the
	// multiplications by constants which are free.
	require.Equal(t, params.PowerCost(257)+2*(1+params.PowerCost(17)+1), r.Muls)
}
