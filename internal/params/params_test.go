package params

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func TestSBoxIsPermutation(t *testing.T) {
	seen := make(map[uint8]bool, 256)
	for _, v := range SBoxTable() {
		require.False(t, seen[v], "sbox value %d repeated", v)
		seen[v] = true
	}
	require.Len(t, seen, 256)

	table := SBoxTable()
	require.Equal(t, []uint8{0, 2, 4, 22, 8, 10, 44, 46}, table[:8])
}

func TestInverseExponent(t *testing.T) {
	order := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	for _, e := range []uint64{Alpha, ArionE} {
		inv := InverseExponent(e)
		prod := new(big.Int).Mul(inv, new(big.Int).SetUint64(e))
		require.Zero(t, prod.Mod(prod, order).Cmp(big.NewInt(1)), "e=%d", e)

		var x, y, z fr.Element
		x.SetUint64(123456789)
		y.Exp(x, inv)
		z.Exp(y, new(big.Int).SetUint64(e))
		require.True(t, z.Equal(&x), "e=%d", e)
	}

	_, err := InverseExponentMod(fr.Modulus(), 3)
	require.Error(t, err)
	require.Panics(t, func() { InverseExponent(5) })
}

func TestPowerCost(t *testing.T) {
	require.Equal(t, 0, PowerCost(1))
	require.Equal(t, 1, PowerCost(2))
	require.Equal(t, 5, PowerCost(17))
	require.Equal(t, 9, PowerCost(257))
}

func TestBar(t *testing.T) {
	var x fr.Element
	x.SetUint64(0x0102030405060708)
	got := Bar(&x)
	want := uint64(0)
	for k := range 8 {
		want |= uint64(SBox(uint8(uint64(0x0102030405060708)>>(8*k)))) << (8 * k)
	}
	var w fr.Element
	w.SetUint64(want)
	require.True(t, got.Equal(&w))

	// Top block is left untouched.
	var top fr.Element
	top.SetBigInt(new(big.Int).Lsh(BarTop(), BarBits))
	top.Add(&top, new(fr.Element).SetUint64(7))
	barTop := Bar(&top)
	require.True(t, barTop.Equal(&top))

	var minusOne fr.Element
	minusOne.SetOne().Neg(&minusOne)
	barMinusOne := Bar(&minusOne)
	require.True(t, barMinusOne.Equal(&minusOne))
}

func TestDerive(t *testing.T) {
	a := Derive("seed", 4)
	b := Derive("seed", 6)
	require.Equal(t, a, b[:4])
	c := Derive("other", 4)
	require.NotEqual(t, a, c)
	for i := 1; i < len(b); i++ {
		require.False(t, b[i].Equal(&b[i-1]))
	}
}

func TestMatrices(t *testing.T) {
	m := Cauchy(3)
	var want fr.Element
	want.SetUint64(5)
	want.Inverse(&want)
	require.True(t, m[1][1].Equal(&want))

	c := Circulant(2, 3, 1, 1)
	for i := range c {
		for j := range c[i] {
			require.True(t, c[i][j].Equal(&c[(i+1)%4][(j+1)%4]))
		}
	}
	var two fr.Element
	two.SetUint64(2)
	require.True(t, c[0][0].Equal(&two))
}

func TestParameterSets(t *testing.T) {
	ps, err := NewPoseidon()
	require.NoError(t, err)
	require.Len(t, ps.ARC, ps.FullRounds+ps.PartialRounds)

	mi, err := NewMiMC()
	require.NoError(t, err)
	require.Len(t, mi.C, mi.Rounds)

	an, err := NewAnemoi()
	require.NoError(t, err)
	var one fr.Element
	one.Mul(&an.G, &an.GInv)
	require.True(t, one.IsOne())

	gr, err := NewGriffin()
	require.NoError(t, err)
	require.Len(t, gr.RC, gr.Rounds-1)

	ar, err := NewArion()
	require.NoError(t, err)
	require.Len(t, ar.G1, ar.Width-1)

	mo, err := NewMonolith()
	require.NoError(t, err)
	require.Len(t, mo.RC, mo.Rounds-1)
}

func TestValidateRejectsBrokenSets(t *testing.T) {
	ps, err := NewPoseidon()
	require.NoError(t, err)
	broken := *ps
	broken.FullRounds = 7
	require.Error(t, broken.Validate())
	broken = *ps
	broken.ARC = broken.ARC[1:]
	require.Error(t, broken.Validate())

	gr, err := NewGriffin()
	require.NoError(t, err)
	bad := *gr
	// x^2 + 2x + 1 = (x+1)^2 has a root.
	bad.AlphaI = []fr.Element{*new(fr.Element).SetUint64(2)}
	bad.BetaI = []fr.Element{*new(fr.Element).SetOne()}
	require.Error(t, bad.Validate())

	ar, err := NewArion()
	require.NoError(t, err)
	badArion := *ar
	badArion.E = 3
	require.Error(t, badArion.Validate())

	mi := &MiMC{Width: 3, Rate: 1}
	require.Error(t, mi.Validate())
}
