package params

import (
	"fmt"
	"math/big"
	"math/bits"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

const (
	// Alpha is the power map exponent shared by every family. gcd(17, r-1) = 1.
	Alpha = 17
	// ArionE is the inverse exponent of the Arion GTDS top lane.
	ArionE = 257
	// Generator is the multiplicative generator of Fr.
	Generator = 22
	// BarBits is the number of low bits a Monolith bar rewrites.
	BarBits = 64
)

var inverses sync.Map // uint64 -> *big.Int

// InverseExponent returns e^-1 mod (r-1) so that x -> x^InverseExponent(e)
// inverts x -> x^e over Fr. It panics if e is not invertible, which only
// happens for a broken parameter set.
func InverseExponent(e uint64) *big.Int {
	if v, ok := inverses.Load(e); ok {
		return v.(*big.Int)
	}
	inv, err := InverseExponentMod(fr.Modulus(), e)
	if err != nil {
		panic(err)
	}
	v, _ := inverses.LoadOrStore(e, inv)
	return v.(*big.Int)
}

// InverseExponentMod returns e^-1 mod (p-1) for an arbitrary prime p.
func InverseExponentMod(p *big.Int, e uint64) (*big.Int, error) {
	order := new(big.Int).Sub(p, big.NewInt(1))
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(e), order)
	if inv == nil {
		return nil, fmt.Errorf("zkhash: exponent %d is not invertible mod p-1", e)
	}
	return inv, nil
}

// PowerCost is the number of multiplications of a left-to-right
// square-and-multiply evaluation of x^e.
func PowerCost(e uint64) int {
	if e == 0 {
		return 0
	}
	return bits.Len64(e) - 1 + bits.OnesCount64(e) - 1
}

// IsSquare reports whether x is a square in Fr (zero included).
func IsSquare(x *fr.Element) bool {
	return x.Legendre() != -1
}

// SBox is the byte substitution used by Monolith bars.
func SBox(b uint8) uint8 {
	y := b ^ (^bits.RotateLeft8(b, 1) & bits.RotateLeft8(b, 2) & bits.RotateLeft8(b, 3))
	return bits.RotateLeft8(y, 1)
}

var sboxTable = sync.OnceValue(func() [256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = SBox(uint8(i))
	}
	return t
})

// SBoxTable returns SBox tabulated over all bytes.
func SBoxTable() [256]uint8 {
	return sboxTable()
}

var barTop = sync.OnceValue(func() *big.Int {
	top := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	return top.Rsh(top, BarBits)
})

// BarTop returns (r-1) >> 64. Lanes whose high part equals BarTop are left
// untouched by a bar so that the map stays a permutation of Fr.
func BarTop() *big.Int {
	return new(big.Int).Set(barTop())
}

// Bar applies the Monolith bar to x: every byte of the low 64 bits goes
// through SBox, the high part is kept.
func Bar(x *fr.Element) fr.Element {
	v := x.BigInt(new(big.Int))
	hi := new(big.Int).Rsh(v, BarBits)
	if hi.Cmp(barTop()) == 0 {
		return *x
	}
	lo := x.Bits()[0]
	var out uint64
	for k := 0; k < BarBits/8; k++ {
		out |= uint64(SBox(uint8(lo>>(8*k)))) << (8 * k)
	}
	hi.Lsh(hi, BarBits).Or(hi, new(big.Int).SetUint64(out))
	var z fr.Element
	z.SetBigInt(hi)
	return z
}
