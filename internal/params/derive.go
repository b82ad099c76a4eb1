package params

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/crypto/sha3"
)

// Derive expands seed into n field elements with a SHA3-256 hash chain:
// h = H(seed), then h = H(h) for every element, read big-endian mod r.
func Derive(seed string, n int) []fr.Element {
	h := sha3.New256()
	_, _ = h.Write([]byte(seed))
	rnd := h.Sum(nil)

	out := make([]fr.Element, n)
	for i := range out {
		h.Reset()
		_, _ = h.Write(rnd)
		rnd = h.Sum(nil)
		out[i].SetBytes(rnd)
	}
	return out
}

// Rows splits flat into rows of the given width.
func Rows(flat []fr.Element, width int) [][]fr.Element {
	rows := make([][]fr.Element, 0, len(flat)/width)
	for i := 0; i+width <= len(flat); i += width {
		rows = append(rows, flat[i:i+width:i+width])
	}
	return rows
}

// Cauchy returns the t x t Cauchy matrix M[i][j] = 1/(i + j + t).
func Cauchy(t int) [][]fr.Element {
	m := make([][]fr.Element, t)
	for i := range m {
		m[i] = make([]fr.Element, t)
		for j := range m[i] {
			m[i][j].SetUint64(uint64(i + j + t))
			m[i][j].Inverse(&m[i][j])
		}
	}
	return m
}

// Circulant returns the circulant matrix whose first row is c.
func Circulant(c ...uint64) [][]fr.Element {
	n := len(c)
	m := make([][]fr.Element, n)
	for i := range m {
		m[i] = make([]fr.Element, n)
		for j := range m[i] {
			m[i][j].SetUint64(c[(j-i+n)%n])
		}
	}
	return m
}

// anemoiLinear builds the full Anemoi linear layer for l = 2 columns:
// x' = A x, y' = A rot(y), then y'' = y' + x', x'' = x' + y''.
func anemoiLinear(g fr.Element) [][]fr.Element {
	const l = 2
	var one, g2 fr.Element
	one.SetOne()
	g2.Square(&g).Add(&g2, &one)
	a := [l][l]fr.Element{{one, g}, {g, g2}}

	// rot(y)_k = y_{k+1}, so (A rot)[i][j] = A[i][j-1].
	var b [l][l]fr.Element
	for i := range l {
		for j := range l {
			b[i][j] = a[i][(j-1+l)%l]
		}
	}

	m := make([][]fr.Element, 2*l)
	for i := range l {
		m[i] = make([]fr.Element, 2*l)
		m[l+i] = make([]fr.Element, 2*l)
		for j := range l {
			m[i][j].Double(&a[i][j])
			m[i][l+j] = b[i][j]
			m[l+i][j] = a[i][j]
			m[l+i][l+j] = b[i][j]
		}
	}
	return m
}

// nonResidueQuadratic bumps c until a^2 - 4c is a non-square, so that
// x^2 + a*x + c has no root in Fr.
func nonResidueQuadratic(a, c fr.Element) fr.Element {
	var one, four, disc, t fr.Element
	one.SetOne()
	four.SetUint64(4)
	for {
		disc.Square(&a)
		t.Mul(&four, &c)
		disc.Sub(&disc, &t)
		if !IsSquare(&disc) {
			return c
		}
		c.Add(&c, &one)
	}
}
