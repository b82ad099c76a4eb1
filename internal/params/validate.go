package params

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Validate checks basic shape and sizes of the parameter set.
func (p *Poseidon) Validate() error {
	if p.FullRounds%2 != 0 {
		return fmt.Errorf("zkhash: poseidon full rounds must be even, got %d", p.FullRounds)
	}
	if p.Rate < 1 || p.Rate >= p.Width {
		return fmt.Errorf("zkhash: poseidon rate %d out of range for width %d", p.Rate, p.Width)
	}
	if err := checkRows("poseidon arc", p.ARC, p.FullRounds+p.PartialRounds, p.Width); err != nil {
		return err
	}
	return checkRows("poseidon mds", p.MDS, p.Width, p.Width)
}

// Validate checks basic shape and sizes of the parameter set.
func (p *MiMC) Validate() error {
	if p.Width != 2 || p.Rate != 1 {
		return fmt.Errorf("zkhash: mimc feistel needs width 2 and rate 1, got %d/%d", p.Width, p.Rate)
	}
	if len(p.C) != p.Rounds {
		return fmt.Errorf("zkhash: mimc constants length mismatch")
	}
	return nil
}

// Validate checks basic shape and sizes of the parameter set.
func (p *Anemoi) Validate() error {
	width := 2 * p.Columns
	if p.Columns != 2 {
		return fmt.Errorf("zkhash: anemoi linear layer only defined for 2 columns, got %d", p.Columns)
	}
	if p.Rate < 1 || p.Rate >= width {
		return fmt.Errorf("zkhash: anemoi rate %d out of range for width %d", p.Rate, width)
	}
	if p.G.IsZero() {
		return fmt.Errorf("zkhash: anemoi generator is zero")
	}
	if err := checkRows("anemoi c", p.C, p.Rounds, p.Columns); err != nil {
		return err
	}
	if err := checkRows("anemoi d", p.D, p.Rounds, p.Columns); err != nil {
		return err
	}
	return checkRows("anemoi linear layer", p.Linear, width, width)
}

// Validate checks basic shape and sizes of the parameter set.
func (p *Griffin) Validate() error {
	if p.Width < 3 {
		return fmt.Errorf("zkhash: griffin needs width >= 3, got %d", p.Width)
	}
	if p.Rate < 1 || p.Rate >= p.Width {
		return fmt.Errorf("zkhash: griffin rate %d out of range for width %d", p.Rate, p.Width)
	}
	if err := checkRows("griffin rc", p.RC, p.Rounds-1, p.Width); err != nil {
		return err
	}
	if err := checkRows("griffin matrix", p.M, p.Width, p.Width); err != nil {
		return err
	}
	if len(p.AlphaI) != p.Width-2 || len(p.BetaI) != p.Width-2 {
		return fmt.Errorf("zkhash: griffin alpha/beta length mismatch")
	}
	for i := range p.AlphaI {
		if err := checkIrreducible("griffin", p.AlphaI[i], p.BetaI[i]); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks basic shape and sizes of the parameter set.
func (p *Arion) Validate() error {
	if p.Rate < 1 || p.Rate >= p.Width {
		return fmt.Errorf("zkhash: arion rate %d out of range for width %d", p.Rate, p.Width)
	}
	if _, err := InverseExponentMod(fr.Modulus(), p.E); err != nil {
		return err
	}
	if err := checkRows("arion rc", p.RC, p.Rounds, p.Width); err != nil {
		return err
	}
	if err := checkRows("arion matrix", p.M, p.Width, p.Width); err != nil {
		return err
	}
	n := p.Width - 1
	if len(p.G1) != n || len(p.G2) != n || len(p.H) != n {
		return fmt.Errorf("zkhash: arion g/h length mismatch")
	}
	for i := range p.G1 {
		if err := checkIrreducible("arion", p.G1[i], p.G2[i]); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks basic shape and sizes of the parameter set.
func (p *Monolith) Validate() error {
	if p.Rate < 1 || p.Rate >= p.Width {
		return fmt.Errorf("zkhash: monolith rate %d out of range for width %d", p.Rate, p.Width)
	}
	if p.BarLanes < 1 || p.BarLanes > p.Width {
		return fmt.Errorf("zkhash: monolith bar lanes %d out of range", p.BarLanes)
	}
	if err := checkRows("monolith rc", p.RC, p.Rounds-1, p.Width); err != nil {
		return err
	}
	return checkRows("monolith matrix", p.M, p.Width, p.Width)
}

func checkRows(name string, rows [][]fr.Element, n, width int) error {
	if len(rows) != n {
		return fmt.Errorf("zkhash: %s has %d rows, want %d", name, len(rows), n)
	}
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("zkhash: %s row %d has length %d, want %d", name, i, len(row), width)
		}
	}
	return nil
}

func checkIrreducible(name string, a, c fr.Element) error {
	var disc, t fr.Element
	disc.Square(&a)
	t.SetUint64(4)
	t.Mul(&t, &c)
	disc.Sub(&disc, &t)
	if IsSquare(&disc) {
		return fmt.Errorf("zkhash: %s quadratic has a root in Fr", name)
	}
	return nil
}
