package zkhash

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/zkhash/internal/params"
	"github.com/vocdoni/zkhash/internal/perm"
)

var (
	poseidon = sync.OnceValue(func() *Family { return must(newPoseidon()) })
	mimc     = sync.OnceValue(func() *Family { return must(newMiMC()) })
	anemoi   = sync.OnceValue(func() *Family { return must(newAnemoi()) })
	griffin  = sync.OnceValue(func() *Family { return must(newGriffin()) })
	arion    = sync.OnceValue(func() *Family { return must(newArion()) })
	monolith = sync.OnceValue(func() *Family { return must(newMonolith()) })
)

// Poseidon returns the width-3 Poseidon hash.
func Poseidon() *Family { return poseidon() }

// MiMC returns the two-lane MiMC Feistel hash.
func MiMC() *Family { return mimc() }

// Anemoi returns the two-column Anemoi hash.
func Anemoi() *Family { return anemoi() }

// Griffin returns the width-3 Griffin hash.
func Griffin() *Family { return griffin() }

// Arion returns the width-3 Arion hash.
func Arion() *Family { return arion() }

// Monolith returns the width-4 Monolith hash.
func Monolith() *Family { return monolith() }

func must(f *Family, err error) *Family {
	if err != nil {
		panic(err)
	}
	return f
}

func newPoseidon() (*Family, error) {
	p, err := params.NewPoseidon()
	if err != nil {
		return nil, err
	}
	half := p.FullRounds / 2
	var prog perm.Program
	for r := range p.FullRounds + p.PartialRounds {
		lanes := p.Width
		if r >= half && r < half+p.PartialRounds {
			lanes = 1
		}
		prog = append(prog,
			perm.RoundConstants{C: p.ARC[r]},
			perm.SBox{Lanes: lanes, Exp: p.Alpha},
			perm.Linear{M: p.MDS},
		)
	}
	return newFamily("poseidon", p.Width, p.Rate, prog)
}

func newMiMC() (*Family, error) {
	p, err := params.NewMiMC()
	if err != nil {
		return nil, err
	}
	prog := make(perm.Program, 0, p.Rounds)
	for _, c := range p.C {
		prog = append(prog, perm.Feistel{C: c, Exp: p.Alpha})
	}
	return newFamily("mimc", p.Width, p.Rate, prog)
}

func newAnemoi() (*Family, error) {
	p, err := params.NewAnemoi()
	if err != nil {
		return nil, err
	}
	var prog perm.Program
	for r := range p.Rounds {
		rc := append(append([]fr.Element{}, p.C[r]...), p.D[r]...)
		prog = append(prog,
			perm.RoundConstants{C: rc},
			perm.Linear{M: p.Linear},
			perm.Flystel{Beta: p.G, Gamma: p.GInv, Exp: p.Alpha},
		)
	}
	prog = append(prog, perm.Linear{M: p.Linear})
	return newFamily("anemoi", 2*p.Columns, p.Rate, prog)
}

func newGriffin() (*Family, error) {
	p, err := params.NewGriffin()
	if err != nil {
		return nil, err
	}
	prog := perm.Program{perm.Linear{M: p.M}}
	for r := range p.Rounds {
		prog = append(prog,
			perm.Griffin{Alpha: p.AlphaI, Beta: p.BetaI, Exp: p.Alpha},
			perm.Linear{M: p.M},
		)
		if r < p.Rounds-1 {
			prog = append(prog, perm.RoundConstants{C: p.RC[r]})
		}
	}
	return newFamily("griffin", p.Width, p.Rate, prog)
}

func newArion() (*Family, error) {
	p, err := params.NewArion()
	if err != nil {
		return nil, err
	}
	prog := perm.Program{perm.Linear{M: p.M}}
	for r := range p.Rounds {
		prog = append(prog,
			perm.GTDS{D: p.D, E: p.E, G1: p.G1, G2: p.G2, H: p.H},
			perm.Linear{M: p.M},
			perm.RoundConstants{C: p.RC[r]},
		)
	}
	return newFamily("arion", p.Width, p.Rate, prog)
}

func newMonolith() (*Family, error) {
	p, err := params.NewMonolith()
	if err != nil {
		return nil, err
	}
	prog := perm.Program{perm.Linear{M: p.M}}
	for r := range p.Rounds {
		prog = append(prog,
			perm.Bars{Lanes: p.BarLanes},
			perm.Bricks{},
			perm.Linear{M: p.M},
		)
		if r < p.Rounds-1 {
			prog = append(prog, perm.RoundConstants{C: p.RC[r]})
		}
	}
	return newFamily("monolith", p.Width, p.Rate, prog)
}
