package params

// NewPoseidon returns the width-3 Poseidon parameter set.
func NewPoseidon() (*Poseidon, error) {
	p := &Poseidon{
		Width:         3,
		Rate:          2,
		FullRounds:    8,
		PartialRounds: 31,
		Alpha:         Alpha,
	}
	p.ARC = Rows(Derive("zkhash.poseidon.arc", (p.FullRounds+p.PartialRounds)*p.Width), p.Width)
	p.MDS = Cauchy(p.Width)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewMiMC returns the MiMC Feistel parameter set: 2*ceil(253/log2(17)) rounds.
func NewMiMC() (*MiMC, error) {
	p := &MiMC{
		Width:  2,
		Rate:   1,
		Rounds: 124,
		Alpha:  Alpha,
	}
	p.C = Derive("zkhash.mimc.rc", p.Rounds)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewAnemoi returns the two-column Anemoi parameter set.
func NewAnemoi() (*Anemoi, error) {
	p := &Anemoi{
		Columns: 2,
		Rate:    3,
		Rounds:  14,
		Alpha:   Alpha,
	}
	p.G.SetUint64(Generator)
	p.GInv.Inverse(&p.G)
	flat := Derive("zkhash.anemoi.rc", 2*p.Columns*p.Rounds)
	for r := range p.Rounds {
		row := flat[2*p.Columns*r : 2*p.Columns*(r+1)]
		p.C = append(p.C, row[:p.Columns:p.Columns])
		p.D = append(p.D, row[p.Columns:])
	}
	p.Linear = anemoiLinear(p.G)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewGriffin returns the width-3 Griffin parameter set.
func NewGriffin() (*Griffin, error) {
	p := &Griffin{
		Width:  3,
		Rate:   2,
		Rounds: 12,
		Alpha:  Alpha,
	}
	p.RC = Rows(Derive("zkhash.griffin.rc", (p.Rounds-1)*p.Width), p.Width)
	p.M = Circulant(2, 1, 1)
	ab := Derive("zkhash.griffin.ab", 2*(p.Width-2))
	for i := 0; i < p.Width-2; i++ {
		p.AlphaI = append(p.AlphaI, ab[2*i])
		p.BetaI = append(p.BetaI, nonResidueQuadratic(ab[2*i], ab[2*i+1]))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewArion returns the width-3 Arion parameter set.
func NewArion() (*Arion, error) {
	p := &Arion{
		Width:  3,
		Rate:   2,
		Rounds: 6,
		D:      Alpha,
		E:      ArionE,
	}
	p.RC = Rows(Derive("zkhash.arion.rc", p.Rounds*p.Width), p.Width)
	p.M = Circulant(1, 2, 3)
	gh := Derive("zkhash.arion.gh", 3*(p.Width-1))
	for i := 0; i < p.Width-1; i++ {
		p.G1 = append(p.G1, gh[3*i])
		p.G2 = append(p.G2, nonResidueQuadratic(gh[3*i], gh[3*i+1]))
		p.H = append(p.H, gh[3*i+2])
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewMonolith returns the width-4 Monolith parameter set.
func NewMonolith() (*Monolith, error) {
	p := &Monolith{
		Width:    4,
		Rate:     3,
		Rounds:   6,
		BarLanes: 2,
	}
	p.RC = Rows(Derive("zkhash.monolith.rc", (p.Rounds-1)*p.Width), p.Width)
	p.M = Circulant(2, 3, 1, 1)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
