package params

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// Poseidon bundles the constants of the Poseidon permutation.
type Poseidon struct {
	Width         int
	Rate          int
	FullRounds    int
	PartialRounds int
	Alpha         uint64

	// ARC holds one row of round constants per round.
	ARC [][]fr.Element
	MDS [][]fr.Element
}

// MiMC bundles the constants of the two-lane MiMC Feistel permutation.
type MiMC struct {
	Width  int
	Rate   int
	Rounds int
	Alpha  uint64

	C []fr.Element
}

// Anemoi bundles the constants of the Anemoi permutation with Columns
// columns, i.e. a state of 2*Columns lanes laid out as (x_0..x_l, y_0..y_l).
type Anemoi struct {
	Columns int
	Rate    int
	Rounds  int
	Alpha   uint64

	G    fr.Element
	GInv fr.Element

	C [][]fr.Element
	D [][]fr.Element

	// Linear is the full 2l x 2l linear layer: M on x, M on the rotated y,
	// followed by the pseudo-Hadamard transform.
	Linear [][]fr.Element
}

// Griffin bundles the constants of the Griffin permutation.
type Griffin struct {
	Width  int
	Rate   int
	Rounds int
	Alpha  uint64

	// RC holds one row per round except the last one.
	RC [][]fr.Element
	M  [][]fr.Element

	// AlphaI and BetaI are indexed by lane-2.
	AlphaI []fr.Element
	BetaI  []fr.Element
}

// Arion bundles the constants of the Arion permutation.
type Arion struct {
	Width  int
	Rate   int
	Rounds int
	D      uint64
	E      uint64

	RC [][]fr.Element
	M  [][]fr.Element

	// G1, G2 define g_i(x) = x^2 + G1[i]*x + G2[i], H defines
	// h_i(x) = x^2 + H[i]*x. All are indexed by lane for lanes 0..Width-2.
	G1 []fr.Element
	G2 []fr.Element
	H  []fr.Element
}

// Monolith bundles the constants of the Monolith permutation.
type Monolith struct {
	Width    int
	Rate     int
	Rounds   int
	BarLanes int

	// RC holds one row per round except the last one.
	RC [][]fr.Element
	M  [][]fr.Element
}
