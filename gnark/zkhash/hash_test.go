package zkhash_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/zkhash"
	gzkhash "github.com/vocdoni/zkhash/gnark/zkhash"
	"github.com/vocdoni/zkhash/internal/params"
)

// hashCircuit hashes a rate-sized input and checks the digest.
type hashCircuit struct {
	Input    []frontend.Variable
	Expected []frontend.Variable `gnark:",public"`

	Family *zkhash.Family `gnark:"-"`
}

func (c *hashCircuit) Define(api frontend.API) error {
	out, err := gzkhash.Hash(api, c.Family, c.Input...)
	if err != nil {
		return err
	}
	for i := range out {
		api.AssertIsEqual(out[i], c.Expected[i])
	}
	return nil
}

func newHashCircuit(f *zkhash.Family) *hashCircuit {
	return &hashCircuit{
		Input:    make([]frontend.Variable, f.Rate()),
		Expected: make([]frontend.Variable, f.Rate()),
		Family:   f,
	}
}

func hashAssignment(t *testing.T, f *zkhash.Family, in []fr.Element) *hashCircuit {
	t.Helper()
	out, err := f.Hash(in)
	require.NoError(t, err)
	c := newHashCircuit(f)
	for i := range in {
		c.Input[i] = in[i]
	}
	for i := range out {
		c.Expected[i] = out[i]
	}
	return c
}

func TestCircuitMatchesNative(t *testing.T) {
	for _, f := range zkhash.Families() {
		t.Run(f.Name(), func(t *testing.T) {
			in := zkhash.Input(f.Rate())
			require.NoError(t, test.IsSolved(newHashCircuit(f), hashAssignment(t, f, in), ecc.BLS12_377.ScalarField()))

			other := make([]fr.Element, f.Rate())
			for i := range other {
				other[i].SetRandom()
			}
			require.NoError(t, test.IsSolved(newHashCircuit(f), hashAssignment(t, f, other), ecc.BLS12_377.ScalarField()))
		})
	}
}

func TestCircuitRejectsWrongDigest(t *testing.T) {
	for _, f := range zkhash.Families() {
		w := hashAssignment(t, f, zkhash.Input(f.Rate()))
		var bad fr.Element
		bad.SetUint64(1)
		w.Expected[0] = bad
		require.Error(t, test.IsSolved(newHashCircuit(f), w, ecc.BLS12_377.ScalarField()), f.Name())
	}
}

func TestProverSucceeded(t *testing.T) {
	assert := test.NewAssert(t)
	families := []*zkhash.Family{zkhash.Griffin(), zkhash.Monolith()}
	if !testing.Short() {
		families = zkhash.Families()
	}
	for _, f := range families {
		assert.Run(func(assert *test.Assert) {
			assert.ProverSucceeded(
				newHashCircuit(f),
				hashAssignment(t, f, zkhash.Input(f.Rate())),
				test.WithCurves(ecc.BLS12_377),
				test.WithBackends(backend.GROTH16, backend.PLONK),
			)
		}, f.Name())
	}
}

// permuteCircuit checks the full-width permutation.
type permuteCircuit struct {
	State    []frontend.Variable
	Expected []frontend.Variable `gnark:",public"`

	Family *zkhash.Family `gnark:"-"`
}

func (c *permuteCircuit) Define(api frontend.API) error {
	out, err := gzkhash.New(api).Permute(c.Family, c.State)
	if err != nil {
		return err
	}
	for i := range out {
		api.AssertIsEqual(out[i], c.Expected[i])
	}
	return nil
}

func TestPermuteMatchesNative(t *testing.T) {
	for _, f := range zkhash.Families() {
		state := zkhash.Input(f.Width())
		want := append([]fr.Element(nil), state...)
		require.NoError(t, f.Permute(want))

		w := &permuteCircuit{
			State:    make([]frontend.Variable, f.Width()),
			Expected: make([]frontend.Variable, f.Width()),
			Family:   f,
		}
		for i := range state {
			w.State[i], w.Expected[i] = state[i], want[i]
		}
		c := &permuteCircuit{
			State:    make([]frontend.Variable, f.Width()),
			Expected: make([]frontend.Variable, f.Width()),
			Family:   f,
		}
		require.NoError(t, test.IsSolved(c, w, ecc.BLS12_377.ScalarField()), f.Name())

		_, err := frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, &permuteCircuit{
			State:    make([]frontend.Variable, f.Width()+1),
			Expected: make([]frontend.Variable, f.Width()+1),
			Family:   f,
		})
		require.Error(t, err, f.Name())
	}
}

// barCircuit checks a single Monolith bar.
type barCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *barCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(gzkhash.New(api).Bar(c.X), c.Y)
	return nil
}

// barInputs covers a low value and both values whose high block is the top
// one, which the bar leaves unchanged.
func barInputs() map[string]fr.Element {
	var low, top, minusOne fr.Element
	low.SetUint64(0x0102030405060708)
	top.SetBigInt(new(big.Int).Lsh(params.BarTop(), params.BarBits))
	top.Add(&top, new(fr.Element).SetUint64(7))
	minusOne.SetOne().Neg(&minusOne)
	return map[string]fr.Element{"low": low, "top+7": top, "r-1": minusOne}
}

func TestBar(t *testing.T) {
	for name, x := range barInputs() {
		y := params.Bar(&x)
		if name != "low" {
			require.True(t, y.Equal(&x), name)
		}
		require.NoError(t, test.IsSolved(&barCircuit{}, &barCircuit{X: x, Y: y}, ecc.BLS12_377.ScalarField()), name)

		var bad fr.Element
		bad.Add(&y, new(fr.Element).SetOne())
		require.Error(t, test.IsSolved(&barCircuit{}, &barCircuit{X: x, Y: bad}, ecc.BLS12_377.ScalarField()), name)
	}
}

// sumCircuit checks a variable-length digest.
type sumCircuit struct {
	Inputs   []frontend.Variable
	Expected frontend.Variable `gnark:",public"`

	Family *zkhash.Family `gnark:"-"`
}

func (c *sumCircuit) Define(api frontend.API) error {
	out, err := gzkhash.Sum(api, c.Family, c.Inputs...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestSumMatchesNative(t *testing.T) {
	for _, f := range zkhash.Families() {
		for _, n := range []int{1, f.Rate(), 2*f.Rate() + 1} {
			in := make([]fr.Element, n)
			vars := make([]frontend.Variable, n)
			for i := range in {
				in[i].SetUint64(uint64(i + 1))
				vars[i] = in[i]
			}
			want, err := f.Sum(in...)
			require.NoError(t, err)
			err = test.IsSolved(
				&sumCircuit{Inputs: make([]frontend.Variable, n), Family: f},
				&sumCircuit{Inputs: vars, Expected: want, Family: f},
				ecc.BLS12_377.ScalarField(),
			)
			require.NoError(t, err, "%s n=%d", f.Name(), n)
		}
	}
}

// rootCircuit checks the root gadget in isolation.
type rootCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *rootCircuit) Define(api frontend.API) error {
	a := gzkhash.New(api)
	api.AssertIsEqual(a.Root(c.X, 17), c.Y)
	return nil
}

func TestRoot(t *testing.T) {
	assert := test.NewAssert(t)
	var x, y fr.Element
	x.SetUint64(1234)
	y.Exp(x, params.InverseExponent(17))
	assert.ProverSucceeded(&rootCircuit{}, &rootCircuit{X: x, Y: y},
		test.WithCurves(ecc.BLS12_377), test.WithBackends(backend.GROTH16))
	assert.ProverFailed(&rootCircuit{}, &rootCircuit{X: x, Y: x},
		test.WithCurves(ecc.BLS12_377), test.WithBackends(backend.GROTH16))
}

func TestConstraintCounts(t *testing.T) {
	for _, f := range zkhash.Families() {
		r1, err := frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, newHashCircuit(f))
		require.NoError(t, err)
		s1, err := frontend.Compile(ecc.BLS12_377.ScalarField(), scs.NewBuilder, newHashCircuit(f))
		require.NoError(t, err)
		t.Logf("%-8s gate wires %4d  r1cs %6d  scs %6d", f.Name(), f.GateWires(), r1.GetNbConstraints(), s1.GetNbConstraints())
	}
}
