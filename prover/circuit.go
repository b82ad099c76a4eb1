package prover

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/zkhash"
	emzkhash "github.com/vocdoni/zkhash/gnark/emulated/zkhash"
	gzkhash "github.com/vocdoni/zkhash/gnark/zkhash"
)

// chainCircuit proves len(Trace) chained sponge applications starting from
// Input. Every application's digest is pinned to a trace row, which feeds
// the next application; the last row is the public Output.
type chainCircuit struct {
	Input  []frontend.Variable
	Trace  [][]frontend.Variable
	Output []frontend.Variable `gnark:",public"`

	Family *zkhash.Family `gnark:"-"`
}

func (c *chainCircuit) Define(api frontend.API) error {
	a := gzkhash.New(api)
	state := c.Input
	for i := range c.Trace {
		out, err := a.Hash(c.Family, state)
		if err != nil {
			return err
		}
		for j := range out {
			api.AssertIsEqual(out[j], c.Trace[i][j])
		}
		state = c.Trace[i]
	}
	for j := range state {
		api.AssertIsEqual(state[j], c.Output[j])
	}
	return nil
}

// emulatedChainCircuit is chainCircuit over emulated BLS12-377 scalars.
type emulatedChainCircuit struct {
	Input  []emzkhash.Element
	Trace  [][]emzkhash.Element
	Output []emzkhash.Element `gnark:",public"`

	Family *zkhash.Family `gnark:"-"`
}

func (c *emulatedChainCircuit) Define(api frontend.API) error {
	a, err := emzkhash.New(api)
	if err != nil {
		return err
	}
	field := a.Field()
	state := refs(c.Input)
	for i := range c.Trace {
		out, err := a.Hash(c.Family, state)
		if err != nil {
			return err
		}
		row := refs(c.Trace[i])
		for j := range out {
			field.AssertIsEqual(out[j], row[j])
		}
		state = row
	}
	for j := range state {
		field.AssertIsEqual(state[j], &c.Output[j])
	}
	return nil
}

func refs(es []emzkhash.Element) []*emzkhash.Element {
	out := make([]*emzkhash.Element, len(es))
	for i := range es {
		out[i] = &es[i]
	}
	return out
}

// newCircuit returns the circuit shape for depth applications of f.
func newCircuit(f *zkhash.Family, depth int, emulated bool) frontend.Circuit {
	rate := f.Rate()
	if emulated {
		c := &emulatedChainCircuit{
			Input:  make([]emzkhash.Element, rate),
			Trace:  make([][]emzkhash.Element, depth),
			Output: make([]emzkhash.Element, rate),
			Family: f,
		}
		for i := range c.Trace {
			c.Trace[i] = make([]emzkhash.Element, rate)
		}
		return c
	}
	c := &chainCircuit{
		Input:  make([]frontend.Variable, rate),
		Trace:  make([][]frontend.Variable, depth),
		Output: make([]frontend.Variable, rate),
		Family: f,
	}
	for i := range c.Trace {
		c.Trace[i] = make([]frontend.Variable, rate)
	}
	return c
}

// assign fills a circuit with concrete values. trace must have one row per
// application and its last row is used as the public output.
func assign(f *zkhash.Family, input []fr.Element, trace [][]fr.Element, emulated bool) frontend.Circuit {
	output := trace[len(trace)-1]
	if emulated {
		c := &emulatedChainCircuit{
			Input:  values(input),
			Trace:  make([][]emzkhash.Element, len(trace)),
			Output: values(output),
			Family: f,
		}
		for i, row := range trace {
			c.Trace[i] = values(row)
		}
		return c
	}
	c := &chainCircuit{
		Input:  variables(input),
		Trace:  make([][]frontend.Variable, len(trace)),
		Output: variables(output),
		Family: f,
	}
	for i, row := range trace {
		c.Trace[i] = variables(row)
	}
	return c
}

func variables(es []fr.Element) []frontend.Variable {
	out := make([]frontend.Variable, len(es))
	for i := range es {
		out[i] = es[i]
	}
	return out
}

func values(es []fr.Element) []emzkhash.Element {
	out := make([]emzkhash.Element, len(es))
	for i := range es {
		out[i] = emzkhash.ValueOf(es[i])
	}
	return out
}
