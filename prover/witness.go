package prover

import (
	"math/big"

	fr377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	fr761 "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/pkg/errors"

	emzkhash "github.com/vocdoni/zkhash/gnark/emulated/zkhash"
)

// Witness is a full assignment of a description's circuit. It belongs to a
// single proving session.
type Witness struct {
	desc   *Description
	input  []fr377.Element
	trace  [][]fr377.Element
	full   witness.Witness
	public witness.Witness
}

// Public is the public part of a witness: the claimed digest.
type Public struct {
	desc *Description
	w    witness.Witness
}

// Assign replays the native sponge over input, records every application's
// digest as a trace row and checks the resulting assignment against the
// compiled circuit before handing it to the backend.
func Assign(d *Description, input []fr377.Element) (*Witness, error) {
	f := d.family
	if len(input) != f.Rate() {
		return nil, errors.Errorf("prover: %s takes %d inputs, got %d", f.Name(), f.Rate(), len(input))
	}
	end := d.tt.Span("replay")
	trace := make([][]fr377.Element, d.depth)
	cur := input
	for i := range trace {
		var err error
		if cur, err = f.Hash(cur); err != nil {
			end()
			return nil, fail(ErrInconsistentTrace, err, "native replay")
		}
		trace[i] = cur
	}
	end()
	return d.solve(input, trace)
}

// solve builds the witness for input and trace and runs the constraint
// system's solver on it. A trace the circuit does not accept fails with
// ErrInconsistentTrace.
func (d *Description) solve(input []fr377.Element, trace [][]fr377.Element) (*Witness, error) {
	defer d.tt.Span("solve")()
	full, err := frontend.NewWitness(assign(d.family, input, trace, d.cfg.Emulated), d.field())
	if err != nil {
		return nil, fail(ErrInconsistentTrace, err, "witness")
	}
	if err := d.ccs.IsSolved(full); err != nil {
		return nil, fail(ErrInconsistentTrace, err, "trace does not satisfy the circuit")
	}
	public, err := full.Public()
	if err != nil {
		return nil, fail(ErrInconsistentTrace, err, "public witness")
	}
	return &Witness{
		desc:   d,
		input:  append([]fr377.Element(nil), input...),
		trace:  trace,
		full:   full,
		public: public,
	}, nil
}

// Input is the sponge input the witness starts from.
func (w *Witness) Input() []fr377.Element {
	return append([]fr377.Element(nil), w.input...)
}

// Digest is the native digest the witness was built from.
func (w *Witness) Digest() []fr377.Element {
	return append([]fr377.Element(nil), w.trace[len(w.trace)-1]...)
}

// Trace returns the digests of every chained application.
func (w *Witness) Trace() [][]fr377.Element {
	out := make([][]fr377.Element, len(w.trace))
	for i := range w.trace {
		out[i] = append([]fr377.Element(nil), w.trace[i]...)
	}
	return out
}

// Public returns the public part of the witness.
func (w *Witness) Public() *Public {
	return &Public{desc: w.desc, w: w.public}
}

// PublicOutputs reads the values of the designated output wires back from
// the public witness.
func (w *Witness) PublicOutputs() ([]fr377.Element, error) {
	return w.Public().Outputs()
}

// PublicData builds verifier input from a claimed digest alone.
func (d *Description) PublicData(digest []fr377.Element) (*Public, error) {
	if len(digest) != d.family.Rate() {
		return nil, errors.Errorf("prover: %s digest has %d elements, got %d", d.family.Name(), d.family.Rate(), len(digest))
	}
	trace := make([][]fr377.Element, d.depth)
	for i := range trace[:d.depth-1] {
		trace[i] = make([]fr377.Element, len(digest))
	}
	trace[d.depth-1] = digest
	input := make([]fr377.Element, len(digest))

	w, err := frontend.NewWitness(assign(d.family, input, trace, d.cfg.Emulated), d.field(), frontend.PublicOnly())
	if err != nil {
		return nil, errors.Wrap(err, "public witness")
	}
	return &Public{desc: d, w: w}, nil
}

// Outputs decodes the public vector into digest elements. Emulated
// elements are recomposed from their limbs.
func (p *Public) Outputs() ([]fr377.Element, error) {
	rate := p.desc.family.Rate()
	switch vec := p.w.Vector().(type) {
	case fr377.Vector:
		if len(vec) != rate {
			return nil, errors.Errorf("prover: public vector has %d entries, want %d", len(vec), rate)
		}
		return append([]fr377.Element(nil), vec...), nil
	case fr761.Vector:
		var params emzkhash.FrParams
		nb, width := int(params.NbLimbs()), params.BitsPerLimb()
		if len(vec) != rate*nb {
			return nil, errors.Errorf("prover: public vector has %d limbs, want %d", len(vec), rate*nb)
		}
		out := make([]fr377.Element, rate)
		for i := range out {
			v := new(big.Int)
			for k := nb - 1; k >= 0; k-- {
				v.Lsh(v, width)
				v.Add(v, vec[i*nb+k].BigInt(new(big.Int)))
			}
			out[i].SetBigInt(v)
		}
		return out, nil
	default:
		return nil, errors.Errorf("prover: unexpected public vector %T", vec)
	}
}
