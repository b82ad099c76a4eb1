package prover

import (
	"bytes"
	"io"

	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"
)

// Proof is a backend proof bound to the description it was produced for.
type Proof struct {
	data proofData
}

// MarshalBinary serializes the proof with the backend encoding.
func (p *Proof) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.data.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "serialize proof")
	}
	return buf.Bytes(), nil
}

// Size is the serialized length of the proof in bytes.
func (p *Proof) Size() (int64, error) {
	return p.data.WriteTo(io.Discard)
}

// ReadProof decodes a proof serialized by Proof.MarshalBinary.
func (d *Description) ReadProof(b []byte) (*Proof, error) {
	data := d.engine.newProof()
	if _, err := data.ReadFrom(bytes.NewReader(b)); err != nil {
		return nil, errors.Wrap(err, "read proof")
	}
	return &Proof{data: data}, nil
}

// Prove runs the backend prover on w. A witness that does not satisfy the
// circuit fails with ErrProver.
func (d *Description) Prove(w *Witness) (*Proof, error) {
	if w == nil || w.desc != d {
		return nil, failf(ErrProver, "witness was not assigned for this circuit")
	}
	end := d.tt.Span("backend prove")
	data, err := d.engine.prove(d.ccs, w.full)
	end()
	if err != nil {
		return nil, fail(ErrProver, err, d.family.Name())
	}
	return &Proof{data: data}, nil
}

// Verify checks proof against public data only. Any failure is reported
// as ErrVerification.
func (d *Description) Verify(proof *Proof, public *Public) error {
	if proof == nil || public == nil || public.desc != d {
		return failf(ErrVerification, "missing proof or foreign public data")
	}
	end := d.tt.Span("backend verify")
	err := d.engine.verify(proof.data, public.w)
	end()
	if err != nil {
		return fail(ErrVerification, err, d.family.Name())
	}
	log := logger.Logger()
	log.Debug().Str("family", d.family.Name()).Msg("proof verified")
	return nil
}
