package prover

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/pkg/errors"
)

// proofData is the serializable part shared by Groth16 and PLONK proofs.
type proofData interface {
	io.WriterTo
	io.ReaderFrom
}

// engine holds the keys of one backend for one compiled circuit.
type engine interface {
	prove(ccs constraint.ConstraintSystem, full witness.Witness) (proofData, error)
	verify(p proofData, public witness.Witness) error
	newProof() proofData
}

func builderFor(id backend.ID) frontend.NewBuilder {
	if id == PLONK {
		return scs.NewBuilder
	}
	return r1cs.NewBuilder
}

func setup(id backend.ID, curve ecc.ID, ccs constraint.ConstraintSystem) (engine, error) {
	switch id {
	case Groth16:
		pk, vk, err := groth16.Setup(ccs)
		if err != nil {
			return nil, errors.Wrap(err, "groth16 setup")
		}
		return &groth16Engine{curve: curve, pk: pk, vk: vk}, nil
	case PLONK:
		srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
		if err != nil {
			return nil, errors.Wrap(err, "kzg srs")
		}
		pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
		if err != nil {
			return nil, errors.Wrap(err, "plonk setup")
		}
		return &plonkEngine{curve: curve, pk: pk, vk: vk}, nil
	default:
		return nil, errors.Errorf("unsupported backend %s", id)
	}
}

type groth16Engine struct {
	curve ecc.ID
	pk    groth16.ProvingKey
	vk    groth16.VerifyingKey
}

func (e *groth16Engine) prove(ccs constraint.ConstraintSystem, full witness.Witness) (proofData, error) {
	return groth16.Prove(ccs, e.pk, full)
}

func (e *groth16Engine) verify(p proofData, public witness.Witness) error {
	proof, ok := p.(groth16.Proof)
	if !ok {
		return errors.Errorf("not a groth16 proof: %T", p)
	}
	return groth16.Verify(proof, e.vk, public)
}

func (e *groth16Engine) newProof() proofData { return groth16.NewProof(e.curve) }

type plonkEngine struct {
	curve ecc.ID
	pk    plonk.ProvingKey
	vk    plonk.VerifyingKey
}

func (e *plonkEngine) prove(ccs constraint.ConstraintSystem, full witness.Witness) (proofData, error) {
	return plonk.Prove(ccs, e.pk, full)
}

func (e *plonkEngine) verify(p proofData, public witness.Witness) error {
	proof, ok := p.(plonk.Proof)
	if !ok {
		return errors.Errorf("not a plonk proof: %T", p)
	}
	return plonk.Verify(proof, e.vk, public)
}

func (e *plonkEngine) newProof() proofData { return plonk.NewProof(e.curve) }
