package zkhash

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"
)

// FrParams defines the emulated parameters for the BLS12-377 scalar field.
type FrParams = emparams.BLS12377Fr

// Element is an emulated BLS12-377 scalar.
type Element = emulated.Element[FrParams]

// ValueOf converts a native scalar into an emulated witness value.
func ValueOf(e fr.Element) Element {
	return emulated.ValueOf[FrParams](e.BigInt(new(big.Int)))
}

func constElement(f *emulated.Field[FrParams], fe *fr.Element) *Element {
	return f.NewElement(fe.BigInt(new(big.Int)))
}
