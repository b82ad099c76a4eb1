package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/vocdoni/zkhash"
	"github.com/vocdoni/zkhash/internal/timing"
	"github.com/vocdoni/zkhash/prover"
)

// run hashes [0..rate-1] natively, then builds, witnesses, proves and
// verifies the same computation.
func run(out io.Writer, f *zkhash.Family, o options) error {
	tt := timing.New(f.Name())
	defer tt.Print()

	cfg, err := o.config(f)
	if err != nil {
		return err
	}
	input := zkhash.Input(f.Rate())
	digest, err := f.Chain(input, o.depth)
	if err != nil {
		return err
	}
	for i := range digest {
		fmt.Fprintf(out, "%s[%d] = %s\n", f.Name(), i, digest[i].BigInt(new(big.Int)))
	}

	end := tt.Span("build")
	d, err := prover.Build(f, o.depth, cfg, prover.WithTiming(tt))
	end()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s constructing proof with %d constraints\n", f.Name(), d.NbConstraints())
	s := d.NewSession()

	end = tt.Span("witness")
	_, err = s.Assign(input)
	end()
	if err != nil {
		return err
	}

	end = tt.Span("prove")
	proof, err := s.Prove()
	end()
	if err != nil {
		return err
	}
	size, err := proof.Size()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s proof length: %d bytes\n", f.Name(), size)

	end = tt.Span("verify")
	err = s.Verify()
	end()
	return err
}
