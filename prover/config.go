// Package prover builds, witnesses, proves and verifies circuits chaining
// zkhash sponge applications, on top of the gnark Groth16 and PLONK
// backends.
package prover

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"

	"github.com/vocdoni/zkhash"
)

const (
	Groth16 = backend.GROTH16
	PLONK   = backend.PLONK
)

// Config sizes and selects the proving system.
type Config struct {
	Backend backend.ID
	// Emulated hosts the circuit on BW6-761 with emulated BLS12-377
	// arithmetic instead of natively on BLS12-377.
	Emulated bool

	NumWires       int
	NumRoutedWires int
	// MaxConstraints bounds the compiled circuit. Zero means unbounded.
	MaxConstraints int
}

// StandardConfig is the baseline configuration every family config is
// derived from.
func StandardConfig() Config {
	return Config{
		Backend:        Groth16,
		NumWires:       135,
		NumRoutedWires: 80,
	}
}

// MinimumWires is the smallest wire budget able to hold one permutation of f.
func MinimumWires(f *zkhash.Family) int {
	return max(f.GateWires(), StandardConfig().NumWires)
}

// ConfigFor returns the standard configuration widened to fit f.
func ConfigFor(f *zkhash.Family) Config {
	cfg := StandardConfig()
	cfg.NumWires = MinimumWires(f)
	cfg.NumRoutedWires = cfg.NumWires
	return cfg
}

// Validate checks the configuration on its own.
func (c Config) Validate() error {
	switch c.Backend {
	case Groth16, PLONK:
	default:
		return failf(ErrConfiguration, "unsupported backend %s", c.Backend)
	}
	if c.NumWires <= 0 || c.NumRoutedWires <= 0 {
		return failf(ErrConfiguration, "wire counts must be positive, got %d/%d", c.NumWires, c.NumRoutedWires)
	}
	if c.NumRoutedWires > c.NumWires {
		return failf(ErrConfiguration, "%d routed wires exceed %d wires", c.NumRoutedWires, c.NumWires)
	}
	if c.MaxConstraints < 0 {
		return failf(ErrConfiguration, "negative constraint budget %d", c.MaxConstraints)
	}
	return nil
}

// check validates c for a circuit of family f.
func (c Config) check(f *zkhash.Family) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if need := MinimumWires(f); c.NumWires < need || c.NumRoutedWires < need {
		return failf(ErrConfiguration, "%s needs %d wires, config has %d (%d routed)",
			f.Name(), need, c.NumWires, c.NumRoutedWires)
	}
	return nil
}

func (c Config) curve() ecc.ID {
	if c.Emulated {
		return ecc.BW6_761
	}
	return ecc.BLS12_377
}
