package prover

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/schema"
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"

	"github.com/vocdoni/zkhash"
	"github.com/vocdoni/zkhash/internal/timing"
)

// Wire is a handle on an input or output lane of a built circuit.
type Wire struct {
	Name       string
	Index      int
	Visibility schema.Visibility
}

// Option tunes Build.
type Option func(*Description)

// WithTiming records the compile, setup, solve, prove and verify stages of
// the description and its sessions as spans of tt.
func WithTiming(tt *timing.Tree) Option {
	return func(d *Description) { d.tt = tt }
}

// Description is a compiled circuit with its proving and verifying keys.
// It is immutable once built and may be shared by concurrent sessions.
type Description struct {
	family *zkhash.Family
	depth  int
	cfg    Config
	tt     *timing.Tree

	ccs     constraint.ConstraintSystem
	engine  engine
	inputs  []Wire
	outputs []Wire
}

// Build compiles a circuit chaining depth sponge applications of f and sets
// up the backend keys. Undersized configurations fail with ErrConfiguration
// before anything is compiled.
func Build(f *zkhash.Family, depth int, cfg Config, opts ...Option) (*Description, error) {
	if depth < 1 {
		return nil, failf(ErrConfiguration, "chain depth must be positive, got %d", depth)
	}
	if err := cfg.check(f); err != nil {
		return nil, err
	}
	d := &Description{
		family: f,
		depth:  depth,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(d)
	}
	log := logger.Logger().With().
		Str("family", f.Name()).
		Int("depth", depth).
		Str("backend", cfg.Backend.String()).
		Bool("emulated", cfg.Emulated).
		Logger()

	curve := cfg.curve()
	end := d.tt.Span("compile")
	ccs, err := frontend.Compile(curve.ScalarField(), builderFor(cfg.Backend), newCircuit(f, depth, cfg.Emulated))
	end()
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s circuit", f.Name())
	}
	n := ccs.GetNbConstraints()
	log.Info().Int("constraints", n).Msg("circuit compiled")
	if cfg.MaxConstraints > 0 && n > cfg.MaxConstraints {
		return nil, failf(ErrResourceExhausted, "%s circuit has %d constraints, budget is %d", f.Name(), n, cfg.MaxConstraints)
	}

	end = d.tt.Span("setup")
	eng, err := setup(cfg.Backend, curve, ccs)
	end()
	if err != nil {
		return nil, err
	}
	log.Debug().Msg("keys ready")

	d.ccs, d.engine = ccs, eng
	for i := range f.Rate() {
		d.inputs = append(d.inputs, Wire{Name: fmt.Sprintf("Input[%d]", i), Index: i, Visibility: schema.Secret})
		d.outputs = append(d.outputs, Wire{Name: fmt.Sprintf("Output[%d]", i), Index: i, Visibility: schema.Public})
	}
	return d, nil
}

func (d *Description) Family() *zkhash.Family { return d.family }

// Depth is the number of chained sponge applications.
func (d *Description) Depth() int     { return d.depth }
func (d *Description) Config() Config { return d.cfg }

// Inputs returns the private input wires, one per rate lane.
func (d *Description) Inputs() []Wire { return append([]Wire(nil), d.inputs...) }

// Outputs returns the public output wires, one per rate lane.
func (d *Description) Outputs() []Wire { return append([]Wire(nil), d.outputs...) }

// NbConstraints is the size of the compiled circuit.
func (d *Description) NbConstraints() int { return d.ccs.GetNbConstraints() }

func (d *Description) field() *big.Int { return d.cfg.curve().ScalarField() }
