package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vocdoni/zkhash"
	"github.com/vocdoni/zkhash/prover"
)

type options struct {
	depth    int
	backend  string
	emulated bool
	logLevel string
}

var opts options

var rootCmd = &cobra.Command{
	Use:           "zkhash",
	Short:         "Prove and verify algebraic hash evaluations with gnark",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(lvl).With().Timestamp().Logger())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&opts.depth, "depth", 1, "number of chained sponge applications")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "groth16", "proof system: groth16 or plonk")
	rootCmd.PersistentFlags().BoolVar(&opts.emulated, "emulated", false, "emulate BLS12-377 Fr on BW6-761")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "zerolog level")

	for _, f := range zkhash.Families() {
		rootCmd.AddCommand(familyCmd(f))
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every family in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range zkhash.Families() {
				if err := run(cmd.OutOrStdout(), f, opts); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func familyCmd(f *zkhash.Family) *cobra.Command {
	return &cobra.Command{
		Use:   f.Name(),
		Short: fmt.Sprintf("Hash [0..%d] with %s, then prove and verify it", f.Rate()-1, f.Name()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), f, opts)
		},
	}
}

func (o options) config(f *zkhash.Family) (prover.Config, error) {
	cfg := prover.ConfigFor(f)
	switch strings.ToLower(o.backend) {
	case "groth16":
		cfg.Backend = backend.GROTH16
	case "plonk":
		cfg.Backend = backend.PLONK
	default:
		return cfg, fmt.Errorf("unknown backend %q", o.backend)
	}
	cfg.Emulated = o.emulated
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
