// Command logprob quantizes two nearby log probabilities and prints their
// codes alongside the values recovered from them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	logprob "github.com/shabbyrobe/go-logprob"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	a, b    float32
	verbose bool
	dump    bool
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "logprob",
		Short: "Quantize two log probabilities and show the round trip",
		Long: `logprob converts two log probabilities into 16-bit codes, converts
them back, and prints both codes followed by both recovered values.

Inputs at or above 0 are clamped to unity (code 0); inputs below -87.33655
are clamped to the minimum (code 65535).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), logger, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float32Var(&opts.a, "a", -40.0, "first log probability")
	flags.Float32Var(&opts.b, "b", -40.001, "second log probability")
	flags.BoolVar(&opts.dump, "dump", false, "dump both values with spew")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// newLogger builds a production-style JSON logger that writes to w rather
// than the process's stderr.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func run(w io.Writer, logger *zap.Logger, opts options) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := logprob.LogProbFromFloat32(opts.a)
	b := logprob.LogProbFromFloat32(opts.b)

	logger.Debug("quantized",
		zap.Float32("a", opts.a), zap.Uint16("a_code", a.Raw()),
		zap.Float32("b", opts.b), zap.Uint16("b_code", b.Raw()),
		zap.Int("cmp", a.Cmp(b)))

	for _, in := range []float32{opts.a, opts.b} {
		if _, ok := logprob.LogProbFromFloat64(float64(in)); !ok {
			logger.Info("input clamped", zap.Float32("value", in))
		}
	}

	if _, err := fmt.Fprintf(w, "%d, %d, %s, %s\n", a.Raw(), b.Raw(), a, b); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if opts.dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true}
		cfg.Fdump(w, a, b)
	}
	return nil
}
