package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/memogen/internal/fixture"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// defaultOut is the document written when no --out is given.
const defaultOut = "sample_entries.json"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// sourceFlags selects the document to generate.
type sourceFlags struct {
	set      string
	fixtures string
	strict   bool
}

// generateFlags holds the parsed flags for the generate command.
type generateFlags struct {
	sourceFlags
	out    string
	format string
}

func defaultGenerateFlags() generateFlags {
	return generateFlags{
		sourceFlags: sourceFlags{set: fixture.DefaultSet},
		out:         defaultOut,
		format:      "json",
	}
}

var (
	verbose bool
	logger  *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	osFs := afero.NewOsFs()

	root := &cobra.Command{
		Use:   "memogen",
		Short: "Generate memo trace entry fixtures",
		Long: `memogen writes synthetic memo trace entries (start_pc, ctx_hash, writes,
next_pc) as a JSON document for the memoization unit's test benches.

Run without arguments to write the sample set to ` + defaultOut + `.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(logger, osFs, defaultGenerateFlags())
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log processing steps at debug level")

	gen := defaultGenerateFlags()
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a fixture document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(logger, osFs, gen)
		},
	}
	f := generateCmd.Flags()
	f.StringVar(&gen.out, "out", defaultOut, `Output path ("-" for stdout)`)
	f.StringVar(&gen.format, "format", "json", "Output format: json or md")
	addSourceFlags(generateCmd, &gen.sourceFlags)

	var src sourceFlags
	verifyCmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a fixture document for validity and drift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(logger, osFs, args[0], src)
		},
	}
	addSourceFlags(verifyCmd, &src)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the memogen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	root.AddCommand(generateCmd, verifyCmd, versionCmd)
	return root
}

func addSourceFlags(cmd *cobra.Command, src *sourceFlags) {
	f := cmd.Flags()
	f.StringVar(&src.set, "set", fixture.DefaultSet, "Built-in fixture set")
	f.StringVar(&src.fixtures, "fixtures", "", "YAML fixture file (overrides --set)")
	f.BoolVar(&src.strict, "strict", false, "Reject out-of-range fixture values instead of masking them")
}
