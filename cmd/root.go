// =============================================================================
// Compute Sales - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself computes the sales report; the other commands are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (computesales <priceCatalogue> <salesRecord>)
//   ├── validateCmd (computesales validate <priceCatalogue> <salesRecord>)
//   └── versionCmd  (computesales version)
//
// EXIT CODES:
//   0 - the report was produced (even with warnings, even if saving it failed)
//   1 - usage error, unreadable input, or no valid product in the catalogue
//
// OUTPUT:
//   stdout carries the report and user-facing errors. Logs go to stderr.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/computesales/internal/compute"
	"github.com/ginjaninja78/computesales/internal/config"
	"github.com/ginjaninja78/computesales/internal/logging"
	"github.com/ginjaninja78/computesales/internal/report"
)

// usageLine is printed when the positional arguments are wrong.
const usageLine = "Usage: computesales priceCatalogue.json salesRecord.json"

// errReported marks failures whose message was already printed.
var errReported = errors.New("reported")

// =============================================================================
// GLOBAL OPTIONS
// =============================================================================

// options holds the values of the persistent flags.
type options struct {
	// cfgFile is the path to the YAML configuration file.
	cfgFile string

	// output overrides the results file from the configuration.
	output string

	// verbose enables debug logging.
	verbose bool

	// logFormat overrides the log format from the configuration.
	logFormat string
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "computesales <priceCatalogue> <salesRecord>",
		Short: "Compute the total cost of recorded sales from a price catalogue",
		Long: `computesales reads a price catalogue and a sales record, prices every
line item, and prints a report with the total of each sale and the grand
total. The same report is saved to SalesResults.txt.

Invalid catalogue entries, sales, or line items are listed as warnings and
skipped; they never stop the computation.

Input files may be JSON, YAML (.yaml/.yml), CSV (.csv), or Excel (.xlsx).

The names "help", "validate", and "version" are reserved for commands; pass
a catalogue file with one of those names as ./help, ./validate, or ./version.

Example Usage:
  computesales priceCatalogue.json salesRecord.json
  computesales -o results.txt prices.xlsx sales.csv
  computesales validate priceCatalogue.json salesRecord.json`,

		Args:          positionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, opts, args[0], args[1])
		},
	}

	// A catalogue path must never be mistaken for a shell name.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&opts.cfgFile,
		"config",
		"",
		"Path to the configuration file (default is "+config.DefaultPath+" if present)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	rootCmd.PersistentFlags().StringVar(
		&opts.logFormat,
		"log-format",
		"",
		"Log format: console or json",
	)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================

	rootCmd.Flags().StringVarP(
		&opts.output,
		"output",
		"o",
		"",
		"Path of the results file (default is "+report.DefaultFileName+")",
	)

	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI with the process arguments and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// positionalArgs requires exactly the catalogue and the sales record.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errReported
	}
	return nil
}

// runCompute produces, prints, and saves the report.
func runCompute(cmd *cobra.Command, opts *options, cataloguePath, salesPath string) error {
	out := cmd.OutOrStdout()

	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	result, err := compute.New(
		cataloguePath,
		salesPath,
		compute.WithLayout(report.Options{Width: cfg.BannerWidth, Title: cfg.ReportTitle}),
		compute.WithLogger(logger),
	).Run()
	if err != nil {
		fmt.Fprintln(out, compute.Describe(err))
		return errReported
	}

	fmt.Fprint(out, result.Text)

	// A failed save is reported but does not change the exit status.
	if err := report.WriteFile(cfg.OutputFile, result.Text); err != nil {
		fmt.Fprintf(out, "Error writing results to '%s': %v\n", cfg.OutputFile, err)
		logger.Warn().Err(err).Str("path", cfg.OutputFile).Msg("results not saved")
		return nil
	}

	logger.Info().Str("run_id", result.RunID).Str("path", cfg.OutputFile).Msg("results saved")
	return nil
}

// setup loads the configuration, applies flag overrides, and builds the logger.
func setup(cmd *cobra.Command, opts *options) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if opts.output != "" {
		cfg.OutputFile = opts.output
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid options: %w", err)
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	return cfg, logger, nil
}
