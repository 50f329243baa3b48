// =============================================================================
// Compute Sales - Validate Command
// =============================================================================
//
// This file defines the 'validate' command. It runs the full computation but
// only prints what was wrong with the input; no results file is written.
//
// COMMAND USAGE:
//   computesales validate <priceCatalogue> <salesRecord>
//
// OUTPUT:
//   Products:     3
//   Sales:        2
//   Priced items: 4
//   Warnings:     1
//     - Sale 1, item 0: product 'Unknown' not in catalogue.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/computesales/internal/compute"
)

// newValidateCmd builds the 'validate' command.
func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <priceCatalogue> <salesRecord>",
		Short: "Check the input files and list invalid records",
		Long: `The validate command loads both files and checks every catalogue entry,
sale, and line item exactly as a normal run would. It prints a summary and
the list of warnings, and never writes the results file.

It exits with status 1 under the same conditions as a normal run.`,

		Args: positionalArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			_, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			result, err := compute.New(args[0], args[1], compute.WithLogger(logger)).Run()
			if err != nil {
				fmt.Fprintln(out, compute.Describe(err))
				return errReported
			}

			fmt.Fprintf(out, "Products:     %d\n", result.Products)
			fmt.Fprintf(out, "Sales:        %d\n", len(result.Report.Sales))
			fmt.Fprintf(out, "Priced items: %d\n", result.PricedItems)
			fmt.Fprintf(out, "Warnings:     %d\n", len(result.Report.Warnings))
			for _, w := range result.Report.Warnings {
				fmt.Fprintf(out, "  - %s\n", w)
			}
			return nil
		},
	}
}
