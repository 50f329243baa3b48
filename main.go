// =============================================================================
// Compute Sales - Main Entry Point
// =============================================================================
//
// USAGE:
//   computesales <priceCatalogue> <salesRecord>   - Print and save the sales report
//   computesales validate <catalogue> <sales>     - List invalid input records only
//   computesales version                          - Display the application version
//
// ARCHITECTURE:
//   cmd/                 : CLI command definitions (Cobra)
//   internal/loader      : Reads JSON, YAML, CSV, and XLSX inputs
//   internal/validation  : Shape checks and numeric coercion
//   internal/catalogue   : Builds the price table
//   internal/sales       : Prices each sale and aggregates totals
//   internal/report      : Renders and saves the report
//   internal/compute     : Runs the pipeline end to end
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/computesales/cmd"
)

func main() {
	cmd.Execute()
}
