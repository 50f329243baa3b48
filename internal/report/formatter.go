// =============================================================================
// Compute Sales - Report Formatter
// =============================================================================
//
// This module renders a Report into the fixed text layout shown on the
// console and saved to the results file. Both outputs use the same string,
// so they are byte-identical.
//
// LAYOUT:
//   ============================================================
//   SALES RESULTS
//   ============================================================
//
//   WARNINGS / INVALID DATA (execution continued):   <- only with warnings
//   ------------------------------------------------------------
//     - Sale 1, item 0: product 'Unknown' not in catalogue.
//
//   ------------------------------------------------------------
//
//   SALE BREAKDOWN
//   ------------------------------------------------------------
//     Sale #0: 10.00
//   ------------------------------------------------------------
//   GRAND TOTAL: 10.00
//
//   ============================================================
//   Elapsed time: 0.000321 seconds
//   ============================================================
//
// ROUNDING:
//   Money is formatted with two decimals and time with six, using strconv's
//   correctly rounded conversion: the exact binary value of the float64 is
//   rounded to the nearest decimal, ties to even. Totals are never rounded
//   before this point.
//
// =============================================================================

package report

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/computesales/internal/types"
)

// DefaultWidth is the width of banner and separator lines.
const DefaultWidth = 60

// Options control the report layout.
type Options struct {
	// Width is the number of characters in banner and separator lines.
	Width int

	// Title is the heading printed between the top banners.
	Title string
}

// DefaultOptions returns the standard layout.
func DefaultOptions() Options {
	return Options{
		Width: DefaultWidth,
		Title: "SALES RESULTS",
	}
}

// Format renders the report. The result ends with a single newline.
func Format(r types.Report, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}

	banner := strings.Repeat("=", opts.Width)
	separator := strings.Repeat("-", opts.Width)

	lines := []string{banner, opts.Title, banner, ""}

	if len(r.Warnings) > 0 {
		lines = append(lines, "WARNINGS / INVALID DATA (execution continued):", separator)
		for _, w := range r.Warnings {
			lines = append(lines, "  - "+w)
		}
		lines = append(lines, "", separator, "")
	}

	lines = append(lines, "SALE BREAKDOWN", separator)
	for _, sale := range r.Sales {
		lines = append(lines, "  Sale #"+strconv.Itoa(sale.Index)+": "+FormatMoney(sale.Total))
	}
	lines = append(lines,
		separator,
		"GRAND TOTAL: "+FormatMoney(r.GrandTotal),
		"",
		banner,
		"Elapsed time: "+FormatSeconds(r.Elapsed.Seconds())+" seconds",
		banner,
	)

	return strings.Join(lines, "\n") + "\n"
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatSeconds renders a duration in seconds with exactly six decimals.
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 6, 64)
}
