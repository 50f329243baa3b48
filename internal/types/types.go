// =============================================================================
// Compute Sales - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - catalogue
//   - sales
//   - report
//   - compute
//
// =============================================================================

package types

import (
	"strings"
	"time"
)

// =============================================================================
// PRICE TABLE
// =============================================================================

// PriceTable maps a normalized (trimmed) product name to its unit price.
// Every price stored in the table is non-negative.
type PriceTable map[string]float64

// NormalizeName returns the key under which a product name is stored.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Lookup returns the unit price for a product name.
// The name is normalized before the lookup.
func (p PriceTable) Lookup(name string) (float64, bool) {
	price, ok := p[NormalizeName(name)]
	return price, ok
}

// =============================================================================
// SALE RESULT
// =============================================================================

// SaleResult pairs a sale's position in the input with its computed total.
type SaleResult struct {
	// Index is the zero-based position of the sale in the sales record.
	// It is not an identifier taken from the data itself.
	Index int

	// Total is the unrounded sum of price * quantity over the priced items.
	Total float64
}

// =============================================================================
// REPORT
// =============================================================================

// Report holds everything rendered into the results artifact.
type Report struct {
	// Sales contains one result per sale that had an items field.
	Sales []SaleResult

	// GrandTotal is the sum of all Sales totals.
	GrandTotal float64

	// Elapsed is the wall-clock time spent loading and computing.
	Elapsed time.Duration

	// Warnings is the full diagnostics list of the run, in order.
	Warnings []string
}
