// =============================================================================
// Compute Sales - Catalogue Builder
// =============================================================================
//
// Build turns the decoded price catalogue into a PriceTable.
//
// EXPECTED SHAPE:
//   [
//     {"title": "Widget", "price": 2.5},
//     {"title": "Gadget", "price": "10"}
//   ]
//
// Every entry is checked in order. A malformed entry is reported to the
// diagnostics collector and skipped; it never stops the remaining entries
// from being read. Entry numbers in messages are zero-based positions in
// the input list.
//
// =============================================================================

package catalogue

import (
	"github.com/ginjaninja78/computesales/internal/diagnostics"
	"github.com/ginjaninja78/computesales/internal/types"
	"github.com/ginjaninja78/computesales/internal/validation"
)

// Field names read from each catalogue entry.
const (
	FieldTitle = "title"
	FieldPrice = "price"
)

// Build validates raw catalogue entries and returns the resulting price table.
// The table may be empty; deciding whether that is fatal is up to the caller.
// When the same trimmed title appears more than once, the last entry wins.
func Build(raw any, diags *diagnostics.Collector) types.PriceTable {
	table := make(types.PriceTable)

	entries, ok := validation.AsList(raw)
	if !ok {
		diags.Add("Catalogue must be a JSON array of products.")
		return table
	}

	for idx, entry := range entries {
		obj, ok := validation.AsObject(entry)
		if !ok {
			diags.Addf("Catalogue entry %d: expected object, got invalid type.", idx)
			continue
		}

		title, hasTitle := validation.Field(obj, FieldTitle)
		price, hasPrice := validation.Field(obj, FieldPrice)
		if !hasTitle || !hasPrice {
			diags.Addf("Catalogue entry %d: missing 'title' or 'price'.", idx)
			continue
		}

		name := validation.Text(title)
		value, err := validation.ToNumber(price)
		if err != nil {
			diags.Addf("Catalogue entry %d: invalid price for '%s'.", idx, name)
			continue
		}
		if value < 0 {
			diags.Addf("Catalogue entry %d: negative price for '%s'.", idx, name)
			continue
		}

		table[types.NormalizeName(name)] = value
	}

	return table
}
