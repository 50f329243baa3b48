// =============================================================================
// Compute Sales - Sale Evaluator
// =============================================================================
//
// EvaluateSale prices the line items of one sale.
//
// EXPECTED SHAPE:
//   "items": [
//     {"product": "Widget", "quantity": 4},
//     {"product": "Gadget", "quantity": "2"}
//   ]
//
// A line item contributes price * quantity to the total only when it is an
// object, carries both fields, its quantity is a non-negative integer, and
// its trimmed product name is in the price table. Anything else is reported
// and skipped.
//
// =============================================================================

package sales

import (
	"github.com/ginjaninja78/computesales/internal/diagnostics"
	"github.com/ginjaninja78/computesales/internal/types"
	"github.com/ginjaninja78/computesales/internal/validation"
)

// Field names read from sales and line items.
const (
	FieldItems    = "items"
	FieldProduct  = "product"
	FieldQuantity = "quantity"
)

// EvaluateSale computes the total of one sale and the number of items that
// were priced. saleIndex is only used to label diagnostics.
func EvaluateSale(items any, prices types.PriceTable, saleIndex int, diags *diagnostics.Collector) (float64, int) {
	total := 0.0
	priced := 0

	list, ok := validation.AsList(items)
	if !ok {
		diags.Addf("Sale %d: 'items' must be an array.", saleIndex)
		return total, priced
	}

	for idx, item := range list {
		obj, ok := validation.AsObject(item)
		if !ok {
			diags.Addf("Sale %d, item %d: expected object.", saleIndex, idx)
			continue
		}

		product, hasProduct := validation.Field(obj, FieldProduct)
		quantity, hasQuantity := validation.Field(obj, FieldQuantity)
		if !hasProduct || !hasQuantity {
			diags.Addf("Sale %d, item %d: missing 'product' or 'quantity'.", saleIndex, idx)
			continue
		}

		name := validation.Text(product)
		qty, err := validation.ToInteger(quantity)
		if err != nil {
			diags.Addf("Sale %d, item %d: invalid quantity for '%s'.", saleIndex, idx, name)
			continue
		}
		if qty < 0 {
			diags.Addf("Sale %d, item %d: negative quantity for '%s'.", saleIndex, idx, name)
			continue
		}

		price, ok := prices.Lookup(name)
		if !ok {
			diags.Addf("Sale %d, item %d: product '%s' not in catalogue.", saleIndex, idx, name)
			continue
		}

		total += price * float64(qty)
		priced++
	}

	return total, priced
}
