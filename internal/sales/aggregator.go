package sales

import (
	"github.com/ginjaninja78/computesales/internal/diagnostics"
	"github.com/ginjaninja78/computesales/internal/types"
	"github.com/ginjaninja78/computesales/internal/validation"
)

// Summary is what ComputeAll produces besides the diagnostics.
type Summary struct {
	// Results holds one entry per sale that was an object with items.
	Results []types.SaleResult

	// PricedItems counts the line items that contributed to any total.
	PricedItems int
}

// ComputeAll evaluates every sale in the sales record.
//
// Sales that are not objects, or have no items field, are reported and
// produce no result. Their index is not reused, so the emitted indices can
// have gaps. A sale whose items all fail still yields a result of 0.
func ComputeAll(raw any, prices types.PriceTable, diags *diagnostics.Collector) Summary {
	summary := Summary{Results: []types.SaleResult{}}

	list, ok := validation.AsList(raw)
	if !ok {
		diags.Add("Sales record must be a JSON array of sales.")
		return summary
	}

	for saleIndex, sale := range list {
		obj, ok := validation.AsObject(sale)
		if !ok {
			diags.Addf("Sale %d: expected object, got invalid type.", saleIndex)
			continue
		}

		items, ok := validation.Field(obj, FieldItems)
		if !ok {
			diags.Addf("Sale %d: missing 'items'.", saleIndex)
			continue
		}

		total, priced := EvaluateSale(items, prices, saleIndex, diags)
		summary.Results = append(summary.Results, types.SaleResult{Index: saleIndex, Total: total})
		summary.PricedItems += priced
	}

	return summary
}

// GrandTotal sums the sale totals in order, without rounding.
func GrandTotal(results []types.SaleResult) float64 {
	total := 0.0
	for _, r := range results {
		total += r.Total
	}
	return total
}
