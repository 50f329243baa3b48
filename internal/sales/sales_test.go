package sales

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/computesales/internal/diagnostics"
	"github.com/ginjaninja78/computesales/internal/types"
)

var prices = types.PriceTable{"Widget": 2.5, "Gadget": 10, "Bolt": 0.1}

func decode(t *testing.T, doc string) any {
	t.Helper()
	var v any
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestEvaluateSaleSumsPricedItems(t *testing.T) {
	var diags diagnostics.Collector
	total, priced := EvaluateSale(decode(t, `[
		{"product": "Widget", "quantity": 4},
		{"product": " Gadget ", "quantity": "2"},
		{"product": "Bolt", "quantity": 3}
	]`), prices, 0, &diags)

	assert.True(t, diags.Empty())
	assert.Equal(t, 3, priced)
	assert.InDelta(t, 30.3, total, 1e-9)
}

func TestEvaluateSaleItemsNotAList(t *testing.T) {
	var diags diagnostics.Collector
	total, priced := EvaluateSale(decode(t, `{"product": "Widget"}`), prices, 3, &diags)

	assert.Zero(t, total)
	assert.Zero(t, priced)
	assert.Equal(t, []string{"Sale 3: 'items' must be an array."}, diags.Messages())
}

func TestEvaluateSaleReportsEveryMalformedItem(t *testing.T) {
	var diags diagnostics.Collector
	total, priced := EvaluateSale(decode(t, `[
		7,
		{"product": "Widget"},
		{"quantity": 1},
		{"product": "Widget", "quantity": "4.0"},
		{"product": "Widget", "quantity": "many"},
		{"product": "Widget", "quantity": 1.5},
		{"product": "Widget", "quantity": -2},
		{"product": "Unknown", "quantity": 1},
		{"product": "Widget", "quantity": 2}
	]`), prices, 1, &diags)

	assert.Equal(t, 1, priced)
	assert.Equal(t, 5.0, total)
	assert.Equal(t, []string{
		"Sale 1, item 0: expected object.",
		"Sale 1, item 1: missing 'product' or 'quantity'.",
		"Sale 1, item 2: missing 'product' or 'quantity'.",
		"Sale 1, item 3: invalid quantity for 'Widget'.",
		"Sale 1, item 4: invalid quantity for 'Widget'.",
		"Sale 1, item 5: invalid quantity for 'Widget'.",
		"Sale 1, item 6: negative quantity for 'Widget'.",
		"Sale 1, item 7: product 'Unknown' not in catalogue.",
	}, diags.Messages())
}

func TestEvaluateSaleAcceptsIntegralJSONNumber(t *testing.T) {
	var diags diagnostics.Collector
	total, priced := EvaluateSale(decode(t, `[{"product": "Gadget", "quantity": 3.0}]`), prices, 0, &diags)

	assert.True(t, diags.Empty())
	assert.Equal(t, 1, priced)
	assert.Equal(t, 30.0, total)
}

func TestEvaluateSaleStructuredProductName(t *testing.T) {
	var diags diagnostics.Collector
	total, priced := EvaluateSale(decode(t, `[{"product": {"a": 1}, "quantity": 1}]`), prices, 0, &diags)

	assert.Zero(t, total)
	assert.Zero(t, priced)
	assert.Equal(t, []string{`Sale 0, item 0: product '{"a":1}' not in catalogue.`}, diags.Messages())
}

func TestEvaluateSaleOverflowIsInfinite(t *testing.T) {
	var diags diagnostics.Collector
	huge := types.PriceTable{"Yacht": 1e308}
	total, priced := EvaluateSale(decode(t, `[{"product": "Yacht", "quantity": 10}]`), huge, 0, &diags)

	assert.True(t, diags.Empty())
	assert.Equal(t, 1, priced)
	assert.True(t, math.IsInf(total, 1))
	assert.True(t, math.IsInf(GrandTotal([]types.SaleResult{{Index: 0, Total: total}}), 1))
}

func TestComputeAllKeepsInputIndices(t *testing.T) {
	var diags diagnostics.Collector
	summary := ComputeAll(decode(t, `[
		{"items": [{"product": "Widget", "quantity": 4}]},
		"not a sale",
		{"lines": []},
		{"items": null},
		{"items": []},
		{"items": [{"product": "Unknown", "quantity": 1}]},
		{"items": [{"product": "Gadget", "quantity": 1}, {"product": "Widget", "quantity": 2}]}
	]`), prices, &diags)

	assert.Equal(t, []types.SaleResult{
		{Index: 0, Total: 10},
		{Index: 4, Total: 0},
		{Index: 5, Total: 0},
		{Index: 6, Total: 15},
	}, summary.Results)
	assert.Equal(t, 3, summary.PricedItems)
	assert.Equal(t, []string{
		"Sale 1: expected object, got invalid type.",
		"Sale 2: missing 'items'.",
		"Sale 3: missing 'items'.",
		"Sale 5, item 0: product 'Unknown' not in catalogue.",
	}, diags.Messages())
}

func TestComputeAllNotAList(t *testing.T) {
	var diags diagnostics.Collector
	summary := ComputeAll(decode(t, `{"items": []}`), prices, &diags)

	assert.Empty(t, summary.Results)
	assert.Equal(t, []string{"Sales record must be a JSON array of sales."}, diags.Messages())
}

func TestGrandTotalIsPlainSum(t *testing.T) {
	a, b, c := 0.1, 0.2, 0.005
	results := []types.SaleResult{{Index: 0, Total: a}, {Index: 2, Total: b}, {Index: 3, Total: c}}
	assert.Equal(t, a+b+c, GrandTotal(results))
	assert.Zero(t, GrandTotal(nil))
}
