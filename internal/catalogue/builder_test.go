package catalogue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/computesales/internal/diagnostics"
	"github.com/ginjaninja78/computesales/internal/types"
)

func decode(t *testing.T, doc string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(doc), &v))
	return v
}

func TestBuildWellFormed(t *testing.T) {
	var diags diagnostics.Collector
	table := Build(decode(t, `[
		{"title": "Widget", "price": 2.5},
		{"title": "  Gadget  ", "price": "10"},
		{"title": "Free sample", "price": 0}
	]`), &diags)

	assert.True(t, diags.Empty())
	assert.Equal(t, types.PriceTable{"Widget": 2.5, "Gadget": 10, "Free sample": 0}, table)
}

func TestBuildNotAList(t *testing.T) {
	var diags diagnostics.Collector
	table := Build(decode(t, `{"title": "Widget", "price": 1}`), &diags)

	assert.Empty(t, table)
	assert.Equal(t, []string{"Catalogue must be a JSON array of products."}, diags.Messages())
}

func TestBuildReportsEveryMalformedEntry(t *testing.T) {
	var diags diagnostics.Collector
	table := Build(decode(t, `[
		"Widget",
		{"title": "NoPrice"},
		{"price": 3},
		{"title": "Nulled", "price": null},
		{"title": "Bad", "price": "cheap"},
		{"title": "Owed", "price": -1},
		{"title": "Flag", "price": true},
		{"title": "Good", "price": 4}
	]`), &diags)

	assert.Equal(t, types.PriceTable{"Good": 4}, table)
	assert.Equal(t, []string{
		"Catalogue entry 0: expected object, got invalid type.",
		"Catalogue entry 1: missing 'title' or 'price'.",
		"Catalogue entry 2: missing 'title' or 'price'.",
		"Catalogue entry 3: missing 'title' or 'price'.",
		"Catalogue entry 4: invalid price for 'Bad'.",
		"Catalogue entry 5: negative price for 'Owed'.",
		"Catalogue entry 6: invalid price for 'Flag'.",
	}, diags.Messages())
}

func TestBuildLastWriteWins(t *testing.T) {
	var diags diagnostics.Collector
	table := Build(decode(t, `[
		{"title": "Widget", "price": 1},
		{"title": " Widget", "price": 2}
	]`), &diags)

	assert.True(t, diags.Empty())
	assert.Equal(t, types.PriceTable{"Widget": 2}, table)
}

func TestBuildOnlyNegativePriceIsEmpty(t *testing.T) {
	var diags diagnostics.Collector
	table := Build(decode(t, `[{"title":"Gadget","price":-1}]`), &diags)

	assert.Empty(t, table)
	assert.Equal(t, []string{"Catalogue entry 0: negative price for 'Gadget'."}, diags.Messages())
}
