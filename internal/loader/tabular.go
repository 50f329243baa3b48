// =============================================================================
// Compute Sales - Tabular Inputs (CSV / XLSX)
// =============================================================================
//
// Spreadsheet exports are turned into the same list-of-objects shape as the
// JSON documents, so validation behaves identically for every format.
//
// CATALOGUE LAYOUT:
//   title   | price
//   Widget  | 2.5
//
// SALES LAYOUT:
//   sale | product | quantity
//   1    | Widget  | 4
//   1    | Gadget  | 2
//   2    | Widget  | 1
//
//   Rows sharing a sale value form one sale, in order of first appearance.
//   A row with no sale value is a sale of its own.
//
// RULES:
//   - The first row is the header; names are trimmed and lower-cased
//   - Empty cells are absent fields (so they report as missing)
//   - Blank rows are skipped
//   - All cell values are text; numeric coercion happens during validation
//
// =============================================================================

package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SaleColumn is the header that groups sales rows into sales.
const SaleColumn = "sale"

var utf8BOM = []byte("\xef\xbb\xbf")

// decodeCSV reads every row of a CSV document.
func decodeCSV(data []byte, role Role) (any, error) {
	// Spreadsheet "CSV UTF-8" exports start with a byte order mark.
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))

	// Allow a variable number of fields per row.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return shapeRows(rows, role), nil
}

// decodeXLSX reads every row of the first sheet of a workbook.
func decodeXLSX(data []byte, role Role) (any, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return shapeRows(rows, role), nil
}

// shapeRows converts raw rows to the document shape expected for role.
func shapeRows(rows [][]string, role Role) []any {
	records := rowsToRecords(rows)
	if role == Sales {
		return groupSales(records)
	}

	doc := make([]any, 0, len(records))
	for _, rec := range records {
		doc = append(doc, rec)
	}
	return doc
}

// rowsToRecords maps each data row to an object keyed by header name.
func rowsToRecords(rows [][]string) []map[string]any {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []map[string]any
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rec := make(map[string]any)
		for i, cell := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			value := strings.TrimSpace(cell)
			if value == "" {
				continue
			}
			rec[headers[i]] = value
		}
		records = append(records, rec)
	}

	return records
}

// groupSales collects line-item records into sales keyed by the sale column.
func groupSales(records []map[string]any) []any {
	sales := make([]any, 0)
	index := make(map[string]int)

	for _, rec := range records {
		key, hasKey := rec[SaleColumn].(string)
		delete(rec, SaleColumn)

		if hasKey {
			if pos, ok := index[key]; ok {
				sale := sales[pos].(map[string]any)
				sale["items"] = append(sale["items"].([]any), rec)
				continue
			}
			index[key] = len(sales)
		}

		sales = append(sales, map[string]any{"items": []any{rec}})
	}

	return sales
}

// isRowEmpty reports whether every cell in the row is blank.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
