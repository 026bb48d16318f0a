package engine

import (
	"github.com/spektr-org/fundview/source"
)

// ============================================================================
// TABLE BUILDER - one table row per input row, fetch order, no dedup
// ============================================================================

// BuildContributorsTable produces the contributors table body.
func BuildContributorsTable(rows []source.Row, nameKey, amountKey string) *TableData {
	table := &TableData{
		Title: "Top Contributors",
		Columns: []Column{
			{Key: nameKey, Label: "Name", Type: "text", Align: "left"},
			{Key: amountKey, Label: "Amount", Type: "currency", Align: "right"},
		},
		Rows: make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Text(nameKey),
			FormatCurrency(row.Float(amountKey)),
		})
	}
	return table
}
