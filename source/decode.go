package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// ============================================================================
// DECODERS - response bytes -> []Row
// ============================================================================

// Format selects how a response body is decoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// DecodeJSON decodes a JSON array of flat objects.
// Elements that are not objects become empty rows; downstream lookups then
// fall back to their defaults.
func DecodeJSON(data []byte) ([]Row, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected JSON array, got %s", jsonKind(raw))
	}

	rows := make([]Row, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			rows[i] = Row(obj)
		} else {
			rows[i] = Row{}
		}
	}
	return rows, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// DecodeCSV parses a published-CSV export: the header row names the fields,
// each following row becomes a Row of trimmed string cells.
// An empty body yields no rows.
func DecodeCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return rowsFromGrid(grid), nil
}

// rowsFromGrid turns a header + cells grid into rows.
// Cells past the header width are dropped; short rows leave fields absent.
func rowsFromGrid(grid [][]string) []Row {
	if len(grid) == 0 {
		return []Row{}
	}

	keys := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		keys[i] = toSnakeCase(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(Row, len(keys))
		for i, val := range cells {
			if i >= len(keys) {
				break
			}
			if keys[i] == "" {
				continue
			}
			row[keys[i]] = strings.TrimSpace(val)
		}
		rows = append(rows, row)
	}
	return rows
}

// toSnakeCase converts "Column Name" -> "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
