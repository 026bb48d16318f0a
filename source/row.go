// Package source resolves dataset names into rows.
//
// A Source is the only place fundview touches the outside world for data.
// Rows are flat field -> value maps exactly as the spreadsheet proxy returns
// them; no schema is enforced here beyond "the payload is an array".
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ============================================================================
// ROW - one record of a dataset
// ============================================================================

// Row is a single record: field name -> string | float64 | bool | nil.
// Rows are treated as immutable once fetched.
type Row map[string]any

// Has reports whether the row carries the field at all.
func (r Row) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Text returns the field rendered as text, "" when absent.
func (r Row) Text(key string) string {
	return ToText(r[key])
}

// Float returns the field coerced to a number, 0 when absent or unparsable.
func (r Row) Float(key string) float64 {
	return ToFloat(r[key])
}

// ============================================================================
// SOURCE - dataset name -> rows
// ============================================================================

// Source resolves a dataset name into its rows.
// Implementations must be safe for concurrent use; binders call Rows in parallel.
type Source interface {
	Rows(ctx context.Context, dataset string) ([]Row, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, dataset string) ([]Row, error)

// Rows calls f.
func (f SourceFunc) Rows(ctx context.Context, dataset string) ([]Row, error) {
	return f(ctx, dataset)
}

// ============================================================================
// COERCION - best effort, never fails
// ============================================================================

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ToFloat coerces a cell value to a float64.
// Strings are trimmed, a "$" prefix and grouping commas are dropped, and the
// longest numeric prefix is parsed ("42%" -> 42). Anything else yields 0.
func ToFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		return parseLoose(n)
	default:
		return 0
	}
}

func parseLoose(s string) float64 {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "-$") {
		negative = true
		s = s[2:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	m := numericPrefix.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -f
	}
	return f
}

// ToText renders a cell value as text. nil becomes "".
func ToText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
