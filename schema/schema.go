// Package schema describes the fields each dashboard dataset is expected to
// carry. Nothing here rejects data: a missing field is reported as a soft
// MissingFieldError and the binder falls back to its default.
package schema

import (
	"fmt"

	"github.com/spektr-org/fundview/source"
)

// ============================================================================
// SCHEMA - shape of one dataset
// ============================================================================

// Config describes the shape of a dataset.
type Config struct {
	Name       string          `json:"name" yaml:"name"`
	Dimensions []DimensionMeta `json:"dimensions" yaml:"dimensions"`
	Measures   []MeasureMeta   `json:"measures" yaml:"measures"`
}

// DimensionMeta describes a string field used as a label or key.
type DimensionMeta struct {
	Key         string `json:"key" yaml:"key"`
	DisplayName string `json:"displayName" yaml:"display_name"`
}

// MeasureMeta describes a numeric field.
type MeasureMeta struct {
	Key         string `json:"key" yaml:"key"`
	DisplayName string `json:"displayName" yaml:"display_name"`
	Unit        string `json:"unit,omitempty" yaml:"unit,omitempty"` // "currency", "percent", "count", "millions"
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// Fields returns dimension keys followed by measure keys.
func (c Config) Fields() []string {
	return append(c.DimensionKeys(), c.MeasureKeys()...)
}

// ============================================================================
// MISSING FIELDS - soft check
// ============================================================================

// MissingFieldError reports a row that lacks an expected field.
type MissingFieldError struct {
	Dataset string
	Row     int
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("dataset %q row %d: missing field %q", e.Dataset, e.Row, e.Field)
}

// Check lists every expected field absent from rows, in row order.
// dataset is the name the rows were fetched under, which may differ from
// c.Name when datasets are remapped.
func (c Config) Check(dataset string, rows []source.Row) []*MissingFieldError {
	var missing []*MissingFieldError
	fields := c.Fields()
	for i, row := range rows {
		for _, f := range fields {
			if !row.Has(f) {
				missing = append(missing, &MissingFieldError{Dataset: dataset, Row: i, Field: f})
			}
		}
	}
	return missing
}
