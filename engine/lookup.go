package engine

import (
	"github.com/spektr-org/fundview/source"
)

// Field names of the metrics dataset.
const (
	metricKeyField   = "metric"
	metricValueField = "value"
)

// Metric keys read by the funding total and KPI binders.
const (
	MetricTotalFunding   = "total_funding"
	MetricAvgFundingPer  = "avg_funding_per"
	MetricActiveProjects = "active_projects"
	MetricAvgROI         = "avg_roi"
)

// Metrics looks values up in the rows of the metrics dataset.
// When a key appears more than once the first row wins.
type Metrics []source.Row

// Value returns the raw value of the first row whose metric field equals key.
func (m Metrics) Value(key string) (any, bool) {
	for _, row := range m {
		if row.Text(metricKeyField) == key {
			v, ok := row[metricValueField]
			return v, ok
		}
	}
	return nil, false
}

// Float returns the value coerced to a number, 0 when absent.
func (m Metrics) Float(key string) float64 {
	v, _ := m.Value(key)
	return source.ToFloat(v)
}

// Text returns the value as text, "" when absent.
func (m Metrics) Text(key string) string {
	v, _ := m.Value(key)
	return source.ToText(v)
}
