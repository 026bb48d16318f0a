package engine

import (
	"github.com/spektr-org/fundview/source"
)

// ============================================================================
// CHART BUILDER - produces ChartConfig from rows
// ============================================================================

// DefaultPalette is the cyclic slice palette. With more rows than colors the
// colors repeat.
var DefaultPalette = []string{
	"#6366f1", "#60a5fa", "#34d399", "#fbbf24",
	"#d1d5db", "#f87171", "#a78bfa", "#f472b6",
}

// FinanceSeriesLabel names the single series of the finance line chart.
const FinanceSeriesLabel = "M-o-M Funding ($M)"

// BuildDonut produces a doughnut chart with one slice per row, in row order.
func BuildDonut(rows []source.Row, labelKey, valueKey string, palette []string) *ChartConfig {
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Text(labelKey))
		values = append(values, row.Float(valueKey))
	}

	return &ChartConfig{
		Type: "doughnut",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{{
				Data:            values,
				BackgroundColor: assignColors(len(rows), palette),
				BorderWidth:     intPtr(0),
			}},
		},
		Options: ChartOptions{
			Plugins: ChartPlugins{Legend: ChartLegend{Position: "bottom"}},
			Cutout:  "65%",
		},
	}
}

// BuildLine produces a single-series filled line chart. The x axis follows
// row order, the y axis is auto-scaled from zero, the legend is hidden.
func BuildLine(rows []source.Row, labelKey, valueKey, seriesName, color string) *ChartConfig {
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Text(labelKey))
		values = append(values, row.Float(valueKey))
	}

	return &ChartConfig{
		Type: "line",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{{
				Label:           seriesName,
				Data:            values,
				Fill:            true,
				BorderColor:     color,
				BackgroundColor: Colors{color + "33"},
				Tension:         0.35,
			}},
		},
		Options: ChartOptions{
			Plugins:             ChartPlugins{Legend: ChartLegend{Display: boolPtr(false)}},
			Scales:              map[string]ChartScale{"y": {BeginAtZero: true}},
			Responsive:          true,
			MaintainAspectRatio: boolPtr(false),
		},
	}
}

func assignColors(count int, palette []string) Colors {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colors := make(Colors, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
