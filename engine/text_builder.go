package engine

import (
	"github.com/spektr-org/fundview/source"
)

// ============================================================================
// TEXT BUILDERS - funding total, KPI panel, asset bars, project list
// ============================================================================

// KPI labels, in panel order.
const (
	LabelAvgFunding     = "Avg. Funding / Project"
	LabelActiveProjects = "Active Projects"
	LabelAvgROI         = "Avg. ROI"
)

// BuildTotal formats the total_funding metric as currency.
func BuildTotal(m Metrics) TextWidget {
	return TextWidget{Text: FormatCurrency(m.Float(MetricTotalFunding))}
}

// BuildKPIs produces the three KPI figures: currency, integer, percentage.
func BuildKPIs(m Metrics) StatsWidget {
	return StatsWidget{Stats: []Stat{
		{Label: LabelAvgFunding, Value: FormatCurrency(m.Float(MetricAvgFundingPer))},
		{Label: LabelActiveProjects, Value: FormatCount(m.Float(MetricActiveProjects))},
		{Label: LabelAvgROI, Value: FormatPercent(m.Float(MetricAvgROI))},
	}}
}

// BuildBars produces one bar per row, in fetch order. Shares are neither
// sorted nor checked to sum to 100.
func BuildBars(rows []source.Row, labelKey, shareKey string) BarsWidget {
	bars := make([]AssetBar, 0, len(rows))
	for _, row := range rows {
		share := row.Float(shareKey)
		pct := FormatPercent(share)
		bars = append(bars, AssetBar{
			Label:     row.Text(labelKey),
			Share:     share,
			ShareText: pct,
			Width:     pct,
		})
	}
	return BarsWidget{Bars: bars}
}

// BuildProjects produces one entry per row with a badge class taken straight
// from the status text.
func BuildProjects(rows []source.Row, nameKey, statusKey string) ProjectsWidget {
	projects := make([]ProjectEntry, 0, len(rows))
	for _, row := range rows {
		status := row.Text(statusKey)
		projects = append(projects, ProjectEntry{
			Name:       row.Text(nameKey),
			Status:     status,
			BadgeClass: "status-pill status-" + status,
		})
	}
	return ProjectsWidget{Projects: projects}
}
