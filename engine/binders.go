package engine

import (
	"github.com/spektr-org/fundview/schema"
	"github.com/spektr-org/fundview/source"
)

// Mount point IDs the host page provides.
const (
	MountTotalAmount  = "total-amount"
	MountKPIs         = "kpi-metrics"
	MountCountryChart = "country-chart"
	MountFinanceChart = "finance-chart"
	MountAssetTypes   = "asset-types"
	MountContributors = "contributors"
	MountProjectList  = "project-list"
	MountDocList      = "doc-list"
)

// ============================================================================
// BINDER - one dataset -> one mount point
// ============================================================================

// Binder maps the rows of one dataset onto one mount point.
// Build must be pure: same rows, same widget. Binders with an empty Dataset
// render without fetching.
type Binder struct {
	Name    string
	Dataset string // logical dataset name, remappable via WithDatasets
	Mount   string
	Schema  *schema.Config // fields checked softly after fetch; nil skips the check
	Build   func(rows []source.Row) Widget
}

// FundingTotal writes the total_funding metric as currency text.
func FundingTotal() Binder {
	sch := schema.Metrics()
	return Binder{
		Name:    "funding-total",
		Dataset: sch.Name,
		Mount:   MountTotalAmount,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildTotal(Metrics(rows))
		},
	}
}

// KPITrio writes average funding, active projects and average ROI.
func KPITrio() Binder {
	sch := schema.Metrics()
	return Binder{
		Name:    "kpi-trio",
		Dataset: sch.Name,
		Mount:   MountKPIs,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildKPIs(Metrics(rows))
		},
	}
}

// CountryChart draws the contribution-by-country doughnut.
func CountryChart(palette []string) Binder {
	sch := schema.Country()
	return Binder{
		Name:    "country-chart",
		Dataset: sch.Name,
		Mount:   MountCountryChart,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildDonut(rows, "country", "value", palette)
		},
	}
}

// AssetBreakdown writes one proportional bar per asset type.
func AssetBreakdown() Binder {
	sch := schema.Assets()
	return Binder{
		Name:    "asset-breakdown",
		Dataset: sch.Name,
		Mount:   MountAssetTypes,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildBars(rows, "label", "share")
		},
	}
}

// FinanceChart draws the monthly funding line.
func FinanceChart(color string) Binder {
	sch := schema.Finance()
	return Binder{
		Name:    "finance-chart",
		Dataset: sch.Name,
		Mount:   MountFinanceChart,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildLine(rows, "month", "value", FinanceSeriesLabel, color)
		},
	}
}

// ContributorsTable writes the contributors table body.
func ContributorsTable() Binder {
	sch := schema.Contributors()
	return Binder{
		Name:    "contributors-table",
		Dataset: sch.Name,
		Mount:   MountContributors,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildContributorsTable(rows, "name", "amount")
		},
	}
}

// ProjectList writes the project entries with status badges.
func ProjectList() Binder {
	sch := schema.Projects()
	return Binder{
		Name:    "project-list",
		Dataset: sch.Name,
		Mount:   MountProjectList,
		Schema:  &sch,
		Build: func(rows []source.Row) Widget {
			return BuildProjects(rows, "name", "status")
		},
	}
}

// Documents writes the fixed evidence list. It never fetches.
func Documents(names []string) Binder {
	return Binder{
		Name:  "documents",
		Mount: MountDocList,
		Build: func([]source.Row) Widget {
			return BuildDocuments(names)
		},
	}
}

// DefaultBinders returns every dashboard binder in page order.
func DefaultBinders(palette, documents []string) []Binder {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if documents == nil {
		documents = DefaultDocuments
	}
	return []Binder{
		FundingTotal(),
		CountryChart(palette),
		AssetBreakdown(),
		FinanceChart(palette[0]),
		ContributorsTable(),
		KPITrio(),
		Documents(documents),
		ProjectList(),
	}
}
