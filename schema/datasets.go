package schema

// Built-in dataset shapes, one per fetch-driven widget.
// Functions rather than vars so callers can never mutate a shared value.

// Metrics is the key/value table behind the funding total and KPI panel.
func Metrics() Config {
	return Config{
		Name:       "metrics",
		Dimensions: []DimensionMeta{{Key: "metric", DisplayName: "Metric"}},
		Measures:   []MeasureMeta{{Key: "value", DisplayName: "Value"}},
	}
}

// Country holds each country's share of contributions.
func Country() Config {
	return Config{
		Name:       "country",
		Dimensions: []DimensionMeta{{Key: "country", DisplayName: "Country"}},
		Measures:   []MeasureMeta{{Key: "value", DisplayName: "Share", Unit: "percent"}},
	}
}

// Assets holds the asset-type breakdown.
func Assets() Config {
	return Config{
		Name:       "assets",
		Dimensions: []DimensionMeta{{Key: "label", DisplayName: "Asset Type"}},
		Measures:   []MeasureMeta{{Key: "share", DisplayName: "Share", Unit: "percent"}},
	}
}

// Finance holds the month-over-month funding series.
func Finance() Config {
	return Config{
		Name:       "finance",
		Dimensions: []DimensionMeta{{Key: "month", DisplayName: "Month"}},
		Measures:   []MeasureMeta{{Key: "value", DisplayName: "Funding", Unit: "millions"}},
	}
}

// Contributors holds the top contributors table.
func Contributors() Config {
	return Config{
		Name:       "contributors",
		Dimensions: []DimensionMeta{{Key: "name", DisplayName: "Name"}},
		Measures:   []MeasureMeta{{Key: "amount", DisplayName: "Amount", Unit: "currency"}},
	}
}

// Projects holds the project status list.
func Projects() Config {
	return Config{
		Name: "projects",
		Dimensions: []DimensionMeta{
			{Key: "name", DisplayName: "Project"},
			{Key: "status", DisplayName: "Status"},
		},
	}
}

// All returns every built-in dataset in dashboard order.
func All() []Config {
	return []Config{Metrics(), Country(), Assets(), Finance(), Contributors(), Projects()}
}
