package source

import (
	"context"
)

// StaticSource serves rows from memory. Unknown names fail with a 404
// FetchError so binders degrade exactly as they would against the proxy.
type StaticSource map[string][]Row

// Rows returns the rows stored under dataset.
func (s StaticSource) Rows(ctx context.Context, dataset string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Dataset: dataset, Err: err}
	}
	rows, ok := s[dataset]
	if !ok {
		return nil, &FetchError{Dataset: dataset, URL: "static:" + dataset, StatusCode: 404, Err: ErrUnknownDataset}
	}
	return rows, nil
}

// Demo returns the sample figures the dashboard ships with, shaped the way
// the spreadsheet proxy returns them (every cell a string).
func Demo() StaticSource {
	return StaticSource{
		"metrics": {
			{"metric": "total_funding", "value": "1250000"},
			{"metric": "avg_funding_per", "value": "43210"},
			{"metric": "active_projects", "value": "12"},
			{"metric": "avg_roi", "value": "8.5"},
		},
		"country": {
			{"country": "🇺🇸 USA", "value": "38"},
			{"country": "🇰🇷 Korea", "value": "24"},
			{"country": "🇬🇧 UK", "value": "16"},
			{"country": "🇩🇪 Germany", "value": "12"},
			{"country": "🌍 Others", "value": "10"},
		},
		"assets": {
			{"label": "Equity", "share": "42"},
			{"label": "Debt", "share": "25"},
			{"label": "Grants", "share": "18"},
			{"label": "Crypto", "share": "10"},
			{"label": "Others", "share": "5"},
		},
		"finance": {
			{"month": "Jan", "value": "32"},
			{"month": "Feb", "value": "41"},
			{"month": "Mar", "value": "28"},
			{"month": "Apr", "value": "45"},
			{"month": "May", "value": "52"},
			{"month": "Jun", "value": "38"},
			{"month": "Jul", "value": "47"},
			{"month": "Aug", "value": "56"},
			{"month": "Sep", "value": "33"},
			{"month": "Oct", "value": "49"},
			{"month": "Nov", "value": "58"},
			{"month": "Dec", "value": "60"},
		},
		"contributors": {
			{"name": "Jane Doe", "amount": "125000"},
			{"name": "Harry Doe", "amount": "87500"},
			{"name": "John Smith", "amount": "64320"},
		},
		"projects": {
			{"name": "Clean Water Initiative", "status": "active"},
			{"name": "Solar Roofs Africa", "status": "pending"},
			{"name": "Literacy Program", "status": "complete"},
		},
	}
}
