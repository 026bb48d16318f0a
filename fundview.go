// Package fundview renders a funding-transparency dashboard from a published
// spreadsheet.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/fundview/engine"
//	    "github.com/spektr-org/fundview/render"
//	    "github.com/spektr-org/fundview/source"
//	)
//
//	page := render.NewPage()
//	report := engine.New(source.NewHTTPSource(endpoint), page).Run(ctx)
//	err := page.Render(w)
//
// Each binder fetches one dataset, turns its rows into one widget and writes
// it to one mount point of the page. Binders run concurrently and fail
// independently: a dataset that cannot be fetched leaves its mount point at
// the placeholder and shows up as skipped in the report.
package fundview
