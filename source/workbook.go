package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WorkbookSource reads datasets from a local .xlsx export of the published
// spreadsheet. Each dataset is a sheet; its first row is the header.
// The file is opened per call so concurrent binders never share a handle.
type WorkbookSource struct {
	path string
}

// NewWorkbookSource creates a source over the workbook at path.
func NewWorkbookSource(path string) *WorkbookSource {
	return &WorkbookSource{path: path}
}

// Rows reads the sheet named dataset.
func (s *WorkbookSource) Rows(ctx context.Context, dataset string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Dataset: dataset, URL: s.path, Err: err}
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &FetchError{Dataset: dataset, URL: s.path, Err: err}
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(dataset)
	if err != nil {
		return nil, &FetchError{Dataset: dataset, URL: s.path, Err: err}
	}
	if idx < 0 {
		return nil, &FetchError{Dataset: dataset, URL: s.path,
			Err: fmt.Errorf("sheet not found: %s: %w", dataset, ErrUnknownDataset)}
	}

	grid, err := f.GetRows(dataset)
	if err != nil {
		return nil, &ParseError{Dataset: dataset, Err: fmt.Errorf("read sheet: %w", err)}
	}
	return rowsFromGrid(grid), nil
}
