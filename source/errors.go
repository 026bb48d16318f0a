package source

import (
	"errors"
	"fmt"
)

// ErrUnknownDataset is wrapped by in-memory sources for names they do not hold.
var ErrUnknownDataset = errors.New("unknown dataset")

// FetchError reports a transport failure, a non-2xx status, or an
// unreadable local workbook.
type FetchError struct {
	Dataset    string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("fetch %q: %s returned %d: %v", e.Dataset, e.URL, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("fetch %q: %s returned %d", e.Dataset, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %q: %v", e.Dataset, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a body that is not a JSON (or CSV) array of rows.
type ParseError struct {
	Dataset string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Dataset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
