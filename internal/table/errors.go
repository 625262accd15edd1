package table

import (
	"errors"
	"fmt"
)

// LoadError reports a file that could not be read as a spreadsheet.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "load failed"
	}
	if e.Path == "" {
		return fmt.Sprintf("load spreadsheet: %v", e.Err)
	}
	return fmt.Sprintf("load spreadsheet %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	// ErrUnsupported indicates a file extension no loader handles.
	ErrUnsupported = errors.New("unsupported spreadsheet format")
	// ErrLegacyXLS rejects binary (BIFF) workbooks; it wraps ErrUnsupported.
	ErrLegacyXLS = fmt.Errorf("%w: legacy .xls workbook, save it as .xlsx", ErrUnsupported)
	// ErrNoSheets indicates a workbook without worksheets.
	ErrNoSheets = errors.New("workbook contains no sheets")
)
