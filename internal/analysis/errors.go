package analysis

import (
	"errors"
	"fmt"
)

// ErrNoRows is returned for a table that has columns but no data rows.
var ErrNoRows = errors.New("table has no data rows; missing percentage is undefined")

// AnalysisError reports a failure while summarizing a column or rendering its charts.
// Column is empty for table-wide steps such as the correlation matrix.
type AnalysisError struct {
	Column string
	Err    error
}

func (e *AnalysisError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Column == "" {
		return fmt.Sprintf("analysis failed: %v", e.Err)
	}
	return fmt.Sprintf("analysis of column '%s' failed: %v", e.Column, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
