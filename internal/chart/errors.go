package chart

import "fmt"

// RenderError reports a failure while drawing one chart.
type RenderError struct {
	Kind   Kind
	Column string
	Err    error
}

func (e *RenderError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == Correlation || e.Column == "" {
		return fmt.Sprintf("render %s chart: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("render %s chart for column '%s': %v", e.Kind, e.Column, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
