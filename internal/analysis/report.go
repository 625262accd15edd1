// Package analysis turns a loaded table into the summary report: one text
// block per column plus the rendered charts.
package analysis

import (
	"github.com/KaramelBytes/sheetstat/internal/stats"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

const blockText = "text"

// TextBlock is one entry of the report's summaries list.
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textBlock(s string) TextBlock { return TextBlock{Type: blockText, Text: s} }

// Report is the analyzer output. Plots maps "{column}_{kind}" (or
// "correlation_matrix") to a base64 PNG. Error is only set on the failure envelope.
type Report struct {
	Error     string            `json:"error,omitempty"`
	Summaries []TextBlock       `json:"summaries"`
	Plots     map[string]string `json:"plots"`

	Columns []ColumnSummary `json:"-"`
}

// ColumnSummary captures the statistics behind one column's text block.
type ColumnSummary struct {
	Name       string
	Dtype      string
	Kind       table.Kind
	Rows       int
	Missing    int
	MissingPct float64

	// Numeric only.
	Stats *stats.Summary
	// Categorical only, most frequent first.
	TopValues []stats.CategoryCount
}

// Present is the number of non-missing cells.
func (c ColumnSummary) Present() int { return c.Rows - c.Missing }

// ErrorReport builds the failure envelope for err.
func ErrorReport(err error) *Report {
	msg := err.Error()
	return &Report{
		Error:     msg,
		Summaries: []TextBlock{textBlock("Error analyzing Excel file: " + msg)},
		Plots:     map[string]string{},
	}
}
