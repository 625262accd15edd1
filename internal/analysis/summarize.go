package analysis

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KaramelBytes/sheetstat/internal/chart"
	"github.com/KaramelBytes/sheetstat/internal/stats"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

const (
	topValuesLimit       = 5
	correlationPlotKey   = "correlation_matrix"
	minCorrelationInputs = 2
)

// ChartRenderer draws one chart and returns it as a base64 PNG.
type ChartRenderer interface {
	Render(t *table.Table, column string, kind chart.Kind) (string, error)
}

// Options controls report generation.
type Options struct {
	GeneratePlots bool
}

// DefaultOptions returns options with charts enabled.
func DefaultOptions() Options {
	return Options{GeneratePlots: true}
}

// Summarize builds the report for t: a dimensions block, one block per column
// in table order and, when plots are enabled, the applicable charts. Any
// failure aborts the run and no partial report is returned.
func Summarize(t *table.Table, opt Options, r ChartRenderer, log *zap.Logger) (*Report, error) {
	if t == nil {
		return nil, &AnalysisError{Err: errors.New("nil table")}
	}
	if opt.GeneratePlots && r == nil {
		return nil, &AnalysisError{Err: errors.New("plots enabled without a chart renderer")}
	}
	if log == nil {
		log = zap.NewNop()
	}

	rep := &Report{
		Summaries: []TextBlock{textBlock(fmt.Sprintf("Dataset dimensions: %d rows × %d columns", t.Rows(), t.Width()))},
		Plots:     map[string]string{},
	}

	for _, col := range t.Columns() {
		cs, err := summarizeColumn(t.Rows(), col)
		if err != nil {
			return nil, &AnalysisError{Column: col.Name(), Err: err}
		}
		rep.Columns = append(rep.Columns, cs)
		rep.Summaries = append(rep.Summaries, textBlock(cs.Text()))
		log.Debug("column summarized",
			zap.String("column", cs.Name),
			zap.String("dtype", cs.Dtype),
			zap.Stringer("kind", cs.Kind),
			zap.Int("missing", cs.Missing))

		if !opt.GeneratePlots {
			continue
		}
		for _, kind := range plotKinds(cs) {
			payload, err := r.Render(t, cs.Name, kind)
			if err != nil {
				return nil, &AnalysisError{Column: cs.Name, Err: err}
			}
			rep.Plots[cs.Name+"_"+string(kind)] = payload
		}
	}

	if opt.GeneratePlots && len(t.NumericColumns()) >= minCorrelationInputs {
		payload, err := r.Render(t, "", chart.Correlation)
		if err != nil {
			return nil, &AnalysisError{Err: err}
		}
		rep.Plots[correlationPlotKey] = payload
	}

	log.Info("analysis complete",
		zap.String("table", t.Name),
		zap.Int("rows", t.Rows()),
		zap.Int("columns", t.Width()),
		zap.Int("plots", len(rep.Plots)))
	return rep, nil
}

func summarizeColumn(rows int, col table.Column) (ColumnSummary, error) {
	if rows == 0 {
		return ColumnSummary{}, ErrNoRows
	}
	cs := ColumnSummary{
		Name:    col.Name(),
		Dtype:   col.Dtype(),
		Kind:    col.Kind(),
		Rows:    rows,
		Missing: col.MissingCount(),
	}
	cs.MissingPct = float64(cs.Missing) / float64(rows) * 100

	switch c := col.(type) {
	case *table.NumericColumn:
		s := stats.Describe(c.Values())
		cs.Stats = &s
	case *table.CategoricalColumn:
		cs.TopValues = stats.TopValues(c.NonMissing(), topValuesLimit)
	default:
		return ColumnSummary{}, fmt.Errorf("unsupported column type %T", col)
	}
	return cs, nil
}

// plotKinds lists the per-column charts that apply. Columns without any
// present value get none; a bar plot also needs at least two distinct values.
func plotKinds(cs ColumnSummary) []chart.Kind {
	if cs.Present() == 0 {
		return nil
	}
	switch cs.Kind {
	case table.Numeric:
		return []chart.Kind{chart.Histogram, chart.Boxplot}
	case table.Categorical:
		if len(cs.TopValues) > 1 {
			return []chart.Kind{chart.Barplot}
		}
	}
	return nil
}
