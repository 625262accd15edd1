package analysis

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/sheetstat/internal/chart"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

// recordingRenderer returns a fixed payload and remembers every request.
type recordingRenderer struct {
	calls []string
	fail  chart.Kind
}

func (r *recordingRenderer) Render(_ *table.Table, column string, kind chart.Kind) (string, error) {
	r.calls = append(r.calls, column+"/"+string(kind))
	if kind == r.fail {
		return "", &chart.RenderError{Kind: kind, Column: column, Err: errors.New("boom")}
	}
	return "cG5n", nil
}

func ageCityTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New("people",
		table.NewNumericColumn("age", "", []float64{20, 30, 40, math.NaN()}),
		table.NewCategoricalColumn("city", "", []string{"NY", "NY", "LA", "LA"}, nil),
	)
	require.NoError(t, err)
	return tb
}

func plotKeys(rep *Report) []string {
	keys := make([]string, 0, len(rep.Plots))
	for k := range rep.Plots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestSummarizeAgeCityScenario(t *testing.T) {
	rep, err := Summarize(ageCityTable(t), DefaultOptions(), chart.New(nil), nil)
	require.NoError(t, err)

	require.Len(t, rep.Summaries, 3)
	assert.Equal(t, "Dataset dimensions: 4 rows × 2 columns", rep.Summaries[0].Text)
	assert.Equal(t,
		"Column 'age' (float64): 1 missing (25.0%), mean=30.00, median=30.00, std=10.00, min=20.00, max=40.00",
		rep.Summaries[1].Text)
	assert.Equal(t,
		"Column 'city' (object): 0 missing (0.0%), top values: NY(2), LA(2)",
		rep.Summaries[2].Text)
	for _, s := range rep.Summaries {
		assert.Equal(t, "text", s.Type)
	}

	assert.Equal(t, []string{"age_boxplot", "age_histogram", "city_barplot"}, plotKeys(rep))
	for key, payload := range rep.Plots {
		raw, err := base64.StdEncoding.DecodeString(payload)
		require.NoError(t, err, key)
		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err, key)
		assert.Equal(t, chart.DefaultWidth, img.Bounds().Dx(), key)
		assert.Equal(t, chart.DefaultHeight, img.Bounds().Dy(), key)
	}

	require.Len(t, rep.Columns, 2)
	assert.InDelta(t, 25.0, rep.Columns[0].MissingPct, 1e-9)
	assert.Empty(t, rep.Error)
}

func TestSummarizePlotSelection(t *testing.T) {
	nan := math.NaN()
	tb, err := table.New("mixed",
		table.NewNumericColumn("a", "", []float64{1, 2, 3, 4}),
		table.NewNumericColumn("b", "", []float64{4, 3, nan, 1}),
		table.NewNumericColumn("gone", "", []float64{nan, nan, nan, nan}),
		table.NewCategoricalColumn("same", "", []string{"x", "x", "x", ""}, nil),
		table.NewCategoricalColumn("blank", "", []string{"", "", "", ""}, nil),
		table.NewCategoricalColumn("pair", "", []string{"p", "q", "p", "p"}, nil),
	)
	require.NoError(t, err)

	rr := &recordingRenderer{}
	rep, err := Summarize(tb, DefaultOptions(), rr, nil)
	require.NoError(t, err)

	require.Len(t, rep.Summaries, 1+tb.Width())
	assert.Equal(t, []string{
		"a_boxplot", "a_histogram",
		"b_boxplot", "b_histogram",
		"correlation_matrix",
		"pair_barplot",
	}, plotKeys(rep))
	assert.Equal(t, []string{
		"a/histogram", "a/boxplot",
		"b/histogram", "b/boxplot",
		"pair/barplot",
		"/correlation",
	}, rr.calls)

	assert.Equal(t,
		"Column 'gone' (float64): 4 missing (100.0%), mean=nan, median=nan, std=nan, min=nan, max=nan",
		rep.Summaries[3].Text)
	assert.Equal(t, "Column 'blank' (object): 4 missing (100.0%), top values: ", rep.Summaries[5].Text)
}

func TestSummarizeWithoutPlots(t *testing.T) {
	rr := &recordingRenderer{}
	rep, err := Summarize(ageCityTable(t), Options{GeneratePlots: false}, rr, nil)
	require.NoError(t, err)
	assert.Len(t, rep.Summaries, 3)
	assert.Empty(t, rep.Plots)
	assert.NotNil(t, rep.Plots)
	assert.Empty(t, rr.calls)

	// a renderer is optional when plots are off
	_, err = Summarize(ageCityTable(t), Options{}, nil, nil)
	assert.NoError(t, err)
}

func TestSummarizeSingleNumericHasNoCorrelation(t *testing.T) {
	tb, err := table.New("one",
		table.NewNumericColumn("x", "", []float64{1, 2, 3}),
		table.NewCategoricalColumn("y", "", []string{"a", "b", "c"}, nil),
	)
	require.NoError(t, err)
	rep, err := Summarize(tb, DefaultOptions(), &recordingRenderer{}, nil)
	require.NoError(t, err)
	assert.NotContains(t, rep.Plots, "correlation_matrix")
	assert.Equal(t, "Column 'x' (int64): 0 missing (0.0%), mean=2.00, median=2.00, std=1.00, min=1.00, max=3.00", rep.Summaries[1].Text)
}

func TestSummarizeMissingPercentage(t *testing.T) {
	vals := []string{"a", "", "b", "", "", "c"}
	tb, err := table.New("pct", table.NewCategoricalColumn("c", "", vals, nil))
	require.NoError(t, err)
	rep, err := Summarize(tb, Options{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Column 'c' (object): 3 missing (50.0%), top values: a(1), b(1), c(1)", rep.Summaries[1].Text)

	tb, err = table.New("third", table.NewNumericColumn("n", "", []float64{1, math.NaN(), 2}))
	require.NoError(t, err)
	rep, err = Summarize(tb, Options{}, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, rep.Summaries[1].Text, "1 missing (33.3%)")
	assert.InDelta(t, 100.0/3, rep.Columns[0].MissingPct, 1e-9)
}

func TestSummarizeErrors(t *testing.T) {
	rr := &recordingRenderer{fail: chart.Boxplot}
	rep, err := Summarize(ageCityTable(t), DefaultOptions(), rr, nil)
	require.Error(t, err)
	assert.Nil(t, rep, "partial results are discarded")
	var ae *AnalysisError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "age", ae.Column)
	var re *chart.RenderError
	assert.True(t, errors.As(err, &re))

	empty, err := table.New("empty",
		table.NewNumericColumn("x", "", nil),
	)
	require.NoError(t, err)
	_, err = Summarize(empty, DefaultOptions(), &recordingRenderer{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRows))

	_, err = Summarize(ageCityTable(t), DefaultOptions(), nil, nil)
	assert.Error(t, err)
}

func TestSummarizeNoColumns(t *testing.T) {
	tb, err := table.New("none")
	require.NoError(t, err)
	rep, err := Summarize(tb, DefaultOptions(), &recordingRenderer{}, nil)
	require.NoError(t, err)
	require.Len(t, rep.Summaries, 1)
	assert.Equal(t, "Dataset dimensions: 0 rows × 0 columns", rep.Summaries[0].Text)
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "nan", fixed2(math.NaN()))
	assert.Equal(t, "inf", fixed2(math.Inf(1)))
	assert.Equal(t, "-inf", fixed2(math.Inf(-1)))
	assert.Equal(t, "2.35", fixed2(2.345001))
	assert.Equal(t, "-1.00", fixed2(-1))
}
