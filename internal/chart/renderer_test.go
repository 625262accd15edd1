package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/sheetstat/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	nan := math.NaN()
	tb, err := table.New("sample",
		table.NewNumericColumn("age", "", []float64{25, 30, nan, 35, 41, 90}),
		table.NewNumericColumn("score", "", []float64{1.5, 2.5, 3, nan, 4.5, 9}),
		table.NewNumericColumn("flat", "", []float64{7, 7, 7, 7, 7, 7}),
		table.NewNumericColumn("empty", "", []float64{nan, nan, nan, nan, nan, nan}),
		table.NewCategoricalColumn("city", "", []string{"NY", "LA", "NY", "", "SF", "NY"}, nil),
	)
	require.NoError(t, err)
	return tb
}

func decodePNG(t *testing.T, payload string) (w, h int) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRenderKinds(t *testing.T) {
	tb := sampleTable(t)
	r := New(nil)
	cases := []struct {
		column string
		kind   Kind
	}{
		{"age", Histogram},
		{"age", Boxplot},
		{"score", Histogram},
		{"flat", Histogram},
		{"flat", Boxplot},
		{"city", Barplot},
		{"", Correlation},
	}
	for _, tc := range cases {
		t.Run(tc.column+"_"+string(tc.kind), func(t *testing.T) {
			payload, err := r.Render(tb, tc.column, tc.kind)
			require.NoError(t, err)
			w, h := decodePNG(t, payload)
			assert.Equal(t, DefaultWidth, w)
			assert.Equal(t, DefaultHeight, h)
		})
	}
}

func TestRenderInapplicableIsBlank(t *testing.T) {
	tb := sampleTable(t)
	r := New(nil)
	for _, tc := range []struct {
		column string
		kind   Kind
	}{
		{"city", Histogram},
		{"city", Boxplot},
		{"age", Barplot},
		{"empty", Histogram},
		{"missing", Boxplot},
	} {
		payload, err := r.Render(tb, tc.column, tc.kind)
		require.NoError(t, err, "%s/%s", tc.column, tc.kind)
		w, h := decodePNG(t, payload)
		assert.Equal(t, DefaultWidth, w)
		assert.Equal(t, DefaultHeight, h)
	}

	single, err := table.New("one", table.NewNumericColumn("x", "", []float64{1, 2}))
	require.NoError(t, err)
	payload, err := r.Render(single, "", Correlation)
	require.NoError(t, err)
	decodePNG(t, payload)
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := New(nil).Render(sampleTable(t), "age", Kind("pie"))
	require.Error(t, err)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, Kind("pie"), re.Kind)
	assert.Equal(t, "age", re.Column)
	assert.Contains(t, err.Error(), "render pie chart for column 'age'")
}

func TestNewBoxStats(t *testing.T) {
	b := newBoxStats([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100})
	assert.Equal(t, 3.0, b.q1)
	assert.Equal(t, 5.0, b.median)
	assert.Equal(t, 7.0, b.q3)
	assert.Equal(t, 1.0, b.lowWhisker)
	assert.Equal(t, 8.0, b.highWhisker)
	assert.Equal(t, []float64{100}, b.fliers)
}

func TestDiverging(t *testing.T) {
	assert.Equal(t, coolLow, diverging(-1))
	assert.Equal(t, coolMid, diverging(0))
	assert.Equal(t, coolHigh, diverging(1))
	assert.Equal(t, coolHigh, diverging(3))
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 10))
	assert.Equal(t, "abcd…", truncateLabel("abcdefgh", 5))
}
