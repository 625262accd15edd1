package chart

import (
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/sheetstat/internal/stats"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

const whiskerIQR = 1.5

// boxStats is the five-number layout of a box plot plus its outliers.
type boxStats struct {
	q1, median, q3 float64
	lowWhisker     float64
	highWhisker    float64
	fliers         []float64
}

func newBoxStats(values []float64) boxStats {
	q1, q2, q3 := stats.Quartiles(values)
	iqr := q3 - q1
	loFence, hiFence := q1-whiskerIQR*iqr, q3+whiskerIQR*iqr
	bs := boxStats{q1: q1, median: q2, q3: q3, lowWhisker: math.Inf(1), highWhisker: math.Inf(-1)}
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < loFence || v > hiFence {
			bs.fliers = append(bs.fliers, v)
			continue
		}
		bs.lowWhisker = math.Min(bs.lowWhisker, v)
		bs.highWhisker = math.Max(bs.highWhisker, v)
	}
	// whiskers never retract inside the box
	bs.lowWhisker = math.Min(bs.lowWhisker, q1)
	bs.highWhisker = math.Max(bs.highWhisker, q3)
	return bs
}

// boxSeries draws one vertical box centred at x=1 on a [0, 2] axis.
type boxSeries struct {
	name string
	box  boxStats
}

func (bs boxSeries) GetName() string             { return bs.name }
func (bs boxSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (bs boxSeries) GetStyle() gochart.Style     { return gochart.Style{} }
func (bs boxSeries) Validate() error {
	if math.IsNaN(bs.box.median) {
		return fmt.Errorf("box plot %q has no values", bs.name)
	}
	return nil
}

func (bs boxSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, _ gochart.Style) {
	px := func(x float64) int { return canvasBox.Left + xrange.Translate(x) }
	py := func(y float64) int { return canvasBox.Bottom - yrange.Translate(y) }

	left, mid, right := px(0.75), px(1), px(1.25)
	capLeft, capRight := px(0.875), px(1.125)
	b := bs.box

	line(r, mid, py(b.q3), mid, py(b.highWhisker), barEdge, 1.5)
	line(r, mid, py(b.q1), mid, py(b.lowWhisker), barEdge, 1.5)
	line(r, capLeft, py(b.highWhisker), capRight, py(b.highWhisker), barEdge, 1.5)
	line(r, capLeft, py(b.lowWhisker), capRight, py(b.lowWhisker), barEdge, 1.5)

	fillRect(r, left, py(b.q3), right, py(b.q1), barFill, barEdge, 1.5)
	line(r, left, py(b.median), right, py(b.median), medianLine, 2)

	r.SetFillColor(lightText)
	r.SetStrokeColor(darkText)
	r.SetStrokeWidth(1)
	for _, f := range b.fliers {
		r.Circle(4, mid, py(f))
		r.FillStroke()
	}
}

func (r *Renderer) boxplot(w io.Writer, col *table.NumericColumn) error {
	values := col.NonMissing()
	box := newBoxStats(values)

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}

	ch := gochart.Chart{
		Title:      fmt.Sprintf("Box plot of %s", col.Name()),
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: 2},
			Ticks: []gochart.Tick{{Value: 0, Label: ""}, {Value: 1, Label: truncateLabel(col.Name(), 40)}, {Value: 2, Label: ""}},
		},
		YAxis: gochart.YAxis{
			Name:     col.Name(),
			AxisType: gochart.YAxisSecondary,
			Range:    &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad},
		},
		Series: []gochart.Series{boxSeries{name: col.Name(), box: box}},
	}
	return ch.Render(gochart.PNG, w)
}
