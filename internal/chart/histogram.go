package chart

import (
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/sheetstat/internal/stats"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

const densityPoints = 200

// binSeries draws histogram bins as filled rectangles rising from the x axis.
type binSeries struct {
	name string
	bins []stats.Bin
}

func (bs binSeries) GetName() string             { return bs.name }
func (bs binSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (bs binSeries) GetStyle() gochart.Style     { return gochart.Style{} }
func (bs binSeries) Validate() error {
	if len(bs.bins) == 0 {
		return fmt.Errorf("histogram %q has no bins", bs.name)
	}
	return nil
}

func (bs binSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, _ gochart.Style) {
	for _, b := range bs.bins {
		if b.Count == 0 {
			continue
		}
		left := canvasBox.Left + xrange.Translate(b.Lo)
		right := canvasBox.Left + xrange.Translate(b.Hi)
		top := canvasBox.Bottom - yrange.Translate(float64(b.Count))
		fillRect(r, left, top, right, canvasBox.Bottom, barFill, barEdge, 1)
	}
}

func (r *Renderer) histogram(w io.Writer, col *table.NumericColumn) error {
	values := col.NonMissing()
	bins := stats.Histogram(values)
	if len(bins) == 0 {
		return r.blank(w)
	}
	lo, hi := bins[0].Lo, bins[len(bins)-1].Hi
	maxY := 0.0
	for _, b := range bins {
		maxY = math.Max(maxY, float64(b.Count))
	}

	series := []gochart.Series{binSeries{name: col.Name(), bins: bins}}
	binWidth := bins[0].Hi - bins[0].Lo
	if curve := stats.Density(values, densityPoints, float64(len(values))*binWidth); curve != nil {
		xs := make([]float64, len(curve))
		ys := make([]float64, len(curve))
		for i, p := range curve {
			xs[i], ys[i] = p.X, p.Y
			maxY = math.Max(maxY, p.Y)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    "density",
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: densityLine, StrokeWidth: 2},
		})
	}

	ch := gochart.Chart{
		Title:      fmt.Sprintf("Distribution of %s", col.Name()),
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20}},
		XAxis:      gochart.XAxis{Name: col.Name(), Range: &gochart.ContinuousRange{Min: lo, Max: hi}},
		YAxis: gochart.YAxis{
			Name:     "Frequency",
			AxisType: gochart.YAxisSecondary,
			Range:    &gochart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
		Series: series,
	}
	return ch.Render(gochart.PNG, w)
}
