package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/sheetstat/internal/stats"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

const (
	barplotTop   = 10
	barLabelMax  = 24
	barAreaWidth = 820
)

func (r *Renderer) barplot(w io.Writer, col *table.CategoricalColumn) error {
	top := stats.TopValues(col.NonMissing(), barplotTop)
	if len(top) == 0 {
		return r.blank(w)
	}
	bars := make([]gochart.Value, len(top))
	maxCount := 0
	for i, c := range top {
		bars[i] = gochart.Value{
			Value: float64(c.Count),
			Label: truncateLabel(c.Value, barLabelMax),
			Style: gochart.Style{FillColor: barFill, StrokeColor: barEdge, StrokeWidth: 1},
		}
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	slot := barAreaWidth / len(bars)
	barWidth := slot * 6 / 10
	bc := gochart.BarChart{
		Title:      fmt.Sprintf("Most frequent values of %s", col.Name()),
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth,
		BarSpacing: slot - barWidth,
		Background: gochart.Style{Padding: gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 120}},
		XAxis:      gochart.Style{TextRotationDegrees: 45},
		YAxis: gochart.YAxis{
			Name:  "Count",
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(maxCount) * 1.1},
		},
		Bars: bars,
	}
	return bc.Render(gochart.PNG, w)
}
