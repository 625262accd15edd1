package chart

import (
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/sheetstat/internal/stats"
	"github.com/KaramelBytes/sheetstat/internal/table"
)

const (
	colorBarGap    = 30
	colorBarWidth  = 22
	colorBarSteps  = 100
	heatLabelMax   = 18
	heatPadRight   = 130
	heatAnnotation = 12.0
)

// heatSeries paints an n x n matrix on [0, n] x [0, n] axes, row 0 at the top,
// followed by a colour bar to the right of the plot area.
type heatSeries struct {
	m *stats.CorrMatrix
}

func (hs heatSeries) GetName() string             { return "correlation" }
func (hs heatSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (hs heatSeries) GetStyle() gochart.Style     { return gochart.Style{} }
func (hs heatSeries) Validate() error {
	if hs.m == nil || len(hs.m.Columns) == 0 {
		return fmt.Errorf("empty correlation matrix")
	}
	return nil
}

func (hs heatSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, s gochart.Style) {
	n := len(hs.m.Columns)
	px := func(x float64) int { return canvasBox.Left + xrange.Translate(x) }
	py := func(y float64) int { return canvasBox.Bottom - yrange.Translate(y) }

	font := s.GetFont()
	if font == nil {
		font, _ = gochart.GetDefaultFont()
	}
	r.SetFont(font)
	r.SetFontSize(heatAnnotation)

	for i := 0; i < n; i++ {
		top, bottom := py(float64(n-i)), py(float64(n-i-1))
		for j := 0; j < n; j++ {
			v := hs.m.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			left, right := px(float64(j)), px(float64(j+1))
			fill := diverging(v)
			fillRect(r, left, top, right, bottom, fill, fill, 0)
			r.SetFontColor(annotationColor(v))
			centeredText(r, fmt.Sprintf("%.2f", v), (left+right)/2, (top+bottom)/2)
		}
	}
	hs.renderColorBar(r, canvasBox)
}

func (hs heatSeries) renderColorBar(r gochart.Renderer, canvasBox gochart.Box) {
	left := canvasBox.Right + colorBarGap
	right := left + colorBarWidth
	height := float64(canvasBox.Height())
	for k := 0; k < colorBarSteps; k++ {
		// k=0 is the bottom strip (-1)
		v := -1 + 2*(float64(k)+0.5)/colorBarSteps
		bottom := canvasBox.Bottom - int(math.Round(height*float64(k)/colorBarSteps))
		top := canvasBox.Bottom - int(math.Round(height*float64(k+1)/colorBarSteps))
		c := diverging(v)
		fillRect(r, left, top, right, bottom, c, c, 0)
	}
	r.SetFontColor(darkText)
	for _, tick := range []float64{-1, -0.5, 0, 0.5, 1} {
		y := canvasBox.Bottom - int(math.Round(height*(tick+1)/2))
		line(r, right, y, right+5, y, darkText, 1)
		label := fmt.Sprintf("%.1f", tick)
		tb := r.MeasureText(label)
		r.Text(label, right+8, y+tb.Height()/2)
	}
}

func (r *Renderer) heatmap(w io.Writer, cols []*table.NumericColumn) error {
	names := make([]string, len(cols))
	values := make([][]float64, len(cols))
	for i, c := range cols {
		names[i] = c.Name()
		values[i] = c.Values()
	}
	m, err := stats.Correlation(names, values)
	if err != nil {
		return err
	}

	n := float64(len(names))
	xTicks := []gochart.Tick{{Value: 0, Label: ""}}
	yTicks := []gochart.Tick{{Value: 0, Label: ""}}
	for i, name := range names {
		label := truncateLabel(name, heatLabelMax)
		xTicks = append(xTicks, gochart.Tick{Value: float64(i) + 0.5, Label: label})
		yTicks = append(yTicks, gochart.Tick{Value: n - float64(i) - 0.5, Label: label})
	}
	xTicks = append(xTicks, gochart.Tick{Value: n, Label: ""})
	yTicks = append(yTicks, gochart.Tick{Value: n, Label: ""})

	ch := gochart.Chart{
		Title:      "Correlation matrix",
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: heatPadRight, Bottom: 20}},
		XAxis:      gochart.XAxis{Range: &gochart.ContinuousRange{Min: 0, Max: n}, Ticks: xTicks},
		YAxis: gochart.YAxis{
			AxisType: gochart.YAxisSecondary,
			Range:    &gochart.ContinuousRange{Min: 0, Max: n},
			Ticks:    yTicks,
		},
		Series: []gochart.Series{heatSeries{m: m}},
	}
	return ch.Render(gochart.PNG, w)
}
