package chart

import (
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func fillRect(r gochart.Renderer, left, top, right, bottom int, fill, stroke drawing.Color, strokeWidth float64) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(strokeWidth)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.LineTo(left, top)
	r.Close()
	r.FillStroke()
}

func line(r gochart.Renderer, x0, y0, x1, y1 int, stroke drawing.Color, width float64) {
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(width)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

// centeredText writes body centred on (x, y).
func centeredText(r gochart.Renderer, body string, x, y int) {
	tb := r.MeasureText(body)
	r.Text(body, x-tb.Width()/2, y+tb.Height()/2)
}

// truncateLabel shortens long axis labels so they stay inside the canvas.
func truncateLabel(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max-1]) + "…"
}
