package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	barFill     = drawing.Color{R: 70, G: 130, B: 180, A: 255}
	barEdge     = drawing.Color{R: 40, G: 80, B: 120, A: 255}
	densityLine = drawing.Color{R: 200, G: 60, B: 40, A: 255}
	medianLine  = drawing.Color{R: 230, G: 120, B: 20, A: 255}
	darkText    = drawing.Color{R: 20, G: 20, B: 20, A: 255}
	lightText   = drawing.Color{R: 255, G: 255, B: 255, A: 255}
)

// coolwarm anchors: blue at -1, light grey at 0, red at +1.
var (
	coolLow  = drawing.Color{R: 59, G: 76, B: 192, A: 255}
	coolMid  = drawing.Color{R: 221, G: 221, B: 221, A: 255}
	coolHigh = drawing.Color{R: 180, G: 4, B: 38, A: 255}
)

// diverging maps v in [-1, 1] onto the blue-white-red scale. Values outside
// the range are clamped.
func diverging(v float64) drawing.Color {
	v = math.Max(-1, math.Min(1, v))
	if v < 0 {
		return lerp(coolMid, coolLow, -v)
	}
	return lerp(coolMid, coolHigh, v)
}

func lerp(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// annotationColor picks a text colour readable on the given cell value.
func annotationColor(v float64) drawing.Color {
	if math.Abs(v) > 0.6 {
		return lightText
	}
	return darkText
}
