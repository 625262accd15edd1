// Package chart renders the report's diagnostic charts as base64 PNG payloads.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"go.uber.org/zap"

	"github.com/KaramelBytes/sheetstat/internal/table"
)

// Kind names a chart type.
type Kind string

const (
	Histogram   Kind = "histogram"
	Boxplot     Kind = "boxplot"
	Barplot     Kind = "barplot"
	Correlation Kind = "correlation"
)

// Canvas size in pixels (10x6 inches at 100 dpi).
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// Renderer draws one chart per call. It keeps no state between calls.
type Renderer struct {
	Width  int
	Height int
	log    *zap.Logger
}

// New returns a Renderer with the default canvas size. A nil logger is replaced by a no-op one.
func New(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight, log: log}
}

// Render draws kind for column (ignored for Correlation) and returns the PNG
// encoded as standard base64. Requests that do not apply to the column, or
// name a column the table lacks, produce an empty canvas.
func (r *Renderer) Render(t *table.Table, column string, kind Kind) (payload string, err error) {
	var buf bytes.Buffer
	defer func() {
		if p := recover(); p != nil {
			payload = ""
			err = &RenderError{Kind: kind, Column: column, Err: fmt.Errorf("panic: %v", p)}
		}
		buf.Reset()
	}()
	if t == nil {
		return "", &RenderError{Kind: kind, Column: column, Err: fmt.Errorf("nil table")}
	}
	if err := r.draw(&buf, t, column, kind); err != nil {
		return "", &RenderError{Kind: kind, Column: column, Err: err}
	}
	r.log.Debug("chart rendered",
		zap.String("kind", string(kind)),
		zap.String("column", column),
		zap.Int("bytes", buf.Len()))
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (r *Renderer) draw(w io.Writer, t *table.Table, column string, kind Kind) error {
	switch kind {
	case Histogram, Boxplot:
		col, ok := t.Column(column)
		nc, isNum := col.(*table.NumericColumn)
		if !ok || !isNum || len(nc.NonMissing()) == 0 {
			return r.blank(w)
		}
		if kind == Histogram {
			return r.histogram(w, nc)
		}
		return r.boxplot(w, nc)
	case Barplot:
		col, ok := t.Column(column)
		cc, isCat := col.(*table.CategoricalColumn)
		if !ok || !isCat || len(cc.NonMissing()) == 0 {
			return r.blank(w)
		}
		return r.barplot(w, cc)
	case Correlation:
		cols := t.NumericColumns()
		if len(cols) < 2 {
			return r.blank(w)
		}
		return r.heatmap(w, cols)
	default:
		return fmt.Errorf("unknown chart kind %q", kind)
	}
}

// blank writes an empty white canvas.
func (r *Renderer) blank(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return png.Encode(w, img)
}
