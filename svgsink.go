package calgrid

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVGSink renders sink commands as an SVG document. The transform stack
// maps onto nested <g transform="matrix(...)"> groups, so sibling scopes
// cannot inherit each other's rotation or translation.
type SVGSink struct {
	canvas    *svg.SVG
	fonts     *FontCache
	lineWidth float64
	depth     int
	ended     bool
}

// NewSVGSink starts an SVG document of the given size with a white page
// background. fonts may be nil; text measurement then falls back to a
// glyph-aspect heuristic.
func NewSVGSink(w io.Writer, width, height float64, fonts *FontCache) *SVGSink {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#FFFFFF")
	return &SVGSink{canvas: canvas, fonts: fonts, lineWidth: 1}
}

// End closes any open groups and the SVG document.
func (s *SVGSink) End() {
	if s.ended {
		return
	}
	for s.depth > 0 {
		s.Pop()
	}
	s.canvas.End()
	s.ended = true
}

func (s *SVGSink) DrawBox(x, y, size float64, border, fill Color) {
	s.canvas.Rect(x, y, size, size, fmt.Sprintf(
		"fill:%s;stroke:%s;stroke-width:%g", fill.CSS(), border.CSS(), s.lineWidth))
}

func (s *SVGSink) DrawLine(x1, y1, x2, y2, width float64, c Color) {
	s.canvas.Line(x1, y1, x2, y2, fmt.Sprintf(
		"stroke:%s;stroke-width:%g", c.CSS(), width))
}

func (s *SVGSink) DrawText(x, y float64, text string, size float64, fontName string, c Color) {
	s.canvas.Text(x, y, text, fmt.Sprintf(
		"font-family:%s;font-size:%gpx;fill:%s", fontName, size, c.CSS()))
}

func (s *SVGSink) MeasureText(text string, size float64, fontName string) (float64, float64) {
	if s.fonts != nil {
		if w, h, ok := s.fonts.Measure(fontName, size, text); ok {
			return w, h
		}
		for _, fallback := range fontFallbacks {
			if w, h, ok := s.fonts.Measure(fallback, size, text); ok {
				return w, h
			}
		}
	}
	return float64(len([]rune(text))) * 0.55 * size, 0.7 * size
}

func (s *SVGSink) SetLineWidth(w float64) { s.lineWidth = w }

func (s *SVGSink) Push(tf Transform) {
	s.canvas.Gtransform(fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)",
		tf.A, tf.B, tf.C, tf.D, tf.E, tf.F))
	s.depth++
}

func (s *SVGSink) Pop() {
	if s.depth == 0 {
		return
	}
	s.canvas.Gend()
	s.depth--
}
