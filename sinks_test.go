package calgrid

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ RenderSink = (*Recorder)(nil)
	_ RenderSink = (*PDFSink)(nil)
	_ RenderSink = (*ImageSink)(nil)
	_ RenderSink = (*SVGSink)(nil)
)

func TestPDFSink_LifeCalendar(t *testing.T) {
	lc := NewLifeCalendar(Date(1990, time.June, 15))
	lc.Subtitle = "1990-06-15"
	lc.ShadeUntil = Date(2024, time.January, 1)

	sink := NewPDFSink(A1WidthPt, A1HeightPt)
	require.NoError(t, lc.Render(sink))

	var buf bytes.Buffer
	require.NoError(t, sink.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFSink_GoalCalendar(t *testing.T) {
	gc := NewGoalCalendar(Date(2024, time.March, 1))
	cfg := DefaultConfig()
	side := cfg.CanvasSize * cfg.PixelScale

	sink := NewPDFSink(side, side)
	require.NoError(t, gc.Render(sink))

	var buf bytes.Buffer
	require.NoError(t, sink.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFSink_OutputDrainsOpenScopes(t *testing.T) {
	sink := NewPDFSink(100, 100)
	sink.Push(Translate(10, 10))
	sink.Push(Rotate(math.Pi / 4))

	var buf bytes.Buffer
	require.NoError(t, sink.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestImageSink_DrawBox(t *testing.T) {
	sink := NewImageSink(200, 200, nil)
	red := NewColor("FF0000")
	sink.DrawBox(50, 50, 100, ColorBlack, red)

	img := sink.Image()
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, img.At(100, 100))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, img.At(100, 50), "top border")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.At(10, 10), "page background")
}

func TestImageSink_Transformed(t *testing.T) {
	sink := NewImageSink(200, 200, nil)
	red := NewColor("FF0000")

	sink.Push(Translate(100, 0))
	sink.DrawBox(0, 0, 50, ColorBlack, red)
	sink.Pop()

	img := sink.Image()
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, img.At(120, 20))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.At(60, 20))
}

func TestImageSink_EncodePNG(t *testing.T) {
	sink := NewImageSink(50, 50, nil)
	sink.DrawLine(0, 0, 49, 49, 2, ColorBlack)
	sink.DrawText(5, 25, "ok", 10, "missing-font", ColorBlack)

	var buf bytes.Buffer
	require.NoError(t, sink.EncodePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSVGSink(t *testing.T) {
	var buf strings.Builder
	sink := NewSVGSink(&buf, 100, 100, nil)

	sink.Push(Rotate(0.5))
	sink.SetLineWidth(2)
	sink.DrawBox(10, 10, 20, ColorBlack, ColorWhite)
	sink.DrawText(5, 5, "hello", 12, "Brocha", ColorBlack)
	sink.Pop()
	sink.End()
	sink.End() // idempotent

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "matrix(")
	assert.Contains(t, out, "stroke-width:2")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, strings.Count(out, "<g "), strings.Count(out, "</g>"))
}

func TestSVGSink_EndDrainsOpenScopes(t *testing.T) {
	var buf strings.Builder
	sink := NewSVGSink(&buf, 100, 100, nil)
	sink.Push(Translate(1, 2))
	sink.Push(Translate(3, 4))
	sink.End()

	out := buf.String()
	assert.Equal(t, strings.Count(out, "<g "), strings.Count(out, "</g>"))
}

func TestSVGSink_GoalCalendar(t *testing.T) {
	gc := NewGoalCalendar(Date(2024, time.March, 1))
	var buf strings.Builder
	cfg := DefaultConfig()
	side := cfg.CanvasSize * cfg.PixelScale

	sink := NewSVGSink(&buf, side, side, nil)
	require.NoError(t, gc.Render(sink))
	sink.End()

	out := buf.String()
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "December")
	assert.Equal(t, strings.Count(out, "<g "), strings.Count(out, "</g>"))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Push(Translate(10, 0))
	rec.Push(Scale(2, 2))
	assert.Equal(t, 2, rec.Depth())

	x, y := rec.Current().Apply(1, 1)
	assert.InDelta(t, 12, x, 1e-12)
	assert.InDelta(t, 2, y, 1e-12)

	rec.DrawBox(0, 0, 5, ColorBlack, ColorWhite)
	boxes := rec.Ops(OpBox)
	require.Len(t, boxes, 1)
	assert.Equal(t, 2, boxes[0].Depth)

	rec.Pop()
	rec.Pop()
	assert.Zero(t, rec.Depth())
	assert.Panics(t, func() { rec.Pop() })
}
