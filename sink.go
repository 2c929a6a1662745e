package calgrid

// RenderSink is the drawing surface driven by the layout engine. Layouts
// emit boxes, lines and text under an explicit affine transform stack; they
// never touch pixels or paths directly. Implementations must keep Push/Pop
// scopes independent: state entered in one scope may not leak into siblings.
type RenderSink interface {
	// DrawBox draws a square of the given side length with its top-left
	// corner at (x, y), stroked with border and filled with fill.
	DrawBox(x, y, size float64, border, fill Color)
	// DrawLine draws a straight line of the given stroke width.
	DrawLine(x1, y1, x2, y2, width float64, c Color)
	// DrawText draws text with its baseline origin at (x, y).
	DrawText(x, y float64, text string, size float64, fontName string, c Color)
	// MeasureText returns the rendered extent of text at the given size, in
	// the caller's local coordinate units.
	MeasureText(text string, size float64, fontName string) (w, h float64)
	// SetLineWidth sets the stroke width for subsequent DrawBox borders, in
	// local coordinate units.
	SetLineWidth(w float64)
	// Push enters a transform scope: tf composes onto the current transform
	// until the matching Pop.
	Push(tf Transform)
	// Pop leaves the innermost transform scope.
	Pop()
}
