package calgrid

import (
	"io"

	"codeberg.org/go-pdf/fpdf"
)

// pdfFontFamily is the built-in font used for PDF text metrics and drawing.
// Helvetica metrics keep the layout stable without shipping font files; the
// configured display face is a print-time substitution.
const pdfFontFamily = "Helvetica"

// PDFSink renders sink commands into a single-page PDF document.
type PDFSink struct {
	pdf    *fpdf.Fpdf
	height float64
	depth  int
}

// NewPDFSink creates a single-page PDF surface of the given size in points.
func NewPDFSink(width, height float64) *PDFSink {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "", 12)
	pdf.SetLineWidth(1)
	return &PDFSink{pdf: pdf, height: height}
}

// Output closes any open transform scopes and writes the finished document.
// Drawing errors accumulated by the underlying writer surface here.
func (s *PDFSink) Output(w io.Writer) error {
	for s.depth > 0 {
		s.Pop()
	}
	return s.pdf.Output(w)
}

func (s *PDFSink) DrawBox(x, y, size float64, border, fill Color) {
	s.pdf.SetDrawColor(int(border.GetRed()), int(border.GetGreen()), int(border.GetBlue()))
	s.pdf.SetFillColor(int(fill.GetRed()), int(fill.GetGreen()), int(fill.GetBlue()))
	s.pdf.Rect(x, y, size, size, "FD")
}

func (s *PDFSink) DrawLine(x1, y1, x2, y2, width float64, c Color) {
	s.pdf.SetDrawColor(int(c.GetRed()), int(c.GetGreen()), int(c.GetBlue()))
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *PDFSink) DrawText(x, y float64, text string, size float64, fontName string, c Color) {
	s.pdf.SetTextColor(int(c.GetRed()), int(c.GetGreen()), int(c.GetBlue()))
	s.setFontSize(size)
	s.pdf.Text(x, y, text)
}

func (s *PDFSink) MeasureText(text string, size float64, fontName string) (float64, float64) {
	s.pdf.SetFontSize(size)
	// Cap height approximation: Helvetica caps sit at ~0.72 em.
	return s.pdf.GetStringWidth(text), 0.72 * size
}

func (s *PDFSink) SetLineWidth(w float64) {
	s.pdf.SetLineWidth(w)
}

// setFontSize re-selects the font size for the next text operator. The
// underlying writer skips the operator when its cached size matches, but a
// graphics state restore (TransformEnd) may have reverted the actual font
// selection, so a matching cache is nudged to force re-emission.
func (s *PDFSink) setFontSize(size float64) {
	if ptSize, _ := s.pdf.GetFontSize(); ptSize == size {
		s.pdf.SetFontSize(size * 2)
	}
	s.pdf.SetFontSize(size)
}

// Push opens a PDF graphics state scope carrying the transform. The raw
// Transform operator takes a device-space matrix (y-up, origin bottom-left),
// so the y-down layout transform is conjugated by the page flip.
func (s *PDFSink) Push(tf Transform) {
	s.pdf.TransformBegin()
	flip := Transform{A: 1, D: -1, F: s.height}
	m := flip.Mul(tf).Mul(flip)
	s.pdf.Transform(fpdf.TransformMatrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
	s.depth++
}

func (s *PDFSink) Pop() {
	if s.depth == 0 {
		return
	}
	s.pdf.TransformEnd()
	s.depth--
}
