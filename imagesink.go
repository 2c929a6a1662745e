package calgrid

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSink rasterizes sink commands onto an RGBA image. Box and line
// geometry is mapped through the full transform stack; glyphs are drawn
// upright at the transformed anchor point.
type ImageSink struct {
	img       *image.RGBA
	stack     []Transform
	fonts     *FontCache
	lineWidth float64
	dpi       float64
}

// NewImageSink creates a raster surface of the given pixel size with a
// white page background. fonts may be nil, in which case text falls back to
// a built-in bitmap face and heuristic metrics.
func NewImageSink(width, height int, fonts *FontCache) *ImageSink {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return &ImageSink{
		img:       img,
		stack:     []Transform{Identity()},
		fonts:     fonts,
		lineWidth: 1,
		dpi:       96,
	}
}

// Image returns the rendered image.
func (s *ImageSink) Image() image.Image { return s.img }

// EncodePNG writes the rendered image as PNG.
func (s *ImageSink) EncodePNG(w io.Writer) error { return png.Encode(w, s.img) }

func (s *ImageSink) current() Transform { return s.stack[len(s.stack)-1] }

func (s *ImageSink) Push(tf Transform) {
	s.stack = append(s.stack, s.current().Mul(tf))
}

func (s *ImageSink) Pop() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *ImageSink) SetLineWidth(w float64) { s.lineWidth = w }

func (s *ImageSink) DrawBox(x, y, size float64, border, fill Color) {
	tf := s.current()
	corners := [4][2]float64{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
	var xs, ys [4]float64
	for i, c := range corners {
		xs[i], ys[i] = tf.Apply(c[0], c[1])
	}
	s.fillQuad(xs, ys, fill.RGBA())

	bw := int(math.Round(s.lineWidth * tf.scaleMagnitude()))
	if bw < 1 {
		bw = 1
	}
	bc := border.RGBA()
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		s.thickLine(xs[i], ys[i], xs[j], ys[j], bw, bc)
	}
}

func (s *ImageSink) DrawLine(x1, y1, x2, y2, width float64, c Color) {
	tf := s.current()
	px1, py1 := tf.Apply(x1, y1)
	px2, py2 := tf.Apply(x2, y2)
	pw := int(math.Round(width * tf.scaleMagnitude()))
	if pw < 1 {
		pw = 1
	}
	s.thickLine(px1, py1, px2, py2, pw, c.RGBA())
}

func (s *ImageSink) DrawText(x, y float64, text string, size float64, fontName string, c Color) {
	tf := s.current()
	px, py := tf.Apply(x, y)

	sizePx := size * tf.scaleMagnitude() * s.dpi / 72.0
	face := s.getFace(fontName, sizePx)
	d := &font.Drawer{
		Dst:  s.img,
		Src:  &image.Uniform{c.RGBA()},
		Face: face,
		Dot:  fixed.P(int(math.Round(px)), int(math.Round(py))),
	}
	d.DrawString(text)
}

func (s *ImageSink) MeasureText(text string, size float64, fontName string) (float64, float64) {
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
	// No usable font file: approximate with an average glyph aspect.
	return float64(len([]rune(text))) * 0.55 * size, 0.7 * size
}

// fontFallbacks are tried in order when the configured display face is not
// installed on the rendering host.
var fontFallbacks = []string{"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans"}

// getFace returns a TrueType font.Face for the given name and pixel size,
// falling back through common families to a built-in bitmap face.
func (s *ImageSink) getFace(name string, sizePx float64) font.Face {
	if sizePx <= 0 {
		sizePx = 10
	}
	if s.fonts != nil {
		if face := s.fonts.GetFace(name, sizePx, false); face != nil {
			return face
		}
		for _, fallback := range fontFallbacks {
			if face := s.fonts.GetFace(fallback, sizePx, false); face != nil {
				return face
			}
		}
	}
	return basicfont.Face7x13
}

// --- Raster primitives ---

func (s *ImageSink) fillQuad(xs, ys [4]float64, c color.RGBA) {
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	for py := int(minY); py <= int(math.Ceil(maxY)); py++ {
		for px := int(minX); px <= int(math.Ceil(maxX)); px++ {
			if pointInQuad(float64(px)+0.5, float64(py)+0.5, xs, ys) {
				s.setPixel(px, py, c)
			}
		}
	}
}

// pointInQuad tests the point against the quad edges by even-odd ray casting.
func pointInQuad(x, y float64, xs, ys [4]float64) bool {
	inside := false
	j := 3
	for i := 0; i < 4; i++ {
		if (ys[i] > y) != (ys[j] > y) &&
			x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
			inside = !inside
		}
		j = i
	}
	return inside
}

// thickLine draws a line of the given pixel width by stacking unit-width
// lines offset along the normal.
func (s *ImageSink) thickLine(x1, y1, x2, y2 float64, width int, c color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.setPixel(int(x1), int(y1), c)
		return
	}
	nx, ny := -dy/length, dx/length
	for i := 0; i < width; i++ {
		off := float64(i) - float64(width-1)/2
		s.line(
			int(math.Round(x1+nx*off)), int(math.Round(y1+ny*off)),
			int(math.Round(x2+nx*off)), int(math.Round(y2+ny*off)), c)
	}
}

// line draws a unit-width line with Bresenham's algorithm.
func (s *ImageSink) line(x1, y1, x2, y2 int, c color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		s.setPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (s *ImageSink) setPixel(x, y int, c color.RGBA) {
	bounds := s.img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		s.img.SetRGBA(x, y, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
