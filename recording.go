package calgrid

// Op identifies a recorded sink command.
type Op string

// Recorded command kinds.
const (
	OpBox       Op = "box"
	OpLine      Op = "line"
	OpText      Op = "text"
	OpLineWidth Op = "linewidth"
	OpPush      Op = "push"
	OpPop       Op = "pop"
)

// Command is one recorded sink call together with the absolute transform
// and stack depth in effect when it was issued.
type Command struct {
	Op     Op
	X, Y   float64
	X2, Y2 float64
	Size   float64
	Width  float64
	Text   string
	Border Color
	Fill   Color
	At     Transform
	Depth  int
}

// Recorder is a RenderSink that records the emitted command sequence and
// transform stack instead of drawing, so layout behavior can be asserted
// without a live drawing surface.
type Recorder struct {
	Commands []Command
	stack    []Transform

	// CharWidth and LineHeight shape the fake metrics returned by
	// MeasureText, expressed per point of font size.
	CharWidth  float64
	LineHeight float64
}

// NewRecorder returns an empty recording sink.
func NewRecorder() *Recorder {
	return &Recorder{
		stack:      []Transform{Identity()},
		CharWidth:  0.6,
		LineHeight: 1.0,
	}
}

// Current returns the transform at the top of the stack.
func (r *Recorder) Current() Transform { return r.stack[len(r.stack)-1] }

// Depth returns the number of open transform scopes.
func (r *Recorder) Depth() int { return len(r.stack) - 1 }

func (r *Recorder) record(c Command) {
	c.At = r.Current()
	c.Depth = r.Depth()
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) DrawBox(x, y, size float64, border, fill Color) {
	r.record(Command{Op: OpBox, X: x, Y: y, Size: size, Border: border, Fill: fill})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, width float64, c Color) {
	r.record(Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Border: c})
}

func (r *Recorder) DrawText(x, y float64, text string, size float64, fontName string, c Color) {
	r.record(Command{Op: OpText, X: x, Y: y, Text: text, Size: size, Fill: c})
}

func (r *Recorder) MeasureText(text string, size float64, fontName string) (float64, float64) {
	return float64(len([]rune(text))) * r.CharWidth * size, r.LineHeight * size
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Command{Op: OpLineWidth, Width: w})
}

func (r *Recorder) Push(tf Transform) {
	r.stack = append(r.stack, r.Current().Mul(tf))
	r.record(Command{Op: OpPush})
}

func (r *Recorder) Pop() {
	if len(r.stack) == 1 {
		panic("calgrid: Pop without matching Push")
	}
	r.record(Command{Op: OpPop})
	r.stack = r.stack[:len(r.stack)-1]
}

// Ops returns the recorded commands matching op, in emission order.
func (r *Recorder) Ops(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
