package calgrid

import "math"

// Transform is an immutable 2D affine transform in SVG/PDF order:
// x' = A·x + C·y + E, y' = B·x + D·y + F. Layouts thread explicit Transform
// values through the render sink instead of mutating a long-lived drawing
// context, so sector and row rendering stay provably independent.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Transform {
	return Transform{A: 1, D: 1, E: x, F: y}
}

// Rotate returns a rotation by theta radians. In the y-down document space
// used throughout, positive angles rotate clockwise on screen.
func Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// Scale returns a scaling by (sx, sy).
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Mul composes transforms: (t.Mul(u)).Apply(p) equals t.Apply(u.Apply(p)),
// so successive local operations compose left to right as t.Mul(op1).Mul(op2).
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// scaleMagnitude is the average absolute scale factor of the transform, used
// to size strokes and glyphs drawn under scaling transforms.
func (t Transform) scaleMagnitude() float64 {
	det := t.A*t.D - t.B*t.C
	return math.Sqrt(math.Abs(det))
}
