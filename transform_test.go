package calgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformIdentity(t *testing.T) {
	x, y := Identity().Apply(3.5, -2)
	assert.Equal(t, 3.5, x)
	assert.Equal(t, -2.0, y)
}

func TestTransformTranslate(t *testing.T) {
	x, y := Translate(10, -5).Apply(1, 2)
	assert.Equal(t, 11.0, x)
	assert.Equal(t, -3.0, y)
}

func TestTransformRotate(t *testing.T) {
	// Positive rotation is clockwise in y-down space: +x maps onto +y.
	x, y := Rotate(math.Pi / 2).Apply(1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestTransformMulOrder(t *testing.T) {
	// t.Mul(u) applies u first, then t.
	tf := Translate(10, 0).Mul(Rotate(math.Pi / 2))
	x, y := tf.Apply(1, 0)
	assert.InDelta(t, 10, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestTransformMulMatchesApplyComposition(t *testing.T) {
	a := Rotate(0.3).Mul(Translate(2, -1))
	b := Scale(1.5, 0.5).Mul(Rotate(-1.1))

	for _, p := range [][2]float64{{0, 0}, {1, 0}, {-3, 7}, {0.25, -0.75}} {
		ix, iy := b.Apply(p[0], p[1])
		wantX, wantY := a.Apply(ix, iy)
		gotX, gotY := a.Mul(b).Apply(p[0], p[1])
		assert.InDelta(t, wantX, gotX, 1e-12)
		assert.InDelta(t, wantY, gotY, 1e-12)
	}
}

func TestTransformMulIdentity(t *testing.T) {
	tf := Rotate(0.7).Mul(Translate(3, 4)).Mul(Scale(2, 2))
	assert.Equal(t, tf, tf.Mul(Identity()))
	assert.Equal(t, tf, Identity().Mul(tf))
}

func TestScaleMagnitude(t *testing.T) {
	assert.InDelta(t, 4, Scale(2, 8).scaleMagnitude(), 1e-12)
	assert.InDelta(t, 1, Rotate(1.2).scaleMagnitude(), 1e-12)
	assert.InDelta(t, 1, Translate(100, -40).scaleMagnitude(), 1e-12)
	assert.InDelta(t, 1000, Scale(1000, 1000).Mul(Rotate(0.4)).scaleMagnitude(), 1e-6)
}
