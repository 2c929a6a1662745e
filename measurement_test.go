package calgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 72, Inch(1), 1e-9)
	assert.InDelta(t, 841.889, Millimeter(297), 0.001)
	assert.InDelta(t, 28.3464, Centimeter(1), 0.001)
	assert.InDelta(t, 1, PointToInch(72), 1e-9)
	assert.InDelta(t, 25.4, PointToMillimeter(72), 1e-9)
}

func TestA1CanvasMatchesPaperSize(t *testing.T) {
	// A1 is 594 x 841 mm; the canvas constants are the point-rounded size.
	assert.InDelta(t, A1WidthPt, Millimeter(594), 1)
	assert.InDelta(t, A1HeightPt, Millimeter(841), 1)
}
