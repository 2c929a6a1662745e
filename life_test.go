package calgrid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifeCalendarValidate(t *testing.T) {
	lc := NewLifeCalendar(Date(1990, time.June, 15))
	assert.NoError(t, lc.Validate())
}

func TestLifeCalendarValidate_TitleTooLong(t *testing.T) {
	lc := NewLifeCalendar(Date(1990, time.June, 15))
	lc.Title = strings.Repeat("x", 31)

	var tooLong *TitleTooLongError
	require.ErrorAs(t, lc.Validate(), &tooLong)
	assert.Equal(t, 30, tooLong.Max)

	// 30 runes is still fine, multi-byte ones included.
	lc.Title = strings.Repeat("ä", 30)
	assert.NoError(t, lc.Validate())
}

func TestLifeCalendarValidate_AgeOutOfRange(t *testing.T) {
	for _, age := range []int{79, 101} {
		lc := NewLifeCalendar(Date(1990, time.June, 15))
		lc.Age = age

		var outOfRange *AgeOutOfRangeError
		require.ErrorAs(t, lc.Validate(), &outOfRange, "age %d", age)
		assert.Equal(t, age, outOfRange.Age)
		assert.Equal(t, 80, outOfRange.Min)
		assert.Equal(t, 100, outOfRange.Max)
	}
}

func TestLifeCalendarValidate_ZeroBirth(t *testing.T) {
	lc := NewLifeCalendar(time.Time{})
	var invalid *InvalidDateError
	assert.ErrorAs(t, lc.Validate(), &invalid)
}

func TestLifeCalendarRender(t *testing.T) {
	lc := NewLifeCalendar(Date(1990, time.June, 15))
	lc.Subtitle = "1990-06-15"
	lc.Sidebar = "generated for testing"
	lc.ShadeUntil = Date(2024, time.January, 1)

	rec := NewRecorder()
	require.NoError(t, lc.Render(rec))
	assert.Zero(t, rec.Depth(), "unbalanced transform scopes")

	// 90 rows of 52 week cells plus the two legend swatches.
	assert.Len(t, rec.Ops(OpBox), 90*52+2)

	// Title, subtitle, two legend entries, 13 week numbers, 90 year
	// numbers and the sidebar.
	texts := rec.Ops(OpText)
	assert.Len(t, texts, 1+1+2+13+90+1)

	var seen []string
	for _, cmd := range texts {
		seen = append(seen, cmd.Text)
	}
	assert.Contains(t, seen, DefaultTitle)
	assert.Contains(t, seen, "1990-06-15")
	assert.Contains(t, seen, "Birthday")
	assert.Contains(t, seen, "New year")
	assert.Contains(t, seen, "52")
	assert.Contains(t, seen, "89")
}

func TestLifeCalendarRender_SidebarRotated(t *testing.T) {
	lc := NewLifeCalendar(Date(1990, time.June, 15))
	lc.Sidebar = "every week counts"

	rec := NewRecorder()
	require.NoError(t, lc.Render(rec))

	var sidebar *Command
	for i, cmd := range rec.Commands {
		if cmd.Op == OpText && cmd.Text == lc.Sidebar {
			sidebar = &rec.Commands[i]
		}
	}
	require.NotNil(t, sidebar)
	assert.Equal(t, 1, sidebar.Depth)
	// Rotated a quarter turn counter-clockwise: +x maps onto -y.
	assert.InDelta(t, 0, sidebar.At.A, 1e-12)
	assert.InDelta(t, -1, sidebar.At.B, 1e-12)
}

func TestLifeCalendarRender_ValidationStopsDrawing(t *testing.T) {
	lc := NewLifeCalendar(Date(1990, time.June, 15))
	lc.Age = 200

	rec := NewRecorder()
	var outOfRange *AgeOutOfRangeError
	require.ErrorAs(t, lc.Render(rec), &outOfRange)
	assert.Empty(t, rec.Commands, "failed render must not draw")
}

func TestPaletteFillFor(t *testing.T) {
	p := DefaultConfig().Colors

	assert.Equal(t, p.Plain, p.fillFor(Cell{Category: CategoryPlain}))
	assert.Equal(t, p.Birthday, p.fillFor(Cell{Category: CategoryBirthday}))
	assert.Equal(t, p.NewYear, p.fillFor(Cell{Category: CategoryNewYear}))

	darkened := p.fillFor(Cell{Category: CategoryPlain, Darkened: true})
	assert.Equal(t, p.Plain.Shade(p.DarkenDelta), darkened)
	assert.NotEqual(t, p.Plain, darkened)
}
