package calgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectGeometry(t *testing.T) {
	cfg := DefaultConfig()
	for rows := cfg.MinAge; rows <= cfg.MaxAge; rows++ {
		geom, err := RectGeometry(cfg, rows)
		require.NoError(t, err, "rows %d", rows)
		assert.Positive(t, geom.BoxSize, "rows %d", rows)
		assert.Positive(t, geom.LeftMargin, "rows %d", rows)

		// Centering accounts for the extra gap after every column group.
		gridWidth := (geom.BoxSize+cfg.BoxMargin)*float64(cfg.ColumnCount) +
			cfg.BoxMargin*float64(cfg.ColumnCount)/float64(cfg.GroupEvery)
		assert.InDelta(t, (cfg.CanvasWidth-gridWidth)/2, geom.LeftMargin, 1e-9, "rows %d", rows)
	}
}

func TestRectGeometry_Infeasible(t *testing.T) {
	cfg := DefaultConfig()

	_, err := RectGeometry(cfg, 5000)
	var infeasible *LayoutInfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.Equal(t, 5000, infeasible.Rows)

	_, err = RectGeometry(cfg, 0)
	require.ErrorAs(t, err, &infeasible)

	_, _, err = LayoutRectGrid(cfg, Date(1990, time.June, 15), 5000, LifeClassifier(Date(1990, time.June, 15), time.Time{}))
	assert.ErrorAs(t, err, &infeasible)
}

func TestLayoutRectGrid_Structure(t *testing.T) {
	cfg := DefaultConfig()
	birth := Date(1990, time.June, 15)
	grid, geom, err := LayoutRectGrid(cfg, birth, 90, LifeClassifier(birth, time.Time{}))
	require.NoError(t, err)
	require.Len(t, grid.Rows, 90)

	start := MondayOf(birth)
	for r, row := range grid.Rows {
		require.Len(t, row.Cells, cfg.ColumnCount, "row %d", r)
		assert.Equal(t, r, row.Index)

		// Rows advance by the fixed 52-week stride, not calendar years.
		assert.Equal(t, AddWeeks(start, r*RowStride), row.Cells[0].Date, "row %d", r)
		for c := 1; c < len(row.Cells); c++ {
			assert.Equal(t, AddWeeks(row.Cells[c-1].Date, 1), row.Cells[c].Date,
				"row %d col %d", r, c)
		}
	}

	// The extra group gap appears after every fourth column and nowhere else.
	cells := grid.Rows[0].Cells
	assert.InDelta(t, geom.BoxSize+geom.Spacing, cells[1].X-cells[0].X, 1e-9)
	assert.InDelta(t, geom.BoxSize+2*geom.Spacing, cells[4].X-cells[3].X, 1e-9)
	assert.InDelta(t, geom.BoxSize+geom.Spacing, cells[5].X-cells[4].X, 1e-9)
}

func TestLayoutRectGrid_OneBirthdayPerRow(t *testing.T) {
	cfg := DefaultConfig()
	birth := Date(1990, time.June, 15)
	grid, _, err := LayoutRectGrid(cfg, birth, 90, LifeClassifier(birth, time.Time{}))
	require.NoError(t, err)

	for r, row := range grid.Rows {
		birthdays := 0
		for _, cell := range row.Cells {
			if cell.Category == CategoryBirthday {
				birthdays++
			}
		}
		assert.Equal(t, 1, birthdays, "row %d", r)
	}
}

func TestLayoutRectGrid_BirthdayDrift(t *testing.T) {
	// Over decades the fixed 52-week stride drifts against the calendar, so
	// the birthday cell wanders left across the row. For a mid-June birth
	// date the life-year 34 row finds its birthday week in early column 6,
	// the week of June 10 2024.
	cfg := DefaultConfig()
	birth := Date(1990, time.June, 15)
	grid, _, err := LayoutRectGrid(cfg, birth, 90, LifeClassifier(birth, Date(2024, time.January, 1)))
	require.NoError(t, err)

	row := grid.Rows[34]
	var found *Cell
	for i := range row.Cells {
		if row.Cells[i].Category == CategoryBirthday {
			require.Nil(t, found, "second birthday cell in row 34")
			found = &row.Cells[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 6, found.Col)
	assert.Equal(t, Date(2024, time.June, 10), found.Date)

	// Row 0 starts on the birth week itself.
	assert.Equal(t, CategoryBirthday, grid.Rows[0].Cells[0].Category)
}

func TestLayoutRectGrid_Darkening(t *testing.T) {
	cfg := DefaultConfig()
	birth := Date(1990, time.June, 15)
	cutoff := Date(2024, time.January, 1)
	grid, _, err := LayoutRectGrid(cfg, birth, 90, LifeClassifier(birth, cutoff))
	require.NoError(t, err)

	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			assert.Equal(t, cell.Date.Before(cutoff), cell.Darkened,
				"week of %s", cell.Date.Format(DateFormat))
		}
	}
}
