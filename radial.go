package calgrid

import (
	"math"
	"time"
)

// Sector is one month's angular slice of the goal calendar.
type Sector struct {
	Month time.Month
	// Angle is the sector's rotation from the start angle, radians.
	Angle float64
	// Weeks are the month's week rows of day cells; X positions are in
	// local box units.
	Weeks []Row
	Label string
}

// RadialLayout is the computed goal-calendar layout: twelve per-month week
// grids arranged around the circle center.
type RadialLayout struct {
	Year    int
	Sectors []Sector
}

// LayoutRadialGrid computes the per-month week grids of the goal calendar
// for the year containing today. Days outside a sector's month become empty
// padding cells; real days are classified through classify.
func LayoutRadialGrid(cfg *Config, today time.Time, firstDay time.Weekday, classify ClassifyFunc) *RadialLayout {
	layout := &RadialLayout{
		Year:    today.Year(),
		Sectors: make([]Sector, 0, cfg.SectorCount),
	}
	for m := 1; m <= cfg.SectorCount; m++ {
		month := time.Month(m)
		sector := Sector{
			Month: month,
			Angle: 2 * math.Pi * float64(m-1) / float64(cfg.SectorCount),
			Label: month.String(),
		}
		for w, week := range monthWeeks(today.Year(), month, firstDay) {
			row := Row{Index: w, Cells: make([]Cell, 0, len(week))}
			for i, day := range week {
				cell := Cell{Row: w, Col: i, X: float64(i) * cfg.BoxAdvance}
				if day.Month() != month {
					cell.Category = CategoryEmpty
				} else {
					cell.Date = day
					cell.Category, cell.Darkened = classify(day)
				}
				row.Cells = append(row.Cells, cell)
			}
			sector.Weeks = append(sector.Weeks, row)
		}
		layout.Sectors = append(layout.Sectors, sector)
	}
	return layout
}

// rowTransform returns the cumulative transform of week row w within a
// sector frame: each row rotates by RowRotate and nudges outward so the up
// to six week rows of a month fan around the circle instead of overlapping.
func rowTransform(cfg *Config, w int) Transform {
	tf := Translate(0, cfg.SectorGap)
	for i := 0; i < w; i++ {
		tf = tf.Mul(Rotate(cfg.RowRotate)).Mul(Translate(cfg.RowOffsetX, cfg.RowOffsetY))
	}
	return tf
}
