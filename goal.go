package calgrid

import (
	"math"
	"time"
)

// GoalCalendar describes one radial goal-calendar poster: the twelve months
// of the reference date's year fanned around a circle, past days filled.
type GoalCalendar struct {
	// Date is the reference "today"; it also selects the year.
	Date time.Time
	// FirstDay is the first day of each week row; Monday unless overridden.
	FirstDay time.Weekday

	// Config overrides the default layout; nil means DefaultConfig.
	Config *Config
}

// NewGoalCalendar returns a poster for the year of the given date with
// Monday-start weeks.
func NewGoalCalendar(date time.Time) *GoalCalendar {
	return &GoalCalendar{Date: date, FirstDay: time.Monday}
}

func (gc *GoalCalendar) config() *Config {
	if gc.Config != nil {
		return gc.Config
	}
	return DefaultConfig()
}

// Validate checks the poster inputs before any drawing happens.
func (gc *GoalCalendar) Validate() error {
	if err := gc.config().Validate(); err != nil {
		return err
	}
	if gc.Date.IsZero() {
		return &InvalidDateError{Value: ""}
	}
	return nil
}

// Render validates the poster and draws it into sink. Every sector and
// every week row is drawn in its own transform scope, so no sector inherits
// a sibling's rotation or translation.
func (gc *GoalCalendar) Render(sink RenderSink) error {
	if err := gc.Validate(); err != nil {
		return err
	}
	cfg := gc.config()
	layout := LayoutRadialGrid(cfg, gc.Date, gc.FirstDay, GoalClassifier(gc.Date))

	sink.Push(Scale(cfg.PixelScale, cfg.PixelScale))
	sink.Push(Translate(cfg.CanvasSize/2, cfg.CanvasSize/2).Mul(Rotate(cfg.StartAngle)))
	for _, sector := range layout.Sectors {
		gc.renderSector(sink, cfg, sector)
	}
	sink.Pop()
	sink.Pop()
	return nil
}

func (gc *GoalCalendar) renderSector(sink RenderSink, cfg *Config, sector Sector) {
	sink.Push(Rotate(sector.Angle).Mul(Translate(cfg.Radius, 0)))

	sink.DrawLine(0, 0, cfg.TickLength, 0, cfg.TickWidth, cfg.Colors.Border)

	for _, week := range sector.Weeks {
		sink.Push(rowTransform(cfg, week.Index).Mul(Scale(cfg.BoxScale, cfg.BoxScale)))
		sink.SetLineWidth(cfg.TickWidth * 5)
		for _, cell := range week.Cells {
			border := cfg.Colors.Border
			fill := cfg.Colors.Plain
			switch {
			case cell.Category == CategoryEmpty:
				// Padding days keep the row rhythm but draw blank.
				border = cfg.Colors.Plain
			case cell.Darkened:
				fill = cfg.Colors.Past
			}
			sink.DrawBox(cell.X, 0, 1, border, fill)
		}
		sink.Pop()
	}

	gc.renderLabel(sink, cfg, sector)
	sink.Pop()
}

// renderLabel places the month name past the sector's outer edge,
// counter-rotated so the text reads upright regardless of sector angle and
// centered on its measured width.
func (gc *GoalCalendar) renderLabel(sink RenderSink, cfg *Config, sector Sector) {
	sink.Push(Translate(cfg.LabelX, cfg.LabelY).Mul(Rotate(math.Pi/2 - sector.Angle)))
	w, h := sink.MeasureText(sector.Label, cfg.LabelFontSize, cfg.FontName)
	sink.DrawText(-w/2, h/2, sector.Label, cfg.LabelFontSize, cfg.FontName, cfg.Colors.Text)
	sink.Pop()
}
