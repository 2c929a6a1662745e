package calgrid

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// DefaultTitle is the life-calendar title used when none is given.
const DefaultTitle = "LIFE CALENDAR"

// LifeCalendar describes one life-calendar poster: a 52-column week grid
// with one row per year of life, plus title, subtitle, sidebar, legend and
// number labels around it.
type LifeCalendar struct {
	Birth    time.Time
	Age      int
	Title    string
	Subtitle string
	Sidebar  string
	// ShadeUntil darkens every week starting strictly before it. The zero
	// time disables shading.
	ShadeUntil time.Time

	// Config overrides the default layout; nil means DefaultConfig.
	Config *Config
}

// NewLifeCalendar returns a poster for the given birth date with the
// defaults of the reference output: 90 rows, standard title, no shading.
func NewLifeCalendar(birth time.Time) *LifeCalendar {
	return &LifeCalendar{Birth: birth, Age: 90, Title: DefaultTitle}
}

func (lc *LifeCalendar) config() *Config {
	if lc.Config != nil {
		return lc.Config
	}
	return DefaultConfig()
}

// Validate checks every poster input before any drawing happens, so a
// failed render never leaves a partially drawn document.
func (lc *LifeCalendar) Validate() error {
	cfg := lc.config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if lc.Birth.IsZero() {
		return &InvalidDateError{Value: ""}
	}
	if utf8.RuneCountInString(lc.Title) > cfg.MaxTitleLen {
		return &TitleTooLongError{Title: lc.Title, Max: cfg.MaxTitleLen}
	}
	if lc.Age < cfg.MinAge || lc.Age > cfg.MaxAge {
		return &AgeOutOfRangeError{Age: lc.Age, Min: cfg.MinAge, Max: cfg.MaxAge}
	}
	if _, err := RectGeometry(cfg, lc.Age); err != nil {
		return err
	}
	return nil
}

// Render validates the poster and draws it into sink.
func (lc *LifeCalendar) Render(sink RenderSink) error {
	if err := lc.Validate(); err != nil {
		return err
	}
	cfg := lc.config()
	grid, geom, err := LayoutRectGrid(cfg, lc.Birth, lc.Age, LifeClassifier(lc.Birth, lc.ShadeUntil))
	if err != nil {
		return err
	}

	sink.SetLineWidth(cfg.BoxLineWidth)
	lc.drawTitle(sink, cfg)
	lc.drawSubtitle(sink, cfg)
	lc.drawLegend(sink, cfg, geom)
	lc.drawWeekNumbers(sink, cfg, geom)
	lc.drawYearNumbers(sink, cfg, geom)
	lc.drawGrid(sink, cfg, grid, geom)
	lc.drawSidebar(sink, cfg, geom)
	return nil
}

func (lc *LifeCalendar) drawTitle(sink RenderSink, cfg *Config) {
	w, h := sink.MeasureText(lc.Title, cfg.TitleFontSize, cfg.FontName)
	sink.DrawText(cfg.CanvasWidth/2-w/2, cfg.TopMargin/2-h/2,
		lc.Title, cfg.TitleFontSize, cfg.FontName, cfg.Colors.Text)
}

func (lc *LifeCalendar) drawSubtitle(sink RenderSink, cfg *Config) {
	if lc.Subtitle == "" {
		return
	}
	w, h := sink.MeasureText(lc.Subtitle, cfg.SmallFontSize, cfg.FontName)
	sink.DrawText(cfg.CanvasWidth/2-w/2, cfg.TopMargin/2-h/2+15,
		lc.Subtitle, cfg.SmallFontSize, cfg.FontName, cfg.Colors.Muted)
}

func (lc *LifeCalendar) drawLegend(sink RenderSink, cfg *Config, geom BoxGeometry) {
	entries := []struct {
		desc  string
		color Color
	}{
		{"Birthday", cfg.Colors.Birthday},
		{"New year", cfg.Colors.NewYear},
	}

	y := geom.LeftMargin / 4
	for _, entry := range entries {
		sink.DrawBox(geom.LeftMargin, y, geom.BoxSize, cfg.Colors.Border, entry.color)

		_, h := sink.MeasureText(entry.desc, cfg.SmallFontSize, cfg.FontName)
		sink.DrawText(geom.LeftMargin+geom.BoxSize*1.5, y+geom.BoxSize/2+h/2,
			entry.desc, cfg.SmallFontSize, cfg.FontName, cfg.Colors.Text)

		y += geom.BoxSize + geom.Spacing
	}
}

func (lc *LifeCalendar) drawWeekNumbers(sink RenderSink, cfg *Config, geom BoxGeometry) {
	x := geom.LeftMargin
	for idx := 1; idx <= cfg.ColumnCount; idx++ {
		if cfg.GroupEvery > 0 && idx%cfg.GroupEvery == 0 {
			label := strconv.Itoa(idx)
			w, _ := sink.MeasureText(label, cfg.TinyFontSize, cfg.FontName)
			sink.DrawText(x+geom.BoxSize/2-w/2, geom.TopMargin-geom.BoxSize,
				label, cfg.TinyFontSize, cfg.FontName, cfg.Colors.Text)
			x += geom.Spacing
		}
		x += geom.BoxSize + geom.Spacing
	}
}

func (lc *LifeCalendar) drawYearNumbers(sink RenderSink, cfg *Config, geom BoxGeometry) {
	y := geom.TopMargin
	for year := 0; year < lc.Age; year++ {
		label := strconv.Itoa(year)
		w, h := sink.MeasureText(label, cfg.TinyFontSize, cfg.FontName)
		sink.DrawText(geom.LeftMargin-w-geom.BoxSize, y+geom.BoxSize/2+h/2,
			label, cfg.TinyFontSize, cfg.FontName, cfg.Colors.Text)
		y += geom.BoxSize + geom.Spacing
	}
}

func (lc *LifeCalendar) drawGrid(sink RenderSink, cfg *Config, grid *Grid, geom BoxGeometry) {
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			sink.DrawBox(cell.X, cell.Y, geom.BoxSize, cfg.Colors.Border, cfg.Colors.fillFor(cell))
		}
	}
}

func (lc *LifeCalendar) drawSidebar(sink RenderSink, cfg *Config, geom BoxGeometry) {
	if lc.Sidebar == "" {
		return
	}
	w, _ := sink.MeasureText(lc.Sidebar, cfg.SmallFontSize, cfg.FontName)
	sink.Push(Translate(cfg.CanvasWidth-geom.LeftMargin+20, cfg.TopMargin+w+100).Mul(Rotate(-math.Pi / 2)))
	sink.DrawText(0, 0, lc.Sidebar, cfg.SmallFontSize, cfg.FontName, cfg.Colors.Muted)
	sink.Pop()
}

// fillFor resolves a cell's fill color: category color first, then the
// darken overlay for weeks before the shade-until date.
func (p Palette) fillFor(cell Cell) Color {
	var fill Color
	switch cell.Category {
	case CategoryBirthday:
		fill = p.Birthday
	case CategoryNewYear:
		fill = p.NewYear
	default:
		fill = p.Plain
	}
	if cell.Darkened {
		fill = fill.Shade(p.DarkenDelta)
	}
	return fill
}
