package calgrid

import (
	"fmt"
	"math"
	"strings"
)

// A1 standard international paper size in points (594 x 841 mm).
const (
	A1WidthPt  = 1683
	A1HeightPt = 2383
)

// Palette holds the cell fill colors used by classification.
type Palette struct {
	Plain    Color
	Birthday Color
	NewYear  Color
	Past     Color
	Border   Color
	Text     Color
	Muted    Color
	// DarkenDelta is added to each RGB channel of a cell whose week lies
	// before the shade-until date.
	DarkenDelta int
}

// Config collects the document-level layout constants shared by the life
// and goal calendars. A single Config value is passed into layout and
// render calls; there is no module-level drawing state.
type Config struct {
	// Life calendar (rectangular grid) geometry, in points.
	CanvasWidth  float64
	CanvasHeight float64
	TopMargin    float64
	BottomPad    float64
	BoxMargin    float64
	BoxLineWidth float64
	ColumnCount  int
	// GroupEvery inserts an extra BoxMargin gap after every N columns, a
	// visual grouping aid only.
	GroupEvery int

	MinAge      int
	MaxAge      int
	MaxTitleLen int

	FontName      string
	TitleFontSize float64
	SmallFontSize float64
	TinyFontSize  float64

	// Goal calendar (radial) geometry, in circle units scaled by PixelScale
	// at render time.
	CanvasSize    float64
	PixelScale    float64
	StartAngle    float64 // radians; 270 degrees puts month 1 at the top
	Radius        float64
	TickLength    float64
	TickWidth     float64
	BoxScale      float64
	BoxAdvance    float64 // per-day advance in box units
	RowRotate     float64 // radians between the week rows of one month
	RowOffsetX    float64
	RowOffsetY    float64
	SectorGap     float64 // gap between the tick line and the first week row
	LabelX        float64
	LabelY        float64
	LabelFontSize float64
	SectorCount   int
	MaxWeekRows   int

	Colors Palette
}

// DefaultConfig returns the A1 life-calendar and 3-unit goal-calendar
// layout used by the reference posters.
func DefaultConfig() *Config {
	return &Config{
		CanvasWidth:  A1WidthPt,
		CanvasHeight: A1HeightPt,
		TopMargin:    144,
		BottomPad:    36,
		BoxMargin:    6,
		BoxLineWidth: 3,
		ColumnCount:  52,
		GroupEvery:   4,

		MinAge:      80,
		MaxAge:      100,
		MaxTitleLen: 30,

		FontName:      "Brocha",
		TitleFontSize: 40,
		SmallFontSize: 16,
		TinyFontSize:  14,

		CanvasSize:    3,
		PixelScale:    1000,
		StartAngle:    270 * math.Pi / 180,
		Radius:        0.75,
		TickLength:    0.6,
		TickWidth:     0.01,
		BoxScale:      0.05,
		BoxAdvance:    1.2,
		RowRotate:     2 * math.Pi / (12 * 6),
		RowOffsetX:    0.002,
		RowOffsetY:    0.06,
		SectorGap:     0.02,
		LabelX:        0.55,
		LabelY:        0.15,
		LabelFontSize: 0.05,
		SectorCount:   12,
		MaxWeekRows:   6,

		Colors: Palette{
			Plain:    ColorWhite,
			Birthday: ColorGray50,
			NewYear:  NewColor("C8C8C8"),
			Past:     ColorBlack,
			Border:   ColorBlack,
			Text:     ColorBlack,
			Muted:    ColorGray70,
			// -0.4 per channel in the reference implementation's 0-1 scale.
			DarkenDelta: -102,
		},
	}
}

// Validate checks the configuration for structural issues and returns an
// error describing all problems found, or nil if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.CanvasWidth <= 0 {
		errs = append(errs, "canvas width must be positive")
	}
	if c.CanvasHeight <= 0 {
		errs = append(errs, "canvas height must be positive")
	}
	if c.ColumnCount <= 0 {
		errs = append(errs, "column count must be positive")
	}
	if c.BoxMargin < 0 {
		errs = append(errs, "box margin must not be negative")
	}
	if c.GroupEvery < 0 {
		errs = append(errs, "group interval must not be negative")
	}
	if c.MinAge > c.MaxAge {
		errs = append(errs, fmt.Sprintf("minimum age %d exceeds maximum age %d", c.MinAge, c.MaxAge))
	}
	if c.CanvasSize <= 0 {
		errs = append(errs, "goal canvas size must be positive")
	}
	if c.PixelScale <= 0 {
		errs = append(errs, "pixel scale must be positive")
	}
	if c.SectorCount <= 0 {
		errs = append(errs, "sector count must be positive")
	}
	if c.BoxScale <= 0 {
		errs = append(errs, "box scale must be positive")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
}
