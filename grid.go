package calgrid

import "time"

// Cell is one positioned, classified grid cell. X and Y locate its top-left
// corner in the grid's local coordinate space. Date is the week's Monday in
// the life grid and the calendar day in a radial month grid; it is the zero
// time for padding cells.
type Cell struct {
	Row      int
	Col      int
	Date     time.Time
	Category FillCategory
	Darkened bool
	X, Y     float64
}

// Row is one ordered row of cells: a life-year in the rectangular grid, a
// week in a radial month grid.
type Row struct {
	Index int
	Cells []Cell
}

// Grid is the full ordered cell layout of one calendar.
type Grid struct {
	Rows []Row
}

// BoxGeometry is the scalar layout derived once per document from the
// canvas dimensions and row/column counts. It is shared read-only by every
// cell draw call and by header, label and legend placement.
type BoxGeometry struct {
	BoxSize    float64
	Spacing    float64
	LeftMargin float64
	TopMargin  float64
}

// RowStride is the fixed number of weeks a life-year row advances by. Rows
// drift from true ISO year boundaries over the decades because some years
// have 53 ISO weeks; the reference output depends on the stride staying
// fixed at 52.
const RowStride = 52

// RectGeometry derives the box size and margins for a rowCount-row grid on
// the configured canvas. The horizontal centering accounts for the extra
// group gaps so the grid sits symmetric on the page. Returns
// LayoutInfeasibleError when the row count leaves no positive box size.
func RectGeometry(cfg *Config, rowCount int) (BoxGeometry, error) {
	if rowCount <= 0 {
		return BoxGeometry{}, &LayoutInfeasibleError{Rows: rowCount}
	}
	boxSize := (cfg.CanvasHeight-cfg.TopMargin-cfg.BottomPad)/float64(rowCount) - cfg.BoxMargin
	if boxSize <= 0 {
		return BoxGeometry{}, &LayoutInfeasibleError{Rows: rowCount, BoxSize: boxSize}
	}

	cols := float64(cfg.ColumnCount)
	gridWidth := (boxSize + cfg.BoxMargin) * cols
	if cfg.GroupEvery > 0 {
		gridWidth += cfg.BoxMargin * cols / float64(cfg.GroupEvery)
	}
	return BoxGeometry{
		BoxSize:    boxSize,
		Spacing:    cfg.BoxMargin,
		LeftMargin: (cfg.CanvasWidth - gridWidth) / 2,
		TopMargin:  cfg.TopMargin,
	}, nil
}

// LayoutRectGrid computes the life-calendar grid: rowCount rows of
// cfg.ColumnCount week cells. Row r starts at MondayOf(birth) plus r times
// the fixed 52-week stride; every cell is classified through classify.
func LayoutRectGrid(cfg *Config, birth time.Time, rowCount int, classify ClassifyFunc) (*Grid, BoxGeometry, error) {
	geom, err := RectGeometry(cfg, rowCount)
	if err != nil {
		return nil, BoxGeometry{}, err
	}

	start := MondayOf(birth)
	grid := &Grid{Rows: make([]Row, 0, rowCount)}
	for r := 0; r < rowCount; r++ {
		monday := AddWeeks(start, r*RowStride)
		row := Row{Index: r, Cells: make([]Cell, 0, cfg.ColumnCount)}

		x := geom.LeftMargin
		y := geom.TopMargin + float64(r)*(geom.BoxSize+geom.Spacing)
		for c := 0; c < cfg.ColumnCount; c++ {
			category, darkened := classify(monday)
			row.Cells = append(row.Cells, Cell{
				Row:      r,
				Col:      c,
				Date:     monday,
				Category: category,
				Darkened: darkened,
				X:        x,
				Y:        y,
			})
			x += geom.BoxSize + geom.Spacing
			if cfg.GroupEvery > 0 && (c+1)%cfg.GroupEvery == 0 {
				x += geom.Spacing
			}
			monday = AddWeeks(monday, 1)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid, geom, nil
}
