package calgrid

// Document unit conversion helpers. The life-calendar canvas coordinate
// space is PostScript points: 1 inch = 72 pt, 1 mm = 72/25.4 pt.

const (
	ptPerInch       = 72.0
	ptPerMillimeter = 72.0 / 25.4
)

// Inch converts inches to points.
func Inch(n float64) float64 {
	return n * ptPerInch
}

// Millimeter converts millimeters to points.
func Millimeter(n float64) float64 {
	return n * ptPerMillimeter
}

// Centimeter converts centimeters to points.
func Centimeter(n float64) float64 {
	return n * 10 * ptPerMillimeter
}

// PointToInch converts points to inches.
func PointToInch(pt float64) float64 {
	return pt / ptPerInch
}

// PointToMillimeter converts points to millimeters.
func PointToMillimeter(pt float64) float64 {
	return pt / ptPerMillimeter
}
