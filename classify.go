package calgrid

import "time"

// FillCategory is the fill classification of a grid cell.
type FillCategory int

const (
	// CategoryPlain is an ordinary week or day cell.
	CategoryPlain FillCategory = iota
	// CategoryBirthday marks the week containing the birth date anniversary.
	CategoryBirthday
	// CategoryNewYear marks the week containing January 1.
	CategoryNewYear
	// CategoryEmpty marks padding cells outside the month in a radial month grid.
	CategoryEmpty
)

func (c FillCategory) String() string {
	switch c {
	case CategoryBirthday:
		return "birthday"
	case CategoryNewYear:
		return "new-year"
	case CategoryEmpty:
		return "empty"
	default:
		return "plain"
	}
}

// ClassifyFunc decides the fill category and darkening of a single cell from
// the date it represents. Both layouts take it as a strategy parameter, so
// the life grid and the radial month grids share one layout path.
type ClassifyFunc func(date time.Time) (category FillCategory, darkened bool)

// LifeClassifier classifies a week by its Monday. The birthday week wins
// over the new-year week; everything else is plain. A cell is darkened when
// cutoff is set and the week starts strictly before it, so a week is either
// fully darkened or not at all.
func LifeClassifier(birth, cutoff time.Time) ClassifyFunc {
	return func(monday time.Time) (FillCategory, bool) {
		darkened := !cutoff.IsZero() && monday.Before(cutoff)
		switch {
		case IsAnchorWeek(monday, birth.Month(), birth.Day()):
			return CategoryBirthday, darkened
		case IsAnchorWeek(monday, time.January, 1):
			return CategoryNewYear, darkened
		default:
			return CategoryPlain, darkened
		}
	}
}

// GoalClassifier classifies a single day against a reference date: days
// strictly before it are darkened. Padding cells are produced by the layout,
// not the classifier.
func GoalClassifier(today time.Time) ClassifyFunc {
	return func(day time.Time) (FillCategory, bool) {
		return CategoryPlain, day.Before(today)
	}
}
