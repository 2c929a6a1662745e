package calgrid

import (
	"fmt"
	"time"
)

// InvalidDateError reports a date string that does not parse as an ISO-8601
// calendar date.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected ISO format (YYYY-MM-DD)", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// TitleTooLongError reports a poster title exceeding the configured limit.
type TitleTooLongError struct {
	Title string
	Max   int
}

func (e *TitleTooLongError) Error() string {
	return fmt.Sprintf("title can't be longer than %d characters", e.Max)
}

// AgeOutOfRangeError reports a row count outside the supported age range.
type AgeOutOfRangeError struct {
	Age, Min, Max int
}

func (e *AgeOutOfRangeError) Error() string {
	return fmt.Sprintf("age %d out of range [%d-%d]", e.Age, e.Min, e.Max)
}

// LayoutInfeasibleError reports a row count too large for the canvas: the
// per-row box size computes to zero or below.
type LayoutInfeasibleError struct {
	Rows    int
	BoxSize float64
}

func (e *LayoutInfeasibleError) Error() string {
	return fmt.Sprintf("layout infeasible for %d rows: box size %.2f", e.Rows, e.BoxSize)
}

// InvalidAnchorDateError reports an anchor (month, day) that does not
// resolve to a calendar date even after the February 29 fallback. Anchors
// taken from valid calendar dates never produce it.
type InvalidAnchorDateError struct {
	Month time.Month
	Day   int
}

func (e *InvalidAnchorDateError) Error() string {
	return fmt.Sprintf("invalid anchor date: %s %d", e.Month, e.Day)
}
