package calgrid

import (
	"time"
)

// DateFormat is the wire format for all user-facing dates.
const DateFormat = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date into a UTC-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s, Err: err}
	}
	return t, nil
}

// Date constructs a UTC-midnight time for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ISOWeekCount returns the number of ISO-8601 weeks in a year, 52 or 53.
// December 28 always falls in the last ISO week of its year.
func ISOWeekCount(year int) int {
	_, week := Date(year, time.December, 28).ISOWeek()
	return week
}

// MondayOf returns the Monday-start beginning of the week containing t.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday()) // Sunday = 0
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// AddWeeks returns t advanced by n weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// anchorDate resolves a (month, day) anchor within the given year. A
// February 29 anchor falls back to February 28 in non-leap years, so
// resolution never fails for anchors taken from valid calendar dates.
func anchorDate(year int, month time.Month, day int) (time.Time, error) {
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	d := Date(year, month, day)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, &InvalidAnchorDateError{Month: month, Day: day}
	}
	return d, nil
}

// IsAnchorWeek reports whether the 7-day window starting at weekStart
// contains the (month, day) anchor. The anchor is resolved in weekStart's
// year and the following one, so windows spanning a year boundary still
// match a January anchor.
func IsAnchorWeek(weekStart time.Time, month time.Month, day int) bool {
	end := weekStart.AddDate(0, 0, 7)
	for _, year := range []int{weekStart.Year(), weekStart.Year() + 1} {
		anchor, err := anchorDate(year, month, day)
		if err != nil {
			continue
		}
		if !anchor.Before(weekStart) && anchor.Before(end) {
			return true
		}
	}
	return false
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// monthWeeks lists the weeks overlapping the given month as rows of seven
// consecutive days. Each row starts on firstDay; rows are emitted until the
// last day of the month is covered, so a month spans four to six rows.
func monthWeeks(year int, month time.Month, firstDay time.Weekday) [][]time.Time {
	first := Date(year, month, 1)
	last := first.AddDate(0, 1, -1)

	offset := (int(first.Weekday()) - int(firstDay) + 7) % 7
	cur := first.AddDate(0, 0, -offset)

	var weeks [][]time.Time
	for !cur.After(last) {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = cur
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
