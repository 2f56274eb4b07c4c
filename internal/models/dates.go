// Package models defines data structures for the staffing graph.
package models

import "time"

// DateLayout is the wire format for all dates in the graph.
// The upstream data producers write plain calendar dates, no time component.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the signed number of whole days from one calendar
// date to another. Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
