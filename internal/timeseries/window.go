package timeseries

import (
	"time"
)

// Window is the inclusive date range a consolidation run operates over.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// MonthEnds returns the canonical month-end calendar for the window: the last
// day of every calendar month whose month-end timestamp lies inside the window.
func (w Window) MonthEnds() []time.Time {
	var ends []time.Time
	cursor := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(w.End) {
		end := MonthEnd(cursor)
		if w.Contains(end) {
			ends = append(ends, end)
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return ends
}

// MonthEnd returns the last day of t's calendar month at midnight UTC.
func MonthEnd(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
