// Package lifecycle decides which phase a birthday page is in relative to
// the current moment. Classification is pure and recomputed on every access:
// the stored date never changes, but "now" does.
package lifecycle

import "time"

// State is the lifecycle phase of a birthday page
type State string

const (
	// StateUpcoming the target day has not arrived yet
	StateUpcoming State = "upcoming"
	// StateActive the target day is today or within the grace window after it
	StateActive State = "active"
	// StateExpired more than the grace window has elapsed since the target day
	StateExpired State = "expired"
)

// Classify determines the current state of a birthday page.
//
// Both instants are normalized to UTC calendar days so the boundary does not
// flicker across time zones. The grace period only extends the end of the
// active window: the target day itself is always Active, whatever graceDays
// is set to.
func Classify(target, now time.Time, graceDays int) State {
	if graceDays < 0 {
		graceDays = 0
	}

	targetDay := toDay(target)
	today := toDay(now)

	if today.Before(targetDay) {
		return StateUpcoming
	}
	if today.After(targetDay.AddDate(0, 0, graceDays)) {
		return StateExpired
	}
	return StateActive
}

// IsToday reports whether now falls on the target calendar day in UTC.
// Drives the celebration effects on the active view.
func IsToday(target, now time.Time) bool {
	return toDay(target).Equal(toDay(now))
}

// toDay strips the time-of-day in UTC
func toDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
