// Package quiet implements the quiet-hours gate: a pure comparison of a
// user's configured window against a clock instant.
package quiet

import (
	"time"

	"github.com/plmkit/notifier/internal/model"
)

// parseClock turns "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// InWindow reports whether now falls inside the preference's quiet window.
// A window with start > end wraps past midnight. Missing or malformed
// bounds mean no quiet hours.
func InWindow(pref model.RecipientPreference, now time.Time) bool {
	start, ok := parseClock(pref.QuietStart)
	if !ok {
		return false
	}
	end, ok := parseClock(pref.QuietEnd)
	if !ok {
		return false
	}
	if start == end {
		return false
	}

	cur := now.Hour()*60 + now.Minute()
	if start < end {
		return cur >= start && cur < end
	}
	// Wrapping window, e.g. 22:00-08:00.
	return cur >= start || cur < end
}

// NextResume returns the next instant at or after now when the quiet
// window ends. If today's end has already passed it rolls to tomorrow.
func NextResume(pref model.RecipientPreference, now time.Time) time.Time {
	end, ok := parseClock(pref.QuietEnd)
	if !ok {
		return now
	}

	resume := time.Date(now.Year(), now.Month(), now.Day(), end/60, end%60, 0, 0, now.Location())
	if !resume.After(now) {
		resume = resume.AddDate(0, 0, 1)
	}
	return resume
}
