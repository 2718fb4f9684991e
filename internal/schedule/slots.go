package schedule

import (
	"github.com/weekendly/weekendly/internal/constants"
	"github.com/weekendly/weekendly/internal/models"
)

// SearchWindow bounds the candidate start times considered when looking for
// a free slot. All fields are minutes: candidates run from StartMin
// (inclusive) up to but not including EndMin in IntervalMin steps, so
// minute-granular day boundaries like 06:30 survive intact.
type SearchWindow struct {
	StartMin    int
	EndMin      int
	IntervalMin int
}

// DefaultSearchWindow covers the usable planning day, 06:00 through 21:30.
// Activities are not placed late night or early morning automatically; manual
// time entry bypasses the search entirely.
var DefaultSearchWindow = SearchWindow{
	StartMin:    constants.SearchStartHour * 60,
	EndMin:      constants.SearchEndHour * 60,
	IntervalMin: constants.SearchIntervalMin,
}

// NextAvailableTime finds a start time where an activity of the given
// duration fits without overlapping any existing activity. A non-empty
// preferred time is checked first and returned as-is when free. Otherwise
// candidates in the default window are scanned in order and the first free
// one wins. The second return is false when the window is exhausted, which
// callers must surface as a scheduling failure.
func NextAvailableTime(activities []models.ScheduledActivity, durationMin int, preferred string) (string, bool) {
	return NextAvailableTimeIn(DefaultSearchWindow, activities, durationMin, preferred)
}

// NextAvailableTimeIn is NextAvailableTime over a caller-supplied window,
// letting stored settings widen or narrow the planning day.
func NextAvailableTimeIn(w SearchWindow, activities []models.ScheduledActivity, durationMin int, preferred string) (string, bool) {
	if preferred != "" {
		start := TimeToMinutes(preferred)
		if slotIsFree(activities, start, start+durationMin) {
			return preferred, true
		}
	}

	interval := w.IntervalMin
	if interval <= 0 {
		interval = constants.SearchIntervalMin
	}
	for start := w.StartMin; start < w.EndMin; start += interval {
		if slotIsFree(activities, start, start+durationMin) {
			return MinutesToTime(start), true
		}
	}

	return "", false
}

func slotIsFree(activities []models.ScheduledActivity, start, end int) bool {
	for _, a := range activities {
		aStart := TimeToMinutes(a.Time)
		if RangesOverlap(start, end, aStart, aStart+a.Duration) {
			return false
		}
	}
	return true
}
