// Package schedule is the pure scheduling core: time arithmetic, conflict
// detection, slot search, and derived queries over a single day's activity
// list. Every function reads its arguments and returns a new value; nothing
// here touches storage or mutates caller state.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/weekendly/weekendly/internal/constants"
)

// TimeToMinutes converts an HH:MM string to minutes since midnight.
// Input must be well-formed; callers validate with validation.IsValidTime
// first. Malformed strings are a contract violation and yield zeroed fields
// rather than an error.
func TimeToMinutes(t string) int {
	h, m, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime converts minutes since midnight to a zero-padded HH:MM
// string. Values of 1440 and above are passed through without wraparound, so
// 1530 renders as "25:30"; negative values clamp to "00:00".
func MinutesToTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddDuration returns the time durationMin minutes after t.
func AddDuration(t string, durationMin int) string {
	return MinutesToTime(TimeToMinutes(t) + durationMin)
}

// FormatAmPm renders an HH:MM time in 12-hour display form, e.g. "13:05"
// becomes "1:05 PM". The empty string stays empty.
func FormatAmPm(t string) string {
	if t == "" {
		return ""
	}
	h, m, _ := strings.Cut(t, ":")
	hour, _ := strconv.Atoi(h)
	if m == "" {
		m = "00"
	}
	switch {
	case hour == 0:
		return fmt.Sprintf("12:%s AM", m)
	case hour < 12:
		return fmt.Sprintf("%d:%s AM", hour, m)
	case hour == 12:
		return fmt.Sprintf("12:%s PM", m)
	default:
		return fmt.Sprintf("%d:%s PM", hour-12, m)
	}
}

// TimeSlots generates HH:MM labels from startMin (inclusive) to endMin
// (exclusive) in intervalMin steps, for time pickers. Minute-granular bounds
// are honored as-is; a non-positive interval yields no slots.
func TimeSlots(startMin, endMin, intervalMin int) []string {
	if intervalMin <= 0 {
		return nil
	}
	var slots []string
	for m := startMin; m < endMin; m += intervalMin {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// CurrentTime returns the wall-clock time in loc as HH:MM. A nil loc means
// the system zone.
func CurrentTime(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format(constants.TimeFormat)
}

// IsTimeInPast reports whether the HH:MM time on now's calendar day has
// already elapsed, judged by wall-clock minutes in now's location. A slot at
// the current minute is not yet past. Used to lock out interaction with
// slots that have passed.
func IsTimeInPast(t string, now time.Time) bool {
	return TimeToMinutes(t) < now.Hour()*60+now.Minute()
}

// IsToday reports whether the YYYY-MM-DD date string is now's calendar date,
// in now's location. Malformed dates return false.
func IsToday(date string, now time.Time) bool {
	d, err := time.ParseInLocation(constants.DateFormat, date, now.Location())
	if err != nil {
		return false
	}
	return d.Year() == now.Year() && d.YearDay() == now.YearDay()
}

// IsDateInPast reports whether the YYYY-MM-DD date string falls strictly
// before now's calendar date, comparing whole days in now's location.
// Malformed dates return false.
func IsDateInPast(date string, now time.Time) bool {
	d, err := time.ParseInLocation(constants.DateFormat, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}
