package schedule

import (
	"testing"

	"github.com/weekendly/weekendly/internal/models"
)

func TestNextAvailableTime_PreferredOnEmptySchedule(t *testing.T) {
	got, ok := NextAvailableTime(nil, 60, "14:00")
	if !ok {
		t.Fatal("expected a slot on an empty schedule")
	}
	if got != "14:00" {
		t.Errorf("got %q, want preferred time 14:00", got)
	}
}

func TestNextAvailableTime_PreferredConflictsFallsBack(t *testing.T) {
	activities := []models.ScheduledActivity{
		act("brunch", "14:00", 120),
	}
	got, ok := NextAvailableTime(activities, 60, "14:30")
	if !ok {
		t.Fatal("expected a fallback slot")
	}
	// Preferred 14:30-15:30 overlaps 14:00-16:00, so the scan starts over at
	// the beginning of the window.
	if got != "06:00" {
		t.Errorf("got %q, want 06:00", got)
	}
}

func TestNextAvailableTime_ScanOrder(t *testing.T) {
	// The scan starts at 06:00 and the first candidate is already free,
	// well before either existing activity.
	activities := []models.ScheduledActivity{
		act("1", "09:00", 60),
		act("2", "11:00", 30),
	}
	got, ok := NextAvailableTime(activities, 45, "")
	if !ok {
		t.Fatal("expected a slot")
	}
	if got != "06:00" {
		t.Errorf("got %q, want 06:00", got)
	}
}

func TestNextAvailableTime_SkipsBlockedCandidates(t *testing.T) {
	// Morning fully booked through 10:00. Candidates 06:00..08:30 are blocked
	// by the first activity, 09:00 by the second, and 09:30 would run
	// 09:30-10:15 into it; 10:00-10:45 is the first free slot.
	activities := []models.ScheduledActivity{
		act("early", "06:00", 180),
		act("mid", "09:00", 60),
		act("late", "11:00", 30),
	}
	got, ok := NextAvailableTime(activities, 45, "")
	if !ok {
		t.Fatal("expected a slot")
	}
	if got != "10:00" {
		t.Errorf("got %q, want 10:00", got)
	}
}

func TestNextAvailableTime_WindowExhausted(t *testing.T) {
	// A single all-day activity blocks every candidate in 06:00-22:00.
	activities := []models.ScheduledActivity{
		act("marathon", "06:00", 1440),
	}
	if got, ok := NextAvailableTime(activities, 30, ""); ok {
		t.Errorf("expected no slot, got %q", got)
	}
}

func TestNextAvailableTime_LastCandidate(t *testing.T) {
	// Everything up to 21:30 is blocked; the final candidate 21:30 fits.
	activities := []models.ScheduledActivity{
		act("all-day", "06:00", 930), // 06:00-21:30
	}
	got, ok := NextAvailableTime(activities, 30, "")
	if !ok {
		t.Fatal("expected the final window candidate to be free")
	}
	if got != "21:30" {
		t.Errorf("got %q, want 21:30", got)
	}
}

func TestNextAvailableTimeIn_CustomWindow(t *testing.T) {
	w := SearchWindow{StartMin: 8 * 60, EndMin: 10 * 60, IntervalMin: 15}
	activities := []models.ScheduledActivity{
		act("first", "08:00", 30),
	}
	got, ok := NextAvailableTimeIn(w, activities, 30, "")
	if !ok {
		t.Fatal("expected a slot")
	}
	if got != "08:30" {
		t.Errorf("got %q, want 08:30", got)
	}
}

func TestNextAvailableTimeIn_MinuteGranularBounds(t *testing.T) {
	// Day boundaries of 06:30-21:30 keep their half-hour offsets; the first
	// candidate is 06:30, not a truncated 06:00.
	w := SearchWindow{StartMin: 390, EndMin: 1290, IntervalMin: 30}

	got, ok := NextAvailableTimeIn(w, nil, 60, "")
	if !ok {
		t.Fatal("expected a slot")
	}
	if got != "06:30" {
		t.Errorf("got %q, want 06:30", got)
	}

	// With 06:30-21:00 booked solid, 21:00 is the last in-window candidate.
	busy := []models.ScheduledActivity{
		act("marathon", "06:30", 870),
	}
	got, ok = NextAvailableTimeIn(w, busy, 60, "")
	if !ok {
		t.Fatal("expected the final candidate to be free")
	}
	if got != "21:00" {
		t.Errorf("got %q, want 21:00", got)
	}
}
