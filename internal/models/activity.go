package models

import "fmt"

// Day identifies which weekend day an activity is placed on. It is a closed
// two-value tag, deliberately decoupled from the calendar dates carried in
// Settings for past/future display.
type Day string

const (
	DaySaturday Day = "saturday"
	DaySunday   Day = "sunday"
)

// Days lists the weekend days in display order.
var Days = []Day{DaySaturday, DaySunday}

// ParseDay parses a day name, case-sensitively matching the stored tags.
func ParseDay(s string) (Day, error) {
	switch Day(s) {
	case DaySaturday, DaySunday:
		return Day(s), nil
	default:
		return "", fmt.Errorf("invalid day %q (expected saturday or sunday)", s)
	}
}

// Status tracks an activity's progress through the weekend.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists all statuses in cycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusDone, StatusCancelled}

// Next returns the following status in the pending → inProgress → done →
// cancelled cycle, wrapping back to pending. Unknown values reset to pending.
// Callers may also set any status directly; no transition is illegal.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	case StatusDone:
		return StatusCancelled
	case StatusCancelled:
		return StatusPending
	default:
		return StatusPending
	}
}

// Mood records how the user expects an activity to feel.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodRelaxed   Mood = "relaxed"
	MoodEnergetic Mood = "energetic"
	MoodFocused   Mood = "focused"
	MoodCreative  Mood = "creative"
	MoodSocial    Mood = "social"
)

// Moods lists all moods in display order.
var Moods = []Mood{MoodHappy, MoodRelaxed, MoodEnergetic, MoodFocused, MoodCreative, MoodSocial}

// ScheduledActivity is one activity placed at a specific time on a weekend
// day. ID is assigned once when the placement is created and never reused;
// ActivityID points back at the catalog template it came from.
type ScheduledActivity struct {
	ID          string `json:"id"`
	ActivityID  string `json:"activity_id,omitempty"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Time        string `json:"time"`     // HH:MM format
	Duration    int    `json:"duration"` // minutes
	Day         Day    `json:"day"`
	Mood        Mood   `json:"mood,omitempty"`
	Status      Status `json:"status,omitempty"`
}
