package models

import (
	"time"

	"github.com/weekendly/weekendly/internal/constants"
)

// Settings holds the user-tunable planning preferences. SaturdayDate and
// SundayDate carry the actual calendar dates of the upcoming weekend for
// past/future display; the Day tag on activities never depends on them.
type Settings struct {
	DayStart           string `json:"day_start"` // HH:MM
	DayEnd             string `json:"day_end"`   // HH:MM
	SlotIntervalMin    int    `json:"slot_interval_min"`
	DefaultDurationMin int    `json:"default_duration_min"`
	DefaultMood        Mood   `json:"default_mood"`
	DefaultStatus      Status `json:"default_status"`
	SaturdayDate       string `json:"saturday_date,omitempty"` // YYYY-MM-DD
	SundayDate         string `json:"sunday_date,omitempty"`   // YYYY-MM-DD
	Timezone           string `json:"timezone,omitempty"`
}

// Location resolves Timezone to a concrete zone. Empty or "Local" means the
// system zone; anything else must be a loadable IANA name. Past/future
// judgments against SaturdayDate and SundayDate happen in this zone.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// DefaultSettings returns the settings a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		DayStart:           constants.DefaultDayStart,
		DayEnd:             constants.DefaultDayEnd,
		SlotIntervalMin:    constants.SearchIntervalMin,
		DefaultDurationMin: constants.DefaultDurationMin,
		DefaultMood:        MoodHappy,
		DefaultStatus:      StatusPending,
	}
}
