package schedule

import (
	"testing"
	"time"

	"github.com/weekendly/weekendly/internal/constants"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"06:00", 360},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TimeToMinutes(tt.input); got != tt.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{"midnight", 0, "00:00"},
		{"morning", 570, "09:30"},
		{"end of day", 1439, "23:59"},
		{"past midnight keeps literal hours", 1530, "25:30"},
		{"exactly 24h keeps literal hours", 1440, "24:00"},
		{"negative clamps to midnight", -90, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesToTime(tt.input); got != tt.want {
				t.Errorf("MinutesToTime(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeRoundTrip(t *testing.T) {
	// minutesToTime(timeToMinutes(t)) == t for canonical zero-padded input
	for _, input := range []string{"00:00", "06:30", "09:00", "12:45", "21:30", "23:59"} {
		if got := MinutesToTime(TimeToMinutes(input)); got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}

func TestAddDuration(t *testing.T) {
	tests := []struct {
		time     string
		duration int
		want     string
	}{
		{"09:00", 60, "10:00"},
		{"09:15", 90, "10:45"},
		{"23:30", 60, "24:30"},
		{"06:00", 0, "06:00"},
	}

	for _, tt := range tests {
		if got := AddDuration(tt.time, tt.duration); got != tt.want {
			t.Errorf("AddDuration(%q, %d) = %q, want %q", tt.time, tt.duration, got, tt.want)
		}
	}

	// timeToMinutes(addDuration(t, d)) == timeToMinutes(t) + d
	for _, d := range []int{0, 15, 45, 300} {
		start := "08:20"
		if got := TimeToMinutes(AddDuration(start, d)); got != TimeToMinutes(start)+d {
			t.Errorf("AddDuration additivity broken for d=%d: got %d", d, got)
		}
	}
}

func TestFormatAmPm(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00:15", "12:15 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatAmPm(tt.input); got != tt.want {
			t.Errorf("FormatAmPm(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(6*60, 8*60, 30)
	want := []string{"06:00", "06:30", "07:00", "07:30"}
	if len(slots) != len(want) {
		t.Fatalf("TimeSlots returned %d slots, want %d", len(slots), len(want))
	}
	for i, s := range want {
		if slots[i] != s {
			t.Errorf("slot %d = %q, want %q", i, slots[i], s)
		}
	}
}

func TestTimeSlots_MinuteGranularBounds(t *testing.T) {
	// A 06:30 day start is not rounded down to the hour.
	slots := TimeSlots(390, 480, 30)
	want := []string{"06:30", "07:00", "07:30"}
	if len(slots) != len(want) {
		t.Fatalf("TimeSlots returned %v, want %v", slots, want)
	}
	for i, s := range want {
		if slots[i] != s {
			t.Errorf("slot %d = %q, want %q", i, slots[i], s)
		}
	}
}

func TestTimeSlots_NonPositiveInterval(t *testing.T) {
	if slots := TimeSlots(360, 720, 0); slots != nil {
		t.Errorf("zero interval returned %v, want nil", slots)
	}
}

func TestCurrentTime(t *testing.T) {
	got := CurrentTime(time.UTC)
	if _, err := time.Parse(constants.TimeFormat, got); err != nil {
		t.Errorf("CurrentTime returned %q: %v", got, err)
	}
}

func TestIsTimeInPast(t *testing.T) {
	noon := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	if !IsTimeInPast("11:59", noon) {
		t.Error("11:59 at noon should be in the past")
	}
	if IsTimeInPast("12:00", noon) {
		t.Error("the current minute is not yet past")
	}
	if IsTimeInPast("12:01", noon) {
		t.Error("12:01 at noon should not be in the past")
	}
}

func TestIsTimeInPast_UsesWallClockOfNow(t *testing.T) {
	// 01:30 on the clock in UTC+14; the UTC instant is still the previous
	// day's morning, but elapsed is judged in now's own zone.
	loc := time.FixedZone("UTC+14", 14*3600)
	now := time.Date(2026, 9, 5, 1, 30, 0, 0, loc)

	if !IsTimeInPast("01:00", now) {
		t.Error("01:00 should have passed at 01:30 local")
	}
	if IsTimeInPast("02:00", now) {
		t.Error("02:00 has not arrived at 01:30 local")
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2026, 9, 5, 15, 0, 0, 0, time.UTC)

	if !IsToday("2026-09-05", now) {
		t.Error("matching date should be today")
	}
	if IsToday("2026-09-04", now) {
		t.Error("yesterday is not today")
	}
	if IsToday("not-a-date", now) {
		t.Error("malformed input should be false")
	}
}

func TestIsToday_RespectsLocation(t *testing.T) {
	// Early morning in UTC+14 while UTC is still on the previous date.
	loc := time.FixedZone("UTC+14", 14*3600)
	now := time.Date(2026, 9, 5, 0, 30, 0, 0, loc)

	if !IsToday("2026-09-05", now) {
		t.Error("today in now's zone should match")
	}
	if IsToday(now.UTC().Format(constants.DateFormat), now) {
		t.Error("the UTC date is not today in now's zone")
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	if !IsDateInPast("2026-09-04", now) {
		t.Error("yesterday should be in the past")
	}
	if IsDateInPast("2026-09-05", now) {
		t.Error("today is not in the past; only whole elapsed days count")
	}
	if IsDateInPast("2026-09-06", now) {
		t.Error("tomorrow should not be in the past")
	}
	if IsDateInPast("nonsense", now) {
		t.Error("malformed input should be false")
	}
}
