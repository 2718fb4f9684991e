package schedule

import (
	"testing"

	"github.com/weekendly/weekendly/internal/models"
)

func act(id, start string, duration int) models.ScheduledActivity {
	return models.ScheduledActivity{ID: id, Name: id, Time: start, Duration: duration}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"disjoint", 540, 600, 660, 690, false},
		{"touching endpoints do not overlap", 540, 600, 600, 630, false},
		{"partial overlap", 540, 630, 600, 660, true},
		{"containment", 540, 720, 570, 600, true},
		{"identical", 540, 600, 540, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
				t.Errorf("RangesOverlap(%d,%d,%d,%d) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
			// Symmetry
			if got := RangesOverlap(tt.s2, tt.e2, tt.s1, tt.e1); got != tt.want {
				t.Errorf("RangesOverlap is not symmetric for %v", tt.name)
			}
		})
	}
}

func TestCheckTimeConflicts_TouchingBoundary(t *testing.T) {
	activities := []models.ScheduledActivity{
		act("a", "09:00", 60),
		act("b", "10:00", 30),
	}
	if conflicts := CheckTimeConflicts(activities); len(conflicts) != 0 {
		t.Errorf("back-to-back activities reported %d conflicts, want 0", len(conflicts))
	}
}

func TestCheckTimeConflicts_Overlap(t *testing.T) {
	activities := []models.ScheduledActivity{
		act("a", "09:00", 90),
		act("b", "10:00", 30),
	}
	conflicts := CheckTimeConflicts(activities)
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	if conflicts[0].OverlapMinutes != 30 {
		t.Errorf("overlap = %d minutes, want 30", conflicts[0].OverlapMinutes)
	}
	if conflicts[0].First.ID != "a" || conflicts[0].Second.ID != "b" {
		t.Errorf("conflict pair = (%s, %s), want (a, b)", conflicts[0].First.ID, conflicts[0].Second.ID)
	}
}

func TestCheckTimeConflicts_SortsBeforeScanning(t *testing.T) {
	// Input out of order; conflict only visible after sorting by start time.
	activities := []models.ScheduledActivity{
		act("late", "14:00", 60),
		act("early", "09:00", 120),
		act("mid", "10:00", 60),
	}
	conflicts := CheckTimeConflicts(activities)
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	if conflicts[0].First.ID != "early" || conflicts[0].Second.ID != "mid" {
		t.Errorf("conflict pair = (%s, %s), want (early, mid)", conflicts[0].First.ID, conflicts[0].Second.ID)
	}
	if conflicts[0].OverlapMinutes != 60 {
		t.Errorf("overlap = %d, want 60", conflicts[0].OverlapMinutes)
	}
}

func TestCheckTimeConflicts_AdjacentScanUnderReportsTriple(t *testing.T) {
	// One long activity spanning two later ones. The adjacent-pair scan only
	// reports long/mid and mid/late, never long/late. This is intended
	// behavior; the strict checker catches the third pair.
	activities := []models.ScheduledActivity{
		act("long", "09:00", 240), // 09:00-13:00
		act("mid", "10:00", 60),   // 10:00-11:00
		act("late", "10:30", 60),  // 10:30-11:30
	}

	adjacent := CheckTimeConflicts(activities)
	if len(adjacent) != 2 {
		t.Fatalf("adjacent scan reported %d conflicts, want 2", len(adjacent))
	}

	strict := CheckTimeConflictsStrict(activities)
	if len(strict) != 3 {
		t.Fatalf("strict scan reported %d conflicts, want 3", len(strict))
	}
}

func TestCheckTimeConflictsStrict_OverlapSize(t *testing.T) {
	activities := []models.ScheduledActivity{
		act("outer", "09:00", 240), // 09:00-13:00
		act("inner", "10:00", 30),  // 10:00-10:30, fully contained
	}
	conflicts := CheckTimeConflictsStrict(activities)
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	// Contained interval overlaps for its whole duration, not outer's remainder.
	if conflicts[0].OverlapMinutes != 30 {
		t.Errorf("overlap = %d, want 30", conflicts[0].OverlapMinutes)
	}
}

func TestCheckTimeConflicts_Empty(t *testing.T) {
	if conflicts := CheckTimeConflicts(nil); len(conflicts) != 0 {
		t.Errorf("empty input reported %d conflicts", len(conflicts))
	}
	if conflicts := CheckTimeConflicts([]models.ScheduledActivity{act("solo", "09:00", 60)}); len(conflicts) != 0 {
		t.Errorf("single activity reported %d conflicts", len(conflicts))
	}
}
