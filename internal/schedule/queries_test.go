package schedule

import (
	"testing"

	"github.com/weekendly/weekendly/internal/models"
)

func TestSortByTime(t *testing.T) {
	activities := []models.ScheduledActivity{
		act("afternoon", "14:00", 60),
		act("morning", "08:00", 60),
		act("midday", "12:00", 60),
	}
	sorted := SortByTime(activities)

	want := []string{"morning", "midday", "afternoon"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, sorted[i].ID, id)
		}
	}

	// Input untouched
	if activities[0].ID != "afternoon" {
		t.Error("SortByTime mutated its input")
	}
}

func TestSortByTime_StableAndIdempotent(t *testing.T) {
	activities := []models.ScheduledActivity{
		act("first-added", "10:00", 60),
		act("second-added", "10:00", 30),
		act("early", "08:00", 60),
	}

	once := SortByTime(activities)
	if once[1].ID != "first-added" || once[2].ID != "second-added" {
		t.Errorf("equal-time entries reordered: got %s then %s", once[1].ID, once[2].ID)
	}

	twice := SortByTime(once)
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("sorting a sorted list changed position %d", i)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	a := []models.ScheduledActivity{act("x", "09:00", 60), act("y", "11:00", 90)}
	b := []models.ScheduledActivity{act("z", "15:00", 45)}

	if got := TotalDuration(a); got != 150 {
		t.Errorf("TotalDuration(a) = %d, want 150", got)
	}
	if got := TotalDuration(nil); got != 0 {
		t.Errorf("TotalDuration(nil) = %d, want 0", got)
	}

	// Additive over disjoint lists
	combined := append(append([]models.ScheduledActivity{}, a...), b...)
	if TotalDuration(combined) != TotalDuration(a)+TotalDuration(b) {
		t.Error("TotalDuration is not additive")
	}
}

func TestFilters(t *testing.T) {
	activities := []models.ScheduledActivity{
		{ID: "1", Time: "09:00", Category: "food", Mood: models.MoodHappy, Status: models.StatusPending},
		{ID: "2", Time: "11:00", Category: "outdoor", Mood: models.MoodEnergetic, Status: models.StatusDone},
		{ID: "3", Time: "13:00", Category: "food", Mood: models.MoodHappy, Status: models.StatusDone},
	}

	food := ByCategory(activities, "food")
	if len(food) != 2 || food[0].ID != "1" || food[1].ID != "3" {
		t.Errorf("ByCategory returned %v", food)
	}

	happy := ByMood(activities, models.MoodHappy)
	if len(happy) != 2 {
		t.Errorf("ByMood returned %d items, want 2", len(happy))
	}

	done := ByStatus(activities, models.StatusDone)
	if len(done) != 2 || done[0].ID != "2" {
		t.Errorf("ByStatus returned %v", done)
	}

	if got := ByCategory(activities, "nope"); len(got) != 0 {
		t.Errorf("ByCategory with unknown key returned %d items", len(got))
	}
}
