package postgres

import (
	"os"
	"testing"

	"github.com/weekendly/weekendly/internal/models"
)

// Integration tests run only against a real database, e.g.
// WEEKENDLY_TEST_POSTGRES="postgres://localhost:5432/weekendly_test?sslmode=disable" go test ./...
func testStore(t *testing.T) *Store {
	t.Helper()
	connStr := os.Getenv("WEEKENDLY_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("WEEKENDLY_TEST_POSTGRES not set, skipping postgres integration test")
	}
	store := NewStore(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() {
		for _, day := range models.Days {
			_ = store.ClearDay(day)
		}
		store.Close()
	})
	return store
}

func TestStore_SaveDayRoundTrip(t *testing.T) {
	store := testStore(t)

	activities := []models.ScheduledActivity{
		{ID: "pg-1", Name: "Brunch", Time: "10:00", Duration: 120, Day: models.DaySaturday, Mood: models.MoodHappy, Status: models.StatusPending},
		{ID: "pg-2", Name: "Reading", Time: "13:00", Duration: 90, Day: models.DaySaturday, Mood: models.MoodRelaxed, Status: models.StatusPending},
	}
	if err := store.SaveDay(models.DaySaturday, activities); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	got, err := store.GetDay(models.DaySaturday)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "pg-1" || got[1].ID != "pg-2" {
		t.Errorf("round trip lost data or order: %+v", got)
	}
}

func TestStore_SettingsUpsert(t *testing.T) {
	store := testStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	settings.SlotIntervalMin = 15
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.SlotIntervalMin != 15 {
		t.Errorf("upsert lost change: %+v", got)
	}
}
