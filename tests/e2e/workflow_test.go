package e2e

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/weekendly/weekendly/internal/catalog"
	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/planner"
	"github.com/weekendly/weekendly/internal/storage"
)

// TestEndToEndWorkflow walks a full planning session against the sqlite
// backend: init, schedule both days, resolve a conflict, move an activity
// across days, track status, and verify everything survives a reopen.
func TestEndToEndWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "weekendly.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	p, err := planner.New(store)
	if err != nil {
		t.Fatalf("planner failed: %v", err)
	}

	// Plan Saturday: brunch at 11, then a smart-placed hike.
	brunch, _ := catalog.Find("brunch")
	hiking, _ := catalog.Find("hiking")
	if _, err := p.Add(brunch, models.DaySaturday, "11:00", "", ""); err != nil {
		t.Fatalf("add brunch: %v", err)
	}
	hike, err := p.AddSmart(hiking, models.DaySaturday, "11:00")
	if err != nil {
		t.Fatalf("smart add hike: %v", err)
	}
	if hike.Time == "11:00" {
		t.Error("smart add reused the occupied 11:00 slot")
	}

	// Force a conflict, observe it, then resolve it with a retime.
	coffee, _ := catalog.Find("coffee")
	cup, err := p.Add(coffee, models.DaySaturday, "11:30", "", "")
	if err != nil {
		t.Fatalf("add coffee: %v", err)
	}
	if len(p.Conflicts(models.DaySaturday)) == 0 {
		t.Fatal("expected a conflict after double-booking 11:30")
	}
	if err := p.UpdateTime(models.DaySaturday, cup.ID, "11:15"); !errors.Is(err, planner.ErrConflict) {
		t.Errorf("retime into brunch should conflict, got %v", err)
	}
	if err := p.UpdateTime(models.DaySaturday, cup.ID, "16:00"); err != nil {
		t.Fatalf("retime to free slot: %v", err)
	}
	if got := p.Conflicts(models.DaySaturday); len(got) != 0 {
		t.Errorf("conflicts remain after retime: %v", got)
	}

	// Move the coffee to Sunday and walk its status forward.
	if err := p.MoveSmart(cup.ID, models.DaySaturday, models.DaySunday); err != nil {
		t.Fatalf("move to sunday: %v", err)
	}
	if _, err := p.AdvanceStatus(models.DaySunday, cup.ID); err != nil {
		t.Fatalf("advance status: %v", err)
	}
	if _, err := p.AdvanceStatus(models.DaySunday, cup.ID); err != nil {
		t.Fatalf("advance status: %v", err)
	}
	moved, err := p.Get(models.DaySunday, cup.ID)
	if err != nil {
		t.Fatalf("activity missing on sunday: %v", err)
	}
	if moved.Status != models.StatusDone {
		t.Errorf("status = %s, want done after two advances", moved.Status)
	}

	stats := p.Stats()
	if stats.TotalActivities != 3 {
		t.Errorf("total activities = %d, want 3", stats.TotalActivities)
	}
	if stats.Days[models.DaySunday].Count != 1 {
		t.Errorf("sunday count = %d, want 1", stats.Days[models.DaySunday].Count)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Reopen and verify the whole weekend survived.
	reopened := storage.NewSQLiteStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	defer reopened.Close()

	p2, err := planner.New(reopened)
	if err != nil {
		t.Fatalf("planner after reload: %v", err)
	}
	if p2.Stats().TotalActivities != 3 {
		t.Errorf("activities lost across reopen: %d", p2.Stats().TotalActivities)
	}
	got, err := p2.Get(models.DaySunday, cup.ID)
	if err != nil {
		t.Fatalf("coffee missing after reopen: %v", err)
	}
	if got != moved {
		t.Errorf("reloaded = %+v, want %+v", got, moved)
	}
	if err := p2.ClearWeekend(); err != nil {
		t.Fatalf("clear weekend: %v", err)
	}
	if p2.Stats().TotalActivities != 0 {
		t.Error("activities remain after clearing the weekend")
	}
}
