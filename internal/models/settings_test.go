package models

import (
	"testing"
	"time"
)

func TestSettingsLocation(t *testing.T) {
	loc, err := Settings{}.Location()
	if err != nil || loc != time.Local {
		t.Errorf("empty timezone: loc=%v err=%v, want system zone", loc, err)
	}

	loc, err = Settings{Timezone: "Local"}.Location()
	if err != nil || loc != time.Local {
		t.Errorf("Local: loc=%v err=%v, want system zone", loc, err)
	}

	loc, err = Settings{Timezone: "UTC"}.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("UTC: loc=%v err=%v", loc, err)
	}

	if _, err := (Settings{Timezone: "Not/AZone"}).Location(); err == nil {
		t.Error("bogus zone should not resolve")
	}
}
