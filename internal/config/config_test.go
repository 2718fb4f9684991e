package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage == "" {
		t.Error("default storage path missing")
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage: postgres://user@localhost:5432/weekendly\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage != "postgres://user@localhost:5432/weekendly" {
		t.Errorf("storage = %q", cfg.Storage)
	}
	if !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should fail loudly")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{Storage: "/tmp/weekendly.db", Debug: true}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := ExpandHome("~/.config/weekendly")
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandHome = %q, want prefix %q", got, home)
	}
	if got := ExpandHome("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
