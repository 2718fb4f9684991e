package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/weekendly/weekendly/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	day_start TEXT NOT NULL,
	day_end TEXT NOT NULL,
	slot_interval_min INTEGER NOT NULL,
	default_duration_min INTEGER NOT NULL,
	default_mood TEXT NOT NULL,
	default_status TEXT NOT NULL,
	saturday_date TEXT NOT NULL DEFAULT '',
	sunday_date TEXT NOT NULL DEFAULT '',
	timezone TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS activities (
	id TEXT PRIMARY KEY,
	day TEXT NOT NULL,
	activity_id TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL,
	icon TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	time TEXT NOT NULL,
	duration INTEGER NOT NULL,
	mood TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(day, position);
`

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed defaults only when settings are absent
	settings, err := s.GetSettings()
	if err != nil || settings.DayStart == "" {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'weekendly init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

func scanActivities(rows *sql.Rows) ([]models.ScheduledActivity, error) {
	defer rows.Close()

	activities := []models.ScheduledActivity{}
	for rows.Next() {
		var a models.ScheduledActivity
		var day, mood, status string
		if err := rows.Scan(&a.ID, &day, &a.ActivityID, &a.Name, &a.Icon,
			&a.Description, &a.Category, &a.Time, &a.Duration, &mood, &status); err != nil {
			return nil, err
		}
		a.Day = models.Day(day)
		a.Mood = models.Mood(mood)
		a.Status = models.Status(status)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
