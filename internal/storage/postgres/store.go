package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

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

// Store is the shared-database backend. The connection string arrives fully
// resolved; credential lookup (keyring, environment) happens in the caller.
type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{connStr: connStr}
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

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
	if err := s.open(); err != nil {
		return err
	}
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

// GetConfigPath returns the connection string with any userinfo intact; the
// caller guarantees credentials were never embedded.
func (s *Store) GetConfigPath() string {
	return s.connStr
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
