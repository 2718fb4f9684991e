package postgres

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
)

const selectColumns = "id, day, activity_id, name, icon, description, category, time, duration, mood, status"

func (s *Store) GetDay(day models.Day) ([]models.ScheduledActivity, error) {
	rows, err := s.db.Query(
		"SELECT "+selectColumns+" FROM activities WHERE day = $1 ORDER BY position",
		string(day),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	return scanActivities(rows)
}

func (s *Store) GetWeekend() (map[models.Day][]models.ScheduledActivity, error) {
	weekend := make(map[models.Day][]models.ScheduledActivity, len(models.Days))
	for _, day := range models.Days {
		activities, err := s.GetDay(day)
		if err != nil {
			return nil, err
		}
		weekend[day] = activities
	}
	return weekend, nil
}

func (s *Store) SaveDay(day models.Day, activities []models.ScheduledActivity) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM activities WHERE day = $1", string(day)); err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO activities (id, day, activity_id, name, icon, description, category, time, duration, mood, status, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range activities {
		if _, err := stmt.Exec(a.ID, string(day), a.ActivityID, a.Name, a.Icon,
			a.Description, a.Category, a.Time, a.Duration, string(a.Mood), string(a.Status), i); err != nil {
			return fmt.Errorf("failed to insert activity %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

func (s *Store) ClearDay(day models.Day) error {
	_, err := s.db.Exec("DELETE FROM activities WHERE day = $1", string(day))
	if err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}
	return nil
}
