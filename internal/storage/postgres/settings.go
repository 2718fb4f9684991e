package postgres

import (
	"database/sql"
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	var settings models.Settings
	var mood, status string
	err := s.db.QueryRow(`
		SELECT day_start, day_end, slot_interval_min, default_duration_min,
		       default_mood, default_status, saturday_date, sunday_date, timezone
		FROM settings WHERE id = 1
	`).Scan(&settings.DayStart, &settings.DayEnd, &settings.SlotIntervalMin,
		&settings.DefaultDurationMin, &mood, &status,
		&settings.SaturdayDate, &settings.SundayDate, &settings.Timezone)
	if err == sql.ErrNoRows {
		return models.Settings{}, fmt.Errorf("settings not found")
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	settings.DefaultMood = models.Mood(mood)
	settings.DefaultStatus = models.Status(status)
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (
			id, day_start, day_end, slot_interval_min, default_duration_min,
			default_mood, default_status, saturday_date, sunday_date, timezone
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			slot_interval_min = EXCLUDED.slot_interval_min,
			default_duration_min = EXCLUDED.default_duration_min,
			default_mood = EXCLUDED.default_mood,
			default_status = EXCLUDED.default_status,
			saturday_date = EXCLUDED.saturday_date,
			sunday_date = EXCLUDED.sunday_date,
			timezone = EXCLUDED.timezone
	`, settings.DayStart, settings.DayEnd, settings.SlotIntervalMin,
		settings.DefaultDurationMin, string(settings.DefaultMood), string(settings.DefaultStatus),
		settings.SaturdayDate, settings.SundayDate, settings.Timezone)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
