package storage

import (
	"net/url"
	"strings"

	"github.com/weekendly/weekendly/internal/models"
)

// Provider persists the weekend schedule and settings. Implementations are
// single-writer; the planner serializes mutations before calling in.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Schedule. SaveDay replaces a day's collection wholesale and preserves
	// the caller's ordering, which carries drag-drop reorder state.
	GetDay(day models.Day) ([]models.ScheduledActivity, error)
	GetWeekend() (map[models.Day][]models.ScheduledActivity, error)
	SaveDay(day models.Day, activities []models.ScheduledActivity) error
	ClearDay(day models.Day) error

	// Utils
	GetConfigPath() string
}

// IsPostgresURL reports whether the config string is a postgres connection
// string rather than a file path.
func IsPostgresURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a postgres connection string embeds
// a password. Credentials belong in the OS keyring or environment, never in
// config files or shell history.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
