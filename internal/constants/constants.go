package constants

const (
	AppName            = "weekendly"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/weekendly"
	DefaultStoragePath = "~/.config/weekendly/weekendly.db"
	Version            = "v0.3.0"

	// EnvDatabaseURL overrides the keyring-stored postgres connection string
	EnvDatabaseURL = "WEEKENDLY_DATABASE_URL"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Slot search window defaults. Candidates run from SearchStartHour:00 up to
	// (but not including) SearchEndHour:00 in SearchIntervalMin steps.
	SearchStartHour   = 6
	SearchEndHour     = 22
	SearchIntervalMin = 30

	// Placement defaults applied when the caller gives no explicit value
	DefaultTime        = "09:00"
	DefaultDurationMin = 60
	DefaultDayStart    = "06:00"
	DefaultDayEnd      = "22:00"
)
