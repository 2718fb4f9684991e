package storage

import (
	"github.com/weekendly/weekendly/internal/storage/postgres"
	"github.com/weekendly/weekendly/internal/storage/sqlite"
)

// NewSQLiteStore opens the default single-user backend at the given path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore opens the shared-database backend. The connection string
// must already carry resolved credentials (keyring or environment).
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
	_ Provider = (*JSONStore)(nil)
)
