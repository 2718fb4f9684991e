package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/weekendly/weekendly/internal/cli"
	"github.com/weekendly/weekendly/internal/config"
	"github.com/weekendly/weekendly/internal/constants"
	apperrors "github.com/weekendly/weekendly/internal/errors"
	"github.com/weekendly/weekendly/internal/keyring"
	"github.com/weekendly/weekendly/internal/logger"
	"github.com/weekendly/weekendly/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Storage string `help:"Storage path or postgres URL, overrides the config file."`
	Debug   bool   `help:"Enable verbose logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize weekendly storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive planner." default:"1"`
	Catalog   cli.CatalogCmd   `cmd:"" help:"Browse the activity catalog."`
	Add       cli.AddCmd       `cmd:"" help:"Schedule an activity."`
	List      cli.ListCmd      `cmd:"" help:"Show the weekend schedule."`
	Remove    cli.RemoveCmd    `cmd:"" help:"Remove a scheduled activity."`
	Retime    cli.RetimeCmd    `cmd:"" help:"Change an activity's start time."`
	Move      cli.MoveCmd      `cmd:"" help:"Move an activity to the other day."`
	Mood      cli.MoodCmd      `cmd:"" help:"Set an activity's mood."`
	Status    cli.StatusCmd    `cmd:"" help:"Set or advance an activity's status."`
	Next      cli.NextCmd      `cmd:"" help:"Find the next free time slot."`
	Conflicts cli.ConflictsCmd `cmd:"" help:"Report overlapping activities."`
	Stats     cli.StatsCmd     `cmd:"" help:"Summarize the weekend."`
	Clear     cli.ClearCmd     `cmd:"" help:"Clear a day or the whole weekend."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Validate stored activities."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot."`
	} `cmd:"" help:"Manage storage backups."`
	Keyring   struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store the postgres connection string."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Delete the stored connection string."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekend activity planner"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Storage != "" {
		cfg.Storage = CLI.Storage
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: config.ExpandHome(constants.DefaultConfigDir),
	}); err != nil {
		apperrors.Fatal(err)
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		apperrors.Fatal(err)
	}
}

// openStore picks the backend from the storage string: a postgres URL, a
// .json file, or a sqlite database file. Postgres credentials come from the
// environment or the OS keyring, never from the URL itself.
func openStore(storagePath string) (storage.Provider, error) {
	if storage.IsPostgresURL(storagePath) {
		if storage.HasEmbeddedCredentials(storagePath) {
			return nil, fmt.Errorf("connection string must not embed a password, use 'weekendly keyring set' or %s", constants.EnvDatabaseURL)
		}
		connStr, err := resolveConnectionString(storagePath)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(connStr), nil
	}

	path := config.ExpandHome(storagePath)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return storage.NewJSONStore(path), nil
	}
	return storage.NewSQLiteStore(path), nil
}

// resolveConnectionString prefers the environment, then the OS keyring,
// then falls back to the credential-free URL itself (local trust auth).
func resolveConnectionString(configured string) (string, error) {
	if env := os.Getenv(constants.EnvDatabaseURL); env != "" {
		return env, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err == nil {
		return connStr, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return configured, nil
	}
	return "", err
}
