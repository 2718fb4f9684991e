package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/backup"
	"github.com/weekendly/weekendly/internal/storage"
)

func backupManager(ctx *Context) (*backup.Manager, error) {
	path := ctx.Store.GetConfigPath()
	if storage.IsPostgresURL(path) {
		return nil, fmt.Errorf("backups only apply to file-based storage")
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %6d bytes  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" optional:"" help:"Backup file to restore. Omit for the most recent."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		backups, err := mgr.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups to restore")
		}
		path = backups[0].Path
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored storage from %s\n", path)
	return nil
}
