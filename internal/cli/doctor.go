package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/weekendly/weekendly/internal/constants"
	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/schedule"
	"github.com/weekendly/weekendly/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	if storageReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}

		if err := checkActivityIntegrity(ctx); err != nil {
			fmt.Printf("❌ Activity integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Activity integrity: OK\n")
		}

		if n := countConflicts(ctx); n > 0 {
			fmt.Printf("⚠ Schedule conflicts: WARNING\n")
			fmt.Printf("   %d overlapping pairs, see 'weekendly conflicts'\n", n)
		} else {
			fmt.Printf("✓ Schedule conflicts: none\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Activity integrity: SKIPPED (storage not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if _, err := ctx.Planner(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	return nil
}

func checkSettings(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	settings := p.Settings()
	if !validation.IsValidTime(settings.DayStart) {
		return fmt.Errorf("invalid day start %q", settings.DayStart)
	}
	if !validation.IsValidTime(settings.DayEnd) {
		return fmt.Errorf("invalid day end %q", settings.DayEnd)
	}
	if settings.SlotIntervalMin <= 0 {
		return fmt.Errorf("slot interval must be positive, got %d", settings.SlotIntervalMin)
	}
	if _, err := settings.Location(); err != nil {
		return fmt.Errorf("timezone %q is not loadable: %w", settings.Timezone, err)
	}
	return nil
}

func checkActivityIntegrity(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, day := range models.Days {
		for _, a := range p.DayActivities(day) {
			if seen[a.ID] {
				return fmt.Errorf("duplicate activity ID: %s", a.ID)
			}
			seen[a.ID] = true

			if a.Day != day {
				return fmt.Errorf("activity %s stored under %s but tagged %s", a.ID, day, a.Day)
			}
			if result := validation.ValidateActivity(a); !result.IsValid {
				return fmt.Errorf("activity %s is invalid: %s", a.ID, strings.Join(result.Errors, "; "))
			}
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		// Postgres storage has no file backups.
		return nil
	}

	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider 'weekendly backup create'")
	}
	return nil
}

func countConflicts(ctx *Context) int {
	p, err := ctx.Planner()
	if err != nil {
		return 0
	}

	total := 0
	for _, day := range models.Days {
		total += len(p.Conflicts(day))
	}
	return total
}

// checkSingleInstance warns when another weekendly process is running.
// Storage assumes a single writer, so concurrent instances can clobber
// each other's saves.
func checkSingleInstance() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, proc := range processes {
		if proc.Pid() == self {
			continue
		}
		if strings.Contains(proc.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (pid %d)", constants.AppName, proc.Pid())
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	zone, offset := now.Zone()
	fmt.Printf("   Local time %s (%s)\n", schedule.CurrentTime(nil), zone)
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
