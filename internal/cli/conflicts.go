package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/schedule"
)

type ConflictsCmd struct {
	Day    string `arg:"" optional:"" help:"Day to check (saturday|sunday). Omit for both."`
	Strict bool   `help:"Compare every pair, not just chronological neighbors."`
}

func (c *ConflictsCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	days := models.Days
	if c.Day != "" {
		day, err := parseDay(c.Day)
		if err != nil {
			return err
		}
		days = []models.Day{day}
	}

	total := 0
	for _, day := range days {
		var conflicts []schedule.Conflict
		if c.Strict {
			conflicts = p.ConflictsStrict(day)
		} else {
			conflicts = p.Conflicts(day)
		}
		if len(conflicts) == 0 {
			continue
		}

		fmt.Printf("%s:\n", titleDay(day))
		for _, conflict := range conflicts {
			fmt.Printf("  %s (%s) overlaps %s (%s) by %dm\n",
				conflict.First.Name, conflict.First.Time,
				conflict.Second.Name, conflict.Second.Time,
				conflict.OverlapMinutes)
		}
		total += len(conflicts)
	}

	if total == 0 {
		fmt.Println("No conflicts found")
	}
	return nil
}
