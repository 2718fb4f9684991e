package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
)

type StatusCmd struct {
	ID     string `arg:"" help:"Placement id (or unique prefix)."`
	Status string `arg:"" optional:"" help:"Status to set (pending|inProgress|done|cancelled). Omit to advance the cycle."`
}

func (c *StatusCmd) Validate() error {
	if c.Status == "" {
		return nil
	}
	for _, s := range models.Statuses {
		if string(s) == c.Status {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q", c.Status)
}

func (c *StatusCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	activity, err := findActivity(p, c.ID)
	if err != nil {
		return err
	}

	next := models.Status(c.Status)
	if c.Status == "" {
		next, err = p.AdvanceStatus(activity.Day, activity.ID)
	} else {
		err = p.SetStatus(activity.Day, activity.ID, next)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", activity.Name, next)
	return nil
}
