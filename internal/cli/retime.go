package cli

import (
	"errors"
	"fmt"

	"github.com/weekendly/weekendly/internal/planner"
	"github.com/weekendly/weekendly/internal/validation"
)

type RetimeCmd struct {
	ID   string `arg:"" help:"Placement id (or unique prefix)."`
	Time string `arg:"" help:"New start time (HH:MM)."`
}

func (c *RetimeCmd) Validate() error {
	if !validation.IsValidTime(c.Time) {
		return fmt.Errorf("invalid time %q, expected HH:MM", c.Time)
	}
	return nil
}

func (c *RetimeCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	activity, err := findActivity(p, c.ID)
	if err != nil {
		return err
	}

	if err := p.UpdateTime(activity.Day, activity.ID, c.Time); err != nil {
		if errors.Is(err, planner.ErrConflict) {
			return fmt.Errorf("%s at %s would overlap another activity", activity.Name, c.Time)
		}
		return err
	}

	fmt.Printf("Moved %s to %s\n", activity.Name, c.Time)
	return nil
}
