package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/validation"
)

type MoveCmd struct {
	ID   string `arg:"" help:"Placement id (or unique prefix)."`
	To   string `arg:"" help:"Destination day (saturday|sunday)."`
	Time string `short:"t" help:"Explicit start time on the destination day (HH:MM)."`
	Keep bool   `short:"k" help:"Keep the current start time instead of picking a free slot."`
}

func (c *MoveCmd) Validate() error {
	if c.Time != "" && !validation.IsValidTime(c.Time) {
		return fmt.Errorf("invalid time %q, expected HH:MM", c.Time)
	}
	if c.Time != "" && c.Keep {
		return fmt.Errorf("--time and --keep are mutually exclusive")
	}
	return nil
}

func (c *MoveCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	toDay, err := parseDay(c.To)
	if err != nil {
		return err
	}
	activity, err := findActivity(p, c.ID)
	if err != nil {
		return err
	}
	if activity.Day == toDay {
		return fmt.Errorf("%s is already on %s", activity.Name, titleDay(toDay))
	}

	switch {
	case c.Time != "":
		err = p.Move(activity.ID, activity.Day, toDay, c.Time)
	case c.Keep:
		err = p.Move(activity.ID, activity.Day, toDay, "")
	default:
		err = p.MoveSmart(activity.ID, activity.Day, toDay)
	}
	if err != nil {
		return err
	}

	moved, err := p.Get(toDay, activity.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Moved %s to %s at %s\n", moved.Name, titleDay(toDay), moved.Time)
	return nil
}
