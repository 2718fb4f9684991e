package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/validation"
)

type NextCmd struct {
	Day      string `arg:"" optional:"" help:"Day to search (saturday|sunday)." default:"saturday"`
	Duration int    `short:"d" help:"Duration to fit, in minutes." default:"60"`
	Time     string `short:"t" help:"Preferred start time to try first (HH:MM)."`
}

func (c *NextCmd) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.Time != "" && !validation.IsValidTime(c.Time) {
		return fmt.Errorf("invalid time %q, expected HH:MM", c.Time)
	}
	return nil
}

func (c *NextCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}

	slot, ok := p.NextAvailableTime(day, c.Duration, c.Time)
	if !ok {
		return fmt.Errorf("no free %dm slot on %s", c.Duration, titleDay(day))
	}

	fmt.Printf("Next free %dm slot on %s: %s\n", c.Duration, titleDay(day), slot)
	return nil
}
