package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/catalog"
	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/validation"
)

type AddCmd struct {
	Template string `arg:"" optional:"" help:"Catalog template id (see 'weekendly catalog')."`
	Day      string `short:"D" help:"Day to schedule on (saturday|sunday)." default:"saturday"`
	Time     string `short:"t" help:"Start time (HH:MM). Omit to take the first free slot."`
	Name     string `short:"n" help:"Name for a custom activity (instead of a template)."`
	Category string `short:"c" help:"Category for a custom activity." default:"errands"`
	Duration int    `short:"d" help:"Duration in minutes for a custom activity." default:"60"`
	Mood     string `short:"m" help:"Mood (happy|relaxed|energetic|focused|creative|social)."`
	Status   string `short:"s" help:"Status (pending|inProgress|done|cancelled)."`
}

func (c *AddCmd) Validate() error {
	if c.Template == "" && c.Name == "" {
		return fmt.Errorf("either a template id or --name is required")
	}
	if c.Template != "" && c.Name != "" {
		return fmt.Errorf("template id and --name are mutually exclusive")
	}
	if c.Time != "" && !validation.IsValidTime(c.Time) {
		return fmt.Errorf("invalid time %q, expected HH:MM", c.Time)
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}

	var template catalog.Activity
	if c.Template != "" {
		t, ok := catalog.Find(c.Template)
		if !ok {
			return fmt.Errorf("unknown template %q, see 'weekendly catalog'", c.Template)
		}
		template = t
	} else {
		template = catalog.Custom(c.Name, c.Category, c.Duration)
	}

	var added models.ScheduledActivity
	if c.Time == "" {
		added, err = p.AddSmart(template, day, "")
	} else {
		added, err = p.Add(template, day, c.Time, models.Mood(c.Mood), models.Status(c.Status))
	}
	if err != nil {
		return err
	}

	fmt.Printf("Added %s on %s at %s (ID: %s)\n", added.Name, titleDay(day), added.Time, added.ID)
	return nil
}
