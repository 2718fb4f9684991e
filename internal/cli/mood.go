package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
)

type MoodCmd struct {
	ID   string `arg:"" help:"Placement id (or unique prefix)."`
	Mood string `arg:"" help:"Mood (happy|relaxed|energetic|focused|creative|social)."`
}

func (c *MoodCmd) Validate() error {
	for _, m := range models.Moods {
		if string(m) == c.Mood {
			return nil
		}
	}
	return fmt.Errorf("invalid mood %q", c.Mood)
}

func (c *MoodCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	activity, err := findActivity(p, c.ID)
	if err != nil {
		return err
	}
	if err := p.SetMood(activity.Day, activity.ID, models.Mood(c.Mood)); err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", activity.Name, c.Mood)
	return nil
}
