package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/schedule"
)

type ListCmd struct {
	Day      string `arg:"" optional:"" help:"Day to show (saturday|sunday). Omit for both."`
	Category string `short:"c" help:"Filter by category."`
	Mood     string `short:"m" help:"Filter by mood."`
	Status   string `short:"s" help:"Filter by status."`
	Ampm     bool   `help:"Show 12-hour times."`
	IDs      bool   `help:"Show placement ids."`
}

func (c *ListCmd) Run(ctx *Context) error {
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

	for _, day := range days {
		activities := p.DayActivities(day)
		elapsed := p.Elapsed(day)
		if c.Category != "" {
			activities = schedule.ByCategory(activities, c.Category)
		}
		if c.Mood != "" {
			activities = schedule.ByMood(activities, models.Mood(c.Mood))
		}
		if c.Status != "" {
			activities = schedule.ByStatus(activities, models.Status(c.Status))
		}

		fmt.Printf("%s (%dm scheduled):\n", titleDay(day), schedule.TotalDuration(activities))
		if len(activities) == 0 {
			fmt.Println("  No activities")
			continue
		}
		for _, a := range activities {
			line := formatActivity(a)
			if c.Ampm {
				end := schedule.AddDuration(a.Time, a.Duration)
				line = fmt.Sprintf("%s–%s  %-30s  [%s]", schedule.FormatAmPm(a.Time), schedule.FormatAmPm(end), a.Name, a.Status)
			}
			if elapsed[a.ID] {
				line += "  (past)"
			}
			fmt.Printf("  %s\n", line)
			if c.IDs {
				fmt.Printf("      ID: %s\n", a.ID)
			}
		}
	}
	return nil
}
