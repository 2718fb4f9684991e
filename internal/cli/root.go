package cli

import (
	"fmt"
	"strings"

	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/planner"
	"github.com/weekendly/weekendly/internal/schedule"
	"github.com/weekendly/weekendly/internal/storage"
)

// Context is the shared state kong passes to every command's Run.
type Context struct {
	Store storage.Provider

	p *planner.Planner
}

// Planner loads storage on first use and returns the shared planner.
func (c *Context) Planner() (*planner.Planner, error) {
	if c.p != nil {
		return c.p, nil
	}
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	p, err := planner.New(c.Store)
	if err != nil {
		return nil, err
	}
	c.p = p
	return p, nil
}

func parseDay(s string) (models.Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sat", "saturday":
		return models.DaySaturday, nil
	case "sun", "sunday":
		return models.DaySunday, nil
	}
	return models.ParseDay(s)
}

// findActivity locates a placement by full id or unique prefix, searching
// both days. Useful because generated ids carry a long random suffix.
func findActivity(p *planner.Planner, id string) (models.ScheduledActivity, error) {
	var matches []models.ScheduledActivity
	for _, day := range models.Days {
		for _, a := range p.DayActivities(day) {
			if a.ID == id {
				return a, nil
			}
			if strings.HasPrefix(a.ID, id) {
				matches = append(matches, a)
			}
		}
	}

	switch len(matches) {
	case 0:
		return models.ScheduledActivity{}, fmt.Errorf("no activity matching %q", id)
	case 1:
		return matches[0], nil
	default:
		return models.ScheduledActivity{}, fmt.Errorf("%q is ambiguous, matches %d activities", id, len(matches))
	}
}

func formatActivity(a models.ScheduledActivity) string {
	end := schedule.AddDuration(a.Time, a.Duration)
	line := fmt.Sprintf("%s–%s  %-30s  [%s]", a.Time, end, a.Name, a.Status)
	if a.Mood != "" {
		line += fmt.Sprintf(" (%s)", a.Mood)
	}
	return line
}

func titleDay(day models.Day) string {
	s := string(day)
	return strings.ToUpper(s[:1]) + s[1:]
}
