package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	stats := p.Stats()
	for _, day := range models.Days {
		ds := stats.Days[day]
		fmt.Printf("%s: %d activities, %dm scheduled", titleDay(day), ds.Count, ds.DurationMin)
		if ds.Conflicts > 0 {
			fmt.Printf(", %d conflicts", ds.Conflicts)
		}
		fmt.Println()
	}
	fmt.Printf("Total: %d activities, %dm\n", stats.TotalActivities, stats.TotalDuration)
	return nil
}
