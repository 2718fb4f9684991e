package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	invalid := 0
	for _, day := range models.Days {
		for _, a := range p.DayActivities(day) {
			result := validation.ValidateActivity(a)
			if result.IsValid {
				continue
			}
			invalid++
			fmt.Printf("%s (%s, %s):\n", a.Name, titleDay(day), a.ID)
			for _, msg := range result.Errors {
				fmt.Printf("  - %s\n", msg)
			}
		}
	}

	for _, day := range models.Days {
		for _, conflict := range p.Conflicts(day) {
			fmt.Printf("Conflict on %s: %s overlaps %s by %dm\n",
				titleDay(day), conflict.First.Name, conflict.Second.Name, conflict.OverlapMinutes)
		}
	}

	if invalid == 0 {
		fmt.Println("All activities are valid")
		return nil
	}
	return fmt.Errorf("%d invalid activities", invalid)
}
