package cli

import "fmt"

type RemoveCmd struct {
	ID string `arg:"" help:"Placement id (or unique prefix)."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	activity, err := findActivity(p, c.ID)
	if err != nil {
		return err
	}
	if err := p.Remove(activity.Day, activity.ID); err != nil {
		return err
	}

	fmt.Printf("Removed %s from %s\n", activity.Name, titleDay(activity.Day))
	return nil
}
