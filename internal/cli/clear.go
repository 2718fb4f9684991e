package cli

import "fmt"

type ClearCmd struct {
	Day   string `arg:"" optional:"" help:"Day to clear (saturday|sunday). Omit for the whole weekend."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	scope := "the whole weekend"
	if c.Day != "" {
		scope = c.Day
	}
	if !c.Force {
		fmt.Printf("Clear %s? [y/N] ", scope)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if c.Day == "" {
		if err := p.ClearWeekend(); err != nil {
			return err
		}
		fmt.Println("Cleared the weekend")
		return nil
	}

	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	if err := p.ClearDay(day); err != nil {
		return err
	}
	fmt.Printf("Cleared %s\n", titleDay(day))
	return nil
}
