package cli

import (
	"fmt"

	"github.com/weekendly/weekendly/internal/catalog"
)

type CatalogCmd struct {
	Category string `short:"c" help:"Show only one category."`
}

func (c *CatalogCmd) Validate() error {
	if c.Category == "" {
		return nil
	}
	for _, cat := range catalog.Categories {
		if cat == c.Category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", c.Category)
}

func (c *CatalogCmd) Run(ctx *Context) error {
	categories := catalog.Categories
	if c.Category != "" {
		categories = []string{c.Category}
	}

	for _, category := range categories {
		fmt.Printf("%s:\n", category)
		for _, a := range catalog.ByCategory(category) {
			fmt.Printf("  %-18s %s (%dm)\n", a.ID, a.Name, a.Duration)
		}
		fmt.Println()
	}
	return nil
}
