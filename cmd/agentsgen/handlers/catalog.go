package handlers

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Catalog lists the selectable keys. An empty category lists all of them.
func Catalog(ctx context.Context, app *App, category string) error {
	gen, err := app.Orchestrator(true)
	if err != nil {
		return err
	}
	cat := gen.Catalog(ctx)

	categories := model.Categories()
	if category != "" {
		parsed, ok := model.ParseCategory(category)
		if !ok {
			return fmt.Errorf("catalog: unknown category %q", category)
		}
		categories = []model.Category{parsed}
	}

	w := tabwriter.NewWriter(app.Stdout, 0, 0, 2, ' ', 0)
	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s]\n", c)
		for _, key := range cat.Keys(c) {
			name, description := key, ""
			if c == model.CategoryAgents {
				if tpl, ok := cat.Agent(key); ok {
					name, description = tpl.Name, tpl.Description
				}
			} else {
				entry := cat.Table(c).Resolve(key)
				name, description = entry.Name, entry.Description
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", key, name, description)
		}
	}
	return w.Flush()
}
