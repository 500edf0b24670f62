package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/handlers"
)

// Catalog returns the command listing selectable keys.
func Catalog(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [category]",
		Short: "List the keys available in the asset bundle",
		Long: `List selectable keys with their display names and descriptions.

Categories: tech, frontend, testing, practices, style, agents.

Examples:
  agentsgen catalog
  agentsgen catalog tech`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return handlers.Catalog(cmd.Context(), app, category)
		},
	}
}
