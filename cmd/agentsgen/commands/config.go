package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/handlers"
)

// Config returns the settings command group.
func Config(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage agentsgen settings",
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample agentsgen.toml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ConfigInit(cmd.OutOrStdout(), path)
		},
	}
	initCmd.Flags().StringVarP(&path, "output", "o", "", "Destination file (default: agentsgen.toml)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			handlers.ConfigShow(app)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
