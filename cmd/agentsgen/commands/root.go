// Package commands defines the CLI command structure and flag bindings.
//
// Commands parse flags and delegate execution to the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/handlers"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	assets     string
}

// Root returns the root command for the agentsgen CLI.
func Root() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:           "agentsgen",
		Short:         "Generate AGENTS.md files for AI coding assistants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to settings file (default: ./agentsgen.toml)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.assets, "assets", "", "Asset bundle directory or base URL (default: embedded)")

	cmd.AddCommand(Generate(g))
	cmd.AddCommand(Form(g))
	cmd.AddCommand(Wizard(g))
	cmd.AddCommand(Watch(g))
	cmd.AddCommand(Catalog(g))
	cmd.AddCommand(Config(g))
	cmd.AddCommand(Version())

	return cmd
}

func (g *globals) app(cmd *cobra.Command) (*handlers.App, error) {
	return handlers.NewApp(handlers.Globals{
		ConfigPath: g.configPath,
		LogLevel:   g.logLevel,
		Assets:     g.assets,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})
}
