package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/handlers"
)

// Form returns the single-pass interactive command.
func Form(g *globals) *cobra.Command {
	var opts handlers.InteractiveOptions

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill every section in one interactive pass",
		Long: `Prompt for project details, selections and sections in one pass, then
write AGENTS.md.

Examples:
  agentsgen form
  agentsgen form --seed answers.yaml --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return handlers.Form(cmd.Context(), app, opts)
		},
	}

	bindInteractive(cmd, &opts)
	cmd.Flags().StringVar(&opts.Seed, "seed", "", "Answers file used as the starting state")

	return cmd
}

// Wizard returns the guided step-by-step command.
func Wizard(g *globals) *cobra.Command {
	var opts handlers.InteractiveOptions

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build AGENTS.md with a guided wizard",
		Long: `Walk through the setup steps one at a time. Required steps must be filled
before moving on; optional steps can be skipped.

Pass --preview to keep a file updated with the document as you type.

Examples:
  agentsgen wizard
  agentsgen wizard --preview /tmp/AGENTS.preview.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return handlers.Wizard(cmd.Context(), app, opts)
		},
	}

	bindInteractive(cmd, &opts)
	cmd.Flags().StringVar(&opts.Preview, "preview", "", "File that receives the live preview (default: preview.file)")

	return cmd
}

func bindInteractive(cmd *cobra.Command, opts *handlers.InteractiveOptions) {
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory (default: output.dir)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: markdown or html (default: output.format)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the main document instead of writing files")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the main document to the clipboard")
}
