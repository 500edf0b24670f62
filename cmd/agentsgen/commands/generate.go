package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/handlers"
)

// Generate returns the non-interactive generation command.
//
// Required flags:
//
//	--answers, -a: YAML or JSON answers file
func Generate(g *globals) *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate AGENTS.md from an answers file",
		Long: `Generate AGENTS.md, and one document per selected sub-agent, from an
answers file.

Examples:
  # Write AGENTS.md into the current directory
  agentsgen generate -a answers.yaml

  # Print the document without writing files
  agentsgen generate -a answers.yaml --stdout

  # Render HTML and drop the workflows section
  agentsgen generate -a answers.yaml --format html --disable workflows`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return handlers.Generate(cmd.Context(), app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Answers, "answers", "a", "", "Answers file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory (default: output.dir)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: markdown or html (default: output.format)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the main document instead of writing files")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the main document to the clipboard")
	cmd.Flags().BoolVar(&opts.NoPrune, "no-prune", false, "Keep empty sections")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Sections to leave out (tech, testing, practices, style, workflows)")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}
