package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agentsgen/cmd/agentsgen/handlers"
)

// Watch returns the live preview command.
func Watch(g *globals) *cobra.Command {
	var opts handlers.WatchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the preview when the answers file changes",
		Long: `Watch an answers file and re-render AGENTS.md after each burst of edits.
The preview is printed unless --preview names a file. Stop with Ctrl+C.

Examples:
  agentsgen watch -a answers.yaml
  agentsgen watch -a answers.yaml --preview AGENTS.preview.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return handlers.Watch(cmd.Context(), app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Answers, "answers", "a", "", "Answers file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.Preview, "preview", "", "File that receives the preview (default: preview.file)")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}
