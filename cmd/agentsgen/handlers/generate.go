package handlers

import (
	"context"
	"fmt"

	"github.com/goliatone/go-agentsgen/pkg/answers"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// GenerateOptions holds the generate command flags.
type GenerateOptions struct {
	Answers string
	OutDir  string
	Format  string
	Stdout  bool
	Copy    bool
	NoPrune bool
	Disable []string
}

// Generate renders the documents described by an answers file.
func Generate(ctx context.Context, app *App, opts GenerateOptions) error {
	if opts.Answers == "" {
		return fmt.Errorf("generate: --answers is required")
	}

	state, err := answers.LoadState(opts.Answers)
	if err != nil {
		return err
	}
	if err := disableSections(state, opts.Disable); err != nil {
		return err
	}

	gen, err := app.Orchestrator(!opts.NoPrune)
	if err != nil {
		return err
	}
	result, err := app.generate(ctx, gen, state, opts.Format)
	if err != nil {
		return err
	}

	app.Logger.Debug().
		Str("answers", opts.Answers).
		Int("files", len(result.Files())).
		Msg("documents generated")

	return app.deliver(result, opts.OutDir, opts.Stdout, opts.Copy)
}

func disableSections(state *model.State, names []string) error {
	for _, name := range names {
		section, ok := model.ParseSection(name)
		if !ok {
			return fmt.Errorf("generate: unknown section %q", name)
		}
		state.Apply(model.ToggleSection{Section: section, Enabled: false})
	}
	return nil
}
