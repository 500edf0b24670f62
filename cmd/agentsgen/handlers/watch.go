package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-agentsgen/internal/output"
	"github.com/goliatone/go-agentsgen/internal/preview"
	"github.com/goliatone/go-agentsgen/pkg/answers"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
)

// WatchOptions holds the watch command flags.
type WatchOptions struct {
	Answers string
	Preview string
}

// Watch re-renders the main document whenever the answers file changes. The
// preview goes to the preview file when set, otherwise to stdout. Invalid
// answers are logged and the previous preview is kept.
func Watch(ctx context.Context, app *App, opts WatchOptions) error {
	if opts.Answers == "" {
		return fmt.Errorf("watch: --answers is required")
	}
	if opts.Preview == "" {
		opts.Preview = app.Config.Preview.File
	}

	gen, err := app.Orchestrator(true)
	if err != nil {
		return err
	}

	refresh := func() {
		if err := renderPreview(ctx, app, gen, opts); err != nil {
			app.Logger.Warn().Err(err).Str("answers", opts.Answers).Msg("preview skipped")
		}
	}
	refresh()

	app.Logger.Info().Str("answers", opts.Answers).Msg("watching for changes")
	return preview.Watch(ctx, opts.Answers, app.Config.Preview.Debounce, app.Logger, refresh)
}

func renderPreview(ctx context.Context, app *App, gen *orchestrator.Orchestrator, opts WatchOptions) error {
	state, err := answers.LoadState(opts.Answers)
	if err != nil {
		return err
	}
	markdown := gen.Markdown(ctx, state)
	if opts.Preview != "" {
		return os.WriteFile(opts.Preview, []byte(markdown), 0o644)
	}
	output.New(app.Stdout).Preview(orchestrator.PrimaryName+".md", markdown)
	return nil
}
