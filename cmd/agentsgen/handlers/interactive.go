package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goliatone/go-agentsgen/internal/logging"
	"github.com/goliatone/go-agentsgen/internal/preview"
	"github.com/goliatone/go-agentsgen/pkg/answers"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
	"github.com/goliatone/go-agentsgen/pkg/renderers/tui"
	"github.com/goliatone/go-agentsgen/pkg/wizard"
)

// ErrNotInteractive is returned when a prompt command runs without a terminal.
var ErrNotInteractive = errors.New("interactive mode requires a terminal; use generate --answers instead")

// InteractiveOptions holds the form and wizard command flags.
type InteractiveOptions struct {
	// Seed pre-fills the form from an answers file.
	Seed    string
	OutDir  string
	Format  string
	Stdout  bool
	Copy    bool
	Preview string

	// Prompts overrides the terminal driver. Set by tests.
	Prompts tui.PromptDriver
}

// Form walks every category and section in one pass, then writes the result.
func Form(ctx context.Context, app *App, opts InteractiveOptions) error {
	if err := requireTerminal(opts); err != nil {
		return err
	}

	state := model.NewState()
	if opts.Seed != "" {
		seeded, err := answers.LoadState(opts.Seed)
		if err != nil {
			return err
		}
		state = seeded
	}

	gen, err := app.Orchestrator(true)
	if err != nil {
		return err
	}
	prompter, err := app.prompter(ctx, gen, opts)
	if err != nil {
		return err
	}
	if err := prompter.RunForm(ctx, state); err != nil {
		return abortAware(app, err)
	}

	result, err := app.generate(ctx, gen, state, opts.Format)
	if err != nil {
		return err
	}
	return app.deliver(result, opts.OutDir, opts.Stdout, opts.Copy)
}

// Wizard runs the guided step flow. Previews are written to the preview file,
// debounced, when one is configured.
func Wizard(ctx context.Context, app *App, opts InteractiveOptions) error {
	if err := requireTerminal(opts); err != nil {
		return err
	}

	gen, err := app.Orchestrator(true)
	if err != nil {
		return err
	}

	target := opts.Preview
	if target == "" {
		target = app.Config.Preview.File
	}
	sink := newPreviewSink(app, target)
	defer sink.stop()

	ctrl := wizard.New(
		wizard.WithPreviewer(func(state *model.State) string {
			return gen.Markdown(ctx, state)
		}),
		wizard.WithLogger(app.Logger),
	)

	prompter, err := app.prompter(ctx, gen, opts, tui.WithPreview(sink.update))
	if err != nil {
		return err
	}

	if _, err := prompter.RunWizard(ctx, ctrl); err != nil {
		return abortAware(app, err)
	}

	result, err := app.generate(ctx, gen, ctrl.State(), opts.Format)
	if err != nil {
		return err
	}
	return app.deliver(result, opts.OutDir, opts.Stdout, opts.Copy)
}

func (a *App) prompter(ctx context.Context, gen *orchestrator.Orchestrator, opts InteractiveOptions, extra ...tui.Option) (*tui.Prompter, error) {
	options := []tui.Option{
		tui.WithOutput(a.Stderr),
		tui.WithCatalog(gen.Catalog(ctx)),
		tui.WithLogger(a.Logger),
	}
	if opts.Prompts != nil {
		options = append(options, tui.WithPromptDriver(opts.Prompts))
	}
	options = append(options, extra...)
	return tui.New(options...)
}

// previewSink writes the latest wizard preview to a file once edits settle.
type previewSink struct {
	mu        sync.Mutex
	app       *App
	path      string
	latest    string
	debouncer *preview.Debouncer
}

func newPreviewSink(app *App, path string) *previewSink {
	sink := &previewSink{app: app, path: path}
	if path != "" {
		sink.debouncer = preview.NewDebouncer(app.Config.Preview.Debounce, sink.flush)
	}
	return sink
}

func (s *previewSink) update(markdown string) {
	if s.debouncer == nil {
		return
	}
	s.mu.Lock()
	s.latest = markdown
	s.mu.Unlock()
	s.debouncer.Trigger()
}

func (s *previewSink) flush() {
	s.mu.Lock()
	content := s.latest
	s.mu.Unlock()
	if err := os.WriteFile(s.path, []byte(content), 0o644); err != nil {
		s.app.Logger.Warn().Err(err).Str("path", s.path).Msg("preview write failed")
	}
}

func (s *previewSink) stop() {
	if s.debouncer != nil {
		s.debouncer.Stop()
	}
}

func requireTerminal(opts InteractiveOptions) error {
	if opts.Prompts != nil {
		return nil
	}
	if !logging.IsTerminal(os.Stdin) {
		return ErrNotInteractive
	}
	return nil
}

func abortAware(app *App, err error) error {
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(app.Stderr, "Aborted, nothing written.")
		return nil
	}
	return err
}
