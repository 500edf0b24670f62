// Package handlers implements the CLI command logic. Commands parse flags and
// delegate here.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	agentsgen "github.com/goliatone/go-agentsgen"
	"github.com/goliatone/go-agentsgen/internal/config"
	"github.com/goliatone/go-agentsgen/internal/logging"
	"github.com/goliatone/go-agentsgen/internal/output"
	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
	"github.com/goliatone/go-agentsgen/pkg/prune"
	"github.com/goliatone/go-agentsgen/pkg/render"
)

// Globals carries the persistent root flags.
type Globals struct {
	ConfigPath string
	LogLevel   string
	Assets     string
	Stdout     io.Writer
	Stderr     io.Writer
}

// App bundles what every command needs.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Output *output.Writer
	Stdout io.Writer
	Stderr io.Writer
}

// NewApp loads the configuration and applies flag overrides.
func NewApp(g Globals, options ...output.Option) (*App, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Assets != "" {
		cfg.Assets.Source = g.Assets
	}

	stdout, stderr := g.Stdout, g.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		Config: cfg,
		Logger: logging.New(stderr, logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON}),
		Output: output.New(stderr, options...),
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

// Orchestrator builds the generation pipeline from the configuration.
func (a *App) Orchestrator(pruning bool) (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(a.Logger),
		orchestrator.WithPruning(pruning && a.Config.Render.Prune),
		orchestrator.WithPruner(a.pruner()),
		orchestrator.WithDefaultRenderer(a.Config.Output.Format),
	}

	if a.Config.Assets.Source != "" {
		src, err := catalog.ParseSource(a.Config.Assets.Source)
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		loaderOptions := []catalog.LoaderOption{catalog.WithLogger(a.Logger)}
		if src.Kind() == catalog.SourceKindURL {
			loaderOptions = append(loaderOptions, catalog.WithHTTP(a.Config.Assets.Timeout))
		}
		options = append(options,
			orchestrator.WithSource(src),
			orchestrator.WithLoader(agentsgen.NewCatalogLoader(loaderOptions...)),
		)
	}
	return orchestrator.New(options...), nil
}

func (a *App) pruner() *prune.Pruner {
	if len(a.Config.Render.Exempt) == 0 {
		return prune.New()
	}
	return prune.New(prune.WithExempt(a.Config.Render.Exempt...))
}

// deliver writes the result to disk or stdout and optionally copies the main
// document. Clipboard failures only warn.
func (a *App) deliver(result orchestrator.Result, outDir string, toStdout, copyMain bool) error {
	if toStdout {
		if _, err := a.Stdout.Write(result.Primary.Content); err != nil {
			return err
		}
	} else {
		if outDir == "" {
			outDir = a.Config.Output.Dir
		}
		if _, err := a.Output.WriteFiles(outDir, result.Files()); err != nil {
			return err
		}
	}
	if copyMain || a.Config.Output.Copy {
		if err := a.Output.Copy(result.Primary.Markdown); err != nil {
			a.Logger.Warn().Err(err).Msg("clipboard copy failed")
		}
	}
	return nil
}

func (a *App) generate(ctx context.Context, gen *orchestrator.Orchestrator, state *model.State, format string) (orchestrator.Result, error) {
	return gen.Generate(ctx, orchestrator.Request{
		State:         state,
		Renderer:      format,
		RenderOptions: render.RenderOptions{Metadata: map[string]string{"generator": "agentsgen"}},
	})
}
