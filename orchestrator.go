package agentsgen

import (
	"context"

	"github.com/goliatone/go-agentsgen/pkg/answers"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
	"github.com/goliatone/go-agentsgen/pkg/render"
)

// RenderOptions aliases render.RenderOptions for callers configuring output
// formats from the top-level module.
type RenderOptions = render.RenderOptions

// Result aliases the generated document set.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders state in the named output format ("markdown" when empty).
func Generate(ctx context.Context, state *model.State, format string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		State:    state,
		Renderer: format,
	})
}

// GenerateFromFile loads an answers file (YAML or JSON) and renders it.
func GenerateFromFile(ctx context.Context, path, format string, options ...orchestrator.Option) (Result, error) {
	state, err := answers.LoadState(path)
	if err != nil {
		return Result{}, err
	}
	return Generate(ctx, state, format, options...)
}
