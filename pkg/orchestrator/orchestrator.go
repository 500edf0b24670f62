package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-agentsgen/internal/catalog/loader"
	"github.com/goliatone/go-agentsgen/pkg/agentsmd"
	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/prune"
	"github.com/goliatone/go-agentsgen/pkg/render"
	"github.com/goliatone/go-agentsgen/pkg/renderers/html"
	"github.com/goliatone/go-agentsgen/pkg/renderers/markdown"
)

const (
	defaultRendererName = markdown.Name

	// PrimaryName is the base name of the main document.
	PrimaryName = "AGENTS"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom catalog loader.
func WithLoader(loader catalog.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithSource points the loader at an external asset bundle. Loading failures
// fall back to the embedded catalog.
func WithSource(src catalog.Source) Option {
	return func(o *Orchestrator) {
		o.source = src
	}
}

// WithCatalog bypasses loading and uses cat as is.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = cat
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the output format used when a request omits
// an explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithPruner replaces the section pruner.
func WithPruner(pruner *prune.Pruner) Option {
	return func(o *Orchestrator) {
		if pruner != nil {
			o.pruner = pruner
		}
	}
}

// WithPruning toggles section pruning of the main document. Enabled by
// default.
func WithPruning(enabled bool) Option {
	return func(o *Orchestrator) {
		o.pruneEnabled = enabled
	}
}

// WithClock injects the time source used for the generation date.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger attaches a logger for fallback and skip warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from form state to rendered files.
// The catalog is resolved once, on first use.
type Orchestrator struct {
	loader          catalog.Loader
	source          catalog.Source
	registry        *render.Registry
	defaultRenderer string
	pruner          *prune.Pruner
	pruneEnabled    bool
	now             func() time.Time
	logger          zerolog.Logger
	initialiseErr   error

	catalogOnce sync.Once
	catalog     *catalog.Catalog
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		pruneEnabled:    true,
		now:             time.Now,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run.
type Request struct {
	// State holds the answers. Required.
	State *model.State

	// Renderer names the output format. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions is forwarded to the output renderer.
	RenderOptions render.RenderOptions
}

// File is one generated document.
type File struct {
	Name        string
	ContentType string
	Markdown    string
	Content     []byte
}

// Result carries the main document and one document per selected
// sub-assistant type.
type Result struct {
	Primary File
	Agents  []File
}

// Files lists the primary document followed by the sub-assistant documents.
func (r Result) Files() []File {
	return append([]File{r.Primary}, r.Agents...)
}

// Generate renders the main document and the selected sub-assistant
// documents in the requested output format.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if req.State == nil {
		return Result{}, errors.New("orchestrator: state is required")
	}

	output, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	cat := o.Catalog(ctx)
	engine := agentsmd.New(agentsmd.WithCatalog(cat), agentsmd.WithClock(o.now))

	primary, err := o.format(ctx, output, PrimaryName+".md", o.finish(engine.Render(req.State, cat)), req.RenderOptions)
	if err != nil {
		return Result{}, err
	}
	result := Result{Primary: primary}

	for _, agentType := range req.State.Selected(model.CategoryAgents) {
		body, ok := engine.RenderAgent(req.State, cat, agentType)
		if !ok {
			o.logger.Warn().Str("agent", agentType).Msg("unknown sub-agent type skipped")
			continue
		}
		tpl, _ := cat.Agent(agentType)
		file, err := o.format(ctx, output, tpl.FileName(agentType), body, req.RenderOptions)
		if err != nil {
			return Result{}, err
		}
		result.Agents = append(result.Agents, file)
	}

	return result, nil
}

// Markdown renders the main document without an output format. Previews use
// it on every change.
func (o *Orchestrator) Markdown(ctx context.Context, state *model.State) string {
	cat := o.Catalog(ctx)
	engine := agentsmd.New(agentsmd.WithCatalog(cat), agentsmd.WithClock(o.now))
	return o.finish(engine.Render(state, cat))
}

// Catalog returns the asset catalog, loading it on first use.
func (o *Orchestrator) Catalog(ctx context.Context) *catalog.Catalog {
	o.catalogOnce.Do(func() {
		if o.catalog != nil {
			return
		}
		o.catalog = catalog.LoadOrDefault(ctx, o.loader, o.source, o.logger)
		o.logger.Debug().Str("source", o.catalog.Source).Msg("catalog ready")
	})
	return o.catalog
}

// Registry exposes the output format registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) finish(text string) string {
	if !o.pruneEnabled {
		return text
	}
	return o.pruner.Prune(text)
}

func (o *Orchestrator) format(ctx context.Context, output render.Renderer, filename, body string, options render.RenderOptions) (File, error) {
	name := strings.TrimSuffix(filename, ".md") + output.Extension()
	content, err := output.Render(ctx, render.Document{
		Name:     filename,
		Filename: name,
		Markdown: body,
	}, options)
	if err != nil {
		return File{}, fmt.Errorf("orchestrator: render %s: %w", name, err)
	}
	return File{
		Name:        name,
		ContentType: output.ContentType(),
		Markdown:    body,
		Content:     content,
	}, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(catalog.NewLoaderOptions())
	}
	if o.pruner == nil {
		o.pruner = prune.New()
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(markdown.New())
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
