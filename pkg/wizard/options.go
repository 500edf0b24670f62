package wizard

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-agentsgen/pkg/agentsmd"
	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/prune"
)

// Previewer renders the document shown next to the current step.
type Previewer func(state *model.State) string

// Option configures a Controller.
type Option func(*Controller)

// WithSteps replaces the default step sequence. Empty sequences are ignored.
func WithSteps(steps []Step) Option {
	return func(c *Controller) {
		if len(steps) > 0 {
			c.steps = append([]Step(nil), steps...)
		}
	}
}

// WithState seeds the controller with an existing state.
func WithState(state *model.State) Option {
	return func(c *Controller) {
		if state != nil {
			c.state = state
		}
	}
}

// WithPreviewer overrides how previews are produced.
func WithPreviewer(fn Previewer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.previewer = fn
		}
	}
}

// WithLogger attaches a logger for navigation traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// DocumentPreviewer renders and prunes the AGENTS.md document with the given
// renderer and catalog.
func DocumentPreviewer(renderer *agentsmd.Renderer, cat *catalog.Catalog, pruner *prune.Pruner) Previewer {
	if renderer == nil {
		renderer = agentsmd.New(agentsmd.WithCatalog(cat))
	}
	if pruner == nil {
		pruner = prune.New()
	}
	return func(state *model.State) string {
		return pruner.Prune(renderer.Render(state, cat))
	}
}
