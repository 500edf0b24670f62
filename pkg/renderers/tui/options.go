package tui

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	rendertemplate "github.com/goliatone/go-agentsgen/pkg/render/template"
)

// PreviewFunc receives the document preview after each wizard step.
type PreviewFunc func(markdown string)

// Option configures the Prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the prompt driver used by the prompter.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints informational
// messages. Ignored when a custom driver is supplied.
func WithOutput(out io.Writer) Option {
	return func(p *Prompter) {
		if out != nil {
			p.out = out
		}
	}
}

// WithCatalog sets the lookup tables offered by RunForm.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(p *Prompter) {
		if cat != nil {
			p.catalog = cat
		}
	}
}

// WithTemplateRenderer injects the engine used for the review summary.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(p *Prompter) {
		if renderer != nil {
			p.templates = renderer
		}
	}
}

// WithStyles replaces the header styles.
func WithStyles(styles Styles) Option {
	return func(p *Prompter) {
		p.styles = styles
	}
}

// WithPreview registers a callback that receives the live preview.
func WithPreview(fn PreviewFunc) Option {
	return func(p *Prompter) {
		p.preview = fn
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Prompter) {
		p.logger = logger
	}
}
