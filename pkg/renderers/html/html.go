// Package html renders documents as a standalone HTML preview page. The
// Markdown body is escaped into a <pre><code> block and sanitised before it is
// placed into the page chrome.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-agentsgen/pkg/render"
	rendertemplate "github.com/goliatone/go-agentsgen/pkg/render/template"
	"github.com/goliatone/go-agentsgen/pkg/render/template/gotemplate"
)

// Name is the registry key of this renderer.
const Name = "html"

const (
	pageTemplate     = "page"
	documentTemplate = "document"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the HTML preview page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".html"
}

func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	fragment, err := r.templates.RenderTemplate(documentTemplate, map[string]any{
		"content": doc.Markdown,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render document: %w", err)
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = doc.Name
	}

	page, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":     title,
		"filename":  doc.Filename,
		"generator": options.Metadata["generator"],
		"body":      Sanitize(fragment),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render page: %w", err)
	}
	return []byte(page), nil
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Sanitize strips everything but the preview markup from fragment.
func Sanitize(fragment string) string {
	return strings.TrimSpace(previewPolicy().Sanitize(fragment))
}

func previewPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("pre", "code")
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("pre", "code")
		policy = p
	})
	return policy
}
