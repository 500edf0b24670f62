package agentsmd

import (
	"time"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock injects the time source used for {{CURRENT_DATE}}.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithCatalog sets the assets used when Render is called with a nil catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(r *Renderer) {
		if cat != nil {
			r.catalog = cat
		}
	}
}

// Renderer turns a state into Markdown. It holds no per-render state and is
// safe to reuse.
type Renderer struct {
	now     func() time.Time
	catalog *catalog.Catalog
}

// New constructs a Renderer. Without options it uses time.Now and the embedded
// catalog.
func New(options ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = catalog.Default()
	}
	return r
}

// Render renders the base template of cat (or the renderer's catalog when cat
// is nil) against state.
func (r *Renderer) Render(state *model.State, cat *catalog.Catalog) string {
	cat = r.resolve(cat)
	return Substitute(cat.Base, r.Replacements(state, cat)...)
}

// Replacements computes every base template value in substitution order.
func (r *Renderer) Replacements(state *model.State, cat *catalog.Catalog) []Replacement {
	if state == nil {
		state = model.NewState()
	}
	cat = r.resolve(cat)
	project := state.Project

	return []Replacement{
		{PlaceholderProjectName, orDefault(project.Name, DefaultProjectName)},
		{PlaceholderProjectDescription, orDefault(project.Description, DefaultDescription)},
		{PlaceholderProjectStructure, orDefault(project.Structure, DefaultStructure)},
		{PlaceholderTechStack, sectionBody(state, model.SectionTech, func() string { return techStackBody(state, cat) })},
		{PlaceholderBestPractices, sectionBody(state, model.SectionPractices, func() string { return practicesBody(state, cat) })},
		{PlaceholderStyleGuide, sectionBody(state, model.SectionStyle, func() string { return styleBody(state, cat) })},
		{PlaceholderTesting, sectionBody(state, model.SectionTesting, func() string { return testingBody(state, cat) })},
		{PlaceholderKeyCommands, orDefault(project.Commands, DefaultCommands)},
		{PlaceholderWorkflows, sectionBody(state, model.SectionWorkflows, func() string { return orDefault(project.Workflows, DefaultWorkflows) })},
		{PlaceholderStopConditions, orDefault(project.StopConditions, DefaultStopConditions)},
		{PlaceholderCurrentDate, r.now().Format(DateLayout)},
	}
}

// RenderAgent renders the sub-assistant document registered for agentType.
// Unknown types return "" and false.
func (r *Renderer) RenderAgent(state *model.State, cat *catalog.Catalog, agentType string) (string, bool) {
	cat = r.resolve(cat)
	tpl, ok := cat.Agent(agentType)
	if !ok {
		return "", false
	}
	if state == nil {
		state = model.NewState()
	}
	return Substitute(tpl.Template,
		Replacement{PlaceholderProjectName, orDefault(state.Project.Name, DefaultProjectName)},
		Replacement{PlaceholderProjectDescription, orDefault(state.Project.Description, DefaultDescription)},
		Replacement{PlaceholderTechContext, TechContext(state)},
	), true
}

func (r *Renderer) resolve(cat *catalog.Catalog) *catalog.Catalog {
	if cat != nil {
		return cat
	}
	return r.catalog
}

// Render is a convenience wrapper around New(options...).Render.
func Render(state *model.State, cat *catalog.Catalog, options ...Option) string {
	return New(append([]Option{WithCatalog(cat)}, options...)...).Render(state, cat)
}

// RenderAgent is a convenience wrapper around New(options...).RenderAgent.
func RenderAgent(state *model.State, cat *catalog.Catalog, agentType string, options ...Option) (string, bool) {
	return New(append([]Option{WithCatalog(cat)}, options...)...).RenderAgent(state, cat, agentType)
}

func sectionBody(state *model.State, section model.Section, build func() string) string {
	if !state.Enabled(section) {
		return ""
	}
	return build()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
