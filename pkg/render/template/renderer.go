package template

import (
	"io"
)

// TemplateRenderer is the engine contract presentational renderers rely on.
type TemplateRenderer interface {
	// RenderTemplate executes a named template from the engine's source.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and executes inline template content.
	RenderString(content string, data any, out ...io.Writer) (string, error)
}
