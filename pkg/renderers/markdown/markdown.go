// Package markdown emits documents verbatim as Markdown files.
package markdown

import (
	"context"
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/render"
)

// Name is the registry key of this renderer.
const Name = "markdown"

// Renderer writes the Markdown body with a single trailing newline.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".md"
}

func (r *Renderer) Render(ctx context.Context, doc render.Document, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body := strings.TrimRight(doc.Markdown, "\n")
	return []byte(body + "\n"), nil
}
