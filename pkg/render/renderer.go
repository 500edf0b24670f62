package render

import (
	"context"
)

// Document is a rendered, pruned Markdown document ready for delivery.
type Document struct {
	// Name is the human readable title ("AGENTS.md", "Testing Specialist").
	Name string `json:"name"`
	// Filename is the download name including the .md extension.
	Filename string `json:"filename"`
	// Markdown is the document body.
	Markdown string `json:"markdown"`
}

// Renderer converts a Document into a deliverable byte representation
// (Markdown, an HTML preview page, ...).
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is appended to the document base name when writing files.
	Extension() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
