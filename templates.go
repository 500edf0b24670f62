package agentsgen

import (
	"io/fs"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/renderers/html"
)

// EmbeddedAssets exposes the built-in asset bundle (base template, lookup
// tables, sub-agent templates) so callers can copy it as a starting point.
func EmbeddedAssets() fs.FS {
	return catalog.EmbeddedFS()
}

// EmbeddedTemplates exposes the HTML preview page templates.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
