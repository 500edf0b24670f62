package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the document.
type RenderOptions struct {
	// Title overrides the page title used by presentational renderers.
	Title string
	// Metadata is exposed to templates as-is (generator version, source).
	Metadata map[string]string
}
