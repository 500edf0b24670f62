// Package template defines the template engine seam used by presentational
// renderers (HTML preview page, terminal review summary).
package template
