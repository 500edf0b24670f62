// Package catalog holds the static assets the generator renders from: the base
// AGENTS.md template, one lookup table per category and the sub-assistant
// templates. A default catalog is embedded; Loader implementations can read an
// alternate bundle from a directory, an fs.FS or an HTTP base URL, and
// LoadOrDefault falls back to the embedded bundle when that fails so the
// render pipeline never observes a loading error.
package catalog
