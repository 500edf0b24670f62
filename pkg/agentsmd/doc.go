// Package agentsmd renders the AGENTS.md document and its sub-assistant
// companions from a model.State and a catalog.Catalog.
//
// Rendering is literal placeholder substitution over an immutable template:
// each known token is replaced at most once, in a fixed order, and unknown
// tokens are left in place. Section pruning is a separate pass (see
// pkg/prune).
package agentsmd
