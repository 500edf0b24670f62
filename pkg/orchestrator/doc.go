// Package orchestrator wires the catalog → render → prune → output format
// pipeline behind a single Generate call, applying the embedded defaults
// unless callers inject their own loader, catalog or renderer registry.
package orchestrator
