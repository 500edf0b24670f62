// Package model defines the in-memory state the generator renders from: free
// text project fields, per-category key selections, per-key version and role
// overrides, user-added custom entries and section toggles. State is created
// empty, mutated only through Apply with the Event values declared in
// events.go, and handed by pointer to the pure rendering functions in
// pkg/agentsmd. Nothing in this package persists; callers that want to start
// from a file build the event list with pkg/answers.
package model
