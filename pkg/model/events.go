package model

import "strings"

// Event is a single user interaction against the state store. Every mutation
// goes through Apply so UI layers stay decoupled from the rendering engine.
type Event interface {
	apply(s *State) bool
}

// Apply dispatches events in order and reports whether any of them changed the
// state. Nil events are ignored.
func (s *State) Apply(events ...Event) bool {
	if s == nil {
		return false
	}
	changed := false
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if ev.apply(s) {
			changed = true
		}
	}
	return changed
}

// SetField writes a free-text field.
type SetField struct {
	Field Field
	Value string
}

func (e SetField) apply(s *State) bool {
	return s.Project.Set(e.Field, e.Value)
}

// ToggleKey checks or unchecks a lookup key.
type ToggleKey struct {
	Category Category
	Key      string
	Selected bool
}

func (e ToggleKey) apply(s *State) bool {
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return false
	}
	if e.Selected {
		return s.selection(e.Category).Add(key)
	}
	return s.selections[e.Category].Remove(key)
}

// SetSelection replaces the whole selection of a category. The wizard uses it
// so re-persisting a step is idempotent.
type SetSelection struct {
	Category Category
	Keys     []string
}

func (e SetSelection) apply(s *State) bool {
	next := NewSelection()
	for _, key := range e.Keys {
		next.Add(strings.TrimSpace(key))
	}
	current := s.selections[e.Category]
	if equalKeys(current.Keys(), next.Keys()) {
		return false
	}
	s.selections[e.Category] = next
	return true
}

// SetVersion records the version override for a key. An empty version clears
// it.
type SetVersion struct {
	Key     string
	Version string
}

func (e SetVersion) apply(s *State) bool {
	current := s.overrides[e.Key]
	if current.Version == e.Version {
		return false
	}
	current.Version = e.Version
	s.storeOverride(e.Key, current)
	return true
}

// SetRole records the role description override for a key. An empty role
// clears it.
type SetRole struct {
	Key  string
	Role string
}

func (e SetRole) apply(s *State) bool {
	current := s.overrides[e.Key]
	if current.Role == e.Role {
		return false
	}
	current.Role = e.Role
	s.storeOverride(e.Key, current)
	return true
}

// AddCustom appends a custom entry. Entries with a blank trimmed name and
// categories without custom support are silently ignored.
type AddCustom struct {
	Category Category
	Entry    CustomEntry
}

func (e AddCustom) apply(s *State) bool {
	if !e.Category.SupportsCustom() {
		return false
	}
	entry, ok := NewCustomEntry(e.Entry.Name, e.Entry.Version, e.Entry.Description)
	if !ok {
		return false
	}
	s.custom[e.Category] = append(s.custom[e.Category], entry)
	return true
}

// RemoveCustom deletes the custom entry at Index.
type RemoveCustom struct {
	Category Category
	Index    int
}

func (e RemoveCustom) apply(s *State) bool {
	entries := s.custom[e.Category]
	if e.Index < 0 || e.Index >= len(entries) {
		return false
	}
	s.custom[e.Category] = append(entries[:e.Index:e.Index], entries[e.Index+1:]...)
	if len(s.custom[e.Category]) == 0 {
		delete(s.custom, e.Category)
	}
	return true
}

// ReplaceCustom swaps the whole custom list of a category, dropping entries
// with blank names.
type ReplaceCustom struct {
	Category Category
	Entries  []CustomEntry
}

func (e ReplaceCustom) apply(s *State) bool {
	if !e.Category.SupportsCustom() {
		return false
	}
	var next []CustomEntry
	for _, raw := range e.Entries {
		if entry, ok := NewCustomEntry(raw.Name, raw.Version, raw.Description); ok {
			next = append(next, entry)
		}
	}
	if equalEntries(s.custom[e.Category], next) {
		return false
	}
	if len(next) == 0 {
		delete(s.custom, e.Category)
	} else {
		s.custom[e.Category] = next
	}
	return true
}

// ToggleSection enables or disables a document section.
type ToggleSection struct {
	Section Section
	Enabled bool
}

func (e ToggleSection) apply(s *State) bool {
	if s.Enabled(e.Section) == e.Enabled {
		return false
	}
	if e.Enabled {
		delete(s.disabled, e.Section)
	} else {
		s.disabled[e.Section] = true
	}
	return true
}

func (s *State) storeOverride(key string, value Override) {
	if value.IsZero() {
		delete(s.overrides, key)
		return
	}
	s.overrides[key] = value
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalEntries(a, b []CustomEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
