package model

// State is the form state store. The zero value is not usable; construct it
// with NewState. State is not safe for concurrent mutation; a single UI loop
// owns it.
type State struct {
	Project ProjectConfig

	selections map[Category]*Selection
	overrides  map[string]Override
	custom     map[Category][]CustomEntry
	disabled   map[Section]bool
}

// NewState returns an empty state with every section enabled.
func NewState() *State {
	return &State{
		selections: make(map[Category]*Selection),
		overrides:  make(map[string]Override),
		custom:     make(map[Category][]CustomEntry),
		disabled:   make(map[Section]bool),
	}
}

// Selected returns the keys selected for category.
func (s *State) Selected(category Category) []string {
	if s == nil {
		return nil
	}
	return s.selections[category].Keys()
}

// IsSelected reports whether key is selected for category.
func (s *State) IsSelected(category Category, key string) bool {
	if s == nil {
		return false
	}
	return s.selections[category].Has(key)
}

// Override returns the override registered for key.
func (s *State) Override(key string) Override {
	if s == nil {
		return Override{}
	}
	return s.overrides[key]
}

// Custom returns a copy of the custom entries for category.
func (s *State) Custom(category Category) []CustomEntry {
	if s == nil || len(s.custom[category]) == 0 {
		return nil
	}
	return append([]CustomEntry(nil), s.custom[category]...)
}

// Enabled reports whether section renders. Sections default to enabled.
func (s *State) Enabled(section Section) bool {
	if s == nil {
		return true
	}
	return !s.disabled[section]
}

// Clone returns a deep copy that shares nothing with s.
func (s *State) Clone() *State {
	out := NewState()
	if s == nil {
		return out
	}
	out.Project = s.Project
	for category, selection := range s.selections {
		out.selections[category] = selection.clone()
	}
	for key, override := range s.overrides {
		out.overrides[key] = override
	}
	for category, entries := range s.custom {
		out.custom[category] = append([]CustomEntry(nil), entries...)
	}
	for section, off := range s.disabled {
		out.disabled[section] = off
	}
	return out
}

func (s *State) selection(category Category) *Selection {
	sel, ok := s.selections[category]
	if !ok {
		sel = NewSelection()
		s.selections[category] = sel
	}
	return sel
}
