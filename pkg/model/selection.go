package model

// Selection is a set of lookup keys. Keys iterate in the order they were first
// added so repeated renders stay byte-identical.
type Selection struct {
	keys  []string
	index map[string]struct{}
}

// NewSelection seeds a selection, dropping duplicates and empty keys.
func NewSelection(keys ...string) *Selection {
	s := &Selection{}
	for _, key := range keys {
		s.Add(key)
	}
	return s
}

// Add inserts key and reports whether it was newly added.
func (s *Selection) Add(key string) bool {
	if key == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.keys = append(s.keys, key)
	return true
}

// Remove deletes key and reports whether it was present.
func (s *Selection) Remove(key string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.index[key]; !ok {
		return false
	}
	delete(s.index, key)
	for i, existing := range s.keys {
		if existing == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether key is selected.
func (s *Selection) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[key]
	return ok
}

// Keys returns a copy of the selected keys.
func (s *Selection) Keys() []string {
	if s == nil || len(s.keys) == 0 {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Len returns the number of selected keys.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

func (s *Selection) clone() *Selection {
	return NewSelection(s.Keys()...)
}
