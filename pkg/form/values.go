package form

import "strings"

// Row is one entry of a repeated group keyed by column name.
type Row map[string]string

// Values holds the raw inputs of a fragment keyed by field name. Supported
// value types are string, bool, []string and []Row.
type Values map[string]any

// String returns the string stored under name.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the boolean stored under name.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Strings returns a copy of the list stored under name.
func (v Values) Strings(name string) []string {
	switch typed := v[name].(type) {
	case []string:
		return append([]string(nil), typed...)
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Rows returns a copy of the repeated group stored under name.
func (v Values) Rows(name string) []Row {
	rows, _ := v[name].([]Row)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.clone())
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Set stores value under name and returns v for chaining. A nil receiver is
// not allowed.
func (v Values) Set(name string, value any) Values {
	v[name] = deepCopy(value)
	return v
}

// Clone returns a deep copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, value := range v {
		out[k] = deepCopy(value)
	}
	return out
}

// HasData reports whether any value carries content: a non-blank string, a
// non-empty list, or true.
func (v Values) HasData() bool {
	for _, value := range v {
		if !isBlank(value) {
			return true
		}
	}
	return false
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, value := range r {
		out[k] = value
	}
	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case []string:
		return append([]string(nil), typed...)
	case []Row:
		clone := make([]Row, len(typed))
		for i, row := range typed {
			clone[i] = row.clone()
		}
		return clone
	case Row:
		return typed.clone()
	case []any:
		clone := make([]any, len(typed))
		for i, item := range typed {
			clone[i] = deepCopy(item)
		}
		return clone
	default:
		return typed
	}
}

func isBlank(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case bool:
		return !typed
	case []string:
		return len(typed) == 0
	case []Row:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	}
	return false
}
