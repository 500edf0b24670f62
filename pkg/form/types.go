// Package form describes the input fragments shown by interactive front ends
// and the plain values they collect.
package form

import "strings"

// FieldType is the simplified enum for prompt-friendly field kinds.
type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeText        FieldType = "text"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeBoolean     FieldType = "boolean"
	// FieldTypeRows collects a repeated group of string columns.
	FieldTypeRows FieldType = "rows"
)

// Option is a selectable choice of a multiselect field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field models an individual input inside a fragment.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Label       string    `json:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Description string    `json:"description,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	// Columns lists the per-row inputs of a FieldTypeRows field.
	Columns []Field `json:"columns,omitempty"`
}

// Example is a worked sample shown next to a fragment.
type Example struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Form is one fragment of inputs.
type Form struct {
	ID       string    `json:"id"`
	Fields   []Field   `json:"fields,omitempty"`
	Examples []Example `json:"examples,omitempty"`
}

// Field returns the field called name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Missing lists the required fields whose value is blank. Only presence is
// checked.
func (f Form) Missing(values Values) []string {
	var out []string
	for _, field := range f.Fields {
		if !field.Required {
			continue
		}
		if isBlank(values[field.Name]) {
			out = append(out, field.Name)
		}
	}
	return out
}

// OptionLabel returns the label registered for value, or value itself.
func (f Field) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			if opt.Label != "" {
				return opt.Label
			}
			break
		}
	}
	return value
}

// Title returns the label, falling back to the field name.
func (f Field) Title() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return f.Name
}
