// Package answers decodes answers files (YAML or JSON) into state events so
// the generator can run without an interactive front end.
package answers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

// ErrEmpty is returned when an answers payload has no content.
var ErrEmpty = errors.New("answers: document is empty")

// Document mirrors the answers file layout:
//
//	project:    free-text fields
//	selections: category -> keys
//	overrides:  key -> {version, role}
//	custom:     category -> [{name, version, description}]
//	sections:   section -> enabled
type Document struct {
	Project    model.ProjectConfig            `json:"project" yaml:"project"`
	Selections map[string][]string            `json:"selections,omitempty" yaml:"selections,omitempty"`
	Overrides  map[string]model.Override      `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Custom     map[string][]model.CustomEntry `json:"custom,omitempty" yaml:"custom,omitempty"`
	Sections   map[string]bool                `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Parse decodes JSON first and falls back to YAML.
func Parse(data []byte) (Document, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Document{}, ErrEmpty
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("answers: invalid JSON or YAML: %w", err)
	}
	return doc, nil
}

// ParseFile reads and parses the answers file at path.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("answers: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}

// Events translates the document into state events. Categories and sections
// are emitted in display order and overrides sorted by key so the resulting
// state does not depend on map iteration.
func (d Document) Events() ([]model.Event, error) {
	var events []model.Event

	for _, field := range []model.Field{
		model.FieldName,
		model.FieldDescription,
		model.FieldStructure,
		model.FieldCommands,
		model.FieldWorkflows,
		model.FieldStopConditions,
		model.FieldPracticeNotes,
		model.FieldTestingNotes,
	} {
		if value := d.Project.Get(field); value != "" {
			events = append(events, model.SetField{Field: field, Value: value})
		}
	}

	selections, err := byCategory(d.Selections)
	if err != nil {
		return nil, err
	}
	custom, err := byCategory(d.Custom)
	if err != nil {
		return nil, err
	}
	for _, category := range model.Categories() {
		if keys, ok := selections[category]; ok {
			events = append(events, model.SetSelection{Category: category, Keys: keys})
		}
		if entries, ok := custom[category]; ok {
			if !category.SupportsCustom() {
				return nil, fmt.Errorf("answers: category %q does not accept custom entries", category)
			}
			events = append(events, model.ReplaceCustom{Category: category, Entries: entries})
		}
	}

	keys := make([]string, 0, len(d.Overrides))
	for key := range d.Overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		override := d.Overrides[key]
		events = append(events,
			model.SetVersion{Key: key, Version: strings.TrimSpace(override.Version)},
			model.SetRole{Key: key, Role: strings.TrimSpace(override.Role)},
		)
	}

	toggles := make(map[model.Section]bool, len(d.Sections))
	for name, enabled := range d.Sections {
		section, ok := model.ParseSection(name)
		if !ok {
			return nil, fmt.Errorf("answers: unknown section %q", name)
		}
		toggles[section] = enabled
	}
	for _, section := range model.Sections() {
		if enabled, ok := toggles[section]; ok {
			events = append(events, model.ToggleSection{Section: section, Enabled: enabled})
		}
	}

	return events, nil
}

// State builds a fresh state from the document.
func (d Document) State() (*model.State, error) {
	events, err := d.Events()
	if err != nil {
		return nil, err
	}
	state := model.NewState()
	state.Apply(events...)
	return state, nil
}

// LoadState is shorthand for ParseFile followed by State.
func LoadState(path string) (*model.State, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return doc.State()
}

func byCategory[T any](raw map[string][]T) (map[model.Category][]T, error) {
	out := make(map[model.Category][]T, len(raw))
	for name, values := range raw {
		category, ok := model.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("answers: unknown category %q", name)
		}
		if _, dup := out[category]; dup {
			return nil, fmt.Errorf("answers: category %q listed more than once", category)
		}
		out[category] = values
	}
	return out, nil
}
