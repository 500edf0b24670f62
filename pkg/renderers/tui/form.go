package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

var categoryLabels = map[model.Category]string{
	model.CategoryTech:      "Tech Stack",
	model.CategoryFrontend:  "Frontend",
	model.CategoryTesting:   "Testing",
	model.CategoryPractices: "Best Practices",
	model.CategoryStyle:     "Linters & Style",
	model.CategoryAgents:    "Sub-agents",
}

var sectionLabels = map[model.Section]string{
	model.SectionTech:      "Tech Stack",
	model.SectionTesting:   "Testing",
	model.SectionPractices: "Best Practices",
	model.SectionStyle:     "Style Guide",
	model.SectionWorkflows: "Workflows",
}

type projectPrompt struct {
	field     model.Field
	label     string
	multiline bool
}

var projectPrompts = []projectPrompt{
	{model.FieldName, "Project Name", false},
	{model.FieldDescription, "Project Description", true},
	{model.FieldStructure, "Project Structure", true},
	{model.FieldCommands, "Key Commands", true},
	{model.FieldWorkflows, "Workflows", true},
	{model.FieldStopConditions, "Stop Conditions", true},
}

// RunForm asks every question of the single-pass form and applies the
// answers to state: free text fields, category selections with optional
// version and role overrides, custom entries and section toggles. Empty
// answers are allowed; the renderer fills in defaults.
func (p *Prompter) RunForm(ctx context.Context, state *model.State) error {
	if state == nil {
		return ErrNilState
	}

	for _, prompt := range projectPrompts {
		value, err := p.askText(ctx, prompt.label, state.Project.Get(prompt.field), prompt.multiline)
		if err != nil {
			return err
		}
		state.Apply(model.SetField{Field: prompt.field, Value: value})
	}

	for _, category := range model.Categories() {
		if err := p.promptCategory(ctx, state, category); err != nil {
			return err
		}
	}

	return p.promptSections(ctx, state)
}

func (p *Prompter) askText(ctx context.Context, label, current string, multiline bool) (string, error) {
	if multiline {
		return p.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current})
	}
	return p.driver.Input(ctx, InputConfig{Message: label, Default: current})
}

func (p *Prompter) promptCategory(ctx context.Context, state *model.State, category model.Category) error {
	label := categoryLabels[category]
	keys := p.catalog.Keys(category)

	if len(keys) > 0 {
		options := make([]string, len(keys))
		var defaults []int
		for i, key := range keys {
			options[i] = p.optionLabel(category, key)
			if state.IsSelected(category, key) {
				defaults = append(defaults, i)
			}
		}
		indices, err := p.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  options,
			Defaults: defaults,
			PageSize: 12,
		})
		if err != nil {
			return err
		}
		selected := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(keys) {
				selected = append(selected, keys[idx])
			}
		}
		state.Apply(model.SetSelection{Category: category, Keys: selected})
	}

	if !category.SupportsCustom() {
		return nil
	}
	if err := p.promptOverrides(ctx, state, category, label); err != nil {
		return err
	}
	return p.promptCustom(ctx, state, category, label)
}

func (p *Prompter) optionLabel(category model.Category, key string) string {
	if category == model.CategoryAgents {
		if agent, ok := p.catalog.Agent(key); ok && agent.Name != "" {
			return agent.Name
		}
		return key
	}
	return p.catalog.Table(category).Resolve(key).Name
}

func (p *Prompter) promptOverrides(ctx context.Context, state *model.State, category model.Category, label string) error {
	selected := state.Selected(category)
	if len(selected) == 0 {
		return nil
	}
	customize, err := p.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Set versions or roles for %s?", label),
	})
	if err != nil || !customize {
		return err
	}

	table := p.catalog.Table(category)
	for _, key := range selected {
		name := table.Resolve(key).Name
		current := state.Override(key)
		version, err := p.driver.Input(ctx, InputConfig{Message: name + " version", Default: current.Version})
		if err != nil {
			return err
		}
		role, err := p.driver.Input(ctx, InputConfig{
			Message: name + " role",
			Default: current.Role,
			Help:    "Replaces the default description",
		})
		if err != nil {
			return err
		}
		state.Apply(model.SetVersion{Key: key, Version: version}, model.SetRole{Key: key, Role: role})
	}
	return nil
}

func (p *Prompter) promptCustom(ctx context.Context, state *model.State, category model.Category, label string) error {
	for {
		add, err := p.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Add a custom %s entry?", label)})
		if err != nil {
			return err
		}
		if !add {
			return nil
		}

		name, err := p.driver.Input(ctx, InputConfig{Message: "Name"})
		if err != nil {
			return err
		}
		var version string
		if category != model.CategoryStyle {
			if version, err = p.driver.Input(ctx, InputConfig{Message: "Version"}); err != nil {
				return err
			}
		}
		description, err := p.driver.Input(ctx, InputConfig{Message: "Description"})
		if err != nil {
			return err
		}

		// Blank names are ignored by the state store.
		state.Apply(model.AddCustom{Category: category, Entry: model.CustomEntry{
			Name:        name,
			Version:     version,
			Description: description,
		}})
	}
}

func (p *Prompter) promptSections(ctx context.Context, state *model.State) error {
	sections := model.Sections()
	options := make([]string, len(sections))
	var defaults []int
	for i, section := range sections {
		options[i] = sectionLabels[section]
		if state.Enabled(section) {
			defaults = append(defaults, i)
		}
	}

	indices, err := p.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Sections to include",
		Options:  options,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	enabled := make(map[int]bool, len(indices))
	for _, idx := range indices {
		enabled[idx] = true
	}
	for i, section := range sections {
		state.Apply(model.ToggleSection{Section: section, Enabled: enabled[i]})
	}
	return nil
}
