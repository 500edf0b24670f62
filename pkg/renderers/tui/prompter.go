// Package tui collects generator answers in the terminal. A Prompter fills
// form fragments through a PromptDriver, runs the step-by-step wizard and the
// single-pass form, and writes every answer into a model.State.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/form"
	rendertemplate "github.com/goliatone/go-agentsgen/pkg/render/template"
	"github.com/goliatone/go-agentsgen/pkg/render/template/gotemplate"
)

// Prompter drives interactive sessions.
type Prompter struct {
	driver    PromptDriver
	out       io.Writer
	catalog   *catalog.Catalog
	templates rendertemplate.TemplateRenderer
	styles    Styles
	preview   PreviewFunc
	logger    zerolog.Logger
}

// New constructs a Prompter with defaults (survey driver, embedded catalog).
func New(options ...Option) (*Prompter, error) {
	p := &Prompter{
		out:    os.Stderr,
		styles: DefaultStyles(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	if p.driver == nil {
		p.driver = NewSurveyDriver(p.out)
	}
	if p.catalog == nil {
		p.catalog = catalog.Default()
	}
	if p.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("tui: configure template renderer: %w", err)
		}
		p.templates = engine
	}
	return p, nil
}

// FillForm prompts every field of f, seeding defaults from seed. Required
// fields are asked again until they hold a value.
func (p *Prompter) FillForm(ctx context.Context, f form.Form, seed form.Values) (form.Values, error) {
	values := seed.Clone()
	for _, field := range f.Fields {
		if err := p.promptField(ctx, field, values); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (p *Prompter) promptField(ctx context.Context, field form.Field, values form.Values) error {
	switch field.Type {
	case form.FieldTypeBoolean:
		resp, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: field.Title(),
			Default: values.Bool(field.Name),
			Help:    fieldHelp(field),
		})
		if err != nil {
			return err
		}
		values.Set(field.Name, resp)
		return nil
	case form.FieldTypeMultiSelect:
		return p.promptMultiSelect(ctx, field, values)
	case form.FieldTypeRows:
		return p.promptRows(ctx, field, values)
	default:
		return p.promptText(ctx, field, values)
	}
}

func (p *Prompter) promptText(ctx context.Context, field form.Field, values form.Values) error {
	label := field.Title()
	help := fieldHelp(field)
	defaultVal := values.String(field.Name)

	for {
		var (
			response string
			err      error
		)
		if field.Type == form.FieldTypeText {
			response, err = p.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: defaultVal, Help: help})
		} else {
			response, err = p.driver.Input(ctx, InputConfig{Message: label, Default: defaultVal, Help: help})
		}
		if err != nil {
			return err
		}
		if field.Required && strings.TrimSpace(response) == "" {
			if err := p.driver.Info(ctx, fmt.Sprintf("%s is required", label)); err != nil {
				return err
			}
			continue
		}
		values.Set(field.Name, response)
		return nil
	}
}

func (p *Prompter) promptMultiSelect(ctx context.Context, field form.Field, values form.Values) error {
	options := make([]string, len(field.Options))
	for i, opt := range field.Options {
		options[i] = field.OptionLabel(opt.Value)
	}
	current := values.Strings(field.Name)
	var defaults []int
	for i, opt := range field.Options {
		for _, value := range current {
			if value == opt.Value {
				defaults = append(defaults, i)
				break
			}
		}
	}

	indices, err := p.driver.MultiSelect(ctx, SelectConfig{
		Message:  field.Title(),
		Options:  options,
		Defaults: defaults,
		Help:     fieldHelp(field),
	})
	if err != nil {
		return err
	}
	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(field.Options) {
			selected = append(selected, field.Options[idx].Value)
		}
	}
	values.Set(field.Name, selected)
	return nil
}

// promptRows keeps or discards the existing rows, then asks for new ones
// until the user declines.
func (p *Prompter) promptRows(ctx context.Context, field form.Field, values form.Values) error {
	noun := strings.ToLower(field.Title())
	rows := values.Rows(field.Name)

	if len(rows) > 0 {
		keep, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep %d existing %s entries?", len(rows), noun),
			Default: true,
		})
		if err != nil {
			return err
		}
		if !keep {
			rows = nil
		}
	}

	for {
		message := fmt.Sprintf("Add %s?", noun)
		if len(rows) > 0 {
			message = fmt.Sprintf("Add another %s?", noun)
		}
		more, err := p.driver.Confirm(ctx, ConfirmConfig{Message: message, Help: fieldHelp(field)})
		if err != nil {
			return err
		}
		if !more {
			break
		}

		row := form.Row{}
		for _, column := range field.Columns {
			value, err := p.driver.Input(ctx, InputConfig{Message: column.Title(), Help: fieldHelp(column)})
			if err != nil {
				return err
			}
			row[column.Name] = value
		}
		rows = append(rows, row)
	}

	values.Set(field.Name, rows)
	return nil
}

func fieldHelp(field form.Field) string {
	if field.Description != "" {
		return field.Description
	}
	if field.Placeholder != "" {
		return "e.g. " + field.Placeholder
	}
	return ""
}
