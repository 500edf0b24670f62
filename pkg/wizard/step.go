// Package wizard drives a linear, multi-step questionnaire over a shared
// model.State. Each step owns a form fragment, maps the fragment values to
// state events and may gate forward navigation on a validity predicate.
package wizard

import (
	"github.com/goliatone/go-agentsgen/pkg/form"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Why explains the purpose of a step.
type Why struct {
	Title   string
	Content string
}

// Step is a single page of the wizard.
type Step struct {
	ID       string
	Title    string
	Subtitle string
	Why      *Why
	Required bool
	Form     form.Form

	// Events maps the persisted fragment values to state events. Steps
	// without data leave it nil.
	Events func(form.Values) []model.Event

	// Validate is evaluated on demand and only gates Next when Required is
	// set.
	Validate func(form.Values) bool
}

// Extract returns the plain data captured by the fragment.
func (s Step) Extract(values form.Values) form.Values {
	if values == nil {
		return form.Values{}
	}
	return values.Clone()
}

func (s Step) events(values form.Values) []model.Event {
	if s.Events == nil {
		return nil
	}
	return s.Events(values)
}

func (s Step) valid(values form.Values) bool {
	if !s.Required || s.Validate == nil {
		return true
	}
	return s.Validate(values)
}
