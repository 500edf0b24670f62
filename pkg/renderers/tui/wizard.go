package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/wizard"
)

type navAction int

const (
	navNext navAction = iota
	navBack
	navSkip
	navGenerate
	navEdit
	navQuit
)

type navChoice struct {
	label  string
	action navAction
}

// RunWizard walks the controller from its current step until the user
// generates the document on the review step. It returns the final document.
func (p *Prompter) RunWizard(ctx context.Context, ctrl *wizard.Controller) (string, error) {
	if ctrl == nil {
		return "", ErrNilController
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		step := ctrl.Current()
		if err := p.driver.Info(ctx, p.header(ctrl)); err != nil {
			return "", err
		}

		if ctrl.IsLast() {
			done, err := p.review(ctx, ctrl)
			if err != nil {
				return "", err
			}
			if done {
				return ctrl.Document(), nil
			}
			continue
		}

		if len(step.Form.Fields) > 0 {
			values, err := p.FillForm(ctx, step.Form, ctrl.Values())
			if err != nil {
				return "", err
			}
			for name, value := range values {
				ctrl.Dispatch(wizard.InputMsg{Field: name, Value: value})
			}
		}
		if preview, ok := ctrl.Preview(); ok && p.preview != nil {
			p.preview(preview)
		}

		action, err := p.navigate(ctx, ctrl)
		if err != nil {
			return "", err
		}
		switch action {
		case navNext:
			if !ctrl.Dispatch(wizard.NextMsg{}) {
				if err := p.driver.Info(ctx, p.blockedMessage(step, ctrl)); err != nil {
					return "", err
				}
			}
		case navBack:
			ctrl.Dispatch(wizard.BackMsg{})
		case navSkip:
			ctrl.Dispatch(wizard.SkipMsg{})
		case navQuit:
			return "", ErrAborted
		}
		p.logger.Debug().Str("step", ctrl.Current().ID).Int("index", ctrl.Index()).Msg("wizard position")
	}
}

func (p *Prompter) header(ctrl *wizard.Controller) string {
	step := ctrl.Current()
	progress := ctrl.Progress()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %d%%\n", progress.Label(), p.styles.progressBar(progress.Percent), progress.Percent)
	b.WriteString(p.styles.Title.Render(step.Title))
	if step.Subtitle != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.Subtitle.Render(step.Subtitle))
	}
	if step.Why != nil {
		b.WriteString("\n\n")
		b.WriteString(p.styles.Section.Render(step.Why.Title))
		b.WriteString("\n")
		b.WriteString(p.styles.Dim.Render(step.Why.Content))
	}
	for _, example := range step.Form.Examples {
		b.WriteString("\n\n")
		b.WriteString(p.styles.Section.Render("Example: " + example.Title))
		b.WriteString("\n")
		b.WriteString(p.styles.Dim.Render(example.Content))
	}
	return b.String()
}

func (p *Prompter) navigate(ctx context.Context, ctrl *wizard.Controller) (navAction, error) {
	var choices []navChoice
	if ctrl.IsFirst() {
		choices = []navChoice{{"Start", navNext}, {"Quit", navQuit}}
	} else {
		choices = []navChoice{{"Next", navNext}, {"Back", navBack}, {"Skip", navSkip}, {"Quit", navQuit}}
	}
	return p.choose(ctx, "What next?", choices)
}

func (p *Prompter) choose(ctx context.Context, message string, choices []navChoice) (navAction, error) {
	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.label
	}
	idx, err := p.driver.Select(ctx, SelectConfig{Message: message, Options: labels})
	if err != nil {
		return navQuit, err
	}
	if idx < 0 || idx >= len(choices) {
		return navQuit, fmt.Errorf("tui: invalid choice %d", idx)
	}
	return choices[idx].action, nil
}

func (p *Prompter) blockedMessage(step wizard.Step, ctrl *wizard.Controller) string {
	missing := step.Form.Missing(ctrl.Values())
	if len(missing) == 0 {
		return "Please complete this step before continuing."
	}
	labels := make([]string, 0, len(missing))
	for _, name := range missing {
		if field, ok := step.Form.Field(name); ok {
			labels = append(labels, field.Title())
			continue
		}
		labels = append(labels, name)
	}
	return "Please fill in: " + strings.Join(labels, ", ")
}

// review prints the step summary and reports whether the user chose to
// generate.
func (p *Prompter) review(ctx context.Context, ctrl *wizard.Controller) (bool, error) {
	cards := ctrl.Summary()
	summary, err := p.Summary(cards)
	if err != nil {
		return false, err
	}
	if err := p.driver.Info(ctx, summary); err != nil {
		return false, err
	}

	action, err := p.choose(ctx, "Ready?", []navChoice{
		{"Generate", navGenerate},
		{"Edit a step", navEdit},
		{"Back", navBack},
		{"Quit", navQuit},
	})
	if err != nil {
		return false, err
	}

	switch action {
	case navGenerate:
		return true, nil
	case navBack:
		ctrl.Dispatch(wizard.BackMsg{})
	case navEdit:
		titles := make([]string, len(cards))
		for i, card := range cards {
			titles[i] = card.Title
		}
		idx, err := p.driver.Select(ctx, SelectConfig{Message: "Which step?", Options: titles})
		if err != nil {
			return false, err
		}
		if idx >= 0 && idx < len(cards) {
			ctrl.Dispatch(wizard.GoToMsg{Index: cards[idx].Index})
		}
	case navQuit:
		return false, ErrAborted
	}
	return false, nil
}

// Summary renders the review cards as plain text.
func (p *Prompter) Summary(cards []wizard.Card) (string, error) {
	rows := make([]map[string]any, len(cards))
	for i, card := range cards {
		rows[i] = map[string]any{
			"number":   i + 1,
			"title":    card.Title,
			"subtitle": card.Subtitle,
			"status":   card.Status(),
		}
	}
	out, err := p.templates.RenderTemplate("review", map[string]any{"cards": rows})
	if err != nil {
		return "", fmt.Errorf("tui: render review: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
