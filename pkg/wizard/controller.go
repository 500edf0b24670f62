package wizard

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agentsgen/pkg/form"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Controller is the wizard state machine. The current position is an index
// into the step list; navigation is bounded at both ends and never fails.
// A Controller is owned by a single UI loop.
type Controller struct {
	steps     []Step
	index     int
	fragment  form.Values
	data      map[string]form.Values
	completed map[string]bool

	state     *model.State
	previewer Previewer
	logger    zerolog.Logger
}

// New constructs a Controller positioned at the first step.
func New(options ...Option) *Controller {
	c := &Controller{
		steps:     DefaultSteps(),
		data:      make(map[string]form.Values),
		completed: make(map[string]bool),
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.state == nil {
		c.state = model.NewState()
	}
	if c.previewer == nil {
		c.previewer = DocumentPreviewer(nil, nil, nil)
	}
	c.load()
	return c
}

// Dispatch handles msg and reports whether the position or the current
// fragment changed.
func (c *Controller) Dispatch(msg Msg) bool {
	switch m := msg.(type) {
	case NextMsg:
		return c.Next()
	case BackMsg:
		return c.Back()
	case SkipMsg:
		return c.Skip()
	case GoToMsg:
		return c.GoTo(m.Index)
	case InputMsg:
		c.SetValue(m.Field, m.Value)
		return true
	}
	return false
}

// Next persists the current step and advances by one. It is a no-op while a
// required step is invalid.
func (c *Controller) Next() bool {
	if !c.CanAdvance() {
		c.logger.Debug().Str("step", c.Current().ID).Msg("next blocked by validation")
		return false
	}
	c.persist()
	c.completed[c.Current().ID] = true
	return c.move(c.index + 1)
}

// Back persists the current step and moves back by one.
func (c *Controller) Back() bool {
	c.persist()
	return c.move(c.index - 1)
}

// Skip persists the current step, marks it as not completed and advances
// without validation.
func (c *Controller) Skip() bool {
	c.persist()
	delete(c.completed, c.Current().ID)
	return c.move(c.index + 1)
}

// GoTo persists the current step and jumps to index, clamped to the valid
// range.
func (c *Controller) GoTo(index int) bool {
	c.persist()
	return c.move(index)
}

// CanAdvance evaluates the validity gate of the current step.
func (c *Controller) CanAdvance() bool {
	return c.Current().valid(c.fragment)
}

// Current returns the active step.
func (c *Controller) Current() Step {
	return c.steps[c.index]
}

// Index returns the zero-based position.
func (c *Controller) Index() int {
	return c.index
}

// Steps returns the step sequence.
func (c *Controller) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// IsFirst reports whether the wizard is at the first step.
func (c *Controller) IsFirst() bool {
	return c.index == 0
}

// IsLast reports whether the wizard is at the last step.
func (c *Controller) IsLast() bool {
	return c.index == len(c.steps)-1
}

// Values returns a copy of the current fragment values.
func (c *Controller) Values() form.Values {
	return c.fragment.Clone()
}

// SetValue writes a fragment value of the current step. The value is only
// persisted to the state on navigation.
func (c *Controller) SetValue(field string, value any) {
	c.fragment.Set(field, value)
}

// Data returns the persisted values of step id.
func (c *Controller) Data(id string) form.Values {
	if values, ok := c.data[id]; ok {
		return values.Clone()
	}
	return nil
}

// Completed reports whether step id was left through Next.
func (c *Controller) Completed(id string) bool {
	return c.completed[id]
}

// State returns the shared state. Callers must not mutate it while the
// wizard is running.
func (c *Controller) State() *model.State {
	return c.state
}

// Progress describes the current position.
type Progress struct {
	Current int
	Total   int
	Percent int
}

// Label renders "Step i of N".
func (p Progress) Label() string {
	return fmt.Sprintf("Step %d of %d", p.Current, p.Total)
}

// Progress returns the one-based position and completion percentage.
func (c *Controller) Progress() Progress {
	total := len(c.steps)
	percent := 100
	if total > 1 {
		percent = c.index * 100 / (total - 1)
	}
	return Progress{Current: c.index + 1, Total: total, Percent: percent}
}

// Preview renders the document from the accumulated state with the current
// fragment applied on top. The first step has no preview; the last step shows
// the final document.
func (c *Controller) Preview() (string, bool) {
	if c.IsFirst() {
		return "", false
	}
	state := c.state.Clone()
	if !c.IsLast() {
		state.Apply(c.Current().events(c.fragment)...)
	}
	return c.previewer(state), true
}

// Document renders the final document from the persisted state.
func (c *Controller) Document() string {
	return c.previewer(c.state)
}

func (c *Controller) persist() {
	step := c.Current()
	values := step.Extract(c.fragment)
	c.data[step.ID] = values
	if c.state.Apply(step.events(values)...) {
		c.logger.Debug().Str("step", step.ID).Msg("state updated")
	}
}

func (c *Controller) move(index int) bool {
	if index < 0 {
		index = 0
	}
	if index > len(c.steps)-1 {
		index = len(c.steps) - 1
	}
	if index == c.index {
		c.load()
		return false
	}
	c.logger.Debug().Str("from", c.Current().ID).Str("to", c.steps[index].ID).Msg("navigate")
	c.index = index
	c.load()
	return true
}

func (c *Controller) load() {
	if values, ok := c.data[c.Current().ID]; ok {
		c.fragment = values.Clone()
		return
	}
	c.fragment = form.Values{}
}
