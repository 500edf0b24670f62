package wizard

// Card status labels.
const (
	StatusComplete = "Complete"
	StatusSkipped  = "Skipped"
)

// Card summarises one step on the review screen. Index is the GoTo target.
type Card struct {
	Index     int
	ID        string
	Title     string
	Subtitle  string
	HasData   bool
	Completed bool
}

// Status returns StatusComplete when the step captured any data.
func (c Card) Status() string {
	if c.HasData {
		return StatusComplete
	}
	return StatusSkipped
}

// Summary lists every step between the first and the last one.
func (c *Controller) Summary() []Card {
	if len(c.steps) < 3 {
		return nil
	}
	cards := make([]Card, 0, len(c.steps)-2)
	for i := 1; i < len(c.steps)-1; i++ {
		step := c.steps[i]
		values, ok := c.data[step.ID]
		cards = append(cards, Card{
			Index:     i,
			ID:        step.ID,
			Title:     step.Title,
			Subtitle:  step.Subtitle,
			HasData:   ok && values.HasData(),
			Completed: c.completed[step.ID],
		})
	}
	return cards
}
