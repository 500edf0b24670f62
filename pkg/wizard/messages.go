package wizard

// Msg is a navigation or input message handled by Controller.Dispatch.
type Msg interface {
	isMsg()
}

// NextMsg advances when the current step is valid.
type NextMsg struct{}

// BackMsg returns to the previous step.
type BackMsg struct{}

// SkipMsg advances without validation and marks the step as not completed.
type SkipMsg struct{}

// GoToMsg jumps to Index.
type GoToMsg struct {
	Index int
}

// InputMsg writes a fragment value of the current step.
type InputMsg struct {
	Field string
	Value any
}

func (NextMsg) isMsg()  {}
func (BackMsg) isMsg()  {}
func (SkipMsg) isMsg()  {}
func (GoToMsg) isMsg()  {}
func (InputMsg) isMsg() {}
