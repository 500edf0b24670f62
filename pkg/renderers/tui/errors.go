package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C or Quit).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilController is returned when RunWizard is called without a wizard.
	ErrNilController = errors.New("tui: wizard controller is nil")
	// ErrNilState is returned when RunForm is called without a state.
	ErrNilState = errors.New("tui: state is nil")
)
