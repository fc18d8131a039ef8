package engine

import "errors"

// ErrEmptyTask is returned when a completion has no task label.
var ErrEmptyTask = errors.New("task label is required")

// User-facing status lines.
const (
	MsgPrompt           = "What task did you complete?"
	MsgEmptyTask        = "Please enter a task!"
	MsgComeBackTomorrow = "Come back tomorrow!"
)
