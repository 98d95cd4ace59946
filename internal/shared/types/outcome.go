package types

import "fmt"

// OutcomeKind enumerates the closed set of execution outcomes.
type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeError        OutcomeKind = "error"
	OutcomeNeedsInput   OutcomeKind = "needs_input"
	OutcomeOpenSettings OutcomeKind = "open_settings"
	OutcomeQuit         OutcomeKind = "quit"
)

// Outcome is the typed result of executing a candidate. Message is set
// for the error variant and is caller-displayable.
type Outcome struct {
	Kind    OutcomeKind `json:"outcome"`
	Message string      `json:"message,omitempty"`
}

// Success returns a success outcome.
func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// Errorf returns an error outcome with a formatted message.
func Errorf(format string, args ...interface{}) Outcome {
	return Outcome{Kind: OutcomeError, Message: fmt.Sprintf(format, args...)}
}

// NeedsInput returns an outcome asking the caller to re-prompt.
func NeedsInput() Outcome {
	return Outcome{Kind: OutcomeNeedsInput}
}

// OpenSettings returns an outcome asking the caller to show settings.
func OpenSettings() Outcome {
	return Outcome{Kind: OutcomeOpenSettings}
}

// Quit returns an outcome asking the caller to terminate the host.
func Quit() Outcome {
	return Outcome{Kind: OutcomeQuit}
}

// IsError reports whether the outcome is the error variant.
func (o Outcome) IsError() bool {
	return o.Kind == OutcomeError
}
