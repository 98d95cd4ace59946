package types

import "time"

// Kind tags which provider variant produced a candidate.
type Kind string

const (
	KindApp         Kind = "app"
	KindCalculation Kind = "calculation"
	KindClipboard   Kind = "clipboard"
	KindCommand     Kind = "command"
)

// AppInfo describes an installed application.
type AppInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Exec     string   `json:"exec"`
	Icon     string   `json:"icon,omitempty"`
	Comment  string   `json:"comment,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Calculation holds an evaluated arithmetic expression.
// Incomplete marks expressions that parse so far but need more input
// (e.g. a trailing operator).
type Calculation struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Incomplete bool   `json:"incomplete,omitempty"`
}

// ClipboardItem is one entry from the clipboard history.
type ClipboardItem struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Preview  string    `json:"preview"`
	CopiedAt time.Time `json:"copied_at"`
	TimeAgo  string    `json:"time_ago,omitempty"`
}

// CommandInfo describes a built-in launcher command.
type CommandInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Candidate is one normalized, rankable result produced by a provider.
// Exactly one payload field is set, matching Kind. Score is assigned by
// the ranker; providers emit relevance hints only.
type Candidate struct {
	Kind        Kind           `json:"kind"`
	App         *AppInfo       `json:"app,omitempty"`
	Calculation *Calculation   `json:"calculation,omitempty"`
	Clipboard   *ClipboardItem `json:"clipboard,omitempty"`
	Command     *CommandInfo   `json:"command,omitempty"`
	Score       int            `json:"score"`
}

// Valid reports whether the candidate carries exactly the payload its
// kind requires.
func (c Candidate) Valid() bool {
	switch c.Kind {
	case KindApp:
		return c.App != nil && c.Calculation == nil && c.Clipboard == nil && c.Command == nil
	case KindCalculation:
		return c.Calculation != nil && c.App == nil && c.Clipboard == nil && c.Command == nil
	case KindClipboard:
		return c.Clipboard != nil && c.App == nil && c.Calculation == nil && c.Command == nil
	case KindCommand:
		return c.Command != nil && c.App == nil && c.Calculation == nil && c.Clipboard == nil
	default:
		return false
	}
}

// DisplayName returns the primary text a frontend would render.
func (c Candidate) DisplayName() string {
	switch c.Kind {
	case KindApp:
		if c.App != nil {
			return c.App.Name
		}
	case KindCalculation:
		if c.Calculation != nil {
			return c.Calculation.Result
		}
	case KindClipboard:
		if c.Clipboard != nil {
			return c.Clipboard.Preview
		}
	case KindCommand:
		if c.Command != nil {
			return c.Command.Name
		}
	}
	return ""
}
