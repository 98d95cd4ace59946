package clipboard

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/lumen/internal/infrastructure/logging"
	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// triggers are the keywords that surface clipboard history. Anything
// after the keyword filters entries by substring.
var triggers = []string{"clipboard", "clip", "paste", "history"}

// Source reads the current system clipboard.
type Source interface {
	Read(ctx context.Context) (string, error)
}

// Writer places content on the system clipboard.
type Writer interface {
	Write(ctx context.Context, content string) error
}

// execClipboard shells out to the session's clipboard tool, preferring
// the Wayland utilities and falling back to xclip.
type execClipboard struct{}

func wayland() bool { return os.Getenv("WAYLAND_DISPLAY") != "" }

func (execClipboard) Read(ctx context.Context) (string, error) {
	var cmd *exec.Cmd
	if wayland() {
		cmd = exec.CommandContext(ctx, "wl-paste", "--no-newline")
	} else {
		cmd = exec.CommandContext(ctx, "xclip", "-selection", "clipboard", "-o")
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (execClipboard) Write(ctx context.Context, content string) error {
	var cmd *exec.Cmd
	if wayland() {
		cmd = exec.CommandContext(ctx, "wl-copy")
	} else {
		cmd = exec.CommandContext(ctx, "xclip", "-selection", "clipboard")
	}
	cmd.Stdin = bytes.NewReader([]byte(content))
	return cmd.Run()
}

// Provider surfaces clipboard history behind trigger keywords and
// re-applies a selected entry to the system clipboard.
type Provider struct {
	history *History
	source  Source
	writer  Writer
	log     *logging.Logger
}

// NewProvider creates a clipboard provider over the given history.
func NewProvider(history *History, log *logging.Logger) *Provider {
	if log == nil {
		log = logging.NewNop()
	}
	clip := execClipboard{}
	return &Provider{history: history, source: clip, writer: clip, log: log}
}

// WithClipboard overrides the system clipboard access, for tests.
func (p *Provider) WithClipboard(source Source, writer Writer) *Provider {
	p.source = source
	p.writer = writer
	return p
}

// History exposes the underlying buffer so polling can feed it.
func (p *Provider) History() *History { return p.history }

func (p *Provider) ID() string       { return "clipboard" }
func (p *Provider) Kind() types.Kind { return types.KindClipboard }
func (p *Provider) Priority() int    { return providers.PriorityClipboard }

// Poll reads the current system clipboard into the history. Read
// failures are logged and swallowed; an empty clipboard is a no-op.
func (p *Provider) Poll(ctx context.Context) {
	content, err := p.source.Read(ctx)
	if err != nil {
		p.log.Debug("clipboard read failed", zap.Error(err))
		return
	}
	p.history.Add(content)
}

// Match returns history entries when the query starts with a trigger
// keyword. Text after the keyword filters entries by substring.
func (p *Provider) Match(ctx context.Context, query string) []providers.Match {
	filter, ok := parseTrigger(query)
	if !ok {
		return nil
	}

	items := p.history.Items(filter)
	out := make([]providers.Match, 0, len(items))
	for i := range items {
		item := items[i]
		out = append(out, providers.Match{
			Candidate: types.Candidate{Kind: types.KindClipboard, Clipboard: &item},
			Hint:      providers.HintClipboard,
		})
	}
	return out
}

// Execute copies the selected entry back onto the system clipboard.
// Entries evicted since the search resolve to an error.
func (p *Provider) Execute(ctx context.Context, cand types.Candidate) types.Outcome {
	if cand.Clipboard == nil {
		return types.Errorf("clipboard candidate missing payload")
	}

	content, ok := p.history.Lookup(cand.Clipboard.ID)
	if !ok {
		return types.Errorf("clipboard entry no longer available")
	}

	if err := p.writer.Write(ctx, content); err != nil {
		p.log.Warn("clipboard write failed", zap.Error(err))
		return types.Errorf("failed to copy to clipboard: %v", err)
	}

	// Re-applying counts as a fresh copy and moves the entry forward.
	p.history.Add(content)
	return types.Success()
}

// parseTrigger splits a query into trigger keyword and filter text.
func parseTrigger(query string) (filter string, ok bool) {
	q := strings.TrimSpace(strings.ToLower(query))
	for _, trigger := range triggers {
		if q == trigger {
			return "", true
		}
		if strings.HasPrefix(q, trigger+" ") {
			return strings.TrimSpace(q[len(trigger):]), true
		}
	}
	return "", false
}
