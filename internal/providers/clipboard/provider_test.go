package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

type fakeClipboard struct {
	content  string
	readErr  error
	writeErr error
	written  []string
}

func (f *fakeClipboard) Read(ctx context.Context) (string, error) {
	return f.content, f.readErr
}

func (f *fakeClipboard) Write(ctx context.Context, content string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, content)
	return nil
}

func newTestProvider(capacity int) (*Provider, *fakeClipboard) {
	clip := &fakeClipboard{}
	p := NewProvider(NewHistory(capacity), nil).WithClipboard(clip, clip)
	return p, clip
}

func TestHistoryDedupMovesToFront(t *testing.T) {
	h := NewHistory(10)
	h.Add("alpha")
	h.Add("beta")
	h.Add("alpha")

	items := h.Items("")
	require.Len(t, items, 2)
	assert.Equal(t, "alpha", items[0].Content)
	assert.Equal(t, "beta", items[1].Content)

	// Entry ID survives the move.
	h2 := NewHistory(10)
	h2.Add("alpha")
	before := h2.Items("")[0].ID
	h2.Add("beta")
	h2.Add("alpha")
	assert.Equal(t, before, h2.Items("")[0].ID)
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Add("one")
	h.Add("two")
	h.Add("three")

	items := h.Items("")
	require.Len(t, items, 2)
	assert.Equal(t, "three", items[0].Content)
	assert.Equal(t, "two", items[1].Content)
}

func TestHistoryIgnoresBlankContent(t *testing.T) {
	h := NewHistory(10)
	h.Add("")
	h.Add("   \n\t")
	assert.Equal(t, 0, h.Len())
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short text", preview("short  text\n"))

	long := preview(string(make([]rune, 0)) + "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.LessOrEqual(t, len([]rune(long)), previewLimit)
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "just now", timeAgo(30*time.Second))
	assert.Equal(t, "5m ago", timeAgo(5*time.Minute))
	assert.Equal(t, "3h ago", timeAgo(3*time.Hour))
	assert.Equal(t, "2d ago", timeAgo(49*time.Hour))
}

func TestMatchRequiresTrigger(t *testing.T) {
	p, _ := newTestProvider(10)
	p.History().Add("secret token")

	assert.Empty(t, p.Match(context.Background(), "firefox"))
	assert.Empty(t, p.Match(context.Background(), "secret"))

	matches := p.Match(context.Background(), "clip")
	require.Len(t, matches, 1)
	assert.Equal(t, providers.HintClipboard, matches[0].Hint)
	assert.Equal(t, "secret token", matches[0].Candidate.Clipboard.Content)
}

func TestMatchFilter(t *testing.T) {
	p, _ := newTestProvider(10)
	p.History().Add("export PATH=/usr/bin")
	p.History().Add("hello world")

	matches := p.Match(context.Background(), "clipboard hello")
	require.Len(t, matches, 1)
	assert.Equal(t, "hello world", matches[0].Candidate.Clipboard.Content)

	assert.Empty(t, p.Match(context.Background(), "paste nomatch"))
}

func TestPollFeedsHistory(t *testing.T) {
	p, clip := newTestProvider(10)

	clip.content = "copied text"
	p.Poll(context.Background())
	assert.Equal(t, 1, p.History().Len())

	// Same content again dedups rather than growing.
	p.Poll(context.Background())
	assert.Equal(t, 1, p.History().Len())

	clip.readErr = errors.New("no display")
	clip.content = "other"
	p.Poll(context.Background())
	assert.Equal(t, 1, p.History().Len())
}

func TestExecuteCopiesEntry(t *testing.T) {
	p, clip := newTestProvider(10)
	p.History().Add("older")
	p.History().Add("newer")

	matches := p.Match(context.Background(), "clip")
	require.Len(t, matches, 2)

	// Execute the older entry; it moves back to the front.
	outcome := p.Execute(context.Background(), matches[1].Candidate)
	assert.Equal(t, types.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, []string{"older"}, clip.written)
	assert.Equal(t, "older", p.History().Items("")[0].Content)
}

func TestExecuteVanishedEntry(t *testing.T) {
	p, _ := newTestProvider(2)
	p.History().Add("first")

	matches := p.Match(context.Background(), "clip")
	require.Len(t, matches, 1)

	// Evict the entry before executing it.
	p.History().Add("second")
	p.History().Add("third")

	outcome := p.Execute(context.Background(), matches[0].Candidate)
	assert.True(t, outcome.IsError())
}

func TestExecuteWriteFailure(t *testing.T) {
	p, clip := newTestProvider(10)
	clip.writeErr = errors.New("wl-copy missing")
	p.History().Add("content")

	matches := p.Match(context.Background(), "clip")
	require.Len(t, matches, 1)
	assert.True(t, p.Execute(context.Background(), matches[0].Candidate).IsError())
}

func TestParseTrigger(t *testing.T) {
	tests := []struct {
		query  string
		filter string
		ok     bool
	}{
		{"clip", "", true},
		{"CLIPBOARD", "", true},
		{"paste hello", "hello", true},
		{"history  url ", "url", true},
		{"clipper", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		filter, ok := parseTrigger(tc.query)
		assert.Equal(t, tc.ok, ok, tc.query)
		assert.Equal(t, tc.filter, filter, tc.query)
	}
}
