package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/providers/apps"
	"github.com/GriffinCanCode/lumen/internal/providers/calculator"
	"github.com/GriffinCanCode/lumen/internal/providers/clipboard"
	"github.com/GriffinCanCode/lumen/internal/providers/command"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

type nullClipboard struct{}

func (nullClipboard) Read(ctx context.Context) (string, error)           { return "", nil }
func (nullClipboard) Write(ctx context.Context, content string) error    { return nil }

type nullLauncher struct{ launched []string }

func (n *nullLauncher) Launch(ctx context.Context, program string, args []string) error {
	n.launched = append(n.launched, program)
	return nil
}

func writeDesktop(t *testing.T, dir, id, name string) {
	t.Helper()
	content := "[Desktop Entry]\nName=" + name + "\nExec=" + id + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".desktop"), []byte(content), 0o644))
}

// newTestEngine wires the full provider set over a temp app directory.
func newTestEngine(t *testing.T, appNames map[string]string) (*Engine, *nullLauncher, string) {
	t.Helper()
	dir := t.TempDir()
	for id, name := range appNames {
		writeDesktop(t, dir, id, name)
	}

	idx := apps.NewIndex([]string{dir}, nil)
	require.NoError(t, idx.Rebuild())
	launcher := &nullLauncher{}
	appProvider := apps.NewProvider(idx, nil, nil).WithLauncher(launcher)

	clipProvider := clipboard.NewProvider(clipboard.NewHistory(10), nil).
		WithClipboard(nullClipboard{}, nullClipboard{})

	reg := providers.NewRegistry()
	require.NoError(t, reg.Register(calculator.NewProvider()))
	require.NoError(t, reg.Register(appProvider))
	require.NoError(t, reg.Register(command.NewProvider()))
	require.NoError(t, reg.Register(clipProvider))

	return New(reg, nil), launcher, dir
}

func TestSearchTruncatesToMax(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]string{
		"a1": "Alpha One", "a2": "Alpha Two", "a3": "Alpha Three", "a4": "Alpha Four",
	})

	results, err := e.Search(context.Background(), "alpha", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = e.Search(context.Background(), "alpha", 10)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

type spyProvider struct {
	calls int
}

func (s *spyProvider) ID() string       { return "spy" }
func (s *spyProvider) Kind() types.Kind { return types.KindApp }
func (s *spyProvider) Priority() int    { return providers.PriorityApps }

func (s *spyProvider) Match(ctx context.Context, query string) []providers.Match {
	s.calls++
	return nil
}

func (s *spyProvider) Execute(ctx context.Context, cand types.Candidate) types.Outcome {
	return types.Success()
}

func TestBlankQuerySkipsProviders(t *testing.T) {
	spy := &spyProvider{}
	reg := providers.NewRegistry()
	require.NoError(t, reg.Register(spy))
	e := New(reg, nil)

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := e.Search(context.Background(), query, 8)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.Equal(t, 0, spy.calls)
}

func TestMaxZeroReplacesState(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]string{"cam": "Camera"})

	_, err := e.Search(context.Background(), "camera", 8)
	require.NoError(t, err)
	count, err := e.ResultCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	results, err := e.Search(context.Background(), "camera", 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	count, err = e.ResultCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Old index 0 no longer resolves.
	assert.True(t, e.Execute(context.Background(), 0).IsError())
}

func TestSearchDeterministic(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]string{
		"cam": "Camera", "cal": "Calendar", "calc": "Calc Tool",
	})

	first, err := e.Search(context.Background(), "ca", 8)
	require.NoError(t, err)
	second, err := e.Search(context.Background(), "ca", 8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculationOutranksApps(t *testing.T) {
	// An app literally named after the expression still loses.
	e, _, _ := newTestEngine(t, map[string]string{"tool": "2+2 Tool"})

	results, err := e.Search(context.Background(), "2+2", 8)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, types.KindCalculation, results[0].Kind)
	assert.Equal(t, "4", results[0].Calculation.Result)
}

func TestQueryTooLong(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	long := make([]byte, DefaultMaxQueryLen+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := e.Search(context.Background(), string(long), 8)
	assert.ErrorIs(t, err, ErrQueryTooLong)
}

func TestExecuteByIndex(t *testing.T) {
	e, launcher, _ := newTestEngine(t, map[string]string{"cam": "Camera"})

	results, err := e.Search(context.Background(), "camera", 8)
	require.NoError(t, err)
	require.Len(t, results, 1)

	outcome := e.Execute(context.Background(), 0)
	assert.Equal(t, types.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, []string{"cam"}, launcher.launched)
}

func TestExecuteOutOfRange(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]string{"cam": "Camera"})

	_, err := e.Search(context.Background(), "camera", 8)
	require.NoError(t, err)

	assert.True(t, e.Execute(context.Background(), -1).IsError())
	assert.True(t, e.Execute(context.Background(), 1).IsError())

	out := e.Execute(context.Background(), 5)
	require.True(t, out.IsError())
	assert.Contains(t, out.Message, "out of range")
}

func TestExecuteBeforeSearch(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	assert.True(t, e.Execute(context.Background(), 0).IsError())
}

func TestReloadPicksUpNewAppsAndClearsResults(t *testing.T) {
	e, _, dir := newTestEngine(t, map[string]string{"cam": "Camera"})

	_, err := e.Search(context.Background(), "browser", 8)
	require.NoError(t, err)

	writeDesktop(t, dir, "browser", "Browser")
	require.NoError(t, e.Reload(context.Background()))

	count, err := e.ResultCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	results, err := e.Search(context.Background(), "browser", 8)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Browser", results[0].App.Name)
}

func TestReloadKeepsClipboardHistory(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	reg := e.registry
	p, ok := reg.ByKind(types.KindClipboard)
	require.True(t, ok)
	p.(*clipboard.Provider).History().Add("kept across reload")

	require.NoError(t, e.Reload(context.Background()))

	results, err := e.Search(context.Background(), "clip", 8)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "kept across reload", results[0].Clipboard.Content)
}

type pollableClipboard struct {
	content string
}

func (p *pollableClipboard) Read(ctx context.Context) (string, error)        { return p.content, nil }
func (p *pollableClipboard) Write(ctx context.Context, content string) error { return nil }

func TestPollClipboardDedups(t *testing.T) {
	clip := &pollableClipboard{content: "copied once"}
	clipProvider := clipboard.NewProvider(clipboard.NewHistory(10), nil).
		WithClipboard(clip, clip)

	reg := providers.NewRegistry()
	require.NoError(t, reg.Register(clipProvider))
	e := New(reg, nil)

	require.NoError(t, e.PollClipboard(context.Background()))
	require.NoError(t, e.PollClipboard(context.Background()))

	results, err := e.Search(context.Background(), "clip", 8)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

type panicProvider struct{}

func (panicProvider) ID() string       { return "panic" }
func (panicProvider) Kind() types.Kind { return types.KindApp }
func (panicProvider) Priority() int    { return providers.PriorityApps }

func (panicProvider) Match(ctx context.Context, query string) []providers.Match {
	if query == "boom" {
		panic("match exploded")
	}
	return []providers.Match{{
		Candidate: types.Candidate{Kind: types.KindApp, App: &types.AppInfo{ID: "x", Name: "X", Exec: "x"}},
		Hint:      providers.HintPrefix,
	}}
}

func (panicProvider) Execute(ctx context.Context, cand types.Candidate) types.Outcome {
	panic("execute exploded")
}

func TestProviderPanicsContained(t *testing.T) {
	reg := providers.NewRegistry()
	require.NoError(t, reg.Register(panicProvider{}))
	e := New(reg, nil)

	results, err := e.Search(context.Background(), "boom", 8)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = e.Search(context.Background(), "x", 8)
	require.NoError(t, err)
	require.Len(t, results, 1)

	outcome := e.Execute(context.Background(), 0)
	assert.True(t, outcome.IsError())
}

func TestClosedEngine(t *testing.T) {
	e, _, _ := newTestEngine(t, map[string]string{"cam": "Camera"})

	_, err := e.Search(context.Background(), "camera", 8)
	require.NoError(t, err)

	e.Close()
	e.Close() // idempotent

	_, err = e.Search(context.Background(), "camera", 8)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = e.ResultCount()
	assert.ErrorIs(t, err, ErrClosed)

	assert.ErrorIs(t, e.Reload(context.Background()), ErrClosed)
	assert.ErrorIs(t, e.PollClipboard(context.Background()), ErrClosed)

	out := e.Execute(context.Background(), 0)
	require.True(t, out.IsError())
	assert.Contains(t, out.Message, "invalid")
}

func TestCameraScenario(t *testing.T) {
	// Typing "cam", executing the top hit, then searching again: the
	// launched app keeps its standing.
	e, launcher, _ := newTestEngine(t, map[string]string{
		"cam":    "Camera",
		"webcam": "Webcam Viewer",
	})

	results, err := e.Search(context.Background(), "cam", 8)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Camera", results[0].App.Name)

	outcome := e.Execute(context.Background(), 0)
	assert.Equal(t, types.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, []string{"cam"}, launcher.launched)

	again, err := e.Search(context.Background(), "cam", 8)
	require.NoError(t, err)
	require.NotEmpty(t, again)
	assert.Equal(t, "Camera", again[0].App.Name)
}
