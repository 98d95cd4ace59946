package apps

import (
	"context"
	"os/exec"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/lumen/internal/infrastructure/logging"
	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// maxMatches bounds how many app candidates one query yields.
const maxMatches = 8

// Launcher spawns an application process. The default implementation
// uses os/exec; tests inject a fake.
type Launcher interface {
	Launch(ctx context.Context, program string, args []string) error
}

// execLauncher starts the process and does not wait for it to exit.
type execLauncher struct{}

func (execLauncher) Launch(ctx context.Context, program string, args []string) error {
	cmd := exec.Command(program, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Detach: the launcher never reaps or waits on the child.
	return cmd.Process.Release()
}

// Provider matches queries against the installed-application index
// and launches the selected entry.
type Provider struct {
	index    *Index
	frecency *Frecency
	launcher Launcher
	log      *logging.Logger
}

// NewProvider creates an app provider over a prebuilt index.
func NewProvider(index *Index, frecency *Frecency, log *logging.Logger) *Provider {
	if log == nil {
		log = logging.NewNop()
	}
	if frecency == nil {
		frecency = LoadFrecency("")
	}
	return &Provider{
		index:    index,
		frecency: frecency,
		launcher: execLauncher{},
		log:      log,
	}
}

// WithLauncher overrides process spawning, for tests.
func (p *Provider) WithLauncher(l Launcher) *Provider {
	p.launcher = l
	return p
}

func (p *Provider) ID() string       { return "apps" }
func (p *Provider) Kind() types.Kind { return types.KindApp }
func (p *Provider) Priority() int    { return providers.PriorityApps }

// Match scores every indexed entry against the query. Prefix matches
// outrank substring matches, which outrank fuzzy subsequence matches;
// recent launches add a small boost within the band.
func (p *Provider) Match(ctx context.Context, query string) []providers.Match {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil
	}

	type scored struct {
		e    entry
		hint int
	}
	var results []scored

	for _, e := range p.index.Entries() {
		hint := p.hintFor(e, queryLower)
		if hint < 0 {
			continue
		}
		results = append(results, scored{e: e, hint: hint + p.frecency.Boost(e.info.ID)})
	}

	// Best first; name order settles equal hints so output is stable
	// across runs.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].hint != results[j].hint {
			return results[i].hint > results[j].hint
		}
		return results[i].e.nameLower < results[j].e.nameLower
	})
	if len(results) > maxMatches {
		results = results[:maxMatches]
	}

	out := make([]providers.Match, 0, len(results))
	for _, r := range results {
		info := r.e.info
		out = append(out, providers.Match{
			Candidate: types.Candidate{Kind: types.KindApp, App: &info},
			Hint:      r.hint,
		})
	}
	return out
}

// hintFor returns the relevance hint for one entry, or -1 for no
// match.
func (p *Provider) hintFor(e entry, queryLower string) int {
	if strings.HasPrefix(e.nameLower, queryLower) {
		return providers.HintPrefix
	}
	if containsWordPrefix(e.nameLower, queryLower) {
		return providers.HintPrefix - 5
	}
	if strings.Contains(e.nameLower, queryLower) {
		return providers.HintSubstring
	}
	for _, kw := range e.keywords {
		if strings.HasPrefix(kw, queryLower) {
			return providers.HintSubstring - 5
		}
	}
	if e.commentLower != "" && strings.Contains(e.commentLower, queryLower) {
		return providers.HintFuzzyMax - 20
	}
	return fuzzyScore(e.nameLower, queryLower, providers.HintFuzzyMax)
}

// Execute launches the candidate's application. The call returns once
// the spawn attempt completes; it never waits for the process to
// exit.
func (p *Provider) Execute(ctx context.Context, cand types.Candidate) types.Outcome {
	if cand.App == nil {
		return types.Errorf("app candidate missing payload")
	}

	program, args, err := splitExec(cand.App.Exec)
	if err != nil {
		return types.Errorf("cannot launch %s: %v", cand.App.Name, err)
	}

	if err := p.launcher.Launch(ctx, program, args); err != nil {
		p.log.Warn("app launch failed",
			zap.String("app", cand.App.ID),
			zap.Error(err))
		return types.Errorf("failed to launch %s: %v", cand.App.Name, err)
	}

	p.frecency.Record(cand.App.ID)
	p.log.Info("app launched", zap.String("app", cand.App.ID))
	return types.Success()
}

// Reload rescans the application directories.
func (p *Provider) Reload(ctx context.Context) error {
	return p.index.Rebuild()
}

// splitExec strips desktop-entry field codes (%f, %u, ...) from an
// Exec line and splits it into program and arguments.
func splitExec(execLine string) (string, []string, error) {
	replacer := strings.NewReplacer(
		"%f", "", "%F", "",
		"%u", "", "%U", "",
		"%i", "", "%c", "", "%k", "",
	)
	fields := strings.Fields(replacer.Replace(execLine))
	if len(fields) == 0 {
		return "", nil, errEmptyExec
	}
	return fields[0], fields[1:], nil
}

type execError string

func (e execError) Error() string { return string(e) }

const errEmptyExec = execError("empty exec command")
