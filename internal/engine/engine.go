package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/lumen/internal/infrastructure/logging"
	"github.com/GriffinCanCode/lumen/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/ranking"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// DefaultMaxQueryLen bounds query length when the config does not say
// otherwise.
const DefaultMaxQueryLen = 1024

// ErrClosed is returned by operations on a closed engine.
var ErrClosed = errors.New("engine is closed")

// ErrQueryTooLong is returned when a query exceeds the configured
// length cap.
var ErrQueryTooLong = errors.New("query too long")

// clipboardPoller matches the clipboard provider's ingestion hook.
type clipboardPoller interface {
	Poll(ctx context.Context)
}

// Engine owns the launcher session: it fans a query out to the
// registered providers, ranks the combined candidates, remembers the
// last result list, and executes a candidate by its position in that
// list.
//
// One mutex serializes every public operation, so a Search can never
// interleave with the Execute that consumes its results.
type Engine struct {
	mu sync.Mutex

	id          string
	registry    *providers.Registry
	ranker      *ranking.Ranker
	log         *logging.Logger
	metrics     *monitoring.Metrics
	maxQueryLen int

	lastResults []types.Candidate
	closed      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics attaches a metrics collector.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithMaxQueryLen overrides the query length cap.
func WithMaxQueryLen(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxQueryLen = n
		}
	}
}

// New creates an engine over a provider registry.
func New(registry *providers.Registry, log *logging.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logging.NewNop()
	}
	e := &Engine{
		id:          uuid.New().String(),
		registry:    registry,
		ranker:      ranking.New(),
		log:         log,
		maxQueryLen: DefaultMaxQueryLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log.Info("engine created", zap.String("engine_id", e.id))
	return e
}

// ID returns the engine instance identifier.
func (e *Engine) ID() string { return e.id }

// Search evaluates a query and replaces the remembered result list.
// An empty or whitespace-only query short-circuits without invoking
// any provider; max == 0 yields an empty list. Both still replace the
// remembered list, so a stale Execute cannot act on older results.
func (e *Engine) Search(ctx context.Context, query string, max int) ([]types.Candidate, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	if len(query) > e.maxQueryLen {
		return nil, ErrQueryTooLong
	}

	start := time.Now()
	results := e.search(ctx, query, max)
	e.lastResults = results

	if e.metrics != nil {
		e.metrics.RecordSearch(time.Since(start), len(results))
	}
	e.log.Debug("search evaluated",
		zap.Int("query_len", len(query)),
		zap.Int("results", len(results)))

	out := make([]types.Candidate, len(results))
	copy(out, results)
	return out, nil
}

func (e *Engine) search(ctx context.Context, query string, max int) []types.Candidate {
	if isBlank(query) || max == 0 {
		return nil
	}

	var scored []ranking.Scored
	for _, p := range e.registry.List() {
		for _, m := range e.safeMatch(ctx, p, query) {
			scored = append(scored, ranking.Scored{Match: m, Priority: p.Priority()})
		}
	}
	return e.ranker.Rank(scored, max)
}

// safeMatch shields the engine from a panicking provider; its
// candidates are dropped and the search continues.
func (e *Engine) safeMatch(ctx context.Context, p providers.Provider, query string) (matches []providers.Match) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("provider panicked during match",
				zap.String("provider", p.ID()),
				zap.Any("panic", r))
			matches = nil
		}
	}()
	return p.Match(ctx, query)
}

// ResultCount reports the length of the remembered result list.
func (e *Engine) ResultCount() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0, ErrClosed
	}
	return len(e.lastResults), nil
}

// Execute acts on the candidate at index in the remembered result
// list. Indexes resolve against the most recent Search only; out of
// range indexes and provider panics surface as error outcomes, never
// as Go errors or crashes.
func (e *Engine) Execute(ctx context.Context, index int) types.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return types.Errorf("invalid engine handle")
	}
	if index < 0 || index >= len(e.lastResults) {
		return types.Errorf("index %d out of range: %d results available", index, len(e.lastResults))
	}

	cand := e.lastResults[index]
	p, ok := e.registry.ByKind(cand.Kind)
	if !ok {
		return types.Errorf("no provider for candidate kind %q", cand.Kind)
	}

	outcome := e.safeExecute(ctx, p, cand)
	if e.metrics != nil {
		e.metrics.RecordExecution(string(cand.Kind), string(outcome.Kind))
	}
	e.log.Info("candidate executed",
		zap.Int("index", index),
		zap.String("kind", string(cand.Kind)),
		zap.String("outcome", string(outcome.Kind)))
	return outcome
}

func (e *Engine) safeExecute(ctx context.Context, p providers.Provider, cand types.Candidate) (outcome types.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("provider panicked during execute",
				zap.String("provider", p.ID()),
				zap.Any("panic", r))
			outcome = types.Errorf("execution failed: internal provider error")
		}
	}()
	return p.Execute(ctx, cand)
}

// Reload rebuilds every reloadable provider index. The remembered
// result list is cleared because its candidates may reference entries
// that no longer exist; clipboard history is provider state and
// survives.
func (e *Engine) Reload(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	var firstErr error
	for _, p := range e.registry.List() {
		r, ok := p.(providers.Reloader)
		if !ok {
			continue
		}
		if err := r.Reload(ctx); err != nil {
			e.log.Warn("provider reload failed",
				zap.String("provider", p.ID()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	e.lastResults = nil
	if e.metrics != nil {
		e.metrics.Reloads.Inc()
	}
	e.log.Info("engine reloaded")
	return firstErr
}

// PollClipboard ingests the current system clipboard through the
// clipboard provider. A registry without a clipboard provider makes
// this a no-op.
func (e *Engine) PollClipboard(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	p, ok := e.registry.ByKind(types.KindClipboard)
	if !ok {
		return nil
	}
	poller, ok := p.(clipboardPoller)
	if !ok {
		return nil
	}

	poller.Poll(ctx)
	if e.metrics != nil {
		e.metrics.ClipboardPolls.Inc()
	}
	return nil
}

// Close releases the engine. Every later operation reports an invalid
// handle; Close itself is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.lastResults = nil
	e.log.Info("engine closed", zap.String("engine_id", e.id))
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
