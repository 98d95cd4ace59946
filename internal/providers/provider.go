package providers

import (
	"context"

	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// Match pairs a candidate with its provider-local relevance hint.
// Hints are unranked: the ranker alone turns them into scores.
type Match struct {
	Candidate types.Candidate
	Hint      int
}

// Hint bands shared across providers. Within a band, providers may
// offset by match quality (prefix > substring > fuzzy for apps).
const (
	HintCalculation = 100
	HintPrefix      = 90
	HintSubstring   = 75
	HintClipboard   = 70
	HintCommand     = 65
	HintFuzzyMax    = 60
)

// Provider is a pluggable source of candidates for one category of
// action. Match must be side-effect-free; only Execute and provider-
// specific ingestion (e.g. the clipboard poll) may mutate internal
// state.
type Provider interface {
	// ID returns the stable provider identifier.
	ID() string

	// Kind returns the candidate kind this provider owns.
	Kind() types.Kind

	// Priority is the fixed tie-break rank used when two providers
	// report equal hints (higher ranks first).
	Priority() int

	// Match produces candidates with relevance hints for a query.
	Match(ctx context.Context, query string) []Match

	// Execute performs the action for a candidate this provider
	// produced and reports a typed outcome.
	Execute(ctx context.Context, cand types.Candidate) types.Outcome
}

// Reloader is implemented by providers whose internal index can be
// rebuilt (e.g. the installed-app scan). Reload must swap the index
// atomically so an in-flight reader observes either the old or the
// new index.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Fixed tie-break priorities. Calculator outranks apps, apps outrank
// commands, clipboard comes last.
const (
	PriorityCalculator = 90
	PriorityApps       = 70
	PriorityCommands   = 60
	PriorityClipboard  = 50
)
