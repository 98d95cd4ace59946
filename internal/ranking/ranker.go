// Package ranking merges per-provider matches into one ordered result
// list.
//
// Order is deterministic for identical inputs: the primary key is the
// provider-local relevance hint (descending), ties break on the fixed
// provider priority (Calculator > App > Command > Clipboard), and the
// sort is stable so original match order survives within a provider.
package ranking

import (
	"sort"

	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// Scored is one match annotated with its provider's tie-break
// priority.
type Scored struct {
	Match    providers.Match
	Priority int
}

// Ranker orders candidates from all providers into a single sequence.
type Ranker struct{}

// New creates a ranker.
func New() *Ranker {
	return &Ranker{}
}

// Rank sorts the concatenated matches and truncates to max. The
// returned candidates carry their hint as the final score. max <= 0
// yields an empty, non-nil slice.
func (r *Ranker) Rank(scored []Scored, max int) []types.Candidate {
	if max < 0 {
		max = 0
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Match.Hint != scored[j].Match.Hint {
			return scored[i].Match.Hint > scored[j].Match.Hint
		}
		return scored[i].Priority > scored[j].Priority
	})

	if len(scored) > max {
		scored = scored[:max]
	}

	out := make([]types.Candidate, 0, len(scored))
	for _, s := range scored {
		cand := s.Match.Candidate
		cand.Score = s.Match.Hint
		out = append(out, cand)
	}
	return out
}
