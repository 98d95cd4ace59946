package clipboard

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/GriffinCanCode/lumen/internal/shared/id"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// DefaultCapacity bounds the history when the config does not say
// otherwise.
const DefaultCapacity = 50

// previewLimit truncates entry previews to a single display line.
const previewLimit = 60

type record struct {
	id       string
	content  string
	copiedAt time.Time
}

// History is a bounded, most-recent-first clipboard buffer. Re-copying
// existing content moves the entry to the front instead of duplicating
// it; when full, the oldest entry is evicted.
type History struct {
	mu       sync.RWMutex
	capacity int
	entries  []record
	now      func() time.Time
}

// NewHistory creates an empty history. Non-positive capacities fall
// back to DefaultCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity, now: time.Now}
}

// Add records content at the front of the history. Empty or
// whitespace-only content is ignored. Duplicate content keeps its
// entry ID but moves to the front with a fresh timestamp.
func (h *History) Add(content string) {
	if strings.TrimSpace(content) == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, rec := range h.entries {
		if rec.content == content {
			rec.copiedAt = h.now()
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			h.entries = append([]record{rec}, h.entries...)
			return
		}
	}

	rec := record{
		id:       id.NewEntryID().String(),
		content:  content,
		copiedAt: h.now(),
	}
	h.entries = append([]record{rec}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}

// Lookup returns the full content behind an entry ID. The second
// return is false when the entry has been evicted.
func (h *History) Lookup(entryID string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, rec := range h.entries {
		if rec.id == entryID {
			return rec.content, true
		}
	}
	return "", false
}

// Items returns the history newest first, filtered by substring when
// filter is non-empty. The filter is case-insensitive.
func (h *History) Items(filter string) []types.ClipboardItem {
	filterLower := strings.ToLower(filter)

	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []types.ClipboardItem
	for _, rec := range h.entries {
		if filterLower != "" && !strings.Contains(strings.ToLower(rec.content), filterLower) {
			continue
		}
		out = append(out, types.ClipboardItem{
			ID:       rec.id,
			Content:  rec.content,
			Preview:  preview(rec.content),
			CopiedAt: rec.copiedAt,
			TimeAgo:  timeAgo(h.now().Sub(rec.copiedAt)),
		})
	}
	return out
}

// Len reports the number of stored entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// preview flattens content to one trimmed line of at most
// previewLimit runes.
func preview(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if len(runes) <= previewLimit {
		return line
	}
	return string(runes[:previewLimit-1]) + "…"
}

// timeAgo renders an age as a coarse human label.
func timeAgo(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
