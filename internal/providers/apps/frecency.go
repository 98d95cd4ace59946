package apps

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// frecencyHalfLife controls usage decay: a launch loses half its
	// weight every week.
	frecencyHalfLife = 7 * 24 * time.Hour

	// frecencyMaxAge prunes records not touched for this long.
	frecencyMaxAge = 90 * 24 * time.Hour

	// frecencyMaxBoost caps the hint boost so frequently used apps
	// reorder within a match band but never jump across bands.
	frecencyMaxBoost = 5
)

type frecencyRecord struct {
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Frecency tracks app launch history with time decay. Reads are safe
// during Match; Record is called from Execute only.
type Frecency struct {
	mu      sync.RWMutex
	path    string // empty: in-memory only
	records map[string]frecencyRecord
	now     func() time.Time
}

// LoadFrecency reads tracking data from path, starting empty when the
// file does not exist. An empty path disables persistence.
func LoadFrecency(path string) *Frecency {
	f := &Frecency{
		path:    path,
		records: make(map[string]frecencyRecord),
		now:     time.Now,
	}
	if path == "" {
		return f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f
	}
	var records map[string]frecencyRecord
	if json.Unmarshal(data, &records) == nil && records != nil {
		f.records = records
	}
	f.prune()
	return f
}

// Record registers a launch and persists best-effort.
func (f *Frecency) Record(appID string) {
	f.mu.Lock()
	rec := f.records[appID]
	rec.Count++
	rec.LastUsed = f.now()
	f.records[appID] = rec
	f.mu.Unlock()

	f.save()
}

// Boost returns the hint boost for an app, in [0, frecencyMaxBoost].
func (f *Frecency) Boost(appID string) int {
	f.mu.RLock()
	rec, ok := f.records[appID]
	f.mu.RUnlock()
	if !ok || rec.Count == 0 {
		return 0
	}

	age := f.now().Sub(rec.LastUsed)
	decayed := float64(rec.Count) * math.Pow(0.5, float64(age)/float64(frecencyHalfLife))

	boost := int(math.Round(decayed))
	if boost > frecencyMaxBoost {
		return frecencyMaxBoost
	}
	if boost < 0 {
		return 0
	}
	return boost
}

func (f *Frecency) prune() {
	cutoff := f.now().Add(-frecencyMaxAge)

	f.mu.Lock()
	for id, rec := range f.records {
		if rec.LastUsed.Before(cutoff) {
			delete(f.records, id)
		}
	}
	f.mu.Unlock()
}

func (f *Frecency) save() {
	if f.path == "" {
		return
	}

	f.mu.RLock()
	data, err := json.Marshal(f.records)
	f.mu.RUnlock()
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(f.path, data, 0o644)
}
