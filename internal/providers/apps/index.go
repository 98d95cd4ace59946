package apps

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/lumen/internal/infrastructure/logging"
	"github.com/GriffinCanCode/lumen/internal/shared/paths"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// scanDepth limits how deep the desktop-entry walk descends below each
// application directory.
const scanDepth = 2

// entry is an indexed application with precomputed lowercase fields
// for matching.
type entry struct {
	info         types.AppInfo
	nameLower    string
	commentLower string
	keywords     []string // lowercased
}

// Index holds the scanned application entries. Rebuilds swap the
// entry slice wholesale so concurrent readers observe either the old
// or the new index.
type Index struct {
	mu      sync.RWMutex
	entries []entry
	dirs    []string
	log     *logging.Logger
}

// DefaultDirs returns the standard XDG application directories plus
// Flatpak and Snap export locations.
func DefaultDirs() []string {
	return paths.ApplicationDirs()
}

// NewIndex creates an index over the given directories without
// scanning. Call Rebuild to populate it.
func NewIndex(dirs []string, log *logging.Logger) *Index {
	if log == nil {
		log = logging.NewNop()
	}
	return &Index{dirs: dirs, log: log}
}

// Rebuild rescans all directories and atomically replaces the entry
// set. Entries are sorted by name so iteration order is stable.
func (idx *Index) Rebuild() error {
	seen := make(map[string]bool)
	var entries []entry

	for _, dir := range idx.dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		idx.scanDir(dir, seen, &entries)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].nameLower < entries[j].nameLower
	})

	idx.mu.Lock()
	idx.entries = entries
	idx.mu.Unlock()

	idx.log.Info("app index rebuilt", zap.Int("entries", len(entries)))
	return nil
}

// Entries returns a snapshot of the current entry set.
func (idx *Index) Entries() []entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.entries
}

// Len returns the number of indexed applications.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.entries)
}

func (idx *Index) scanDir(dir string, seen map[string]bool, entries *[]entry) {
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Unreadable subtree, keep walking
		}
		if d.IsDir() {
			rel, relErr := filepath.Rel(dir, path)
			if relErr == nil && strings.Count(rel, string(filepath.Separator)) >= scanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".desktop") {
			return nil
		}

		e, ok := parseDesktopFile(path)
		if !ok || seen[e.info.ID] {
			return nil
		}
		seen[e.info.ID] = true
		*entries = append(*entries, e)
		return nil
	})
	if err != nil {
		idx.log.Warn("app scan failed", zap.String("dir", dir), zap.Error(err))
	}
}

// parseDesktopFile extracts the fields Lumen needs from a freedesktop
// .desktop entry. Entries marked NoDisplay/Hidden, or missing a name
// or exec line, are skipped.
func parseDesktopFile(path string) (entry, bool) {
	f, err := os.Open(path)
	if err != nil {
		return entry{}, false
	}
	defer f.Close()

	var (
		inDesktopEntry bool
		name, exec     string
		icon, comment  string
		keywords       []string
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Only the main group matters; localized keys carry a
			// bracket suffix and are skipped below.
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}
		if !inDesktopEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			name = value
		case "Exec":
			exec = value
		case "Icon":
			icon = value
		case "Comment":
			comment = value
		case "Keywords":
			for _, kw := range strings.Split(value, ";") {
				if kw = strings.TrimSpace(kw); kw != "" {
					keywords = append(keywords, strings.ToLower(kw))
				}
			}
		case "NoDisplay", "Hidden":
			if strings.EqualFold(value, "true") {
				return entry{}, false
			}
		}
	}
	if scanner.Err() != nil || name == "" || exec == "" {
		return entry{}, false
	}

	// Name words double as keywords for matching, like the desktop
	// entry spec's intent.
	for _, word := range strings.Fields(name) {
		keywords = append(keywords, strings.ToLower(word))
	}

	id := strings.TrimSuffix(filepath.Base(path), ".desktop")

	return entry{
		info: types.AppInfo{
			ID:       id,
			Name:     name,
			Exec:     exec,
			Icon:     icon,
			Comment:  comment,
			Keywords: keywords,
		},
		nameLower:    strings.ToLower(name),
		commentLower: strings.ToLower(comment),
		keywords:     keywords,
	}, true
}
