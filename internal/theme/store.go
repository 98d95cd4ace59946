// Package theme holds the launcher's appearance tables. The store is
// built once at startup and read-only afterwards; it never touches
// session state.
package theme

import (
	"fmt"
	"sort"
)

// Theme is one named appearance set. All tables are keyed by string so
// the shell can look values up without a schema.
type Theme struct {
	ID          string            `json:"id" toml:"id"`
	Name        string            `json:"name" toml:"name"`
	Description string            `json:"description,omitempty" toml:"description"`
	Type        string            `json:"type" toml:"type"` // "dark", "light", "custom"
	Colors      map[string]string `json:"colors" toml:"colors"`
	Fonts       map[string]string `json:"fonts,omitempty" toml:"fonts"`
	Spacing     map[string]string `json:"spacing,omitempty" toml:"spacing"`
	Sizing      map[string]string `json:"sizing,omitempty" toml:"sizing"`
}

// Store maps theme IDs to themes. Construct with NewStore; lookups are
// safe for concurrent use because the store is never mutated after
// construction.
type Store struct {
	themes map[string]Theme
}

// NewStore builds a store from the built-in themes plus overrides.
// An override with a known ID replaces the built-in wholesale; new IDs
// add custom themes. Overrides without an ID are rejected.
func NewStore(overrides []Theme) (*Store, error) {
	themes := make(map[string]Theme)
	for _, t := range defaults() {
		themes[t.ID] = t
	}
	for _, t := range overrides {
		if t.ID == "" {
			return nil, fmt.Errorf("theme override missing id")
		}
		if t.Type == "" {
			t.Type = "custom"
		}
		themes[t.ID] = t
	}
	return &Store{themes: themes}, nil
}

// Get returns a theme by ID.
func (s *Store) Get(id string) (Theme, bool) {
	t, ok := s.themes[id]
	return t, ok
}

// List returns all themes sorted by ID.
func (s *Store) List() []Theme {
	out := make([]Theme, 0, len(s.themes))
	for _, t := range s.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len reports the number of themes.
func (s *Store) Len() int { return len(s.themes) }

func defaults() []Theme {
	fonts := map[string]string{
		"sans": "Inter, system-ui, sans-serif",
		"mono": "JetBrains Mono, monospace",
	}
	spacing := map[string]string{
		"xs": "4px",
		"sm": "8px",
		"md": "12px",
		"lg": "16px",
	}
	sizing := map[string]string{
		"result-row": "44px",
		"input":      "56px",
		"icon":       "24px",
	}

	return []Theme{
		{
			ID:          "dark",
			Name:        "Dark",
			Description: "Default dark theme",
			Type:        "dark",
			Colors: map[string]string{
				"background": "#1a1a1a",
				"surface":    "#252525",
				"primary":    "#3b82f6",
				"secondary":  "#8b5cf6",
				"accent":     "#10b981",
				"text":       "#ffffff",
				"textMuted":  "#a0a0a0",
				"border":     "#404040",
			},
			Fonts:   fonts,
			Spacing: spacing,
			Sizing:  sizing,
		},
		{
			ID:          "light",
			Name:        "Light",
			Description: "Default light theme",
			Type:        "light",
			Colors: map[string]string{
				"background": "#ffffff",
				"surface":    "#f5f5f5",
				"primary":    "#3b82f6",
				"secondary":  "#8b5cf6",
				"accent":     "#10b981",
				"text":       "#1a1a1a",
				"textMuted":  "#666666",
				"border":     "#e0e0e0",
			},
			Fonts:   fonts,
			Spacing: spacing,
			Sizing:  sizing,
		},
		{
			ID:          "high-contrast",
			Name:        "High Contrast",
			Description: "High contrast theme for accessibility",
			Type:        "dark",
			Colors: map[string]string{
				"background": "#000000",
				"surface":    "#1a1a1a",
				"primary":    "#00ffff",
				"secondary":  "#ff00ff",
				"accent":     "#00ff00",
				"text":       "#ffffff",
				"textMuted":  "#cccccc",
				"border":     "#ffffff",
			},
			Fonts:   fonts,
			Spacing: spacing,
			Sizing:  sizing,
		},
	}
}
