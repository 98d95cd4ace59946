package apps

import "strings"

// fuzzyScore matches query as a subsequence of text and returns a
// score in [1, max], or -1 when the query is not a subsequence. Both
// arguments must already be lowercased. Compact matches and matches
// starting at word boundaries score higher, so "ff" prefers "firefox"
// over "file manager off".
func fuzzyScore(text, query string, max int) int {
	if query == "" || len(query) > len(text) {
		return -1
	}

	var (
		score      int
		prev       = -2
		start      = -1
		qi         int
		boundaries = wordBoundaries(text)
	)

	for ti := 0; ti < len(text) && qi < len(query); ti++ {
		if text[ti] != query[qi] {
			continue
		}
		if start < 0 {
			start = ti
		}
		score += 2
		if ti == prev+1 {
			score += 3 // Consecutive run
		}
		if boundaries[ti] {
			score += 4
		}
		prev = ti
		qi++
	}
	if qi < len(query) {
		return -1
	}

	// Penalize matches spread over a long span.
	span := prev - start + 1
	if span > len(query) {
		score -= (span - len(query))
	}

	if score > max {
		return max
	}
	if score < 1 {
		return 1
	}
	return score
}

// wordBoundaries marks indexes that start a word (position 0 or
// preceded by space, dash, underscore or dot).
func wordBoundaries(text string) []bool {
	b := make([]bool, len(text))
	for i := range text {
		if i == 0 {
			b[i] = true
			continue
		}
		switch text[i-1] {
		case ' ', '-', '_', '.':
			b[i] = true
		}
	}
	return b
}

// containsWordPrefix reports whether any word of text starts with
// query.
func containsWordPrefix(text, query string) bool {
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}) {
		if strings.HasPrefix(word, query) {
			return true
		}
	}
	return false
}
