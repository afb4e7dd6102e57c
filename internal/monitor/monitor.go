// Package monitor evaluates user-defined keyword monitors over news items.
package monitor

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"worldmonitor/internal/news"
)

// MaxResults caps the matches kept per monitor.
const MaxResults = 10

var (
	// ErrEmptyKeywords is returned when a monitor has no usable keyword.
	ErrEmptyKeywords = errors.New("monitor needs at least one keyword")
	// ErrNotFound is returned for an unknown monitor ID.
	ErrNotFound = errors.New("monitor not found")
)

// DefaultColors cycles through the marker colors for new monitors.
var DefaultColors = []string{"#44ff88", "#ff8844", "#4488ff", "#ff44ff", "#ffff44", "#ff4444", "#44ffff"}

// Monitor is a saved keyword search over the aggregated news.
type Monitor struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Color    string   `json:"color"`
}

// Results maps monitor ID to its matching items, newest first.
type Results map[string][]news.Item

// New builds a monitor from a comma separated keyword list.
func New(keywords, color string) (Monitor, error) {
	kw := ParseKeywords(keywords)
	if len(kw) == 0 {
		return Monitor{}, ErrEmptyKeywords
	}
	return Monitor{ID: uuid.NewString(), Keywords: kw, Color: color}, nil
}

// ParseKeywords splits s on commas, trims and lowercases each keyword and
// drops empties and duplicates.
func ParseKeywords(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		k := strings.ToLower(strings.TrimSpace(part))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// nonWord matches one character that cannot be part of a word in any
// script. RE2's \b only knows ASCII word characters.
const nonWord = `[^\p{L}\p{N}_]`

// Matcher returns a whole-word, case-insensitive matcher for the monitor.
func (m Monitor) Matcher() *regexp.Regexp {
	if len(m.Keywords) == 0 {
		return nil
	}
	parts := make([]string, 0, len(m.Keywords))
	for _, k := range m.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			parts = append(parts, regexp.QuoteMeta(k))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)(?:^|` + nonWord + `)(?:` + strings.Join(parts, "|") + `)(?:$|` + nonWord + `)`)
}

// EvaluateOne returns the items matching m, newest first, capped at
// MaxResults. The input slice is not modified.
func EvaluateOne(m Monitor, items []news.Item) []news.Item {
	re := m.Matcher()
	if re == nil {
		return nil
	}
	var matched []news.Item
	for _, it := range items {
		if re.MatchString(it.Title) || re.MatchString(it.Description) {
			matched = append(matched, it)
		}
	}
	matched = news.Dedupe(matched)
	news.SortNewest(matched)
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched
}

// Evaluate runs every monitor over items.
func Evaluate(monitors []Monitor, items []news.Item) Results {
	out := make(Results, len(monitors))
	for _, m := range monitors {
		out[m.ID] = EvaluateOne(m, items)
	}
	return out
}
