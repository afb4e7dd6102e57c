// Package news fetches RSS and Atom feeds grouped into dashboard categories.
package news

import (
	"sort"
	"strings"
	"time"
)

// Item is a single feed entry.
type Item struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	Published   time.Time `json:"published"`
	Category    string    `json:"category"`
	IsAlert     bool      `json:"isAlert"`
}

// Feed is one upstream RSS/Atom document.
type Feed struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Category groups feeds rendered by one news panel.
type Category struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Feeds []Feed `json:"feeds"`
}

// alertKeywords flag breaking security news.
var alertKeywords = []string{
	"war", "invasion", "military", "nuclear", "sanctions", "missile",
	"attack", "troops", "conflict", "strike", "bomb", "casualties",
	"ceasefire", "treaty", "nato", "coup", "martial law", "emergency",
	"assassination", "terrorist", "hostage", "evacuation",
}

// IsAlertTitle reports whether title mentions any alert keyword.
func IsAlertTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range alertKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// SortNewest orders items newest first; ties keep their relative order.
func SortNewest(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
}

// Dedupe drops repeated entries, keyed by link (or title when the link is
// empty). The first occurrence wins.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, it := range items {
		key := it.Link
		if key == "" {
			key = strings.ToLower(it.Title)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
