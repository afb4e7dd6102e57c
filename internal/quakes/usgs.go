// Package quakes fetches recent earthquakes from the USGS GeoJSON feeds.
package quakes

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"worldmonitor/internal/jsonutil"
)

// DefaultFeed lists M4.5+ earthquakes from the past day.
const DefaultFeed = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/4.5_day.geojson"

// Quake is one earthquake event.
type Quake struct {
	ID        string    `json:"id"`
	Place     string    `json:"place"`
	Magnitude float64   `json:"magnitude"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Depth     float64   `json:"depth"`
	Time      time.Time `json:"time"`
	URL       string    `json:"url,omitempty"`
}

// Severity buckets magnitude for display: "major" (7+), "strong" (6+),
// "moderate" (5+) or "light".
func (q Quake) Severity() string {
	switch {
	case q.Magnitude >= 7:
		return "major"
	case q.Magnitude >= 6:
		return "strong"
	case q.Magnitude >= 5:
		return "moderate"
	default:
		return "light"
	}
}

// Client reads a USGS summary feed.
type Client struct {
	FeedURL string
	HTTP    *http.Client
}

// NewClient returns a client for feedURL; empty means DefaultFeed.
func NewClient(feedURL string, httpClient *http.Client) *Client {
	if feedURL == "" {
		feedURL = DefaultFeed
	}
	return &Client{FeedURL: feedURL, HTTP: httpClient}
}

// Earthquakes returns the feed's events, strongest first. Features without
// coordinates are skipped.
func (c *Client) Earthquakes(ctx context.Context) ([]Quake, error) {
	doc, err := jsonutil.FetchJSON(ctx, c.HTTP, c.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("usgs: %w", err)
	}
	features := doc.Get("features")
	if !features.IsArray() {
		return nil, fmt.Errorf("usgs: response has no features")
	}

	var out []Quake
	for _, f := range features.Array() {
		coords := f.Get("geometry.coordinates").Array()
		if len(coords) < 2 {
			continue
		}
		q := Quake{
			ID:        f.Get("id").String(),
			Place:     f.Get("properties.place").String(),
			Magnitude: f.Get("properties.mag").Float(),
			Lon:       coords[0].Float(),
			Lat:       coords[1].Float(),
			URL:       f.Get("properties.url").String(),
		}
		if len(coords) > 2 {
			q.Depth = coords[2].Float()
		}
		if ms := f.Get("properties.time").Int(); ms > 0 {
			q.Time = time.UnixMilli(ms).UTC()
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Magnitude > out[j].Magnitude
	})
	return out, nil
}
