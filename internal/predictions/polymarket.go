// Package predictions fetches prediction-market odds from Polymarket.
package predictions

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"worldmonitor/internal/jsonutil"
)

// DefaultBaseURL is the Polymarket gamma API.
const DefaultBaseURL = "https://gamma-api.polymarket.com"

// Market is one open prediction market.
type Market struct {
	Question string  `json:"question"`
	YesPrice float64 `json:"yesPrice"`
	Volume   float64 `json:"volume"`
	URL      string  `json:"url,omitempty"`
}

// YesPercent returns the yes probability as a percentage.
func (m Market) YesPercent() float64 {
	return m.YesPrice * 100
}

// Client lists the highest-volume open markets.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Limit   int
}

// NewClient returns a client for baseURL; an empty baseURL uses the public API.
func NewClient(baseURL string, httpClient *http.Client, limit int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient, Limit: limit}
}

// Markets returns open markets ordered by volume, descending. Markets without
// a question are skipped.
func (c *Client) Markets(ctx context.Context) ([]Market, error) {
	q := url.Values{}
	q.Set("closed", "false")
	q.Set("order", "volume")
	q.Set("ascending", "false")
	if c.Limit > 0 {
		q.Set("limit", strconv.Itoa(c.Limit))
	}

	doc, err := jsonutil.FetchJSON(ctx, c.HTTP, c.BaseURL+"/markets?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket: %w", err)
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("polymarket: expected array response")
	}

	var out []Market
	for _, r := range doc.Array() {
		question := strings.TrimSpace(r.Get("question").String())
		if question == "" {
			continue
		}
		m := Market{
			Question: question,
			YesPrice: 0.5,
			Volume:   jsonutil.Float(r.Get("volume")),
		}
		if prices := jsonutil.EmbeddedArray(r.Get("outcomePrices")); len(prices) > 0 {
			m.YesPrice = prices[0].Float()
		}
		if slug := r.Get("slug").String(); slug != "" {
			m.URL = "https://polymarket.com/event/" + slug
		}
		out = append(out, m)
		if c.Limit > 0 && len(out) == c.Limit {
			break
		}
	}
	return out, nil
}
