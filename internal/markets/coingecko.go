package markets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"worldmonitor/internal/jsonutil"
)

// Coin is a crypto asset price.
type Coin struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
}

// CoinRef identifies a coin on CoinGecko.
type CoinRef struct {
	ID     string
	Symbol string
	Name   string
}

// DefaultCoins returns the tracked coins.
func DefaultCoins() []CoinRef {
	return []CoinRef{
		{"bitcoin", "BTC", "Bitcoin"},
		{"ethereum", "ETH", "Ethereum"},
		{"solana", "SOL", "Solana"},
	}
}

// CoinGecko implements CryptoSource with the simple/price endpoint.
type CoinGecko struct {
	BaseURL string
	Client  *http.Client
	Tracked []CoinRef
}

// NewCoinGecko returns a client for baseURL (e.g. https://api.coingecko.com/api/v3).
func NewCoinGecko(baseURL string, client *http.Client) *CoinGecko {
	return &CoinGecko{BaseURL: strings.TrimRight(baseURL, "/"), Client: client, Tracked: DefaultCoins()}
}

// Coins implements CryptoSource. Coins missing from the response are skipped.
func (g *CoinGecko) Coins(ctx context.Context) ([]Coin, error) {
	ids := make([]string, len(g.Tracked))
	for i, c := range g.Tracked {
		ids[i] = c.ID
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")

	doc, err := jsonutil.FetchJSON(ctx, g.Client, g.BaseURL+"/simple/price?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("coingecko: %w", err)
	}

	out := make([]Coin, 0, len(g.Tracked))
	for _, ref := range g.Tracked {
		entry := doc.Get(ref.ID)
		if !entry.Exists() {
			continue
		}
		out = append(out, Coin{
			ID:        ref.ID,
			Symbol:    ref.Symbol,
			Name:      ref.Name,
			Price:     jsonutil.Float(entry.Get("usd")),
			Change24h: jsonutil.Float(entry.Get("usd_24h_change")),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("coingecko: no coins in response")
	}
	return out, nil
}
