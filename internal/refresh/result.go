// Package refresh runs the periodic fetch groups that feed the dashboard:
// news, markets, predictions and earthquakes.
package refresh

import (
	"time"

	"worldmonitor/internal/markets"
	"worldmonitor/internal/news"
	"worldmonitor/internal/predictions"
	"worldmonitor/internal/quakes"
)

// Group is a top-level refresh group with its own timer.
type Group string

const (
	GroupNews        Group = "news"
	GroupMarkets     Group = "markets"
	GroupPredictions Group = "predictions"
	GroupEarthquakes Group = "earthquakes"
)

// Groups returns every group in start order.
func Groups() []Group {
	return []Group{GroupNews, GroupMarkets, GroupPredictions, GroupEarthquakes}
}

// Keys fed by non-news results.
const (
	KeyStocks      = "markets"
	KeySectors     = "heatmap"
	KeyCommodities = "commodities"
	KeyCrypto      = "crypto"
	KeyPredictions = "polymarket"
	KeyEarthquakes = "earthquakes"
	KeyNewsPass    = "news"
)

// Result is the outcome of one fetch, routed to a panel or overlay.
type Result interface {
	Group() Group
	// Key is the panel (or map overlay) the result feeds.
	Key() string
	// Failure is the fetch error, nil on success.
	Failure() error
}

// Outcome is embedded in every result.
type Outcome struct {
	Err       error
	FetchedAt time.Time
}

// Failure implements Result.
func (o Outcome) Failure() error { return o.Err }

// NewsResult is one news category of a pass.
type NewsResult struct {
	Outcome
	Category string
	Items    []news.Item
	Index    int
	Total    int
}

func (NewsResult) Group() Group  { return GroupNews }
func (r NewsResult) Key() string { return r.Category }

// Last reports whether this is the final category of the pass.
func (r NewsResult) Last() bool { return r.Index == r.Total-1 }

// NewsPassResult closes a news pass with the combined items of every
// category that succeeded, newest first.
type NewsPassResult struct {
	Outcome
	Items  []news.Item
	Failed []string
}

func (NewsPassResult) Group() Group { return GroupNews }
func (NewsPassResult) Key() string  { return KeyNewsPass }

// StocksResult feeds the markets panel.
type StocksResult struct {
	Outcome
	Quotes []markets.Quote
}

func (StocksResult) Group() Group { return GroupMarkets }
func (StocksResult) Key() string  { return KeyStocks }

// SectorsResult feeds the heatmap panel.
type SectorsResult struct {
	Outcome
	Sectors []markets.SectorChange
}

func (SectorsResult) Group() Group { return GroupMarkets }
func (SectorsResult) Key() string  { return KeySectors }

// CommoditiesResult feeds the commodities panel.
type CommoditiesResult struct {
	Outcome
	Quotes []markets.Quote
}

func (CommoditiesResult) Group() Group { return GroupMarkets }
func (CommoditiesResult) Key() string  { return KeyCommodities }

// CryptoResult feeds the crypto panel.
type CryptoResult struct {
	Outcome
	Coins []markets.Coin
}

func (CryptoResult) Group() Group { return GroupMarkets }
func (CryptoResult) Key() string  { return KeyCrypto }

// PredictionsResult feeds the prediction panel.
type PredictionsResult struct {
	Outcome
	Markets []predictions.Market
}

func (PredictionsResult) Group() Group { return GroupPredictions }
func (PredictionsResult) Key() string  { return KeyPredictions }

// QuakesResult feeds the map's earthquake overlay.
type QuakesResult struct {
	Outcome
	Quakes []quakes.Quake
}

func (QuakesResult) Group() Group { return GroupEarthquakes }
func (QuakesResult) Key() string  { return KeyEarthquakes }
