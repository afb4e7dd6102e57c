package refresh

import (
	"log"
	"net/http"
	"time"

	"worldmonitor/internal/config"
	"worldmonitor/internal/markets"
	"worldmonitor/internal/news"
	"worldmonitor/internal/predictions"
	"worldmonitor/internal/quakes"
)

// NewSources builds the live upstream clients described by cfg. Stock,
// sector and commodity quotes need a Finnhub key; without one those fetches
// fail and everything else still refreshes.
func NewSources(cfg config.Config) Sources {
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	var quotes markets.QuoteSource
	if cfg.FinnhubAPIKey != "" {
		fh, err := markets.NewFinnhubSource(cfg.FinnhubAPIKey, client)
		if err != nil {
			log.Printf("refresh.NewSources: finnhub disabled: %v", err)
		} else {
			quotes = fh
		}
	} else {
		log.Printf("refresh.NewSources: no Finnhub key, stock quotes disabled")
	}

	return Sources{
		News:        news.NewFetcher(cfg.HTTPTimeout),
		Categories:  news.DefaultCategories(),
		Markets:     markets.NewClient(quotes, markets.NewCoinGecko(cfg.CoinGeckoURL, client), cfg.MarketWorkers),
		Predictions: predictions.NewClient(cfg.PolymarketURL, client, cfg.PredictionLimit),
		Quakes:      quakes.NewClient(cfg.EarthquakeFeed, client),
	}
}

// IntervalsFrom maps the configured periods onto groups.
func IntervalsFrom(iv config.Intervals) map[Group]time.Duration {
	return map[Group]time.Duration{
		GroupNews:        iv.News,
		GroupMarkets:     iv.Markets,
		GroupPredictions: iv.Predictions,
		GroupEarthquakes: iv.Earthquakes,
	}
}
