// Package markets fetches stock, sector, commodity and crypto prices.
package markets

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

// ErrNoData is returned by a QuoteSource for symbols without a price.
var ErrNoData = errors.New("no quote data")

// Symbol is a tracked instrument.
type Symbol struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Display string `json:"display"`
}

// Quote is the latest price of a symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Display       string  `json:"display"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// SectorChange is one heatmap cell.
type SectorChange struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Change float64 `json:"change"`
}

// QuoteSource returns the price of a single symbol.
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// CryptoSource returns prices for a set of coins.
type CryptoSource interface {
	Coins(ctx context.Context) ([]Coin, error)
}

// Client fans out per-symbol requests for the market panels.
type Client struct {
	Quotes      QuoteSource
	Crypto      CryptoSource
	Workers     int
	Stocks      []Symbol
	Sectors     []Symbol
	Commodities []Symbol
}

// NewClient returns a client over the default symbol lists.
func NewClient(quotes QuoteSource, crypto CryptoSource, workers int) *Client {
	return &Client{
		Quotes:      quotes,
		Crypto:      crypto,
		Workers:     workers,
		Stocks:      DefaultStocks(),
		Sectors:     DefaultSectors(),
		Commodities: DefaultCommodities(),
	}
}

// StockQuotes returns quotes for the tracked stocks and indexes.
func (c *Client) StockQuotes(ctx context.Context) ([]Quote, error) {
	return c.fetch(ctx, "stocks", c.Stocks)
}

// SectorChanges returns the daily percent change of each sector ETF.
func (c *Client) SectorChanges(ctx context.Context) ([]SectorChange, error) {
	quotes, err := c.fetch(ctx, "sectors", c.Sectors)
	if err != nil {
		return nil, err
	}
	out := make([]SectorChange, len(quotes))
	for i, q := range quotes {
		out[i] = SectorChange{Symbol: q.Symbol, Name: q.Name, Change: q.ChangePercent}
	}
	return out, nil
}

// CommodityQuotes returns quotes for the commodity proxies.
func (c *Client) CommodityQuotes(ctx context.Context) ([]Quote, error) {
	return c.fetch(ctx, "commodities", c.Commodities)
}

// CryptoPrices returns coin prices.
func (c *Client) CryptoPrices(ctx context.Context) ([]Coin, error) {
	if c.Crypto == nil {
		return nil, errors.New("crypto: no source configured")
	}
	return c.Crypto.Coins(ctx)
}

// fetch requests every symbol with at most Workers requests in flight.
// Failed symbols are skipped; the call fails only if every symbol failed.
// Results keep the order of symbols.
func (c *Client) fetch(ctx context.Context, group string, symbols []Symbol) ([]Quote, error) {
	if c.Quotes == nil {
		return nil, fmt.Errorf("%s: no quote source configured", group)
	}
	if len(symbols) == 0 {
		return nil, nil
	}

	quotes := make([]Quote, len(symbols))
	errs := make([]error, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.Workers))
	for i, sym := range symbols {
		g.Go(func() error {
			q, err := c.Quotes.Quote(gctx, sym.Symbol)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", sym.Symbol, err)
				return nil
			}
			q.Symbol, q.Name, q.Display = sym.Symbol, sym.Name, sym.Display
			quotes[i] = q
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Quote, 0, len(symbols))
	var failed []error
	for i := range symbols {
		if errs[i] != nil {
			failed = append(failed, errs[i])
			continue
		}
		out = append(out, quotes[i])
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: every symbol failed: %w", group, errors.Join(failed...))
	}
	if len(failed) > 0 {
		log.Printf("markets.fetch: %s: %d of %d symbols failed: %v", group, len(failed), len(symbols), errors.Join(failed...))
	}
	return out, nil
}
