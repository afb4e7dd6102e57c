// Package dashboard is the orchestrator: the single owner of panel layout,
// preferences, monitors, map state and the latest fetched data.
package dashboard

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"worldmonitor/internal/geo"
	"worldmonitor/internal/layout"
	"worldmonitor/internal/markets"
	"worldmonitor/internal/monitor"
	"worldmonitor/internal/news"
	"worldmonitor/internal/predictions"
	"worldmonitor/internal/prefs"
	"worldmonitor/internal/quakes"
	"worldmonitor/internal/refresh"
)

// Options sizes the map section. Heights are in whatever unit the front
// end measures: pixels for the API, rows for the terminal.
type Options struct {
	MinMapHeight     int
	MaxMapFraction   float64
	DefaultMapHeight int
}

// DefaultOptions uses pixel bounds.
func DefaultOptions() Options {
	return Options{
		MinMapHeight:     layout.DefaultMinMapHeight,
		MaxMapFraction:   layout.DefaultMaxMapFraction,
		DefaultMapHeight: 500,
	}
}

// Dashboard holds all mutable dashboard state. It is safe for concurrent
// use: refresh results, user actions and readers are serialized by mu.
type Dashboard struct {
	mu sync.RWMutex

	store    *prefs.Store
	settings layout.Settings
	order    *layout.Order
	drag     *layout.Drag
	resizer  *layout.Resizer
	world    *geo.Map

	monitors monitor.List
	matches  monitor.Results

	news        map[string][]news.Item
	allNews     []news.Item
	stocks      []markets.Quote
	sectors     []markets.SectorChange
	commodities []markets.Quote
	coins       []markets.Coin
	predictions []predictions.Market
	status      *refresh.Tracker

	now func() time.Time
}

// New loads preferences from store and builds the initial state.
func New(store *prefs.Store, opts Options) *Dashboard {
	height := opts.DefaultMapHeight
	if h, ok := store.MapHeight(); ok {
		height = h
	}
	d := &Dashboard{
		store:    store,
		settings: store.PanelSettings(layout.DefaultSettings()),
		order:    layout.NewOrder(layout.MergeOrder(store.PanelOrder(), layout.CanonicalOrder())),
		resizer:  layout.NewResizer(opts.MinMapHeight, opts.MaxMapFraction, max(height, opts.MinMapHeight)),
		world:    geo.New(store.MapLayers(geo.DefaultLayers())),
		monitors: store.Monitors(),
		news:     make(map[string][]news.Item),
		status:   refresh.NewTracker(),
		now:      time.Now,
	}
	d.matches = monitor.Evaluate(d.monitors, nil)
	return d
}

// Apply implements refresh.Sink. A failed result only updates the status
// of its key; the previous data stays on screen.
func (d *Dashboard) Apply(r refresh.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.status.Record(r, d.now())
	if r.Failure() != nil {
		return
	}
	switch v := r.(type) {
	case refresh.NewsResult:
		d.news[v.Category] = v.Items
	case refresh.NewsPassResult:
		d.allNews = v.Items
		d.world.UpdateHotspots(v.Items)
		d.evaluateAll(v.Items)
		if len(v.Failed) > 0 {
			log.Printf("dashboard.Apply: news pass finished with %d failed categories: %v", len(v.Failed), v.Failed)
		}
	case refresh.StocksResult:
		d.stocks = v.Quotes
	case refresh.SectorsResult:
		d.sectors = v.Sectors
	case refresh.CommoditiesResult:
		d.commodities = v.Quotes
	case refresh.CryptoResult:
		d.coins = v.Coins
	case refresh.PredictionsResult:
		d.predictions = v.Markets
	case refresh.QuakesResult:
		d.world.SetEarthquakes(v.Quakes)
	default:
		log.Printf("dashboard.Apply: unhandled result %T", r)
	}
}

// Status returns the refresh status of every result key.
func (d *Dashboard) Status() map[string]refresh.Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status.All()
}

// StatusFor returns the refresh status of one key.
func (d *Dashboard) StatusFor(key string) (refresh.Status, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status.Get(key)
}

// News returns the latest items of a category.
func (d *Dashboard) News(category string) []news.Item {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.news[category])
}

// AllNews returns the combined list from the last completed news pass.
func (d *Dashboard) AllNews() []news.Item {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.allNews)
}

// Markets returns the latest data of the four market panels.
func (d *Dashboard) Markets() MarketData {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return MarketData{
		Stocks:      slices.Clone(d.stocks),
		Sectors:     slices.Clone(d.sectors),
		Commodities: slices.Clone(d.commodities),
		Crypto:      slices.Clone(d.coins),
	}
}

// Predictions returns the latest prediction markets.
func (d *Dashboard) Predictions() []predictions.Market {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.predictions)
}

// Earthquakes returns the map's earthquake overlay.
func (d *Dashboard) Earthquakes() []quakes.Quake {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.world.Earthquakes()
}

// Hotspots returns hotspot activity, busiest first.
func (d *Dashboard) Hotspots() []geo.Hotspot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.world.Hotspots()
}

// MarketData groups the market panels' payloads.
type MarketData struct {
	Stocks      []markets.Quote        `json:"stocks"`
	Sectors     []markets.SectorChange `json:"sectors"`
	Commodities []markets.Quote        `json:"commodities"`
	Crypto      []markets.Coin         `json:"crypto"`
}

// saveErr logs and wraps a persistence failure. The in-memory change is
// kept either way.
func saveErr(what string, err error) error {
	if err == nil {
		return nil
	}
	log.Printf("dashboard: persist %s: %v", what, err)
	return fmt.Errorf("persist %s: %w", what, err)
}

// ErrNoDrag is returned when a drag call arrives without a drag in progress.
var ErrNoDrag = errors.New("no drag in progress")

// ErrDragInProgress is returned by order changes that arrive while a drag
// owns the order.
var ErrDragInProgress = errors.New("panel drag in progress")
