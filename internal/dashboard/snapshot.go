package dashboard

import (
	"time"

	"worldmonitor/internal/geo"
	"worldmonitor/internal/layout"
	"worldmonitor/internal/monitor"
	"worldmonitor/internal/news"
	"worldmonitor/internal/predictions"
	"worldmonitor/internal/refresh"
)

// Snapshot is a consistent copy of the whole dashboard.
type Snapshot struct {
	Time        time.Time                 `json:"time"`
	Panels      layout.Settings           `json:"panels"`
	Order       []string                  `json:"order"`
	Visible     []string                  `json:"visible"`
	MapVisible  bool                      `json:"mapVisible"`
	MapHeight   int                       `json:"mapHeight"`
	Viewport    geo.Viewport              `json:"viewport"`
	Layers      map[string]bool           `json:"layers"`
	Hotspots    []geo.Hotspot             `json:"hotspots"`
	News        map[string][]news.Item    `json:"news"`
	Markets     MarketData                `json:"markets"`
	Predictions []predictions.Market      `json:"predictions"`
	Monitors    monitor.List              `json:"monitors"`
	Results     monitor.Results           `json:"monitorResults"`
	Status      map[string]refresh.Status `json:"status"`
}

// Snapshot copies the current state under a single read lock.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	newsCopy := make(map[string][]news.Item, len(d.news))
	for k, v := range d.news {
		newsCopy[k] = append([]news.Item(nil), v...)
	}
	results := make(monitor.Results, len(d.matches))
	for k, v := range d.matches {
		results[k] = append([]news.Item(nil), v...)
	}
	order := d.order.Keys()
	return Snapshot{
		Time:       d.now().UTC(),
		Panels:     d.settings.Clone(),
		Order:      order,
		Visible:    d.settings.Visible(order),
		MapVisible: d.settings.Enabled(layout.KeyMap),
		MapHeight:  d.resizer.Height,
		Viewport:   d.world.Viewport(),
		Layers:     d.world.Layers(),
		Hotspots:   d.world.Hotspots(),
		News:       newsCopy,
		Markets: MarketData{
			Stocks:      append(d.stocks[:0:0], d.stocks...),
			Sectors:     append(d.sectors[:0:0], d.sectors...),
			Commodities: append(d.commodities[:0:0], d.commodities...),
			Crypto:      append(d.coins[:0:0], d.coins...),
		},
		Predictions: append(d.predictions[:0:0], d.predictions...),
		Monitors:    d.monitors.Clone(),
		Results:     results,
		Status:      d.status.All(),
	}
}
