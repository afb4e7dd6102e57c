package panels

import (
	"fmt"
	"strings"

	"worldmonitor/internal/markets"
	"worldmonitor/internal/ui/textutil"
)

// MarketPanel lists stock and index quotes.
type MarketPanel struct {
	base
	quotes []markets.Quote
}

// NewMarketPanel returns an empty quote panel.
func NewMarketPanel(key, title string) *MarketPanel {
	return &MarketPanel{base: newBase(key, title)}
}

// SetQuotes replaces the quotes.
func (p *MarketPanel) SetQuotes(q []markets.Quote) {
	p.quotes = q
}

func (p *MarketPanel) View(width, height int) string {
	return p.body(quoteLines(p.quotes, width), width, height)
}

// CommoditiesPanel lists commodity quotes.
type CommoditiesPanel struct {
	base
	quotes []markets.Quote
}

// NewCommoditiesPanel returns an empty commodities panel.
func NewCommoditiesPanel(key, title string) *CommoditiesPanel {
	return &CommoditiesPanel{base: newBase(key, title)}
}

// SetCommodities replaces the quotes.
func (p *CommoditiesPanel) SetCommodities(q []markets.Quote) {
	p.quotes = q
}

func (p *CommoditiesPanel) View(width, height int) string {
	return p.body(quoteLines(p.quotes, width), width, height)
}

func quoteLines(quotes []markets.Quote, width int) []string {
	lines := make([]string, 0, len(quotes))
	for _, q := range quotes {
		name := q.Display
		if name == "" {
			name = q.Symbol
		}
		price := textutil.PadLeft(fmt.Sprintf("%.2f", q.Price), 10)
		change := textutil.PadLeft(fmt.Sprintf("%+.2f%%", q.ChangePercent), 8)
		label := textutil.PadRight(name, max(1, width-20))
		lines = append(lines, styles.Text.Render(label)+price+" "+changeStyle(q.ChangePercent).Render(change))
	}
	return lines
}

// HeatmapPanel shows sector changes as a grid of colored cells.
type HeatmapPanel struct {
	base
	sectors []markets.SectorChange
}

// NewHeatmapPanel returns an empty heatmap panel.
func NewHeatmapPanel(key, title string) *HeatmapPanel {
	return &HeatmapPanel{base: newBase(key, title)}
}

// SetSectors replaces the sector changes.
func (p *HeatmapPanel) SetSectors(s []markets.SectorChange) {
	p.sectors = s
}

func (p *HeatmapPanel) View(width, height int) string {
	const cell = 14
	perRow := max(1, width/cell)
	var lines []string
	var row strings.Builder
	for i, s := range p.sectors {
		text := textutil.PadRight(fmt.Sprintf("%s %+.1f", s.Name, s.Change), cell-1)
		row.WriteString(changeStyle(s.Change).Render(text) + " ")
		if (i+1)%perRow == 0 {
			lines = append(lines, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		lines = append(lines, row.String())
	}
	return p.body(lines, width, height)
}

// CryptoPanel lists coin prices.
type CryptoPanel struct {
	base
	coins []markets.Coin
}

// NewCryptoPanel returns an empty crypto panel.
func NewCryptoPanel(key, title string) *CryptoPanel {
	return &CryptoPanel{base: newBase(key, title)}
}

// SetCoins replaces the coin prices.
func (p *CryptoPanel) SetCoins(c []markets.Coin) {
	p.coins = c
}

func (p *CryptoPanel) View(width, height int) string {
	lines := make([]string, 0, len(p.coins))
	for _, c := range p.coins {
		label := textutil.PadRight(c.Symbol+" "+c.Name, max(1, width-22))
		price := textutil.PadLeft(fmt.Sprintf("$%.2f", c.Price), 12)
		change := textutil.PadLeft(fmt.Sprintf("%+.2f%%", c.Change24h), 8)
		lines = append(lines, styles.Text.Render(label)+price+" "+changeStyle(c.Change24h).Render(change))
	}
	return p.body(lines, width, height)
}
