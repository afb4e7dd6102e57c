package panels

import (
	"fmt"

	"worldmonitor/internal/predictions"
	"worldmonitor/internal/ui/textutil"
)

// PredictionPanel lists prediction markets with their yes probability.
type PredictionPanel struct {
	base
	markets []predictions.Market
}

// NewPredictionPanel returns an empty prediction panel.
func NewPredictionPanel(key, title string) *PredictionPanel {
	return &PredictionPanel{base: newBase(key, title)}
}

// SetMarkets replaces the markets.
func (p *PredictionPanel) SetMarkets(m []predictions.Market) {
	p.markets = m
}

func (p *PredictionPanel) View(width, height int) string {
	lines := make([]string, 0, len(p.markets))
	for _, m := range p.markets {
		pct := m.YesPercent()
		tag := textutil.PadLeft(fmt.Sprintf("%.0f%%", pct), 5)
		style := styles.Muted
		switch {
		case pct >= 70:
			style = styles.Up
		case pct <= 30:
			style = styles.Down
		}
		lines = append(lines, styles.Text.Render(textutil.PadRight(m.Question, max(1, width-6)))+" "+style.Render(tag))
	}
	return p.body(lines, width, height)
}
