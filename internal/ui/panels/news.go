package panels

import (
	"time"

	"worldmonitor/internal/news"
	"worldmonitor/internal/ui/textutil"
)

// NewsPanel lists the newest headlines of one category.
type NewsPanel struct {
	base
	items []news.Item
	now   func() time.Time
}

// NewNewsPanel returns an empty news panel.
func NewNewsPanel(key, title string) *NewsPanel {
	return &NewsPanel{base: newBase(key, title), now: time.Now}
}

// SetItems replaces the headlines.
func (p *NewsPanel) SetItems(items []news.Item) {
	p.items = items
}

// Items returns the current headlines.
func (p *NewsPanel) Items() []news.Item {
	return p.items
}

func (p *NewsPanel) View(width, height int) string {
	now := p.now()
	lines := make([]string, 0, len(p.items))
	for _, it := range p.items {
		tag := textutil.PadLeft(age(it.Published, now), 4)
		title := textutil.Truncate(it.Title, width-len(tag)-1)
		style := styles.Text
		if it.IsAlert {
			style = styles.Alert
		}
		lines = append(lines, style.Render(textutil.PadRight(title, width-len(tag)-1))+" "+styles.Muted.Render(tag))
	}
	return p.body(lines, width, height)
}
