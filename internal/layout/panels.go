package layout

import (
	"errors"
	"fmt"
)

// Panel keys with special handling.
const (
	KeyMap      = "map"
	KeyPolitics = "politics"
	KeyMonitors = "monitors"
)

// ErrUnknownPanel is returned for keys that are not part of the panel set.
var ErrUnknownPanel = errors.New("unknown panel")

// PanelConfig is the persisted per-panel setting.
type PanelConfig struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Definition names a panel in canonical order.
type Definition struct {
	Key  string
	Name string
}

var definitions = []Definition{
	{KeyMap, "Global Map"},
	{"politics", "World / Geopolitical"},
	{"middleeast", "Middle East"},
	{"tech", "Technology"},
	{"ai", "AI / ML"},
	{"finance", "Financial"},
	{"gov", "Government"},
	{"layoffs", "Layoffs Tracker"},
	{"thinktanks", "Think Tanks"},
	{"energy", "Energy & Resources"},
	{"intel", "Intel Feed"},
	{"markets", "Markets"},
	{"heatmap", "Sector Heatmap"},
	{"commodities", "Commodities"},
	{"crypto", "Crypto"},
	{"polymarket", "Predictions"},
	{KeyMonitors, "My Monitors"},
}

// Definitions returns every panel definition, map first.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// Lookup returns the definition for key.
func Lookup(key string) (Definition, bool) {
	for _, d := range definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// CanonicalOrder returns the default grid order. The map section is not a
// grid panel and is excluded.
func CanonicalOrder() []string {
	keys := make([]string, 0, len(definitions)-1)
	for _, d := range definitions {
		if d.Key != KeyMap {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// Settings maps panel key to its config.
type Settings map[string]PanelConfig

// DefaultSettings returns every panel enabled.
func DefaultSettings() Settings {
	s := make(Settings, len(definitions))
	for _, d := range definitions {
		s[d.Key] = PanelConfig{Name: d.Name, Enabled: true}
	}
	return s
}

// MergeSettings overlays saved onto defaults. Keys unknown to defaults are
// dropped; names always come from defaults.
func MergeSettings(defaults, saved Settings) Settings {
	out := make(Settings, len(defaults))
	for key, def := range defaults {
		cfg := def
		if s, ok := saved[key]; ok {
			cfg.Enabled = s.Enabled
		}
		out[key] = cfg
	}
	return out
}

// Clone returns an independent copy.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Enabled reports whether key is visible. Panels without an entry are
// enabled.
func (s Settings) Enabled(key string) bool {
	cfg, ok := s[key]
	if !ok {
		return true
	}
	return cfg.Enabled
}

// Toggle flips key's enabled flag and returns the new value. A known panel
// with no entry yet starts from the default {enabled: true}.
func (s Settings) Toggle(key string) (bool, error) {
	cfg, ok := s[key]
	if !ok {
		def, known := Lookup(key)
		if !known {
			return false, fmt.Errorf("%w: %q", ErrUnknownPanel, key)
		}
		cfg = PanelConfig{Name: def.Name, Enabled: true}
	}
	cfg.Enabled = !cfg.Enabled
	s[key] = cfg
	return cfg.Enabled, nil
}

// Visible filters keys down to the enabled ones, preserving order.
func (s Settings) Visible(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if s.Enabled(k) {
			out = append(out, k)
		}
	}
	return out
}
