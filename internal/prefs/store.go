// Package prefs persists dashboard preferences: monitors, panel settings,
// map layers, panel order and map height.
package prefs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"worldmonitor/internal/jsonutil"
	"worldmonitor/internal/layout"
	"worldmonitor/internal/monitor"
)

// Storage keys.
const (
	KeyMonitors  = "worldmonitor-monitors"
	KeyPanels    = "worldmonitor-panels"
	KeyLayers    = "worldmonitor-layers"
	KeyOrder     = "panel-order"
	KeyMapHeight = "map-height"
)

// Backend kinds accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store reads and writes typed preferences over a Backend.
// Reads never fail: missing or corrupt values yield the default.
type Store struct {
	backend Backend
	closer  func() error
}

// NewStore wraps backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open returns a store for the named backend rooted at dir.
func Open(kind, dir string) (*Store, error) {
	switch kind {
	case "", BackendFile:
		return NewStore(NewFileBackend(dir)), nil
	case BackendMemory:
		return NewStore(NewMemoryBackend()), nil
	case BackendSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
		db, err := OpenSQLite(filepath.Join(dir, "prefs.db"))
		if err != nil {
			return nil, err
		}
		return &Store{backend: db, closer: db.Close}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", kind)
	}
}

// Close releases the backend, if it holds resources.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Load decodes key into a value of type T, returning fallback when the key
// is missing or cannot be read or decoded.
func Load[T any](s *Store, key string, fallback T) T {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		log.Printf("prefs.Load: read %s: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	v, err := jsonutil.DecodeOr(data, fallback)
	if err != nil {
		log.Printf("prefs.Load: %s: %v", key, err)
	}
	return v
}

// Save encodes v under key.
func Save(s *Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Monitors returns the saved monitor list, empty on first run.
func (s *Store) Monitors() monitor.List {
	return Load(s, KeyMonitors, monitor.List{})
}

// SaveMonitors persists the full monitor list.
func (s *Store) SaveMonitors(l monitor.List) error {
	return Save(s, KeyMonitors, l)
}

// PanelSettings merges saved settings over defaults.
func (s *Store) PanelSettings(defaults layout.Settings) layout.Settings {
	saved := Load[layout.Settings](s, KeyPanels, nil)
	return layout.MergeSettings(defaults, saved)
}

// SavePanelSettings persists the full settings map.
func (s *Store) SavePanelSettings(settings layout.Settings) error {
	return Save(s, KeyPanels, settings)
}

// MapLayers merges saved layer flags over defaults. Unknown layers are
// dropped.
func (s *Store) MapLayers(defaults map[string]bool) map[string]bool {
	saved := Load[map[string]bool](s, KeyLayers, nil)
	out := make(map[string]bool, len(defaults))
	for k, v := range defaults {
		if sv, ok := saved[k]; ok {
			v = sv
		}
		out[k] = v
	}
	return out
}

// SaveMapLayers persists the layer flags.
func (s *Store) SaveMapLayers(layers map[string]bool) error {
	return Save(s, KeyLayers, layers)
}

// PanelOrder returns the saved order, or nil when absent or unreadable.
func (s *Store) PanelOrder() []string {
	return Load[[]string](s, KeyOrder, nil)
}

// SavePanelOrder persists the grid order.
func (s *Store) SavePanelOrder(keys []string) error {
	return Save(s, KeyOrder, keys)
}

// MapHeight returns the saved map height. ok is false when absent,
// unreadable or not a positive integer.
func (s *Store) MapHeight() (int, bool) {
	data, ok, err := s.backend.Get(KeyMapHeight)
	if err != nil || !ok {
		return 0, false
	}
	h, err := strconv.Atoi(string(data))
	if err != nil || h <= 0 {
		return 0, false
	}
	return h, true
}

// SaveMapHeight persists the map height.
func (s *Store) SaveMapHeight(h int) error {
	if err := s.backend.Set(KeyMapHeight, []byte(strconv.Itoa(h))); err != nil {
		return fmt.Errorf("save %s: %w", KeyMapHeight, err)
	}
	return nil
}
