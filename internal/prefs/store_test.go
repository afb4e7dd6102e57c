package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldmonitor/internal/layout"
	"worldmonitor/internal/monitor"
)

func backends(t *testing.T) map[string]func() *Store {
	t.Helper()
	return map[string]func() *Store{
		"file": func() *Store {
			return NewStore(NewFileBackend(filepath.Join(t.TempDir(), "state")))
		},
		"memory": func() *Store { return NewStore(NewMemoryBackend()) },
		"sqlite": func() *Store {
			s, err := Open(BackendSQLite, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}
}

func TestStore_DefaultsOnFirstRun(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open()
			assert.Empty(t, s.Monitors())
			assert.Nil(t, s.PanelOrder())
			_, ok := s.MapHeight()
			assert.False(t, ok)
			assert.Equal(t, layout.DefaultSettings(), s.PanelSettings(layout.DefaultSettings()))
			assert.Equal(t, map[string]bool{"hotspots": true}, s.MapLayers(map[string]bool{"hotspots": true}))
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open()
			mons := monitor.List{{ID: "a", Keywords: []string{"iran"}, Color: "#fff"}}
			require.NoError(t, s.SaveMonitors(mons))
			assert.Equal(t, mons, s.Monitors())

			require.NoError(t, s.SaveMapHeight(520))
			h, ok := s.MapHeight()
			require.True(t, ok)
			assert.Equal(t, 520, h)

			require.NoError(t, s.SaveMapLayers(map[string]bool{"hotspots": false, "gone": true}))
			layers := s.MapLayers(map[string]bool{"hotspots": true, "earthquakes": true})
			assert.Equal(t, map[string]bool{"hotspots": false, "earthquakes": true}, layers)
		})
	}
}

func TestStore_DragPersistReloadRestoresOrder(t *testing.T) {
	dir := t.TempDir()
	canonical := layout.CanonicalOrder()

	first := NewStore(NewFileBackend(dir))
	order := layout.NewOrder(layout.MergeOrder(first.PanelOrder(), canonical))
	drag, err := layout.StartDrag(order, "crypto")
	require.NoError(t, err)
	drag.Over(0, []layout.Rect{
		{Key: "politics", Top: 0, Height: 10},
		{Key: "crypto", Top: 10, Height: 10},
	})
	want := drag.End()
	require.Equal(t, "crypto", want[0])
	require.NoError(t, first.SavePanelOrder(want))

	fresh := NewStore(NewFileBackend(dir))
	got := layout.MergeOrder(fresh.PanelOrder(), canonical)
	assert.Equal(t, want, got)
}

func TestStore_FirstToggleOfNewPanelPersists(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	defaults := layout.DefaultSettings()
	old := defaults.Clone()
	delete(old, "polymarket")
	require.NoError(t, s.SavePanelSettings(old))

	settings := s.PanelSettings(defaults)
	assert.True(t, settings.Enabled("polymarket"))

	enabled, err := settings.Toggle("polymarket")
	require.NoError(t, err)
	assert.False(t, enabled)
	require.NoError(t, s.SavePanelSettings(settings))
	assert.False(t, s.PanelSettings(defaults).Enabled("polymarket"))
}

func TestStore_CorruptValuesFallBack(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(dir)
	require.NoError(t, b.Set(KeyMonitors, []byte("{not json")))
	require.NoError(t, b.Set(KeyOrder, []byte(`"politics"`)))
	require.NoError(t, b.Set(KeyMapHeight, []byte("tall")))
	require.NoError(t, b.Set(KeyPanels, []byte("[]")))

	s := NewStore(b)
	assert.Empty(t, s.Monitors())
	assert.Nil(t, s.PanelOrder())
	_, ok := s.MapHeight()
	assert.False(t, ok)
	assert.Equal(t, layout.DefaultSettings(), s.PanelSettings(layout.DefaultSettings()))
}

func TestFileBackend_Layout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	b := NewFileBackend(dir)
	assert.Equal(t, dir, b.Dir())

	_, ok, err := b.Get("panel-order")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set("Panel Order", []byte(`["tech"]`)))
	data, err := os.ReadFile(filepath.Join(dir, "panel-order.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `["tech"]`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	assert.Error(t, err)
}
