package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldmonitor/internal/geo"
	"worldmonitor/internal/layout"
	"worldmonitor/internal/markets"
	"worldmonitor/internal/monitor"
	"worldmonitor/internal/news"
	"worldmonitor/internal/prefs"
	"worldmonitor/internal/quakes"
	"worldmonitor/internal/refresh"
)

func newTestDashboard(t *testing.T, store *prefs.Store) *Dashboard {
	t.Helper()
	if store == nil {
		store = prefs.NewStore(prefs.NewMemoryBackend())
	}
	d := New(store, DefaultOptions())
	d.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func headlines(titles ...string) []news.Item {
	out := make([]news.Item, len(titles))
	for i, title := range titles {
		out[i] = news.Item{
			Title:     title,
			Link:      "https://example.com/" + title,
			Published: time.Date(2026, 2, 1, 11, i, 0, 0, time.UTC),
		}
	}
	return out
}

func TestApply_GroupIsolation(t *testing.T) {
	d := newTestDashboard(t, nil)

	d.Apply(refresh.NewsResult{Category: "politics", Items: headlines("Iran vote"), Total: 1})
	d.Apply(refresh.StocksResult{Quotes: []markets.Quote{{Symbol: "SPY", Price: 500}}})
	d.Apply(refresh.QuakesResult{Outcome: refresh.Outcome{Err: errors.New("usgs down")}})

	assert.Len(t, d.News("politics"), 1)
	assert.Equal(t, "SPY", d.Markets().Stocks[0].Symbol)

	st, ok := d.StatusFor(refresh.KeyEarthquakes)
	require.True(t, ok)
	assert.Equal(t, refresh.StateError, st.State)
	assert.Equal(t, "usgs down", st.LastError)

	st, _ = d.StatusFor(refresh.KeyStocks)
	assert.Equal(t, refresh.StateDone, st.State)
}

func TestApply_FailureKeepsPreviousData(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.Apply(refresh.QuakesResult{Quakes: []quakes.Quake{{ID: "a", Magnitude: 5}}})
	d.Apply(refresh.QuakesResult{Outcome: refresh.Outcome{Err: errors.New("timeout")}})
	require.Len(t, d.Earthquakes(), 1)
	assert.Equal(t, "a", d.Earthquakes()[0].ID)
}

func TestApply_NewsPassUpdatesHotspotsAndMonitors(t *testing.T) {
	d := newTestDashboard(t, nil)
	m, err := d.AddMonitor("iran", "")
	require.NoError(t, err)
	assert.Empty(t, d.MonitorResults()[m.ID])

	items := headlines("Iran talks", "Tehran summit", "IRGC exercise", "Weather")
	d.Apply(refresh.NewsPassResult{Items: items})

	assert.Len(t, d.AllNews(), 4)
	assert.Len(t, d.MonitorResults()[m.ID], 1)

	top := d.Hotspots()[0]
	assert.Equal(t, "tehran", top.ID)
	assert.Equal(t, geo.LevelHigh, top.Level)
}

func TestMonitors_AddingLeavesOtherResultsIdentical(t *testing.T) {
	store := prefs.NewStore(prefs.NewMemoryBackend())
	d := newTestDashboard(t, store)
	china, err := d.AddMonitor("china", "")
	require.NoError(t, err)
	fed, err := d.AddMonitor("fed", "")
	require.NoError(t, err)
	d.Apply(refresh.NewsPassResult{Items: headlines("China exports", "Fed minutes", "China and Fed")})
	before := d.MonitorResults()

	added, err := d.AddMonitor("exports", "")
	require.NoError(t, err)
	after := d.MonitorResults()

	assert.Equal(t, before[china.ID], after[china.ID])
	assert.Equal(t, before[fed.ID], after[fed.ID])
	assert.Len(t, after[added.ID], 1)
	assert.Len(t, store.Monitors(), 3, "mutations persist the full list")
}

func TestMonitors_UpdateAndRemove(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.Apply(refresh.NewsPassResult{Items: headlines("Oil rally", "Gas shortage")})
	m, err := d.AddMonitor("oil", "#123456")
	require.NoError(t, err)
	require.Len(t, d.MonitorResults()[m.ID], 1)

	updated, err := d.UpdateMonitor(m.ID, "gas, oil", "")
	require.NoError(t, err)
	assert.Equal(t, "#123456", updated.Color)
	assert.Len(t, d.MonitorResults()[m.ID], 2)

	_, err = d.UpdateMonitor("nope", "x", "")
	assert.ErrorIs(t, err, monitor.ErrNotFound)
	_, err = d.AddMonitor(" , ", "")
	assert.ErrorIs(t, err, monitor.ErrEmptyKeywords)

	require.NoError(t, d.RemoveMonitor(m.ID))
	assert.Empty(t, d.Monitors())
	_, ok := d.MonitorResults()[m.ID]
	assert.False(t, ok)
}

func TestTogglePanel_PersistsAndIsolated(t *testing.T) {
	store := prefs.NewStore(prefs.NewMemoryBackend())
	d := newTestDashboard(t, store)
	before := d.PanelSettings()

	on, err := d.TogglePanel("crypto")
	require.NoError(t, err)
	assert.False(t, on)
	assert.NotContains(t, d.VisiblePanels(), "crypto")
	assert.False(t, store.PanelSettings(layout.DefaultSettings()).Enabled("crypto"))

	on, err = d.TogglePanel("crypto")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, before, d.PanelSettings())

	_, err = d.TogglePanel("weather")
	assert.ErrorIs(t, err, layout.ErrUnknownPanel)
}

func TestTogglePanel_MapSection(t *testing.T) {
	d := newTestDashboard(t, nil)
	require.True(t, d.MapVisible())
	_, err := d.TogglePanel(layout.KeyMap)
	require.NoError(t, err)
	assert.False(t, d.MapVisible())
	assert.NotContains(t, d.Order(), layout.KeyMap)
}

func TestDrag_PersistReloadRoundTrip(t *testing.T) {
	backend := prefs.NewMemoryBackend()
	d := newTestDashboard(t, prefs.NewStore(backend))

	require.NoError(t, d.BeginDrag("heatmap"))
	assert.Equal(t, "heatmap", d.Dragging())
	moved := d.DragOver(1, []layout.Rect{
		{Key: "politics", Top: 0, Height: 4},
		{Key: "middleeast", Top: 4, Height: 4},
		{Key: "heatmap", Top: 8, Height: 4},
	})
	require.True(t, moved)
	order, err := d.EndDrag()
	require.NoError(t, err)
	assert.Equal(t, "heatmap", order[0])
	assert.Empty(t, d.Dragging())

	reloaded := newTestDashboard(t, prefs.NewStore(backend))
	assert.Equal(t, order, reloaded.Order())

	_, err = d.EndDrag()
	assert.ErrorIs(t, err, ErrNoDrag)
}

func TestDrag_MonitorsStayPinned(t *testing.T) {
	d := newTestDashboard(t, nil)
	require.NoError(t, d.BeginDrag(layout.KeyMonitors))
	d.DragOver(0, []layout.Rect{{Key: "politics", Top: 0, Height: 4}})
	order, err := d.EndDrag()
	require.NoError(t, err)
	assert.Equal(t, layout.KeyMonitors, order[len(order)-1])
}

func TestDrag_OrderChangesRejectedMidDrag(t *testing.T) {
	backend := prefs.NewMemoryBackend()
	d := newTestDashboard(t, prefs.NewStore(backend))

	require.NoError(t, d.BeginDrag("heatmap"))
	require.True(t, d.DragOver(1, []layout.Rect{
		{Key: "politics", Top: 0, Height: 4},
		{Key: "heatmap", Top: 4, Height: 4},
	}))

	_, err := d.SetOrder([]string{"tech", "politics"})
	assert.ErrorIs(t, err, ErrDragInProgress)
	_, err = d.MovePanel("tech", -1)
	assert.ErrorIs(t, err, ErrDragInProgress)
	assert.Equal(t, "heatmap", d.Order()[0], "the drag keeps its moves")

	order, err := d.EndDrag()
	require.NoError(t, err)
	assert.Equal(t, "heatmap", order[0])
	assert.Equal(t, order, newTestDashboard(t, prefs.NewStore(backend)).Order())

	_, err = d.MovePanel("tech", -1)
	assert.NoError(t, err, "order changes resume after the drag")
}

func TestMovePanel(t *testing.T) {
	d := newTestDashboard(t, nil)
	moved, err := d.MovePanel("middleeast", -1)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"middleeast", "politics"}, d.Order()[:2])

	moved, err = d.MovePanel("middleeast", -1)
	require.NoError(t, err)
	assert.False(t, moved)

	_, err = d.MovePanel("nope", 1)
	assert.ErrorIs(t, err, layout.ErrUnknownPanel)
}

func TestSetOrder_MergesAgainstCanonical(t *testing.T) {
	d := newTestDashboard(t, nil)
	got, err := d.SetOrder([]string{"monitors", "tech", "bogus"})
	require.NoError(t, err)
	assert.Equal(t, []string{"politics", "middleeast", "tech"}, got[:3])
	assert.Equal(t, "monitors", got[len(got)-1])
	assert.NotContains(t, got, "bogus")
	assert.Len(t, got, len(layout.CanonicalOrder()))
}

func TestMapHeight_ClampedAndPersisted(t *testing.T) {
	store := prefs.NewStore(prefs.NewMemoryBackend())
	d := newTestDashboard(t, store)

	h, err := d.SetMapHeight(5000, 1000)
	require.NoError(t, err)
	assert.Equal(t, 850, h)

	d.BeginResize(100)
	assert.True(t, d.Resizing())
	assert.Equal(t, 400, d.ResizeTo(-1000, 1000))
	h, err = d.EndResize()
	require.NoError(t, err)
	assert.Equal(t, 400, h)

	saved, ok := store.MapHeight()
	require.True(t, ok)
	assert.Equal(t, 400, saved)
	assert.Equal(t, 400, newTestDashboard(t, store).MapHeight())

	_, err = d.EndResize()
	assert.ErrorIs(t, err, ErrNoDrag)
}

func TestLayers(t *testing.T) {
	store := prefs.NewStore(prefs.NewMemoryBackend())
	d := newTestDashboard(t, store)

	layers, err := d.SetLayers(map[string]bool{geo.LayerCables: true})
	require.NoError(t, err)
	assert.True(t, layers[geo.LayerCables])
	assert.True(t, store.MapLayers(geo.DefaultLayers())[geo.LayerCables])

	on, err := d.ToggleLayer(geo.LayerHotspots)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = d.SetLayers(map[string]bool{"weather": true})
	assert.Error(t, err)
	_, err = d.ToggleLayer("weather")
	assert.Error(t, err)
}

func TestViewControls(t *testing.T) {
	d := newTestDashboard(t, nil)
	assert.Equal(t, geo.ViewGlobal, d.Viewport().View)
	require.NoError(t, d.SetView(geo.ViewMENA))
	assert.Equal(t, 2, d.Zoom(1))
	d.Pan(1, 0)
	assert.Equal(t, geo.ViewMENA, d.Viewport().View)
	assert.Error(t, d.SetView("mars"))
	assert.Len(t, d.RenderMap(40, 10), 10)
}

func TestSnapshot(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.Apply(refresh.NewsResult{Category: "tech", Items: headlines("Chips")})
	snap := d.Snapshot()

	assert.Equal(t, d.Order(), snap.Order)
	assert.True(t, snap.MapVisible)
	assert.Len(t, snap.News["tech"], 1)
	assert.Contains(t, snap.Status, "tech")

	snap.News["tech"][0].Title = "mutated"
	assert.Equal(t, "Chips", d.News("tech")[0].Title)
}
