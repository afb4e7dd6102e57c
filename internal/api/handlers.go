package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"worldmonitor/internal/dashboard"
	"worldmonitor/internal/geo"
	"worldmonitor/internal/layout"
	"worldmonitor/internal/monitor"
	"worldmonitor/internal/news"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": s.now()})
}

func (s *Server) state(c *gin.Context) {
	ok(c, http.StatusOK, s.dash.Snapshot(), 0)
}

func (s *Server) panelsView() PanelsView {
	return PanelsView{
		Settings:   s.dash.PanelSettings(),
		Order:      s.dash.Order(),
		Visible:    s.dash.VisiblePanels(),
		MapVisible: s.dash.MapVisible(),
	}
}

func (s *Server) panels(c *gin.Context) {
	ok(c, http.StatusOK, s.panelsView(), 0)
}

func (s *Server) togglePanel(c *gin.Context) {
	key := c.Param("key")
	enabled, err := s.dash.TogglePanel(key)
	if errors.Is(err, layout.ErrUnknownPanel) {
		fail(c, http.StatusNotFound, "panel_not_found", err.Error())
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	ok(c, http.StatusOK, gin.H{"key": key, "enabled": enabled}, 0)
}

func (s *Server) movePanels(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	var err error
	switch {
	case len(req.Order) > 0:
		_, err = s.dash.SetOrder(req.Order)
	case req.Key != "":
		_, err = s.dash.MovePanel(req.Key, req.Delta)
	default:
		fail(c, http.StatusBadRequest, "invalid_request", "either order or key is required")
		return
	}
	if errors.Is(err, layout.ErrUnknownPanel) {
		fail(c, http.StatusNotFound, "panel_not_found", err.Error())
		return
	}
	if errors.Is(err, dashboard.ErrDragInProgress) {
		fail(c, http.StatusConflict, "drag_in_progress", err.Error())
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	ok(c, http.StatusOK, s.panelsView(), 0)
}

// limitItems applies the optional ?limit query parameter.
func limitItems(c *gin.Context, items []news.Item) ([]news.Item, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return items, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		fail(c, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
		return nil, false
	}
	return items[:min(n, len(items))], true
}

func (s *Server) allNews(c *gin.Context) {
	items, valid := limitItems(c, s.dash.AllNews())
	if !valid {
		return
	}
	ok(c, http.StatusOK, items, len(items))
}

func (s *Server) newsByCategory(c *gin.Context) {
	category := c.Param("category")
	known := false
	for _, cat := range news.DefaultCategories() {
		if cat.Key == category {
			known = true
			break
		}
	}
	if !known {
		fail(c, http.StatusNotFound, "category_not_found", "news category not found: "+category)
		return
	}
	items, valid := limitItems(c, s.dash.News(category))
	if !valid {
		return
	}
	ok(c, http.StatusOK, items, len(items))
}

func (s *Server) markets(c *gin.Context) {
	ok(c, http.StatusOK, s.dash.Markets(), 0)
}

func (s *Server) predictions(c *gin.Context) {
	m := s.dash.Predictions()
	ok(c, http.StatusOK, m, len(m))
}

func (s *Server) earthquakes(c *gin.Context) {
	q := s.dash.Earthquakes()
	ok(c, http.StatusOK, q, len(q))
}

func (s *Server) hotspots(c *gin.Context) {
	h := s.dash.Hotspots()
	ok(c, http.StatusOK, h, len(h))
}

func (s *Server) monitors(c *gin.Context) {
	list := s.dash.Monitors()
	ok(c, http.StatusOK, gin.H{"monitors": list, "results": s.dash.MonitorResults()}, len(list))
}

// monitorError maps a monitor mutation error to a response.
func monitorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, monitor.ErrEmptyKeywords):
		fail(c, http.StatusBadRequest, "invalid_monitor", err.Error())
	case errors.Is(err, monitor.ErrNotFound):
		fail(c, http.StatusNotFound, "monitor_not_found", err.Error())
	default:
		fail(c, http.StatusInternalServerError, "save_failed", err.Error())
	}
}

func (s *Server) createMonitor(c *gin.Context) {
	var req MonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	m, err := s.dash.AddMonitor(req.Keywords, req.Color)
	if err != nil {
		monitorError(c, err)
		return
	}
	ok(c, http.StatusCreated, m, 0)
}

func (s *Server) updateMonitor(c *gin.Context) {
	var req MonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	m, err := s.dash.UpdateMonitor(c.Param("id"), req.Keywords, req.Color)
	if err != nil {
		monitorError(c, err)
		return
	}
	ok(c, http.StatusOK, m, 0)
}

func (s *Server) deleteMonitor(c *gin.Context) {
	if err := s.dash.RemoveMonitor(c.Param("id")); err != nil {
		monitorError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) setView(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.View != "" {
		if err := s.dash.SetView(strings.ToLower(req.View)); err != nil {
			fail(c, http.StatusBadRequest, "unknown_view", err.Error())
			return
		}
	}
	if req.Zoom != 0 {
		s.dash.Zoom(req.Zoom)
	}
	if req.PanLat != 0 || req.PanLon != 0 {
		s.dash.Pan(req.PanLat, req.PanLon)
	}
	ok(c, http.StatusOK, s.dash.Viewport(), 0)
}

func (s *Server) setHeight(c *gin.Context) {
	var req HeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	viewport := req.Viewport
	if viewport <= 0 {
		viewport = defaultViewport
	}
	h, err := s.dash.SetMapHeight(req.Height, viewport)
	if err != nil {
		fail(c, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	ok(c, http.StatusOK, gin.H{"height": h}, 0)
}

func (s *Server) setLayers(c *gin.Context) {
	var req LayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	for k := range req.Layers {
		if !geo.IsLayer(k) {
			fail(c, http.StatusBadRequest, "unknown_layer", "unknown layer: "+k)
			return
		}
	}
	layers, err := s.dash.SetLayers(req.Layers)
	if err != nil {
		fail(c, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	ok(c, http.StatusOK, layers, 0)
}

func (s *Server) refresh(c *gin.Context) {
	if s.refresher == nil {
		fail(c, http.StatusServiceUnavailable, "refresh_unavailable", "no scheduler configured")
		return
	}
	go s.refresher.RunAll(context.WithoutCancel(c.Request.Context()), s.dash)
	c.JSON(http.StatusAccepted, gin.H{"success": true, "status": "refresh started"})
}
