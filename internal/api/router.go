// Package api exposes the dashboard over a JSON HTTP API.
package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"worldmonitor/internal/dashboard"
	"worldmonitor/internal/refresh"
)

// defaultViewport is assumed when a height request names no viewport.
const defaultViewport = 1080

// Refresher runs every refresh group once.
type Refresher interface {
	RunAll(ctx context.Context, sink refresh.Sink)
}

// Server serves one dashboard.
type Server struct {
	dash      *dashboard.Dashboard
	refresher Refresher
	now       func() time.Time
}

// NewServer returns a server for dash. refresher may be nil, which disables
// POST /refresh.
func NewServer(dash *dashboard.Dashboard, refresher Refresher) *Server {
	return &Server{dash: dash, refresher: refresher, now: time.Now}
}

// Router builds the gin engine with every route under /api/v1.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", s.health)
		api.GET("/state", s.state)

		api.GET("/panels", s.panels)
		api.PUT("/panels/:key/toggle", s.togglePanel)
		api.PUT("/panels/order", s.movePanels)

		api.GET("/news", s.allNews)
		api.GET("/news/:category", s.newsByCategory)
		api.GET("/markets", s.markets)
		api.GET("/predictions", s.predictions)
		api.GET("/earthquakes", s.earthquakes)
		api.GET("/hotspots", s.hotspots)

		api.GET("/monitors", s.monitors)
		api.POST("/monitors", s.createMonitor)
		api.PUT("/monitors/:id", s.updateMonitor)
		api.DELETE("/monitors/:id", s.deleteMonitor)

		api.PUT("/map/view", s.setView)
		api.PUT("/map/height", s.setHeight)
		api.PUT("/map/layers", s.setLayers)

		api.POST("/refresh", s.refresh)
	}
	return r
}

func ok(c *gin.Context, status int, data any, count int) {
	c.JSON(status, Response{Success: true, Data: data, Count: count})
}

func fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: code, Message: message})
}
