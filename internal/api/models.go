package api

import "worldmonitor/internal/layout"

// Response wraps every successful payload.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count,omitempty"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// PanelsView is the layout part of the state.
type PanelsView struct {
	Settings   layout.Settings `json:"settings"`
	Order      []string        `json:"order"`
	Visible    []string        `json:"visible"`
	MapVisible bool            `json:"mapVisible"`
}

// OrderRequest either moves one panel by Delta or replaces the whole
// order.
type OrderRequest struct {
	Key   string   `json:"key"`
	Delta int      `json:"delta"`
	Order []string `json:"order"`
}

// MonitorRequest creates or edits a monitor. Keywords are comma separated.
type MonitorRequest struct {
	Keywords string `json:"keywords" binding:"required"`
	Color    string `json:"color"`
}

// ViewRequest switches the preset, then applies zoom and pan steps.
type ViewRequest struct {
	View   string `json:"view"`
	Zoom   int    `json:"zoom"`
	PanLat int    `json:"panLat"`
	PanLon int    `json:"panLon"`
}

// HeightRequest sets the map section height in pixels for a viewport of the
// given height.
type HeightRequest struct {
	Height   int `json:"height" binding:"required"`
	Viewport int `json:"viewport"`
}

// LayersRequest sets some layer flags; the rest keep their state.
type LayersRequest struct {
	Layers map[string]bool `json:"layers" binding:"required"`
}
