package geo

import "slices"

// Layer keys.
const (
	LayerHotspots    = "hotspots"
	LayerEarthquakes = "earthquakes"
	LayerConflicts   = "conflicts"
	LayerBases       = "bases"
	LayerCables      = "cables"
	LayerNuclear     = "nuclear"
	LayerSanctions   = "sanctions"
)

var layerKeys = []string{
	LayerHotspots, LayerEarthquakes, LayerConflicts,
	LayerBases, LayerCables, LayerNuclear, LayerSanctions,
}

// LayerKeys returns every layer key in display order.
func LayerKeys() []string {
	return slices.Clone(layerKeys)
}

// DefaultLayers enables the layers the map has data for.
func DefaultLayers() map[string]bool {
	return map[string]bool{
		LayerHotspots:    true,
		LayerEarthquakes: true,
		LayerConflicts:   true,
		LayerBases:       false,
		LayerCables:      false,
		LayerNuclear:     false,
		LayerSanctions:   false,
	}
}

// IsLayer reports whether key names a known layer.
func IsLayer(key string) bool {
	return slices.Contains(layerKeys, key)
}
