package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalOrder_ExcludesMapAndEndsWithMonitors(t *testing.T) {
	order := CanonicalOrder()
	assert.NotContains(t, order, KeyMap)
	assert.Equal(t, KeyMonitors, order[len(order)-1])
	assert.Equal(t, KeyPolitics, order[0])
}

func TestSettings_ToggleTwiceRestores(t *testing.T) {
	s := DefaultSettings()
	before := s.Clone()

	on, err := s.Toggle("tech")
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, s.Enabled("tech"))

	on, err = s.Toggle("tech")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, before, s)
}

func TestSettings_ToggleOnlyTouchesOnePanel(t *testing.T) {
	s := DefaultSettings()
	_, err := s.Toggle(KeyMap)
	require.NoError(t, err)

	for key, cfg := range s {
		if key == KeyMap {
			assert.False(t, cfg.Enabled)
			continue
		}
		assert.True(t, cfg.Enabled, key)
	}
}

func TestSettings_MissingEntryDefaultsEnabled(t *testing.T) {
	s := Settings{"politics": {Name: "World / Geopolitical", Enabled: false}}

	assert.True(t, s.Enabled("crypto"))

	on, err := s.Toggle("crypto")
	require.NoError(t, err)
	assert.False(t, on, "first toggle flips the default enabled state")
	assert.Equal(t, PanelConfig{Name: "Crypto", Enabled: false}, s["crypto"])
}

func TestSettings_ToggleUnknown(t *testing.T) {
	_, err := DefaultSettings().Toggle("weather")
	assert.ErrorIs(t, err, ErrUnknownPanel)
}

func TestMergeSettings(t *testing.T) {
	saved := Settings{
		"tech":    {Name: "Renamed", Enabled: false},
		"retired": {Name: "Retired", Enabled: true},
	}
	merged := MergeSettings(DefaultSettings(), saved)

	assert.Equal(t, PanelConfig{Name: "Technology", Enabled: false}, merged["tech"])
	assert.NotContains(t, merged, "retired")
	assert.True(t, merged.Enabled("crypto"))
	assert.Len(t, merged, len(Definitions()))
}

func TestSettings_Visible(t *testing.T) {
	s := DefaultSettings()
	s.Toggle("tech")
	assert.Equal(t, []string{"politics", "ai"}, s.Visible([]string{"politics", "tech", "ai"}))
}
