package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldmonitor/internal/prefs"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(StateDirEnv, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.StateDir)
	assert.Equal(t, prefs.BackendFile, cfg.StoreBackend)
	assert.Equal(t, 5*time.Minute, cfg.Intervals.News)
	assert.Equal(t, time.Minute, cfg.Intervals.Markets)
	assert.Equal(t, 5*time.Minute, cfg.Intervals.Predictions)
	assert.Equal(t, 5*time.Minute, cfg.Intervals.Earthquakes)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 4, cfg.MarketWorkers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(StateDirEnv, t.TempDir())
	t.Setenv("WORLDMONITOR_MARKETS_INTERVAL", "30s")
	t.Setenv("WORLDMONITOR_STORE", "sqlite")
	t.Setenv("WORLDMONITOR_FINNHUB_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Intervals.Markets)
	assert.Equal(t, prefs.BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "secret", cfg.FinnhubAPIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(StateDirEnv, dir)
	writeFile(t, dir+"/.env", "WORLDMONITOR_PREDICTION_LIMIT=7\n")
	t.Cleanup(func() { unsetenv("WORLDMONITOR_PREDICTION_LIMIT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.PredictionLimit)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(StateDirEnv, t.TempDir())
	t.Setenv("WORLDMONITOR_NEWS_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	valid := Config{
		StoreBackend:  prefs.BackendMemory,
		MarketWorkers: 1,
		Intervals: Intervals{
			News: time.Minute, Markets: time.Minute,
			Predictions: time.Minute, Earthquakes: time.Minute,
		},
	}
	require.NoError(t, valid.Validate())

	for _, backend := range []string{prefs.BackendFile, prefs.BackendSQLite, prefs.BackendMemory} {
		c := valid
		c.StoreBackend = backend
		assert.NoError(t, c.Validate(), "backend %s", backend)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "redis" }},
		{"zero interval", func(c *Config) { c.Intervals.Earthquakes = 0 }},
		{"no workers", func(c *Config) { c.MarketWorkers = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
