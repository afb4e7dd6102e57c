// Package config loads worldmonitor settings from the environment.
//
// Values come from WORLDMONITOR_* variables; a .env file in the working
// directory is loaded first when present. Flags parsed by the commands
// override individual fields after Load returns.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"worldmonitor/internal/prefs"
)

const (
	// StateDirEnv overrides the directory holding persisted preferences.
	StateDirEnv = "WORLDMONITOR_STATE_DIR"
	// DefaultStateBase is the default state directory under the user's home.
	DefaultStateBase = ".worldmonitor"
)

// Intervals holds the refresh period of each top-level group.
type Intervals struct {
	News        time.Duration `env:"NEWS_INTERVAL" envDefault:"5m"`
	Markets     time.Duration `env:"MARKETS_INTERVAL" envDefault:"1m"`
	Predictions time.Duration `env:"PREDICTIONS_INTERVAL" envDefault:"5m"`
	Earthquakes time.Duration `env:"EARTHQUAKES_INTERVAL" envDefault:"5m"`
}

// Config is the full runtime configuration.
type Config struct {
	StateDir     string        `env:"STATE_DIR"`
	StoreBackend string        `env:"STORE" envDefault:"file"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	Intervals    Intervals

	FinnhubAPIKey   string `env:"FINNHUB_API_KEY"`
	CoinGeckoURL    string `env:"COINGECKO_URL" envDefault:"https://api.coingecko.com/api/v3"`
	PolymarketURL   string `env:"POLYMARKET_URL" envDefault:"https://gamma-api.polymarket.com"`
	EarthquakeFeed  string `env:"EARTHQUAKE_FEED" envDefault:"https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/4.5_day.geojson"`
	MarketWorkers   int    `env:"MARKET_WORKERS" envDefault:"4"`
	PredictionLimit int    `env:"PREDICTION_LIMIT" envDefault:"15"`

	ListenAddr   string `env:"LISTEN_ADDR" envDefault:":8080"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"worldmonitor"`
	LogFile      string `env:"LOG_FILE"`
}

// Load reads .env (if any) and parses WORLDMONITOR_* variables into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "WORLDMONITOR_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home: %w", err)
		}
		cfg.StateDir = filepath.Join(home, DefaultStateBase)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the refresh loop cannot run with.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case prefs.BackendFile, prefs.BackendSQLite, prefs.BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	for name, d := range map[string]time.Duration{
		"news":        c.Intervals.News,
		"markets":     c.Intervals.Markets,
		"predictions": c.Intervals.Predictions,
		"earthquakes": c.Intervals.Earthquakes,
	} {
		if d <= 0 {
			return fmt.Errorf("%s interval must be positive, got %s", name, d)
		}
	}
	if c.MarketWorkers < 1 {
		return fmt.Errorf("market workers must be at least 1, got %d", c.MarketWorkers)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
