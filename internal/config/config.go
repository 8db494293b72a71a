package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL  string   `yaml:"base_url"`
		APIKey   string   `yaml:"api_key"`
		Resource string   `yaml:"resource"`
		Ticker   string   `yaml:"ticker"`
		Tickers  []string `yaml:"tickers"`
	} `yaml:"data_source"`
	Chart struct {
		DefaultWindowDays int     `yaml:"default_window_days"`
		ZoomFactor        float64 `yaml:"zoom_factor"`
		MinZoomDays       int     `yaml:"min_zoom_days"`
		DebounceMs        int     `yaml:"debounce_ms"`
		PriceDecimals     int     `yaml:"price_decimals"`
		Kind              string  `yaml:"kind"`
		Theme             string  `yaml:"theme"`
	} `yaml:"chart"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Prefs struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"prefs"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GLANCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("GLANCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("GLANCE_TICKER"); v != "" {
		cfg.DataSource.Ticker = v
	}
	if v := os.Getenv("GLANCE_TICKERS"); v != "" {
		cfg.DataSource.Tickers = splitList(v)
	}
	if v := os.Getenv("GLANCE_DAILY_CRON"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("GLANCE_THEME"); v != "" {
		cfg.Chart.Theme = v
	}
	if v := os.Getenv("GLANCE_MIN_ZOOM_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.MinZoomDays = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("PREFS_FILE"); v != "" {
		cfg.Prefs.StateFile = v
	}

	// Defaults
	if cfg.DataSource.Resource == "" {
		cfg.DataSource.Resource = "stocks"
	}
	if cfg.DataSource.Ticker == "" {
		cfg.DataSource.Ticker = "SBER"
	}
	cfg.DataSource.Ticker = strings.ToUpper(cfg.DataSource.Ticker)
	if len(cfg.DataSource.Tickers) == 0 {
		cfg.DataSource.Tickers = []string{cfg.DataSource.Ticker}
	}
	for i, t := range cfg.DataSource.Tickers {
		cfg.DataSource.Tickers[i] = strings.ToUpper(t)
	}
	if cfg.Chart.DefaultWindowDays == 0 {
		cfg.Chart.DefaultWindowDays = 365
	}
	if cfg.Chart.ZoomFactor == 0 {
		cfg.Chart.ZoomFactor = 0.1
	}
	if cfg.Chart.MinZoomDays == 0 {
		cfg.Chart.MinZoomDays = 7
	}
	if cfg.Chart.DebounceMs == 0 {
		cfg.Chart.DebounceMs = 350
	}
	if cfg.Chart.PriceDecimals == 0 {
		cfg.Chart.PriceDecimals = 2
	}
	if cfg.Chart.Kind == "" {
		cfg.Chart.Kind = "candlestick"
	}
	if cfg.Chart.Theme == "" {
		cfg.Chart.Theme = "dark"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 1 * * 2-6"
	}
	if cfg.Prefs.StateFile == "" {
		cfg.Prefs.StateFile = "data/prefs.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockglance.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.DataSource.Ticker == "" {
		return fmt.Errorf("data_source.ticker is required")
	}
	if c.Chart.ZoomFactor <= 0 || c.Chart.ZoomFactor >= 1 {
		return fmt.Errorf("chart.zoom_factor must be in (0, 1)")
	}
	if c.Chart.MinZoomDays < 1 {
		return fmt.Errorf("chart.min_zoom_days must be at least 1")
	}
	if c.Chart.DebounceMs < 0 {
		return fmt.Errorf("chart.debounce_ms must not be negative")
	}
	if c.Chart.DefaultWindowDays < 1 {
		return fmt.Errorf("chart.default_window_days must be at least 1")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
