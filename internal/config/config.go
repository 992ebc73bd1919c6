package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weathercaster/internal/weather"
)

// ErrMissingAPIKey is returned when OPENWEATHER_API_KEY is not set.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is required")

type AppConfig struct {
	OpenWeatherAPIKey string

	// MaxHourlyItems bounds the hourly forecast series.
	MaxHourlyItems int

	// HTTPTimeout is the per-call deadline for every upstream request.
	HTTPTimeout time.Duration

	// Outbound limiter shared by all upstream calls (RateLimit <= 0 disables it).
	RateLimit float64
	RateBurst int

	Port string
}

// Load reads configuration from environment with sensible defaults. A .env
// file in the working directory is loaded first when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.MaxHourlyItems = getenvInt("MAX_HOURLY_FORECAST_ITEMS", weather.DefaultMaxHourlyItems)
	if cfg.MaxHourlyItems <= 0 {
		return nil, fmt.Errorf("invalid MAX_HOURLY_FORECAST_ITEMS: %d", cfg.MaxHourlyItems)
	}

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	rps, err := strconv.ParseFloat(getenvDefault("UPSTREAM_RATE_LIMIT", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_RATE_LIMIT: %w", err)
	}
	cfg.RateLimit = rps
	cfg.RateBurst = getenvInt("UPSTREAM_RATE_BURST", 5)

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
