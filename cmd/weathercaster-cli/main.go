package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/i474232898/weathercaster/internal/config"
	"github.com/i474232898/weathercaster/internal/console"
	"github.com/i474232898/weathercaster/internal/weather"
	"github.com/i474232898/weathercaster/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Service logs go to stderr only when asked for; the prompt owns stdout.
	if os.Getenv("WEATHERCASTER_DEBUG") == "" {
		log.SetOutput(io.Discard)
	}

	httpCfg := providers.HTTPClientConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		Limiter: providers.NewLimiter(cfg.RateLimit, cfg.RateBurst),
	}
	owm := providers.NewOpenWeatherProvider(httpCfg, cfg.OpenWeatherAPIKey, providers.DefaultEndpoints())
	service := weather.NewService(owm, owm, cfg.MaxHourlyItems)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := console.Run(ctx, os.Stdin, os.Stdout, service); err != nil && ctx.Err() == nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("console: %v", err)
	}
}
