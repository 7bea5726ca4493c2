package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ListenAddr string

	// Upstream fraud service
	FeedURL       string
	UpstreamURL   string
	FeedAutoStart bool

	// Stream inspection
	StreamAPIURL       string
	StreamPollInterval time.Duration
	StreamCount        int

	// Optional decision journal; empty disables it.
	DatabaseURL string

	LogLevel  string
	LogFormat string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after applying a .env file in the working
// directory when one exists. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Config{
		Env:                getenv("APP_ENV", "development"),
		ListenAddr:         getenv("LISTEN_ADDR", ":8080"),
		FeedURL:            getenv("FEED_URL", "ws://localhost:8001/ws"),
		UpstreamURL:        getenv("UPSTREAM_URL", "http://localhost:8001"),
		FeedAutoStart:      getenvBool("FEED_AUTOCONNECT", true),
		StreamAPIURL:       getenv("STREAM_API_URL", "http://localhost:8000"),
		StreamPollInterval: getenvDuration("STREAM_POLL_INTERVAL", 5*time.Second),
		StreamCount:        getenvInt("STREAM_COUNT", 20),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "json"),
	}
	if cfg.StreamPollInterval <= 0 {
		return cfg, fmt.Errorf("STREAM_POLL_INTERVAL must be positive, got %s", cfg.StreamPollInterval)
	}
	if cfg.StreamCount <= 0 {
		return cfg, fmt.Errorf("STREAM_COUNT must be positive, got %d", cfg.StreamCount)
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseBool(v); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil {
			return out
		}
	}
	return def
}
