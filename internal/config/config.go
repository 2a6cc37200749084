package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL          string
	Addr           string
	ModelPath      string        // empty means the embedded default model
	RequestTimeout time.Duration // budget for inference plus both DB writes
}

// Load reads required values from environment variables.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	timeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be a positive duration, got %q", raw)
		}
		timeout = d
	}

	return Config{
		DBURL:          dbURL,
		Addr:           addr,
		ModelPath:      strings.TrimSpace(os.Getenv("MODEL_PATH")),
		RequestTimeout: timeout,
	}, nil
}
