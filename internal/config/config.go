package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	SimWorkerCount     int
	SimQueueSize       int
	ShotResolveDelayMs int
	SessionLimit       int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:pitchside.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		SimWorkerCount:     envIntOr("SIM_WORKER_COUNT", 2),
		SimQueueSize:       envIntOr("SIM_QUEUE_SIZE", 32),
		ShotResolveDelayMs: envIntOr("SHOT_RESOLVE_DELAY_MS", 100),
		SessionLimit:       envIntOr("SESSION_LIMIT", 256),
	}
}

// Validate checks that the loaded configuration is usable. It collects all
// problems so the operator sees everything wrong in one pass.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if c.SimWorkerCount < 1 {
		problems = append(problems, fmt.Sprintf("SIM_WORKER_COUNT must be at least 1 (got %d)", c.SimWorkerCount))
	}
	if c.SimQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("SIM_QUEUE_SIZE must be at least 1 (got %d)", c.SimQueueSize))
	}
	if c.ShotResolveDelayMs < 0 {
		problems = append(problems, fmt.Sprintf("SHOT_RESOLVE_DELAY_MS cannot be negative (got %d)", c.ShotResolveDelayMs))
	}
	if c.SessionLimit < 1 {
		problems = append(problems, fmt.Sprintf("SESSION_LIMIT must be at least 1 (got %d)", c.SessionLimit))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
