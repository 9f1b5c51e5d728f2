package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/pkg/errs"
)

// Store backends for the device-local state.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Defaults applied by ConfigFromEnv when a variable is unset.
const (
	DefaultDevBaseURL  = "http://localhost:8765"
	DefaultProdBaseURL = "http://group-order-lb-621478777.ap-southeast-1.elb.amazonaws.com"
)

// Config of the driver client.
type Config struct {
	DevBaseURL  string
	ProdBaseURL string
	DefaultEnv  string
	Store       string
	StorePath   string
	RedisAddr   string
	RedisPass   string
	RedisDB     string
	LogLevel    string
	Color       bool
}

// ConfigFromEnv reads the DRIVER_*, REDIS_* and LOG_LEVEL variables through lookup
// (usually os.LookupEnv) and fills in defaults.
func ConfigFromEnv(lookup func(string) (string, bool)) Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	return Config{
		DevBaseURL:  get("DRIVER_DEV_BASE_URL", DefaultDevBaseURL),
		ProdBaseURL: get("DRIVER_PROD_BASE_URL", DefaultProdBaseURL),
		DefaultEnv:  get("DRIVER_DEFAULT_ENV", environment.Default.String()),
		Store:       get("DRIVER_STORE", StoreSQLite),
		StorePath:   get("DRIVER_STORE_PATH", defaultStorePath()),
		RedisAddr:   get("REDIS_ADDR", ""),
		RedisPass:   get("REDIS_PASSWORD", ""),
		RedisDB:     get("REDIS_DB", "0"),
		LogLevel:    get("LOG_LEVEL", "warn"),
		Color:       get("DRIVER_COLOR", "true") == "true",
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var envErr, storeErr, redisErr, levelErr error
	if _, err := environment.Parse(c.DefaultEnv); err != nil {
		envErr = err
	}
	switch c.Store {
	case StoreSQLite:
		if c.StorePath == "" {
			storeErr = errs.NewValueIsRequiredError("DRIVER_STORE_PATH")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			redisErr = errs.NewValueIsRequiredError("REDIS_ADDR")
		}
	default:
		storeErr = errs.NewValueIsInvalidError("DRIVER_STORE")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		levelErr = err
	}
	return errors.Join(envErr, storeErr, redisErr, levelErr)
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".driverapp", "state.db")
	}
	return filepath.Join(home, ".driverapp", "state.db")
}
