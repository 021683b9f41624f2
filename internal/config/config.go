package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	LogLevel     slog.Level
	Strict       bool
	PayloadsPath string
}

func Default() Config {
	return Config{
		LogLevel: slog.LevelInfo,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("GAMECHECK_LOG_LEVEL"); raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
			slog.Warn("Ignoring invalid GAMECHECK_LOG_LEVEL", slog.String("value", raw), slog.String("error", err.Error()))
		} else {
			cfg.LogLevel = level
		}
	}
	if raw := os.Getenv("GAMECHECK_STRICT"); raw != "" {
		if value, err := strconv.ParseBool(raw); err != nil {
			slog.Warn("Ignoring invalid GAMECHECK_STRICT", slog.String("value", raw), slog.String("error", err.Error()))
		} else {
			cfg.Strict = value
		}
	}
	if raw := os.Getenv("GAMECHECK_PAYLOADS"); raw != "" {
		cfg.PayloadsPath = raw
	}
	return cfg
}
