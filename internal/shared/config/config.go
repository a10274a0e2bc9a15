package config

import (
	"CaesarCipher/internal/core/domain"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string
	LogLevel      string
	DefaultPhrase string
	DefaultShift  int
}

// IsDev reports whether human-readable logging should be used.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// Load loads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	return LoadFrom(viper.New(), ".env")
}

// LoadFrom is Load with an explicit viper instance and .env path.
func LoadFrom(v *viper.Viper, envFile string) (*Config, error) {
	// 1. Load .env file into the process environment.
	// A missing file is fine, we fall back to OS-set env vars.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s file: %w", envFile, err)
		}
	}

	// 2. Bind viper keys to env var names
	bindings := map[string]string{
		"app.env":               "APP_ENV",
		"log.level":             "LOG_LEVEL",
		"cipher.default_phrase": "CAESAR_DEFAULT_PHRASE",
		"cipher.default_shift":  "CAESAR_DEFAULT_SHIFT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	// 3. Set defaults
	v.SetDefault("app.env", "prod")
	v.SetDefault("log.level", "warn")
	v.SetDefault("cipher.default_phrase", domain.DefaultPhrase)
	v.SetDefault("cipher.default_shift", domain.DefaultShift)

	cfg := Config{
		AppEnv:        strings.ToLower(strings.TrimSpace(v.GetString("app.env"))),
		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		DefaultPhrase: v.GetString("cipher.default_phrase"),
	}

	shift, err := parseShift(v.GetString("cipher.default_shift"))
	if err != nil {
		return nil, err
	}
	cfg.DefaultShift = shift

	// 4. Validation
	if strings.TrimSpace(cfg.DefaultPhrase) == "" {
		return nil, errors.New("CAESAR_DEFAULT_PHRASE is set but is an empty string")
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL %q is not a valid level: %w", cfg.LogLevel, err)
	}

	return &cfg, nil
}

// parseShift reads the default shift as a non-negative integer.
// viper's GetInt would silently turn garbage into 0.
func parseShift(raw string) (int, error) {
	shift, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("CAESAR_DEFAULT_SHIFT must be an integer, but got %q", raw)
	}
	if shift < 0 {
		return 0, fmt.Errorf("CAESAR_DEFAULT_SHIFT must not be negative, but got %d", shift)
	}
	return shift, nil
}
