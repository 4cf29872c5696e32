package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "PAYXPERT_"

type Config struct {
	Credentials CredentialsConfig `koanf:"credentials"`
	Hosts       HostsConfig       `koanf:"hosts"`
	HTTP        HTTPConfig        `koanf:"http"`
	Logger      LoggerConfig      `koanf:"logger"`
}

type CredentialsConfig struct {
	OriginatorID       string `koanf:"originator_id" validate:"required"`
	OriginatorPassword string `koanf:"originator_password" validate:"required"`
}

type HostsConfig struct {
	Gateway string `koanf:"gateway" validate:"required"`
	Connect string `koanf:"connect" validate:"required"`
}

type HTTPConfig struct {
	Scheme          string        `koanf:"scheme" validate:"required,oneof=http https"`
	Timeout         time.Duration `koanf:"timeout"`
	JSONContentType bool          `koanf:"json_content_type"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

var defaults = map[string]interface{}{
	"hosts.gateway": "api.payxpert.com",
	"hosts.connect": "connect2.payxpert.com",
	"http.scheme":   "https",
	"logger.level":  "info",
	"logger.format": "text",
}

// LoadConfig reads PAYXPERT_* variables (and a .env file, if present) on top
// of the built-in defaults. Nested keys use a double underscore, e.g.
// PAYXPERT_CREDENTIALS__ORIGINATOR_ID.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
