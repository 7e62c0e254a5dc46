package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

const (
	AlgorithmSHA1       = "sha1"
	AlgorithmHMACSHA256 = "hmac-sha256"
)

const (
	DuplicateAllow    = "allow"
	DuplicateCollapse = "collapse"
)

type Config struct {
	SecretKey          string   `env:"HIGHSCORE_SECRET_KEY"`
	DBPath             string   `env:"DB_PATH" envDefault:"highscores.db"`
	ServerPort         string   `env:"SERVER_PORT" envDefault:"3000"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	TimeZone           string   `env:"SCORE_TIMEZONE" envDefault:"UTC"`
	DisplayLocale      string   `env:"DISPLAY_LOCALE" envDefault:"en-US"`
	IntegrityAlgorithm string   `env:"INTEGRITY_ALGORITHM" envDefault:"sha1"`
	DuplicatePolicy    string   `env:"DUPLICATE_POLICY" envDefault:"allow"`
	AllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://*.itch.io,https://*.itch.zone"`

	// Resolved at load time from the string settings above.
	location *time.Location
	locale   language.Tag
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolve() error {
	if c.SecretKey == "" {
		return fmt.Errorf("HIGHSCORE_SECRET_KEY is required")
	}

	switch c.IntegrityAlgorithm {
	case AlgorithmSHA1, AlgorithmHMACSHA256:
	default:
		return fmt.Errorf("unknown INTEGRITY_ALGORITHM %q", c.IntegrityAlgorithm)
	}

	switch c.DuplicatePolicy {
	case DuplicateAllow, DuplicateCollapse:
	default:
		return fmt.Errorf("unknown DUPLICATE_POLICY %q", c.DuplicatePolicy)
	}

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load SCORE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	c.location = loc

	tag, err := language.Parse(c.DisplayLocale)
	if err != nil {
		return fmt.Errorf("failed to parse DISPLAY_LOCALE %q: %w", c.DisplayLocale, err)
	}
	c.locale = tag

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("failed to parse LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	return nil
}

// Location is the zone submitted timestamps are interpreted in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Locale selects the display layout for formatted timestamps.
func (c *Config) Locale() language.Tag {
	return c.locale
}

// LogSummary writes the effective settings once the logger exists. The
// secret is never logged.
func LogSummary(cfg *Config, logger zerolog.Logger) {
	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("timezone", cfg.Location().String()).
		Str("locale", cfg.Locale().String()).
		Str("integrity_algorithm", cfg.IntegrityAlgorithm).
		Str("duplicate_policy", cfg.DuplicatePolicy).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("configuration loaded")
}

var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(LogSummary),
)
