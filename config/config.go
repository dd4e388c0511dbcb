// Package config loads runtime settings shared by the garden binaries from
// the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/garden/garden"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("invalid config value")

const envPrefix = "GARDEN_"

// Config holds every setting a binary may need.
type Config struct {
	QueueSize    int
	Seed         uint64
	Spacing      float64
	LogLevel     string
	LogPretty    bool
	Addr         string
	DatabasePath string
	WindowWidth  int
	WindowHeight int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		QueueSize:    garden.DefaultQueueSize,
		Spacing:      garden.DefaultSpacing,
		LogLevel:     "info",
		Addr:         ":8080",
		DatabasePath: "./data/garden.db",
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

// Load reads a .env file from the working directory when one exists, then
// overlays GARDEN_* environment variables on the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	r := reader{getenv: getenv}

	r.int("QUEUE_SIZE", &cfg.QueueSize)
	r.uint64("SEED", &cfg.Seed)
	r.float("SPACING", &cfg.Spacing)
	r.string("LOG_LEVEL", &cfg.LogLevel)
	r.bool("LOG_PRETTY", &cfg.LogPretty)
	r.string("ADDR", &cfg.Addr)
	r.string("DB_PATH", &cfg.DatabasePath)
	r.int("WINDOW_WIDTH", &cfg.WindowWidth)
	r.int("WINDOW_HEIGHT", &cfg.WindowHeight)

	if r.err != nil {
		return Config{}, r.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that parsing alone cannot.
func (c Config) Validate() error {
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: queue size must be positive, got %d", ErrInvalidValue, c.QueueSize)
	}
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		return fmt.Errorf("%w: spacing must be positive and finite, got %g", ErrInvalidValue, c.Spacing)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidValue, c.LogLevel)
	}
	return nil
}

// GameOptions converts the settings into options for garden.New. A zero
// seed leaves seeding to the game.
func (c Config) GameOptions() []garden.Option {
	opts := []garden.Option{
		garden.WithQueueSize(c.QueueSize),
		garden.WithSpacing(garden.Spacing{X: c.Spacing, Y: c.Spacing}),
	}
	if c.Seed != 0 {
		opts = append(opts, garden.WithSeed(c.Seed))
	}
	return opts
}

// SetupLogging configures the global zerolog logger and level.
func (c Config) SetupLogging(w io.Writer) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

type reader struct {
	getenv func(string) string
	err    error
}

func (r *reader) lookup(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v := strings.TrimSpace(r.getenv(envPrefix + key))
	return v, v != ""
}

func (r *reader) fail(key, value string, err error) {
	r.err = fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidValue, envPrefix, key, value, err)
}

func (r *reader) string(key string, dst *string) {
	if v, ok := r.lookup(key); ok {
		*dst = v
	}
}

func (r *reader) int(key string, dst *int) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = n
}

func (r *reader) uint64(key string, dst *uint64) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = n
}

func (r *reader) float(key string, dst *float64) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = f
}

func (r *reader) bool(key string, dst *bool) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = b
}
