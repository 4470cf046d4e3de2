// Package config loads the YAML settings shared by the geodes commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geodes/evaluate"
	"github.com/katalvlaran/geodes/geode"
)

// ErrInvalidConfig is returned when a loaded configuration is inconsistent.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of a geodes run.
type Config struct {
	Quality QualityConfig `yaml:"quality"`
	Product ProductConfig `yaml:"product"`
	Search  SearchConfig  `yaml:"search"`

	// Workers bounds concurrent searches; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

// QualityConfig configures the weighted-sum mode.
type QualityConfig struct {
	Horizon int `yaml:"horizon"`
}

// ProductConfig configures the product mode.
type ProductConfig struct {
	Horizon int `yaml:"horizon"`
	Count   int `yaml:"count"`
}

// SearchConfig configures every geode search.
type SearchConfig struct {
	Policy          string   `yaml:"policy"`     // priority, exhaustive
	Bound           string   `yaml:"bound"`      // optimistic, none
	TimeLimit       string   `yaml:"time_limit"` // Go duration, empty for none
	Uncapped        []string `yaml:"uncapped"`   // ore, clay, obsidian
	CheckInvariants bool     `yaml:"check_invariants"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Quality: QualityConfig{Horizon: evaluate.QualityHorizon},
		Product: ProductConfig{Horizon: evaluate.ProductHorizon, Count: evaluate.ProductCount},
		Search:  SearchConfig{Policy: "priority", Bound: "optimistic"},
		Workers: 0,
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks horizons, counts and the search settings.
func (c *Config) Validate() error {
	if c.Quality.Horizon < 0 || c.Quality.Horizon > geode.MaxHorizon {
		return fmt.Errorf("%w: quality.horizon %d outside [0, %d]", ErrInvalidConfig, c.Quality.Horizon, geode.MaxHorizon)
	}
	if c.Product.Horizon < 0 || c.Product.Horizon > geode.MaxHorizon {
		return fmt.Errorf("%w: product.horizon %d outside [0, %d]", ErrInvalidConfig, c.Product.Horizon, geode.MaxHorizon)
	}
	if c.Product.Count <= 0 {
		return fmt.Errorf("%w: product.count %d", ErrInvalidConfig, c.Product.Count)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.SearchOptions(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SearchOptions translates the search section into geode options.
func (c *Config) SearchOptions() ([]geode.Option, error) {
	policy, err := geode.PolicyByName(c.Search.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: search.policy %q: %w", ErrInvalidConfig, c.Search.Policy, err)
	}
	bound, err := geode.BoundByName(c.Search.Bound)
	if err != nil {
		return nil, fmt.Errorf("%w: search.bound %q: %w", ErrInvalidConfig, c.Search.Bound, err)
	}

	caps := geode.DefaultCaps
	for _, kind := range c.Search.Uncapped {
		switch kind {
		case "ore":
			caps = caps.Without(geode.BuildOre)
		case "clay":
			caps = caps.Without(geode.BuildClay)
		case "obsidian":
			caps = caps.Without(geode.BuildObsidian)
		default:
			return nil, fmt.Errorf("%w: search.uncapped: unknown bot kind %q", ErrInvalidConfig, kind)
		}
	}

	opts := []geode.Option{geode.WithPolicy(policy), geode.WithBound(bound), geode.WithCaps(caps)}
	if c.Search.TimeLimit != "" {
		d, err := time.ParseDuration(c.Search.TimeLimit)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: search.time_limit %q", ErrInvalidConfig, c.Search.TimeLimit)
		}
		opts = append(opts, geode.WithTimeLimit(d))
	}
	if c.Search.CheckInvariants {
		opts = append(opts, geode.WithInvariantChecks())
	}

	return opts, nil
}

// Logger builds a zap logger from the log section. verbose forces debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
