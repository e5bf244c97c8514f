// Package config layers defaults, an optional YAML file, environment
// variables and a .env file into one Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "MLOPSDEMO_"

type OTEL struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

type Config struct {
	Port         int           `yaml:"port"`
	DatabaseURL  string        `yaml:"database_url"`
	LogLevel     string        `yaml:"log_level"`
	MetricPeriod time.Duration `yaml:"metric_period"`
	ChartPeriod  time.Duration `yaml:"chart_period"`
	StepPeriod   time.Duration `yaml:"step_period"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	// Seed fixes the random source of every session. Zero draws a fresh
	// seed per session.
	Seed uint64 `yaml:"seed"`
	OTEL OTEL   `yaml:"otel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:         8080,
		LogLevel:     "info",
		MetricPeriod: 2 * time.Second,
		ChartPeriod:  3 * time.Second,
		StepPeriod:   2 * time.Second,
		SessionTTL:   30 * time.Minute,
	}
}

// Options selects the sources Load reads. Empty paths are skipped.
type Options struct {
	File    string
	EnvFile string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load builds a Config from defaults, then the YAML file (validated
// against the embedded CUE schema), then the environment.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", opts.EnvFile, err)
		}
	}

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return cfg, fmt.Errorf("cannot read config: %w", err)
		}
		if err := ValidateYAML(opts.File, data); err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot unmarshal config: %w", err)
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	parse := func(key string, set func(string) error) {
		v, ok := lookup(envPrefix + key)
		if !ok || v == "" {
			return
		}
		if err := set(v); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
		}
	}
	duration := func(dst *time.Duration) func(string) error {
		return func(v string) error {
			d, err := time.ParseDuration(v)
			*dst = d
			return err
		}
	}
	boolean := func(dst *bool) func(string) error {
		return func(v string) error {
			b, err := strconv.ParseBool(v)
			*dst = b
			return err
		}
	}

	str("DATABASE_URL", &cfg.DatabaseURL)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("OTEL_ENDPOINT", &cfg.OTEL.Endpoint)
	parse("PORT", func(v string) error {
		p, err := strconv.Atoi(v)
		cfg.Port = p
		return err
	})
	parse("SEED", func(v string) error {
		s, err := strconv.ParseUint(v, 10, 64)
		cfg.Seed = s
		return err
	})
	parse("METRIC_PERIOD", duration(&cfg.MetricPeriod))
	parse("CHART_PERIOD", duration(&cfg.ChartPeriod))
	parse("STEP_PERIOD", duration(&cfg.StepPeriod))
	parse("SESSION_TTL", duration(&cfg.SessionTTL))
	parse("OTEL_ENABLED", boolean(&cfg.OTEL.Enabled))
	parse("OTEL_INSECURE", boolean(&cfg.OTEL.Insecure))

	return errors.Join(errs...)
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	for name, d := range map[string]time.Duration{
		"metric_period": c.MetricPeriod,
		"chart_period":  c.ChartPeriod,
		"step_period":   c.StepPeriod,
		"session_ttl":   c.SessionTTL,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		errs = append(errs, errors.New("otel enabled without endpoint"))
	}
	return errors.Join(errs...)
}
