package healthping

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls the healthcheck probe.
type Config struct {
	// Target is the API origin to probe.
	Target string `yaml:"target"`
	// Timeout bounds a single probe.
	Timeout time.Duration `yaml:"timeout"`
	// Interval enables the watch loop when positive; zero means one-shot.
	Interval time.Duration `yaml:"interval"`
}

const defaultTarget = "http://localhost:8080"

// LoadConfig reads the YAML file at path if given, applies HEALTHCHECK_* env
// overrides, fills defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	normalize(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("HEALTHCHECK_TARGET")); v != "" {
		cfg.Target = v
	}
	if v := strings.TrimSpace(os.Getenv("HEALTHCHECK_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("HEALTHCHECK_INTERVAL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Interval = d
		}
	}
}

func normalize(cfg *Config) {
	cfg.Target = strings.TrimRight(strings.TrimSpace(cfg.Target), "/")
	if cfg.Target == "" {
		cfg.Target = defaultTarget
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}
}

func validate(cfg Config) error {
	u, err := url.Parse(cfg.Target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", cfg.Target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid target %q: scheme must be http or https", cfg.Target)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid target %q: host is required", cfg.Target)
	}
	return nil
}
