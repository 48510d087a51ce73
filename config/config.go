package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvURL   = "TXTAI_API_URL"
	EnvToken = "TXTAI_API_TOKEN"
)

// Config describes one txtai endpoint. The zero value targets an empty base
// url without credentials.
type Config struct {
	URL   string
	Token string

	// requests per second, 0 disables limiting
	RateLimit float64
	Burst     int

	Tracing bool
	Metrics bool
}

type configFile struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limits *limitsConfig `yaml:"limits"`

	Tracing bool `yaml:"tracing"`
	Metrics bool `yaml:"metrics"`
}

type limitsConfig struct {
	Rate  float64 `yaml:"rate"`
	Burst int     `yaml:"burst"`
}

// FromEnvironment reads TXTAI_API_URL and TXTAI_API_TOKEN. Unset variables
// yield empty strings.
func FromEnvironment() *Config {
	return &Config{
		URL:   os.Getenv(EnvURL),
		Token: os.Getenv(EnvToken),
	}
}

// Load reads a YAML config file. ${VAR} and ${VAR:-default} are expanded
// from the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))

	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	data = expandEnvVars(data)

	var file configFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &Config{
		URL:   file.URL,
		Token: file.Token,

		Tracing: file.Tracing,
		Metrics: file.Metrics,
	}

	if file.Limits != nil {
		cfg.RateLimit = file.Limits.Rate
		cfg.Burst = file.Limits.Burst
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RateLimit < 0 {
		return errors.New("limits.rate must not be negative")
	}

	if c.Burst < 0 {
		return errors.New("limits.burst must not be negative")
	}

	if c.URL != "" && !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		return fmt.Errorf("url must start with http:// or https://, got %q", c.URL)
	}

	return nil
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])

		name, fallback, hasDefault := strings.Cut(expr, ":-")

		val := os.Getenv(name)

		if val == "" && hasDefault {
			val = fallback
		}

		return []byte(val)
	})
}
