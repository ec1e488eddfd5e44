// Package config handles resolving configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// defaultWordLength matches the length of words annotated by the rewriter
// when the configuration does not say otherwise.
const defaultWordLength = 6

// Config describes how documents from an origin are rewritten.
type Config struct {
	// Origin is the upstream server, e.g. https://example.com. Links to it
	// are made root-relative.
	Origin string `yaml:"origin"`
	// WordLength is the exact number of letters a word needs to be marked.
	WordLength int `yaml:"word_length"`
	// LogLevel is the minimum level logged.
	LogLevel slog.Level `yaml:"log_level"`
}

// Default returns a version of the config with all default values populated.
// Note that this configuration is _not_ valid, as the user must set origin.
func Default() *Config {
	return &Config{
		Origin:     "", // must be set by the user
		WordLength: defaultWordLength,
		LogLevel:   slog.LevelInfo,
	}
}

// DefaultPath returns the location of the configuration file when none is
// given explicitly.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "tmrewrite.yaml")
}

// Load loads a YAML configuration file from a path, merges it with defaults, and
// validates it for completeness.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.WordLength <= 0 {
		errs = append(errs, fmt.Errorf("word_length must be positive, got %d", c.WordLength))
	}
	if _, err := c.originURL(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// HostPrefix returns the scheme and host of the origin, the part removed from
// absolute links. Any path on the origin is ignored.
func (c *Config) HostPrefix() (string, error) {
	origin, err := c.originURL()
	if err != nil {
		return "", err
	}
	return origin.Scheme + "://" + origin.Host, nil
}

func (c *Config) originURL() (*url.URL, error) {
	if c.Origin == "" {
		return nil, errors.New("origin must be set")
	}
	origin, err := url.Parse(c.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin is not a valid URL: %w", err)
	}
	if origin.Scheme != "http" && origin.Scheme != "https" {
		return nil, fmt.Errorf("origin scheme must be http or https, got %q", origin.Scheme)
	}
	if origin.Host == "" {
		return nil, fmt.Errorf("origin %q has no host", c.Origin)
	}
	return origin, nil
}
