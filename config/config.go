// Package config holds the settings needed to talk to football-data.org.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultURI is the v4 API root.
const DefaultURI = "https://api.football-data.org/v4"

// Environment variables overriding file values.
const (
	EnvURI      = "FOOTBALL_DATA_URI"
	EnvAPIToken = "FOOTBALL_DATA_API_TOKEN"
)

var (
	ErrMissingURI   = errors.New("base URI is missing")
	ErrMissingToken = errors.New("API token is missing")
)

type Config struct {
	URI      string `yaml:"uri"`
	APIToken string `yaml:"api_token"`
}

// Default returns a Config pointing at DefaultURI with no token.
func Default() Config {
	return Config{URI: DefaultURI}
}

// FromEnv returns the defaults overlaid with the process environment.
func FromEnv() Config {
	cfg := Default()
	cfg.overlayEnv()
	return cfg
}

// Load builds a Config from, in increasing precedence: defaults, the YAML file
// at path (skipped when path is empty) and the environment. A .env file in the
// working directory is loaded into the environment first if present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		return FromEnv(), nil
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.overlayEnv()
	return cfg, nil
}

func (c *Config) overlayEnv() {
	if v := os.Getenv(EnvURI); v != "" {
		c.URI = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.APIToken = v
	}
}

// Validate reports whether c can be used to build a client.
func (c Config) Validate() error {
	if c.URI == "" {
		return ErrMissingURI
	}

	u, err := url.Parse(c.URI)
	if err != nil {
		return fmt.Errorf("parse URI: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("URI %q is not an absolute http(s) URL", c.URI)
	}

	if c.APIToken == "" {
		return ErrMissingToken
	}

	return nil
}
