package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "hfblog"

type Config struct {
	BaseURL     string `yaml:"base_url"`
	ListingPath string `yaml:"listing_path"`
	WrapWidth   int    `yaml:"wrap_width,omitempty"`
	HTTPTimeout string `yaml:"http_timeout,omitempty"`
	UserAgent   string `yaml:"user_agent,omitempty"`
	DataDir     string `yaml:"data_dir,omitempty"`
}

// ListingURL returns the absolute URL of the blog listing page.
func (c *Config) ListingURL() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return c.BaseURL + c.ListingPath
	}
	ref, err := url.Parse(c.ListingPath)
	if err != nil {
		return c.BaseURL + c.ListingPath
	}
	return u.ResolveReference(ref).String()
}

func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Width returns the wrap width for article text, defaulting to 80.
func (c *Config) Width() int {
	if c.WrapWidth <= 0 {
		return 80
	}
	return c.WrapWidth
}

func (c *Config) ResolvedDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(xdg.DataHome, appName)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func LogDir() string {
	return filepath.Join(xdg.StateHome, appName, "logs")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.ListingPath == "" {
		return fmt.Errorf("listing_path is required")
	}
	if cfg.HTTPTimeout != "" {
		if _, err := time.ParseDuration(cfg.HTTPTimeout); err != nil {
			return fmt.Errorf("invalid http_timeout: %w", err)
		}
	}
	return nil
}
