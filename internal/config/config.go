// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/jonathan/portfolio/internal/types"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "portfolio.yaml"

// EnvPrefix prefixes environment overrides: PORTFOLIO_PORT -> port.
const EnvPrefix = "PORTFOLIO_"

// Config represents the CLI configuration.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	SiteDir       string `yaml:"site_dir,omitempty" koanf:"site_dir"`             // Site root with index.html and content/; empty uses the bundled site
	ContentURL    string `yaml:"content_url,omitempty" koanf:"content_url"`       // Base URL to fetch content bundles from instead of SiteDir
	StateFile     string `yaml:"state_file,omitempty" koanf:"state_file"`         // JSON file persisting the lang and theme preferences
	Locale        string `yaml:"locale,omitempty" koanf:"locale"`                 // Browser locale used for language detection
	Port          int    `yaml:"port,omitempty" koanf:"port"`                     // HTTP port for serve
	FetchTimeout  string `yaml:"fetch_timeout,omitempty" koanf:"fetch_timeout"`   // Timeout for content fetches, e.g. "30s"
	DropdownClass string `yaml:"dropdown_class,omitempty" koanf:"dropdown_class"` // Dropdown class of the searchable subject select
	Verbose       bool   `yaml:"verbose,omitempty" koanf:"verbose"`               // Log at debug level
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		StateFile:     ".portfolio-state.json",
		Port:          8080,
		FetchTimeout:  "30s",
		DropdownClass: "dark-dropdown",
	}
}

// Load reads the YAML file at path, if it exists, then overlays
// PORTFOLIO_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to access config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.SiteDir != "" && c.ContentURL != "" {
		return fmt.Errorf("config error: 'site_dir' and 'content_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'fetch_timeout' %q: %w", c.FetchTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be positive")
		}
	}

	if c.ContentURL != "" {
		u, err := url.Parse(c.ContentURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config error: 'content_url' must be an absolute http(s) URL: %s", c.ContentURL)
		}
	}

	if c.SiteDir != "" {
		info, err := os.Stat(c.SiteDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: site directory not found: %s", c.SiteDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: site_dir is not a directory: %s", c.SiteDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SiteDir == "" && result.ContentURL == "" {
		result.SiteDir = defaults.SiteDir
		result.ContentURL = defaults.ContentURL
	}
	if result.StateFile == "" {
		result.StateFile = defaults.StateFile
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.DropdownClass == "" {
		result.DropdownClass = defaults.DropdownClass
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout returns the parsed fetch timeout, or zero when unset or invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0
	}
	return d
}

// SystemLocale returns the locale of the process environment, following
// the POSIX precedence LC_ALL > LC_MESSAGES > LANG.
func SystemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// ResolveLocale returns the configured locale, falling back to the process locale.
func (c *Config) ResolveLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	return SystemLocale()
}

// ForcedLang returns the language named by s, for flags that bypass detection.
func ForcedLang(s string) (types.Lang, error) {
	if !types.IsSupported(s) {
		return "", fmt.Errorf("unsupported language %q: must be one of pt, en", s)
	}
	return types.Lang(s), nil
}
