// ============================================================================
// wlang - Front end for the while teaching language
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for the wlang command line tool
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "WLANG_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`

	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig selects and limits the front end
type ParserConfig struct {
	Backend        string `toml:"backend" yaml:"backend"`
	MaxInputLength int    `toml:"max_input_length" yaml:"max_input_length"`
	CacheSize      int    `toml:"cache_size" yaml:"cache_size"`
}

// OutputConfig controls how trees are rendered
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// WatchConfig holds settings for the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Known option values
var (
	Backends      = []string{"descent", "participle"}
	OutputFormats = []string{"indented", "canonical", "json", "yaml"}
	LogLevels     = []string{"trace", "debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json", "logfmt"}
)

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, chosen by extension (.yaml/.yml, else TOML)
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.Load")
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes configuration content, applies defaults and validates it
func Parse(content []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	case "toml":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	default:
		return nil, mdwerror.Newf("unsupported config format: %s", format).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Parse")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by WLANG_CONFIG, else the first default
// location that exists, else returns the built-in defaults
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range []string{"./wlang.toml", "./wlang.yaml", "./configs/wlang.toml"} {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Validate checks that every option names a known value
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"general.log_level", c.General.LogLevel, LogLevels},
		{"general.log_format", c.General.LogFormat, LogFormats},
		{"parser.backend", c.Parser.Backend, Backends},
		{"output.format", c.Output.Format, OutputFormats},
	}

	for _, check := range checks {
		if !contains(check.allowed, check.value) {
			return mdwerror.Newf("invalid %s %q (allowed: %s)",
				check.key, check.value, strings.Join(check.allowed, ", ")).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("key", check.key)
		}
	}

	if c.Parser.MaxInputLength < 0 {
		return mdwerror.New("parser.max_input_length must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", "parser.max_input_length")
	}

	if c.Parser.CacheSize < 0 {
		return mdwerror.New("parser.cache_size must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", "parser.cache_size")
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Parser.Backend == "" {
		c.Parser.Backend = "descent"
	}
	if c.Parser.CacheSize == 0 {
		c.Parser.CacheSize = 32
	}
	if c.Output.Format == "" {
		c.Output.Format = "indented"
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
