package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Syntax names a configuration file syntax.
type Syntax string

const (
	SyntaxYAML Syntax = "yaml"
	SyntaxTOML Syntax = "toml"
)

var (
	outputFormats = []string{FormatJSON, FormatYAML}
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{LogText, LogJSON}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load loads and validates a configuration file. The syntax is chosen by
// extension: .yaml/.yml or .toml. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	var syntax Syntax

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		syntax = SyntaxYAML
	case ".toml":
		syntax = SyntaxTOML
	default:
		return nil, fmt.Errorf("unsupported config file %s: expected .yaml, .yml or .toml", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data, syntax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses configuration data, applies defaults and validates the result.
func Parse(data []byte, syntax Syntax) (*Config, error) {
	var cfg Config

	switch syntax {
	case SyntaxYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case SyntaxTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse config TOML: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported config syntax %q", syntax)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}

	if cfg.Output.Indent == nil {
		indent := DefaultIndent
		cfg.Output.Indent = &indent
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = LogText
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
}

// Validate checks that every field holds an accepted value.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q: expected one of %s",
			c.Output.Format, strings.Join(outputFormats, ", ")))
	}

	if n := c.Output.IndentWidth(); n < 0 || n > 8 {
		errs = append(errs, fmt.Errorf("output.indent %d: expected 0..8", n))
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q: expected one of %s",
			c.Log.Level, strings.Join(logLevels, ", ")))
	}

	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q: expected one of %s",
			c.Log.Format, strings.Join(logFormats, ", ")))
	}

	if c.MaxSuggestions < 0 {
		errs = append(errs, fmt.Errorf("max_suggestions %d: must not be negative", c.MaxSuggestions))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}
