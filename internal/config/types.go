package config

import (
	"io"
	"log/slog"
	"strings"
)

// Output formats for decoded documents.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log handler formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// DefaultIndent is used when Output.Indent is unset.
const DefaultIndent = 2

// Config is the command configuration.
type Config struct {
	Strict         bool   `yaml:"strict" toml:"strict"`
	MaxSuggestions int    `yaml:"max_suggestions" toml:"max_suggestions"`
	Output         Output `yaml:"output" toml:"output"`
	Log            Log    `yaml:"log" toml:"log"`
}

// Output controls how decoded documents are rendered.
type Output struct {
	Format  string `yaml:"format" toml:"format"`
	Indent  *int   `yaml:"indent" toml:"indent"`
	Compact bool   `yaml:"compact" toml:"compact"`
}

// Log controls diagnostics logging on stderr.
type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// IndentWidth returns the configured indentation, DefaultIndent when unset.
func (o Output) IndentWidth() int {
	if o.Indent == nil {
		return DefaultIndent
	}

	return *o.Indent
}

// IndentString returns the JSON indentation unit. It is empty when compact
// or when the indent is explicitly 0, both of which render single-line JSON.
func (o Output) IndentString() string {
	if o.Compact {
		return ""
	}

	return strings.Repeat(" ", max(o.IndentWidth(), 0))
}

// SlogLevel maps the configured level name onto a slog level.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a slog logger writing to w in the configured format.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}

	if l.Format == LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
