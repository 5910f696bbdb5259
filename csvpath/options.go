package csvpath

import (
	"context"
	"log/slog"

	"csvpaths/internal/diagnostic"
)

// DefaultMaxSuggestions is used when Options.MaxSuggestions is zero.
const DefaultMaxSuggestions = 3

// Options tunes a Converter.
type Options struct {
	// Strict turns every warning diagnostic into a *StrictError.
	Strict bool
	// Logger receives block-level debug events and diagnostics. Nil discards them.
	Logger *slog.Logger
	// MaxSuggestions caps "did you mean" alternatives in diagnostics.
	MaxSuggestions int
}

// Converter decodes and encodes CSV-with-paths documents.
// It holds no state between calls and is safe for concurrent use.
type Converter struct {
	strict         bool
	logger         *slog.Logger
	maxSuggestions int
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts Options) *Converter {
	c := &Converter{
		strict:         opts.Strict,
		logger:         opts.Logger,
		maxSuggestions: opts.MaxSuggestions,
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if c.maxSuggestions <= 0 {
		c.maxSuggestions = DefaultMaxSuggestions
	}

	return c
}

// finish logs the collected diagnostics and applies strict mode.
func (c *Converter) finish(op string, diags diagnostic.Diagnostics) error {
	diags.Log(context.Background(), c.logger.With(slog.String("op", op)))

	if c.strict && diags.HasWarnings() {
		return &StrictError{Op: op, Diagnostics: diags}
	}

	return nil
}
