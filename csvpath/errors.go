package csvpath

import (
	"errors"
	"fmt"
	"strings"

	"csvpaths/internal/diagnostic"
)

var (
	// ErrFormat is wrapped by every structural error (malformed path, bad input shape).
	ErrFormat = errors.New("malformed CSV-with-paths input")
	// ErrStrict is wrapped by errors raised when strict mode rejects a lenient conversion.
	ErrStrict = errors.New("strict mode violation")
)

// FormatError describes a structural problem that aborts a whole conversion.
type FormatError struct {
	// Op is the operation that failed: "parse path", "decode" or "encode".
	Op string
	// Line is the 1-based input line (0 when not applicable).
	Line int
	// Path is the offending path text (if any).
	Path string
	// Msg describes the problem.
	Msg string
}

func (e *FormatError) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)

	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}

	if e.Path != "" {
		fmt.Fprintf(&b, ": path %q", e.Path)
	}

	b.WriteString(": ")
	b.WriteString(e.Msg)

	return b.String()
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// StrictError reports the warnings that made a strict conversion fail.
type StrictError struct {
	Op          string
	Diagnostics diagnostic.Diagnostics
}

func (e *StrictError) Error() string {
	n := len(e.Diagnostics.Warnings)
	if n == 0 {
		return e.Op + ": strict mode violation"
	}

	msg := fmt.Sprintf("%s: strict mode: %d warning(s): %s", e.Op, n, e.Diagnostics.Warnings[0].String())
	if n > 1 {
		msg += fmt.Sprintf(" (and %d more)", n-1)
	}

	return msg
}

func (e *StrictError) Unwrap() error {
	return ErrStrict
}

// atLine stamps a path error with the decode operation and line number.
func atLine(err error, op string, line int) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		stamped := *fe
		stamped.Op = op
		stamped.Line = line

		return &stamped
	}

	return fmt.Errorf("%s: line %d: %w", op, line, err)
}
