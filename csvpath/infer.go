package csvpath

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// InferType converts a raw cell into null, bool, float64 or string.
// The cell is trimmed first; "" and "null" are null, "true"/"false" are
// booleans (both case-insensitive) and plain decimal literals are numbers.
func InferType(cell string) any {
	s := strings.TrimSpace(cell)

	switch {
	case s == "" || strings.EqualFold(s, "null"):
		return nil
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	case numberPattern.MatchString(s):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}
