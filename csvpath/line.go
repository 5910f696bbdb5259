package csvpath

import (
	"fmt"
	"strconv"
	"strings"

	"csvpaths/jsonvalue"
)

// ParseLine splits one CSV line into cells. A double quote toggles quoting,
// "" inside quotes is a literal quote, and only unquoted commas separate cells.
// Quoted cells may not span lines.
func ParseLine(line string) []string {
	var (
		cells    []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	return append(cells, current.String())
}

// EscapeValue renders v as one CSV cell. Null becomes the empty string;
// text containing a comma, quote or line break is quoted with inner quotes doubled.
func EscapeValue(v any) string {
	return quoteCell(cellText(v))
}

// JoinLine escapes each cell and joins them with commas.
func JoinLine(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quoteCell(c)
	}

	return strings.Join(quoted, ",")
}

func quoteCell(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}

	return s
}

func cellText(v any) string {
	// Cells never use exponent form, which type inference would read back as text.
	if f, ok := jsonvalue.ToFloat(v); ok {
		if f == 0 {
			return "0"
		}

		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}

		return "false"
	case []any, *jsonvalue.Object, map[string]any:
		data, err := jsonvalue.MarshalIndent(t, "")
		if err != nil {
			return fmt.Sprint(t)
		}

		return string(data)
	default:
		return fmt.Sprint(t)
	}
}
