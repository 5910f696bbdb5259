package csvpath

import (
	"regexp"
	"strconv"
	"strings"
)

// Segment is one dot-separated part of a Path.
type Segment struct {
	// Key is the object field name.
	Key string
	// Index is the 0-based array slot; meaningful only when HasIndex is set.
	Index int
	// IsArray marks a segment written with brackets.
	IsArray bool
	// HasIndex is false for the bare "key[]" form.
	HasIndex bool
}

// String renders the segment with a 1-based index.
func (s Segment) String() string {
	switch {
	case !s.IsArray:
		return s.Key
	case !s.HasIndex:
		return s.Key + "[]"
	default:
		return s.Key + "[" + strconv.Itoa(s.Index+1) + "]"
	}
}

// Path addresses a location in a JSON-like value, e.g. "users[1].profile.email".
type Path struct {
	Segments []Segment
}

var segmentPattern = regexp.MustCompile(`^([^\[\]]+)(?:\[(\d*)\])?$`)

// ParsePath parses a path string into a Path.
// Supports: "items", "items[1]", "items[]", "users[1].orders[2].sku".
// Bracket indices are 1-based in text and 0-based in the result.
func ParsePath(text string) (Path, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Path{}, &FormatError{Op: "parse path", Msg: "empty path"}
	}

	parts := strings.Split(text, ".")
	segments := make([]Segment, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return Path{}, &FormatError{Op: "parse path", Path: text, Msg: "empty segment"}
		}

		m := segmentPattern.FindStringSubmatch(part)
		if m == nil {
			return Path{}, &FormatError{Op: "parse path", Path: text, Msg: "malformed segment " + strconv.Quote(part)}
		}

		seg := Segment{Key: m[1], IsArray: strings.HasSuffix(part, "]")}

		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return Path{}, &FormatError{
					Op:   "parse path",
					Path: text,
					Msg:  "array index in segment " + strconv.Quote(part) + " must be a positive integer",
				}
			}

			seg.Index = n - 1
			seg.HasIndex = true
		}

		segments = append(segments, seg)
	}

	return Path{Segments: segments}, nil
}

// NewArrayPath builds a path whose segments all address the first array slot,
// e.g. NewArrayPath("users", "orders") is "users[1].orders[1]".
func NewArrayPath(keys ...string) Path {
	segments := make([]Segment, 0, len(keys))
	for _, k := range keys {
		segments = append(segments, Segment{Key: k, IsArray: true, HasIndex: true})
	}

	return Path{Segments: segments}
}

// String serializes the path with 1-based indices.
func (p Path) String() string {
	parts := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, ".")
}

func (p Path) Len() int {
	return len(p.Segments)
}

// Root returns the first segment.
func (p Path) Root() Segment {
	if len(p.Segments) == 0 {
		return Segment{}
	}

	return p.Segments[0]
}

// Leaf returns the last segment.
func (p Path) Leaf() Segment {
	if len(p.Segments) == 0 {
		return Segment{}
	}

	return p.Segments[len(p.Segments)-1]
}

// IsNestedArray reports whether the path has more than one segment and ends in an array segment.
func (p Path) IsNestedArray() bool {
	return p.Len() > 1 && p.Leaf().IsArray
}
