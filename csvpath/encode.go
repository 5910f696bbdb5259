package csvpath

import (
	"fmt"
	"strings"

	"csvpaths/internal/common"
	"csvpaths/internal/diagnostic"
	"csvpaths/jsonvalue"
)

// EncodeResult is the outcome of a lenient or strict encode.
type EncodeResult struct {
	Text        string
	Diagnostics diagnostic.Diagnostics
}

// Encode converts a nested value into CSV-with-paths text using default options.
// Only array-valued top-level keys produce blocks.
func Encode(v any) (string, error) {
	res, err := NewConverter(Options{}).Encode(v)
	if err != nil {
		return "", err
	}

	return res.Text, nil
}

// encoder is the working memory of one Encode call.
type encoder struct {
	conv  *Converter
	lines []string
	diags diagnostic.Diagnostics
}

// Encode converts a nested value into CSV-with-paths text. v must be an object
// (*jsonvalue.Object or a string-keyed map) or an array; anything else fails with
// a *FormatError. Go-typed slices and maps are normalized first.
func (c *Converter) Encode(v any) (*EncodeResult, error) {
	v = jsonvalue.Normalize(v)

	entries, ok := jsonvalue.Entries(v)
	if !ok {
		return nil, &FormatError{
			Op:  "encode",
			Msg: fmt.Sprintf("input must be an object or array, got %s", describeKind(v)),
		}
	}

	e := &encoder{conv: c}

	for _, entry := range entries {
		items, ok := entry.Value.([]any)
		if !ok {
			e.diags.AddInfo(diagnostic.CodeSkippedKey,
				fmt.Sprintf("top-level value is %s, not an array; skipped", describeKind(entry.Value)),
				0, entry.Key)

			continue
		}

		if len(items) == 0 {
			e.diags.AddInfo(diagnostic.CodeEmptyArray, "empty array; skipped", 0, entry.Key)
			continue
		}

		e.encodeKey(entry.Key, items)
	}

	if err := c.finish("encode", e.diags); err != nil {
		return nil, err
	}

	lines := e.lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return &EncodeResult{Text: strings.Join(lines, "\n"), Diagnostics: e.diags}, nil
}

// encodeKey emits the parent block for key followed by one child block per
// nested array property.
func (e *encoder) encodeKey(key string, items []any) {
	parentPath := NewArrayPath(key).String()
	parents := e.objects(items, parentPath)

	fields := common.NewOrderedSet[string]()
	childKeys := common.NewOrderedSet[string]()
	nested := common.NewOrderedSet[string]()

	for _, p := range parents {
		entries, _ := jsonvalue.Entries(p)
		for _, f := range entries {
			switch kind := jsonvalue.KindOf(f.Value); {
			case kind.IsScalar():
				fields.Add(f.Key)
			case kind == jsonvalue.KindArray:
				childKeys.Add(f.Key)
			default:
				if nested.Add(f.Key) {
					e.diags.AddWarning(diagnostic.CodeNestedObject,
						fmt.Sprintf("field %q holds a nested object, which the block format cannot carry; dropped", f.Key),
						0, parentPath)
				}
			}
		}
	}

	e.conv.logger.Debug("encoding block",
		"path", parentPath,
		"rows", len(parents),
		"fields", fields.Len(),
		"children", childKeys.Len(),
	)

	e.lines = append(e.lines, JoinLine(append([]string{parentPath}, fields.Items()...)))

	if fields.Len() == 0 {
		e.diags.AddInfo(diagnostic.CodeEmptyBlock,
			"items have no scalar fields; rows written as empty cells", 0, parentPath)
	}

	for _, p := range parents {
		e.lines = append(e.lines, e.row(nil, p, fields.Items()))
	}

	e.lines = append(e.lines, "")

	for _, childKey := range childKeys.Items() {
		e.encodeChild(key, childKey, parents)
	}
}

func (e *encoder) encodeChild(key, childKey string, parents []any) {
	childPath := NewArrayPath(key, childKey).String()

	type childRow struct {
		parent any
		item   any
	}

	var rows []childRow

	fields := common.NewOrderedSet[string]()
	nested := common.NewOrderedSet[string]()
	hasID := false

	for _, p := range parents {
		if _, ok := jsonvalue.Field(p, "id"); ok {
			hasID = true
		}

		v, _ := jsonvalue.Field(p, childKey)

		items, ok := v.([]any)
		if !ok {
			continue
		}

		for _, item := range e.objects(items, childPath) {
			rows = append(rows, childRow{parent: p, item: item})

			entries, _ := jsonvalue.Entries(item)
			for _, f := range entries {
				if jsonvalue.KindOf(f.Value).IsScalar() {
					fields.Add(f.Key)
				} else if nested.Add(f.Key) {
					e.diags.AddWarning(diagnostic.CodeNestedObject,
						fmt.Sprintf("field %q is nested below a child array, which the block format cannot carry; dropped", f.Key),
						0, childPath)
				}
			}
		}
	}

	if !hasID && fields.Len() == 0 {
		e.diags.AddWarning(diagnostic.CodeEmptyBlock,
			"child items have no scalar fields and parents have no id; block omitted", 0, childPath)

		return
	}

	header := []string{childPath}
	if hasID {
		header = append(header, key+"_id")
	} else {
		e.diags.AddWarning(diagnostic.CodeMissingJoin,
			fmt.Sprintf("no %s item has an id; child rows written without a join column", key),
			0, childPath)
	}

	e.lines = append(e.lines, JoinLine(append(header, fields.Items()...)))

	for _, r := range rows {
		var lead []string

		if hasID {
			id, _ := jsonvalue.Field(r.parent, "id")
			lead = []string{EscapeValue(id)}
		}

		e.lines = append(e.lines, e.row(lead, r.item, fields.Items()))
	}

	e.lines = append(e.lines, "")
}

// objects keeps the object items of an array and reports the rest.
func (e *encoder) objects(items []any, path string) []any {
	out := make([]any, 0, len(items))

	for i, item := range items {
		if jsonvalue.KindOf(item) != jsonvalue.KindObject {
			e.diags.AddWarning(diagnostic.CodeNonObjectItem,
				fmt.Sprintf("item %d is %s, not an object; skipped", i+1, describeKind(item)),
				0, path)

			continue
		}

		out = append(out, item)
	}

	return out
}

// row renders one data line. A line that would be blank is written as a
// quoted empty cell so that it does not end the block.
func (e *encoder) row(lead []string, item any, fields []string) string {
	cells := append([]string(nil), lead...)

	for _, f := range fields {
		v, ok := jsonvalue.Field(item, f)
		if !ok {
			cells = append(cells, "")
			continue
		}

		cells = append(cells, EscapeValue(v))
	}

	line := strings.Join(cells, ",")
	if strings.TrimSpace(line) == "" && len(cells) <= 1 {
		return `""`
	}

	return line
}

func describeKind(v any) string {
	switch jsonvalue.KindOf(v) {
	case jsonvalue.KindNull:
		return "null"
	case jsonvalue.KindBool:
		return "a boolean"
	case jsonvalue.KindNumber:
		return "a number"
	case jsonvalue.KindString:
		return "a string"
	case jsonvalue.KindArray:
		return "an array"
	case jsonvalue.KindObject:
		return "an object"
	default:
		return fmt.Sprintf("an unsupported %T", v)
	}
}
