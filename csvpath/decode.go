package csvpath

import (
	"fmt"
	"strings"

	"csvpaths/internal/diagnostic"
	"csvpaths/internal/match"
	"csvpaths/jsonvalue"
)

// DecodeResult is the outcome of a lenient or strict decode.
type DecodeResult struct {
	Value       *jsonvalue.Object
	Diagnostics diagnostic.Diagnostics
}

// Decode converts CSV-with-paths text into a nested value using default options.
// Unjoinable child rows are dropped silently.
func Decode(text string) (*jsonvalue.Object, error) {
	res, err := NewConverter(Options{}).Decode(text)
	if err != nil {
		return nil, err
	}

	return res.Value, nil
}

// block is a run of non-blank trimmed lines with their 1-based line numbers.
type block struct {
	lines   []string
	lineNos []int
}

func splitBlocks(text string) []block {
	var (
		blocks []block
		cur    *block
	)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if cur != nil {
				blocks = append(blocks, *cur)
				cur = nil
			}

			continue
		}

		if cur == nil {
			cur = &block{}
		}

		cur.lines = append(cur.lines, line)
		cur.lineNos = append(cur.lineNos, i+1)
	}

	if cur != nil {
		blocks = append(blocks, *cur)
	}

	return blocks
}

// isJoinKey reports whether a header name looks like a parent reference.
func isJoinKey(name string) bool {
	return name == "id" || strings.HasSuffix(name, "_id")
}

// decoder is the working memory of one Decode call.
type decoder struct {
	conv    *Converter
	result  *jsonvalue.Object
	parents map[string][]*jsonvalue.Object
	roots   []string
	diags   diagnostic.Diagnostics
}

// Decode converts CSV-with-paths text into a nested value. A malformed header
// path fails the whole call with a *FormatError; in strict mode any warning
// fails it with a *StrictError.
func (c *Converter) Decode(text string) (*DecodeResult, error) {
	d := &decoder{
		conv:    c,
		result:  jsonvalue.NewObject(),
		parents: make(map[string][]*jsonvalue.Object),
	}

	for _, b := range splitBlocks(text) {
		if err := d.decodeBlock(b); err != nil {
			return nil, err
		}
	}

	if err := c.finish("decode", d.diags); err != nil {
		return nil, err
	}

	return &DecodeResult{Value: d.result, Diagnostics: d.diags}, nil
}

func (d *decoder) decodeBlock(b block) error {
	header := ParseLine(b.lines[0])

	path, err := ParsePath(header[0])
	if err != nil {
		return atLine(err, "decode", b.lineNos[0])
	}

	fields := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		fields = append(fields, strings.TrimSpace(h))
	}

	child := len(fields) > 0 && isJoinKey(fields[0]) && path.IsNestedArray()

	d.conv.logger.Debug("decoding block",
		"path", path.String(),
		"line", b.lineNos[0],
		"rows", len(b.lines)-1,
		"child", child,
	)

	if child {
		d.decodeChild(b, path, fields)
	} else {
		d.decodeParent(b, path, fields)
	}

	return nil
}

func (d *decoder) decodeParent(b block, path Path, fields []string) {
	root := path.Root().Key

	for i, line := range b.lines[1:] {
		lineNo := b.lineNos[i+1]
		cells := ParseLine(line)

		d.checkExtraCells(cells, len(fields), lineNo, path)

		rec := buildRecord(fields, cells)

		arr, _ := d.result.Get(root)
		items, _ := arr.([]any)
		d.result.Set(root, append(items, rec))

		if _, ok := d.parents[root]; !ok {
			d.roots = append(d.roots, root)
		}

		d.parents[root] = append(d.parents[root], rec)
	}
}

func (d *decoder) decodeChild(b block, path Path, fields []string) {
	root := path.Root().Key
	childKey := path.Leaf().Key
	rows := b.lines[1:]

	parents, ok := d.parents[root]
	if !ok {
		if len(rows) > 0 {
			d.diags.AddWarningWithSuggestions(diagnostic.CodeUnknownParent,
				fmt.Sprintf("no parent block registered for %q before this child block; %d row(s) dropped", root, len(rows)),
				b.lineNos[0], path.String(),
				match.Suggest(root, d.roots, d.conv.maxSuggestions))
		}

		return
	}

	for i, line := range rows {
		lineNo := b.lineNos[i+1]
		cells := ParseLine(line)
		joinValue := InferType(cells[0])

		parent := findParent(parents, joinValue)
		if parent == nil {
			d.diags.AddWarning(diagnostic.CodeUnmatchedJoin,
				fmt.Sprintf("no %s record with id %s; row dropped", root, jsonText(joinValue)),
				lineNo, path.String())

			continue
		}

		d.checkExtraCells(cells, len(fields), lineNo, path)

		rec := buildRecord(fields[1:], cells[1:])

		existing, has := parent.Get(childKey)

		items, isArray := existing.([]any)
		if has && !isArray {
			d.diags.AddWarning(diagnostic.CodeFieldReplaced,
				fmt.Sprintf("field %q of %s record with id %s held a non-array value; replaced by child rows",
					childKey, root, jsonText(joinValue)),
				lineNo, path.String())
		}

		parent.Set(childKey, append(items, rec))
	}
}

// checkExtraCells reports non-blank cells beyond the header. Blank ones carry
// nothing, and a lone "" is how an item without fields is written.
func (d *decoder) checkExtraCells(cells []string, fields, lineNo int, path Path) {
	extra := 0

	for _, c := range cells[min(fields, len(cells)):] {
		if strings.TrimSpace(c) != "" {
			extra++
		}
	}

	if extra > 0 {
		d.diags.AddInfo(diagnostic.CodeExtraCells,
			fmt.Sprintf("row has %d cell(s) beyond its header; ignored", extra),
			lineNo, path.String())
	}
}

// buildRecord maps field names onto inferred cell values. Short rows stop
// early instead of padding with nulls.
func buildRecord(fields, cells []string) *jsonvalue.Object {
	rec := jsonvalue.NewObject()

	for i, name := range fields {
		if i >= len(cells) {
			break
		}

		rec.Set(name, InferType(cells[i]))
	}

	return rec
}

func findParent(parents []*jsonvalue.Object, joinValue any) *jsonvalue.Object {
	for _, p := range parents {
		if id, ok := p.Get("id"); ok && jsonvalue.Equal(id, joinValue) {
			return p
		}
	}

	return nil
}

// jsonText renders a scalar for messages: null, 3, "abc".
func jsonText(v any) string {
	data, err := jsonvalue.MarshalIndent(v, "")
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}
