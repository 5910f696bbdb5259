package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalJSON renders the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	if err := writeJSON(&buf, o); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalYAML renders the object as a yaml.v3 mapping node with keys in insertion order.
func (o *Object) MarshalYAML() (any, error) {
	return toNode(o)
}

// MarshalIndent renders v as JSON, indenting nested levels with indent.
// An empty indent produces compact output.
func MarshalIndent(v any, indent string) ([]byte, error) {
	var compact bytes.Buffer

	if err := writeJSON(&compact, v); err != nil {
		return nil, err
	}

	if indent == "" {
		return compact.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}

	return out.Bytes(), nil
}

// MarshalYAML renders v as a YAML document.
func MarshalYAML(v any, indent int) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	if indent > 0 {
		enc.SetIndent(indent)
	}

	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	if f, ok := ToFloat(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("unsupported number %v", f)
		}

		buf.WriteString(FormatNumber(f))

		return nil
	}

	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		writeJSONString(buf, t)
	case []any:
		buf.WriteByte('[')

		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case *Object, map[string]any:
		if o, ok := t.(*Object); ok && o == nil {
			buf.WriteString("null")
			return nil
		}

		entries, _ := Entries(t)

		buf.WriteByte('{')

		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}

			writeJSONString(buf, e.Key)
			buf.WriteByte(':')

			if err := writeJSON(buf, e.Value); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return err
		}

		buf.Write(data)
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode of a string never fails; it appends a trailing newline.
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}

func toNode(v any) (*yaml.Node, error) {
	if f, ok := ToFloat(v); ok {
		tag := "!!float"
		if IsIntegral(f) && math.Abs(f) < 1e21 {
			tag = "!!int"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: FormatNumber(f)}, nil
	}

	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		value := "false"
		if t {
			value = "true"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, item := range t {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, child)
		}

		return seq, nil
	case *Object, map[string]any:
		if o, ok := t.(*Object); ok && o == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}

		entries, _ := Entries(t)
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, e := range entries {
			val, err := toNode(e.Value)
			if err != nil {
				return nil, err
			}

			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
			mapping.Content = append(mapping.Content, key, val)
		}

		return mapping, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}
