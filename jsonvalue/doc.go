// Package jsonvalue provides the JSON-like value model shared by the converter:
// an insertion-ordered Object, kind classification, order-preserving JSON parsing,
// and JSON/YAML rendering that keeps object keys in their original order.
//
// # Value shapes
//
//   - null: nil
//   - boolean: bool
//   - number: float64 (other Go numeric types are accepted on input)
//   - string: string
//   - array: []any
//   - object: *Object (map[string]any is accepted on input, iterated in sorted key order)
package jsonvalue
