package jsonvalue

import (
	"slices"
	"sort"
	"strconv"
)

// Object is a string-keyed mapping that remembers the order in which keys
// were first inserted.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key. A key that already exists keeps its position.
func (o *Object) Set(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[key]

	return v, ok
}

// Has reports whether key is present, even when it holds null.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if !o.Has(key) {
		return
	}

	delete(o.values, key)

	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return slices.Clone(o.keys)
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Entry is a single key/value pair of an object or array.
type Entry struct {
	Key   string
	Value any
}

// Entries lists the members of an object or array in iteration order.
// Objects yield their keys in insertion order (map[string]any in sorted order),
// arrays yield their indices as decimal keys. The second result is false for
// any other value.
func Entries(v any) ([]Entry, bool) {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil, false
		}

		entries := make([]Entry, 0, len(t.keys))
		for _, k := range t.keys {
			entries = append(entries, Entry{Key: k, Value: t.values[k]})
		}

		return entries, true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Value: t[k]})
		}

		return entries, true
	case []any:
		entries := make([]Entry, 0, len(t))
		for i, item := range t {
			entries = append(entries, Entry{Key: strconv.Itoa(i), Value: item})
		}

		return entries, true
	default:
		return nil, false
	}
}

// Field looks up key on an object value of either representation.
func Field(v any, key string) (any, bool) {
	switch t := v.(type) {
	case *Object:
		return t.Get(key)
	case map[string]any:
		val, ok := t[key]
		return val, ok
	default:
		return nil, false
	}
}
