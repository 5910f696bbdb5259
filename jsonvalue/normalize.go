package jsonvalue

import "reflect"

// Normalize converts Go-typed containers into the generic value model:
// slices and arrays become []any, string-keyed maps become map[string]any.
// Values of *Object are normalized into a new *Object with the same key order.
// []byte and other values are returned unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil, bool, string, float64, []byte:
		return v
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Normalize(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Normalize(item)
		}

		return out
	case *Object:
		if t == nil {
			return nil
		}

		out := NewObject()
		for _, k := range t.keys {
			out.Set(k, Normalize(t.values[k]))
		}

		return out
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}

		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}

		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}

		if rv.IsNil() {
			return nil
		}

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}

		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}

		if rv.Elem().Kind() == reflect.Slice || rv.Elem().Kind() == reflect.Map {
			return Normalize(rv.Elem().Interface())
		}
	}

	return v
}
