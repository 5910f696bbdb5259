package jsonvalue

import "encoding/json"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // zero value marks a value that is not JSON-like

	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject

	// KindTotal is the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether values of the kind occupy a single CSV cell.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindBool, KindNumber, KindString:
		return true
	}
}

func (k KindEnum) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// KindOf classifies v. Go numeric types and json.Number are numbers,
// map[string]any is an object. A nil *Object is null.
func KindOf(v any) KindEnum {
	switch t := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case *Object:
		if t == nil {
			return KindNull
		}

		return KindObject
	case map[string]any:
		return KindObject
	default:
		return 0
	}
}
