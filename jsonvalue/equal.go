package jsonvalue

// Equal reports whether a and b hold the same JSON value. Object key order is
// ignored and numbers compare by their float64 value.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb || ka == 0 {
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindNumber:
		fa, _ := ToFloat(a)
		fb, _ := ToFloat(b)

		return fa == fb
	case KindString:
		return a.(string) == b.(string)
	case KindArray:
		aa, ab := a.([]any), b.([]any)
		if len(aa) != len(ab) {
			return false
		}

		for i := range aa {
			if !Equal(aa[i], ab[i]) {
				return false
			}
		}

		return true
	case KindObject:
		ea, _ := Entries(a)
		eb, _ := Entries(b)

		if len(ea) != len(eb) {
			return false
		}

		for _, e := range ea {
			other, ok := Field(b, e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
