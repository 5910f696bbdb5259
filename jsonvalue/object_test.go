package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	o := NewObject()
	o.Set("b", 1.0)
	o.Set("a", 2.0)
	o.Set("c", 3.0)
	o.Set("b", 4.0) // replacing keeps position

	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
	assert.Equal(t, 3, o.Len())

	v, ok := o.Get("b")
	require.True(t, ok)
	assert.InDelta(t, 4.0, v, 0)

	o.Delete("a")
	assert.Equal(t, []string{"b", "c"}, o.Keys())
	assert.False(t, o.Has("a"))
}

func TestObjectHasNullValue(t *testing.T) {
	t.Parallel()

	o := NewObject()
	o.Set("id", nil)

	assert.True(t, o.Has("id"))
	assert.False(t, o.Has("name"))

	var nilObj *Object
	assert.False(t, nilObj.Has("id"))
	assert.Equal(t, 0, nilObj.Len())
}

func TestEntries(t *testing.T) {
	t.Parallel()

	t.Run("ordered object", func(t *testing.T) {
		t.Parallel()

		o := NewObject()
		o.Set("z", 1.0)
		o.Set("y", "two")

		entries, ok := Entries(o)
		require.True(t, ok)
		assert.Equal(t, []Entry{{Key: "z", Value: 1.0}, {Key: "y", Value: "two"}}, entries)
	})

	t.Run("go map sorted", func(t *testing.T) {
		t.Parallel()

		entries, ok := Entries(map[string]any{"b": true, "a": nil})
		require.True(t, ok)
		assert.Equal(t, []Entry{{Key: "a", Value: nil}, {Key: "b", Value: true}}, entries)
	})

	t.Run("array indices", func(t *testing.T) {
		t.Parallel()

		entries, ok := Entries([]any{"x", "y"})
		require.True(t, ok)
		assert.Equal(t, []Entry{{Key: "0", Value: "x"}, {Key: "1", Value: "y"}}, entries)
	})

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()

		_, ok := Entries("text")
		assert.False(t, ok)
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    any
		expected KindEnum
	}{
		{nil, KindNull},
		{(*Object)(nil), KindNull},
		{true, KindBool},
		{1.5, KindNumber},
		{42, KindNumber},
		{"s", KindString},
		{[]any{}, KindArray},
		{NewObject(), KindObject},
		{map[string]any{}, KindObject},
		{struct{}{}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, KindOf(tt.value), "%#v", tt.value)
	}

	assert.True(t, KindNull.IsScalar())
	assert.True(t, KindString.IsScalar())
	assert.False(t, KindArray.IsScalar())
	assert.True(t, KindObject.IsContainer())
	assert.Equal(t, "KindNumber", KindNumber.String())
	assert.Equal(t, "KindEnum(0)", KindEnum(0).String())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	type row map[string]int

	obj := NewObject()
	obj.Set("z", []string{"a"})
	obj.Set("a", [2]float64{1, 2})

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{
			name:     "typed slice of maps",
			input:    []map[string]any{{"id": 1}},
			expected: []any{map[string]any{"id": 1}},
		},
		{
			name:     "named map type",
			input:    map[string][]row{"items": {{"n": 2}}},
			expected: map[string]any{"items": []any{map[string]any{"n": 2}}},
		},
		{
			name:     "nil typed slice",
			input:    []string(nil),
			expected: nil,
		},
		{
			name:     "scalars untouched",
			input:    "x",
			expected: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}

	t.Run("object keeps order", func(t *testing.T) {
		t.Parallel()

		out, ok := Normalize(obj).(*Object)
		require.True(t, ok)
		assert.Equal(t, []string{"z", "a"}, out.Keys())

		z, _ := out.Get("z")
		assert.Equal(t, []any{"a"}, z)

		a, _ := out.Get("a")
		assert.Equal(t, []any{1.0, 2.0}, a)
	})
}
