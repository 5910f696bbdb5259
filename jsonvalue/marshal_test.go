package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesOrder(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`{"zeta": 1, "alpha": [true, null, "x"], "mid": {"b": 2.5, "a": -3}}`))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	alpha, _ := obj.Get("alpha")
	assert.Equal(t, []any{true, nil, "x"}, alpha)

	mid, _ := obj.Get("mid")
	assert.Equal(t, []string{"b", "a"}, mid.(*Object).Keys())

	a, _ := mid.(*Object).Get("a")
	assert.InDelta(t, -3.0, a, 0)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"trailing data", `{"a":1} {"b":2}`},
		{"truncated", `{"a":`},
		{"bad token", `{"a": tru}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestMarshalIndentRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"users":[{"id":1,"name":"Ann <admin>","score":2.5,"active":true,"note":null}],"count":1}`

	v, err := Parse([]byte(input))
	require.NoError(t, err)

	compact, err := MarshalIndent(v, "")
	require.NoError(t, err)
	assert.Equal(t, input, string(compact))

	pretty, err := MarshalIndent(v, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"users\": [\n")

	again, err := Parse(pretty)
	require.NoError(t, err)
	assert.True(t, Equal(v, again))
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	o := NewObject()
	o.Set("name", "true")
	o.Set("id", 7.0)
	o.Set("ratio", 0.5)
	o.Set("tags", []any{"a", nil})

	out, err := MarshalYAML(o, 2)
	require.NoError(t, err)

	expected := "name: \"true\"\nid: 7\nratio: 0.5\ntags:\n  - a\n  - null\n"
	assert.Equal(t, expected, string(out))
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{3.14, "3.14"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789012, "123456789012"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.in))
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := NewObject()
	a.Set("x", 1)
	a.Set("y", []any{"s", false})

	b := NewObject()
	b.Set("y", []any{"s", false})
	b.Set("x", 1.0)

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(a, map[string]any{"x": 1.0, "y": []any{"s", false}}))

	b.Set("z", nil)
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(1.0, "1"))
	assert.False(t, Equal([]any{1.0}, []any{1.0, 2.0}))
}
