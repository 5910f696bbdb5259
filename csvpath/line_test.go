package csvpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"csvpaths/jsonvalue"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"quoted comma and escaped quote", `a,"b,c","d""e"`, []string{"a", "b,c", `d"e`}},
		{"plain", "1,Alice,true", []string{"1", "Alice", "true"}},
		{"empty line", "", []string{""}},
		{"empty cells", "a,,b", []string{"a", "", "b"}},
		{"trailing comma", "a,", []string{"a", ""}},
		{"quoted empty", `""`, []string{""}},
		{"quote mid-field toggles", `x"y,z"w`, []string{"xy,zw"}},
		{"spaces kept", " a , b ", []string{" a ", " b "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseLine(tt.line))
		})
	}
}

func TestEscapeValue(t *testing.T) {
	t.Parallel()

	obj := jsonvalue.NewObject()
	obj.Set("k", "v")

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"null", nil, ""},
		{"plain string", "plain", "plain"},
		{"comma", "a,b", `"a,b"`},
		{"quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "line\nbreak", "\"line\nbreak\""},
		{"integer float", 42.0, "42"},
		{"fraction", 3.5, "3.5"},
		{"go int", 7, "7"},
		{"large number", 1e21, "1000000000000000000000"},
		{"small number", 1e-7, "0.0000001"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"array", []any{1.0, "x"}, `"[1,""x""]"`},
		{"object", obj, `"{""k"":""v""}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, EscapeValue(tt.value))
		})
	}
}

func TestEscapeThenParse(t *testing.T) {
	t.Parallel()

	values := []string{"plain", "a,b", `"quoted"`, `mixed, "both"`, ""}

	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = EscapeValue(v)
	}

	assert.Equal(t, values, ParseLine(joinCells(cells)))
}

func TestJoinLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `users[1],id,"full, name"`, JoinLine([]string{"users[1]", "id", "full, name"}))
	assert.Empty(t, JoinLine(nil))
}

func joinCells(cells []string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += ","
		}

		out += c
	}

	return out
}
