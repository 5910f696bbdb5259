package csvpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cell     string
		expected any
	}{
		{"true", true},
		{"TRUE", true},
		{"False", false},
		{"42", 42.0},
		{"3.14", 3.14},
		{"-7", -7.0},
		{"007", 7.0},
		{"", nil},
		{"   ", nil},
		{"null", nil},
		{"NULL", nil},
		{"hello", "hello"},
		{"  padded  ", "padded"},
		{"1e5", "1e5"},
		{"1.", "1."},
		{".5", ".5"},
		{"+1", "+1"},
		{"1,000", "1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, InferType(tt.cell))
		})
	}
}
