package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	t.Parallel()

	s := NewOrderedSet[string]()

	assert.True(t, s.Add("name"))
	assert.True(t, s.Add("id"))
	assert.False(t, s.Add("name"))
	assert.True(t, s.Add("email"))

	assert.Equal(t, []string{"name", "id", "email"}, s.Items())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("id"))
	assert.False(t, s.Has("phone"))
}

func TestSliceHelpers(t *testing.T) {
	t.Parallel()

	assert.False(t, IsMultiple([]int(nil)))
	assert.False(t, IsMultiple([]string{"a"}))
	assert.True(t, IsMultiple([]string{"a", "b"}))

	first, ok := First([]string{"in.csv", "extra"})
	assert.True(t, ok)
	assert.Equal(t, "in.csv", first)

	_, ok = First([]string{})
	assert.False(t, ok)
}
