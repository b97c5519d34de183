package slice_test

import (
	"strings"
	"testing"

	"github.com/askmilo/askmilo-cli/slice"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))
	assert.Nil(t, slice.Map([]string{}, strings.ToUpper))
}

func TestFilter(t *testing.T) {
	notEmpty := func(s string) bool { return s != "" }
	assert.Equal(t, []string{"a", "c"}, slice.Filter([]string{"a", "", "c"}, notEmpty))

	got := slice.Filter([]string{"", ""}, notEmpty)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHas(t *testing.T) {
	assert.True(t, slice.Has([]int{1, 2, 3}, 2))
	assert.False(t, slice.Has([]int{1, 2, 3}, 4))
	assert.False(t, slice.Has(nil, 4))
}
