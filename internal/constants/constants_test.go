package constants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"work", "WORK", "Work", " private ", "GENERAL"} {
		c, ok := ParseCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(in)), string(c))
	}

	for _, in := range []string{"", "hobby", "works"} {
		_, ok := ParseCategory(in)
		assert.False(t, ok, in)
	}
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority("HIGH")
	assert.True(t, ok)
	assert.Equal(t, PriorityHigh, p)

	for _, in := range []string{"high", "Medium", "", "URGENT"} {
		_, ok := ParsePriority(in)
		assert.False(t, ok, in)
	}
}
