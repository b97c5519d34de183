package followup_test

import (
	"testing"

	"github.com/askmilo/askmilo-cli/followup"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "numbered with blank line",
			input:    "1. A\n2. B\n\nC",
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "empty",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only newlines and spaces",
			input:    "\n\n   \n",
			expected: []string{},
		},
		{
			name:     "multi digit numbers",
			input:    "10. What is paging?\n11. What is segmentation?",
			expected: []string{"What is paging?", "What is segmentation?"},
		},
		{
			name:     "digits are optional",
			input:    ". What is a socket?",
			expected: []string{"What is a socket?"},
		},
		{
			name:     "period without space is kept",
			input:    "1.What is TCP?",
			expected: []string{"1.What is TCP?"},
		},
		{
			name:     "extra spaces after prefix are trimmed",
			input:    "1.   What is UDP?  ",
			expected: []string{"What is UDP?"},
		},
		{
			name:     "windows line endings",
			input:    "1. What is ARP?\r\n2. What is RARP?\r\n",
			expected: []string{"What is ARP?", "What is RARP?"},
		},
		{
			name:     "indented numbers are not stripped",
			input:    "  3. What is a deadlock?",
			expected: []string{"3. What is a deadlock?"},
		},
		{
			name:     "only the leading prefix is removed",
			input:    "1. Compare 2. NF and 3. NF",
			expected: []string{"Compare 2. NF and 3. NF"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, followup.Parse(tc.input))
		})
	}
}

func TestParseIsPure(t *testing.T) {
	raw := "1. What is a page fault?\n\n2. What is thrashing?\n"
	first := followup.Parse(raw)
	second := followup.Parse(raw)
	assert.Equal(t, first, second)

	first[0] = "mutated"
	assert.Equal(t, "What is a page fault?", followup.Parse(raw)[0])
}
