package subject_test

import (
	"testing"

	"github.com/askmilo/askmilo-cli/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected subject.Subject
		err      error
	}{
		{name: "upper case", input: "CN", expected: subject.CN},
		{name: "lower case", input: "os", expected: subject.OS},
		{name: "padded", input: "  dbms ", expected: subject.DBMS},
		{name: "unknown", input: "MATH", err: subject.ErrUnknownSubject},
		{name: "empty", input: "", err: subject.ErrUnknownSubject},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := subject.Parse(tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Empty(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Computer Networks", subject.CN.Label())
	assert.Equal(t, "Operating Systems", subject.OS.Label())
	assert.Equal(t, "Database Management", subject.DBMS.Label())
	assert.Equal(t, "XYZ", subject.Subject("XYZ").Label())
}

func TestAll(t *testing.T) {
	all := subject.All()
	assert.Equal(t, []subject.Subject{subject.CN, subject.OS, subject.DBMS}, all)
	for _, s := range all {
		assert.True(t, s.Valid())
	}
	assert.False(t, subject.Subject("cn").Valid())
	assert.Equal(t, subject.CN, subject.Default)
}

func TestNext(t *testing.T) {
	assert.Equal(t, subject.OS, subject.CN.Next())
	assert.Equal(t, subject.DBMS, subject.OS.Next())
	assert.Equal(t, subject.CN, subject.DBMS.Next())
	assert.Equal(t, subject.Default, subject.Subject("??").Next())
}
