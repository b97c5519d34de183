package subject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/askmilo/askmilo-cli/slice"
)

// Subject is one of the course subjects the backend can answer questions about.
type Subject string

const (
	CN   Subject = "CN"
	OS   Subject = "OS"
	DBMS Subject = "DBMS"
)

// Default is the subject selected when a session starts.
const Default = CN

var ErrUnknownSubject = errors.New("unknown subject")

var labels = map[Subject]string{
	CN:   "Computer Networks",
	OS:   "Operating Systems",
	DBMS: "Database Management",
}

// All returns every subject in display order.
func All() []Subject {
	return []Subject{CN, OS, DBMS}
}

func (s Subject) String() string {
	return string(s)
}

func (s Subject) Valid() bool {
	return slice.Has(All(), s)
}

// Label returns the human readable name, or the raw value for an unknown subject.
func (s Subject) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Next cycles through All, wrapping around. Unknown subjects map to Default.
func (s Subject) Next() Subject {
	all := All()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}
	return Default
}

// Parse accepts a subject code in any case, surrounded by optional whitespace.
func Parse(raw string) (Subject, error) {
	s := Subject(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q (expected one of CN, OS, DBMS)", ErrUnknownSubject, raw)
	}
	return s, nil
}
