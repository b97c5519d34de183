// Package followup turns the backend's follow-up text into a list of questions.
package followup

import (
	"regexp"
	"strings"

	"github.com/askmilo/askmilo-cli/slice"
)

var (
	lineBreaks     = regexp.MustCompile(`\n+`)
	numberedPrefix = regexp.MustCompile(`^\d*\.\s`)
)

// Parse splits raw on runs of newlines, drops a leading "<n>. " from each
// line, trims it and discards the lines left empty. Order is preserved and
// the result is never nil.
func Parse(raw string) []string {
	lines := lineBreaks.Split(raw, -1)
	cleaned := slice.Map(lines, func(line string) string {
		return strings.TrimSpace(numberedPrefix.ReplaceAllString(line, ""))
	})
	return slice.Filter(cleaned, func(line string) bool {
		return line != ""
	})
}
