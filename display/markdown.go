package display

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// MarkdownStyle picks the glamour style for the terminal background. It
// queries the terminal, so call it before a bubbletea program takes over.
func MarkdownStyle() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
}

// Markdown renders md for a terminal of the given width. If rendering fails
// the text is returned unchanged.
func Markdown(md string, width int) string {
	r, err := NewMarkdownRenderer(MarkdownStyle(), width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
