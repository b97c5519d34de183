package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var successStyle = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "2"})

// Success prints text to stdout, e.g. a finished upload's status message.
func Success(text string) {
	fmt.Println(successStyle.Render(text))
}
