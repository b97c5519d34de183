package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	light = catppuccin.Latte
	dark  = catppuccin.Mocha

	// Accent marks the selected subject, focused elements and titles.
	Accent = lipgloss.AdaptiveColor{Light: light.Blue().Hex, Dark: dark.Sapphire().Hex}
	// Subtle is used for hints, help and secondary text.
	Subtle = lipgloss.AdaptiveColor{Light: light.Overlay1().Hex, Dark: dark.Overlay1().Hex}
	// Warn colours error answers and failed uploads.
	Warn = lipgloss.AdaptiveColor{Light: light.Red().Hex, Dark: dark.Red().Hex}
	// Good colours successful upload statuses.
	Good = lipgloss.AdaptiveColor{Light: light.Green().Hex, Dark: dark.Green().Hex}
)

// New returns the huh theme used by every prompt.
func New() *huh.Theme {
	t := huh.ThemeDracula()

	subtext0 := lipgloss.AdaptiveColor{Light: light.Subtext0().Hex, Dark: dark.Subtext0().Hex}

	f := &t.Focused
	f.Title = f.Title.Foreground(Accent)
	f.SelectSelector = f.SelectSelector.Foreground(Accent)
	f.SelectedPrefix = lipgloss.NewStyle().Foreground(Good).SetString("✓ ")
	f.UnselectedPrefix = lipgloss.NewStyle().Foreground(Subtle).SetString("• ")

	t.Help.ShortKey = t.Help.ShortKey.Foreground(subtext0)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(Subtle)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(subtext0)
	t.Help.FullKey = t.Help.FullKey.Foreground(subtext0)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(Subtle)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(subtext0)

	return t
}
