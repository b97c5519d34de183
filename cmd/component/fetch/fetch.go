package fetch

import (
	"github.com/askmilo/askmilo-cli/theme"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is a spinner with a wait message that is only visible while active.
type Model struct {
	spinner spinner.Model
	waitMsg string

	active bool
}

func New() Model {
	return Model{spinner: newSpinner()}
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}

// Start shows the spinner with waitMsg and returns the command that animates it.
func (m Model) Start(waitMsg string) (Model, tea.Cmd) {
	m.waitMsg = waitMsg
	if m.active {
		return m, nil
	}
	m.active = true
	return m, m.spinner.Tick
}

// Stop hides the spinner. Ticks still in flight are dropped by the fresh spinner.
func (m Model) Stop() Model {
	m.active = false
	m.spinner = newSpinner()
	return m
}

func (m Model) Active() bool {
	return m.active
}

func (m Model) View() string {
	if !m.active {
		return ""
	}
	return m.spinner.View() + " " + m.waitMsg
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}
