package chat

import (
	"fmt"
	"strings"

	"github.com/askmilo/askmilo-cli/session"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/askmilo/askmilo-cli/theme"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	subtleStyle   = lipgloss.NewStyle().Foreground(theme.Subtle)
	headingStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	warnStyle     = lipgloss.NewStyle().Foreground(theme.Warn)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(theme.Accent).Padding(0, 1)
	subjectStyle  = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
)

// maxFollowups bounds how many suggestions are listed.
const maxFollowups = 6

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AskMilo") + subtleStyle.Render(" · Your AI-Powered CS Companion"))
	b.WriteString("\n\n")
	b.WriteString(m.subjectsView())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.spinner.Active() {
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Answer"))
	b.WriteString("\n")
	b.WriteString(m.answer.View())
	b.WriteString("\n")

	if fv := m.followupsView(); fv != "" {
		b.WriteString(fv)
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(subtleStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) subjectsView() string {
	var parts []string
	for _, s := range subject.All() {
		if s == m.q.Subject() {
			parts = append(parts, selectedStyle.Render(s.Label()))
			continue
		}
		parts = append(parts, subjectStyle.Render(s.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderAnswer() string {
	answer := m.q.Answer()
	switch {
	case m.q.Phase() == session.Asking:
		return subtleStyle.Render("Generating answer...")
	case answer == "":
		return subtleStyle.Render("No answer yet.")
	case answer == session.AnswerError || answer == session.NoAnswer:
		return warnStyle.Render(answer)
	}

	if m.renderer == nil {
		return answer
	}
	out, err := m.renderer.Render(answer)
	if err != nil {
		return answer
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) followupsView() string {
	followups := m.q.Followups()
	if len(followups) == 0 {
		return ""
	}
	if len(followups) > maxFollowups {
		followups = followups[:maxFollowups]
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Follow-Up Questions"))
	for i, f := range followups {
		b.WriteString("\n")
		if m.focus == focusFollowups && i == m.cursor {
			b.WriteString(cursorStyle.Render(fmt.Sprintf("> %s", f)))
			continue
		}
		b.WriteString(subtleStyle.Render(fmt.Sprintf("  %s", f)))
	}
	return b.String()
}
