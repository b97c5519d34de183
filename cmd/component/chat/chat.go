// Package chat is the interactive question and answer screen.
package chat

import (
	"context"

	"github.com/askmilo/askmilo-cli/cmd/component/fetch"
	"github.com/askmilo/askmilo-cli/display"
	"github.com/askmilo/askmilo-cli/session"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type focus int

const (
	focusInput focus = iota
	focusFollowups
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model owns a session.Query. All state changes happen in Update; gateway
// calls run as commands and come back as queryEventMsg.
type Model struct {
	ctx    context.Context
	runner *session.Runner
	q      session.Query

	input    textarea.Model
	answer   viewport.Model
	spinner  fetch.Model
	help     help.Model
	keys     keyMap
	renderer *glamour.TermRenderer
	mdStyle  string

	focus  focus
	cursor int
	notice string

	width, height int

	copyToClipboard func(string) error
}

type queryEventMsg struct {
	ev session.QueryEvent
}

type copiedMsg struct {
	err error
}

type Option func(*Model)

func WithSubject(s subject.Subject) Option {
	return func(m *Model) {
		m.q, _ = m.q.Apply(session.SubjectSelected{Subject: s})
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copyToClipboard = fn
	}
}

func New(ctx context.Context, runner *session.Runner, opts ...Option) Model {
	ta := textarea.New()
	ta.Placeholder = "e.g., What is deadlock in operating systems?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(3)
	// enter submits, alt+enter starts a new line
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")
	ta.Focus()

	m := Model{
		ctx:             ctx,
		runner:          runner,
		q:               session.NewQuery(),
		input:           ta,
		answer:          viewport.New(defaultWidth, 10),
		spinner:         fetch.New(),
		help:            help.New(),
		keys:            defaultKeyMap(),
		mdStyle:         display.MarkdownStyle(),
		copyToClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Query returns the current session state.
func (m Model) Query() session.Query {
	return m.q
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case queryEventMsg:
		return m.apply(msg.ev)

	case copiedMsg:
		m.notice = "Answer copied to clipboard."
		if msg.err != nil {
			m.notice = "Could not copy: " + msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.notice = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Subject):
			m.q, _ = m.q.Apply(session.SubjectSelected{Subject: m.q.Subject().Next()})
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyAnswer()
		case key.Matches(msg, m.keys.ScrollUp):
			m.answer.ViewUp()
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.answer.ViewDown()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			cmd := m.toggleFocus()
			return m, cmd
		}

		if m.focus == focusFollowups {
			return m.updateFollowups(msg)
		}
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.q, _ = m.q.Apply(session.QuestionEdited{Text: m.input.Value()})
	return m, cmd
}

// submit starts a request unless one is already outstanding.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.q.Loading() {
		return m, nil
	}
	m.q, _ = m.q.Apply(session.QuestionEdited{Text: m.input.Value()})
	next, eff := m.q.Apply(session.Submitted{})
	if eff == nil {
		return m, nil
	}
	m.q = next
	m.cursor = 0
	m.refresh()

	var tick tea.Cmd
	m.spinner, tick = m.spinner.Start("Generating answer...")
	return m, tea.Batch(tick, m.execute(eff))
}

func (m Model) apply(ev session.QueryEvent) (tea.Model, tea.Cmd) {
	next, eff := m.q.Apply(ev)
	m.q = next
	if m.q.Phase() == session.FetchingFollowups {
		m.spinner, _ = m.spinner.Start("Finding follow-up questions...")
	}
	if !m.q.Loading() {
		m.spinner = m.spinner.Stop()
	}
	m.refresh()
	return m, m.execute(eff)
}

func (m Model) execute(eff session.QueryEffect) tea.Cmd {
	if eff == nil {
		return nil
	}
	ctx, runner := m.ctx, m.runner
	return func() tea.Msg {
		return queryEventMsg{ev: runner.ExecuteQuery(ctx, eff)}
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput && len(m.q.Followups()) > 0 {
		m.focus = focusFollowups
		m.input.Blur()
		return nil
	}
	m.focus = focusInput
	return m.input.Focus()
}

func (m Model) updateFollowups(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	followups := m.q.Followups()
	if len(followups) == 0 {
		cmd := m.toggleFocus()
		return m, cmd
	}
	if len(followups) > maxFollowups {
		followups = followups[:maxFollowups]
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(followups)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Submit):
		picked := followups[m.cursor]
		m.q, _ = m.q.Apply(session.FollowupSelected{Question: picked})
		m.input.SetValue(picked)
		cmd := m.toggleFocus()
		return m, cmd
	}
	return m, nil
}

func (m Model) copyAnswer() tea.Cmd {
	answer := m.q.Answer()
	if answer == "" || m.q.Loading() {
		return nil
	}
	write := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(answer)}
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.input.SetWidth(width - 2)
	m.help.Width = width

	// title, subjects, input, spinner, answer heading, follow-ups and help
	reserved := 2 + 2 + m.input.Height() + 2 + 1 + 8 + 2
	m.answer.Width = width
	m.answer.Height = max(height-reserved, 3)

	if r, err := display.NewMarkdownRenderer(m.mdStyle, width-4); err == nil {
		m.renderer = r
	}
	m.refresh()
}

// refresh re-renders the answer into the viewport.
func (m *Model) refresh() {
	m.answer.SetContent(m.renderAnswer())
	m.answer.GotoTop()
}
