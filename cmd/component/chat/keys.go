package chat

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit     key.Binding
	Subject    key.Binding
	Focus      key.Binding
	Up         key.Binding
	Down       key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask / pick")),
		Subject:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "subject")),
		Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "follow-ups")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy answer")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Subject, k.Focus, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Subject, k.Focus},
		{k.Up, k.Down, k.ScrollUp, k.ScrollDown},
		{k.Copy, k.Quit},
	}
}
