package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global shortcuts available once a plan exists
type keyMap struct {
	Results key.Binding
	Compare key.Binding
	NewPlan key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Results: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		NewPlan: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new plan")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Results, k.Compare, k.NewPlan, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Results, k.Compare, k.NewPlan},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
