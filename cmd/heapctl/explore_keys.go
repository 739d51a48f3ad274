package main

import "github.com/charmbracelet/bubbles/key"

// exploreKeyMap defines the explore view's keyboard shortcuts
type exploreKeyMap struct {
	Step   key.Binding
	RunAll key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Step: key.NewBinding(
			key.WithKeys("n", " ", "enter", "right", "l"),
			key.WithHelp("n/space", "next step"),
		),
		RunAll: key.NewBinding(
			key.WithKeys("a", "G"),
			key.WithHelp("a", "run remaining"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.RunAll},
		{k.Help, k.Quit},
	}
}
