package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flip      key.Binding
	Again     key.Binding
	Hard      key.Binding
	Good      key.Binding
	Easy      key.Binding
	Skip      key.Binding
	OverLearn key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Flip:      key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space/f", "flip")),
		Again:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "again")),
		Hard:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "hard")),
		Good:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "good")),
		Easy:      key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "easy")),
		Skip:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		OverLearn: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "over-learn")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Again, k.Hard, k.Good, k.Easy, k.Skip, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.OverLearn}}
}
