package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the widget keybindings
type KeyMap struct {
	Generate key.Binding // space - new random color
	Copy     key.Binding // c, enter - copy the current color
	Select   key.Binding // 1-5 - pick a history entry and copy it
	Help     key.Binding // ? - toggle the full help
	Quit     key.Binding // q, esc, ctrl+c
}

// NewKeyMap creates a KeyMap with the default keybindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Generate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "new color"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "copy"),
		),
		Select: key.NewBinding(
			key.WithKeys(historyKeys()...),
			key.WithHelp("1-5", "pick from history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy, k.Select},
		{k.Help, k.Quit},
	}
}

// historyKeys returns "1".."MaxHistory"
func historyKeys() []string {
	keys := make([]string, MaxHistory)
	for i := range keys {
		keys[i] = string(rune('1' + i))
	}
	return keys
}

// historyIndex maps a history key to its index, or -1.
func historyIndex(k string) int {
	if len(k) != 1 || k[0] < '1' || k[0] >= '1'+MaxHistory {
		return -1
	}
	return int(k[0] - '1')
}
