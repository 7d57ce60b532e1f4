package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Input is a decoded key press
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputConfirm
	InputQuit
)

// KeyMap binds the named keys the table understands
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrow keys, vim keys, enter/space and ctrl+c.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Input decodes a key message. Unbound keys decode to InputNone.
func (k KeyMap) Input(msg tea.KeyMsg) Input {
	switch {
	case key.Matches(msg, k.Left):
		return InputLeft
	case key.Matches(msg, k.Right):
		return InputRight
	case key.Matches(msg, k.Confirm):
		return InputConfirm
	case key.Matches(msg, k.Quit):
		return InputQuit
	default:
		return InputNone
	}
}

// HelpView renders the one-line key help
func (k KeyMap) HelpView() string {
	return help.New().View(k)
}
