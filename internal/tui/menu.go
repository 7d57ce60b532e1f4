package tui

import "slices"

// Direction moves the menu cursor
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
)

// Menu tracks which of the current legal actions is highlighted.
type Menu struct {
	actions []string
	cursor  int
}

// NewMenu creates an empty menu
func NewMenu() *Menu {
	return &Menu{}
}

// SetActions replaces the action list. The cursor goes back to the first
// action whenever the list changes.
func (m *Menu) SetActions(actions []string) {
	if slices.Equal(m.actions, actions) {
		return
	}
	m.actions = slices.Clone(actions)
	m.cursor = 0
}

// Actions returns a copy of the current action labels
func (m *Menu) Actions() []string {
	return slices.Clone(m.actions)
}

// Len returns the number of actions
func (m *Menu) Len() int {
	return len(m.actions)
}

// Cursor returns the highlighted index
func (m *Menu) Cursor() int {
	return m.cursor
}

// Move shifts the highlight one step, wrapping at both ends. It does nothing
// when there are no actions.
func (m *Menu) Move(d Direction) {
	n := len(m.actions)
	if n == 0 {
		return
	}
	switch d {
	case MoveLeft:
		m.cursor--
		if m.cursor < 0 {
			m.cursor = n - 1
		}
	case MoveRight:
		m.cursor = (m.cursor + 1) % n
	}
}

// Reset moves the highlight back to the first action
func (m *Menu) Reset() {
	m.cursor = 0
}

// Commit returns the highlighted action and resets the cursor. Committing an
// empty menu is a caller bug and panics.
func (m *Menu) Commit() string {
	if len(m.actions) == 0 {
		panic("tui: commit on empty action menu")
	}
	action := m.actions[m.cursor]
	m.cursor = 0
	return action
}
