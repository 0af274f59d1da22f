// Package keymap translates terminal key presses into widget messages.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combokit"
)

// KeyMap defines the bindings the widget reacts to. Bindings not listed here,
// runes in particular, fall through to the text input.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Close    key.Binding
	Remove   key.Binding
	Open     key.Binding
	ClearAll key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "highlight up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "highlight down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "remove selected"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "toggle dropdown"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear selection"),
		),
	}
}

// Translate maps a key press onto a widget message. The second return is
// false for keys the widget has no interest in.
func (k KeyMap) Translate(msg tea.KeyMsg) (combokit.Msg, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return combokit.PressedVerticalArrow{Arrow: combokit.Up}, true
	case key.Matches(msg, k.Down):
		return combokit.PressedVerticalArrow{Arrow: combokit.Down}, true
	case key.Matches(msg, k.Left):
		return combokit.PressedHorizontalArrow{Arrow: combokit.Left}, true
	case key.Matches(msg, k.Right):
		return combokit.PressedHorizontalArrow{Arrow: combokit.Right}, true
	case key.Matches(msg, k.Select):
		return combokit.PressedEnter{}, true
	case key.Matches(msg, k.Close):
		return combokit.PressedEscape{}, true
	case key.Matches(msg, k.Remove):
		return combokit.PressedBackspace{}, true
	case key.Matches(msg, k.Open):
		return combokit.ToggleOpened{}, true
	case key.Matches(msg, k.ClearAll):
		return combokit.PressedUnselectAll{}, true
	}
	return nil, false
}

// ConsumesKey reports whether a translated key press is fully handled by the
// widget. Keys that are not consumed, horizontal movement and backspace, must
// still reach the text input so the caret and the text keep working.
func (k KeyMap) ConsumesKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, k.Left), key.Matches(msg, k.Right), key.Matches(msg, k.Remove):
		return false
	}
	_, ok := k.Translate(msg)
	return ok
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Close},
		{k.Left, k.Right, k.Remove, k.Open, k.ClearAll},
	}
}
