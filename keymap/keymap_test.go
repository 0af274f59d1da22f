package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combokit"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	k := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want combokit.Msg
	}{
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: combokit.PressedVerticalArrow{Arrow: combokit.Up}},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: combokit.PressedVerticalArrow{Arrow: combokit.Down}},
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: combokit.PressedHorizontalArrow{Arrow: combokit.Left}},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: combokit.PressedHorizontalArrow{Arrow: combokit.Right}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: combokit.PressedEnter{}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: combokit.PressedEscape{}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: combokit.PressedBackspace{}},
		{name: "toggle", msg: tea.KeyMsg{Type: tea.KeyCtrlO}, want: combokit.ToggleOpened{}},
		{name: "clear all", msg: tea.KeyMsg{Type: tea.KeyCtrlU}, want: combokit.PressedUnselectAll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := k.Translate(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateIgnoresRunes(t *testing.T) {
	t.Parallel()

	k := DefaultKeyMap()
	_, ok := k.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.False(t, ok)

	_, ok = k.Translate(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, ok)
}

func TestConsumesKey(t *testing.T) {
	t.Parallel()

	k := DefaultKeyMap()

	consumed := []tea.KeyMsg{
		{Type: tea.KeyUp},
		{Type: tea.KeyDown},
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlO},
		{Type: tea.KeyCtrlU},
	}
	for _, msg := range consumed {
		assert.True(t, k.ConsumesKey(msg), "%s should be consumed", msg.String())
	}

	// these must keep reaching the text input
	passedThrough := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyRight},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyRunes, Runes: []rune{'a'}},
	}
	for _, msg := range passedThrough {
		assert.False(t, k.ConsumesKey(msg), "%s should pass through", msg.String())
	}
}

func TestHelpListsBindings(t *testing.T) {
	t.Parallel()

	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())

	var total int
	for _, group := range k.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 9, total, "every binding appears in the full help")
}
