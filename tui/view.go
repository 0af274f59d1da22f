package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"combokit"
)

const removeGlyph = "×"

// chipSpan records where a chip sits on the input line for hit testing.
// removeX is the first column of the remove glyph.
type chipSpan[T any] struct {
	item    T
	start   int
	end     int
	removeX int
}

// chipLayout renders the selected-item chips and records their spans
func (m *Model[T]) chipLayout() ([]string, []chipSpan[T]) {
	if !m.engine.SelectMode().IsMulti() {
		return nil, nil
	}

	focused, hasFocus := m.engine.FocusedSelectedIndex()
	var rendered []string
	var spans []chipSpan[T]
	x := 0
	for i, item := range m.engine.SelectedItems() {
		style := m.styles.Chip
		if hasFocus && i == focused {
			style = m.styles.ChipFocused
		}
		chip := style.Render(m.cfg.ItemInputValue(item) + " " + m.styles.ChipRemove.Render(removeGlyph))
		w := lipgloss.Width(chip)
		rendered = append(rendered, chip)
		spans = append(spans, chipSpan[T]{item: item, start: x, end: x + w, removeX: x + w - 2})
		x += w + 1
	}
	return rendered, spans
}

func (m *Model[T]) chipSpans() []chipSpan[T] {
	_, spans := m.chipLayout()
	return spans
}

// View implements tea.Model
func (m *Model[T]) View() string {
	var b strings.Builder
	b.WriteString(m.inputLine())
	if m.engine.Opened() {
		b.WriteString("\n")
		b.WriteString(m.dropdown())
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *Model[T]) inputLine() string {
	chips, _ := m.chipLayout()
	parts := append(chips, m.inputView())
	return strings.Join(parts, " ")
}

func (m *Model[T]) inputView() string {
	if m.engine.Searchable() && !m.engine.Blurred() {
		return m.input.View()
	}
	text := combokit.CurrentInputValue(m.cfg, m.engine)
	if text == "" {
		return m.styles.Placeholder.Render(m.placeholder)
	}
	return m.styles.Input.Render(text)
}

func (m *Model[T]) dropdown() string {
	visible := m.visible()
	if len(visible) == 0 {
		return m.styles.Dropdown.Render(m.styles.Empty.Render("no matches"))
	}

	rows := make([]string, 0, m.rows())
	for i := m.offset; i < m.offset+m.rows(); i++ {
		row := m.renderItem(visible[i])
		// keep long labels inside the border
		if w := m.width - 2; w > 0 {
			row = lipgloss.NewStyle().MaxWidth(w).Render(row)
		}
		rows = append(rows, row)
	}
	return m.styles.Dropdown.Render(strings.Join(rows, "\n"))
}

func (m *Model[T]) renderItem(item T) string {
	label := m.cfg.ItemInputValue(item)
	switch combokit.ItemStatusOf(m.cfg, m.engine, item) {
	case combokit.ItemSelectedAndHighlighted:
		return m.styles.ItemBoth.Render("▸ " + label)
	case combokit.ItemHighlighted:
		return m.styles.ItemHighlight.Render("▸ " + label)
	case combokit.ItemSelected:
		return m.styles.ItemSelected.Render(label)
	}
	return m.styles.Item.Render(label)
}

func (m *Model[T]) statusLine() string {
	var parts []string
	if m.engine.SelectMode().IsMulti() {
		if n := len(m.engine.SelectedItems()); n > 0 {
			parts = append(parts, m.styles.Counter.Render(fmt.Sprintf("%d selected", n)))
		}
	}
	if m.engine.Opened() {
		if total := len(m.visible()); total > m.rows() && m.rows() > 0 {
			parts = append(parts, m.styles.Scroll.Render(
				fmt.Sprintf("%d-%d of %d", m.offset+1, m.offset+m.rows(), total)))
		}
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "  ")
}
