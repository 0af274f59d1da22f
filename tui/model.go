// Package tui renders a combokit widget as a Bubble Tea component. It owns
// the terminal concerns, text input, dropdown viewport, mouse hit testing,
// and leaves every state decision to the engine.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"combokit"
	"combokit/keymap"
)

// DefaultMaxRows is the default dropdown viewport height
const DefaultMaxRows = 8

// Model is the Bubble Tea model wrapping a combokit engine
type Model[T any] struct {
	cfg     combokit.Config[T]
	engine  combokit.Model[T]
	plugins []combokit.Plugin[T]

	keys        keymap.KeyMap
	styles      *Styles
	input       textinput.Model
	help        help.Model
	placeholder string

	width   int
	maxRows int
	offset  int // first visible dropdown row

	// last pointer row inside the item area, -1 when outside. Scrolling the
	// list under a resting pointer re-derives the hover from this.
	pointerRow int
}

// Option configures the widget
type Option[T any] func(*Model[T])

// WithKeyMap replaces the default key bindings
func WithKeyMap[T any](k keymap.KeyMap) Option[T] {
	return func(m *Model[T]) { m.keys = k }
}

// WithStyles replaces the default styles
func WithStyles[T any](s *Styles) Option[T] {
	return func(m *Model[T]) { m.styles = s }
}

// WithPlugins installs engine plugins, run on every step in order
func WithPlugins[T any](plugins ...combokit.Plugin[T]) Option[T] {
	return func(m *Model[T]) { m.plugins = plugins }
}

// WithMaxRows caps the dropdown viewport height
func WithMaxRows[T any](n int) Option[T] {
	return func(m *Model[T]) {
		if n > 0 {
			m.maxRows = n
		}
	}
}

// WithPlaceholder sets the text shown while the input is empty
func WithPlaceholder[T any](s string) Option[T] {
	return func(m *Model[T]) { m.placeholder = s }
}

// New creates a widget around an initialized engine model
func New[T any](cfg combokit.Config[T], engine combokit.Model[T], opts ...Option[T]) *Model[T] {
	ti := textinput.New()
	ti.Prompt = ""

	m := &Model[T]{
		cfg:        cfg,
		engine:     engine,
		keys:       keymap.DefaultKeyMap(),
		styles:     DefaultStyles(),
		input:      ti,
		help:       help.New(),
		maxRows:    DefaultMaxRows,
		pointerRow: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.input.Placeholder = m.placeholder
	m.reconcile()
	return m
}

// Engine returns the current engine model for selector queries
func (m *Model[T]) Engine() combokit.Model[T] { return m.engine }

// Step feeds a message straight into the engine. Parent programs use this
// for programmatic control, replacing the item list for instance.
func (m *Model[T]) Step(msg combokit.Msg) tea.Cmd { return m.step(msg) }

// Focus moves keyboard focus into the widget
func (m *Model[T]) Focus() tea.Cmd {
	// a focus gesture arrives as a focus plus the press that caused it; the
	// engine queues a suppression for the press half
	return tea.Batch(
		m.step(combokit.FocusedInput{}),
		m.step(combokit.PressedInput{}),
	)
}

// Blur removes keyboard focus from the widget
func (m *Model[T]) Blur() tea.Cmd { return m.step(combokit.BlurredInput{}) }

// Init implements tea.Model
func (m *Model[T]) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - 4; w > 0 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m, m.updateMouse(msg)
	}

	// cursor blink and other component messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model[T]) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if translated, ok := m.keys.Translate(msg); ok {
		if cmd := m.step(translated); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.keys.ConsumesKey(msg) {
			return m, tea.Batch(cmds...)
		}
	}

	// everything else reaches the text input; a value change is a keystroke
	// search
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if after := m.input.Value(); after != before {
		if cmd := m.step(combokit.InputtedValue{Value: after}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model[T]) updateMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		return m.wheel(msg)

	case msg.Action == tea.MouseActionMotion:
		if row, idx, ok := m.itemAt(msg.Y); ok {
			m.pointerRow = row
			return m.step(combokit.HoveredOverItem{Index: idx})
		}
		m.pointerRow = -1
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.click(msg)
	}
	return nil
}

func (m *Model[T]) wheel(msg tea.MouseMsg) tea.Cmd {
	if !m.engine.Opened() {
		return nil
	}
	if msg.Button == tea.MouseButtonWheelUp {
		m.offset--
	} else {
		m.offset++
	}
	m.clampOffset()

	// the list moved under the pointer, so the hovered row changed
	if row, idx, ok := m.itemAt(msg.Y); ok {
		m.pointerRow = row
		return m.step(combokit.HoveredOverItem{Index: idx})
	}
	return nil
}

func (m *Model[T]) click(msg tea.MouseMsg) tea.Cmd {
	if msg.Y == 0 {
		for _, span := range m.chipSpans() {
			if msg.X < span.start || msg.X >= span.end {
				continue
			}
			if msg.X >= span.removeX {
				return m.step(combokit.PressedUnselectButton[T]{Item: span.item})
			}
			return m.step(combokit.FocusedSelectedItem[T]{Item: span.item})
		}
		if !m.input.Focused() {
			return tea.Batch(
				m.step(combokit.FocusedInput{}),
				m.step(combokit.PressedInput{}),
			)
		}
		return m.step(combokit.PressedInput{})
	}

	if _, idx, ok := m.itemAt(msg.Y); ok {
		if item, valid := m.visibleItem(idx); valid {
			return m.step(combokit.PressedItem[T]{Item: item})
		}
	}
	return nil
}

// step runs one engine update and executes the resulting effects and events.
// Effects may imply follow-up messages (a scroll re-deriving the pointer
// hover); those run after the effects so the engine sees them in gesture
// order.
func (m *Model[T]) step(msg combokit.Msg) tea.Cmd {
	out := combokit.Update(m.cfg, combokit.Input[T]{Model: m.engine, Msg: msg}, m.plugins...)
	m.engine = out.Model

	var cmds []tea.Cmd
	var followups []combokit.Msg
	for _, effect := range out.Effects {
		cmd, follow := m.runEffect(effect)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		followups = append(followups, follow...)
	}

	m.reconcile()

	for _, event := range out.Events {
		if cmd := m.eventCmd(event); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	for _, follow := range followups {
		if cmd := m.step(follow); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model[T]) runEffect(effect combokit.Effect) (tea.Cmd, []combokit.Msg) {
	switch effect := effect.(type) {
	case combokit.FocusInput:
		return m.input.Focus(), nil

	case combokit.BlurInput:
		m.input.Blur()
		return nil, nil

	case combokit.FocusSelectedItem[T]:
		// the chip row takes keyboard focus away from the text input
		m.input.Blur()
		return nil, nil

	case combokit.ScrollItemIntoView[T]:
		m.ensureVisible(effect.Item)
		if m.pointerRow >= 0 {
			if idx := m.offset + m.pointerRow; idx < len(m.visible()) {
				return nil, []combokit.Msg{combokit.HoveredOverItem{Index: idx}}
			}
		}
		return nil, nil
	}
	return nil, nil
}

func (m *Model[T]) eventCmd(event combokit.Event) tea.Cmd {
	switch event := event.(type) {
	case combokit.SelectedItemsChanged[T]:
		return func() tea.Msg { return SelectionChangedMsg[T]{Selected: event.Selected} }
	case combokit.InputValueChanged:
		return func() tea.Msg { return InputChangedMsg{Value: event.Value} }
	}
	return nil
}

// reconcile brings the terminal components back in line with the engine
// after a step
func (m *Model[T]) reconcile() {
	if m.engine.Searchable() && m.input.Value() != m.engine.InputValue() {
		m.input.SetValue(m.engine.InputValue())
		m.input.CursorEnd()
	}
	if m.engine.Blurred() && m.input.Focused() {
		m.input.Blur()
	}
	if !m.engine.Opened() {
		m.pointerRow = -1
		m.offset = 0
	}
	m.clampOffset()
}

func (m *Model[T]) visible() []T {
	return combokit.VisibleItems(m.cfg, m.engine)
}

func (m *Model[T]) visibleItem(idx int) (T, bool) {
	var zero T
	visible := m.visible()
	if idx < 0 || idx >= len(visible) {
		return zero, false
	}
	return visible[idx], true
}

// rows returns the dropdown viewport height in item rows
func (m *Model[T]) rows() int {
	n := len(m.visible())
	if n > m.maxRows {
		return m.maxRows
	}
	return n
}

// itemAt maps a terminal line onto a dropdown row and the item index shown
// there. Line 0 is the input line and line 1 the dropdown border.
func (m *Model[T]) itemAt(y int) (row, idx int, ok bool) {
	if !m.engine.Opened() {
		return 0, 0, false
	}
	row = y - 2
	if row < 0 || row >= m.rows() {
		return 0, 0, false
	}
	idx = m.offset + row
	if idx >= len(m.visible()) {
		return 0, 0, false
	}
	return row, idx, true
}

func (m *Model[T]) clampOffset() {
	maxOffset := len(m.visible()) - m.rows()
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// ensureVisible scrolls the dropdown viewport so item is on screen
func (m *Model[T]) ensureVisible(item T) {
	id := m.cfg.ItemID(item)
	for i, candidate := range m.visible() {
		if m.cfg.ItemID(candidate) != id {
			continue
		}
		if i < m.offset {
			m.offset = i
		} else if i >= m.offset+m.rows() {
			m.offset = i - m.rows() + 1
		}
		return
	}
}
