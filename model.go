// Package combokit is a pure interaction-state engine for combobox,
// autocomplete and multi-select widgets. Callers feed discrete interaction
// messages into Update and receive a new immutable Model together with
// side-effect and event descriptors to act on. The engine never touches
// focus, scrolling or any other UI primitive itself, which keeps every
// transition deterministic and replayable.
package combokit

import "slices"

// stateTag discriminates the five interaction states
type stateTag string

const (
	tagBlurred             stateTag = "blurred"
	tagFocusedClosed       stateTag = "focused-closed"
	tagFocusedOpened       stateTag = "focused-opened"
	tagHighlighted         stateTag = "focused-opened-highlighted"
	tagSelectedHighlighted stateTag = "selected-item-highlighted"
)

// Direction is the layout direction of a multi-select's selected-item row
// relative to the text input.
type Direction string

// Layout directions
const (
	LeftToRight Direction = "left-to-right"
	RightToLeft Direction = "right-to-left"
)

// HighlightMode is the policy for highlight movement at the list boundaries
type HighlightMode string

// Highlight modes
const (
	// HighlightCircular wraps from the last item to the first and back
	HighlightCircular HighlightMode = "circular"
	// HighlightClamp stops at the first and last item
	HighlightClamp HighlightMode = "clamp"
)

// SelectMode describes how many items may be selected at once and, for
// multi-select, how the selected-item row is laid out and navigated.
type SelectMode struct {
	multi           bool
	direction       Direction
	listNavDisabled bool
}

// SingleSelect allows at most one selected item
func SingleSelect() SelectMode {
	return SelectMode{}
}

// MultiSelect allows any number of selected items, laid out in the given
// direction
func MultiSelect(dir Direction) SelectMode {
	return SelectMode{multi: true, direction: dir}
}

// WithoutListNav disables arrow-key navigation over the selected-item row
func (m SelectMode) WithoutListNav() SelectMode {
	m.listNavDisabled = true
	return m
}

// IsMulti reports whether more than one item may be selected
func (m SelectMode) IsMulti() bool { return m.multi }

// Direction returns the selected-item row layout direction. It is only
// meaningful for multi-select.
func (m SelectMode) Direction() Direction { return m.direction }

// ListNavDisabled reports whether selected-item row navigation is off
func (m SelectMode) ListNavDisabled() bool { return m.listNavDisabled }

// DefaultVisibleLimit caps filtered results when no limit option is given
const DefaultVisibleLimit = 500

// Model is an immutable snapshot of widget interaction state. Zero value is
// not usable; build one with Init and evolve it only through Update.
type Model[T any] struct {
	tag stateTag

	// highlight fields, meaningful while tag == tagHighlighted
	highlightIdx int
	keyboardNav  bool

	// selected-item focus, meaningful while tag == tagSelectedHighlighted.
	// Indexes the display-ordered selection, not the insertion order.
	focusedSel int

	allItems      []T
	selectedItems []T // insertion order; display order derives from direction
	skipOnce      []MsgType

	mode          SelectMode
	searchable    bool
	inputValue    string
	hasSearched   bool
	highlightMode HighlightMode
	visibleLimit  int
	keepOpen      bool
}

// Option configures the initial Model
type Option[T any] func(*Model[T])

// WithSelectMode sets the select mode, SingleSelect by default
func WithSelectMode[T any](mode SelectMode) Option[T] {
	return func(m *Model[T]) { m.mode = mode }
}

// WithSelectOnly disables the text input; the widget is pick-from-list only
func WithSelectOnly[T any]() Option[T] {
	return func(m *Model[T]) { m.searchable = false }
}

// WithHighlightMode sets the boundary policy, HighlightCircular by default
func WithHighlightMode[T any](mode HighlightMode) Option[T] {
	return func(m *Model[T]) { m.highlightMode = mode }
}

// WithVisibleLimit caps the visible item count, DefaultVisibleLimit by default
func WithVisibleLimit[T any](n int) Option[T] {
	return func(m *Model[T]) {
		if n > 0 {
			m.visibleLimit = n
		}
	}
}

// WithKeepOpenOnSelect keeps the dropdown open after an item is chosen
func WithKeepOpenOnSelect[T any]() Option[T] {
	return func(m *Model[T]) { m.keepOpen = true }
}

// WithSelected pre-selects items. Entries not present in the item list are
// dropped, like SetSelectedItems.
func WithSelected[T any](items ...T) Option[T] {
	return func(m *Model[T]) { m.selectedItems = items }
}

// Init builds the initial, blurred Model. Items with a duplicate identifier
// keep their first occurrence only.
func Init[T any](cfg Config[T], items []T, opts ...Option[T]) Model[T] {
	m := Model[T]{
		tag:           tagBlurred,
		searchable:    true,
		highlightMode: HighlightCircular,
		visibleLimit:  DefaultVisibleLimit,
	}
	m.allItems = dedupeByID(cfg, items)
	for _, opt := range opts {
		opt(&m)
	}
	m = applySetSelectedItems(cfg, m, m.selectedItems)
	return normalize(cfg, m)
}

// Blurred reports whether the input is unfocused and the dropdown closed
func (m Model[T]) Blurred() bool { return m.tag == tagBlurred }

// Focused reports whether the text input has focus
func (m Model[T]) Focused() bool {
	return m.tag == tagFocusedClosed || m.tag == tagFocusedOpened || m.tag == tagHighlighted
}

// Opened reports whether the dropdown is open
func (m Model[T]) Opened() bool {
	return m.tag == tagFocusedOpened || m.tag == tagHighlighted
}

// Closed reports whether the dropdown is closed
func (m Model[T]) Closed() bool { return !m.Opened() }

// Highlighted reports whether a visible item is highlighted
func (m Model[T]) Highlighted() bool { return m.tag == tagHighlighted }

// SelectedItemHighlighted reports whether keyboard focus sits on the
// selected-item row instead of the input
func (m Model[T]) SelectedItemHighlighted() bool { return m.tag == tagSelectedHighlighted }

// HighlightIndex returns the highlighted visible-item index, if any
func (m Model[T]) HighlightIndex() (int, bool) {
	if m.tag != tagHighlighted {
		return 0, false
	}
	return m.highlightIdx, true
}

// KeyboardNavigation reports whether the current highlight was placed by the
// keyboard rather than the pointer
func (m Model[T]) KeyboardNavigation() bool {
	return m.tag == tagHighlighted && m.keyboardNav
}

// FocusedSelectedIndex returns the focused position in the display-ordered
// selection, if any
func (m Model[T]) FocusedSelectedIndex() (int, bool) {
	if m.tag != tagSelectedHighlighted {
		return 0, false
	}
	return m.focusedSel, true
}

// AllItems returns the candidate items in order. The returned slice is shared
// and must not be modified.
func (m Model[T]) AllItems() []T { return m.allItems }

// SelectedItems returns the selection in display order: right-to-left keeps
// insertion order, left-to-right shows the newest selection first.
func (m Model[T]) SelectedItems() []T { return orderedSelected(m) }

// InputValue returns the raw input text. See CurrentInputValue for the text a
// view should actually display.
func (m Model[T]) InputValue() string { return m.inputValue }

// HasSearched reports whether the user has typed since the input was last
// reset; filtering only applies once this is true
func (m Model[T]) HasSearched() bool { return m.hasSearched }

// Searchable reports whether the widget has a text input
func (m Model[T]) Searchable() bool { return m.searchable }

// SelectMode returns the current select mode
func (m Model[T]) SelectMode() SelectMode { return m.mode }

// HighlightMode returns the boundary policy
func (m Model[T]) HighlightMode() HighlightMode { return m.highlightMode }

// VisibleLimit returns the visible item cap
func (m Model[T]) VisibleLimit() int { return m.visibleLimit }

// KeepOpenOnSelect reports whether the dropdown stays open after choosing
func (m Model[T]) KeepOpenOnSelect() bool { return m.keepOpen }

// PendingSkips returns the queued one-shot message suppressions in order
func (m Model[T]) PendingSkips() []MsgType {
	return slices.Clone(m.skipOnce)
}

// consumeSkip removes the first queued suppression matching t. The second
// return reports whether anything was consumed.
func (m Model[T]) consumeSkip(t MsgType) (Model[T], bool) {
	for i, queued := range m.skipOnce {
		if queued == t {
			next := make([]MsgType, 0, len(m.skipOnce)-1)
			next = append(next, m.skipOnce[:i]...)
			next = append(next, m.skipOnce[i+1:]...)
			m.skipOnce = next
			return m, true
		}
	}
	return m, false
}

// pushSkip queues n one-shot suppressions of t
func (m Model[T]) pushSkip(t MsgType, n int) Model[T] {
	next := make([]MsgType, len(m.skipOnce), len(m.skipOnce)+n)
	copy(next, m.skipOnce)
	for i := 0; i < n; i++ {
		next = append(next, t)
	}
	m.skipOnce = next
	return m
}

// orderedSelected returns a fresh copy of the selection in display order
func orderedSelected[T any](m Model[T]) []T {
	out := make([]T, len(m.selectedItems))
	copy(out, m.selectedItems)
	if m.mode.IsMulti() && m.mode.Direction() == LeftToRight {
		slices.Reverse(out)
	}
	return out
}

// dedupeByID drops items whose identifier was already seen
func dedupeByID[T any](cfg Config[T], items []T) []T {
	out := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := cfg.ItemID(item)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out
}
