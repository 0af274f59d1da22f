package combokit

// Input pairs the current model with an incoming message
type Input[T any] struct {
	Model Model[T]
	Msg   Msg
}

// Output is the result of one reducer step: the next model plus the side
// effects to execute and the change notifications to deliver
type Output[T any] struct {
	Model   Model[T]
	Effects []Effect
	Events  []Event
}

// Update is the reducer. It is a total function: every (state, message)
// combination yields a result, defaulting to the unchanged model when the
// combination is not meaningful. Plugins run in declaration order after the
// core step and may rewrite the output.
func Update[T any](cfg Config[T], in Input[T], plugins ...Plugin[T]) Output[T] {
	out := coreUpdate(cfg, in)
	for _, plugin := range plugins {
		out = plugin(PluginContext[T]{
			Config:       cfg,
			InitialModel: in.Model,
			Input:        in,
			Output:       out,
		})
	}
	return out
}

func coreUpdate[T any](cfg Config[T], in Input[T]) Output[T] {
	m := in.Model
	msg := in.Msg
	if msg == nil {
		return Output[T]{Model: m}
	}

	// One-shot suppression: a queued tag swallows the next matching message
	// entirely. Translators produce spurious duplicates (a synthetic hover
	// after the list scrolls, a synthetic press after a programmatic focus)
	// and this is where they get absorbed.
	if next, consumed := m.consumeSkip(msg.Type()); consumed {
		return Output[T]{Model: next}
	}

	prev := m
	next := transition(cfg, m, msg)
	next = normalize(cfg, next)

	selChanged := !sameIDSet(cfg, prev.selectedItems, next.selectedItems)
	effects, next := deriveEffects(cfg, prev, next, msg, selChanged)
	events := deriveEvents(prev, next, selChanged)

	return Output[T]{Model: next, Effects: effects, Events: events}
}

// transition computes the raw next model. Setter messages bypass state
// gating; everything else dispatches on the current state.
func transition[T any](cfg Config[T], m Model[T], msg Msg) Model[T] {
	switch msg := msg.(type) {
	case SetAllItems[T]:
		return applySetAllItems(cfg, m, msg.Items)
	case SetSelectedItems[T]:
		return applySetSelectedItems(cfg, m, msg.Items)
	case SetInputValue:
		return applySetInputValue(m, msg.Value)
	case SetHighlightIndex:
		return applySetHighlightIndex(cfg, m, msg.Index)
	case SetSelectMode:
		return applySetSelectMode(m, msg.Mode)
	}

	switch m.tag {
	case tagBlurred:
		return updateBlurred(cfg, m, msg)
	case tagFocusedClosed:
		return updateFocusedClosed(cfg, m, msg)
	case tagFocusedOpened:
		return updateFocusedOpened(cfg, m, msg)
	case tagHighlighted:
		return updateHighlighted(cfg, m, msg)
	case tagSelectedHighlighted:
		return updateSelectedHighlighted(cfg, m, msg)
	}
	return m
}

func updateBlurred[T any](cfg Config[T], m Model[T], msg Msg) Model[T] {
	switch msg := msg.(type) {
	case FocusedInput:
		return openReset(cfg, m)
	case PressedInput:
		return openReset(cfg, m)
	case ToggleOpened:
		return openReset(cfg, m)
	case FocusedSelectedItem[T]:
		return focusSelected(cfg, m, msg.Item)
	case PressedUnselectAll:
		return clearSelection(m)
	case PressedUnselectButton[T]:
		return unselectItem(cfg, m, msg.Item)
	}
	return m
}

func updateFocusedClosed[T any](cfg Config[T], m Model[T], msg Msg) Model[T] {
	switch msg := msg.(type) {
	case PressedInput:
		return openKeep(m)
	case ToggleOpened:
		return openKeep(m)
	case PressedVerticalArrow:
		return openByArrow(cfg, m, msg.Arrow)
	case PressedHorizontalArrow:
		return maybeEnterSelected(cfg, m, msg.Arrow)
	case PressedBackspace:
		return backspaceSelection(cfg, m)
	case InputtedValue:
		return typeValue(m, msg.Value)
	case BlurredInput:
		return blurModel(m)
	case FocusedSelectedItem[T]:
		return focusSelected(cfg, m, msg.Item)
	case PressedUnselectAll:
		return clearSelection(m)
	case PressedUnselectButton[T]:
		return unselectItem(cfg, m, msg.Item)
	}
	return m
}

func updateFocusedOpened[T any](cfg Config[T], m Model[T], msg Msg) Model[T] {
	switch msg := msg.(type) {
	case PressedVerticalArrow:
		return enterHighlight(cfg, m, msg.Arrow)
	case PressedHorizontalArrow:
		return maybeEnterSelected(cfg, m, msg.Arrow)
	case PressedItem[T]:
		return chooseItem(cfg, m, msg.Item)
	case HoveredOverItem:
		return hoverHighlight(cfg, m, msg.Index)
	case PressedBackspace:
		return backspaceSelection(cfg, m)
	case PressedEscape:
		return closeDropdown(m)
	case ToggleOpened:
		return closeDropdown(m)
	case InputtedValue:
		return typeValue(m, msg.Value)
	case BlurredInput:
		return blurModel(m)
	case FocusedSelectedItem[T]:
		return focusSelected(cfg, m, msg.Item)
	case PressedUnselectAll:
		return clearSelection(m)
	case PressedUnselectButton[T]:
		return unselectItem(cfg, m, msg.Item)
	}
	return m
}

func updateHighlighted[T any](cfg Config[T], m Model[T], msg Msg) Model[T] {
	switch msg := msg.(type) {
	case PressedVerticalArrow:
		return moveHighlight(cfg, m, msg.Arrow)
	case PressedHorizontalArrow:
		return maybeEnterSelected(cfg, m, msg.Arrow)
	case PressedEnter:
		if item, ok := visibleAt(cfg, m, m.highlightIdx); ok {
			return chooseItem(cfg, m, item)
		}
		return m
	case PressedItem[T]:
		return chooseItem(cfg, m, msg.Item)
	case HoveredOverItem:
		return hoverHighlight(cfg, m, msg.Index)
	case PressedBackspace:
		return backspaceSelection(cfg, m)
	case PressedEscape:
		return closeDropdown(m)
	case ToggleOpened:
		return closeDropdown(m)
	case InputtedValue:
		return typeValue(m, msg.Value)
	case BlurredInput:
		return blurModel(m)
	case FocusedSelectedItem[T]:
		return focusSelected(cfg, m, msg.Item)
	case PressedUnselectAll:
		return clearSelection(m)
	case PressedUnselectButton[T]:
		return unselectItem(cfg, m, msg.Item)
	}
	return m
}

func updateSelectedHighlighted[T any](cfg Config[T], m Model[T], msg Msg) Model[T] {
	switch msg := msg.(type) {
	case PressedHorizontalArrow:
		return moveSelectedFocus(m, msg.Arrow)
	case PressedBackspace:
		return removeFocusedSelected(cfg, m)
	case PressedEscape:
		return exitSelectedFocus(m)
	case FocusedInput:
		return openReset(cfg, m)
	case PressedInput:
		return openReset(cfg, m)
	case ToggleOpened:
		return openReset(cfg, m)
	case FocusedSelectedItem[T]:
		return focusSelected(cfg, m, msg.Item)
	case BlurredSelectedItem[T]:
		ordered := orderedSelected(m)
		if m.focusedSel < len(ordered) && cfg.ItemID(ordered[m.focusedSel]) == cfg.ItemID(msg.Item) {
			return blurModel(m)
		}
		return m
	case PressedUnselectAll:
		return clearSelection(m)
	case PressedUnselectButton[T]:
		return unselectItem(cfg, m, msg.Item)
	}
	return m
}

// openReset opens the dropdown with the input text reset to mirror the
// selection: the chosen item's text in single-select, empty otherwise. The
// reset also rewinds hasSearched so the full list shows before the next
// keystroke.
func openReset[T any](cfg Config[T], m Model[T]) Model[T] {
	m.tag = tagFocusedOpened
	m.highlightIdx, m.keyboardNav, m.focusedSel = 0, false, 0
	if m.searchable {
		m.inputValue = restingInputValue(cfg, m)
		m.hasSearched = false
	}
	return m
}

// openKeep opens the dropdown leaving the input text as typed
func openKeep[T any](m Model[T]) Model[T] {
	m.tag = tagFocusedOpened
	m.highlightIdx, m.keyboardNav = 0, false
	return m
}

func restingInputValue[T any](cfg Config[T], m Model[T]) string {
	if m.mode.IsMulti() {
		return ""
	}
	if len(m.selectedItems) > 0 {
		return cfg.ItemInputValue(m.selectedItems[0])
	}
	return ""
}

func closeDropdown[T any](m Model[T]) Model[T] {
	m.tag = tagFocusedClosed
	m.highlightIdx, m.keyboardNav = 0, false
	return m
}

func blurModel[T any](m Model[T]) Model[T] {
	m.tag = tagBlurred
	m.highlightIdx, m.keyboardNav, m.focusedSel = 0, false, 0
	return m
}

// openByArrow handles a vertical arrow on a closed, focused widget. The
// first press only opens in single-select; multi-select jumps straight to a
// highlight anchored at the first selected visible item.
func openByArrow[T any](cfg Config[T], m Model[T], arrow Vertical) Model[T] {
	m = openKeep(m)
	if !m.mode.IsMulti() {
		return m
	}
	return enterHighlight(cfg, m, arrow)
}

// enterHighlight moves from an open, unhighlighted dropdown into the
// highlighted state. Single-select starts at the top for Down and at the
// boundary-policy position for Up; multi-select anchors at the first
// selected visible item.
func enterHighlight[T any](cfg Config[T], m Model[T], arrow Vertical) Model[T] {
	visible := VisibleItems(cfg, m)
	if len(visible) == 0 {
		return m
	}

	idx := 0
	switch {
	case m.mode.IsMulti():
		idx = firstSelectedVisible(cfg, m, visible)
	case arrow == Up:
		idx = nextHighlightIndex(m.highlightMode, -1, len(visible))
	}

	m.tag = tagHighlighted
	m.highlightIdx = idx
	m.keyboardNav = true
	return m
}

// moveHighlight applies a vertical arrow inside the highlighted state.
// Multi-select keeps the highlight anchored in place; single-select moves by
// one under the boundary policy.
func moveHighlight[T any](cfg Config[T], m Model[T], arrow Vertical) Model[T] {
	visible := VisibleItems(cfg, m)
	if len(visible) == 0 {
		return m
	}

	delta := 0
	if !m.mode.IsMulti() {
		if arrow == Down {
			delta = 1
		} else {
			delta = -1
		}
	}

	m.highlightIdx = nextHighlightIndex(m.highlightMode, m.highlightIdx+delta, len(visible))
	m.keyboardNav = true
	return m
}

func hoverHighlight[T any](cfg Config[T], m Model[T], index int) Model[T] {
	visible := VisibleItems(cfg, m)
	if index < 0 || index >= len(visible) {
		// stale pointer index, e.g. from a list that just shrank
		return m
	}
	m.tag = tagHighlighted
	m.highlightIdx = index
	m.keyboardNav = false
	return m
}

// firstSelectedVisible returns the index of the first visible item that is
// currently selected, or 0 when none is
func firstSelectedVisible[T any](cfg Config[T], m Model[T], visible []T) int {
	if len(m.selectedItems) == 0 {
		return 0
	}
	selected := make(map[string]struct{}, len(m.selectedItems))
	for _, s := range m.selectedItems {
		selected[cfg.ItemID(s)] = struct{}{}
	}
	for i, item := range visible {
		if _, ok := selected[cfg.ItemID(item)]; ok {
			return i
		}
	}
	return 0
}

// chooseItem applies a pick via pointer press or enter. The empty sentinel
// always clears the selection and closes; everything else toggles or
// replaces membership depending on the select mode.
func chooseItem[T any](cfg Config[T], m Model[T], item T) Model[T] {
	if cfg.IsEmptyItem != nil && cfg.IsEmptyItem(item) {
		m.selectedItems = nil
		if m.searchable {
			if !m.mode.IsMulti() {
				m.inputValue = cfg.ItemInputValue(item)
			} else {
				m.inputValue = ""
			}
			m.hasSearched = false
		}
		return closeDropdown(m)
	}

	if m.mode.IsMulti() {
		if isSelectedID(cfg, m, cfg.ItemID(item)) {
			m = unselectItem(cfg, m, item)
		} else {
			m = appendSelected(m, item)
		}
		if m.searchable {
			m.inputValue = ""
			m.hasSearched = false
		}
	} else {
		m.selectedItems = []T{item}
		if m.searchable {
			m.inputValue = cfg.ItemInputValue(item)
			m.hasSearched = false
		}
	}

	if m.keepOpen {
		return m
	}
	return closeDropdown(m)
}

func appendSelected[T any](m Model[T], item T) Model[T] {
	next := make([]T, len(m.selectedItems), len(m.selectedItems)+1)
	copy(next, m.selectedItems)
	m.selectedItems = append(next, item)
	return m
}

func unselectItem[T any](cfg Config[T], m Model[T], item T) Model[T] {
	id := cfg.ItemID(item)
	kept := make([]T, 0, len(m.selectedItems))
	removed := false
	for _, s := range m.selectedItems {
		if !removed && cfg.ItemID(s) == id {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		return m
	}
	m.selectedItems = kept
	return m
}

func clearSelection[T any](m Model[T]) Model[T] {
	m.selectedItems = nil
	return m
}

func isSelectedID[T any](cfg Config[T], m Model[T], id string) bool {
	for _, s := range m.selectedItems {
		if cfg.ItemID(s) == id {
			return true
		}
	}
	return false
}

// backspaceSelection handles backspace while the input text is empty: the
// display-ordered first selected item, the one nearest the input, is removed
func backspaceSelection[T any](cfg Config[T], m Model[T]) Model[T] {
	if m.searchable && m.inputValue != "" {
		return m
	}
	ordered := orderedSelected(m)
	if len(ordered) == 0 {
		return m
	}
	return unselectItem(cfg, m, ordered[0])
}

func removeFocusedSelected[T any](cfg Config[T], m Model[T]) Model[T] {
	ordered := orderedSelected(m)
	if m.focusedSel >= len(ordered) {
		return m
	}
	return unselectItem(cfg, m, ordered[m.focusedSel])
}

// maybeEnterSelected moves keyboard focus from the input onto the
// selected-item row when the arrow points toward it, the input is empty and
// the mode allows row navigation
func maybeEnterSelected[T any](cfg Config[T], m Model[T], arrow Horizontal) Model[T] {
	if !m.mode.IsMulti() || m.mode.ListNavDisabled() {
		return m
	}
	if len(m.selectedItems) == 0 {
		return m
	}
	if m.searchable && m.inputValue != "" {
		return m
	}
	if towardSelected(m.mode.Direction()) != arrow {
		return m
	}
	m.tag = tagSelectedHighlighted
	m.focusedSel = 0
	m.highlightIdx, m.keyboardNav = 0, false
	return m
}

// moveSelectedFocus applies a horizontal arrow inside the selected-item row.
// Moving past position 0 toward the input hands focus back with the text
// cleared.
func moveSelectedFocus[T any](m Model[T], arrow Horizontal) Model[T] {
	if towardSelected(m.mode.Direction()) == arrow {
		m.focusedSel = clampIndex(m.focusedSel+1, len(m.selectedItems))
		return m
	}
	if m.focusedSel == 0 {
		return exitSelectedFocus(m)
	}
	m.focusedSel--
	return m
}

func exitSelectedFocus[T any](m Model[T]) Model[T] {
	m.tag = tagFocusedClosed
	m.focusedSel = 0
	if m.searchable {
		m.inputValue = ""
		m.hasSearched = false
	}
	return m
}

// towardSelected returns the arrow that points from the input into the
// selected-item row for the given layout direction
func towardSelected(d Direction) Horizontal {
	if d == LeftToRight {
		return Left
	}
	return Right
}

func focusSelected[T any](cfg Config[T], m Model[T], item T) Model[T] {
	if !m.mode.IsMulti() {
		return m
	}
	id := cfg.ItemID(item)
	for i, s := range orderedSelected(m) {
		if cfg.ItemID(s) == id {
			m.tag = tagSelectedHighlighted
			m.focusedSel = i
			m.highlightIdx, m.keyboardNav = 0, false
			return m
		}
	}
	return m
}

func typeValue[T any](m Model[T], value string) Model[T] {
	if !m.searchable {
		return m
	}
	m.inputValue = value
	m.hasSearched = true
	// typing opens the dropdown and drops any highlight, the result list is
	// about to change under it
	m.tag = tagFocusedOpened
	m.highlightIdx, m.keyboardNav = 0, false
	return m
}

func applySetAllItems[T any](cfg Config[T], m Model[T], items []T) Model[T] {
	m.allItems = dedupeByID(cfg, items)

	byID := make(map[string]T, len(m.allItems))
	for _, item := range m.allItems {
		byID[cfg.ItemID(item)] = item
	}

	// selected entries survive only if the new list still carries their
	// identifier, and they are refreshed to the new instances
	kept := make([]T, 0, len(m.selectedItems))
	for _, s := range m.selectedItems {
		if fresh, ok := byID[cfg.ItemID(s)]; ok {
			kept = append(kept, fresh)
		}
	}
	m.selectedItems = kept

	// the fingerprint only sees the item count, so a same-size replacement
	// would otherwise serve stale results
	if cfg.Cache != nil {
		cfg.Cache.Purge()
	}
	return m
}

func applySetSelectedItems[T any](cfg Config[T], m Model[T], items []T) Model[T] {
	byID := make(map[string]T, len(m.allItems))
	for _, item := range m.allItems {
		byID[cfg.ItemID(item)] = item
	}

	next := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := cfg.ItemID(item)
		if _, dup := seen[id]; dup {
			continue
		}
		fresh, ok := byID[id]
		if !ok {
			continue
		}
		seen[id] = struct{}{}
		next = append(next, fresh)
	}
	m.selectedItems = next
	return m
}

func applySetInputValue[T any](m Model[T], value string) Model[T] {
	if !m.searchable {
		return m
	}
	// programmatic text does not count as a search; the full list keeps
	// showing until the user types
	m.inputValue = value
	return m
}

func applySetHighlightIndex[T any](cfg Config[T], m Model[T], index int) Model[T] {
	if !m.Opened() {
		return m
	}
	visible := VisibleItems(cfg, m)
	if len(visible) == 0 {
		return m
	}
	m.tag = tagHighlighted
	m.highlightIdx = nextHighlightIndex(m.highlightMode, index, len(visible))
	m.keyboardNav = false
	return m
}

func applySetSelectMode[T any](m Model[T], mode SelectMode) Model[T] {
	if !mode.IsMulti() && len(m.selectedItems) > 1 {
		// truncate under the outgoing direction so the item nearest the
		// input is the one that survives
		first := orderedSelected(m)[0]
		m.selectedItems = []T{first}
	}
	m.mode = mode
	return m
}

// normalize repairs any index that a transition or setter left out of range
// and demotes states whose subject disappeared
func normalize[T any](cfg Config[T], m Model[T]) Model[T] {
	if !m.mode.IsMulti() && len(m.selectedItems) > 1 {
		m.selectedItems = m.selectedItems[:1]
	}

	switch m.tag {
	case tagHighlighted:
		n := len(VisibleItems(cfg, m))
		if n == 0 {
			m.tag = tagFocusedOpened
			m.highlightIdx, m.keyboardNav = 0, false
			break
		}
		m.highlightIdx = nextHighlightIndex(m.highlightMode, m.highlightIdx, n)
	case tagSelectedHighlighted:
		n := len(m.selectedItems)
		if n == 0 || !m.mode.IsMulti() {
			m.tag = tagFocusedClosed
			m.focusedSel = 0
			break
		}
		m.focusedSel = clampIndex(m.focusedSel, n)
	}
	return m
}

// deriveEffects diffs the models around a transition and returns the side
// effects to execute. It also queues the one-shot suppressions that guard
// against the synthetic messages those effects will provoke, which is why it
// returns an updated model.
func deriveEffects[T any](cfg Config[T], prev, next Model[T], msg Msg, selChanged bool) ([]Effect, Model[T]) {
	var effects []Effect
	focusInputEmitted := false
	focusInput := func() {
		if !focusInputEmitted {
			effects = append(effects, FocusInput{})
			focusInputEmitted = true
		}
	}

	switch {
	case !prev.Opened() && next.Opened():
		focusInput()

		scrolled := false
		if next.tag == tagHighlighted {
			if item, ok := visibleAt(cfg, next, next.highlightIdx); ok {
				effects = append(effects, ScrollItemIntoView[T]{Item: item})
				scrolled = true
			}
		} else if ordered := orderedSelected(next); len(ordered) > 0 {
			effects = append(effects, ScrollItemIntoView[T]{Item: ordered[0]})
			scrolled = true
		}

		// scrolling shifts the list under the pointer and provokes one
		// extra synthetic hover on top of the pointer's own
		if scrolled {
			next = next.pushSkip(MsgHoveredOverItem, 2)
		} else {
			next = next.pushSkip(MsgHoveredOverItem, 1)
		}

	case next.tag == tagHighlighted && msg.Type() == MsgPressedVerticalArrow:
		if item, ok := visibleAt(cfg, next, next.highlightIdx); ok {
			effects = append(effects, ScrollItemIntoView[T]{Item: item})
		}
		next = next.pushSkip(MsgHoveredOverItem, 1)
	}

	if next.tag == tagSelectedHighlighted {
		entered := prev.tag != tagSelectedHighlighted
		if entered || prev.focusedSel != next.focusedSel || selChanged {
			ordered := orderedSelected(next)
			if next.focusedSel < len(ordered) {
				effects = append(effects, FocusSelectedItem[T]{
					Item:  ordered[next.focusedSel],
					Index: next.focusedSel,
				})
			}
		}
	}

	if prev.tag == tagSelectedHighlighted && next.tag == tagFocusedClosed {
		focusInput()
	}

	if msg.Type() == MsgPressedUnselectAll {
		focusInput()
	}

	if msg.Type() == MsgPressedInput && prev.Blurred() {
		focusInput()
	}

	// a programmatic focus makes browsers deliver one synthetic press on
	// the freshly focused input
	if (prev.tag == tagBlurred || prev.tag == tagSelectedHighlighted) && next.Focused() {
		next = next.pushSkip(MsgPressedInput, 1)
	}

	return effects, next
}

func deriveEvents[T any](prev, next Model[T], selChanged bool) []Event {
	var events []Event
	if prev.inputValue != next.inputValue {
		events = append(events, InputValueChanged{Value: next.inputValue})
	}
	if selChanged {
		events = append(events, SelectedItemsChanged[T]{Selected: orderedSelected(next)})
	}
	return events
}

func sameIDSet[T any](cfg Config[T], a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]struct{}, len(a))
	for _, item := range a {
		ids[cfg.ItemID(item)] = struct{}{}
	}
	for _, item := range b {
		if _, ok := ids[cfg.ItemID(item)]; !ok {
			return false
		}
	}
	return true
}

// nextHighlightIndex maps a raw index into [0, length) under the boundary
// policy: circular wraps, clamp saturates
func nextHighlightIndex(mode HighlightMode, raw, length int) int {
	if length <= 0 {
		return 0
	}
	if mode == HighlightClamp {
		return clampIndex(raw, length)
	}
	r := raw % length
	if r < 0 {
		r += length
	}
	return r
}

func clampIndex(raw, length int) int {
	if length <= 0 || raw < 0 {
		return 0
	}
	if raw >= length {
		return length - 1
	}
	return raw
}
