package combokit

// ItemStatus classifies an item for rendering
type ItemStatus string

// Item statuses
const (
	ItemSelectedAndHighlighted ItemStatus = "selected-and-highlighted"
	ItemSelected               ItemStatus = "selected"
	ItemHighlighted            ItemStatus = "highlighted"
	ItemUnselected             ItemStatus = "unselected"
)

// HighlightedItem returns the visible item under the highlight, if any
func HighlightedItem[T any](cfg Config[T], m Model[T]) (T, bool) {
	var zero T
	if m.tag != tagHighlighted {
		return zero, false
	}
	return visibleAt(cfg, m, m.highlightIdx)
}

// SelectedItem returns the display-ordered first selected item, if any. For
// single-select that is the selected item.
func SelectedItem[T any](m Model[T]) (T, bool) {
	var zero T
	ordered := orderedSelected(m)
	if len(ordered) == 0 {
		return zero, false
	}
	return ordered[0], true
}

// FocusedSelected returns the selected item under keyboard focus, if any
func FocusedSelected[T any](m Model[T]) (T, bool) {
	var zero T
	if m.tag != tagSelectedHighlighted {
		return zero, false
	}
	ordered := orderedSelected(m)
	if m.focusedSel >= len(ordered) {
		return zero, false
	}
	return ordered[m.focusedSel], true
}

// CurrentInputValue derives the text a view should display in the input:
// the raw search text while the widget is interacting, otherwise the
// selection echo with the empty-sentinel text as fallback.
func CurrentInputValue[T any](cfg Config[T], m Model[T]) string {
	if m.searchable && !m.Blurred() {
		return m.inputValue
	}
	if !m.mode.IsMulti() && len(m.selectedItems) > 0 {
		return cfg.ItemInputValue(m.selectedItems[0])
	}
	if len(m.selectedItems) == 0 && cfg.IsEmptyItem != nil {
		for _, item := range m.allItems {
			if cfg.IsEmptyItem(item) {
				return cfg.ItemInputValue(item)
			}
		}
	}
	return ""
}

// IsItemSelected reports whether the item is part of the selection
func IsItemSelected[T any](cfg Config[T], m Model[T], item T) bool {
	return isSelectedID(cfg, m, cfg.ItemID(item))
}

// IsItemHighlighted reports whether the item is under the highlight
func IsItemHighlighted[T any](cfg Config[T], m Model[T], item T) bool {
	highlighted, ok := HighlightedItem(cfg, m)
	if !ok {
		return false
	}
	return cfg.ItemID(highlighted) == cfg.ItemID(item)
}

// ItemStatusOf classifies an item by selection and highlight
func ItemStatusOf[T any](cfg Config[T], m Model[T], item T) ItemStatus {
	selected := IsItemSelected(cfg, m, item)
	highlighted := IsItemHighlighted(cfg, m, item)
	switch {
	case selected && highlighted:
		return ItemSelectedAndHighlighted
	case selected:
		return ItemSelected
	case highlighted:
		return ItemHighlighted
	default:
		return ItemUnselected
	}
}
