package combokit

// MsgType identifies a message variant. The reducer dispatches on it and the
// skip-once queue stores it.
type MsgType string

// Message types
const (
	MsgPressedVerticalArrow   MsgType = "pressed-vertical-arrow-key"
	MsgPressedHorizontalArrow MsgType = "pressed-horizontal-arrow-key"
	MsgPressedBackspace       MsgType = "pressed-backspace-key"
	MsgPressedEscape          MsgType = "pressed-escape-key"
	MsgPressedEnter           MsgType = "pressed-enter-key"
	MsgPressedKey             MsgType = "pressed-key"
	MsgPressedItem            MsgType = "pressed-item"
	MsgFocusedInput           MsgType = "focused-input"
	MsgBlurredInput           MsgType = "blurred-input"
	MsgInputtedValue          MsgType = "inputted-value"
	MsgHoveredOverItem        MsgType = "hovered-over-item"
	MsgPressedInput           MsgType = "pressed-input"
	MsgPressedUnselectAll     MsgType = "pressed-unselect-all-button"
	MsgPressedUnselectButton  MsgType = "pressed-unselect-button"
	MsgFocusedSelectedItem    MsgType = "focused-selected-item"
	MsgBlurredSelectedItem    MsgType = "blurred-selected-item"
	MsgToggleOpened           MsgType = "toggle-opened"
	MsgSetAllItems            MsgType = "set-all-items"
	MsgSetSelectedItems       MsgType = "set-selected-items"
	MsgSetInputValue          MsgType = "set-input-value"
	MsgSetHighlightIndex      MsgType = "set-highlight-index"
	MsgSetSelectMode          MsgType = "set-mode"
)

// Msg is the interface for all interaction messages
type Msg interface {
	Type() MsgType
}

// Vertical is the axis value carried by an up or down arrow key
type Vertical string

// Vertical arrow keys
const (
	Up   Vertical = "up"
	Down Vertical = "down"
)

// Horizontal is the axis value carried by a left or right arrow key
type Horizontal string

// Horizontal arrow keys
const (
	Left  Horizontal = "left"
	Right Horizontal = "right"
)

// PressedVerticalArrow reports an up or down arrow key press
type PressedVerticalArrow struct {
	Arrow Vertical
}

func (PressedVerticalArrow) Type() MsgType { return MsgPressedVerticalArrow }

// PressedHorizontalArrow reports a left or right arrow key press
type PressedHorizontalArrow struct {
	Arrow Horizontal
}

func (PressedHorizontalArrow) Type() MsgType { return MsgPressedHorizontalArrow }

// PressedBackspace reports a backspace press. It only matters to the reducer
// while the input text is empty; ordinary character deletion arrives as an
// InputtedValue message instead.
type PressedBackspace struct{}

func (PressedBackspace) Type() MsgType { return MsgPressedBackspace }

// PressedEscape reports an escape press
type PressedEscape struct{}

func (PressedEscape) Type() MsgType { return MsgPressedEscape }

// PressedEnter reports an enter press
type PressedEnter struct{}

func (PressedEnter) Type() MsgType { return MsgPressedEnter }

// PressedKey reports any other key press. The reducer ignores it; it exists
// so translators can forward a complete keyboard stream.
type PressedKey struct {
	Key string
}

func (PressedKey) Type() MsgType { return MsgPressedKey }

// PressedItem reports a pointer press on a visible item
type PressedItem[T any] struct {
	Item T
}

func (PressedItem[T]) Type() MsgType { return MsgPressedItem }

// FocusedInput reports the text input gaining focus
type FocusedInput struct{}

func (FocusedInput) Type() MsgType { return MsgFocusedInput }

// BlurredInput reports the text input losing focus
type BlurredInput struct{}

func (BlurredInput) Type() MsgType { return MsgBlurredInput }

// InputtedValue reports the input text changing to Value
type InputtedValue struct {
	Value string
}

func (InputtedValue) Type() MsgType { return MsgInputtedValue }

// HoveredOverItem reports the pointer moving over the visible item at Index
type HoveredOverItem struct {
	Index int
}

func (HoveredOverItem) Type() MsgType { return MsgHoveredOverItem }

// PressedInput reports a pointer press on the text input
type PressedInput struct{}

func (PressedInput) Type() MsgType { return MsgPressedInput }

// PressedUnselectAll reports a press on the clear-all control
type PressedUnselectAll struct{}

func (PressedUnselectAll) Type() MsgType { return MsgPressedUnselectAll }

// PressedUnselectButton reports a press on a selected item's remove control
type PressedUnselectButton[T any] struct {
	Item T
}

func (PressedUnselectButton[T]) Type() MsgType { return MsgPressedUnselectButton }

// FocusedSelectedItem reports a selected item gaining keyboard focus
type FocusedSelectedItem[T any] struct {
	Item T
}

func (FocusedSelectedItem[T]) Type() MsgType { return MsgFocusedSelectedItem }

// BlurredSelectedItem reports a selected item losing keyboard focus
type BlurredSelectedItem[T any] struct {
	Item T
}

func (BlurredSelectedItem[T]) Type() MsgType { return MsgBlurredSelectedItem }

// ToggleOpened requests the dropdown to flip between opened and closed
type ToggleOpened struct{}

func (ToggleOpened) Type() MsgType { return MsgToggleOpened }

// SetAllItems replaces the candidate item list. Selected items missing from
// the new list are dropped so the selection stays a subset of the items.
type SetAllItems[T any] struct {
	Items []T
}

func (SetAllItems[T]) Type() MsgType { return MsgSetAllItems }

// SetSelectedItems replaces the selection. Entries whose identifier is not
// present in the candidate list are dropped.
type SetSelectedItems[T any] struct {
	Items []T
}

func (SetSelectedItems[T]) Type() MsgType { return MsgSetSelectedItems }

// SetInputValue replaces the input text without marking the model as searched
type SetInputValue struct {
	Value string
}

func (SetInputValue) Type() MsgType { return MsgSetInputValue }

// SetHighlightIndex moves the highlight while the dropdown is open, e.g. to
// mirror a pointer position tracked outside the engine
type SetHighlightIndex struct {
	Index int
}

func (SetHighlightIndex) Type() MsgType { return MsgSetHighlightIndex }

// SetSelectMode switches between single- and multi-select at runtime
type SetSelectMode struct {
	Mode SelectMode
}

func (SetSelectMode) Type() MsgType { return MsgSetSelectMode }
