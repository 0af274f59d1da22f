package combokit

// EffectKind identifies a side-effect descriptor
type EffectKind string

// Effect kinds
const (
	EffectScrollItemIntoView EffectKind = "scroll-item-into-view"
	EffectFocusSelectedItem  EffectKind = "focus-selected-item"
	EffectFocusInput         EffectKind = "focus-input"
	EffectBlurInput          EffectKind = "blur-input"
)

// Effect describes a side effect for the caller to execute exactly once.
// The reducer only ever returns effects, it never performs them.
type Effect interface {
	Kind() EffectKind
}

// ScrollItemIntoView asks the view to bring Item into the visible window
type ScrollItemIntoView[T any] struct {
	Item T
}

func (ScrollItemIntoView[T]) Kind() EffectKind { return EffectScrollItemIntoView }

// FocusSelectedItem asks the view to move real keyboard focus onto the
// selected item at Index in display order
type FocusSelectedItem[T any] struct {
	Item  T
	Index int
}

func (FocusSelectedItem[T]) Kind() EffectKind { return EffectFocusSelectedItem }

// FocusInput asks the view to focus the text input
type FocusInput struct{}

func (FocusInput) Kind() EffectKind { return EffectFocusInput }

// BlurInput asks the view to remove focus from the text input
type BlurInput struct{}

func (BlurInput) Kind() EffectKind { return EffectBlurInput }

// EventKind identifies a change notification
type EventKind string

// Event kinds
const (
	EventInputValueChanged    EventKind = "input-value-changed"
	EventSelectedItemsChanged EventKind = "selected-items-changed"
)

// Event notifies the caller that a derived value changed during an update
type Event interface {
	Kind() EventKind
}

// InputValueChanged carries the new raw input text
type InputValueChanged struct {
	Value string
}

func (InputValueChanged) Kind() EventKind { return EventInputValueChanged }

// SelectedItemsChanged carries the new selection in display order
type SelectedItemsChanged[T any] struct {
	Selected []T
}

func (SelectedItemsChanged[T]) Kind() EventKind { return EventSelectedItemsChanged }
