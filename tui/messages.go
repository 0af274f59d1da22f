package tui

// SelectionChangedMsg is delivered to the parent program when the set of
// selected items changes, in display order
type SelectionChangedMsg[T any] struct {
	Selected []T
}

// InputChangedMsg is delivered to the parent program when the search text
// changes, whether typed or reset by the widget
type InputChangedMsg struct {
	Value string
}
