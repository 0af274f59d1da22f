package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the widget
type Styles struct {
	Input         lipgloss.Style
	Placeholder   lipgloss.Style
	Chip          lipgloss.Style
	ChipFocused   lipgloss.Style
	ChipRemove    lipgloss.Style
	Item          lipgloss.Style
	ItemHighlight lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemBoth      lipgloss.Style
	Dropdown      lipgloss.Style
	Counter       lipgloss.Style
	Scroll        lipgloss.Style
	Empty         lipgloss.Style
}

// DefaultStyles returns a Styles instance with default values
func DefaultStyles() *Styles {
	return &Styles{
		Input:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("240")).
			Padding(0, 1),
		ChipFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")). // purple
			Padding(0, 1),
		ChipRemove: lipgloss.NewStyle().Faint(true),
		Item:       lipgloss.NewStyle().PaddingLeft(2),
		ItemHighlight: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(lipgloss.Color("238")).
			Bold(true),
		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("78")), // green
		ItemBoth: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("78")).
			Bold(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Scroll:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:   lipgloss.NewStyle().Faint(true).PaddingLeft(2),
	}
}
