package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"combokit"
	"combokit/internal/catalog"
	"combokit/internal/eventbus"
	"combokit/tui"
)

// configSavedMsg tells the UI a config write finished
type configSavedMsg struct {
	path string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// appModel wraps the widget with program chrome: status line, item
// creation, the help pager and quit handling
type appModel struct {
	widget    *tui.Model[catalog.Item]
	cat       *catalog.Catalog
	bus       eventbus.EventBus
	pager     *pagerOps
	status    string
	lastSaved string
	width     int
}

func (a *appModel) Init() tea.Cmd {
	return tea.Batch(a.widget.Init(), a.widget.Focus())
}

func (a *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		_, cmd := a.widget.Update(msg)
		return a, cmd

	case tui.SelectionChangedMsg[catalog.Item]:
		ids := make([]string, len(msg.Selected))
		labels := make([]string, len(msg.Selected))
		for i, item := range msg.Selected {
			ids[i] = item.ID
			labels[i] = item.Label
		}
		a.bus.Publish(eventbus.SelectionChangedEvent{IDs: ids, Labels: labels})
		if len(labels) == 0 {
			a.status = "selection cleared"
		} else {
			a.status = "selected " + strings.Join(labels, ", ")
		}
		return a, nil

	case tui.InputChangedMsg:
		log.Printf("input changed: %q", msg.Value)
		return a, nil

	case configSavedMsg:
		a.lastSaved = msg.path
		return a, nil

	case helpPagerMsg:
		if msg.err != nil {
			a.status = "help pager: " + msg.err.Error()
			log.Printf("help pager error: %v", msg.err)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			// q only quits while the widget is blurred; focused, it is text
			if a.widget.Engine().Blurred() {
				return a, tea.Quit
			}
		case "?":
			if a.widget.Engine().Blurred() {
				return a, a.showHelp()
			}
		case "tab":
			if a.widget.Engine().Blurred() {
				return a, a.widget.Focus()
			}
			return a, a.widget.Blur()
		case "f1":
			return a, a.showHelp()
		case "ctrl+n":
			return a, a.addTypedItem()
		}
	}

	_, cmd := a.widget.Update(msg)
	return a, cmd
}

func (a *appModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("combodemo"))
	b.WriteString("\n\n")
	b.WriteString(a.widget.View())
	b.WriteString("\n\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	hint := "tab focus · ctrl+n add typed item · f1 help · ctrl+c quit"
	if a.lastSaved != "" {
		hint += " · saved " + a.lastSaved
	}
	b.WriteString(hintStyle.Render(hint))
	return b.String()
}

// addTypedItem turns the current input text into a catalog item and
// refreshes the widget's list, keeping the live selection
func (a *appModel) addTypedItem() tea.Cmd {
	label := strings.TrimSpace(a.widget.Engine().InputValue())
	if label == "" {
		a.status = "type a label first, then ctrl+n"
		return nil
	}
	item, ok := a.cat.Add(label)
	if !ok {
		a.status = fmt.Sprintf("%q is already in the list", label)
		return nil
	}
	a.bus.Publish(eventbus.ItemAddedEvent{ID: item.ID, Label: item.Label})
	a.status = fmt.Sprintf("added %q", item.Label)
	return a.widget.Step(combokit.SetAllItems[catalog.Item]{Items: a.cat.Items()})
}

func (a *appModel) showHelp() tea.Cmd {
	content := helpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: a.pager.ShowInPager(content)}
	}
}
