package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager run
type helpPagerMsg struct {
	err error
}

// pagerOps shows content through the ov pager, handing the terminal over
// and back around the pager's lifetime
type pagerOps struct {
	program *tea.Program
}

func newPagerOps() *pagerOps {
	return &pagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *pagerOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowInPager runs ov over the given content
func (p *pagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// give ov a moment to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// helpContent renders the key reference shown in the pager
func helpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("combodemo Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Dropdown"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move the highlight")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Enter"), descStyle.Render("Select the highlighted item")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Esc"), descStyle.Render("Close the dropdown")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Ctrl+O"), descStyle.Render("Toggle the dropdown")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Mouse"), descStyle.Render("Hover, click and wheel-scroll the list")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Text"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Type"), descStyle.Render("Filter the list")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("⌫"), descStyle.Render("Delete text, or unselect with the text empty")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("←/→"), descStyle.Render("Walk the selected chips (multi-select)")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Ctrl+U"), descStyle.Render("Clear the whole selection")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Click ×"), descStyle.Render("Remove one chip")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Program"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Tab"), descStyle.Render("Focus or blur the widget")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Ctrl+N"), descStyle.Render("Add the typed text as a new item")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("F1, ?"), descStyle.Render("Show this help, ? while blurred")))
	help.WriteString(fmt.Sprintf("  %s   %s", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit")))

	return help.String()
}
