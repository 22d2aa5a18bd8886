// Package tui holds the interactive terminal forms of notebookctl.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RunEntryForm collects the fields of a new entry interactively. The
// second return value is false when the user aborted the form.
func RunEntryForm(defaults EntryFormDefaults) (EntryForm, bool, error) {
	program := tea.NewProgram(NewEntryFormModel(defaults))
	final, err := program.Run()
	if err != nil {
		return EntryForm{}, false, err
	}
	model, ok := final.(EntryFormModel)
	if !ok || model.Aborted() {
		return EntryForm{}, false, nil
	}
	return model.Form(), true, nil
}
