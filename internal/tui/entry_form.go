package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notebookctl/internal/types"
)

const (
	rowSection = iota
	rowTitle
	rowType
	rowDate
	rowAuthor
	rowWitness
	rowCount
)

// EntryFormDefaults seeds the form fields before the user edits them.
type EntryFormDefaults struct {
	Section    types.Section
	EntryTypes []types.EntryType
	Date       string
	Author     string
}

// EntryForm is the completed form as the caller consumes it.
type EntryForm struct {
	Section types.Section
	Title   string
	Type    string
	Date    string
	Author  string
	Witness string
}

// EntryFormModel is a six row form: two cycling selectors for section
// and entry type, four text inputs for title, date, author, and witness.
type EntryFormModel struct {
	sections   []types.Section
	sectionIdx int
	entryTypes []types.EntryType
	typeIdx    int
	inputs     []textinput.Model
	focus      int
	done       bool
	aborted    bool
}

func NewEntryFormModel(defaults EntryFormDefaults) EntryFormModel {
	title := textinput.New()
	title.Placeholder = "entry title, slashes nest directories"
	title.CharLimit = 120

	date := textinput.New()
	date.SetValue(defaults.Date)
	date.CharLimit = 32

	author := textinput.New()
	author.SetValue(defaults.Author)
	author.CharLimit = 64

	witness := textinput.New()
	witness.Placeholder = "optional"
	witness.CharLimit = 64

	m := EntryFormModel{
		sections:   types.Sections(),
		entryTypes: defaults.EntryTypes,
		inputs:     []textinput.Model{title, date, author, witness},
		focus:      rowSection,
	}
	for i, section := range m.sections {
		if section == defaults.Section {
			m.sectionIdx = i
		}
	}
	if len(m.entryTypes) > 0 {
		m.typeIdx = 1
	}
	return m
}

func (m EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.focus == rowCount-1 {
				m.done = true
				return m, tea.Quit
			}
			return m.moveFocus(1), nil
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "left":
			return m.cycle(-1), nil
		case "right":
			return m.cycle(1), nil
		}
	}
	if idx, ok := inputIndex(m.focus); ok {
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m EntryFormModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("New notebook entry"))
	b.WriteString("\n\n")
	b.WriteString(m.row(rowSection, "section", m.selectorView(rowSection)))
	b.WriteString(m.row(rowTitle, "title", m.inputs[0].View()))
	b.WriteString(m.row(rowType, "type", m.selectorView(rowType)))
	b.WriteString(m.row(rowDate, "date", m.inputs[1].View()))
	b.WriteString(m.row(rowAuthor, "author", m.inputs[2].View()))
	b.WriteString(m.row(rowWitness, "witness", m.inputs[3].View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter next field, left/right cycle, esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Aborted reports whether the user left the form without submitting.
func (m EntryFormModel) Aborted() bool {
	return m.aborted
}

// Form returns the collected fields.
func (m EntryFormModel) Form() EntryForm {
	form := EntryForm{
		Section: m.sections[m.sectionIdx],
		Title:   strings.TrimSpace(m.inputs[0].Value()),
		Date:    strings.TrimSpace(m.inputs[1].Value()),
		Author:  strings.TrimSpace(m.inputs[2].Value()),
		Witness: strings.TrimSpace(m.inputs[3].Value()),
	}
	if m.typeIdx > 0 && m.typeIdx <= len(m.entryTypes) {
		form.Type = m.entryTypes[m.typeIdx-1].Name
	}
	return form
}

func (m EntryFormModel) moveFocus(delta int) EntryFormModel {
	m.focus = (m.focus + delta + rowCount) % rowCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Focus()
	}
	return m
}

// cycle advances the selector under focus. The type selector has a
// leading none option, so its index runs from 0 to len(entryTypes).
func (m EntryFormModel) cycle(delta int) EntryFormModel {
	switch m.focus {
	case rowSection:
		n := len(m.sections)
		m.sectionIdx = (m.sectionIdx + delta + n) % n
	case rowType:
		n := len(m.entryTypes) + 1
		m.typeIdx = (m.typeIdx + delta + n) % n
	}
	return m
}

func (m EntryFormModel) row(row int, label string, value string) string {
	prefix := "  "
	styledLabel := blurredStyle.Render(label)
	if m.focus == row {
		prefix = focusedStyle.Render("> ")
		styledLabel = focusedStyle.Render(label)
	}
	return fmt.Sprintf("%s%s %s\n", prefix, padLabel(styledLabel, label), value)
}

func (m EntryFormModel) selectorView(row int) string {
	switch row {
	case rowSection:
		return fmt.Sprintf("< %s >", m.sections[m.sectionIdx])
	case rowType:
		if m.typeIdx == 0 || len(m.entryTypes) == 0 {
			return "< none >"
		}
		entryType := m.entryTypes[m.typeIdx-1]
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(entryType.Color)).Render("■")
		return fmt.Sprintf("< %s %s >", swatch, entryType.Name)
	}
	return ""
}

// padLabel pads using the raw label length, since the styled label
// carries invisible escape sequences.
func padLabel(styled string, raw string) string {
	const width = 8
	padding := width - len(raw)
	if padding < 1 {
		padding = 1
	}
	return styled + ":" + strings.Repeat(" ", padding)
}

func inputIndex(focus int) (int, bool) {
	switch focus {
	case rowTitle:
		return 0, true
	case rowDate:
		return 1, true
	case rowAuthor:
		return 2, true
	case rowWitness:
		return 3, true
	}
	return 0, false
}
