package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/staffview/internal/domain"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch {
	case m.uiState.IsSearchMode():
		return m.handleSearchKey(msg)
	case m.uiState.IsCommandMode():
		return m.handleCommandKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleSearchKey edits the search box. Every edit is applied right away.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uiState.SetSearchMode(false, "")
		m.controller.SetSearch("")
	case tea.KeyEnter:
		m.uiState.SetSearchMode(false, "")
	case tea.KeyBackspace:
		m.uiState.BackspaceSearchQuery()
		m.controller.SetSearch(m.uiState.GetSearchQuery())
	case tea.KeyRunes, tea.KeySpace:
		m.uiState.AppendToSearchQuery(runesOf(msg)...)
		m.controller.SetSearch(m.uiState.GetSearchQuery())
	}
	return m, nil
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uiState.SetCommandMode(false)
	case tea.KeyEnter:
		line := m.uiState.GetCommandQuery()
		m.uiState.SetCommandMode(false)
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		result := m.commands.Run(line)
		if result.Quit {
			return m, tea.Quit
		}
		return m, m.setStatus(result.Message, result.Error)
	case tea.KeyTab:
		m.completeCommand()
	case tea.KeyBackspace:
		m.uiState.BackspaceCommandQuery()
	case tea.KeyRunes, tea.KeySpace:
		m.uiState.AppendToCommandQuery(runesOf(msg)...)
	}
	return m, nil
}

// completeCommand fills in the command name when exactly one command matches.
func (m *Model) completeCommand() {
	query := m.uiState.GetCommandQuery()
	if strings.Contains(query, " ") {
		return
	}
	if suggestions := m.commands.Suggestions(query); len(suggestions) == 1 {
		m.uiState.SetCommandQuery(suggestions[0] + " ")
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uiState.SetMode(ModeList)
		return m, nil
	case tea.KeyEnter:
		m.toggleMode(ModeDetails)
		return m, nil
	case tea.KeyUp:
		m.moveUp()
		return m, nil
	case tea.KeyDown:
		m.moveDown()
		return m, nil
	case tea.KeyLeft:
		m.controller.PrevPage()
		return m, nil
	case tea.KeyRight:
		m.controller.NextPage()
		return m, nil
	case tea.KeyCtrlR:
		return m, m.reload()
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return m.handleBinding(msg.Runes[0])
		}
	}
	return m, nil
}

func (m *Model) handleBinding(key rune) (tea.Model, tea.Cmd) {
	spec := m.controller.Spec()
	switch key {
	case 'q':
		return m, tea.Quit
	case '/':
		m.uiState.SetMode(ModeList)
		m.uiState.SetSearchMode(true, spec.Filter.Search)
	case ':':
		m.uiState.SetCommandMode(true)
	case 'j':
		m.moveDown()
	case 'k':
		m.moveUp()
	case 'n':
		m.controller.NextPage()
	case 'p':
		m.controller.PrevPage()
	case 's':
		next := spec.Sort.Field.Next()
		if err := m.controller.SetSort(next, spec.Sort.Order); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, m.setStatus("Sort: "+next.String()+" "+spec.Sort.Order.String(), false)
	case 'o':
		order := spec.Sort.Order.Toggle()
		if err := m.controller.SetSort(spec.Sort.Field, order); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, m.setStatus("Sort: "+spec.Sort.Field.String()+" "+order.String(), false)
	case '+':
		size := domain.NextPageSize(spec.PageSize)
		if err := m.controller.SetPageSize(size); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, m.setStatus("Page size: "+itoa(size), false)
	case 'x':
		m.controller.ClearFilters()
		return m, m.setStatus("Filters cleared", false)
	case 'd':
		m.toggleMode(ModeDepartments)
	}
	return m, nil
}

func (m *Model) toggleMode(mode Mode) {
	if m.uiState.GetMode() == mode {
		m.uiState.SetMode(ModeList)
		return
	}
	if mode == ModeDetails {
		if _, ok := m.Selected(); !ok {
			return
		}
	}
	m.uiState.SetMode(mode)
}

func (m *Model) moveUp() {
	m.uiState.MoveCursorUp()
	m.uiState.EnsureCursorVisible(len(m.result.Visible))
	m.updateViewportContent()
}

func (m *Model) moveDown() {
	m.uiState.MoveCursorDown(len(m.result.Visible))
	m.uiState.EnsureCursorVisible(len(m.result.Visible))
	m.updateViewportContent()
}

func runesOf(msg tea.KeyMsg) []rune {
	if msg.Type == tea.KeySpace {
		return []rune{' '}
	}
	return msg.Runes
}
