package state

import (
	"strconv"
	"strings"

	"github.com/cristianoliveira/staffview/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	width := m.uiState.GetWidth()
	var s strings.Builder

	switch m.uiState.GetMode() {
	case ModeDetails:
		if e, ok := m.Selected(); ok {
			s.WriteString(render.Details(e))
			break
		}
		s.WriteString(render.Empty())
	case ModeDepartments:
		s.WriteString(render.Departments(m.controller.Departments(), width))
	default:
		s.WriteString(render.Header(width))
		s.WriteString("\n")
		s.WriteString(m.uiState.GetViewport().View())
	}

	s.WriteString("\n")
	s.WriteString(render.Summary(render.SummaryState{
		Pagination: m.result.Pagination,
		Spec:       m.result.Spec,
		SearchMode: m.controller.SearchMode(),
	}))

	if status := render.Status(m.status); status != "" {
		s.WriteString("\n")
		s.WriteString(status)
	}

	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		SearchMode:  m.uiState.IsSearchMode(),
		CommandMode: m.uiState.IsCommandMode(),
		InputView:   m.inputView(),
		Width:       width,
	}))
	return s.String()
}

func (m *Model) inputView() string {
	switch {
	case m.uiState.IsSearchMode():
		return "/" + m.uiState.GetSearchQuery()
	case m.uiState.IsCommandMode():
		return ":" + m.uiState.GetCommandQuery()
	}
	return ""
}

// updateViewportContent renders the current page into the viewport.
func (m *Model) updateViewportContent() {
	width := m.uiState.GetWidth()
	cursor := m.uiState.GetCursor()

	if len(m.result.Visible) == 0 {
		m.uiState.GetViewport().SetContent(render.Empty())
		return
	}

	rows := make([]string, len(m.result.Visible))
	for i, e := range m.result.Visible {
		rows[i] = render.Row(render.RowState{
			Employee: e,
			Width:    width,
			Selected: i == cursor,
		})
	}
	m.uiState.GetViewport().SetContent(strings.Join(rows, "\n"))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
