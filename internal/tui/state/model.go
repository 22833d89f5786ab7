// Package state implements the bubbletea model of the roster TUI.
package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/logging"
	"github.com/cristianoliveira/staffview/internal/notice"
	"github.com/cristianoliveira/staffview/internal/tui/render"
	"github.com/cristianoliveira/staffview/internal/tui/service"
	"github.com/cristianoliveira/staffview/internal/view"
)

const (
	headerFooterLines     = 6
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	statusClearDuration   = 5 * time.Second
)

// Model represents the TUI model for bubbletea.
type Model struct {
	uiState    *UIState
	controller *view.Controller
	commands   *service.CommandService
	loader     RecordLoader
	logger     logging.Logger

	// result is the last published view; the controller pushes it via Subscribe.
	result      view.Result
	unsubscribe func()

	notices   *notice.TUIHandler
	status    render.StatusState
	statusSeq int
}

// NewModel creates a TUI model driving controller. loader may be nil, which
// disables reloading.
func NewModel(controller *view.Controller, loader RecordLoader) *Model {
	logger := logging.GetGlobal().With("component", "tui")
	m := &Model{
		uiState:    NewUIState(),
		controller: controller,
		commands:   service.NewCommandService(controller, logger),
		loader:     loader,
		logger:     logger,
		result:     controller.Result(),
	}
	m.notices = notice.NewTUIHandler(func(msg notice.Message) {
		m.status = render.StatusState{Text: msg.Text, Error: msg.Level.IsProblem()}
	})
	m.unsubscribe = controller.Subscribe(m.onResult)
	m.updateViewportContent()
	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case RecordsLoadedMsg:
		return m.handleRecordsLoaded(msg)
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = render.StatusState{}
		}
		return m, nil
	}
	return m, nil
}

// Close detaches the model from its controller.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Result returns the view currently on screen.
func (m *Model) Result() view.Result {
	return m.result
}

// Notices returns the status message history.
func (m *Model) Notices() *notice.TUIHandler {
	return m.notices
}

// Selected returns the employee under the cursor.
func (m *Model) Selected() (domain.Employee, bool) {
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(m.result.Visible) {
		return domain.Employee{}, false
	}
	return m.result.Visible[cursor], true
}

func (m *Model) onResult(r view.Result) {
	pageChanged := r.Pagination.CurrentPage != m.result.Pagination.CurrentPage
	m.result = r
	if pageChanged {
		m.uiState.ResetCursor()
	}
	m.uiState.AdjustCursorBounds(len(r.Visible))
	m.updateViewportContent()
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.updateViewportContent()
	return m, nil
}

func (m *Model) handleRecordsLoaded(msg RecordsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("reload failed", "error", msg.Err.Error())
		return m, m.setStatus(msg.Err.Error(), true)
	}
	m.controller.SetRecords(msg.Records)
	m.logger.Info("records reloaded", "count", len(msg.Records))
	return m, m.setStatus("Reloaded "+itoa(len(msg.Records))+" employees", false)
}

func (m *Model) reload() tea.Cmd {
	if m.loader == nil {
		return m.setStatus("Reload is not available", true)
	}
	return LoadRecordsCmd(context.Background(), m.loader)
}

// setStatus shows text on the status line and schedules clearing it.
func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusSeq++
	if isError {
		m.notices.Error(text)
	} else {
		m.notices.Info(text)
	}
	return statusMsgAfter(statusClearDuration, m.statusSeq)
}
