package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/staffview/internal/domain"
)

// RecordLoader fetches a fresh copy of the roster.
type RecordLoader func(ctx context.Context) ([]domain.Employee, error)

// RecordsLoadedMsg carries the outcome of a reload.
type RecordsLoadedMsg struct {
	Records []domain.Employee
	Err     error
}

// statusClearMsg clears the status line if no newer message replaced it.
type statusClearMsg struct {
	seq int
}

// statusMsgAfter schedules clearing status message seq.
func statusMsgAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// LoadRecordsCmd runs loader and reports the result as a RecordsLoadedMsg.
func LoadRecordsCmd(ctx context.Context, loader RecordLoader) tea.Cmd {
	return func() tea.Msg {
		records, err := loader(ctx)
		return RecordsLoadedMsg{Records: records, Err: err}
	}
}
