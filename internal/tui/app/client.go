// Package app provides TUI application adapters for command wiring.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/staffview/internal/colors"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/roster"
	"github.com/cristianoliveira/staffview/internal/tui/state"
	"github.com/cristianoliveira/staffview/internal/view"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	// Close detaches the model from its view controller.
	Close()
}

// Client defines dependencies needed by the tui command.
type Client interface {
	LoadRecords(ctx context.Context) ([]domain.Employee, error)
	CreateModel(records []domain.Employee, opts ...view.Option) (Model, error)
	RunProgram(model Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	sourceFactory SourceFactory
	programRunner ProgramRunner
}

// NewDefaultClient creates a default TUI client adapter.
// Nil arguments are replaced by the default implementations.
func NewDefaultClient(sourceFactory SourceFactory, programRunner ProgramRunner) *DefaultClient {
	if sourceFactory == nil {
		sourceFactory = NewDefaultSourceFactory()
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		sourceFactory: sourceFactory,
		programRunner: programRunner,
	}
}

// LoadRecords reads and validates the configured source.
func (d *DefaultClient) LoadRecords(ctx context.Context) ([]domain.Employee, error) {
	src, err := d.sourceFactory.NewSource()
	if err != nil {
		return nil, err
	}
	return roster.Load(ctx, src)
}

// CreateModel builds a TUI model over records. The model reloads through LoadRecords.
func (d *DefaultClient) CreateModel(records []domain.Employee, opts ...view.Option) (Model, error) {
	controller := view.New(records, opts...)
	return state.NewModel(controller, d.LoadRecords), nil
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
func (d *DefaultClient) RunProgram(model Model) error {
	defer model.Close()
	err := d.programRunner.Run(model)
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
