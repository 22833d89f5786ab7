package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/staffview/internal/roster"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner wraps tea.NewProgram with the alternate screen enabled.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program with the given model.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// SourceFactory creates the record source the TUI loads from and reloads.
type SourceFactory interface {
	NewSource() (roster.Source, error)
}

// DefaultSourceFactory builds the source from the global configuration.
type DefaultSourceFactory struct{}

// NewDefaultSourceFactory creates a new DefaultSourceFactory.
func NewDefaultSourceFactory() *DefaultSourceFactory {
	return &DefaultSourceFactory{}
}

// NewSource creates a source with roster.NewFromConfig.
func (f *DefaultSourceFactory) NewSource() (roster.Source, error) {
	return roster.NewFromConfig()
}
