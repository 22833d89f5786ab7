package app

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/staffview/internal/colors"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/roster"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.Employee)
	return records, args.Error(1)
}

func (m *mockSource) Name() string { return "mock" }

type mockSourceFactory struct {
	mock.Mock
}

func (m *mockSourceFactory) NewSource() (roster.Source, error) {
	args := m.Called()
	src, _ := args.Get(0).(roster.Source)
	return src, args.Error(1)
}

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(model tea.Model) error {
	return m.Called(model).Error(0)
}

type closeTracker struct {
	tea.Model
	closed bool
}

func (c *closeTracker) Close() { c.closed = true }

func records() []domain.Employee {
	return []domain.Employee{
		{ID: "1", FirstName: "Ada", Department: "IT"},
		{ID: "2", FirstName: "Bob", Department: "HR"},
	}
}

func TestLoadRecordsUsesFactory(t *testing.T) {
	src := new(mockSource)
	src.On("Load", mock.Anything).Return(records(), nil)
	factory := new(mockSourceFactory)
	factory.On("NewSource").Return(src, nil)

	client := NewDefaultClient(factory, nil)
	got, err := client.LoadRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	factory.AssertExpectations(t)
	src.AssertExpectations(t)
}

func TestLoadRecordsFactoryError(t *testing.T) {
	factory := new(mockSourceFactory)
	factory.On("NewSource").Return(nil, roster.ErrEmptyPath)

	client := NewDefaultClient(factory, nil)
	_, err := client.LoadRecords(context.Background())
	assert.ErrorIs(t, err, roster.ErrEmptyPath)
}

func TestLoadRecordsValidatesCollection(t *testing.T) {
	src := new(mockSource)
	src.On("Load", mock.Anything).Return([]domain.Employee{{ID: "1"}, {ID: "1"}}, nil)
	factory := new(mockSourceFactory)
	factory.On("NewSource").Return(src, nil)

	client := NewDefaultClient(factory, nil)
	_, err := client.LoadRecords(context.Background())
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestCreateModel(t *testing.T) {
	client := NewDefaultClient(nil, nil)

	spec := domain.DefaultViewSpec()
	spec.Sort = domain.SortOptions{Field: domain.SortByName, Order: domain.SortOrderDesc}
	model, err := client.CreateModel(records(), view.WithSpec(spec))
	require.NoError(t, err)
	defer model.Close()

	out := model.View()
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "sort: name desc")
}

func TestNewDefaultClientDefaults(t *testing.T) {
	client := NewDefaultClient(nil, nil)
	assert.IsType(t, &DefaultSourceFactory{}, client.sourceFactory)
	assert.IsType(t, &DefaultProgramRunner{}, client.programRunner)
}

func TestRunProgramClosesModel(t *testing.T) {
	runner := new(mockRunner)
	model := &closeTracker{}
	runner.On("Run", model).Return(nil)

	client := NewDefaultClient(nil, runner)
	require.NoError(t, client.RunProgram(model))
	assert.True(t, model.closed)
	runner.AssertExpectations(t)
}

func TestRunProgramError(t *testing.T) {
	colors.SetOutput(nil, io.Discard)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })

	runner := new(mockRunner)
	model := &closeTracker{}
	boom := errors.New("no tty")
	runner.On("Run", model).Return(boom)

	client := NewDefaultClient(nil, runner)
	assert.ErrorIs(t, client.RunProgram(model), boom)
	assert.True(t, model.closed)
}
