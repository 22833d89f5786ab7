package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg) }

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetDebug(false)
		SetQuiet(false)
		SetLogger(nil)
	})
	return &out, &errOut
}

func TestError(t *testing.T) {
	out, errOut := capture(t)
	Error("something", "went wrong")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
	assert.Contains(t, errOut.String(), Red)
}

func TestWarning(t *testing.T) {
	_, errOut := capture(t)
	Warning("careful")
	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), Yellow)
}

func TestSuccessAndInfo(t *testing.T) {
	out, _ := capture(t)
	Success("done")
	Info("note")
	assert.Contains(t, out.String(), checkmark+Reset+" done")
	assert.Contains(t, out.String(), Blue+"note")
}

func TestQuietSuppressesInfoOnly(t *testing.T) {
	out, errOut := capture(t)
	SetQuiet(true)
	Success("done")
	Info("note")
	Error("boom")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := capture(t)
	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
}

func TestLoggerMirrorsOutput(t *testing.T) {
	capture(t)
	l := new(mockLogger)
	l.On("Error", "e").Once()
	l.On("Warn", "w").Once()
	l.On("Info", "i").Once()
	l.On("Info", "s").Once()
	SetLogger(l)

	Error("e")
	Warning("w")
	Info("i")
	Success("s")
	Debug("not mirrored while debug is off")

	l.AssertExpectations(t)
}
