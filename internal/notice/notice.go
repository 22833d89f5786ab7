// Package notice routes user-facing messages to the console or to the TUI
// status line.
package notice

import (
	"sync"
	"time"

	"github.com/cristianoliveira/staffview/internal/colors"
)

// Level classifies a message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

// IsProblem reports whether the level should be shown as a failure.
func (l Level) IsProblem() bool {
	return l == LevelError || l == LevelWarning
}

// Handler receives user-facing messages.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// Console is the printing side of CLIHandler; the colors package satisfies it
// through ColorsConsole.
type Console interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// ColorsConsole adapts the colors package to Console.
type ColorsConsole struct{}

var _ Console = ColorsConsole{}

func (ColorsConsole) Error(msgs ...string)   { colors.Error(msgs...) }
func (ColorsConsole) Warning(msgs ...string) { colors.Warning(msgs...) }
func (ColorsConsole) Info(msgs ...string)    { colors.Info(msgs...) }
func (ColorsConsole) Success(msgs ...string) { colors.Success(msgs...) }

// CLIHandler prints messages to the terminal.
type CLIHandler struct {
	out Console
}

// NewCLIHandler creates a CLIHandler. A nil console prints through the colors package.
func NewCLIHandler(out Console) *CLIHandler {
	if out == nil {
		out = ColorsConsole{}
	}
	return &CLIHandler{out: out}
}

func (h *CLIHandler) Error(msg string)   { h.out.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.out.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.out.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.out.Success(msg) }

// Message is one entry of the TUI message history.
type Message struct {
	Text      string
	Level     Level
	Timestamp time.Time
}

// maxHistory bounds the messages a TUIHandler keeps.
const maxHistory = 50

// TUIHandler keeps recent messages and forwards each one to a callback,
// which the TUI uses to update its status line.
type TUIHandler struct {
	mu        sync.RWMutex
	messages  []Message
	onMessage func(Message)
	now       func() time.Time
}

// NewTUIHandler creates a TUIHandler. onMessage may be nil.
func NewTUIHandler(onMessage func(Message)) *TUIHandler {
	return &TUIHandler{
		onMessage: onMessage,
		now:       time.Now,
	}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, LevelError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, LevelWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, LevelInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, LevelSuccess) }

func (h *TUIHandler) add(text string, level Level) {
	h.mu.Lock()
	message := Message{Text: text, Level: level, Timestamp: h.now()}
	h.messages = append(h.messages, message)
	if len(h.messages) > maxHistory {
		h.messages = h.messages[len(h.messages)-maxHistory:]
	}
	callback := h.onMessage
	h.mu.Unlock()

	if callback != nil {
		callback(message)
	}
}

// Latest returns the most recent message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// All returns a copy of the message history, oldest first.
func (h *TUIHandler) All() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

// Clear drops the message history.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
