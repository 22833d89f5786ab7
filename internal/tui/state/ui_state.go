package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// Mode is the screen the TUI currently shows.
type Mode int

const (
	ModeList Mode = iota
	ModeDetails
	ModeDepartments
)

// UIState manages the screen state of the TUI: viewport, cursor and input modes.
// Everything about which records are shown lives in the view controller.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	cursor int
	mode   Mode

	searchMode  bool
	searchQuery string

	commandMode  bool
	commandQuery string
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight-headerFooterLines),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the current viewport model.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize rebuilds the viewport for the current width and height.
func (u *UIState) UpdateViewportSize() {
	viewportHeight := u.height - headerFooterLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	u.viewport = viewport.New(u.width, viewportHeight)
}

// GetMode returns the active screen.
func (u *UIState) GetMode() Mode {
	return u.mode
}

// SetMode switches screens.
func (u *UIState) SetMode(mode Mode) {
	u.mode = mode
}

// GetCursor returns the current cursor position.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the cursor position.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = cursor
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// ResetCursor moves the cursor to the first row.
func (u *UIState) ResetCursor() {
	u.cursor = 0
	u.viewport.SetYOffset(0)
}

// MoveCursorUp moves the cursor up one position if possible.
func (u *UIState) MoveCursorUp() {
	if u.cursor > 0 {
		u.cursor--
	}
}

// MoveCursorDown moves the cursor down one position if possible.
func (u *UIState) MoveCursorDown(listLen int) {
	if u.cursor < listLen-1 {
		u.cursor++
	}
}

// AdjustCursorBounds keeps the cursor inside a list of listLen rows.
func (u *UIState) AdjustCursorBounds(listLen int) {
	if listLen == 0 {
		u.cursor = 0
		return
	}
	if u.cursor >= listLen {
		u.cursor = listLen - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// EnsureCursorVisible scrolls the viewport so the cursor row is shown.
func (u *UIState) EnsureCursorVisible(listLen int) {
	if listLen == 0 {
		return
	}
	offset := u.viewport.YOffset
	if u.cursor < offset {
		u.viewport.SetYOffset(u.cursor)
	}
	if u.cursor >= offset+u.viewport.Height {
		u.viewport.SetYOffset(u.cursor - u.viewport.Height + 1)
	}
}

// IsSearchMode returns whether search mode is active.
func (u *UIState) IsSearchMode() bool {
	return u.searchMode
}

// SetSearchMode activates or deactivates search input, seeding it with query.
func (u *UIState) SetSearchMode(active bool, query string) {
	u.searchMode = active
	u.searchQuery = query
	if active {
		u.commandMode = false
	}
}

// GetSearchQuery returns the current search query.
func (u *UIState) GetSearchQuery() string {
	return u.searchQuery
}

// AppendToSearchQuery appends runes to the search query.
func (u *UIState) AppendToSearchQuery(r ...rune) {
	u.searchQuery += string(r)
}

// BackspaceSearchQuery removes the last rune of the search query.
func (u *UIState) BackspaceSearchQuery() {
	u.searchQuery = dropLastRune(u.searchQuery)
}

// IsCommandMode returns whether command mode is active.
func (u *UIState) IsCommandMode() bool {
	return u.commandMode
}

// SetCommandMode activates or deactivates command input.
func (u *UIState) SetCommandMode(active bool) {
	u.commandMode = active
	u.commandQuery = ""
	if active {
		u.searchMode = false
	}
}

// GetCommandQuery returns the current command query.
func (u *UIState) GetCommandQuery() string {
	return u.commandQuery
}

// SetCommandQuery replaces the command query.
func (u *UIState) SetCommandQuery(query string) {
	u.commandQuery = query
}

// AppendToCommandQuery appends runes to the command query.
func (u *UIState) AppendToCommandQuery(r ...rune) {
	u.commandQuery += string(r)
}

// BackspaceCommandQuery removes the last rune of the command query.
func (u *UIState) BackspaceCommandQuery() {
	u.commandQuery = dropLastRune(u.commandQuery)
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
