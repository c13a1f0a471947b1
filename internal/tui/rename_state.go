package tui

import (
	"strings"
	"sync"
)

// RenameState holds the inline tab rename field.
// The cursor counts runes, not bytes.
type RenameState struct {
	mu sync.RWMutex

	tabID  string
	input  []rune
	cursor int
}

// NewRenameState creates a new rename state
func NewRenameState() *RenameState {
	return &RenameState{}
}

// GetTabID returns the tab being renamed, empty when inactive
func (s *RenameState) GetTabID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tabID
}

// IsActive reports whether a rename is in progress
func (s *RenameState) IsActive() bool {
	return s.GetTabID() != ""
}

// GetInput returns the rename input value
func (s *RenameState) GetInput() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.input)
}

// GetCursor returns the cursor position
func (s *RenameState) GetCursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor
}

// SetCursor sets the cursor position, clamped to the input
func (s *RenameState) SetCursor(cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = max(0, min(cursor, len(s.input)))
}

// Initialize starts renaming tabID with the current name selected for editing
func (s *RenameState) Initialize(tabID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabID = tabID
	s.input = []rune(name)
	s.cursor = len(s.input)
}

// Insert adds text at the cursor. Line breaks become spaces.
func (s *RenameState) Insert(text string) {
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	runes := []rune(text)
	next := make([]rune, 0, len(s.input)+len(runes))
	next = append(next, s.input[:s.cursor]...)
	next = append(next, runes...)
	next = append(next, s.input[s.cursor:]...)
	s.input = next
	s.cursor += len(runes)
}

// Backspace deletes the rune before the cursor
func (s *RenameState) Backspace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return false
	}
	s.input = append(s.input[:s.cursor-1], s.input[s.cursor:]...)
	s.cursor--
	return true
}

// Delete deletes the rune at the cursor
func (s *RenameState) Delete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.input) {
		return false
	}
	s.input = append(s.input[:s.cursor], s.input[s.cursor+1:]...)
	return true
}

// MoveLeft moves the cursor one rune left
func (s *RenameState) MoveLeft() {
	s.SetCursor(s.GetCursor() - 1)
}

// MoveRight moves the cursor one rune right
func (s *RenameState) MoveRight() {
	s.SetCursor(s.GetCursor() + 1)
}

// MoveHome moves the cursor to the start
func (s *RenameState) MoveHome() {
	s.SetCursor(0)
}

// MoveEnd moves the cursor to the end
func (s *RenameState) MoveEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = len(s.input)
}

// ClearBefore deletes everything before the cursor
func (s *RenameState) ClearBefore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = append([]rune{}, s.input[s.cursor:]...)
	s.cursor = 0
}

// ClearAfter deletes everything from the cursor to the end
func (s *RenameState) ClearAfter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = s.input[:s.cursor]
}

// Reset resets all rename state
func (s *RenameState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabID = ""
	s.input = nil
	s.cursor = 0
}
