package types

import (
	"strings"
	"time"
)

// Tab is one editable text buffer in the editor
type Tab struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Content   string `json:"content" yaml:"content"`
	IsEditing bool   `json:"isEditing" yaml:"isEditing"` // Name is being edited inline
}

// TabInfo is the display projection of a tab used by the tab bar and pickers
type TabInfo struct {
	ID        string
	Title     string
	Index     int
	IsActive  bool
	IsEditing bool
	Lines     int
}

// ClosedTab is a removed tab kept for the reopen-closed-tab history
type ClosedTab struct {
	ID       int64     `json:"id" yaml:"id"`
	TabID    string    `json:"tabId" yaml:"tabId"`
	Name     string    `json:"name" yaml:"name"`
	Content  string    `json:"content" yaml:"content"`
	ClosedAt time.Time `json:"closedAt" yaml:"closedAt"`
}

// Preview returns the first non-empty line of the closed tab's content
func (c ClosedTab) Preview(maxLen int) string {
	line := ""
	for _, l := range strings.Split(c.Content, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}
	if maxLen > 3 && len([]rune(line)) > maxLen {
		return string([]rune(line)[:maxLen-3]) + "..."
	}
	return line
}
