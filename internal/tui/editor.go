package tui

import (
	"strings"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/config"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/types"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editorSurface is the text surface showing the active tab's content.
// It is bound to one tab id at a time and reports edits back to the caller.
type editorSurface struct {
	area     textarea.Model
	tabID    string
	tabWidth int
}

func newEditorSurface(cfg config.EditorConfig) editorSurface {
	area := textarea.New()
	area.CharLimit = 0
	area.MaxHeight = 0
	area.ShowLineNumbers = cfg.LineNumbers
	area.Prompt = ""
	area.Placeholder = "-- write your script here"
	area.FocusedStyle.CursorLine = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#eeeeee", Dark: "#262626"})
	area.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return editorSurface{
		area:     area,
		tabWidth: cfg.TabWidth,
	}
}

// Bind shows tab on the surface. The buffer is replaced only when the tab
// changed or its content diverged from what the surface holds.
func (e *editorSurface) Bind(tab types.Tab) {
	if e.tabID == tab.ID && e.area.Value() == tab.Content {
		return
	}
	e.tabID = tab.ID
	e.area.SetValue(tab.Content)
}

// BoundID returns the id of the tab currently shown
func (e *editorSurface) BoundID() string {
	return e.tabID
}

// Update forwards msg to the textarea and reports whether the buffer changed
func (e *editorSurface) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := e.area.Value()
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e.area.Value() != before, cmd
}

// Indent inserts spaces up to the next tab stop
func (e *editorSurface) Indent() {
	width := max(1, e.tabWidth)
	info := e.area.LineInfo()
	col := info.StartColumn + info.ColumnOffset
	e.area.InsertString(strings.Repeat(" ", width-col%width))
}

// Value returns the buffer
func (e *editorSurface) Value() string {
	return e.area.Value()
}

// Cursor returns the 1-based line and column
func (e *editorSurface) Cursor() (int, int) {
	info := e.area.LineInfo()
	return e.area.Line() + 1, info.StartColumn + info.ColumnOffset + 1
}

// LineCount returns the number of lines in the buffer
func (e *editorSurface) LineCount() int {
	return e.area.LineCount()
}

func (e *editorSurface) SetSize(width, height int) {
	e.area.SetWidth(max(1, width))
	e.area.SetHeight(max(1, height))
}

func (e *editorSurface) Focus() tea.Cmd {
	return e.area.Focus()
}

func (e *editorSurface) Blur() {
	e.area.Blur()
}

func (e *editorSurface) Focused() bool {
	return e.area.Focused()
}

func (e *editorSurface) View() string {
	return e.area.View()
}
