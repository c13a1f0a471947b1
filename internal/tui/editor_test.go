package tui

import (
	"testing"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/config"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/types"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestEditor() editorSurface {
	e := newEditorSurface(config.Default().Editor)
	e.SetSize(60, 10)
	e.Focus()
	return e
}

func TestEditorSurface_BindKeepsCursorForSameTab(t *testing.T) {
	e := newTestEditor()
	e.Bind(types.Tab{ID: "a", Content: "one\ntwo"})
	AssertModelField(t, "line count", e.LineCount(), 2)

	line, col := e.Cursor()
	AssertModelField(t, "line", line, 2)
	AssertModelField(t, "col", col, 4)

	// Rebinding the same tab and content is a no-op
	e.Update(tea.KeyMsg{Type: tea.KeyUp})
	e.Bind(types.Tab{ID: "a", Content: "one\ntwo"})
	line, _ = e.Cursor()
	AssertModelField(t, "line after rebind", line, 1)

	e.Bind(types.Tab{ID: "b", Content: "other"})
	AssertModelField(t, "bound id", e.BoundID(), "b")
	AssertModelField(t, "value", e.Value(), "other")
}

func TestEditorSurface_UpdateReportsChanges(t *testing.T) {
	e := newTestEditor()
	e.Bind(types.Tab{ID: "a"})

	changed, _ := e.Update(runeKey('x'))
	AssertModelField(t, "changed on insert", changed, true)
	AssertModelField(t, "value", e.Value(), "x")

	changed, _ = e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	AssertModelField(t, "changed on move", changed, false)
}

func TestEditorSurface_IndentToTabStop(t *testing.T) {
	e := newTestEditor()
	e.Bind(types.Tab{ID: "a", Content: "ab"})

	e.Indent()
	AssertModelField(t, "value", e.Value(), "ab  ")

	e.Indent()
	AssertModelField(t, "value", e.Value(), "ab      ")
}

func TestEditorSurface_BlurStopsInput(t *testing.T) {
	e := newTestEditor()
	e.Bind(types.Tab{ID: "a"})
	e.Blur()

	changed, _ := e.Update(runeKey('x'))
	AssertModelField(t, "changed while blurred", changed, false)
	AssertModelField(t, "focused", e.Focused(), false)
}
