package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func activeName(t *testing.T, m *Model) string {
	t.Helper()
	tab, ok := m.tabs.Active()
	if !ok {
		t.Fatal("Expected an active tab")
	}
	return tab.Name
}

func tabContent(t *testing.T, m *Model, id string) string {
	t.Helper()
	tab, ok := m.tabs.Get(id)
	if !ok {
		t.Fatalf("tab %s not found", id)
	}
	return tab.Content
}

func TestKeys_AddTab(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	AssertModelField(t, "tab count", m.tabs.Len(), 2)
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-2")
	AssertModelField(t, "active name", activeName(t, m), "Untitled Tab")
	AssertModelField(t, "editor bound id", m.editor.BoundID(), "tab-2")
	AssertModelField(t, "editor value", m.editor.Value(), "")
}

func TestKeys_TypingEditsActiveTabOnly(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	typeText(m, "print(1)")

	AssertModelField(t, "tab-2 content", tabContent(t, m, "tab-2"), "print(1)")
	AssertModelField(t, "tab-1 content", tabContent(t, m, "tab-1"), "-- Welcome to AWP!")

	// Switching back shows the other buffer
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	AssertModelField(t, "editor value", m.editor.Value(), "-- Welcome to AWP!")
}

func TestKeys_GlobalBindingsDoNotSwallowText(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	typeText(m, "q x n?")

	AssertModelField(t, "content", tabContent(t, m, "tab-2"), "q x n?")
	AssertModelField(t, "tab count", m.tabs.Len(), 2)
}

func TestKeys_CloseTab(t *testing.T) {
	m := CreateTestModel(t)

	// Closing the only tab is ignored
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	AssertModelField(t, "tab count", m.tabs.Len(), 1)

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlW})

	AssertModelField(t, "tab count", m.tabs.Len(), 1)
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-1")
	AssertModelField(t, "editor bound id", m.editor.BoundID(), "tab-1")

	count, err := m.history.Count()
	AssertNoError(t, err)
	AssertModelField(t, "history count", count, 1)
}

func TestKeys_CloseActiveActivatesLast(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	pressKey(m, altKey('1'))
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-1")

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-3")
}

func TestKeys_NextPrevWrap(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	tests := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyCtrlRight, "tab-1"},
		{tea.KeyCtrlRight, "tab-2"},
		{tea.KeyCtrlLeft, "tab-1"},
		{tea.KeyCtrlLeft, "tab-3"},
		{tea.KeyCtrlPgDown, "tab-1"},
		{tea.KeyCtrlPgUp, "tab-3"},
	}

	for i, tt := range tests {
		pressKey(m, tea.KeyMsg{Type: tt.key})
		AssertModelField(t, "active after step "+string(rune('0'+i)), m.tabs.ActiveID(), tt.want)
	}
}

func TestKeys_GotoTab(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	pressKey(m, altKey('1'))
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-1")

	pressKey(m, altKey('2'))
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-2")

	pressKey(m, altKey('9'))
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-2")
	AssertModelField(t, "statusMsg", m.statusMsg, "No tab 9")
}

func TestKeys_RenameCommit(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	AssertModelField(t, "mode", m.mode, ModeRename)
	AssertModelField(t, "rename input", m.renameState.GetInput(), "Untitled Tab")
	tab, _ := m.tabs.Active()
	AssertModelField(t, "isEditing", tab.IsEditing, true)

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "  Main  ")
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "name", activeName(t, m), "Main")
	tab, _ = m.tabs.Active()
	AssertModelField(t, "isEditing", tab.IsEditing, false)
	AssertModelField(t, "rename active", m.renameState.IsActive(), false)
	AssertModelField(t, "editor focused", m.editor.Focused(), true)
}

func TestKeys_RenameEmptyUsesPlaceholder(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "   ")
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	AssertModelField(t, "name", activeName(t, m), "Untitled Tab")
}

func TestKeys_RenameCancel(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	typeText(m, "XYZ")
	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "name", activeName(t, m), "Untitled Tab")
	if _, editing := m.tabs.EditingID(); editing {
		t.Error("no tab should be editing after cancel")
	}
}

func TestKeys_RenameLineEditing(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "abc")
	pressKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	pressKey(m, tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(m, "X")
	pressKey(m, tea.KeyMsg{Type: tea.KeyHome})
	typeText(m, ">")

	AssertModelField(t, "input", m.renameState.GetInput(), ">aXc")
	AssertModelField(t, "cursor", m.renameState.GetCursor(), 1)
}

func TestKeys_RenameBlurOnGlobalShortcut(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "Main")
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "tab count", m.tabs.Len(), 2)
	name, _ := m.tabs.Get("tab-1")
	AssertModelField(t, "committed name", name.Name, "Main")
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-2")
}

func TestKeys_RenamePaste(t *testing.T) {
	m := CreateTestModel(t)
	m.clipboard.(*fakeClipboard).text = "from\nclip"

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlV})

	AssertModelField(t, "input", m.renameState.GetInput(), "from clip")
}

func TestKeys_RenamePasteError(t *testing.T) {
	m := CreateTestModel(t)
	m.clipboard.(*fakeClipboard).err = errClipboard

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlV})

	if !strings.Contains(m.errorMsg, "clipboard unavailable") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
	AssertModelField(t, "mode", m.mode, ModeRename)
}

func TestKeys_FocusToggleAndTabBar(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	AssertModelField(t, "focus", m.focus, FocusTabBar)
	AssertModelField(t, "editor focused", m.editor.Focused(), false)

	// Plain keys act on tabs now, not on the buffer
	pressKey(m, runeKey('n'))
	AssertModelField(t, "tab count", m.tabs.Len(), 2)
	pressKey(m, runeKey('h'))
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-1")
	pressKey(m, runeKey('2'))
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-2")
	pressKey(m, runeKey('x'))
	AssertModelField(t, "tab count", m.tabs.Len(), 1)
	pressKey(m, runeKey('z'))
	AssertModelField(t, "content", tabContent(t, m, "tab-1"), "-- Welcome to AWP!")

	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	AssertModelField(t, "focus", m.focus, FocusEditor)
	AssertModelField(t, "editor focused", m.editor.Focused(), true)
}

func TestKeys_Indent(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	AssertModelField(t, "content", tabContent(t, m, "tab-2"), "    ")

	typeText(m, "x")
	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	AssertModelField(t, "content", tabContent(t, m, "tab-2"), "    x   ")
}

func TestKeys_CopyBuffer(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, altKey('c'))

	AssertModelField(t, "clipboard", m.clipboard.(*fakeClipboard).text, "-- Welcome to AWP!")
	if !strings.Contains(m.statusMsg, "Copied 1 line(s)") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestKeys_CopyBufferError(t *testing.T) {
	m := CreateTestModel(t)
	m.clipboard.(*fakeClipboard).err = errClipboard

	pressKey(m, altKey('c'))

	if !strings.Contains(m.errorMsg, "Failed to copy to clipboard") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
}

func TestKeys_ToolbarActionsAreInert(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyF5}, "Execute is not available in this build"},
		{tea.KeyMsg{Type: tea.KeyF6}, "Clear is not available in this build"},
		{tea.KeyMsg{Type: tea.KeyF7}, "Execute (terminal) is not available in this build"},
		{tea.KeyMsg{Type: tea.KeyCtrlO}, "Open is not available in this build"},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, "Save is not available in this build"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := CreateTestModel(t)

			pressKey(m, tt.key)

			AssertModelField(t, "statusMsg", m.statusMsg, tt.want)
			AssertModelField(t, "content", tabContent(t, m, "tab-1"), "-- Welcome to AWP!")
			AssertModelField(t, "tab count", m.tabs.Len(), 1)
		})
	}
}

func TestKeys_MaxTabs(t *testing.T) {
	cfg := testConfig()
	cfg.Editor.MaxTabs = 2
	m := CreateTestModelWithConfig(t, cfg)

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	AssertModelField(t, "tab count", m.tabs.Len(), 2)
	AssertModelField(t, "statusMsg", m.statusMsg, "Tab limit reached (2)")
}

func TestKeys_ReopenTab(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	typeText(m, "kept")
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlW})

	pressKey(m, altKey('t'))

	AssertModelField(t, "tab count", m.tabs.Len(), 2)
	AssertModelField(t, "active id", m.tabs.ActiveID(), "tab-3")
	AssertModelField(t, "content", tabContent(t, m, "tab-3"), "kept")
	AssertModelField(t, "editor value", m.editor.Value(), "kept")
	AssertModelField(t, "statusMsg", m.statusMsg, "Reopened Untitled Tab")

	pressKey(m, altKey('t'))
	AssertModelField(t, "tab count", m.tabs.Len(), 2)
	AssertModelField(t, "statusMsg", m.statusMsg, "No closed tabs to reopen")
}

func TestKeys_ReopenTabHistoryDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.History.Limit = 0
	m := CreateTestModelWithConfig(t, cfg)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlW})

	pressKey(m, altKey('t'))

	AssertModelField(t, "tab count", m.tabs.Len(), 1)
	AssertModelField(t, "statusMsg", m.statusMsg, "Closed tab history is disabled")
}

func TestKeys_Quit(t *testing.T) {
	tests := []struct {
		name  string
		focus Focus
		key   tea.KeyMsg
	}{
		{"ctrl+c in editor", FocusEditor, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"q in tab bar", FocusTabBar, runeKey('q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreateTestModel(t)
			m.setFocus(tt.focus)

			cmd := pressKey(m, tt.key)
			if cmd == nil {
				t.Fatal("Expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("Expected tea.QuitMsg")
			}
			if m.history != nil {
				t.Error("quit should close the history store")
			}
		})
	}
}

func TestKeys_HelpModal(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF1})
	AssertModelField(t, "mode", m.mode, ModeHelp)

	view := m.View()
	for _, want := range []string{"Keyboard Shortcuts", "Everywhere", "Go to tab 1", "alt+1"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}
	content := m.helpContent()
	for _, want := range []string{"New tab", "ctrl+t", "Tab Bar", "Closed Tabs", "awp test-version"} {
		if !strings.Contains(content, want) {
			t.Errorf("help content missing %q", want)
		}
	}

	// Global shortcuts do not fire behind the modal
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	AssertModelField(t, "tab count", m.tabs.Len(), 1)

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "editor focused", m.editor.Focused(), true)
}
