package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/history"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeRename:
		return m.handleRenameKeys(msg)
	case ModePicker:
		return m.handlePickerKeys(msg)
	case ModeHistory:
		return m.handleHistoryKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return m.handleNormalKeys(msg)
}

// handleNormalKeys matches bindings for the focused pane. Unbound keys go to
// the text surface when it has focus.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	context := keybinds.ContextEditor
	if m.focus == FocusTabBar {
		context = keybinds.ContextTabBar
	}

	if action, ok := m.keybinds.Match(context, msg.String()); ok {
		return m.dispatch(action)
	}

	if m.focus != FocusEditor {
		return nil
	}

	changed, cmd := m.editor.Update(msg)
	if changed {
		m.tabs.UpdateContent(m.editor.Value())
	}
	return cmd
}

// dispatch runs an action from the editor or tab bar context
func (m *Model) dispatch(action keybinds.Action) tea.Cmd {
	if n, ok := keybinds.ParseGoto(action); ok {
		return m.gotoTab(n)
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionTabNew:
		return m.addTab()

	case keybinds.ActionTabClose:
		return m.closeTab(m.tabs.ActiveID())

	case keybinds.ActionTabNext:
		m.tabs.Next()
		m.syncEditor()

	case keybinds.ActionTabPrev:
		m.tabs.Prev()
		m.syncEditor()

	case keybinds.ActionTabRename:
		return m.beginRename(m.tabs.ActiveID())

	case keybinds.ActionReopenTab:
		return m.reopenTab()

	case keybinds.ActionFocusToggle:
		if m.focus == FocusEditor {
			return m.setFocus(FocusTabBar)
		}
		return m.setFocus(FocusEditor)

	case keybinds.ActionIndent:
		if m.focus == FocusEditor {
			m.editor.Indent()
			m.tabs.UpdateContent(m.editor.Value())
		}

	case keybinds.ActionCopyBuffer:
		return m.copyBuffer()

	case keybinds.ActionLaunch:
		return m.launch()

	case keybinds.ActionExecute, keybinds.ActionExecuteTerminal, keybinds.ActionClear,
		keybinds.ActionOpen, keybinds.ActionSave:
		return m.toolbarAction(action)

	case keybinds.ActionOpenPicker:
		return m.openPicker()

	case keybinds.ActionOpenHistory:
		return m.openHistory()

	case keybinds.ActionOpenHelp:
		m.openHelp()
	}

	return nil
}

// gotoTab activates tab n (1-based)
func (m *Model) gotoTab(n int) tea.Cmd {
	if !m.tabs.SelectIndex(n - 1) {
		return m.setStatusMessage(fmt.Sprintf("No tab %d", n))
	}
	m.syncEditor()
	return nil
}

func (m *Model) atTabLimit() bool {
	limit := m.cfg.Editor.MaxTabs
	return limit > 0 && m.tabs.Len() >= limit
}

func (m *Model) addTab() tea.Cmd {
	if m.atTabLimit() {
		return m.setStatusMessage(fmt.Sprintf("Tab limit reached (%d)", m.cfg.Editor.MaxTabs))
	}
	m.tabs.Add()
	m.syncEditor()
	return nil
}

// closeTab removes a tab and records it for reopening.
// Closing the only tab is silently ignored.
func (m *Model) closeTab(id string) tea.Cmd {
	removed, ok := m.tabs.Remove(id)
	if !ok {
		return nil
	}

	if m.renameState.GetTabID() == id {
		m.renameState.Reset()
		m.mode = ModeNormal
	}
	m.syncEditor()

	if m.history != nil {
		if err := m.history.Record(removed); err != nil {
			return m.reportError("Failed to record closed tab", err)
		}
	}
	return nil
}

// reopenTab restores the most recently closed tab as a new tab
func (m *Model) reopenTab() tea.Cmd {
	if m.history == nil || m.history.Limit() == 0 {
		return m.setStatusMessage("Closed tab history is disabled")
	}
	if m.atTabLimit() {
		return m.setStatusMessage(fmt.Sprintf("Tab limit reached (%d)", m.cfg.Editor.MaxTabs))
	}

	closed, err := m.history.Pop()
	if errors.Is(err, history.ErrEmpty) {
		return m.setStatusMessage("No closed tabs to reopen")
	}
	if err != nil {
		return m.reportError("Failed to reopen tab", err)
	}

	tab := m.tabs.AddWith(closed.Name, closed.Content)
	m.syncEditor()
	return m.setStatusMessage(fmt.Sprintf("Reopened %s", tab.Name))
}

func (m *Model) copyBuffer() tea.Cmd {
	tab, ok := m.tabs.Active()
	if !ok {
		return nil
	}
	if err := m.clipboard.WriteAll(tab.Content); err != nil {
		return m.reportError("Failed to copy to clipboard", err)
	}
	lines := strings.Count(tab.Content, "\n") + 1
	return m.setStatusMessage(fmt.Sprintf("Copied %d line(s) from %s", lines, tab.Name))
}

// launch starts the attach chain. A launch while one is pending does nothing.
func (m *Model) launch() tea.Cmd {
	ticket, ok := m.session.Launch()
	if !ok {
		return nil
	}
	m.logger.Info("launch started", "ticket", ticket)
	return tea.Tick(m.cfg.Status.AttachDelay, func(time.Time) tea.Msg {
		return attachMsg{ticket: ticket}
	})
}

// beginRename opens the inline rename field on a tab
func (m *Model) beginRename(id string) tea.Cmd {
	tab, ok := m.tabs.Get(id)
	if !ok {
		return nil
	}
	m.tabs.BeginRename(id)
	m.renameState.Initialize(id, tab.Name)
	m.mode = ModeRename
	m.editor.Blur()
	return nil
}

// commitRename stores the rename input. The confirm key and every blur of
// the field end up here.
func (m *Model) commitRename() tea.Cmd {
	id := m.renameState.GetTabID()
	if id == "" {
		return nil
	}
	m.tabs.CommitRename(id, m.renameState.GetInput())
	m.renameState.Reset()
	m.mode = ModeNormal
	return m.setFocus(m.focus)
}

func (m *Model) cancelRename() tea.Cmd {
	id := m.renameState.GetTabID()
	if id == "" {
		return nil
	}
	m.tabs.CancelRename(id)
	m.renameState.Reset()
	m.mode = ModeNormal
	return m.setFocus(m.focus)
}

// handleRenameKeys handles the inline rename field. Global shortcuts blur
// the field, which commits it, and then run.
func (m *Model) handleRenameKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if action, ok := m.keybinds.MatchLocal(keybinds.ContextRename, key); ok {
		switch action {
		case keybinds.ActionTextSubmit:
			return m.commitRename()
		case keybinds.ActionTextCancel:
			return m.cancelRename()
		case keybinds.ActionTextPaste:
			text, err := m.clipboard.ReadAll()
			if err != nil {
				return m.reportError("Failed to paste", err)
			}
			m.renameState.Insert(text)
		}
		return nil
	}

	if action, ok := m.keybinds.MatchLocal(keybinds.ContextGlobal, key); ok {
		return tea.Sequence(m.commitRename(), m.dispatch(action))
	}

	handleRenameInput(m.renameState, msg)
	return nil
}

// handleRenameInput applies line-editing keys to the rename field
func handleRenameInput(s *RenameState, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "ctrl+b":
		s.MoveLeft()
	case "right", "ctrl+f":
		s.MoveRight()
	case "home", "ctrl+a":
		s.MoveHome()
	case "end", "ctrl+e":
		s.MoveEnd()
	case "backspace", "ctrl+h":
		return s.Backspace()
	case "delete", "ctrl+d":
		return s.Delete()
	case "ctrl+u":
		s.ClearBefore()
	case "ctrl+k":
		s.ClearAfter()
	default:
		switch msg.Type {
		case tea.KeyRunes:
			s.Insert(string(msg.Runes))
		case tea.KeySpace:
			s.Insert(" ")
		default:
			return false
		}
	}
	return true
}
