package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/history"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/types"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	historyItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	historySelectedStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
)

const historyPreviewWidth = 32

// closedTabItem is a closed tab entry in the history list
type closedTabItem struct {
	entry types.ClosedTab
	age   string
}

func (i closedTabItem) FilterValue() string { return i.entry.Name }

// closedTabDelegate renders one closed tab per line
type closedTabDelegate struct{}

func (d closedTabDelegate) Height() int                             { return 1 }
func (d closedTabDelegate) Spacing() int                            { return 0 }
func (d closedTabDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d closedTabDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(closedTabItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-*s %8s  %s",
		TabTitleMaxWidth, truncate(i.entry.Name, TabTitleMaxWidth), i.age,
		styleSubtle.Render(i.entry.Preview(historyPreviewWidth)))

	if index == m.Index() {
		fmt.Fprint(w, historySelectedStyle.Render("> "+str))
		return
	}
	fmt.Fprint(w, historyItemStyle.Render(str))
}

func newHistoryList() list.Model {
	l := list.New(nil, closedTabDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// formatAge renders how long ago a tab was closed
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

// loadHistory refreshes the list from the store, newest first
func (m *Model) loadHistory() error {
	entries, err := m.history.List()
	if err != nil {
		return err
	}

	now := m.now()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, closedTabItem{entry: e, age: formatAge(now.Sub(e.ClosedAt))})
	}
	m.historyList.SetItems(items)
	return nil
}

func (m *Model) openHistory() tea.Cmd {
	if m.history == nil || m.history.Limit() == 0 {
		return m.setStatusMessage("Closed tab history is disabled")
	}
	if err := m.loadHistory(); err != nil {
		return m.reportError("Failed to load closed tabs", err)
	}
	m.historyList.Select(0)
	m.mode = ModeHistory
	m.editor.Blur()
	return nil
}

func (m *Model) closeHistory() tea.Cmd {
	m.mode = ModeNormal
	return m.setFocus(m.focus)
}

// handleHistoryKeys handles keyboard input in the closed tabs list
func (m *Model) handleHistoryKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if action, ok := m.keybinds.MatchLocal(keybinds.ContextGlobal, key); ok && action == keybinds.ActionQuitForce {
		return m.dispatch(action)
	}

	action, ok := m.keybinds.MatchLocal(keybinds.ContextHistory, key)
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		m.historyList.CursorUp()

	case keybinds.ActionNavigateDown:
		m.historyList.CursorDown()

	case keybinds.ActionSelect:
		item, ok := m.historyList.SelectedItem().(closedTabItem)
		if !ok {
			return nil
		}
		return m.restoreClosedTab(item.entry.ID)

	case keybinds.ActionHistoryClear:
		if err := m.history.Clear(); err != nil {
			return m.reportError("Failed to clear closed tabs", err)
		}
		m.historyList.SetItems(nil)
		return m.setStatusMessage("Closed tab history cleared")

	case keybinds.ActionCloseModal:
		return m.closeHistory()
	}

	return nil
}

// restoreClosedTab takes an entry out of the store and reopens it as a new tab
func (m *Model) restoreClosedTab(id int64) tea.Cmd {
	if m.atTabLimit() {
		return m.setStatusMessage(fmt.Sprintf("Tab limit reached (%d)", m.cfg.Editor.MaxTabs))
	}

	entry, err := m.history.Take(id)
	if errors.Is(err, history.ErrNotFound) {
		if err := m.loadHistory(); err != nil {
			return m.reportError("Failed to load closed tabs", err)
		}
		return m.setStatusMessage("Closed tab is no longer available")
	}
	if err != nil {
		return m.reportError("Failed to reopen tab", err)
	}

	tab := m.tabs.AddWith(entry.Name, entry.Content)
	m.syncEditor()
	return tea.Batch(m.closeHistory(), m.setStatusMessage(fmt.Sprintf("Reopened %s", tab.Name)))
}

// renderHistory renders the closed tabs modal
func (m *Model) renderHistory() string {
	var content string
	if len(m.historyList.Items()) == 0 {
		content = styleSubtle.Render("No closed tabs")
	} else {
		content = m.historyList.View()
	}

	var footer strings.Builder
	footer.WriteString("[↑/↓] navigate [Enter] reopen")
	if keys := m.keybinds.GetBinding(keybinds.ContextHistory, keybinds.ActionHistoryClear); len(keys) > 0 {
		fmt.Fprintf(&footer, " [%s] clear", strings.Join(keys, "/"))
	}
	footer.WriteString(" [ESC] close")

	height := m.modalListHeight() + ModalOverheadLines + ModalFooterLines
	return m.renderModalWithFooter("Closed Tabs", content, footer.String(), m.modalWidth(), height)
}
