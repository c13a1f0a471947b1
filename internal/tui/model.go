package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/config"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/highlight"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/history"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/status"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/tabs"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeRename
	ModePicker
	ModeHistory
	ModeHelp
)

// Focus is the pane receiving keys in ModeNormal
type Focus int

const (
	FocusEditor Focus = iota
	FocusTabBar
)

func (f Focus) String() string {
	if f == FocusTabBar {
		return "tabbar"
	}
	return "editor"
}

// Model represents the TUI state
type Model struct {
	// Core state
	cfg         *config.Config
	tabs        *tabs.Manager
	session     *status.Status
	history     *history.Manager // nil when the store could not be opened
	keybinds    *keybinds.Registry
	highlighter *highlight.Highlighter // nil when the language is unknown
	clipboard   Clipboard
	logger      *slog.Logger
	now         func() time.Time
	version     string

	mode  Mode
	focus Focus

	// Panes
	editor      editorSurface
	renameState *RenameState
	picker      *pickerState
	historyList list.Model
	helpView    viewport.Model

	// Double-click detection on tab labels
	lastClickTab string
	lastClickAt  time.Time

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
	msgSeq    uint64 // Guards auto-clear against newer messages
}

// Launch chain timer messages carry the ticket of the chain that armed them
type attachMsg struct{ ticket status.Ticket }
type dismissBannerMsg struct{ ticket status.Ticket }

type clearStatusMsg struct{ seq uint64 }
type clearErrorMsg struct{ seq uint64 }

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	if m.focus == FocusEditor {
		return m.editor.Focus()
	}
	return nil
}

// Cleanup cancels pending timers and closes the history store
func (m *Model) Cleanup() {
	m.session.Cancel()
	if m.history != nil {
		if err := m.history.Close(); err != nil {
			m.logger.Error("closing history database", "error", err)
		}
		m.history = nil
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case attachMsg:
		if m.session.Attach(msg.ticket) {
			m.logger.Info("outlet attached", "ticket", msg.ticket)
			cmd = tea.Tick(m.cfg.Status.BannerDuration, func(time.Time) tea.Msg {
				return dismissBannerMsg{ticket: msg.ticket}
			})
		}

	case dismissBannerMsg:
		if m.session.Dismiss(msg.ticket) {
			m.logger.Debug("launch banner dismissed", "ticket", msg.ticket)
		}

	case clearStatusMsg:
		if msg.seq == m.msgSeq {
			m.statusMsg = ""
		}

	case clearErrorMsg:
		if msg.seq == m.msgSeq {
			m.errorMsg = ""
		}

	default:
		// Cursor blink and other textarea internals
		if m.mode == ModeNormal && m.focus == FocusEditor {
			_, cmd = m.editor.Update(msg)
		}
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModePicker:
		return m.renderPicker()
	case ModeHistory:
		return m.renderHistory()
	}

	return m.renderMain()
}

// syncEditor rebinds the text surface to the active tab
func (m *Model) syncEditor() {
	if tab, ok := m.tabs.Active(); ok {
		m.editor.Bind(tab)
	}
}

// setFocus moves keyboard focus between the editor and the tab bar
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// updateLayout resizes panes after a window change
func (m *Model) updateLayout() {
	w, h := m.editorSize()
	m.editor.SetSize(w, h)

	m.helpView.Width = max(1, m.width-ModalWidthMarginNarrow-ViewportPaddingHorizontal-ViewportBorderWidth)
	m.helpView.Height = max(1, m.height-ModalHeightMarginMed-ModalOverheadLines-ModalFooterLines)
	m.helpView.SetContent(m.helpContent())

	m.historyList.SetSize(m.modalWidth()-ViewportPaddingHorizontal-ViewportBorderWidth, m.modalListHeight())
}

// editorSize returns the inner size of the editor box
func (m *Model) editorSize() (int, int) {
	width := m.width - m.sidebarWidth() - ViewportBorderWidth
	height := m.height - ChromeRows - ViewportBorderWidth
	return max(1, width), max(1, height)
}

func (m *Model) sidebarWidth() int {
	if m.width < SidebarMinWidth {
		return 0
	}
	return SidebarWidth
}

// Helper methods for setting messages with optional timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.msgSeq++
	m.errorMsg = ""
	m.statusMsg = truncate(msg, StatusMaxWidth)

	if timeout := m.cfg.Status.MessageTimeout; timeout > 0 {
		seq := m.msgSeq
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})
	}
	return nil
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.msgSeq++
	m.statusMsg = ""
	m.errorMsg = truncate(msg, StatusMaxWidth)

	if timeout := m.cfg.Status.MessageTimeout; timeout > 0 {
		seq := m.msgSeq
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{seq: seq}
		})
	}
	return nil
}

func (m *Model) reportError(action string, err error) tea.Cmd {
	m.logger.Error(action, "error", err)
	return m.setErrorMessage(fmt.Sprintf("%s: %v", action, err))
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
