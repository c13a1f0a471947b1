package tui

import (
	"fmt"
	"strings"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpSectionTitles = map[keybinds.Context]string{
	keybinds.ContextGlobal:  "Everywhere",
	keybinds.ContextEditor:  "Editor",
	keybinds.ContextTabBar:  "Tab Bar",
	keybinds.ContextRename:  "Rename Tab",
	keybinds.ContextPicker:  "Switch Tab",
	keybinds.ContextHistory: "Closed Tabs",
	keybinds.ContextHelp:    "Help",
}

// helpContent lists the active bindings of every context
func (m *Model) helpContent() string {
	var b strings.Builder

	for i, context := range keybinds.Contexts {
		bindings := m.keybinds.ListBindings(context)
		if len(bindings) == 0 {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styleTitle.Render(helpSectionTitles[context]) + "\n")

		// Bindings are sorted by action, so keys of one action are adjacent
		for j := 0; j < len(bindings); {
			action := bindings[j].Action
			var keys []string
			for ; j < len(bindings) && bindings[j].Action == action; j++ {
				keys = append(keys, bindings[j].Key)
			}
			if action == keybinds.ActionNoOp {
				continue
			}
			fmt.Fprintf(&b, "  %-22s %s\n", strings.Join(keys, ", "), keybinds.GetActionInfo(action).Description)
		}
	}

	if m.version != "" {
		b.WriteString("\n" + styleSubtle.Render("awp "+m.version))
	}

	return b.String()
}

func (m *Model) openHelp() {
	m.helpView.SetContent(m.helpContent())
	m.helpView.GotoTop()
	m.mode = ModeHelp
	m.editor.Blur()
}

// handleHelpKeys handles keyboard input in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if action, ok := m.keybinds.MatchLocal(keybinds.ContextGlobal, key); ok && action == keybinds.ActionQuitForce {
		return m.dispatch(action)
	}

	action, ok := m.keybinds.MatchLocal(keybinds.ContextHelp, key)
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
		return m.setFocus(m.focus)
	}
	return nil
}

// renderHelp renders the help screen
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")

	closeKeys := m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal)
	footer := fmt.Sprintf("↑/↓ j/k: scroll | %s: close", closeKeys)

	// Footer is outside the viewport so it stays visible
	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
	)
}

// modalWidth is the outer width of list modals
func (m *Model) modalWidth() int {
	return max(30, min(72, m.width-ModalWidthMarginNarrow))
}

// modalListHeight is the number of rows available to a modal list
func (m *Model) modalListHeight() int {
	return max(1, min(PickerMaxRows*2, m.height-ModalHeightMarginMed-ModalOverheadLines-ModalFooterLines))
}

// renderModalWithFooter renders a centered modal with a fixed footer.
// Content taller than the modal is cut at the bottom.
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	// For small terminals, use almost full screen
	width = min(width, m.width-ViewportPaddingHorizontal)
	height = min(height, m.height-ModalHeightMarginSmall)

	footerLines := 0
	if footer != "" {
		footerLines = ModalFooterLines
	}
	contentHeight := max(1, height-ModalOverheadLines-footerLines)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	fullContent := styleTitle.Render(title) + "\n\n" + strings.Join(lines, "\n")
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}
