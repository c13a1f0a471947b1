package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tabZone is the column range of one rendered tab.
// [start, closeStart) is the label, [closeStart, end) the close button.
type tabZone struct {
	id         string
	label      string
	start      int
	closeStart int
	end        int // exclusive
	active     bool
	editing    bool
}

type tabStrip struct {
	tabs     []tabZone
	addStart int
	addEnd   int
}

// tabLabel is the text shown for a tab, or the rename field while editing
func (m *Model) tabLabel(id, title string) (string, bool) {
	if m.mode == ModeRename && m.renameState.GetTabID() == id {
		return " " + addCursorAt(m.renameState.GetInput(), m.renameState.GetCursor()) + " ", true
	}
	return " " + truncate(title, TabTitleMaxWidth) + " ", false
}

// tabBarLayout computes tab positions. When the tabs do not fit, the window
// starts at the first tab that keeps the active one fully visible.
func (m *Model) tabBarLayout() tabStrip {
	infos := m.tabs.Infos()
	closeWidth := lipgloss.Width(TabCloseGlyph + " ")
	addWidth := lipgloss.Width(TabAddGlyph)
	avail := max(0, m.width-addWidth-1)

	labels := make([]string, len(infos))
	editing := make([]bool, len(infos))
	widths := make([]int, len(infos))
	active := 0
	for i, info := range infos {
		labels[i], editing[i] = m.tabLabel(info.ID, info.Title)
		widths[i] = lipgloss.Width(labels[i]) + closeWidth
		if info.IsActive {
			active = i
		}
	}

	// Width of tabs first..last including one column separators
	span := func(first, last int) int {
		total := 0
		for i := first; i <= last; i++ {
			total += widths[i]
		}
		return total + (last - first)
	}

	first := 0
	for first < active && span(first, active) > avail {
		first++
	}

	var layout tabStrip
	x := 0
	for i := first; i < len(infos); i++ {
		if x+widths[i] > avail && i != first {
			break
		}
		labelWidth := widths[i] - closeWidth
		layout.tabs = append(layout.tabs, tabZone{
			id:         infos[i].ID,
			label:      labels[i],
			start:      x,
			closeStart: x + labelWidth,
			end:        x + widths[i],
			active:     infos[i].IsActive,
			editing:    editing[i],
		})
		x += widths[i] + 1
	}

	layout.addStart = x
	layout.addEnd = x + addWidth
	return layout
}

// handleMouse handles left clicks on the tab bar, the toolbar and the editor
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	var cmds []tea.Cmd
	switch m.mode {
	case ModePicker, ModeHistory, ModeHelp:
		return nil
	case ModeRename:
		// Clicks inside the rename field keep it open, anything else blurs it
		if msg.Y == TabBarRow && m.inEditingLabel(msg.X) {
			return nil
		}
		cmds = append(cmds, m.commitRename())
	}

	switch {
	case msg.Y == TabBarRow:
		cmds = append(cmds, m.clickTabBar(msg.X))
	case msg.Y == m.height-2:
		cmds = append(cmds, m.clickToolbar(msg.X))
	case msg.Y >= EditorBorderRow && msg.Y < m.height-2 && msg.X < m.width-m.sidebarWidth():
		cmds = append(cmds, m.setFocus(FocusEditor))
	}

	return tea.Batch(cmds...)
}

func (m *Model) inEditingLabel(x int) bool {
	for _, z := range m.tabBarLayout().tabs {
		if z.editing {
			return x >= z.start && x < z.closeStart
		}
	}
	return false
}

// clickTabBar selects, closes or adds tabs. A second click on the same tab
// label within DoubleClickInterval starts renaming it.
func (m *Model) clickTabBar(x int) tea.Cmd {
	layout := m.tabBarLayout()

	if x >= layout.addStart && x < layout.addEnd {
		return m.addTab()
	}

	for _, z := range layout.tabs {
		switch {
		case x >= z.closeStart && x < z.end:
			m.lastClickTab = ""
			return m.closeTab(z.id)

		case x >= z.start && x < z.closeStart:
			now := m.now()
			double := m.lastClickTab == z.id && now.Sub(m.lastClickAt) <= DoubleClickInterval
			m.tabs.Select(z.id)
			m.syncEditor()
			if double {
				m.lastClickTab = ""
				return m.beginRename(z.id)
			}
			m.lastClickTab = z.id
			m.lastClickAt = now
			return nil
		}
	}

	return nil
}

// clickToolbar runs the action of the clicked toolbar element
func (m *Model) clickToolbar(x int) tea.Cmd {
	for _, z := range m.toolbarLayout() {
		if x >= z.start && x < z.end {
			return m.dispatch(z.action)
		}
	}
	return nil
}
