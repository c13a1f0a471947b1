package tui

import (
	"testing"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
)

// zoneFor returns the tab bar zone of id
func zoneFor(t *testing.T, m *Model, id string) tabZone {
	t.Helper()
	for _, z := range m.tabBarLayout().tabs {
		if z.id == id {
			return z
		}
	}
	t.Fatalf("tab %s is not visible", id)
	return tabZone{}
}

func toolbarZoneFor(t *testing.T, m *Model, action keybinds.Action) toolbarZone {
	t.Helper()
	for _, z := range m.toolbarLayout() {
		if z.action == action {
			return z
		}
	}
	t.Fatalf("toolbar action %s is not visible", action)
	return toolbarZone{}
}

func TestTabBarLayout_Zones(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	layout := m.tabBarLayout()
	AssertModelField(t, "visible tabs", len(layout.tabs), 2)

	first, second := layout.tabs[0], layout.tabs[1]
	AssertModelField(t, "first start", first.start, 0)
	AssertModelField(t, "first label", first.label, " Untitled Tab ")
	AssertModelField(t, "first closeStart", first.closeStart, 14)
	AssertModelField(t, "first end", first.end, 16)
	AssertModelField(t, "second start", second.start, 17)
	AssertModelField(t, "second active", second.active, true)
	AssertModelField(t, "add start", layout.addStart, second.end+1)
}

func TestTabBarLayout_KeepsActiveVisible(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: testHeight})
	for i := 0; i < 9; i++ {
		pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	}

	layout := m.tabBarLayout()
	last := layout.tabs[len(layout.tabs)-1]
	AssertModelField(t, "last visible", last.id, "tab-10")
	AssertModelField(t, "last active", last.active, true)
	if layout.addEnd > 40 {
		t.Errorf("add button ends at %d, beyond the screen", layout.addEnd)
	}

	pressKey(m, altKey('1'))
	layout = m.tabBarLayout()
	AssertModelField(t, "first visible", layout.tabs[0].id, "tab-1")
}

func TestMouse_SelectCloseAdd(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	z := zoneFor(t, m, "tab-1")
	click(m, z.start+1, TabBarRow)
	AssertModelField(t, "active after select", m.tabs.ActiveID(), "tab-1")
	AssertModelField(t, "editor bound id", m.editor.BoundID(), "tab-1")

	z = zoneFor(t, m, "tab-2")
	click(m, z.closeStart, TabBarRow)
	AssertModelField(t, "tab count after close", m.tabs.Len(), 1)

	layout := m.tabBarLayout()
	click(m, layout.addStart+1, TabBarRow)
	AssertModelField(t, "tab count after add", m.tabs.Len(), 2)
	AssertModelField(t, "active after add", m.tabs.ActiveID(), "tab-3")
}

func TestMouse_DoubleClickRenames(t *testing.T) {
	m := CreateTestModel(t)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	z := zoneFor(t, m, "tab-1")

	setClock(m, start)
	click(m, z.start+2, TabBarRow)
	AssertModelField(t, "mode after one click", m.mode, ModeNormal)

	setClock(m, start.Add(DoubleClickInterval/2))
	click(m, z.start+2, TabBarRow)
	AssertModelField(t, "mode after double click", m.mode, ModeRename)
	AssertModelField(t, "rename tab", m.renameState.GetTabID(), "tab-1")
}

func TestMouse_SlowClicksDoNotRename(t *testing.T) {
	m := CreateTestModel(t)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	z := zoneFor(t, m, "tab-1")

	setClock(m, start)
	click(m, z.start+2, TabBarRow)
	setClock(m, start.Add(DoubleClickInterval+time.Millisecond))
	click(m, z.start+2, TabBarRow)

	AssertModelField(t, "mode", m.mode, ModeNormal)
}

func TestMouse_ClickElsewhereCommitsRename(t *testing.T) {
	m := CreateTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF2})
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "Clicked")

	// Inside the field keeps it open
	z := zoneFor(t, m, "tab-1")
	AssertModelField(t, "zone editing", z.editing, true)
	click(m, z.start+1, TabBarRow)
	AssertModelField(t, "mode after inside click", m.mode, ModeRename)

	click(m, 5, EditorBorderRow+3)
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "name", activeName(t, m), "Clicked")
	AssertModelField(t, "focus", m.focus, FocusEditor)
	AssertModelField(t, "editor focused", m.editor.Focused(), true)
}

func TestMouse_ClickEditorFocuses(t *testing.T) {
	m := CreateTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	AssertModelField(t, "focus", m.focus, FocusTabBar)

	click(m, 10, EditorBorderRow+1)
	AssertModelField(t, "focus", m.focus, FocusEditor)
}

func TestMouse_Toolbar(t *testing.T) {
	m := CreateTestModel(t)

	execute := toolbarZoneFor(t, m, keybinds.ActionExecute)
	click(m, execute.start, m.height-2)
	AssertModelField(t, "statusMsg", m.statusMsg, "Execute is not available in this build")

	rocket := toolbarZoneFor(t, m, keybinds.ActionLaunch)
	if rocket.end != m.width {
		t.Errorf("rocket should be right aligned, ends at %d", rocket.end)
	}
	cmd := click(m, rocket.start+1, m.height-2)
	if cmd == nil {
		t.Fatal("rocket click should start the launch chain")
	}
	AssertModelField(t, "pending", m.session.Pending(), true)
}

func TestMouse_IgnoredInModalsAndForOtherButtons(t *testing.T) {
	m := CreateTestModel(t)
	addStart := m.tabBarLayout().addStart

	m.Update(tea.MouseMsg{X: addStart, Y: TabBarRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: addStart, Y: TabBarRow, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	AssertModelField(t, "tab count", m.tabs.Len(), 1)

	pressKey(m, tea.KeyMsg{Type: tea.KeyF1})
	click(m, addStart, TabBarRow)
	AssertModelField(t, "tab count in help", m.tabs.Len(), 1)
}
