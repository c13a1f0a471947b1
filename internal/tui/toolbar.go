package tui

import (
	"fmt"
	"strings"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toolbarButton is one bottom toolbar entry
type toolbarButton struct {
	label  string
	action keybinds.Action
}

// toolbarButtons are shown left to right. None of them does real work.
var toolbarButtons = []toolbarButton{
	{"Execute", keybinds.ActionExecute},
	{"Clear", keybinds.ActionClear},
	{"Open", keybinds.ActionOpen},
	{"Execute (terminal)", keybinds.ActionExecuteTerminal},
	{"Save", keybinds.ActionSave},
}

const (
	rocketLabel     = " 🚀 Launch "
	unattachedLabel = "⚠ Outlet Unattached"
)

// toolbarZone is the clickable column range of a toolbar element
type toolbarZone struct {
	label  string
	action keybinds.Action
	start  int
	end    int // exclusive
}

// toolbarLayout places the buttons from the left and the rocket on the right.
// Buttons that would overlap the right side are dropped.
func (m *Model) toolbarLayout() []toolbarZone {
	rocketWidth := lipgloss.Width(rocketLabel)
	rocketStart := max(0, m.width-rocketWidth)

	right := rocketStart
	if !m.session.Attached() {
		right -= lipgloss.Width(unattachedLabel) + 2
	}

	zones := make([]toolbarZone, 0, len(toolbarButtons)+1)
	x := 1
	for _, b := range toolbarButtons {
		w := lipgloss.Width(buttonText(b.label))
		if x+w > right {
			break
		}
		zones = append(zones, toolbarZone{label: b.label, action: b.action, start: x, end: x + w})
		x += w + 1
	}

	zones = append(zones, toolbarZone{
		label:  "Launch",
		action: keybinds.ActionLaunch,
		start:  rocketStart,
		end:    rocketStart + rocketWidth,
	})
	return zones
}

func buttonText(label string) string {
	return "[" + label + "]"
}

// toolbarAction answers an inert toolbar action with a status hint
func (m *Model) toolbarAction(action keybinds.Action) tea.Cmd {
	label := keybinds.GetActionInfo(action).Description
	for _, b := range toolbarButtons {
		if b.action == action {
			label = b.label
			break
		}
	}
	m.logger.Debug("inert toolbar action", "action", action)
	return m.setStatusMessage(fmt.Sprintf("%s is not available in this build", label))
}

// renderToolbar renders the bottom toolbar row
func (m *Model) renderToolbar() string {
	var b strings.Builder
	x := 0
	pad := func(to int) {
		if to > x {
			b.WriteString(strings.Repeat(" ", to-x))
			x = to
		}
	}

	for _, z := range m.toolbarLayout() {
		if z.action != keybinds.ActionLaunch {
			pad(z.start)
			b.WriteString(styleButton.Render(buttonText(z.label)))
			x = z.end
			continue
		}

		if !m.session.Attached() {
			warnStart := z.start - lipgloss.Width(unattachedLabel) - 2
			if warnStart >= x {
				pad(warnStart)
				b.WriteString(styleWarning.Render(unattachedLabel))
				x += lipgloss.Width(unattachedLabel)
			}
		}
		pad(z.start)
		b.WriteString(m.rocketStyle().Render(rocketLabel))
		x = z.end
	}

	return b.String()
}

// rocketStyle follows the attached flag
func (m *Model) rocketStyle() lipgloss.Style {
	if m.session.Attached() {
		return styleRocketAttached
	}
	return styleRocketDetached
}
