package tui

import (
	"fmt"
	"strings"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	"github.com/charmbracelet/lipgloss"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5f5f"} // Dark red / Soft red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"} // Dark blue / Light blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorPanel  = lipgloss.AdaptiveColor{Light: "#e4e4e4", Dark: "#262626"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	// Chrome
	styleBrand = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	styleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorGreen)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Background(colorPanel)

	styleTabActiveFocused = styleTabActive.
				Underline(true).
				Foreground(colorCyan)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(colorGray)

	styleTabEditing = lipgloss.NewStyle().
			Foreground(colorYellow).
			Background(colorPanel)

	styleButton = lipgloss.NewStyle().
			Foreground(colorCyan)

	styleRocketAttached = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#000000")).
				Background(colorGreen)

	styleRocketDetached = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(colorRed)
)

const (
	brandLabel    = "AWP.GG"
	sectionLabel  = "Scripting"
	windowButtons = "─  □  ×"
)

// renderMain renders the IDE chrome around the text surface
func (m *Model) renderMain() string {
	editorBox := m.renderEditorBox()
	body := editorBox
	if w := m.sidebarWidth(); w > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, editorBox, m.renderSidebar(w, lipgloss.Height(editorBox)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderTabBar(),
		body,
		m.renderToolbar(),
		m.renderStatusBar(),
	)
}

// renderHeader renders the brand, the launch banner and the window buttons
func (m *Model) renderHeader() string {
	left := styleBrand.Render(brandLabel) + " " + styleSubtle.Render(sectionLabel)
	right := styleSubtle.Render(windowButtons)

	center := ""
	if m.session.BannerVisible() {
		center = styleBanner.Render(" 🚀 " + m.cfg.Status.BannerText + " ")
	}

	return spread(m.width, left, center, right)
}

// renderTabBar renders the visible tabs and the add button
func (m *Model) renderTabBar() string {
	layout := m.tabBarLayout()

	var b strings.Builder
	x := 0
	for _, z := range layout.tabs {
		b.WriteString(strings.Repeat(" ", max(0, z.start-x)))

		style := styleTabInactive
		switch {
		case z.editing:
			style = styleTabEditing
		case z.active && m.focus == FocusTabBar && m.mode == ModeNormal:
			style = styleTabActiveFocused
		case z.active:
			style = styleTabActive
		}
		b.WriteString(style.Render(z.label))
		b.WriteString(style.Render(TabCloseGlyph + " "))
		x = z.end
	}

	b.WriteString(strings.Repeat(" ", max(0, layout.addStart-x)))
	b.WriteString(styleButton.Render(TabAddGlyph))

	return b.String()
}

// renderEditorBox renders the text surface, or a highlighted preview of the
// active buffer while the tab bar has focus
func (m *Model) renderEditorBox() string {
	innerWidth, innerHeight := m.editorSize()

	content := m.editor.View()
	if m.focus == FocusTabBar {
		content = m.renderPreview(innerHeight)
	}

	border := colorGray
	if m.focus == FocusEditor && m.mode == ModeNormal {
		border = colorBlue
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(innerHeight + ViewportBorderWidth).
		Render(content)
}

// renderPreview highlights the active buffer, falling back to plain text
func (m *Model) renderPreview(height int) string {
	tab, ok := m.tabs.Active()
	if !ok {
		return ""
	}

	lines := strings.Split(tab.Content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	src := strings.Join(lines, "\n")

	if m.highlighter == nil {
		return src
	}
	out, err := m.highlighter.Render(src)
	if err != nil {
		m.logger.Debug("highlight failed", "error", err)
		return src
	}
	return out
}

// renderSidebar renders the workspace panel
func (m *Model) renderSidebar(width, height int) string {
	content := styleTitle.Render("Workspace") + "\n\n" + styleSubtle.Render("No files open")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(width - ViewportBorderWidth).
		Height(max(1, height-ViewportBorderWidth)).
		Padding(0, 1).
		Render(content)
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	line, col := m.editor.Cursor()
	left := fmt.Sprintf("Tab %d/%d | Ln %d, Col %d", m.tabs.ActiveIndex()+1, m.tabs.Len(), line, col)
	if m.focus == FocusTabBar {
		left += " | " + styleWarning.Render("TAB BAR")
	}

	attached := styleSubtle.Render("○ unattached")
	if m.session.Attached() {
		attached = styleSuccess.Render("● attached")
	}

	right := ""
	switch {
	case m.mode == ModeRename:
		right = fmt.Sprintf("Rename: %s", addCursorAt(m.renameState.GetInput(), m.renameState.GetCursor()))
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = m.statusMsg
	default:
		help := m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionOpenHelp)
		launch := m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionLaunch)
		right = styleSubtle.Render(fmt.Sprintf("%s: help | %s: launch", help, launch))
	}

	return spread(m.width, left+" | "+attached, "", right)
}

// spread places left, center and right on one line of the given width.
// The center part is dropped when it does not fit.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	if center == "" || lw+cw+rw+2 > width {
		spacing := max(1, width-lw-rw)
		return left + strings.Repeat(" ", spacing) + right
	}

	start := max(lw+1, (width-cw)/2)
	gapRight := max(1, width-start-cw-rw)
	return left + strings.Repeat(" ", start-lw) + center + strings.Repeat(" ", gapRight) + right
}

func addCursor(text string) string {
	return text + "█"
}

// addCursorAt draws the cursor before the rune at pos
func addCursorAt(text string, pos int) string {
	runes := []rune(text)
	pos = max(0, min(pos, len(runes)))
	return string(runes[:pos]) + "█" + string(runes[pos:])
}
