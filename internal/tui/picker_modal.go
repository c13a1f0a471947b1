package tui

import (
	"fmt"
	"strings"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/types"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// pickerMatch is one filtered tab with the byte offsets of matched characters
type pickerMatch struct {
	tab     types.TabInfo
	matched []int
}

// pickerState holds the fuzzy tab switcher
type pickerState struct {
	query   string
	cursor  int
	tabs    tabSource
	matches []pickerMatch
}

// tabSource adapts tab names to fuzzy.Source
type tabSource []types.TabInfo

func (s tabSource) String(i int) string { return s[i].Title }
func (s tabSource) Len() int            { return len(s) }

func newPickerState(tabs []types.TabInfo) *pickerState {
	p := &pickerState{tabs: tabSource(tabs)}
	p.filter()
	for i, match := range p.matches {
		if match.tab.IsActive {
			p.cursor = i
		}
	}
	return p
}

// SetQuery replaces the query and refilters
func (p *pickerState) SetQuery(query string) {
	p.query = query
	p.filter()
}

// Query returns the current query
func (p *pickerState) Query() string {
	return p.query
}

// filter keeps tab order for an empty query and score order otherwise
func (p *pickerState) filter() {
	p.cursor = 0
	p.matches = p.matches[:0]

	if strings.TrimSpace(p.query) == "" {
		for _, tab := range p.tabs {
			p.matches = append(p.matches, pickerMatch{tab: tab})
		}
		return
	}

	for _, res := range fuzzy.FindFrom(p.query, p.tabs) {
		p.matches = append(p.matches, pickerMatch{
			tab:     p.tabs[res.Index],
			matched: res.MatchedIndexes,
		})
	}
}

// Move moves the cursor, wrapping at both ends
func (p *pickerState) Move(delta int) {
	n := len(p.matches)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Selected returns the highlighted tab
func (p *pickerState) Selected() (types.TabInfo, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return types.TabInfo{}, false
	}
	return p.matches[p.cursor].tab, true
}

func (m *Model) openPicker() tea.Cmd {
	m.picker = newPickerState(m.tabs.Infos())
	m.mode = ModePicker
	m.editor.Blur()
	return nil
}

func (m *Model) closePicker() tea.Cmd {
	m.picker = nil
	m.mode = ModeNormal
	return m.setFocus(m.focus)
}

// handlePickerKeys handles keyboard input in the tab switcher
func (m *Model) handlePickerKeys(msg tea.KeyMsg) tea.Cmd {
	if m.picker == nil {
		return m.closePicker()
	}

	key := msg.String()
	if action, ok := m.keybinds.MatchLocal(keybinds.ContextGlobal, key); ok && action == keybinds.ActionQuitForce {
		return m.dispatch(action)
	}

	if action, ok := m.keybinds.MatchLocal(keybinds.ContextPicker, key); ok {
		switch action {
		case keybinds.ActionNavigateUp:
			m.picker.Move(-1)
		case keybinds.ActionNavigateDown:
			m.picker.Move(1)
		case keybinds.ActionSelect:
			tab, ok := m.picker.Selected()
			if !ok {
				return nil
			}
			m.tabs.Select(tab.ID)
			m.syncEditor()
			return m.closePicker()
		case keybinds.ActionCloseModal:
			return m.closePicker()
		}
		return nil
	}

	query := []rune(m.picker.Query())
	switch {
	case key == "backspace":
		if len(query) > 0 {
			m.picker.SetQuery(string(query[:len(query)-1]))
		}
	case key == "ctrl+u":
		m.picker.SetQuery("")
	case msg.Type == tea.KeyRunes:
		m.picker.SetQuery(string(query) + string(msg.Runes))
	case msg.Type == tea.KeySpace:
		m.picker.SetQuery(string(query) + " ")
	}
	return nil
}

// renderPicker renders the fuzzy tab switcher
func (m *Model) renderPicker() string {
	if m.picker == nil {
		return m.renderMain()
	}

	var b strings.Builder
	b.WriteString("Tab: " + addCursor(m.picker.Query()) + "\n\n")

	if len(m.picker.matches) == 0 {
		b.WriteString(styleSubtle.Render("No matching tabs"))
	}

	// Window the list around the cursor
	start := 0
	if m.picker.cursor >= PickerMaxRows {
		start = m.picker.cursor - PickerMaxRows + 1
	}
	end := min(len(m.picker.matches), start+PickerMaxRows)

	for i := start; i < end; i++ {
		match := m.picker.matches[i]
		line := fmt.Sprintf("%d. %s", match.tab.Index+1, highlightMatches(match.tab.Title, match.matched))
		if match.tab.IsActive {
			line += styleSubtle.Render(" (active)")
		}
		if i == m.picker.cursor {
			b.WriteString(styleSelected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	footer := fmt.Sprintf("%d/%d tabs  [↑/↓] navigate [Enter] switch [ESC] cancel",
		len(m.picker.matches), len(m.picker.tabs))
	return m.renderModalWithFooter("Switch Tab", b.String(), footer, m.modalWidth(), PickerMaxRows+ModalOverheadLines+ModalFooterLines+2)
}

// highlightMatches emphasizes the matched bytes of name
func highlightMatches(name string, matched []int) string {
	if len(matched) == 0 {
		return name
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if set[i] {
			b.WriteString(styleMatch.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
