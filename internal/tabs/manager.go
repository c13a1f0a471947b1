package tabs

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/types"
	"github.com/google/uuid"
)

// DefaultPlaceholder is the name given to new tabs and to tabs renamed to an empty string
const DefaultPlaceholder = "Untitled Tab"

// IDFunc generates tab ids
type IDFunc func() string

// Option configures a Manager
type Option func(*Manager)

// WithPlaceholder overrides the default tab name
func WithPlaceholder(name string) Option {
	return func(m *Manager) {
		if strings.TrimSpace(name) != "" {
			m.placeholder = name
		}
	}
}

// WithIDFunc overrides the id generator (random UUIDs by default)
func WithIDFunc(fn IDFunc) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// WithLogger sets the logger used for tab transitions
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager owns the ordered tab collection and the active tab id.
// The collection is never empty.
type Manager struct {
	mu sync.RWMutex

	tabs        []types.Tab
	activeID    string
	placeholder string
	newID       IDFunc
	logger      *slog.Logger
}

// NewManager creates a manager holding a single tab with the given content
func NewManager(initialContent string, opts ...Option) *Manager {
	m := &Manager{
		placeholder: DefaultPlaceholder,
		newID:       uuid.NewString,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	first := types.Tab{
		ID:      m.newID(),
		Name:    m.placeholder,
		Content: initialContent,
	}
	m.tabs = []types.Tab{first}
	m.activeID = first.ID

	return m
}

// Placeholder returns the default tab name
func (m *Manager) Placeholder() string {
	return m.placeholder
}

// Tabs returns a copy of the tab collection in display order
func (m *Manager) Tabs() []types.Tab {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Tab, len(m.tabs))
	copy(out, m.tabs)
	return out
}

// Infos returns the display projection of every tab
func (m *Manager) Infos() []types.TabInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]types.TabInfo, 0, len(m.tabs))
	for i, t := range m.tabs {
		infos = append(infos, types.TabInfo{
			ID:        t.ID,
			Title:     t.Name,
			Index:     i,
			IsActive:  t.ID == m.activeID,
			IsEditing: t.IsEditing,
			Lines:     strings.Count(t.Content, "\n") + 1,
		})
	}
	return infos
}

// Len returns the number of tabs
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tabs)
}

// ActiveID returns the active tab id
func (m *Manager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

// Active returns the active tab. The second value is false only when the
// active id was set by Select to an id that is not in the collection.
func (m *Manager) Active() (types.Tab, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexLocked(m.activeID); i >= 0 {
		return m.tabs[i], true
	}
	return types.Tab{}, false
}

// ActiveIndex returns the position of the active tab, or -1
func (m *Manager) ActiveIndex() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexLocked(m.activeID)
}

// Get returns the tab with the given id
func (m *Manager) Get(id string) (types.Tab, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexLocked(id); i >= 0 {
		return m.tabs[i], true
	}
	return types.Tab{}, false
}

// Add appends a new empty tab with the placeholder name and activates it
func (m *Manager) Add() types.Tab {
	return m.AddWith("", "")
}

// AddWith appends a tab with a fresh id and the given name and content, then
// activates it. An empty name falls back to the placeholder.
func (m *Manager) AddWith(name, content string) types.Tab {
	m.mu.Lock()
	defer m.mu.Unlock()

	tab := types.Tab{
		ID:      m.newID(),
		Name:    m.normalizeName(name),
		Content: content,
	}
	m.tabs = append(m.tabs, tab)
	m.activeID = tab.ID

	m.logger.Debug("tab added", "id", tab.ID, "count", len(m.tabs))
	return tab
}

// Remove deletes the tab with the given id. Removing the only tab is a no-op.
// When the active tab is removed, the last tab of the remaining sequence
// becomes active. The removed tab is returned when something was removed.
func (m *Manager) Remove(id string) (types.Tab, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tabs) == 1 {
		return types.Tab{}, false
	}

	i := m.indexLocked(id)
	if i < 0 {
		return types.Tab{}, false
	}

	removed := m.tabs[i]
	remaining := make([]types.Tab, 0, len(m.tabs)-1)
	remaining = append(remaining, m.tabs[:i]...)
	remaining = append(remaining, m.tabs[i+1:]...)
	m.tabs = remaining

	if m.activeID == id {
		m.activeID = m.tabs[len(m.tabs)-1].ID
	}

	m.logger.Debug("tab removed", "id", id, "active", m.activeID, "count", len(m.tabs))
	return removed, true
}

// Select makes id the active tab. Ids are not validated.
func (m *Manager) Select(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeID = id
}

// SelectIndex activates the tab at position i
func (m *Manager) SelectIndex(i int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.tabs) {
		return false
	}
	m.activeID = m.tabs[i].ID
	return true
}

// Next activates the tab after the active one, wrapping around
func (m *Manager) Next() {
	m.step(1)
}

// Prev activates the tab before the active one, wrapping around
func (m *Manager) Prev() {
	m.step(-1)
}

func (m *Manager) step(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.tabs)
	i := m.indexLocked(m.activeID)
	if i < 0 {
		m.activeID = m.tabs[n-1].ID
		return
	}
	m.activeID = m.tabs[((i+delta)%n+n)%n].ID
}

// BeginRename flags the tab as being renamed and clears the flag on every other tab
func (m *Manager) BeginRename(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tabs {
		m.tabs[i].IsEditing = m.tabs[i].ID == id
	}
}

// CommitRename stores the trimmed name (or the placeholder when it is empty)
// and ends the inline edit. Committing the same input twice yields the same
// state, so the blur and confirm paths can both call it.
func (m *Manager) CommitRename(id, raw string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return ""
	}
	m.tabs[i].Name = m.normalizeName(raw)
	m.tabs[i].IsEditing = false

	m.logger.Debug("tab renamed", "id", id, "name", m.tabs[i].Name)
	return m.tabs[i].Name
}

// CancelRename ends the inline edit and keeps the current name
func (m *Manager) CancelRename(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexLocked(id); i >= 0 {
		m.tabs[i].IsEditing = false
	}
}

// EditingID returns the id of the tab being renamed, if any
func (m *Manager) EditingID() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tabs {
		if t.IsEditing {
			return t.ID, true
		}
	}
	return "", false
}

// UpdateContent replaces the content of the active tab only
func (m *Manager) UpdateContent(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexLocked(m.activeID); i >= 0 {
		m.tabs[i].Content = value
	}
}

func (m *Manager) normalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return m.placeholder
	}
	return name
}

func (m *Manager) indexLocked(id string) int {
	for i, t := range m.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
