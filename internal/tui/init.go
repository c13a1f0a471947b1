package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/config"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/highlight"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/history"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/logging"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/status"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/tabs"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options wires the model's collaborators. Nil fields get defaults.
type Options struct {
	Config    *config.Config
	Keybinds  *keybinds.Registry
	Logger    *slog.Logger
	Clipboard Clipboard
	IDFunc    tabs.IDFunc
	Version   string
}

// New creates a new TUI model
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}

	tabOpts := []tabs.Option{
		tabs.WithPlaceholder(cfg.Editor.PlaceholderName),
		tabs.WithLogger(logger),
	}
	if opts.IDFunc != nil {
		tabOpts = append(tabOpts, tabs.WithIDFunc(opts.IDFunc))
	}

	m := &Model{
		cfg:         cfg,
		tabs:        tabs.NewManager(cfg.Editor.WelcomeText, tabOpts...),
		session:     status.New(),
		keybinds:    registry,
		clipboard:   clip,
		logger:      logger,
		now:         time.Now,
		version:     opts.Version,
		mode:        ModeNormal,
		focus:       FocusEditor,
		editor:      newEditorSurface(cfg.Editor),
		renameState: NewRenameState(),
		helpView:    viewport.New(80, 20),
		historyList: newHistoryList(),
	}

	// Closed-tab history is optional; the editor works without it
	store, err := history.NewManager(cfg.History.Limit)
	if err != nil {
		logger.Warn("closed tab history disabled", "error", err)
	} else {
		m.history = store
	}

	h, err := highlight.New(cfg.Editor.Language, cfg.Editor.Theme)
	if err != nil {
		logger.Warn("syntax highlighting disabled", "language", cfg.Editor.Language, "error", err)
	} else {
		m.highlighter = h
	}

	m.syncEditor()
	m.editor.Focus()

	return m, nil
}

// Run starts the TUI
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.Cleanup()

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
