package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// Test screen size
const (
	testWidth  = 120
	testHeight = 30
)

// fakeClipboard records writes and serves reads without touching the system clipboard
type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errClipboard = errors.New("clipboard unavailable")

// testConfig returns the default configuration with short timers
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Status.AttachDelay = time.Millisecond
	cfg.Status.BannerDuration = time.Millisecond
	cfg.Status.MessageTimeout = 0
	return cfg
}

// CreateTestModel creates a Model instance for testing with minimal dependencies.
// Tab ids are tab-1, tab-2, ... in creation order.
func CreateTestModel(t *testing.T) *Model {
	t.Helper()
	return CreateTestModelWithConfig(t, testConfig())
}

// CreateTestModelWithConfig creates a test Model from cfg
func CreateTestModelWithConfig(t *testing.T, cfg *config.Config) *Model {
	t.Helper()

	next := 0
	m, err := New(Options{
		Config:    cfg,
		Clipboard: &fakeClipboard{},
		IDFunc: func() string {
			next++
			return fmt.Sprintf("tab-%d", next)
		},
		Version: "test-version",
	})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	t.Cleanup(m.Cleanup)

	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

// setClock pins the model clock
func setClock(m *Model, now time.Time) {
	m.now = func() time.Time { return now }
}

// pressKey sends a key to the model and returns the command it produced
func pressKey(m *Model, key tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(key)
	return cmd
}

// typeText sends each rune of s as a key press
func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			pressKey(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		pressKey(m, runeKey(r))
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// click sends a left button press at x, y
func click(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
