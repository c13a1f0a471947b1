package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Screen rows
	HeaderRow       = 0 // Brand, banner, window buttons
	TabBarRow       = 1 // Tabs and the add button
	ChromeRows      = 4 // Header + tab bar + toolbar + status bar
	EditorBorderRow = 2 // First row of the editor box

	// Sidebar
	SidebarWidth    = 26 // Workspace panel width including border
	SidebarMinWidth = 80 // Hide the sidebar below this terminal width

	// Tab bar
	TabTitleMaxWidth = 20 // Longer names are truncated with an ellipsis
	TabCloseGlyph    = "×"
	TabAddGlyph      = " + "

	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for focused modals (m.width - 10)
	ModalHeightMarginSmall = 2  // Small vertical margin (m.height - 2)
	ModalHeightMarginMed   = 4  // Medium vertical margin (m.height - 4)
	ModalOverheadLines     = 6  // Title (2) + padding (2) + border (2)
	ModalFooterLines       = 2  // Footer + blank line

	// Viewport Padding and Borders
	ViewportBorderWidth       = 2 // Width consumed by borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Picker
	PickerMaxRows = 10

	// Status bar messages longer than this are truncated
	StatusMaxWidth = 100
)

// DoubleClickInterval is the longest gap between two clicks on the same tab
// that still counts as a double click
const DoubleClickInterval = 400 * time.Millisecond
