package keybinds

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available everywhere except modals
	ContextEditor  Context = "editor"  // Text surface focused
	ContextTabBar  Context = "tabbar"  // Tab bar focused
	ContextRename  Context = "rename"  // Inline tab rename field
	ContextPicker  Context = "picker"  // Fuzzy tab switcher
	ContextHistory Context = "history" // Closed tabs list
	ContextHelp    Context = "help"    // Help viewer
)

// Contexts lists every context in display order
var Contexts = []Context{
	ContextGlobal,
	ContextEditor,
	ContextTabBar,
	ContextRename,
	ContextPicker,
	ContextHistory,
	ContextHelp,
}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Tab actions
	ActionTabNew    Action = "tab_new"    // Add a tab
	ActionTabClose  Action = "tab_close"  // Close the active tab
	ActionTabNext   Action = "tab_next"   // Activate the next tab
	ActionTabPrev   Action = "tab_prev"   // Activate the previous tab
	ActionTabRename Action = "tab_rename" // Rename the active tab
	ActionReopenTab Action = "reopen_tab" // Reopen the most recently closed tab

	// Editor actions
	ActionFocusToggle Action = "focus_toggle" // Switch focus between editor and tab bar
	ActionIndent      Action = "indent"       // Insert indentation
	ActionCopyBuffer  Action = "copy_buffer"  // Copy active buffer to clipboard

	// Session
	ActionLaunch Action = "launch" // Start the launch animation

	// Toolbar (inert)
	ActionExecute         Action = "execute"          // Execute script
	ActionExecuteTerminal Action = "execute_terminal" // Execute script in terminal
	ActionClear           Action = "clear"            // Clear editor
	ActionOpen            Action = "open"             // Open file
	ActionSave            Action = "save"             // Save file

	// Modal launchers
	ActionOpenPicker  Action = "open_picker"  // Open fuzzy tab switcher
	ActionOpenHistory Action = "open_history" // Open closed tabs list
	ActionOpenHelp    Action = "open_help"    // Open help viewer

	// Modal actions
	ActionNavigateUp   Action = "navigate_up"   // Move up
	ActionNavigateDown Action = "navigate_down" // Move down
	ActionSelect       Action = "select"        // Choose highlighted entry
	ActionCloseModal   Action = "close_modal"   // Close current modal
	ActionHistoryClear Action = "history_clear" // Forget closed tabs

	// Text input actions
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Cancel text input
	ActionTextPaste  Action = "text_paste"  // Paste from clipboard

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// MaxGotoTab is the highest tab number reachable by a go-to binding
const MaxGotoTab = 9

const gotoPrefix = "tab_goto_"

// GotoAction returns the action that activates tab n (1-based)
func GotoAction(n int) Action {
	return Action(gotoPrefix + strconv.Itoa(n))
}

// ParseGoto extracts the tab number from a go-to action
func ParseGoto(action Action) (int, bool) {
	s, ok := strings.CutPrefix(string(action), gotoPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxGotoTab {
		return 0, false
	}
	return n, true
}

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:            {ActionQuit, "Quit", "Global"},
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
	ActionTabNew:          {ActionTabNew, "New tab", "Tabs"},
	ActionTabClose:        {ActionTabClose, "Close tab", "Tabs"},
	ActionTabNext:         {ActionTabNext, "Next tab", "Tabs"},
	ActionTabPrev:         {ActionTabPrev, "Previous tab", "Tabs"},
	ActionTabRename:       {ActionTabRename, "Rename tab", "Tabs"},
	ActionReopenTab:       {ActionReopenTab, "Reopen closed tab", "Tabs"},
	ActionFocusToggle:     {ActionFocusToggle, "Toggle editor/tab bar focus", "Editor"},
	ActionIndent:          {ActionIndent, "Indent", "Editor"},
	ActionCopyBuffer:      {ActionCopyBuffer, "Copy buffer", "Editor"},
	ActionLaunch:          {ActionLaunch, "Launch", "Session"},
	ActionExecute:         {ActionExecute, "Execute", "Toolbar"},
	ActionExecuteTerminal: {ActionExecuteTerminal, "Execute (terminal)", "Toolbar"},
	ActionClear:           {ActionClear, "Clear", "Toolbar"},
	ActionOpen:            {ActionOpen, "Open", "Toolbar"},
	ActionSave:            {ActionSave, "Save", "Toolbar"},
	ActionOpenPicker:      {ActionOpenPicker, "Switch tab", "Modals"},
	ActionOpenHistory:     {ActionOpenHistory, "Closed tabs", "Modals"},
	ActionOpenHelp:        {ActionOpenHelp, "Help", "Modals"},
	ActionNavigateUp:      {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:    {ActionNavigateDown, "Move down", "Navigation"},
	ActionSelect:          {ActionSelect, "Select", "Navigation"},
	ActionCloseModal:      {ActionCloseModal, "Close", "Navigation"},
	ActionHistoryClear:    {ActionHistoryClear, "Forget closed tabs", "History"},
	ActionTextSubmit:      {ActionTextSubmit, "Confirm", "Text Input"},
	ActionTextCancel:      {ActionTextCancel, "Cancel", "Text Input"},
	ActionTextPaste:       {ActionTextPaste, "Paste", "Text Input"},
	ActionNoOp:            {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	if n, ok := ParseGoto(action); ok {
		return ActionInfo{action, fmt.Sprintf("Go to tab %d", n), "Tabs"}
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is handled by the application
func IsKnownAction(action Action) bool {
	if _, ok := actionInfos[action]; ok {
		return true
	}
	_, ok := ParseGoto(action)
	return ok
}

// KnownActions returns every action, sorted
func KnownActions() []Action {
	actions := make([]Action, 0, len(actionInfos)+MaxGotoTab)
	for action := range actionInfos {
		actions = append(actions, action)
	}
	for n := 1; n <= MaxGotoTab; n++ {
		actions = append(actions, GotoAction(n))
	}
	slices.Sort(actions)
	return actions
}

// IsKnownContext reports whether c is one of Contexts
func IsKnownContext(c Context) bool {
	return slices.Contains(Contexts, c)
}
