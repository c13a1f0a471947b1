package keybinds

import "strconv"

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerEditorBindings(r)
	registerTabBarBindings(r)
	registerRenameBindings(r)
	registerPickerBindings(r)
	registerHistoryBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in the editor and tab bar.
// Only modified and function keys live here so typing is never swallowed.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)

	r.Register(ContextGlobal, "ctrl+t", ActionTabNew)
	r.Register(ContextGlobal, "ctrl+w", ActionTabClose)
	r.RegisterMultiple(ContextGlobal, []string{"ctrl+right", "ctrl+pgdown"}, ActionTabNext)
	r.RegisterMultiple(ContextGlobal, []string{"ctrl+left", "ctrl+pgup"}, ActionTabPrev)
	r.Register(ContextGlobal, "f2", ActionTabRename)
	r.Register(ContextGlobal, "alt+t", ActionReopenTab)
	for n := 1; n <= MaxGotoTab; n++ {
		r.Register(ContextGlobal, "alt+"+strconv.Itoa(n), GotoAction(n))
	}

	r.Register(ContextGlobal, "ctrl+l", ActionLaunch)

	// Toolbar
	r.Register(ContextGlobal, "f5", ActionExecute)
	r.Register(ContextGlobal, "f6", ActionClear)
	r.Register(ContextGlobal, "f7", ActionExecuteTerminal)
	r.Register(ContextGlobal, "ctrl+o", ActionOpen)
	r.Register(ContextGlobal, "ctrl+s", ActionSave)

	r.Register(ContextGlobal, "alt+c", ActionCopyBuffer)
	r.Register(ContextGlobal, "ctrl+p", ActionOpenPicker)
	r.Register(ContextGlobal, "alt+h", ActionOpenHistory)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)
}

// registerEditorBindings sets up keys intercepted before the text surface
func registerEditorBindings(r *Registry) {
	r.Register(ContextEditor, "esc", ActionFocusToggle)
	r.Register(ContextEditor, "tab", ActionIndent)
}

// registerTabBarBindings sets up keybindings for a focused tab bar
func registerTabBarBindings(r *Registry) {
	r.RegisterMultiple(ContextTabBar, []string{"left", "h"}, ActionTabPrev)
	r.RegisterMultiple(ContextTabBar, []string{"right", "l"}, ActionTabNext)
	r.RegisterMultiple(ContextTabBar, []string{"n", "+"}, ActionTabNew)
	r.RegisterMultiple(ContextTabBar, []string{"x", "d"}, ActionTabClose)
	r.Register(ContextTabBar, "r", ActionTabRename)
	r.Register(ContextTabBar, "u", ActionReopenTab)
	r.RegisterMultiple(ContextTabBar, []string{"enter", "i", "esc"}, ActionFocusToggle)
	r.Register(ContextTabBar, "L", ActionLaunch)
	r.Register(ContextTabBar, "y", ActionCopyBuffer)
	r.Register(ContextTabBar, "/", ActionOpenPicker)
	r.Register(ContextTabBar, "H", ActionOpenHistory)
	r.Register(ContextTabBar, "?", ActionOpenHelp)
	r.Register(ContextTabBar, "q", ActionQuit)
	for n := 1; n <= MaxGotoTab; n++ {
		r.Register(ContextTabBar, strconv.Itoa(n), GotoAction(n))
	}
}

// registerRenameBindings sets up the inline rename field
func registerRenameBindings(r *Registry) {
	r.RegisterMultiple(ContextRename, []string{"enter", "tab"}, ActionTextSubmit)
	r.Register(ContextRename, "esc", ActionTextCancel)
	r.RegisterMultiple(ContextRename, []string{"ctrl+v", "shift+insert"}, ActionTextPaste)
}

// registerPickerBindings sets up the fuzzy tab switcher
func registerPickerBindings(r *Registry) {
	r.RegisterMultiple(ContextPicker, []string{"up", "ctrl+k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextPicker, []string{"down", "ctrl+j"}, ActionNavigateDown)
	r.Register(ContextPicker, "enter", ActionSelect)
	r.Register(ContextPicker, "esc", ActionCloseModal)
}

// registerHistoryBindings sets up the closed tabs list
func registerHistoryBindings(r *Registry) {
	r.RegisterMultiple(ContextHistory, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHistory, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHistory, "enter", ActionSelect)
	r.Register(ContextHistory, "C", ActionHistoryClear)
	r.RegisterMultiple(ContextHistory, []string{"esc", "q", "H"}, ActionCloseModal)
}

// registerHelpBindings sets up the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "?", "f1"}, ActionCloseModal)
}
