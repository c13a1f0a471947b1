/*
Package tui implements the terminal user interface for awp.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: owns the tab manager, the session status and the UI state
  - Update: processes messages and returns commands
  - View: renders the IDE chrome around the text surface

# Key Components

  - model.go: Core state, message types and layout
  - keys.go: Keyboard input handling and keybind routing
  - mouse.go: Tab bar layout and click handling
  - render.go: Header, tab bar, editor box, sidebar and status bar
  - toolbar.go: Bottom toolbar and its inert actions
  - editor.go: Text surface adapter over bubbles/textarea

# Tabs and Renaming

Tab state lives in tabs.Manager. The rename field (RenameState) is shown
inline in the tab bar. Pressing the confirm key and blurring the field
(switching tabs, clicking elsewhere, opening a modal, any global shortcut)
both commit through tabs.Manager.CommitRename.

# Launch Chain

Launching shows a banner, marks the session attached after
status.attach_delay and hides the banner after status.banner_duration.
Timer messages carry the ticket of the chain that armed them, so stale
timers are ignored and Cleanup can cancel a pending chain.

# Modals

ModePicker (fuzzy tab switcher), ModeHistory (closed tabs) and ModeHelp
take all keys. Only their own context bindings apply, plus force quit.
*/
package tui
