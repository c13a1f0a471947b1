/*
Package keybinds provides customizable keyboard binding management.

# Contexts

Bindings are grouped by context:
  - global: shortcuts available while the editor or tab bar has focus
  - editor: keys intercepted before they reach the text surface
  - tabbar: single-key commands while the tab bar has focus
  - rename, picker, history, help: modal contexts

The editor and tab bar fall back to global bindings. Modal contexts are
matched with MatchLocal and never see global shortcuts.

# Configuration File Format

User bindings live in ~/.awp/keybinds.jsonc. Comments and trailing commas
are allowed. Each section maps a key to an action; binding a key to "noop"
disables the default:

	{
	  "version": "1.0",
	  "global": {
	    "ctrl+n": "tab_new", // new tab
	    "ctrl+t": "noop",
	  },
	  "tabbar": {
	    "R": "tab_rename"
	  }
	}

Run "awp keybinds export" to write every default binding with its
description, and "awp keybinds validate" to check a file.

# Validation

The Validator reports unknown actions and malformed keys as errors. It
warns when ctrl+c is rebound, when a plain character is bound globally,
and when an editor or tab bar binding shadows a global one.
*/
package keybinds
