/*
Package types defines the data structures shared across awp.

# Tabs

Tab:
  - One editable buffer: opaque id, display name, in-memory content
  - IsEditing marks the single tab whose name is being edited inline

TabInfo:
  - Read-only projection for rendering (tab bar, fuzzy picker)

ClosedTab:
  - A removed tab recorded in the closed-tab history so it can be
    reopened during the same process lifetime
*/
package types
