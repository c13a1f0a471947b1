/*
Package tabs manages the ordered collection of editor tabs.

Manager holds the tabs, the active tab id and the inline-rename flag.
All operations are total: invalid input is normalized instead of rejected.

Invariants:
  - The collection is never empty; removing the last tab is ignored
  - Removing the active tab activates the last tab of the remaining sequence
  - At most one tab has IsEditing set
  - Names are never empty; an empty rename stores the placeholder

Ids are random UUIDs so tabs created in quick succession never collide.
*/
package tabs
