// Package history keeps recently closed tabs so they can be reopened.
//
// Entries live in an in-memory SQLite database for the lifetime of the
// process. Each entry keeps the tab's id, name and content; reopening
// creates a new tab with a fresh id.
package history
