// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a two-view browse workflow:
//  1. [FeedView] : scroll the accumulated movie list; reaching the end loads the next page
//  2. [DetailView] : full record for the selected movie
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. Page
// loads run as tea commands over a [tasks.Feed], which enforces the
// one-request-in-flight and stale-result rules, so rapid scrolling can't
// duplicate or reorder pages.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, w, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
