// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a search-first browsing workflow over the catalog:
//  1. [BrowseView] : scroll the current listing (latest hits by default)
//  2. [SearchView] : type a free-text query, ranked results update on submit
//  3. [DetailView] : inspect a single track
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Data flows through the source selector, so the TUI behaves identically
// whether the live API or the built-in catalog is serving.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, / to
// search, q to quit) with contextual help via charmbracelet/bubbles/help.
package ui
