// Package ui implements the interactive terminal dashboard.
//
// The Bubble Tea model owns all view state. On every tick it pulls the
// latest flat record snapshot from the shared store and rebuilds its
// world from scratch: match states against the current pattern, the
// process forest, sibling ordering, and the visibility filter. Nothing
// rendered survives a tick except the cursor, the scroll offset, the
// pattern text, and the selected pid, each of which is reconciled
// against the fresh rows.
//
// Three modes drive input and rendering: normal browsing, pattern
// editing, and process selection. Signal delivery failures are split in
// two: permission errors show a transient message, anything else ends
// the program with a non-zero exit.
package ui
