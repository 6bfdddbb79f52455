// Package state provides the thread-safe snapshot store between the
// background process poller and the UI.
//
// The poller is the single writer: every couple of seconds it publishes a
// fresh flat record collection (or a poll error) via Update. The UI is the
// reader: on each of its own ticks it takes a Snapshot and rebuilds its
// process forest from it. Forest, pattern, and mode state never live here;
// they are owned exclusively by the UI model and rebuilt wholesale per tick.
//
// Update keeps the previous records when a poll fails, so the UI always has
// the most recent successful data to display, and counts consecutive
// failures so the UI can flag the view as stale.
package state
