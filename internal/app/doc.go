// Package app provides the orchestration layer for the treetop application.
//
// # Overview
//
// This package wires together the process source, the snapshot store, and
// the UI. It is the composition root: everything else receives its
// collaborators as values.
//
//  1. Validate the initial filter pattern (an invalid argument is fatal,
//     unlike an invalid pattern typed interactively).
//  2. Take one synchronous process-table snapshot so the first render has
//     data; failure here is a fatal startup error.
//  3. Launch the background poller goroutine.
//  4. Start the TUI and block until the user quits.
//
// # Polling Behavior
//
// The poller refreshes the store every two seconds by default. On failure it
// records the error, keeps the previous records visible, logs the failure,
// and doubles the poll interval per consecutive failure (capped at 30s).
// Polling is never considered fatal after startup; the UI flags the view as
// stale instead.
//
// # Error Handling
//
// Fatal (returned from Run): invalid initial pattern, unreadable process
// table at startup, and any signal-delivery failure other than permission
// denied (surfaced through the UI's fatal-error path).
//
// Recoverable: periodic poll failures (logged, retried with backoff) and
// permission-denied signal delivery (shown as a transient status message).
package app
