// Package app provides the orchestration layer for the bulletin client.
//
// # Overview
//
// This package wires together configuration, the remote forum client, the
// persistent local cache, the store, and the UI. It is the composition
// root: the store is constructed here and handed to the UI by reference,
// never looked up through ambient state.
//
// # Startup Sequence
//
//  1. Load config (~/.config/bulletin/config.toml, env overrides)
//  2. Initialize file logging under the data directory
//  3. Load user preferences (theme)
//  4. Create the HTTP client for the forum API
//  5. Open the Pebble-backed local store and seed favorites into the store
//  6. Trigger the bulk load in the background
//  7. Start the TUI and block until quit or context cancellation
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable config, invalid API base
// URL. Everything else is recoverable: a missing local store degrades to
// in-memory favorites, a failed bulk load is surfaced in the UI status
// line and can be retried with the reload key.
package app
