// Package cli provides the interactive guestkeeper operator console.
//
// It wires configuration, the local SQLite store, the arrival server client
// and the guest/export services behind a line-oriented REPL. On start the
// stored guest list is loaded, arrivals are pulled once from the server in
// the background, and a watcher keeps the prompt's online/offline marker
// current.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
