// Package cli provides the interactive timediary command-line client.
//
// It wires configuration, the local store, and the application services into
// an interactive REPL over the diary collection. Typical flow: open the
// database, seed the default records on first run, restore the saved session,
// and execute user commands.
//
// Key features:
//   - Login / Logout with a username-only account (login falls back to
//     registration for unknown usernames)
//   - List / Popular / Show diaries, browse categories
//   - Comment on a diary (requires login)
//   - Display the site counters
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
