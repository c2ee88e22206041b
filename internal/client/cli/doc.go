// Package cli provides the interactive authgate command-line client.
//
// It wires configuration, the local session store, the HTTP API client, and
// an interactive REPL. On startup a previously persisted session is restored
// so the user stays logged in across restarts.
//
// Key features:
//   - Register / Login / Logout
//   - Whoami (fetches the profile of the logged-in user)
//   - Ping (server reachability check)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
