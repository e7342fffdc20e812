// Package cli provides the interactive Notes Assistant command-line client.
//
// It wires the user and notes services into a read–eval–print loop. A session
// starts anonymous; "login" picks a user by name (offering registration for
// unknown names) and every note command is then scoped to that user.
//
// Key features:
//   - Login / Register / Logout
//   - Add, list, show, edit and delete notes
//   - Keyword search across titles and content
//   - Profile and notes summary (info), store statistics (stats)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
