// Package store provides the JSON-file persistence layer for users, notes and
// ID counters.
//
// # Overview
//
// The Store interface covers everything the services need: generic
// collection Load/Save, ID allocation and per-entity CRUD. JSONStore keeps
// each collection in its own file inside a data directory:
//
//	users.json     {"1": {"id": 1, "name": "Ana", ...}, ...}
//	notes.json     {"1": {"id": 1, "title": "...", "user_id": 1, ...}, ...}
//	counters.json  {"user_id_counter": 1, "note_id_counter": 1}
//
// Files are written with two-space indentation and rewritten whole on every
// mutation, through a temp file and a rename.
//
// # Failure model
//
// A missing or unparseable collection file reads as an empty collection and
// is logged at warn level. A single record that fails to decode or validate
// is skipped with a warning. Write failures are returned to the caller.
// Reads of an absent record return (nil, nil).
//
// # Concurrency
//
// JSONStore serialises its own operations with a mutex. Several processes
// sharing one data directory are not coordinated.
//
// Typical Usage
//
//	st, _ := store.NewOS("data", store.WithLogger(log))
//	id, _ := st.NextUserID(ctx)
//	_ = st.SaveUser(ctx, user)
//	notes, _ := st.GetNotesByUser(ctx, user.ID)
package store
