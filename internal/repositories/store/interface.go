package store

import (
	"context"
	"encoding/json"

	"github.com/JoseBG93/notes-Assistant/internal/models"
)

// Collection names one JSON file of the store.
type Collection string

const (
	Users    Collection = "users"
	Notes    Collection = "notes"
	Counters Collection = "counters"
)

// FileName is the collection's file name inside the data directory.
func (c Collection) FileName() string {
	return string(c) + ".json"
}

// Store describes the persistence operations used by the services.
type Store interface {
	// Load returns the raw records of a collection keyed by their string ID.
	// A missing or malformed file yields an empty map.
	Load(ctx context.Context, c Collection) (map[string]json.RawMessage, error)

	// Save replaces the whole collection file with records.
	Save(ctx context.Context, c Collection, records map[string]json.RawMessage) error

	// NextUserID allocates the next user ID. IDs are never handed out twice.
	NextUserID(ctx context.Context) (int, error)

	// NextNoteID allocates the next note ID. IDs are never handed out twice.
	NextNoteID(ctx context.Context) (int, error)

	// SaveUser inserts or replaces the user keyed by its ID.
	SaveUser(ctx context.Context, user *models.User) error

	// GetUserByID returns the user or nil when absent.
	GetUserByID(ctx context.Context, id int) (*models.User, error)

	// GetUserByName matches name case-insensitively. When several users
	// share a name the one with the lowest ID is returned.
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// GetAllUsers returns every user ordered by ID.
	GetAllUsers(ctx context.Context) ([]*models.User, error)

	// DeleteUser removes the user and all of their notes.
	DeleteUser(ctx context.Context, id int) (bool, error)

	// SaveNote inserts or replaces the note keyed by its ID.
	SaveNote(ctx context.Context, note *models.Note) error

	// GetNoteByID returns the note or nil when absent. Ownership is not checked.
	GetNoteByID(ctx context.Context, id int) (*models.Note, error)

	// GetNotesByUser returns the user's notes, newest first.
	GetNotesByUser(ctx context.Context, userID int) ([]*models.Note, error)

	// GetAllNotes returns every note ordered by ID.
	GetAllNotes(ctx context.Context) ([]*models.Note, error)

	// DeleteNote removes the note. Ownership is not checked.
	DeleteNote(ctx context.Context, id int) (bool, error)

	// DeleteNotesByUser removes all notes of a user and reports how many
	// were removed. Nothing is written when there were none.
	DeleteNotesByUser(ctx context.Context, userID int) (int, error)
}
