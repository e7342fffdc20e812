package services

// This file defines the notes service: ownership-scoped note CRUD, keyword
// search and per-user summaries.

import (
	"context"
	"fmt"
	"strings"

	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/models"
	"github.com/JoseBG93/notes-Assistant/internal/repositories/store"
)

// RecentNotesLimit is how many notes NotesSummary.Recent holds at most.
const RecentNotesLimit = 5

// NotesService defines note operations for the CLI.
//
// Every operation is scoped to userID: a note owned by someone else behaves
// exactly like a missing one, (nil, nil) or false.
type NotesService interface {
	CreateNote(ctx context.Context, title, content string, userID int) (*models.Note, error)
	GetNote(ctx context.Context, noteID, userID int) (*models.Note, error)
	GetUserNotes(ctx context.Context, userID int) ([]*models.Note, error)
	UpdateNoteTitle(ctx context.Context, noteID int, title string, userID int) (*models.Note, error)
	UpdateNoteContent(ctx context.Context, noteID int, content string, userID int) (*models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int) (bool, error)
	SearchNotes(ctx context.Context, query string, userID int) ([]*models.Note, error)
	GetNotesSummary(ctx context.Context, userID int) (*NotesSummary, error)
}

// NotesSummary aggregates a user's notes. Recent is newest first; Oldest and
// Newest are nil when the user has no notes.
type NotesSummary struct {
	Total  int
	Recent []*models.Note
	Oldest *models.Note
	Newest *models.Note
}

type notesService struct {
	store store.Store
	log   logging.Logger
}

// NewNotesService constructs a NotesService over st.
func NewNotesService(st store.Store, log logging.Logger) NotesService {
	return &notesService{store: st, log: log.With("service", "notes")}
}

// CreateNote trims title and content, allocates an ID and stamps created_at
// before validating. The ID is consumed even when validation fails.
func (s *notesService) CreateNote(ctx context.Context, title, content string, userID int) (*models.Note, error) {
	id, err := s.store.NextNoteID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate note id: %w", err)
	}

	note, err := models.NewNote(id,
		strings.TrimSpace(title),
		strings.TrimSpace(content),
		models.FormatTimestamp(models.Now()),
		userID,
	)
	if err != nil {
		s.log.Info(ctx, "note rejected", "note_id", id, "user_id", userID, "error", err)
		return nil, err
	}

	if err := s.store.SaveNote(ctx, note); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "note created", "note_id", id, "user_id", userID)
	return note, nil
}

func (s *notesService) GetNote(ctx context.Context, noteID, userID int) (*models.Note, error) {
	note, err := s.store.GetNoteByID(ctx, noteID)
	if err != nil || note == nil {
		return nil, err
	}
	if note.UserID != userID {
		s.log.Debug(ctx, "note owned by another user", "note_id", noteID, "user_id", userID)
		return nil, nil
	}
	return note, nil
}

func (s *notesService) GetUserNotes(ctx context.Context, userID int) ([]*models.Note, error) {
	return s.store.GetNotesByUser(ctx, userID)
}

func (s *notesService) UpdateNoteTitle(ctx context.Context, noteID int, title string, userID int) (*models.Note, error) {
	return s.update(ctx, noteID, userID, func(n *models.Note) error {
		return n.UpdateTitle(strings.TrimSpace(title))
	})
}

func (s *notesService) UpdateNoteContent(ctx context.Context, noteID int, content string, userID int) (*models.Note, error) {
	return s.update(ctx, noteID, userID, func(n *models.Note) error {
		return n.UpdateContent(strings.TrimSpace(content))
	})
}

// update loads an owned note, applies mutate and persists the result.
// Validation errors from mutate are returned unchanged.
func (s *notesService) update(ctx context.Context, noteID, userID int, mutate func(*models.Note) error) (*models.Note, error) {
	note, err := s.GetNote(ctx, noteID, userID)
	if err != nil || note == nil {
		return nil, err
	}

	if err := mutate(note); err != nil {
		return nil, err
	}
	if err := s.store.SaveNote(ctx, note); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "note updated", "note_id", noteID, "user_id", userID)
	return note, nil
}

func (s *notesService) DeleteNote(ctx context.Context, noteID, userID int) (bool, error) {
	note, err := s.GetNote(ctx, noteID, userID)
	if err != nil || note == nil {
		return false, err
	}

	deleted, err := s.store.DeleteNote(ctx, noteID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info(ctx, "note deleted", "note_id", noteID, "user_id", userID)
	}
	return deleted, nil
}

// SearchNotes returns the user's notes whose title or content contains query,
// ignoring case, newest first. An empty query matches every note.
func (s *notesService) SearchNotes(ctx context.Context, query string, userID int) ([]*models.Note, error) {
	notes, err := s.store.GetNotesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []*models.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *notesService) GetNotesSummary(ctx context.Context, userID int) (*NotesSummary, error) {
	notes, err := s.store.GetNotesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := &NotesSummary{Total: len(notes), Recent: notes}
	if len(notes) > RecentNotesLimit {
		sum.Recent = notes[:RecentNotesLimit]
	}
	if len(notes) > 0 {
		sum.Newest = notes[0]
		sum.Oldest = notes[len(notes)-1]
	}
	return sum, nil
}
