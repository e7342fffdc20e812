package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/JoseBG93/notes-Assistant/internal/models"
)

func (s *JSONStore) SaveNote(ctx context.Context, note *models.Note) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Notes, "save_note", err) }()

	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}

	notes := s.load(ctx, Notes)
	notes[strconv.Itoa(note.ID)] = data
	if err := s.save(ctx, Notes, notes); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

func (s *JSONStore) GetNoteByID(ctx context.Context, id int) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer observe(Notes, "get_note", nil)

	raw, ok := s.load(ctx, Notes)[strconv.Itoa(id)]
	if !ok {
		return nil, nil
	}
	return s.decodeNote(ctx, raw), nil
}

func (s *JSONStore) GetNotesByUser(ctx context.Context, userID int) ([]*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer observe(Notes, "get_notes_by_user", nil)

	var out []*models.Note
	for _, n := range s.notes(ctx) {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	models.SortNewestFirst(out)
	return out, nil
}

func (s *JSONStore) GetAllNotes(ctx context.Context) ([]*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer observe(Notes, "get_all_notes", nil)

	return s.notes(ctx), nil
}

func (s *JSONStore) DeleteNote(ctx context.Context, id int) (deleted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Notes, "delete_note", err) }()

	notes := s.load(ctx, Notes)
	key := strconv.Itoa(id)
	if _, ok := notes[key]; !ok {
		return false, nil
	}

	delete(notes, key)
	if err := s.save(ctx, Notes, notes); err != nil {
		return false, fmt.Errorf("failed to delete note: %w", err)
	}
	return true, nil
}

func (s *JSONStore) DeleteNotesByUser(ctx context.Context, userID int) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Notes, "delete_notes_by_user", err) }()

	return s.deleteNotesByUser(ctx, userID)
}

// deleteNotesByUser drops every note owned by userID, corrupt records
// included when their owner can still be read. Callers hold s.mu.
func (s *JSONStore) deleteNotesByUser(ctx context.Context, userID int) (int, error) {
	notes := s.load(ctx, Notes)

	removed := 0
	for key, raw := range notes {
		var owner struct {
			UserID int `json:"user_id"`
		}
		if json.Unmarshal(raw, &owner) == nil && owner.UserID == userID {
			delete(notes, key)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	if err := s.save(ctx, Notes, notes); err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	return removed, nil
}

// notes decodes every valid note record, ordered by ID. Callers hold s.mu.
func (s *JSONStore) notes(ctx context.Context) []*models.Note {
	records := s.load(ctx, Notes)

	out := make([]*models.Note, 0, len(records))
	for _, raw := range records {
		if n := s.decodeNote(ctx, raw); n != nil {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// decodeNote returns nil for a record that does not decode or validate.
func (s *JSONStore) decodeNote(ctx context.Context, raw json.RawMessage) *models.Note {
	var n models.Note
	if err := json.Unmarshal(raw, &n); err != nil {
		s.log.Warn(ctx, "skipping corrupt note record", "error", err)
		return nil
	}
	return &n
}
