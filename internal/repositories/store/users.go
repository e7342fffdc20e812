package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/JoseBG93/notes-Assistant/internal/models"
)

func (s *JSONStore) SaveUser(ctx context.Context, user *models.User) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Users, "save_user", err) }()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	users := s.load(ctx, Users)
	users[strconv.Itoa(user.ID)] = data
	if err := s.save(ctx, Users, users); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *JSONStore) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer observe(Users, "get_user", nil)

	raw, ok := s.load(ctx, Users)[strconv.Itoa(id)]
	if !ok {
		return nil, nil
	}
	return s.decodeUser(ctx, raw), nil
}

func (s *JSONStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer observe(Users, "get_user_by_name", nil)

	for _, u := range s.users(ctx) {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return nil, nil
}

func (s *JSONStore) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer observe(Users, "get_all_users", nil)

	return s.users(ctx), nil
}

func (s *JSONStore) DeleteUser(ctx context.Context, id int) (deleted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Users, "delete_user", err) }()

	users := s.load(ctx, Users)
	key := strconv.Itoa(id)
	if _, ok := users[key]; !ok {
		return false, nil
	}

	delete(users, key)
	if err := s.save(ctx, Users, users); err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	n, err := s.deleteNotesByUser(ctx, id)
	if err != nil {
		return true, fmt.Errorf("failed to delete notes of user %d: %w", id, err)
	}
	s.log.Info(ctx, "user deleted", "user_id", id, "notes_deleted", n)
	return true, nil
}

// users decodes every valid user record, ordered by ID. Callers hold s.mu.
func (s *JSONStore) users(ctx context.Context) []*models.User {
	records := s.load(ctx, Users)

	out := make([]*models.User, 0, len(records))
	for _, raw := range records {
		if u := s.decodeUser(ctx, raw); u != nil {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// decodeUser returns nil for a record that does not decode or validate.
func (s *JSONStore) decodeUser(ctx context.Context, raw json.RawMessage) *models.User {
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "skipping corrupt user record", "error", err)
		return nil
	}
	return &u
}
