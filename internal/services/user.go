// Package services contains the application services of the notes CLI.
// This file defines the user service: registration, lookup, profile updates
// and removal of users together with their notes.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/models"
	"github.com/JoseBG93/notes-Assistant/internal/repositories/store"
)

// UserService defines user operations for the CLI.
//
// Lookups return (nil, nil) when the user does not exist. Validation failures
// are *models.ValidationError values wrapping common.ErrValidation.
type UserService interface {
	CreateUser(ctx context.Context, name, surname, birthday, favoriteColor string) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UserExists(ctx context.Context, name string) (bool, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int, upd UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int) (bool, error)
}

// UserUpdate lists the profile fields to change. Nil fields are left as they are.
type UserUpdate struct {
	Name          *string
	Surname       *string
	Birthday      *string
	FavoriteColor *string
}

type userService struct {
	store store.Store
	log   logging.Logger
}

// NewUserService constructs a UserService over st.
func NewUserService(st store.Store, log logging.Logger) UserService {
	return &userService{store: st, log: log.With("service", "users")}
}

// CreateUser normalises the input, allocates an ID, validates and persists the
// user. The ID is consumed even when validation fails.
func (s *userService) CreateUser(ctx context.Context, name, surname, birthday, favoriteColor string) (*models.User, error) {
	id, err := s.store.NextUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate user id: %w", err)
	}

	user, err := models.NewUser(id,
		models.TitleCase(name),
		models.TitleCase(surname),
		strings.TrimSpace(birthday),
		normaliseColor(favoriteColor),
	)
	if err != nil {
		s.log.Info(ctx, "user rejected", "user_id", id, "error", err)
		return nil, err
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user created", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	return s.store.GetUserByName(ctx, strings.TrimSpace(name))
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

func (s *userService) UserExists(ctx context.Context, name string) (bool, error) {
	u, err := s.GetUserByName(ctx, name)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.GetAllUsers(ctx)
}

// UpdateUser applies upd to a copy of the stored user and persists it only if
// the whole copy validates. A failed update leaves the stored user unchanged.
func (s *userService) UpdateUser(ctx context.Context, id int, upd UserUpdate) (*models.User, error) {
	current, err := s.store.GetUserByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	staged := *current
	if upd.Name != nil {
		staged.Name = models.TitleCase(*upd.Name)
	}
	if upd.Surname != nil {
		staged.Surname = models.TitleCase(*upd.Surname)
	}
	if upd.Birthday != nil {
		staged.Birthday = strings.TrimSpace(*upd.Birthday)
	}
	if upd.FavoriteColor != nil {
		staged.FavoriteColor = normaliseColor(*upd.FavoriteColor)
	}

	if err := staged.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.SaveUser(ctx, &staged); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user updated", "user_id", id)
	return &staged, nil
}

// DeleteUser removes the user and every note they own.
func (s *userService) DeleteUser(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteUser(ctx, id)
}

func normaliseColor(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
