package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/models"
	"github.com/JoseBG93/notes-Assistant/internal/repositories/store"
)

var errDiskFull = errors.New("disk full")

func newMemStore(t testing.TB) (*store.JSONStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	st, err := store.New(fs, "/data")
	require.NoError(t, err)
	return st, fs
}

func newServices(t testing.TB) (UserService, NotesService, *store.JSONStore) {
	t.Helper()
	st, _ := newMemStore(t)
	return NewUserService(st, logging.Nop()), NewNotesService(st, logging.Nop()), st
}

// setClock pins models.Now for the duration of the test.
func setClock(t *testing.T, at time.Time) {
	t.Helper()
	old := models.Now
	models.Now = func() time.Time { return at }
	t.Cleanup(func() { models.Now = old })
}

// brokenStore fails every write and allocation; reads come from the
// embedded store.
type brokenStore struct {
	store.Store
}

func (brokenStore) NextUserID(context.Context) (int, error) { return 0, errDiskFull }
func (brokenStore) NextNoteID(context.Context) (int, error) { return 0, errDiskFull }

func (brokenStore) SaveUser(context.Context, *models.User) error { return errDiskFull }
func (brokenStore) SaveNote(context.Context, *models.Note) error { return errDiskFull }

func (brokenStore) DeleteNote(context.Context, int) (bool, error) { return false, errDiskFull }

func (brokenStore) GetNotesByUser(context.Context, int) ([]*models.Note, error) {
	return nil, errDiskFull
}

func strptr(s string) *string { return &s }
