package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseBG93/notes-Assistant/internal/common"
	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/models"
	"github.com/JoseBG93/notes-Assistant/internal/repositories/store"
)

var morning = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)

func TestCreateNote(t *testing.T) {
	setClock(t, morning)
	_, notes, _ := newServices(t)
	ctx := context.Background()

	n, err := notes.CreateNote(ctx, "  Groceries ", "\tmilk, eggs\n", 1)
	require.NoError(t, err)

	assert.Equal(t, &models.Note{
		ID:        1,
		Title:     "Groceries",
		Content:   "milk, eggs",
		CreatedAt: "15/03/24 09:30:00",
		UserID:    1,
	}, n)
}

func TestCreateNote_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		content   string
		wantField string
	}{
		{"blank title", "   ", "x", "title"},
		{"title too long", strings.Repeat("a", 101), "x", "title"},
		{"blank content", "t", " \n ", "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, notes, st := newServices(t)
			ctx := context.Background()

			n, err := notes.CreateNote(ctx, tt.title, tt.content, 1)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Nil(t, n)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)

			all, err := st.GetAllNotes(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCreateNote_IDsIncreaseAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	st, fs := newMemStore(t)

	first, err := NewNotesService(st, logging.Nop()).CreateNote(ctx, "one", "1", 1)
	require.NoError(t, err)
	second, err := NewNotesService(st, logging.Nop()).CreateNote(ctx, "two", "2", 1)
	require.NoError(t, err)

	reopened, err := store.New(fs, "/data")
	require.NoError(t, err)
	third, err := NewNotesService(reopened, logging.Nop()).CreateNote(ctx, "three", "3", 1)
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
}

func TestCreateNote_StoreFailure(t *testing.T) {
	st, _ := newMemStore(t)
	notes := NewNotesService(brokenStore{Store: st}, logging.Nop())

	_, err := notes.CreateNote(context.Background(), "t", "c", 1)
	require.ErrorIs(t, err, errDiskFull)
}

func TestGetNote_Ownership(t *testing.T) {
	_, notes, _ := newServices(t)
	ctx := context.Background()

	mine, err := notes.CreateNote(ctx, "mine", "x", 1)
	require.NoError(t, err)
	theirs, err := notes.CreateNote(ctx, "theirs", "y", 2)
	require.NoError(t, err)

	tests := []struct {
		name   string
		noteID int
		userID int
		want   *models.Note
	}{
		{"owner", mine.ID, 1, mine},
		{"other user's note", theirs.ID, 1, nil},
		{"not the owner", mine.ID, 2, nil},
		{"unowned user id", mine.ID, 0, nil},
		{"missing", 99, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := notes.GetNote(ctx, tt.noteID, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUserNotes_NewestFirst(t *testing.T) {
	_, notes, _ := newServices(t)
	ctx := context.Background()

	var ids []int
	for i, at := range []time.Time{
		time.Date(2024, time.December, 20, 8, 0, 0, 0, time.Local),
		time.Date(2025, time.January, 5, 8, 0, 0, 0, time.Local),
		time.Date(2024, time.December, 31, 8, 0, 0, 0, time.Local),
	} {
		setClock(t, at)
		n, err := notes.CreateNote(ctx, fmt.Sprintf("n%d", i), "x", 1)
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	got, err := notes.GetUserNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{ids[1], ids[2], ids[0]}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	later := morning.Add(2 * time.Hour)

	t.Run("content", func(t *testing.T) {
		setClock(t, morning)
		_, notes, _ := newServices(t)
		n, err := notes.CreateNote(ctx, "Groceries", "milk", 1)
		require.NoError(t, err)

		setClock(t, later)
		got, err := notes.UpdateNoteContent(ctx, n.ID, "  milk, eggs, bread  ", 1)
		require.NoError(t, err)
		require.NotNil(t, got.UpdatedAt)
		assert.Equal(t, "milk, eggs, bread", got.Content)
		assert.Equal(t, "15/03/24 11:30:00", *got.UpdatedAt)
		assert.GreaterOrEqual(t, *got.UpdatedAt, got.CreatedAt)

		stored, err := notes.GetNote(ctx, n.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, got, stored)
	})

	t.Run("title", func(t *testing.T) {
		_, notes, _ := newServices(t)
		n, err := notes.CreateNote(ctx, "Groceries", "milk", 1)
		require.NoError(t, err)

		got, err := notes.UpdateNoteTitle(ctx, n.ID, " Grocery list ", 1)
		require.NoError(t, err)
		assert.Equal(t, "Grocery list", got.Title)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("invalid value leaves note untouched", func(t *testing.T) {
		_, notes, _ := newServices(t)
		n, err := notes.CreateNote(ctx, "Groceries", "milk", 1)
		require.NoError(t, err)

		got, err := notes.UpdateNoteTitle(ctx, n.ID, "   ", 1)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Nil(t, got)

		got, err = notes.UpdateNoteContent(ctx, n.ID, "", 1)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Nil(t, got)

		stored, err := notes.GetNote(ctx, n.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, n, stored)
	})

	t.Run("not owned", func(t *testing.T) {
		_, notes, _ := newServices(t)
		n, err := notes.CreateNote(ctx, "Groceries", "milk", 1)
		require.NoError(t, err)

		got, err := notes.UpdateNoteTitle(ctx, n.ID, "stolen", 2)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = notes.UpdateNoteContent(ctx, 404, "x", 1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("write failure", func(t *testing.T) {
		st, _ := newMemStore(t)
		n, err := NewNotesService(st, logging.Nop()).CreateNote(ctx, "Groceries", "milk", 1)
		require.NoError(t, err)

		_, err = NewNotesService(brokenStore{Store: st}, logging.Nop()).UpdateNoteTitle(ctx, n.ID, "x", 1)
		require.ErrorIs(t, err, errDiskFull)
	})
}

func TestDeleteNote(t *testing.T) {
	_, notes, _ := newServices(t)
	ctx := context.Background()

	n, err := notes.CreateNote(ctx, "temp", "x", 1)
	require.NoError(t, err)

	deleted, err := notes.DeleteNote(ctx, n.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted, "other users cannot delete")

	deleted, err = notes.DeleteNote(ctx, n.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = notes.DeleteNote(ctx, n.ID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteNote_StoreFailure(t *testing.T) {
	ctx := context.Background()
	st, _ := newMemStore(t)
	n, err := NewNotesService(st, logging.Nop()).CreateNote(ctx, "temp", "x", 1)
	require.NoError(t, err)

	_, err = NewNotesService(brokenStore{Store: st}, logging.Nop()).DeleteNote(ctx, n.ID, 1)
	require.ErrorIs(t, err, errDiskFull)
}

func TestSearchNotes(t *testing.T) {
	_, notes, _ := newServices(t)
	ctx := context.Background()

	setClock(t, morning)
	groceries, err := notes.CreateNote(ctx, "Groceries", "Milk, eggs", 1)
	require.NoError(t, err)
	setClock(t, morning.Add(time.Minute))
	ideas, err := notes.CreateNote(ctx, "Ideas", "buy a MILKSHAKE machine", 1)
	require.NoError(t, err)
	_, err = notes.CreateNote(ctx, "milk", "someone else's", 2)
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []int
	}{
		{"milk", []int{ideas.ID, groceries.ID}},
		{"GROC", []int{groceries.ID}},
		{"", []int{ideas.ID, groceries.ID}},
		{"xyz-not-present", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := notes.SearchNotes(ctx, tt.query, 1)
			require.NoError(t, err)

			var ids []int
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearchNotes_StoreFailure(t *testing.T) {
	st, _ := newMemStore(t)
	_, err := NewNotesService(brokenStore{Store: st}, logging.Nop()).SearchNotes(context.Background(), "x", 1)
	require.ErrorIs(t, err, errDiskFull)
}

func TestGetNotesSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("no notes", func(t *testing.T) {
		_, notes, _ := newServices(t)

		sum, err := notes.GetNotesSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, sum.Total)
		assert.Empty(t, sum.Recent)
		assert.Nil(t, sum.Oldest)
		assert.Nil(t, sum.Newest)
	})

	t.Run("more than the recent limit", func(t *testing.T) {
		_, notes, _ := newServices(t)

		var created []*models.Note
		for i := 0; i < 7; i++ {
			setClock(t, morning.Add(time.Duration(i)*time.Hour))
			n, err := notes.CreateNote(ctx, fmt.Sprintf("note %d", i), "x", 1)
			require.NoError(t, err)
			created = append(created, n)
		}
		_, err := notes.CreateNote(ctx, "foreign", "x", 2)
		require.NoError(t, err)

		sum, err := notes.GetNotesSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, sum.Total)
		require.Len(t, sum.Recent, RecentNotesLimit)
		assert.Equal(t, created[6], sum.Recent[0])
		assert.Equal(t, created[2], sum.Recent[4])
		assert.Equal(t, created[6], sum.Newest)
		assert.Equal(t, created[0], sum.Oldest)
	})

	t.Run("store failure", func(t *testing.T) {
		st, _ := newMemStore(t)
		_, err := NewNotesService(brokenStore{Store: st}, logging.Nop()).GetNotesSummary(ctx, 1)
		require.ErrorIs(t, err, errDiskFull)
	})
}

func TestAnaLopezScenario(t *testing.T) {
	users, notes, _ := newServices(t)
	ctx := context.Background()

	ana, err := users.CreateUser(ctx, "Ana", "Lopez", "15-03-1990", "blue")
	require.NoError(t, err)
	assert.Equal(t, 1, ana.ID)

	n, err := notes.CreateNote(ctx, "Groceries", "milk, eggs", ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)
	assert.NotEmpty(t, n.CreatedAt)
	assert.Nil(t, n.UpdatedAt)

	n, err = notes.UpdateNoteTitle(ctx, n.ID, "Grocery list", ana.ID)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.NotNil(t, n.UpdatedAt)
	assert.Equal(t, "Grocery list", n.Title)

	found, err := notes.SearchNotes(ctx, "milk", ana.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, n.ID, found[0].ID)

	deleted, err := users.DeleteUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	left, err := notes.GetUserNotes(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	gone, err := users.GetUserByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
