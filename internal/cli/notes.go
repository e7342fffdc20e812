package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/JoseBG93/notes-Assistant/internal/common"
	"github.com/JoseBG93/notes-Assistant/internal/models"
)

func (a *App) AddNote(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Note title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Note content", a.out)
	if err != nil {
		return err
	}

	note, err := a.notes.CreateNote(ctx, title, content, a.user.ID)
	if err != nil {
		return err
	}

	a.printf("Note '%s' created successfully!\n", note.Title)
	a.printf("Note ID: %d\nCreated: %s\n", note.ID, note.CreatedAt)
	return nil
}

func (a *App) List(ctx context.Context) error {
	notes, err := a.notes.GetUserNotes(ctx, a.user.ID)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		a.println("You don't have any notes yet.")
		return nil
	}
	return writeNotesTable(a.out, notes, a.config.PreviewLength)
}

func (a *App) Show(ctx context.Context, args []string) error {
	note, err := a.pickNote(ctx, args, "read")
	if err != nil || note == nil {
		return err
	}

	a.printf("Note: %s\n", note.Title)
	a.printf("ID: %d\nCreated: %s\n", note.ID, note.CreatedAt)
	if note.UpdatedAt != nil {
		a.printf("Updated: %s\n", *note.UpdatedAt)
	}
	a.println(strings.Repeat("-", 40))
	a.println(note.Content)
	a.println(strings.Repeat("-", 40))
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	note, err := a.pickNote(ctx, args, "update")
	if err != nil || note == nil {
		return err
	}

	choice, err := GetChoice(a.reader, "What would you like to update?", []string{"title", "content", "both"}, a.out)
	if err != nil {
		return err
	}

	if choice == "title" || choice == "both" {
		title, err := GetSimpleText(a.reader, fmt.Sprintf("New title (current: %s)", note.Title), a.out)
		if err != nil {
			return err
		}
		updated, err := a.notes.UpdateNoteTitle(ctx, note.ID, title, a.user.ID)
		if err != nil {
			return err
		}
		if updated == nil {
			return fmt.Errorf("note %d: %w", note.ID, common.ErrNotFound)
		}
		a.println("Title updated successfully!")
	}

	if choice == "content" || choice == "both" {
		content, err := GetMultiline(a.reader, "New content", a.out)
		if err != nil {
			return err
		}
		updated, err := a.notes.UpdateNoteContent(ctx, note.ID, content, a.user.ID)
		if err != nil {
			return err
		}
		if updated == nil {
			return fmt.Errorf("note %d: %w", note.ID, common.ErrNotFound)
		}
		a.println("Content updated successfully!")
	}

	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	note, err := a.pickNote(ctx, args, "delete")
	if err != nil || note == nil {
		return err
	}

	a.printf("You are about to delete: '%s'\n", note.Title)
	sure, err := GetYesNo(a.reader, "Are you sure?", a.out)
	if err != nil {
		return err
	}
	if !sure {
		a.println("Deletion cancelled.")
		return nil
	}

	deleted, err := a.notes.DeleteNote(ctx, note.ID, a.user.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("note %d: %w", note.ID, common.ErrNotFound)
	}
	a.println("Note deleted successfully!")
	return nil
}

// Search matches args joined by spaces, or prompts for a term when none
// were given.
func (a *App) Search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if len(args) == 0 {
		var err error
		if query, err = GetSimpleText(a.reader, "Enter search term", a.out); err != nil {
			return err
		}
	}

	results, err := a.notes.SearchNotes(ctx, query, a.user.ID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		a.println("No notes found matching your search.")
		return nil
	}

	a.printf("Found %d note(s):\n", len(results))
	return writeNotesTable(a.out, results, a.config.PreviewLength)
}

// pickNote resolves the note a command works on: the ID in args, or one
// chosen from the user's notes table. It returns (nil, nil) when the user
// has no notes.
func (a *App) pickNote(ctx context.Context, args []string, verb string) (*models.Note, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		notes, err := a.notes.GetUserNotes(ctx, a.user.ID)
		if err != nil {
			return nil, err
		}
		if len(notes) == 0 {
			a.println("You don't have any notes yet.")
			return nil, nil
		}
		if err := writeNotesTable(a.out, notes, 0); err != nil {
			return nil, err
		}
		if raw, err = GetSimpleText(a.reader, "Enter note ID to "+verb, a.out); err != nil {
			return nil, err
		}
	}

	id, err := parseNoteID(raw)
	if err != nil {
		return nil, err
	}

	note, err := a.notes.GetNote(ctx, id, a.user.ID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("note %d: %w", id, common.ErrNotFound)
	}
	return note, nil
}
