package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/JoseBG93/notes-Assistant/internal/common"
)

// MaxTitleLength is the longest accepted note title, in characters.
const MaxTitleLength = 100

// Note is a text note owned by a user.
//
// UpdatedAt is nil until the first successful title or content change.
// UserID 0 means the note has no owner and is never visible to any user.
type Note struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
	UserID    int     `json:"user_id"`
}

// NewNote builds a Note and validates its title and content.
func NewNote(id int, title, content, createdAt string, userID int) (*Note, error) {
	n := &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
		UserID:    userID,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Note) Validate() error {
	if err := n.ValidateTitle(); err != nil {
		return err
	}
	return n.ValidateContent()
}

func (n *Note) ValidateTitle() error {
	return checkTitle(n.Title)
}

func (n *Note) ValidateContent() error {
	return checkContent(n.Content)
}

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalid("title", "cannot be empty")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return invalid("title", fmt.Sprintf("cannot exceed %d characters", MaxTitleLength))
	}
	return nil
}

func checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return invalid("content", "cannot be empty")
	}
	return nil
}

// UpdateTitle replaces the title and stamps UpdatedAt. An invalid title is
// rejected and the note is left untouched.
func (n *Note) UpdateTitle(title string) error {
	if err := checkTitle(title); err != nil {
		return err
	}
	n.Title = title
	n.touch()
	return nil
}

// UpdateContent replaces the content and stamps UpdatedAt. Empty content is
// rejected and the note is left untouched.
func (n *Note) UpdateContent(content string) error {
	if err := checkContent(content); err != nil {
		return err
	}
	n.Content = content
	n.touch()
	return nil
}

func (n *Note) touch() {
	ts := timestamp()
	n.UpdatedAt = &ts
}

// Summary returns the content cut to maxLength characters with "..." appended
// when it was longer.
func (n *Note) Summary(maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(n.Content) <= maxLength {
		return n.Content
	}
	return string([]rune(n.Content)[:maxLength]) + "..."
}

// CreatedTime parses CreatedAt. ok is false for values not in TimestampLayout.
func (n *Note) CreatedTime() (t time.Time, ok bool) {
	t, err := ParseTimestamp(n.CreatedAt)
	return t, err == nil
}

func (n *Note) String() string {
	return fmt.Sprintf("Note %d: %s", n.ID, n.Title)
}

type noteRecord struct {
	ID        *int    `json:"id"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
	UserID    *int    `json:"user_id"`
}

// UnmarshalJSON decodes a stored note record. id, title, content and
// created_at are required; updated_at and user_id may be null or absent.
func (n *Note) UnmarshalJSON(data []byte) error {
	var rec noteRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: note: %v", common.ErrMalformedRecord, err)
	}

	switch {
	case rec.ID == nil:
		return missingField("note", "id")
	case rec.Title == nil:
		return missingField("note", "title")
	case rec.Content == nil:
		return missingField("note", "content")
	case rec.CreatedAt == nil:
		return missingField("note", "created_at")
	}

	decoded := Note{
		ID:        *rec.ID,
		Title:     *rec.Title,
		Content:   *rec.Content,
		CreatedAt: *rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.UserID != nil {
		decoded.UserID = *rec.UserID
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*n = decoded
	return nil
}

// SortNewestFirst orders notes by creation time, newest first. Equal times
// fall back to the higher ID first. Notes whose created_at does not parse sort
// after all others, compared as strings.
func SortNewestFirst(notes []*Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		ta, okA := a.CreatedTime()
		tb, okB := b.CreatedTime()
		switch {
		case okA && okB && !ta.Equal(tb):
			return ta.After(tb)
		case okA != okB:
			return okA
		case !okA && a.CreatedAt != b.CreatedAt:
			return a.CreatedAt > b.CreatedAt
		}
		return a.ID > b.ID
	})
}
