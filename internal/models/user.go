// Package models defines the User and Note entities of Notes Assistant,
// their validation rules and their JSON record form.
package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/JoseBG93/notes-Assistant/internal/common"
)

var (
	birthdayDashed  = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`)
	birthdaySlashed = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
)

var validColors = []string{
	"red", "blue", "green", "yellow", "orange", "purple", "pink",
	"brown", "black", "white", "gray", "grey", "cyan", "magenta",
}

// ValidColors returns the accepted favourite colours in display order.
func ValidColors() []string {
	out := make([]string, len(validColors))
	copy(out, validColors)
	return out
}

// IsValidColor reports whether c is in the palette, ignoring case.
func IsValidColor(c string) bool {
	c = strings.ToLower(c)
	for _, v := range validColors {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidName reports whether s is non-empty and made of letters and spaces.
func IsValidName(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case r == ' ':
		case unicode.IsLetter(r):
			letters++
		default:
			return false
		}
	}
	return letters > 0
}

// IsValidBirthday reports whether s is in DD-MM-YYYY or DD/MM/YYYY form.
// Only the shape is checked, not the calendar date.
func IsValidBirthday(s string) bool {
	return birthdayDashed.MatchString(s) || birthdaySlashed.MatchString(s)
}

// User is a registered notes owner.
type User struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Birthday      string `json:"birthday"`
	FavoriteColor string `json:"favorite_color"`
}

// NewUser builds a User and validates it.
func NewUser(id int, name, surname, birthday, favoriteColor string) (*User, error) {
	u := &User{
		ID:            id,
		Name:          name,
		Surname:       surname,
		Birthday:      birthday,
		FavoriteColor: favoriteColor,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks every user field and returns the first failure.
func (u *User) Validate() error {
	if err := u.ValidateName(); err != nil {
		return err
	}
	if err := u.ValidateBirthday(); err != nil {
		return err
	}
	return u.ValidateColor()
}

func (u *User) ValidateName() error {
	if !IsValidName(u.Name) {
		return invalid("name", "must contain only letters and spaces")
	}
	if !IsValidName(u.Surname) {
		return invalid("surname", "must contain only letters and spaces")
	}
	return nil
}

func (u *User) ValidateBirthday() error {
	if !IsValidBirthday(u.Birthday) {
		return invalid("birthday", "must be in DD-MM-YYYY or DD/MM/YYYY format")
	}
	return nil
}

func (u *User) ValidateColor() error {
	if !IsValidColor(u.FavoriteColor) {
		return invalid("favorite_color", fmt.Sprintf("must be one of: %s", strings.Join(validColors, ", ")))
	}
	return nil
}

// FullName joins name and surname.
func (u *User) FullName() string {
	return u.Name + " " + u.Surname
}

// userRecord is the stored shape of a user; pointer fields detect missing keys.
type userRecord struct {
	ID            *int    `json:"id"`
	Name          *string `json:"name"`
	Surname       *string `json:"surname"`
	Birthday      *string `json:"birthday"`
	FavoriteColor *string `json:"favorite_color"`
}

// UnmarshalJSON decodes a stored user record. Every key is required and the
// decoded user must pass Validate, so a corrupt record never loads silently.
func (u *User) UnmarshalJSON(data []byte) error {
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: user: %v", common.ErrMalformedRecord, err)
	}

	switch {
	case rec.ID == nil:
		return missingField("user", "id")
	case rec.Name == nil:
		return missingField("user", "name")
	case rec.Surname == nil:
		return missingField("user", "surname")
	case rec.Birthday == nil:
		return missingField("user", "birthday")
	case rec.FavoriteColor == nil:
		return missingField("user", "favorite_color")
	}

	decoded := User{
		ID:            *rec.ID,
		Name:          *rec.Name,
		Surname:       *rec.Surname,
		Birthday:      *rec.Birthday,
		FavoriteColor: *rec.FavoriteColor,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*u = decoded
	return nil
}
