package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/JoseBG93/notes-Assistant/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func nameGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z]{1,12}( [A-Za-z]{1,12})?`)
}

func birthdayGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9]{2}[-/][0-9]{2}[-/][0-9]{4}`).Filter(IsValidBirthday)
}

func invalidBirthdayGenerator() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[0-9]{2}\.[0-9]{2}\.[0-9]{4}`),
		rapid.StringMatching(`[0-9]{2}-[0-9]{2}/[0-9]{4}`),
		rapid.StringMatching(`[0-9]{1}-[0-9]{2}-[0-9]{4}`),
		rapid.StringMatching(`[0-9]{2}-[0-9]{2}-[0-9]{2}`),
		rapid.StringMatching(`[0-9]{2}/[0-9]{3}/[0-9]{4}`),
		rapid.StringMatching(`[a-z]{2}-[0-9]{2}-[0-9]{4}`),
		rapid.Just(""),
	)
}

func TestNewUser_ValidRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.IntRange(1, 1_000_000).Draw(t, "id")
		name := nameGenerator().Draw(t, "name")
		surname := nameGenerator().Draw(t, "surname")
		birthday := birthdayGenerator().Draw(t, "birthday")
		color := rapid.SampledFrom(validColors).Draw(t, "color")

		u, err := NewUser(id, name, surname, birthday, color)
		if err != nil {
			t.Fatalf("NewUser: %v", err)
		}

		b, err := json.Marshal(u)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got User
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got != *u {
			t.Fatalf("round trip changed user: %+v != %+v", got, *u)
		}
	})
}

func TestNewUser_InvalidBirthdayRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		birthday := invalidBirthdayGenerator().Draw(t, "birthday")

		_, err := NewUser(1, "Ana", "Lopez", birthday, "blue")

		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "birthday" {
			t.Fatalf("expected birthday validation error for %q, got %v", birthday, err)
		}
	})
}

func TestNewUser_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		user      User
		wantField string
	}{
		{name: "empty name", user: User{Name: "", Surname: "Lopez", Birthday: "15-03-1990", FavoriteColor: "blue"}, wantField: "name"},
		{name: "only spaces", user: User{Name: "   ", Surname: "Lopez", Birthday: "15-03-1990", FavoriteColor: "blue"}, wantField: "name"},
		{name: "digit in name", user: User{Name: "Ana2", Surname: "Lopez", Birthday: "15-03-1990", FavoriteColor: "blue"}, wantField: "name"},
		{name: "symbol in surname", user: User{Name: "Ana", Surname: "Lopez-Diaz", Birthday: "15-03-1990", FavoriteColor: "blue"}, wantField: "surname"},
		{name: "unknown color", user: User{Name: "Ana", Surname: "Lopez", Birthday: "15/03/1990", FavoriteColor: "teal"}, wantField: "favorite_color"},
		{name: "bad birthday", user: User{Name: "Ana", Surname: "Lopez", Birthday: "1990-03-15", FavoriteColor: "blue"}, wantField: "birthday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(1, tt.user.Name, tt.user.Surname, tt.user.Birthday, tt.user.FavoriteColor)
			require.ErrorIs(t, err, common.ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewUser_AcceptsAccentsAndColorCase(t *testing.T) {
	u, err := NewUser(7, "José María", "Núñez", "01/12/2000", "MAGENTA")
	require.NoError(t, err)
	assert.Equal(t, "José María Núñez", u.FullName())
}

func TestUserUnmarshal_MissingKey(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":1,"name":"Ana","surname":"Lopez","birthday":"15-03-1990"}`), &u)
	require.ErrorIs(t, err, common.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "favorite_color")
}

func TestUserUnmarshal_CorruptValueRejected(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":1,"name":"Ana","surname":"Lopez","birthday":"15-03-1990","favorite_color":"teal"}`), &u)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, User{}, u, "a rejected record must not be assigned")
}

func TestUserUnmarshal_WrongType(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"one"}`), &u)
	require.ErrorIs(t, err, common.ErrMalformedRecord)
}

func TestValidColors_ReturnsCopy(t *testing.T) {
	colors := ValidColors()
	require.Len(t, colors, 14)
	colors[0] = "mauve"
	assert.Equal(t, "red", ValidColors()[0])
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Ana", TitleCase("  aNA "))
	assert.Equal(t, "Ana María", TitleCase("ana maría"))
	assert.Equal(t, "", TitleCase("   "))
}
