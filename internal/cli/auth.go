package cli

import (
	"context"
	"strings"

	"github.com/JoseBG93/notes-Assistant/internal/models"
)

// Login selects the current user by name. An unknown name offers to create
// an account with it.
func (a *App) Login(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Please enter your name", a.out)
	if err != nil {
		return err
	}
	if !models.IsValidName(name) {
		return &models.ValidationError{Field: "name", Reason: "must contain only letters and spaces"}
	}

	user, err := a.users.GetUserByName(ctx, name)
	if err != nil {
		return err
	}
	if user == nil {
		a.println("You're not registered yet.")
		create, err := GetYesNo(a.reader, "Would you like to create an account?", a.out)
		if err != nil || !create {
			return err
		}
		return a.register(ctx, name)
	}

	a.user = user
	a.log.Info(ctx, "user logged in", "user_id", user.ID)
	a.printf("Welcome back, %s!\n", user.Name)
	return a.printNoteCount(ctx)
}

// Register creates an account and logs it in.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	return a.register(ctx, name)
}

func (a *App) register(ctx context.Context, name string) error {
	a.println("Please provide some additional information:")

	surname, err := GetSimpleText(a.reader, "Surname", a.out)
	if err != nil {
		return err
	}
	birthday, err := GetSimpleText(a.reader, "Birthday (DD-MM-YYYY or DD/MM/YYYY)", a.out)
	if err != nil {
		return err
	}
	color, err := GetSimpleText(a.reader, "Favorite color ("+strings.Join(models.ValidColors(), ", ")+")", a.out)
	if err != nil {
		return err
	}

	user, err := a.users.CreateUser(ctx, name, surname, birthday, color)
	if err != nil {
		return err
	}

	a.user = user
	a.println("Account created successfully!")
	return writeUserTable(a.out, user)
}

func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "user logged out", "user_id", a.user.ID)
	a.printf("Goodbye, %s.\n", a.user.Name)
	a.user = nil
	return nil
}

func (a *App) printNoteCount(ctx context.Context) error {
	sum, err := a.notes.GetNotesSummary(ctx, a.user.ID)
	if err != nil {
		return err
	}
	a.printf("You have %d notes.\n", sum.Total)
	return nil
}
