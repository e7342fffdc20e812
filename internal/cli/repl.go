package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JoseBG93/notes-Assistant/internal/common"
	"github.com/JoseBG93/notes-Assistant/internal/logging"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddNote(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Info(ctx context.Context) error
	Stats(ctx context.Context) error
}

const (
	helpGuest = "Available commands: login, register, stats, help, exit"
	helpUser  = "Available commands: add, (l)ist, show [id], edit [id], delete [id], search [text], info, stats, logout, help, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The first token is the command; the remaining tokens are passed to
// commands that accept arguments. Note commands require a logged-in user.
// The loop exits on end of input or when the user types "exit" or "quit".
//
// Command errors are reported to w and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer, log logging.Logger) {
	for {
		fmt.Fprintf(w, "notes%s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if needsLogin(cmd) && !a.isLoggedIn() {
			fmt.Fprintln(w, "Please login first (type 'login' or 'register').")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpUser)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "add":
			cmdErr = a.AddNote(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "edit":
			cmdErr = a.Edit(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "search":
			cmdErr = a.Search(ctx, args)

		case "info":
			cmdErr = a.Info(ctx)

		case "stats":
			cmdErr = a.Stats(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Thanks for using Notes Assistant. Goodbye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			reportError(ctx, w, log, cmd, cmdErr)
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "logout", "add", "l", "list", "show", "edit", "delete", "search", "info":
		return true
	}
	return false
}

func reportError(ctx context.Context, w io.Writer, log logging.Logger, cmd string, err error) {
	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(w)
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(w, "Note not found or doesn't belong to you.")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(w, "Invalid input:", err)
	default:
		log.Error(ctx, "command failed", "command", cmd, "error", err)
		fmt.Fprintln(w, "Error:", err)
	}
}
