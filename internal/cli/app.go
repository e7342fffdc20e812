package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/JoseBG93/notes-Assistant/internal/config"
	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/models"
	"github.com/JoseBG93/notes-Assistant/internal/services"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

const banner = `
 _   _       _
| \ | | ___ | |_ ___  ___
|  \| |/ _ \| __/ _ \/ __|
| |\  | (_) | ||  __/\__ \
|_| \_|\___/ \__\___||___/
`

type App struct {
	config      *config.Config
	users       services.UserService
	notes       services.NotesService
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	user        *models.User
	interactive bool
}

// NewApp builds the CLI over the given services. Banner and screen clearing
// are enabled only when out is a terminal.
func NewApp(cfg *config.Config, users services.UserService, notes services.NotesService, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: cfg,
		users:  users,
		notes:  notes,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
	if f, ok := out.(*os.File); ok {
		a.interactive = isTerminal(int(f.Fd()))
	}
	return a
}

// Run shows the welcome screen and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.interactive {
		fmt.Fprint(a.out, "\033[H\033[2J")
		fmt.Fprint(a.out, banner)
	}
	fmt.Fprintln(a.out, "Welcome to Notes Assistant (type 'help' for commands)")

	a.log.Info(ctx, "session started", "data_dir", a.config.DataDir)
	runREPL(ctx, a, a.getStatus, a.reader, a.out, a.log)
	a.log.Info(ctx, "session ended")
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Name)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
