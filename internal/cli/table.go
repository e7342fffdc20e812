package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/JoseBG93/notes-Assistant/internal/models"
)

const titleWidth = 30

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeNotesTable renders notes as ID, Title, Created, Updated columns.
// A positive preview adds a content column cut to that many characters.
func writeNotesTable(w io.Writer, notes []*models.Note, preview int) error {
	tw := newTable(w)

	header := "ID\tTITLE\tCREATED\tUPDATED"
	if preview > 0 {
		header += "\tPREVIEW"
	}
	fmt.Fprintln(tw, header)

	for _, n := range notes {
		row := fmt.Sprintf("%d\t%s\t%s\t%s", n.ID, truncate(oneLine(n.Title), titleWidth), n.CreatedAt, updatedOrNever(n))
		if preview > 0 {
			row += "\t" + oneLine(n.Summary(preview))
		}
		fmt.Fprintln(tw, row)
	}

	return tw.Flush()
}

// writeUserTable renders a user profile as Field / Value rows.
func writeUserTable(w io.Writer, u *models.User) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintf(tw, "ID\t%d\n", u.ID)
	fmt.Fprintf(tw, "Name\t%s\n", u.FullName())
	fmt.Fprintf(tw, "Birthday\t%s\n", u.Birthday)
	fmt.Fprintf(tw, "Favorite Color\t%s\n", u.FavoriteColor)
	return tw.Flush()
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func updatedOrNever(n *models.Note) string {
	if n.UpdatedAt == nil {
		return "Never"
	}
	return *n.UpdatedAt
}
