package cli

import (
	"context"
	"fmt"

	"github.com/JoseBG93/notes-Assistant/internal/metrics"
)

// Info prints the current user's profile and a summary of their notes.
func (a *App) Info(ctx context.Context) error {
	if err := writeUserTable(a.out, a.user); err != nil {
		return err
	}

	sum, err := a.notes.GetNotesSummary(ctx, a.user.ID)
	if err != nil {
		return err
	}

	a.printf("Total notes: %d\n", sum.Total)
	if sum.Newest != nil {
		a.printf("Newest note: '%s' (%s)\n", sum.Newest.Title, sum.Newest.CreatedAt)
	}
	if sum.Oldest != nil {
		a.printf("Oldest note: '%s' (%s)\n", sum.Oldest.Title, sum.Oldest.CreatedAt)
	}
	if len(sum.Recent) > 0 {
		a.println("Recent notes:")
		return writeNotesTable(a.out, sum.Recent, 0)
	}
	return nil
}

// Stats prints the store operation counters collected in this session.
func (a *App) Stats(ctx context.Context) error {
	ops, writes, err := metrics.Snapshot()
	if err != nil {
		return err
	}

	a.printf("Data directory: %s\n", a.config.DataDir)
	a.printf("File rewrites: %d\n", writes)
	if len(ops) == 0 {
		a.println("No store operations yet.")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "COLLECTION\tOPERATION\tCOUNT\tERRORS")
	for _, o := range ops {
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\n", o.Collection, o.Op, o.Count, o.Errors)
	}
	return tw.Flush()
}
