package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/database"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored date for --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := app.openDB(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			d, ok, err := db.GetBoundDate(ctx, app.ID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, fmt.Errorf("date %q: %w", app.ID, database.ErrNotFound))
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return showOpenSession(cmd, db, app.pickerKey())
		},
	}
}

// showOpenSession reports a working selection left behind by a picker that is
// still open or was not closed cleanly.
func showOpenSession(cmd *cobra.Command, db database.SelectionRepository, key string) error {
	rec, err := db.GetPickerRecord(cmd.Context(), key)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return writeErr(cmd, err)
	}
	if rec.Initialized {
		d := calendar.NewDate(rec.Year, rec.Month, rec.Day)
		fmt.Fprintf(cmd.ErrOrStderr(), "picker open at %s (since %s)\n", d, rec.UpdatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set YYYY-MM-DD",
		Short: "Overwrite the stored date for --id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			db, err := app.openDB(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			if err := db.SetBoundDate(ctx, app.ID, d); err != nil {
				return writeErr(cmd, err)
			}
			// A leftover working selection would shadow the new date on the next show.
			if err := db.DeleteSelection(ctx, app.pickerKey()); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
