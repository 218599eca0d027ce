package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/tui"
	"github.com/akyairhashvil/calpick/internal/util"
	"github.com/spf13/cobra"
)

// parseMonth accepts YYYY-MM.
func parseMonth(s string) (int, int, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t.Year(), int(t.Month()), nil
}

// resolveMonth picks the month named in args, or the month of the bound date.
func resolveMonth(cmd *cobra.Command, app *App, args []string) (year, month int, selected calendar.Date, err error) {
	ctx := cmd.Context()
	db, err := app.openDB(ctx)
	if err != nil {
		return 0, 0, calendar.Date{}, err
	}
	defer db.Close()

	selected, err = app.initialDate(ctx, db)
	if err != nil {
		return 0, 0, calendar.Date{}, err
	}
	year, month = selected.Year, selected.Month
	if len(args) == 1 {
		if year, month, err = parseMonth(args[0]); err != nil {
			return 0, 0, calendar.Date{}, err
		}
	}
	return year, month, selected, nil
}

func newGridCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print a month grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, selected, err := resolveMonth(cmd, app, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			writeGrid(cmd.OutOrStdout(), year, month, calendar.FromTime(nowFunc()), selected, app.Weeks)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Write a month sheet as PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, selected, err := resolveMonth(cmd, app, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			path := out
			if path == "" {
				path = filepath.Join(util.ExportsDir(config.AppName), fmt.Sprintf("calendar_%04d-%02d.pdf", year, month))
			}
			if err := mkdirFor(path); err != nil {
				return writeErr(cmd, err)
			}
			weeks := calendar.BuildMonth(year, month)
			if err := tui.ExportMonthPDF(path, year, month, weeks, calendar.FromTime(nowFunc()), selected, app.Weeks); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: documents dir)")
	return cmd
}

// writeGrid prints the month as text. Days outside the month are blank, the
// selected day is bracketed and today carries a trailing asterisk.
func writeGrid(w io.Writer, year, month int, today, selected calendar.Date, withWeeks bool) {
	var b strings.Builder
	b.WriteString(tui.FormatMonthTitle(year, month))
	b.WriteString("\n")
	if withWeeks {
		fmt.Fprintf(&b, "%*s", config.WeekColumnWidth, "W ")
	}
	for _, name := range calendar.WeekdayNames {
		fmt.Fprintf(&b, "%*s ", config.CellWidth-1, name)
	}
	b.WriteString("\n")

	for _, wk := range calendar.BuildMonth(year, month) {
		if withWeeks {
			fmt.Fprintf(&b, "%*d ", config.WeekColumnWidth-1, wk.Number)
		}
		for _, d := range wk.Days {
			info := calendar.Describe(d, year, month, today, selected)
			switch {
			case !info.InMonth:
				b.WriteString(strings.Repeat(" ", config.CellWidth))
			case info.Selected:
				fmt.Fprintf(&b, "[%2d]", d.Day)
			case info.Today:
				fmt.Fprintf(&b, " %2d*", d.Day)
			default:
				fmt.Fprintf(&b, " %2d ", d.Day)
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}
