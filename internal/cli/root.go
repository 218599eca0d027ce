package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/database"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/tui"
	"github.com/akyairhashvil/calpick/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var _ picker.Store = (*database.Database)(nil)

// nowFunc is the clock used for "today".
var nowFunc = time.Now

type App struct {
	DBPath     string
	ID         string
	Date       string
	Confirm    bool
	NoArrows   bool
	NoFields   bool
	NoCalendar bool
	Weeks      bool
	Theme      string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "Calendar date picker",
		Version:      tui.VersionLabel(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Pick a date interactively; the result is stored under --id
  calpick --id deadline

  # Edit without committing until enter
  calpick --confirm --weeks

  # Scriptable commands
  calpick grid 2024-02 --weeks
  calpick set 2024-02-29 --id deadline
  calpick show --id deadline
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No terminal => plain grid, so the command stays usable in pipes.
			if !isTerminal(cmd.OutOrStdout()) {
				return runPlain(cmd, app)
			}
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.DBPath, "db", envOr(config.DBPathEnv, ""), "Path to the sqlite database (default: data dir)")
	cmd.PersistentFlags().StringVar(&app.ID, "id", "default", "Name of the stored date to edit")
	cmd.PersistentFlags().StringVar(&app.Date, "date", "", "Initial date (YYYY-MM-DD); overrides the stored date")
	cmd.PersistentFlags().BoolVar(&app.Weeks, "weeks", false, "Show ISO week numbers")
	cmd.Flags().BoolVar(&app.Confirm, "confirm", false, "Commit only when enter is pressed")
	cmd.Flags().BoolVar(&app.NoArrows, "no-arrows", false, "Hide the step controls")
	cmd.Flags().BoolVar(&app.NoFields, "no-fields", false, "Hide the year/month/day selectors")
	cmd.Flags().BoolVar(&app.NoCalendar, "no-calendar", false, "Hide the month grid")
	cmd.Flags().StringVar(&app.Theme, "theme", "", "Theme name ("+strings.Join(tui.ThemeNames, "|")+")")

	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newSetCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func (app *App) dbPath() string {
	if app.DBPath != "" {
		return app.DBPath
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

// mkdirFor creates the parent directory of path.
func mkdirFor(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

func (app *App) openDB(ctx context.Context) (*database.Database, error) {
	path := app.dbPath()
	if err := mkdirFor(path); err != nil {
		return nil, err
	}
	return database.Open(ctx, path)
}

// pickerKey is the key of this id's working selection in the store.
func (app *App) pickerKey() string {
	return picker.Key(config.DefaultPickerID, app.ID)
}

// initialDate resolves the bound date: --date, then the stored date, then today.
func (app *App) initialDate(ctx context.Context, db database.Repository) (calendar.Date, error) {
	if app.Date != "" {
		return calendar.ParseDate(app.Date)
	}
	d, ok, err := db.GetBoundDate(ctx, app.ID)
	if err != nil {
		return calendar.Date{}, err
	}
	if ok {
		return d, nil
	}
	return calendar.FromTime(nowFunc()), nil
}

func (app *App) options(ctx context.Context, db database.Repository) models.PickerOptions {
	opts := models.DefaultPickerOptions()
	opts.ComboBoxes = !app.NoFields
	opts.Arrows = !app.NoArrows
	opts.Calendar = !app.NoCalendar
	opts.CalendarWeek = app.Weeks
	if app.Confirm {
		opts.Policy = models.PolicyConfirm
	} else if v, ok := db.GetSetting(ctx, config.SettingPolicy); ok {
		opts.Policy = models.ParseCommitPolicy(v)
	}
	return opts
}

func (app *App) theme(ctx context.Context, db database.Repository) string {
	if app.Theme != "" {
		return app.Theme
	}
	if v, ok := db.GetSetting(ctx, config.SettingTheme); ok {
		return v
	}
	return tui.ThemeNames[0]
}

// applyColorProfile follows the terminal's capabilities unless NO_COLOR is set.
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	db, err := app.openDB(ctx)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			util.LogError("close database", err)
		}
	}()

	bound, err := app.initialDate(ctx, db)
	if err != nil {
		return writeErr(cmd, err)
	}

	// An explicit --confirm or --confirm=false is remembered for later runs.
	if cmd.Flags().Changed("confirm") {
		policy := models.PolicyLive
		if app.Confirm {
			policy = models.PolicyConfirm
		}
		if err := db.SetSetting(ctx, config.SettingPolicy, string(policy)); err != nil {
			util.LogError("save commit policy", err)
		}
	}

	logFile, err := tea.LogToFile(filepath.Join(filepath.Dir(app.dbPath()), config.LogFileName), config.AppName)
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open log file: %w", err))
	}
	defer logFile.Close()

	applyColorProfile()
	p := picker.New(app.pickerKey(), picker.Bind(&bound), db, app.options(ctx, db))
	m := tui.NewPickerModel(ctx, p).
		WithTheme(app.theme(ctx, db)).
		OnThemeChange(func(name string) error {
			return db.SetSetting(ctx, config.SettingTheme, name)
		})

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return writeErr(cmd, err)
	}
	if err := db.SetBoundDate(ctx, app.ID, bound); err != nil {
		return writeErr(cmd, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), bound)
	return nil
}

func runPlain(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	db, err := app.openDB(ctx)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer db.Close()

	bound, err := app.initialDate(ctx, db)
	if err != nil {
		return writeErr(cmd, err)
	}
	today := calendar.FromTime(nowFunc())
	writeGrid(cmd.OutOrStdout(), bound.Year, bound.Month, today, bound, app.Weeks)
	return nil
}
