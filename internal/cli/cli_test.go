package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/database"
	"github.com/akyairhashvil/calpick/internal/models"
)

func runCLI(t *testing.T, args []string) (stdout string, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.String(), errBuf.String(), e
}

func setupCLI(t *testing.T) string {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = old })
	return filepath.Join(t.TempDir(), "data", "calpick.db")
}

func TestGridCommand(t *testing.T) {
	db := setupCLI(t)
	out, _, err := runCLI(t, []string{"--db", db, "grid", "2021-02"})
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Feb 2021" {
		t.Fatalf("title = %q, want Feb 2021", lines[0])
	}
	if !strings.HasPrefix(lines[1], " Mo  Tu ") {
		t.Fatalf("header = %q", lines[1])
	}
	// Feb 2021 starts on a Monday and fills exactly four rows.
	if len(lines) != 2+4 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "  1   2") {
		t.Fatalf("first row = %q", lines[2])
	}
}

func TestGridCommandWeeks(t *testing.T) {
	db := setupCLI(t)
	out, _, err := runCLI(t, []string{"--db", db, "grid", "2021-01", "--weeks"})
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "  W  Mo ") {
		t.Fatalf("header = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], " 53 ") {
		t.Fatalf("first row should be ISO week 53, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "  1 ") {
		t.Fatalf("second row should be ISO week 1, got %q", lines[3])
	}
}

func TestGridMarksSelectedAndToday(t *testing.T) {
	db := setupCLI(t)
	out, _, err := runCLI(t, []string{"--db", db, "--date", "2024-03-05", "grid"})
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	if !strings.Contains(out, "Mar 2024") {
		t.Fatalf("expected month of --date, got:\n%s", out)
	}
	if !strings.Contains(out, "[ 5]") {
		t.Fatalf("expected selected day marker, got:\n%s", out)
	}
	if !strings.Contains(out, " 15*") {
		t.Fatalf("expected today marker, got:\n%s", out)
	}
}

func TestGridRejectsBadMonth(t *testing.T) {
	db := setupCLI(t)
	if _, _, err := runCLI(t, []string{"--db", db, "grid", "2024-13"}); err == nil {
		t.Fatalf("expected error for invalid month")
	}
	if _, _, err := runCLI(t, []string{"--db", db, "grid", "2024-01", "2024-02"}); err == nil {
		t.Fatalf("expected error for extra argument")
	}
}

func TestSetThenShow(t *testing.T) {
	db := setupCLI(t)
	if _, _, err := runCLI(t, []string{"--db", db, "--id", "deadline", "set", "2024-02-29"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out, _, err := runCLI(t, []string{"--db", db, "--id", "deadline", "show"})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if strings.TrimSpace(out) != "2024-02-29" {
		t.Fatalf("show = %q, want 2024-02-29", out)
	}

	// Other ids are independent.
	_, stderr, err := runCLI(t, []string{"--db", db, "--id", "other", "show"})
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("show error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(stderr, "other") {
		t.Fatalf("expected id in error output, got %q", stderr)
	}
}

func TestSetRejectsInvalidDate(t *testing.T) {
	db := setupCLI(t)
	if _, _, err := runCLI(t, []string{"--db", db, "set", "2023-02-29"}); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestSetClearsWorkingSelection(t *testing.T) {
	path := setupCLI(t)
	ctx := context.Background()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	db, err := database.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	app := &App{ID: "default"}
	stale := calendar.Selection{Year: 2000, Month: 1, Day: 1, Initialized: true}
	if err := db.StoreSelection(ctx, app.pickerKey(), stale); err != nil {
		t.Fatalf("StoreSelection failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, _, err := runCLI(t, []string{"--db", path, "set", "2024-06-01"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	db, err = database.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if _, ok, err := db.LoadSelection(ctx, app.pickerKey()); err != nil || ok {
		t.Fatalf("expected working selection to be cleared, ok=%v err=%v", ok, err)
	}
}

func TestRootPrintsPlainGridWithoutTerminal(t *testing.T) {
	db := setupCLI(t)
	if _, _, err := runCLI(t, []string{"--db", db, "set", "2024-02-29"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out, _, err := runCLI(t, []string{"--db", db})
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if !strings.HasPrefix(out, "Feb 2024\n") || !strings.Contains(out, "[29]") {
		t.Fatalf("unexpected plain output:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	db := setupCLI(t)
	pdf := filepath.Join(t.TempDir(), "out", "march.pdf")
	out, _, err := runCLI(t, []string{"--db", db, "export", "2024-03", "-o", pdf, "--weeks"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.TrimSpace(out) != pdf {
		t.Fatalf("export printed %q, want %q", out, pdf)
	}
	data, err := os.ReadFile(pdf)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("export is not a PDF")
	}
}

func TestOptionsFromFlagsAndSettings(t *testing.T) {
	path := setupCLI(t)
	ctx := context.Background()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	db, err := database.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	app := &App{NoArrows: true, Weeks: true}
	opts := app.options(ctx, db)
	if opts.Arrows || !opts.CalendarWeek || !opts.ComboBoxes || !opts.Calendar {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Policy != models.PolicyLive {
		t.Fatalf("policy = %q, want live", opts.Policy)
	}

	if err := db.SetSetting(ctx, config.SettingPolicy, string(models.PolicyConfirm)); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := app.options(ctx, db).Policy; got != models.PolicyConfirm {
		t.Fatalf("policy = %q, want stored confirm", got)
	}

	if got := app.theme(ctx, db); got != "default" {
		t.Fatalf("theme = %q, want default", got)
	}
	if err := db.SetSetting(ctx, config.SettingTheme, "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := app.theme(ctx, db); got != "dracula" {
		t.Fatalf("theme = %q, want dracula", got)
	}
	app.Theme = "default"
	if got := app.theme(ctx, db); got != "default" {
		t.Fatalf("--theme should win over the stored theme, got %q", got)
	}
}

func TestInitialDatePrecedence(t *testing.T) {
	path := setupCLI(t)
	ctx := context.Background()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	db, err := database.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	app := &App{ID: "x"}
	d, err := app.initialDate(ctx, db)
	if err != nil || d != calendar.NewDate(2024, 3, 15) {
		t.Fatalf("initialDate = %v, %v; want today", d, err)
	}
	if err := db.SetBoundDate(ctx, "x", calendar.NewDate(2020, 1, 2)); err != nil {
		t.Fatalf("SetBoundDate failed: %v", err)
	}
	if d, _ = app.initialDate(ctx, db); d != calendar.NewDate(2020, 1, 2) {
		t.Fatalf("initialDate = %v, want stored date", d)
	}
	app.Date = "2030-12-31"
	if d, _ = app.initialDate(ctx, db); d != calendar.NewDate(2030, 12, 31) {
		t.Fatalf("initialDate = %v, want --date", d)
	}
	app.Date = "garbage"
	if _, err := app.initialDate(ctx, db); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestShowReportsOpenSession(t *testing.T) {
	path := setupCLI(t)
	if _, _, err := runCLI(t, []string{"--db", path, "set", "2024-06-01"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	app := &App{ID: "default"}
	open := calendar.Selection{Year: 2024, Month: 7, Day: 4, Initialized: true}
	if err := db.StoreSelection(ctx, app.pickerKey(), open); err != nil {
		t.Fatalf("StoreSelection failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out, stderr, err := runCLI(t, []string{"--db", path, "show"})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if strings.TrimSpace(out) != "2024-06-01" {
		t.Fatalf("show = %q, want 2024-06-01", out)
	}
	if !strings.Contains(stderr, "picker open at 2024-07-04") {
		t.Fatalf("expected open session note, got %q", stderr)
	}
}
