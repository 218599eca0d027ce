package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/models"
)

func TestExportMonthPDF(t *testing.T) {
	for _, withWeeks := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "month.pdf")
		weeks := calendar.BuildMonth(2021, 5)
		err := ExportMonthPDF(path, 2021, 5, weeks, calendar.NewDate(2021, 5, 3), calendar.NewDate(2021, 5, 31), withWeeks)
		if err != nil {
			t.Fatalf("ExportMonthPDF failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read export: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("export is not a PDF")
		}
	}
}

func TestExportMonthPDFRejectsEmptyGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportMonthPDF(path, 2024, 1, nil, calendar.Date{}, calendar.Date{}, false); err == nil {
		t.Fatalf("expected error for empty grid")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file for empty grid")
	}
}

func TestExportKeyWritesSheet(t *testing.T) {
	m, _ := setupTestPicker(t, calendar.NewDate(2024, 3, 15), models.DefaultPickerOptions())
	next, cmd := m.Update(keyMsg("p"))
	m = next.(PickerModel)
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	msg := cmd()
	next, _ = m.Update(msg)
	m = next.(PickerModel)
	if m.err != nil {
		t.Fatalf("export failed: %v", m.Message)
	}
	if !strings.HasPrefix(m.Message, "PDF written to ") {
		t.Fatalf("unexpected message %q", m.Message)
	}
	path := strings.TrimPrefix(m.Message, "PDF written to ")
	if filepath.Base(path) != "calendar_2024-03.pdf" {
		t.Fatalf("unexpected export name %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export missing: %v", err)
	}
}

func TestExportErrorReported(t *testing.T) {
	m, _ := setupTestPicker(t, calendar.NewDate(2024, 3, 15), models.DefaultPickerOptions())
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	m = m.WithExportDir(filepath.Join(blocker, "sub"))
	_, cmd := m.Update(keyMsg("p"))
	next, _ := m.Update(cmd())
	m = next.(PickerModel)
	if m.err == nil {
		t.Fatalf("expected export error")
	}
}
