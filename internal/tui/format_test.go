package tui

import (
	"testing"

	"github.com/akyairhashvil/calpick/internal/models"
)

func TestFormatMonthTitle(t *testing.T) {
	if got := FormatMonthTitle(2024, 2); got != "Feb 2024" {
		t.Fatalf("FormatMonthTitle = %q, want %q", got, "Feb 2024")
	}
}

func TestFormatField(t *testing.T) {
	tests := []struct {
		f     focusField
		value int
		want  string
	}{
		{focusYear, 2024, "2024"},
		{focusMonth, 3, "Mar"},
		{focusDay, 5, "05"},
		{focusDay, 29, "29"},
	}
	for _, tt := range tests {
		if got := FormatField(tt.f, tt.value); got != tt.want {
			t.Fatalf("FormatField(%v, %d) = %q, want %q", tt.f, tt.value, got, tt.want)
		}
	}
}

func TestFormatPolicy(t *testing.T) {
	if FormatPolicy(models.PolicyLive) != "live" {
		t.Fatalf("unexpected live label")
	}
	if FormatPolicy(models.PolicyConfirm) != "enter to save" {
		t.Fatalf("unexpected confirm label")
	}
}

func TestLookupThemeFallback(t *testing.T) {
	if LookupTheme("missing").Name != "Default" {
		t.Fatalf("expected default theme fallback")
	}
	if nextThemeName("missing") != ThemeNames[0] {
		t.Fatalf("unknown theme should cycle to the first theme")
	}
	for _, name := range ThemeNames {
		if _, ok := Themes[name]; !ok {
			t.Fatalf("theme %q listed but not defined", name)
		}
	}
}

func TestVersionLabel(t *testing.T) {
	old := GitCommit
	t.Cleanup(func() { GitCommit = old })
	GitCommit = "unknown"
	if VersionLabel() != AppVersion {
		t.Fatalf("expected bare version, got %q", VersionLabel())
	}
	GitCommit = "abc123"
	if VersionLabel() == AppVersion {
		t.Fatalf("expected commit in version label")
	}
}
