package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/dkovalev/sensory/model"
)

var sampleSections = []model.Section{
	{
		Name:    "coretemp-isa-0000",
		Adapter: "ISA adapter",
		Entries: []model.Entry{
			{Key: "Core 0", Value: "+45.0°C", AdditionalInfo: "high = +80.0°C"},
			{Key: "Core 1", Value: "+46.0°C"},
		},
	},
	{Name: "acpitz-acpi-0"},
}

func TestRenderSections(t *testing.T) {
	out := renderSections(sampleSections, 80)
	for _, want := range []string{"coretemp-isa-0000", "Adapter: ISA adapter", "Core 0", "+45.0°C", "high = +80.0°C", "acpitz-acpi-0"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderSectionsNarrow(t *testing.T) {
	// A tiny terminal must still produce output, not panic.
	out := renderSections(sampleSections, 5)
	if !strings.Contains(out, "coretemp-isa-0000") {
		t.Error("narrow render lost the section name")
	}
}

func TestRenderError(t *testing.T) {
	out := renderError(errors.New("sensors command failed: boom"), 80)
	if !strings.Contains(out, "Error: sensors command failed: boom") {
		t.Errorf("error render = %q", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		w    int
		want string
	}{
		{"abcdef", 10, "abcdef"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "…"},
		{"abcdef", 0, ""},
		{"+45.0°C", 7, "+45.0°C"}, // rune-aware: ° is one cell
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.w); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.w, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad must not cut: %q", got)
	}
}
