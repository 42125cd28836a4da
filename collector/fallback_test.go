package collector

import (
	"testing"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/dkovalev/sensory/parser"
)

func TestFormatReadings(t *testing.T) {
	temps := []host.TemperatureStat{
		{SensorKey: "coretemp_core_0", Temperature: 45, High: 80, Critical: 100},
		{SensorKey: "coretemp_core_1", Temperature: 46.5},
		{SensorKey: "acpitz", Temperature: 27.8},
	}

	sections, err := parser.Parse(formatReadings(temps))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}

	core := sections[0]
	if core.Name != "coretemp" || core.Adapter != "gopsutil" {
		t.Errorf("section = %q / %q", core.Name, core.Adapter)
	}
	if len(core.Entries) != 2 {
		t.Fatalf("coretemp has %d entries, want 2", len(core.Entries))
	}
	if core.Entries[0].Key != "core 0" || core.Entries[0].Value != "+45.0°C" {
		t.Errorf("entry = %+v", core.Entries[0])
	}
	if core.Entries[0].AdditionalInfo != "high = +80.0°C, crit = +100.0°C" {
		t.Errorf("info = %q", core.Entries[0].AdditionalInfo)
	}
	if core.Entries[1].AdditionalInfo != "" {
		t.Errorf("threshold-free reading has info %q", core.Entries[1].AdditionalInfo)
	}

	if sections[1].Name != "acpitz" || sections[1].Entries[0].Key != "temp" {
		t.Errorf("fallback section = %+v", sections[1])
	}
}

func TestFormatReadingsEmpty(t *testing.T) {
	if out := formatReadings(nil); out != "" {
		t.Errorf("formatReadings(nil) = %q, want empty", out)
	}
}

func TestSplitSensorKey(t *testing.T) {
	tests := []struct {
		key, chip, label string
	}{
		{"coretemp_core_0", "coretemp", "core 0"},
		{"acpitz", "acpitz", "temp"},
		{"nvme_composite", "nvme", "composite"},
		{"", "unknown", "temp"},
	}
	for _, tt := range tests {
		chip, label := splitSensorKey(tt.key)
		if chip != tt.chip || label != tt.label {
			t.Errorf("splitSensorKey(%q) = %q, %q; want %q, %q", tt.key, chip, label, tt.chip, tt.label)
		}
	}
}
