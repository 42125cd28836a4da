package collector

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// FallbackSource synthesizes sensors-style text from gopsutil temperature
// readings, for hosts without the lm-sensors tooling installed. The output
// uses the same textual shape the parser expects, so the rest of the
// pipeline is unchanged.
type FallbackSource struct{}

func (FallbackSource) Name() string { return "gopsutil" }

// RunAndCapture reads host temperature sensors and renders them as one
// section per chip. gopsutil can return partial data together with a
// warning error; partial data wins.
func (FallbackSource) RunAndCapture() (string, error) {
	temps, err := host.SensorsTemperatures()
	if err != nil && len(temps) == 0 {
		return "", &SourceError{Command: "gopsutil", Err: err}
	}
	return formatReadings(temps), nil
}

// formatReadings groups readings by the chip prefix of their sensor key
// ("coretemp_core_0" belongs to chip "coretemp") and renders each group as a
// section header, an adapter line, and one entry per reading. Chip order
// follows first appearance.
func formatReadings(temps []host.TemperatureStat) string {
	var chips []string
	entries := make(map[string][]string)

	for _, t := range temps {
		chip, label := splitSensorKey(t.SensorKey)
		if _, seen := entries[chip]; !seen {
			chips = append(chips, chip)
		}
		entries[chip] = append(entries[chip], formatReading(label, t))
	}

	var b strings.Builder
	for _, chip := range chips {
		b.WriteString(chip)
		b.WriteString("\nAdapter: gopsutil\n")
		for _, line := range entries[chip] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatReading(label string, t host.TemperatureStat) string {
	line := fmt.Sprintf("%s: %+.1f°C", label, t.Temperature)
	switch {
	case t.High > 0 && t.Critical > 0:
		line += fmt.Sprintf("  (high = %+.1f°C, crit = %+.1f°C)", t.High, t.Critical)
	case t.High > 0:
		line += fmt.Sprintf("  (high = %+.1f°C)", t.High)
	case t.Critical > 0:
		line += fmt.Sprintf("  (crit = %+.1f°C)", t.Critical)
	}
	return line
}

func splitSensorKey(key string) (chip, label string) {
	if key == "" {
		return "unknown", "temp"
	}
	if i := strings.Index(key, "_"); i > 0 && i+1 < len(key) {
		return key[:i], strings.ReplaceAll(key[i+1:], "_", " ")
	}
	return key, "temp"
}
