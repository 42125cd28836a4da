// Package parser turns the free-form text printed by sensors(1) into an
// ordered list of model.Section values.
//
// The input is handled line by line in a single pass. A non-empty line with
// no colon opens a new section; an "Adapter:" line labels the open section;
// anything else is matched against the entry grammar and silently dropped on
// a miss — vendor-specific lines the grammar does not recognize are not an
// error.
package parser

import (
	"errors"
	"strings"

	"github.com/dkovalev/sensory/model"
)

// ErrNoData is returned when the input yields no sections at all.
var ErrNoData = errors.New("no sensor data found")

const adapterPrefix = "Adapter:"

// Parse scans raw text into sections. Section order follows first appearance
// in the text, entry order follows line order. A section with no entries is
// kept; a result with no sections is ErrNoData. Parse holds no state between
// calls.
func Parse(raw string) ([]model.Section, error) {
	var sections []model.Section
	var open *model.Section

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.Contains(line, ":") && !strings.HasPrefix(line, adapterPrefix) {
			// Header: seal the open section and start a new one.
			if open != nil {
				sections = append(sections, *open)
			}
			open = &model.Section{Name: line}
			continue
		}

		if open == nil {
			// Entry or adapter line before the first header.
			continue
		}

		if strings.HasPrefix(line, adapterPrefix) {
			// Last adapter line wins.
			open.Adapter = strings.TrimSpace(strings.TrimPrefix(line, adapterPrefix))
			continue
		}

		if entry, ok := parseEntry(line); ok {
			open.Entries = append(open.Entries, entry)
		}
	}

	if open != nil {
		sections = append(sections, *open)
	}
	if len(sections) == 0 {
		return nil, ErrNoData
	}
	return sections, nil
}
