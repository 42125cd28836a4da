package model

import "time"

// Entry is one measurement line inside a section: a label, the matched
// value token, and an optional parenthesized annotation (limits and the like).
// Entries are immutable once appended to their section.
type Entry struct {
	Key            string `json:"key"`
	Value          string `json:"value"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// Section groups the measurements reported by one chip or thermal zone.
// Adapter is empty when no adapter line was seen for the section.
type Section struct {
	Name    string  `json:"name"`
	Adapter string  `json:"adapter"`
	Entries []Entry `json:"entries"`
}

// Snapshot is the single current reading held by the application: either a
// non-empty ordered list of sections, or the error that stands in for it.
// Every refresh replaces the snapshot wholesale; no partial state is ever
// observable.
type Snapshot struct {
	Timestamp time.Time
	Sections  []Section
	Err       error
}

// OK reports whether the snapshot carries usable section data.
func (s *Snapshot) OK() bool {
	return s != nil && s.Err == nil
}
