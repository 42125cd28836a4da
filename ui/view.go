package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dkovalev/sensory/model"
)

const (
	keyColWidth   = 24
	valueColWidth = 14
	minTextWidth  = 30
)

func renderSections(sections []model.Section, width int) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		blocks = append(blocks, renderSection(s, width))
	}
	return strings.Join(blocks, "\n")
}

// renderSection draws one bordered panel: the section name with the adapter
// label right-aligned on the header row, then one row per entry with
// alternating backgrounds.
func renderSection(s model.Section, width int) string {
	blockW := width - 2
	if blockW < minTextWidth+2 {
		blockW = minTextWidth + 2
	}
	textW := blockW - 2

	name := headerStyle.Render(s.Name)
	adapter := adapterStyle.Render("Adapter: " + s.Adapter)
	var header string
	if gap := textW - lipgloss.Width(name) - lipgloss.Width(adapter); gap >= 1 {
		header = name + strings.Repeat(" ", gap) + adapter
	} else {
		header = name + "\n" + adapter
	}

	rows := []string{header}
	for i, e := range s.Entries {
		rows = append(rows, renderEntry(e, textW, i%2 == 1))
	}
	return sectionStyle.Width(blockW).Render(strings.Join(rows, "\n"))
}

func renderEntry(e model.Entry, textW int, alt bool) string {
	keyW := keyColWidth
	valW := valueColWidth
	infoW := textW - keyW - valW
	if infoW < 8 {
		infoW = 8
		keyW = (textW - valW - infoW) * 3 / 5
		valW = textW - keyW - infoW
	}

	ks, vs, is := keyStyle, valueStyle, infoStyle
	if alt {
		ks = ks.Background(colorRowAlt)
		vs = vs.Background(colorRowAlt)
		is = is.Background(colorRowAlt)
	}
	return ks.Render(pad(truncate(e.Key, keyW-1), keyW)) +
		vs.Render(pad(truncate(e.Value, valW-1), valW)) +
		is.Render(pad(truncate(e.AdditionalInfo, infoW), infoW))
}

// renderError replaces the section list entirely: a red rule and the message.
func renderError(err error, width int) string {
	w := width
	if w > 80 {
		w = 80
	}
	if w < 10 {
		w = 10
	}
	return errorRule.Render(strings.Repeat("─", w)) + "\n" +
		errorStyle.Render("Error: "+err.Error())
}

// truncate shortens s to at most w runes, ellipsizing when cut.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}

func pad(s string, w int) string {
	if n := w - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
