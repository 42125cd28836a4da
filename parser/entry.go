package parser

import (
	"strings"

	"github.com/dkovalev/sensory/model"
)

// units is the closed set of value suffixes the entry grammar accepts, in
// match-preference order.
var units = []string{"°C", "RPM", "V", "W", "%", "mA"}

// parseEntry matches one trimmed line against the entry grammar:
//
//	key ":" whitespace value [whitespace "(" info ")"]
//
// The key is the shortest non-empty prefix ending at a colon followed by
// whitespace that lets the rest of the line match; when a candidate colon
// leaves an unmatchable remainder, the scan moves on to the next one. The
// whole line must match or the entry is rejected.
func parseEntry(line string) (model.Entry, bool) {
	for i := 1; i+1 < len(line); i++ {
		if line[i] != ':' || !isSpace(line[i+1]) {
			continue
		}
		j := i + 1
		for j < len(line) && isSpace(line[j]) {
			j++
		}
		value, info, ok := parseValue(line[j:])
		if !ok {
			continue
		}
		return model.Entry{
			Key:            strings.TrimSpace(line[:i]),
			Value:          value,
			AdditionalInfo: info,
		}, true
	}
	return model.Entry{}, false
}

// parseValue matches the value grammar at the start of s: an optional sign,
// digits, an optional fractional part, an optional single space, and an
// optional unit from the closed set. Whatever follows the value must be
// empty or a trailing parenthesized annotation ending the line.
func parseValue(s string) (value, info string, ok bool) {
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	digits := 0
	for n < len(s) && isDigit(s[n]) {
		n++
		digits++
	}
	if digits == 0 {
		return "", "", false
	}
	if n < len(s) && s[n] == '.' {
		n++
		for n < len(s) && isDigit(s[n]) {
			n++
		}
	}

	// The space and unit are both optional, so several value widths are
	// possible; try them longest first and let the annotation matcher
	// settle which one the line supports.
	for _, end := range valueEnds(s, n) {
		if inner, tailOK := parseAnnotation(s[end:]); tailOK {
			return strings.TrimSpace(s[:end]), inner, true
		}
	}
	return "", "", false
}

// valueEnds lists candidate end offsets for the value token: after an
// optional single space plus unit, after the space alone, after a bare unit,
// and after the number itself.
func valueEnds(s string, n int) []int {
	var ends []int
	if n < len(s) && isSpace(s[n]) {
		for _, u := range units {
			if strings.HasPrefix(s[n+1:], u) {
				ends = append(ends, n+1+len(u))
			}
		}
		ends = append(ends, n+1)
	}
	for _, u := range units {
		if strings.HasPrefix(s[n:], u) {
			ends = append(ends, n+len(u))
		}
	}
	return append(ends, n)
}

// parseAnnotation matches the optional end-anchored annotation group. An
// empty tail is the no-annotation case. Otherwise the tail must be
// whitespace, an open parenthesis, a non-empty body, and a closing
// parenthesis as the line's last character; the body runs from the first
// open parenthesis to that final close, so nested parentheses stay inside.
func parseAnnotation(tail string) (string, bool) {
	if tail == "" {
		return "", true
	}
	k := 0
	for k < len(tail) && isSpace(tail[k]) {
		k++
	}
	if k == 0 || k >= len(tail) || tail[k] != '(' {
		return "", false
	}
	if tail[len(tail)-1] != ')' {
		return "", false
	}
	inner := tail[k+1 : len(tail)-1]
	if inner == "" {
		return "", false
	}
	return inner, true
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
