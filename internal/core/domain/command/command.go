package command

import "strings"

// Line holds a raw input line split into its command word and argument remainder.
type Line struct {
	Raw       string
	Word      string // first whitespace-delimited token, case-sensitive
	Arguments string // everything after the first whitespace run, trimmed
}

// Split breaks raw input into a Line. Empty or blank input yields an empty Word.
func Split(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	idx := strings.IndexFunc(trimmed, isSpace)
	if idx < 0 {
		return Line{Raw: raw, Word: trimmed}
	}
	return Line{
		Raw:       raw,
		Word:      trimmed[:idx],
		Arguments: strings.TrimSpace(trimmed[idx:]),
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
