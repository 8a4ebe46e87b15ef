package tokenizer

import (
	"strings"
	"unicode"
)

// normalizeLines prepares raw text for scanning: the text as a whole is
// trimmed, split into lines, and each line loses its trailing whitespace.
// When useEndLine is set, endLine is appended to every line so the scanner
// sees an explicit end-of-line byte.
func normalizeLines(text string, endLine byte, useEndLine bool) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if useEndLine {
			// Append the raw byte; endLine may be outside ASCII.
			line = line + string([]byte{endLine})
		}
		lines[i] = line
	}
	return lines
}
