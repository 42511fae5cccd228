package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap word-wraps text to the given width. Zero or negative widths leave
// the text unwrapped.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// Indent prefixes every line of text with the given number of spaces.
func Indent(text string, spaces int) string {
	if spaces <= 0 || text == "" {
		return text
	}

	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
