package ui

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)

	for i, line := range strings.Split(got, "\n") {
		if len(line) > 9 {
			t.Errorf("line %d exceeds width: %q", i, line)
		}
	}
}

func TestWrap_ZeroWidthUnchanged(t *testing.T) {
	text := "leave me alone"
	if got := Wrap(text, 0); got != text {
		t.Errorf("Wrap(text, 0) = %q, want unchanged", got)
	}
}

func TestIndent(t *testing.T) {
	got := Indent("a\n\nb", 2)
	want := "  a\n\n  b"
	if got != want {
		t.Errorf("Indent() = %q, want %q", got, want)
	}
}
