package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_AlignsColumns(t *testing.T) {
	got := FormatTable(
		[]string{"NUM", "TITLE"},
		[][]string{
			{"1", "short"},
			{"42", "a longer title"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}

	titleCol := strings.Index(lines[0], "TITLE")
	if titleCol < 0 {
		t.Fatal("header row missing TITLE")
	}
	for i, line := range lines[1:] {
		if !strings.Contains(line, strings.Repeat(" ", 2)) {
			t.Errorf("row %d missing column gap: %q", i, line)
		}
	}
	if col := strings.Index(lines[2], "a longer title"); col != titleCol {
		t.Errorf("title column at %d, want %d", col, titleCol)
	}
}

func TestFormatTable_FlattensNewlines(t *testing.T) {
	got := FormatTable([]string{"TITLE"}, [][]string{{"line one\nline two"}})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2 (cell newline should be flattened)", len(lines))
	}
	if !strings.Contains(lines[1], "line one line two") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestFormatTable_IgnoresStylingInWidths(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m"
	got := FormatTable(
		[]string{"STATUS", "TITLE"},
		[][]string{
			{styled, "one"},
			{"reopen", "two"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	wantCol := strings.Index(lines[0], "TITLE")
	for i, line := range lines[1:] {
		stripped := stripANSIForTest(line)
		var want string
		if i == 0 {
			want = "one"
		} else {
			want = "two"
		}
		if col := strings.Index(stripped, want); col != wantCol {
			t.Errorf("row %d title column at %d, want %d (%q)", i, col, wantCol, stripped)
		}
	}
}

func TestTruncateTableCell(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"short untouched", "hello", "hello"},
		{"long truncated", strings.Repeat("x", 80), strings.Repeat("x", 57) + "..."},
		{"newlines flattened", "a\nb", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateTableCell(tt.value); got != tt.want {
				t.Errorf("TruncateTableCell(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func stripANSIForTest(input string) string {
	var builder strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		builder.WriteByte(char)
	}
	return builder.String()
}
