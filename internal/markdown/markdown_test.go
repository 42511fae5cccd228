package markdown

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	if got := Render(40, ""); got != "" {
		t.Errorf("Render(empty) = %q, want \"\"", got)
	}
	if got := Render(40, "  \n\n "); got != "" {
		t.Errorf("Render(whitespace) = %q, want \"\"", got)
	}
}

func TestRender_PlainText(t *testing.T) {
	got := Render(40, "hello world")
	if !strings.Contains(got, "hello world") {
		t.Errorf("Render() = %q, want to contain %q", got, "hello world")
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("Render() keeps trailing newline: %q", got)
	}
}

func TestRender_ListItems(t *testing.T) {
	got := Render(40, "- first\n- second")
	if !strings.Contains(got, "- first") || !strings.Contains(got, "- second") {
		t.Errorf("Render() = %q, want list prefixes", got)
	}
}

func TestRender_NormalizesCRLF(t *testing.T) {
	got := Render(40, "line one\r\nline two")
	if strings.Contains(got, "\r") {
		t.Errorf("Render() kept carriage returns: %q", got)
	}
}

func TestRender_CachesRenderers(t *testing.T) {
	Render(33, "hello")
	rendererMu.Lock()
	_, ok := renderers[33]
	rendererMu.Unlock()
	if !ok {
		t.Error("renderer for width 33 not cached")
	}
}
