package editor

import (
	"os"
	"strings"
	"testing"

	"github.com/amonks/issuepad/issue"
)

func TestRenderIssueTOML_Create(t *testing.T) {
	content, err := RenderIssueTOML(DefaultIssueData())
	if err != nil {
		t.Fatalf("RenderIssueTOML failed: %v", err)
	}

	if !strings.Contains(content, `title = ""`) {
		t.Error("expected empty title")
	}
	if !strings.Contains(content, "---") {
		t.Error("expected frontmatter separator")
	}

	// Should not have state field for create
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "state = ") {
			t.Error("state should not be present for create")
		}
	}
}

func TestRenderIssueTOML_Update(t *testing.T) {
	existing := issue.Issue{
		Number: 42,
		Title:  "Crash on startup",
		State:  issue.StateClosed,
		Body:   "Stack trace attached",
	}

	content, err := RenderIssueTOML(DataFromIssue(existing))
	if err != nil {
		t.Fatalf("RenderIssueTOML failed: %v", err)
	}

	if !strings.Contains(content, `title = "Crash on startup"`) {
		t.Error("expected title to be set")
	}
	if !strings.Contains(content, `state = "closed"`) {
		t.Error("expected state to be closed")
	}
	if strings.Contains(content, "body =") {
		t.Error("expected body after the separator, not as a key")
	}
	if !strings.Contains(content, "Stack trace attached") {
		t.Error("expected body content")
	}
}

func TestParseIssueTOML(t *testing.T) {
	content := `
title = "My Issue"
state = "OPEN"
---
This is a body
with multiple lines
`

	parsed, err := ParseIssueTOML(content)
	if err != nil {
		t.Fatalf("ParseIssueTOML failed: %v", err)
	}

	if parsed.Title != "My Issue" {
		t.Errorf("expected title 'My Issue', got %q", parsed.Title)
	}
	if parsed.State == nil || *parsed.State != "open" {
		t.Errorf("expected state 'open', got %v", parsed.State)
	}
	if !strings.Contains(parsed.Body, "multiple lines") {
		t.Errorf("expected body with multiple lines, got %q", parsed.Body)
	}
}

func TestParseIssueTOML_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing title",
			content: `state = "open"`,
			wantErr: "title cannot be empty",
		},
		{
			name:    "invalid state",
			content: `title = "test"` + "\n" + `state = "pending"`,
			wantErr: "invalid state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIssueTOML(tt.content)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestRenderAnnotationTOML(t *testing.T) {
	data := DataFromLocal(issue.Issue{
		Number: 7,
		Title:  "Flaky test",
		Local: issue.Local{
			Notes:        "repro steps in thread",
			Archived:     true,
			ManualStatus: issue.StatusYellow,
		},
	})

	content, err := RenderAnnotationTOML(data)
	if err != nil {
		t.Fatalf("RenderAnnotationTOML failed: %v", err)
	}

	if !strings.Contains(content, "#7: Flaky test") {
		t.Error("expected issue context comment")
	}
	if !strings.Contains(content, `manual_status = "yellow"`) {
		t.Error("expected manual_status to be yellow")
	}
	if !strings.Contains(content, "archived = true") {
		t.Error("expected archived to be true")
	}
	if !strings.Contains(content, "repro steps in thread") {
		t.Error("expected notes content")
	}
}

func TestParseAnnotationTOML(t *testing.T) {
	content := `# #7: Flaky test
manual_status = "RED"
archived = true
---
still broken on main
`

	parsed, err := ParseAnnotationTOML(content)
	if err != nil {
		t.Fatalf("ParseAnnotationTOML failed: %v", err)
	}

	local := parsed.ToLocal()
	if local.ManualStatus != issue.StatusRed {
		t.Errorf("expected manual status red, got %q", local.ManualStatus)
	}
	if !local.Archived {
		t.Error("expected archived")
	}
	if local.Notes != "still broken on main" {
		t.Errorf("expected notes, got %q", local.Notes)
	}
}

func TestParseAnnotationTOML_EmptyStatusAllowed(t *testing.T) {
	content := `manual_status = ""
archived = false
---
`

	parsed, err := ParseAnnotationTOML(content)
	if err != nil {
		t.Fatalf("ParseAnnotationTOML failed: %v", err)
	}
	if parsed.ToLocal().ManualStatus != issue.StatusNone {
		t.Errorf("expected no manual status, got %q", parsed.ManualStatus)
	}
}

func TestParseAnnotationTOML_InvalidStatus(t *testing.T) {
	content := `manual_status = "green"
archived = false`

	_, err := ParseAnnotationTOML(content)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "light_green") {
		t.Errorf("expected error to list valid statuses, got %q", err.Error())
	}
}

func TestSplitFrontmatter_NoSeparator(t *testing.T) {
	frontmatter, body := splitFrontmatter(`manual_status = "red"`)
	if frontmatter != `manual_status = "red"` {
		t.Errorf("frontmatter = %q", frontmatter)
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestCreateEditTempFileExtension(t *testing.T) {
	file, err := createEditTempFile()
	if err != nil {
		t.Fatalf("createEditTempFile failed: %v", err)
	}
	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	if !strings.HasSuffix(file.Name(), ".md") {
		t.Errorf("expected temp file to end with .md, got %q", file.Name())
	}
}
