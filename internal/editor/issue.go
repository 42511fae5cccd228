package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/issuepad/issue"
)

// IssueData represents the data used to render the issue TOML template.
type IssueData struct {
	// IsUpdate is true when editing an existing issue.
	IsUpdate bool
	// Number is the issue number (only for updates).
	Number int
	// Title is the issue title.
	Title string
	// State is the issue state (only for updates).
	State string
	// Body is the issue body in markdown.
	Body string
}

// DefaultIssueData returns IssueData for drafting a new issue.
func DefaultIssueData() IssueData {
	return IssueData{}
}

// DataFromIssue creates IssueData from an existing issue for editing.
func DataFromIssue(is issue.Issue) IssueData {
	return IssueData{
		IsUpdate: true,
		Number:   is.Number,
		Title:    is.Title,
		State:    string(is.State),
		Body:     is.Body,
	}
}

var issueTemplate = template.Must(template.New("issue").Parse(`title = {{ printf "%q" .Title }}
{{- if .IsUpdate }}
state = {{ printf "%q" .State }} # open, closed
{{- end }}
---
{{ .Body }}
`))

// RenderIssueTOML renders the issue data as a TOML string for editing.
func RenderIssueTOML(data IssueData) (string, error) {
	var buf bytes.Buffer
	if err := issueTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedIssue represents the parsed result from the issue editor output.
type ParsedIssue struct {
	Title string  `toml:"title"`
	State *string `toml:"state"`
	Body  string
}

// ParseIssueTOML parses the TOML content from the issue editor.
func ParseIssueTOML(content string) (*ParsedIssue, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedIssue
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Body = strings.TrimSpace(body)
	parsed.Title = strings.TrimSpace(parsed.Title)
	if parsed.State != nil {
		normalized := strings.ToLower(strings.TrimSpace(*parsed.State))
		parsed.State = &normalized
	}

	if parsed.Title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if parsed.State != nil && !issue.State(*parsed.State).IsValid() {
		return nil, fmt.Errorf("invalid state %q: must be open or closed", *parsed.State)
	}

	return &parsed, nil
}

// AnnotationData represents the data used to render the annotation TOML
// template. Annotations never leave the local machine.
type AnnotationData struct {
	// Number is the issue number being annotated.
	Number int
	// Title is the issue title, shown for context only.
	Title string
	// ManualStatus is the manual status override, empty for none.
	ManualStatus string
	// Archived marks the issue as archived locally.
	Archived bool
	// Notes is free-form markdown.
	Notes string
}

// DataFromLocal creates AnnotationData from an issue's local annotations.
func DataFromLocal(is issue.Issue) AnnotationData {
	return AnnotationData{
		Number:       is.Number,
		Title:        is.Title,
		ManualStatus: string(is.Local.ManualStatus),
		Archived:     is.Local.Archived,
		Notes:        is.Local.Notes,
	}
}

var annotationTemplate = template.Must(template.New("annotation").Parse(`# #{{ .Number }}: {{ .Title }}
manual_status = {{ printf "%q" .ManualStatus }} # "", red, yellow, light_green, dark_green
archived = {{ .Archived }}
---
{{ .Notes }}
`))

// RenderAnnotationTOML renders the annotation data as a TOML string for editing.
func RenderAnnotationTOML(data AnnotationData) (string, error) {
	var buf bytes.Buffer
	if err := annotationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedAnnotation represents the parsed result from the annotation editor.
type ParsedAnnotation struct {
	ManualStatus string `toml:"manual_status"`
	Archived     bool   `toml:"archived"`
	Notes        string
}

// ParseAnnotationTOML parses the TOML content from the annotation editor.
func ParseAnnotationTOML(content string) (*ParsedAnnotation, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedAnnotation
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Notes = strings.TrimSpace(body)
	parsed.ManualStatus = strings.ToLower(strings.TrimSpace(parsed.ManualStatus))

	if parsed.ManualStatus != "" && !issue.ManualStatus(parsed.ManualStatus).IsValid() {
		return nil, fmt.Errorf("invalid manual_status %q: must be %s", parsed.ManualStatus, validManualStatusList())
	}

	return &parsed, nil
}

// ToLocal converts a ParsedAnnotation to issue.Local.
func (p *ParsedAnnotation) ToLocal() issue.Local {
	return issue.Local{
		Notes:        p.Notes,
		Archived:     p.Archived,
		ManualStatus: issue.ManualStatus(p.ManualStatus),
	}
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createEditTempFile() (*os.File, error) {
	return os.CreateTemp("", "issuepad-edit-*.md")
}

func validManualStatusList() string {
	valid := issue.ValidManualStatuses()
	values := make([]string, 0, len(valid)+1)
	values = append(values, `""`)
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}

// EditIssue opens the editor for drafting or updating an issue and returns
// the parsed result. For create, pass a zero IssueData.
func EditIssue(data IssueData) (*ParsedIssue, error) {
	content, err := RenderIssueTOML(data)
	if err != nil {
		return nil, err
	}
	edited, err := editContent(content)
	if err != nil {
		return nil, err
	}
	return ParseIssueTOML(edited)
}

// EditAnnotations opens the editor for an issue's local annotations and
// returns the parsed result.
func EditAnnotations(data AnnotationData) (*ParsedAnnotation, error) {
	content, err := RenderAnnotationTOML(data)
	if err != nil {
		return nil, err
	}
	edited, err := editContent(content)
	if err != nil {
		return nil, err
	}
	return ParseAnnotationTOML(edited)
}

func editContent(content string) (string, error) {
	tmpfile, err := createEditTempFile()
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return string(edited), nil
}
