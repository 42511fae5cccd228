// Package issue defines the issuepad data model: GitHub-sourced issue
// records, the private local annotations layered on top of them, and the
// pure functions that merge and project them.
//
// An Issue carries two disjoint attribute groups. Upstream attributes are
// owned by GitHub and overwritten wholesale on every fetch. Local
// attributes exist only in this application's cache and must survive every
// fetch. Reconcile enforces that split; Categorize derives the display
// category from the combined record.
package issue

import "time"

// Issue represents a single GitHub issue plus its local annotations.
type Issue struct {
	// ID is GitHub's globally unique issue identifier. Reconciliation is
	// keyed on it; issue numbers are only unique within a repository.
	ID int64 `json:"id"`

	// Number is the per-repository issue number shown to users.
	Number int `json:"number"`

	// Title is the issue title.
	Title string `json:"title"`

	// Body is the issue body in markdown.
	Body string `json:"body"`

	// State is the upstream open/closed state.
	State State `json:"state"`

	// Author is the login of the user who opened the issue.
	Author string `json:"author"`

	// Labels holds the upstream label names.
	Labels []string `json:"labels,omitempty"`

	// Comments is the upstream comment count.
	Comments int `json:"comments"`

	// CreatedAt is when the issue was opened.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the issue was last modified upstream.
	UpdatedAt time.Time `json:"updated_at"`

	// ClosedAt is when the issue was closed (nil while open).
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	// URL is the canonical html URL for the issue.
	URL string `json:"url"`

	// Local holds the annotations GitHub knows nothing about.
	Local Local `json:"local"`
}

// Local holds the locally-owned annotation fields for an issue. The zero
// value is the default annotation set for a never-annotated issue.
type Local struct {
	// Notes is free-text private notes.
	Notes string `json:"notes,omitempty"`

	// Archived marks the issue as archived locally.
	Archived bool `json:"archived,omitempty"`

	// ManualStatus overrides automatic category derivation when set.
	ManualStatus ManualStatus `json:"manual_status,omitempty"`
}

// IsZero reports whether the annotations are all at their defaults.
func (l Local) IsZero() bool {
	return l.Notes == "" && !l.Archived && l.ManualStatus == StatusNone
}

// Comment is a single comment on an issue. Comments are display-only and
// never cached or annotated.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository identifies a GitHub repository. Repositories are immutable
// once fetched and carry no local annotations.
type Repository struct {
	ID          int64     `json:"id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
