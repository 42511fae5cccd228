package github

import (
	"time"

	"github.com/amonks/issuepad/issue"
)

// Wire types decode the GitHub REST v3 JSON shapes. The API uses
// snake_case field names and nests authors and labels; conversion to the
// internal model happens here and nowhere else.

type issueJSON struct {
	ID        int64       `json:"id"`
	Number    int         `json:"number"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	State     string      `json:"state"`
	User      userJSON    `json:"user"`
	Labels    []labelJSON `json:"labels"`
	Comments  int         `json:"comments"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	ClosedAt  *time.Time  `json:"closed_at"`
	HTMLURL   string      `json:"html_url"`

	// PullRequest is set when the record is actually a pull request; the
	// issues endpoint interleaves them and we filter them out.
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

type userJSON struct {
	Login string `json:"login"`
}

type labelJSON struct {
	Name string `json:"name"`
}

type repoJSON struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Owner           userJSON  `json:"owner"`
	Description     string    `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	HTMLURL         string    `json:"html_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type commentJSON struct {
	ID        int64     `json:"id"`
	User      userJSON  `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (j issueJSON) toIssue() issue.Issue {
	labels := make([]string, 0, len(j.Labels))
	for _, label := range j.Labels {
		labels = append(labels, label.Name)
	}
	if len(labels) == 0 {
		labels = nil
	}

	return issue.Issue{
		ID:        j.ID,
		Number:    j.Number,
		Title:     j.Title,
		Body:      j.Body,
		State:     issue.State(j.State),
		Author:    j.User.Login,
		Labels:    labels,
		Comments:  j.Comments,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
		ClosedAt:  j.ClosedAt,
		URL:       j.HTMLURL,
	}
}

func (j repoJSON) toRepository() issue.Repository {
	return issue.Repository{
		ID:          j.ID,
		Owner:       j.Owner.Login,
		Name:        j.Name,
		FullName:    j.FullName,
		Description: j.Description,
		Stars:       j.StargazersCount,
		Forks:       j.ForksCount,
		OpenIssues:  j.OpenIssuesCount,
		URL:         j.HTMLURL,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func (j commentJSON) toComment() issue.Comment {
	return issue.Comment{
		ID:        j.ID,
		Author:    j.User.Login,
		Body:      j.Body,
		CreatedAt: j.CreatedAt,
	}
}
