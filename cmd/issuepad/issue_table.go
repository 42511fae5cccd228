package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/issuepad/internal/markdown"
	"github.com/amonks/issuepad/internal/ui"
	"github.com/amonks/issuepad/issue"
	"github.com/amonks/issuepad/orphan"
)

const detailRenderWidth = 100

// formatIssueTable renders issues in a table, one colored row per issue.
func formatIssueTable(issues []issue.Issue, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"", "NUM", "STATE", "COMMENTS", "AGE", "TITLE"}, len(issues))

	for _, iss := range issues {
		category := issue.Categorize(iss)
		title := ui.TruncateTableCell(iss.Title)
		if iss.Local.Notes != "" {
			title += " *"
		}
		if iss.Local.Archived {
			title += " [archived]"
		}
		builder.AddRow([]string{
			ui.CategoryDot(category),
			"#" + strconv.Itoa(iss.Number),
			string(iss.State),
			strconv.Itoa(iss.Comments),
			ui.FormatTimeAgo(iss.CreatedAt, now),
			ui.CategoryStyle(category).Render(title),
		})
	}

	return builder.String()
}

func formatRepoTable(repos []issue.Repository) string {
	builder := ui.NewTableBuilder([]string{"REPO", "OPEN", "STARS", "DESCRIPTION"}, len(repos))

	for _, repo := range repos {
		builder.AddRow([]string{
			repo.FullName,
			strconv.Itoa(repo.OpenIssues),
			strconv.Itoa(repo.Stars),
			ui.TruncateTableCell(repo.Description),
		})
	}

	return builder.String()
}

func formatOrphanTable(records []orphan.Record, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"REPO", "NUM", "TITLE", "STATUS", "ORPHANED"}, len(records))

	for _, rec := range records {
		status := string(rec.Local.ManualStatus)
		if status == "" && rec.Local.Archived {
			status = "archived"
		}
		builder.AddRow([]string{
			rec.RepoKey,
			"#" + strconv.Itoa(rec.Number),
			ui.TruncateTableCell(rec.Title),
			status,
			ui.FormatTimeAgo(rec.OrphanedAt, now),
		})
	}

	return builder.String()
}

func printIssueDetail(iss issue.Issue, comments []issue.Comment, now time.Time) {
	category := issue.Categorize(iss)

	fmt.Printf("%s %s #%d %s\n", ui.CategoryDot(category), ui.LabelStyle.Render(iss.Title), iss.Number, ui.Muted(iss.URL))
	fmt.Printf("%s, opened by %s %s, %d comments\n", iss.State, iss.Author, ui.FormatTimeAgo(iss.CreatedAt, now), iss.Comments)
	if len(iss.Labels) > 0 {
		fmt.Println(ui.Muted("labels: " + strings.Join(iss.Labels, ", ")))
	}

	if body := markdown.Render(detailRenderWidth, iss.Body); body != "" {
		fmt.Println()
		fmt.Println(body)
	}

	if !iss.Local.IsZero() {
		fmt.Println()
		fmt.Println(ui.LabelStyle.Render("Annotations"))
		if iss.Local.ManualStatus != issue.StatusNone {
			fmt.Println("status: " + string(iss.Local.ManualStatus))
		}
		if iss.Local.Archived {
			fmt.Println("archived")
		}
		if notes := markdown.Render(detailRenderWidth, iss.Local.Notes); notes != "" {
			fmt.Println(notes)
		}
	}

	if len(comments) > 0 {
		fmt.Println()
		fmt.Println(ui.LabelStyle.Render("Comments"))
		printComments(comments, now)
	}
}

func printComments(comments []issue.Comment, now time.Time) {
	for i, comment := range comments {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(ui.Muted(fmt.Sprintf("%s, %s", comment.Author, ui.FormatTimeAgo(comment.CreatedAt, now))))
		if body := strings.TrimSpace(comment.Body); body != "" {
			fmt.Println(ui.Indent(ui.Wrap(body, detailRenderWidth-2), 2))
		}
	}
}
