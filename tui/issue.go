package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/issuepad/internal/markdown"
	"github.com/amonks/issuepad/internal/ui"
	"github.com/amonks/issuepad/issue"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

type issueItem struct {
	issue issue.Issue
}

func (item issueItem) FilterValue() string {
	return item.issue.Title
}

type issueItemDelegate struct{}

func newIssueItemDelegate() issueItemDelegate {
	return issueItemDelegate{}
}

func (d issueItemDelegate) Height() int                             { return 1 }
func (d issueItemDelegate) Spacing() int                            { return 0 }
func (d issueItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d issueItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(issueItem)
	if !ok {
		return
	}

	category := issue.Categorize(item.issue)
	line := formatIssueItem(item, m.Width()-2)
	if index == m.Index() {
		fmt.Fprint(w, ui.CategoryDot(category)+" "+selectedItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, ui.CategoryDot(category)+" "+ui.CategoryStyle(category).Render(line))
}

func formatIssueItem(item issueItem, width int) string {
	iss := item.issue
	markers := ""
	if iss.Local.Notes != "" {
		markers += "*"
	}
	if iss.Local.Archived {
		markers += "A"
	}
	if markers != "" {
		markers = " [" + markers + "]"
	}
	line := fmt.Sprintf("#%-4d %s%s  %s, %d comments", iss.Number, iss.Title, markers, iss.State, iss.Comments)
	return truncateText(line, width)
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

type issueDetailModel struct {
	issue    issue.Issue
	comments []issue.Comment
	viewport viewport.Model
	active   bool
	now      func() time.Time
}

func newIssueDetailModel() issueDetailModel {
	return issueDetailModel{viewport: viewport.New(0, 0), now: time.Now}
}

func (model *issueDetailModel) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	model.viewport.Width = width
	model.viewport.Height = height
	model.viewport.SetContent(model.renderContent())
}

func (model *issueDetailModel) SetIssue(iss issue.Issue) {
	model.issue = iss
	model.comments = nil
	model.active = iss.ID != 0
	model.viewport.SetContent(model.renderContent())
	model.viewport.GotoTop()
}

func (model *issueDetailModel) SetComments(comments []issue.Comment) {
	model.comments = comments
	model.viewport.SetContent(model.renderContent())
}

func (model issueDetailModel) Update(msg tea.Msg) (issueDetailModel, tea.Cmd) {
	model.viewport, _ = model.viewport.Update(msg)
	return model, nil
}

func (model issueDetailModel) View() string {
	if !model.active {
		return valueMuted.Render("No issue selected")
	}
	return model.viewport.View()
}

func (model issueDetailModel) renderContent() string {
	iss := model.issue
	if iss.ID == 0 {
		return ""
	}
	width := model.viewport.Width
	if width < 1 {
		width = 80
	}
	now := model.now()

	category := issue.Categorize(iss)
	header := fmt.Sprintf("#%d %s", iss.Number, iss.Title)
	meta := fmt.Sprintf("%s %s  by %s  opened %s  %d comments",
		ui.CategoryDot(category), iss.State, iss.Author,
		ui.FormatTimeAgo(iss.CreatedAt, now), iss.Comments)

	sections := []string{labelStyle.Render(header), meta}
	if len(iss.Labels) > 0 {
		sections = append(sections, ui.Muted("labels: "+strings.Join(iss.Labels, ", ")))
	}

	sections = append(sections, "", markdown.Render(width, iss.Body))

	if !iss.Local.IsZero() {
		sections = append(sections, "", labelStyle.Render("Annotations"))
		if iss.Local.ManualStatus != issue.StatusNone {
			sections = append(sections, "status: "+string(iss.Local.ManualStatus))
		}
		if iss.Local.Archived {
			sections = append(sections, "archived")
		}
		if iss.Local.Notes != "" {
			sections = append(sections, markdown.Render(width, iss.Local.Notes))
		}
	}

	if len(model.comments) > 0 {
		sections = append(sections, "", labelStyle.Render("Comments"))
		for _, comment := range model.comments {
			attribution := fmt.Sprintf("%s, %s", comment.Author, ui.FormatTimeAgo(comment.CreatedAt, now))
			sections = append(sections, "", ui.Muted(attribution), markdown.Render(width, comment.Body))
		}
	}

	return strings.Join(sections, "\n")
}

// cycleManualStatus steps through the override sequence none -> red ->
// yellow -> light_green -> dark_green -> none.
func cycleManualStatus(current issue.ManualStatus) issue.ManualStatus {
	sequence := append([]issue.ManualStatus{issue.StatusNone}, issue.ValidManualStatuses()...)
	for i, status := range sequence {
		if status == current {
			return sequence[(i+1)%len(sequence)]
		}
	}
	return issue.StatusNone
}
