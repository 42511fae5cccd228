package tui

import (
	"fmt"
	"io"

	"github.com/amonks/issuepad/issue"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type repoItem struct {
	repo issue.Repository
}

func (item repoItem) FilterValue() string {
	return item.repo.FullName
}

type repoItemDelegate struct {
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

func newRepoItemDelegate() repoItemDelegate {
	return repoItemDelegate{
		normalStyle:   normalItemStyle,
		selectedStyle: selectedItemStyle,
	}
}

func (d repoItemDelegate) Height() int                             { return 1 }
func (d repoItemDelegate) Spacing() int                            { return 0 }
func (d repoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d repoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(repoItem)
	if !ok {
		return
	}

	line := formatRepoItem(item, m.Width())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatRepoItem(item repoItem, width int) string {
	line := fmt.Sprintf("%s  %d open", item.repo.FullName, item.repo.OpenIssues)
	if item.repo.Description != "" {
		line = fmt.Sprintf("%s  %s", line, item.repo.Description)
	}
	return truncateText(line, width)
}
