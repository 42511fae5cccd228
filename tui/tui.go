// Package tui implements the interactive browse mode: a repository list,
// an issue list colored by derived category, and an issue detail pane.
// All mutations route through the tracker.
package tui

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/amonks/issuepad/github"
	"github.com/amonks/issuepad/internal/editor"
	"github.com/amonks/issuepad/issue"
	"github.com/amonks/issuepad/tracker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tabKind int

const (
	tabRepos tabKind = iota
	tabIssues
)

type focusPane int

const (
	focusList focusPane = iota
	focusDetail
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalToggleState
)

// Options configures the browse session.
type Options struct {
	// Repo is an optional "owner/name" to open directly, skipping the
	// repository list.
	Repo string
	// OldestFirst breaks category ties by age ascending.
	OldestFirst bool
}

type model struct {
	ctx         context.Context
	tracker     *tracker.Tracker
	oldestFirst bool

	width  int
	height int

	activeTab tabKind
	focus     focusPane

	repoList    list.Model
	issueList   list.Model
	issueDetail issueDetailModel

	modal       confirmModal
	status      string
	statusLevel statusLevel

	owner           string
	repoName        string
	selectedIssueID int64
}

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
}

// Run starts the browse TUI and blocks until the user quits.
func Run(ctx context.Context, tr *tracker.Tracker, opts Options) error {
	if tr == nil {
		return fmt.Errorf("tracker is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, tr, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, tr *tracker.Tracker, opts Options) model {
	repoList := list.New(nil, newRepoItemDelegate(), 0, 0)
	repoList.Title = "Repositories"
	repoList.SetShowStatusBar(false)
	repoList.SetFilteringEnabled(false)
	repoList.SetShowHelp(false)
	repoList.SetShowPagination(false)

	issueList := list.New(nil, newIssueItemDelegate(), 0, 0)
	issueList.Title = "Issues"
	issueList.SetShowStatusBar(false)
	issueList.SetFilteringEnabled(false)
	issueList.SetShowHelp(false)
	issueList.SetShowPagination(false)

	m := model{
		ctx:         ctx,
		tracker:     tr,
		oldestFirst: opts.OldestFirst,
		activeTab:   tabRepos,
		focus:       focusList,
		repoList:    repoList,
		issueList:   issueList,
		issueDetail: newIssueDetailModel(),
		modal:       confirmModal{kind: modalNone},
	}

	if opts.Repo != "" {
		if owner, name, ok := splitRepo(opts.Repo); ok {
			m.owner = owner
			m.repoName = name
			m.activeTab = tabIssues
		}
	}

	m.seedFromCache()
	return m
}

func (m model) Init() tea.Cmd {
	if m.activeTab == tabIssues {
		return tea.Batch(m.loadReposCmd(), m.refreshIssuesCmd())
	}
	return m.loadReposCmd()
}

// seedFromCache populates the lists from local data before the first
// network response arrives.
func (m *model) seedFromCache() {
	if repos, ok := m.tracker.CachedRepos(); ok {
		m.setRepoItems(repos)
	}
	if m.repoFullName() != "" {
		if issues, ok := m.tracker.CachedIssues(m.repoName); ok {
			m.setIssueItems(issues)
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		updated, cmd, handled := m.handleKey(msg)
		if handled {
			return updated, cmd
		}
		m = updated
	case reposLoadedMsg:
		m.handleReposLoaded(msg)
	case issuesLoadedMsg:
		m.handleIssuesLoaded(msg)
	case commentsLoadedMsg:
		m.handleCommentsLoaded(msg)
	case localSavedMsg:
		m.handleLocalSaved(msg)
	case stateToggledMsg:
		m.handleStateToggled(msg)
	case annotationsEditedMsg:
		return m.handleAnnotationsEdited(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusDetail {
		m.issueDetail, cmd = m.issueDetail.Update(msg)
	} else if m.activeTab == tabRepos {
		m.repoList, cmd = m.repoList.Update(msg)
	} else {
		m.issueList, cmd = m.issueList.Update(msg)
		if m.updateIssueSelection() {
			return m, cmd
		}
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading issuepad..."
	}
	helpLine := m.renderHelpLine()
	statusLine := m.renderStatusLine()
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)

	listContent := m.repoList.View()
	if m.activeTab == tabIssues {
		listContent = m.issueList.View()
	}
	detailContent := m.issueDetail.View()

	listPane := m.renderPane(listContent, leftWidth, contentHeight, m.focus == focusList)
	detailPane := m.renderPane(detailContent, rightWidth, contentHeight, m.focus == focusDetail)
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	view := strings.Join([]string{m.renderTabs(), helpLine, content, statusLine}, "\n")
	if m.modal.kind != modalNone {
		view = m.renderModalOverlay(view)
	}
	return view
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	key := msg.String()
	if key == "?" {
		m.modal = confirmModal{kind: modalHelp}
		return m, nil, true
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "1":
		updated := m.activateTab(tabRepos)
		return updated, nil, true
	case "2":
		if m.repoFullName() != "" {
			updated := m.activateTab(tabIssues)
			return updated, nil, true
		}
	case "tab", "[", "]":
		if m.focus == focusList {
			target := tabRepos
			if m.activeTab == tabRepos && m.repoFullName() != "" {
				target = tabIssues
			}
			updated := m.activateTab(target)
			return updated, nil, true
		}
	case "enter":
		return m.handleEnter()
	case "esc":
		if m.focus == focusDetail {
			m.focus = focusList
			return m, nil, true
		}
		if m.activeTab == tabIssues {
			updated := m.activateTab(tabRepos)
			return updated, nil, true
		}
	case "r":
		if m.activeTab == tabIssues && m.focus == focusList {
			m.setStatus("Refreshing...", statusInfo)
			return m, m.refreshIssuesCmd(), true
		}
		if m.activeTab == tabRepos && m.focus == focusList {
			m.setStatus("Refreshing...", statusInfo)
			return m, m.loadReposCmd(), true
		}
	case "s":
		if m.activeTab == tabIssues && m.focus == focusList {
			return m.cycleStatus()
		}
	case "a":
		if m.activeTab == tabIssues && m.focus == focusList {
			return m.toggleArchive()
		}
	case "x":
		if m.activeTab == tabIssues && m.focus == focusList {
			return m.promptToggleState()
		}
	case "e":
		if m.activeTab == tabIssues && m.focus == focusList {
			return m.editAnnotations()
		}
	}

	return m, nil, false
}

func (m model) handleEnter() (model, tea.Cmd, bool) {
	if m.focus == focusDetail {
		return m, nil, true
	}
	if m.activeTab == tabRepos {
		item, ok := m.currentRepoItem()
		if !ok {
			return m, nil, true
		}
		m.owner = item.repo.Owner
		m.repoName = item.repo.Name
		m = m.activateTab(tabIssues)
		m.setStatus("Refreshing...", statusInfo)
		return m, m.refreshIssuesCmd(), true
	}

	item, ok := m.currentIssueItem()
	if !ok {
		return m, nil, true
	}
	m.focus = focusDetail
	return m, m.loadCommentsCmd(item.issue.Number), true
}

func (m model) activateTab(target tabKind) model {
	if target == m.activeTab {
		return m
	}
	m.activeTab = target
	m.focus = focusList
	if target == tabIssues {
		if issues, ok := m.tracker.CachedIssues(m.repoName); ok {
			m.setIssueItems(issues)
		}
		m.updateIssueSelection()
	}
	return m
}

func (m model) cycleStatus() (model, tea.Cmd, bool) {
	item, ok := m.currentIssueItem()
	if !ok {
		return m, nil, true
	}
	next := cycleManualStatus(item.issue.Local.ManualStatus)
	m.setStatus(fmt.Sprintf("Setting status of #%d to %q...", item.issue.Number, next), statusInfo)
	return m, m.setManualStatusCmd(item.issue.Number, next), true
}

func (m model) toggleArchive() (model, tea.Cmd, bool) {
	item, ok := m.currentIssueItem()
	if !ok {
		return m, nil, true
	}
	return m, m.setArchivedCmd(item.issue.Number, !item.issue.Local.Archived), true
}

func (m model) promptToggleState() (model, tea.Cmd, bool) {
	item, ok := m.currentIssueItem()
	if !ok {
		return m, nil, true
	}
	verb := "Close"
	if item.issue.State == issue.StateClosed {
		verb = "Reopen"
	}
	m.modal = confirmModal{
		kind:        modalToggleState,
		message:     fmt.Sprintf("%s issue #%d on GitHub?", verb, item.issue.Number),
		confirmText: verb,
		cancelText:  "Cancel",
		selected:    1,
	}
	return m, nil, true
}

func (m model) editAnnotations() (model, tea.Cmd, bool) {
	item, ok := m.currentIssueItem()
	if !ok {
		return m, nil, true
	}

	content, err := editor.RenderAnnotationTOML(editor.DataFromLocal(item.issue))
	if err != nil {
		m.setStatus(fmt.Sprintf("Edit failed: %v", err), statusError)
		return m, nil, true
	}

	tmpfile, err := os.CreateTemp("", "issuepad-edit-*.md")
	if err != nil {
		m.setStatus(fmt.Sprintf("Edit failed: %v", err), statusError)
		return m, nil, true
	}
	path := tmpfile.Name()
	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		os.Remove(path)
		m.setStatus(fmt.Sprintf("Edit failed: %v", err), statusError)
		return m, nil, true
	}
	tmpfile.Close()

	number := item.issue.Number
	return m, tea.ExecProcess(editorCommand(path), func(err error) tea.Msg {
		return annotationsEditedMsg{path: path, number: number, err: err}
	}), true
}

func editorCommand(path string) *exec.Cmd {
	name := os.Getenv("EDITOR")
	if name == "" {
		name = "vi"
	}
	return exec.Command(name, path)
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.modal.kind == modalHelp {
		switch key.String() {
		case "?", "esc":
			m.modal = confirmModal{kind: modalNone}
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		if m.modal.selected == 0 {
			m.modal.selected = 1
		} else {
			m.modal.selected = 0
		}
		return m, nil
	case "enter":
		confirm := m.modal.selected == 0
		return m.resolveModal(confirm)
	case "esc":
		return m.resolveModal(false)
	}
	return m, nil
}

func (m model) resolveModal(confirm bool) (tea.Model, tea.Cmd) {
	kind := m.modal.kind
	m.modal = confirmModal{kind: modalNone}
	if !confirm {
		return m, nil
	}
	if kind == modalToggleState {
		item, ok := m.currentIssueItem()
		if !ok {
			return m, nil
		}
		return m, m.toggleStateCmd(item.issue.Number)
	}
	return m, nil
}

func (m *model) handleReposLoaded(msg reposLoadedMsg) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Repo load failed: %v", msg.err), statusError)
		return
	}
	m.setRepoItems(msg.repos)
}

func (m *model) handleIssuesLoaded(msg issuesLoadedMsg) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Refresh failed: %v", msg.err), statusError)
		return
	}
	if msg.repo != m.repoFullName() {
		return
	}
	m.setIssueItems(msg.issues)
	m.setStatus(fmt.Sprintf("%d issues", len(msg.issues)), statusInfo)
}

func (m *model) handleCommentsLoaded(msg commentsLoadedMsg) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Comment load failed: %v", msg.err), statusError)
		return
	}
	if item, ok := m.currentIssueItem(); !ok || item.issue.Number != msg.number {
		return
	}
	m.issueDetail.SetComments(msg.comments)
}

func (m *model) handleLocalSaved(msg localSavedMsg) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), statusError)
		return
	}
	m.replaceIssue(msg.issue)
	m.setStatus("Saved", statusInfo)
}

func (m *model) handleStateToggled(msg stateToggledMsg) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("State change failed: %v", msg.err), statusError)
		return
	}
	m.replaceIssue(msg.issue)
	m.setStatus(fmt.Sprintf("Issue #%d is now %s", msg.issue.Number, msg.issue.State), statusInfo)
}

func (m model) handleAnnotationsEdited(msg annotationsEditedMsg) (tea.Model, tea.Cmd) {
	defer os.Remove(msg.path)
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Editor failed: %v", msg.err), statusError)
		return m, nil
	}
	edited, err := os.ReadFile(msg.path)
	if err != nil {
		m.setStatus(fmt.Sprintf("Read edit failed: %v", err), statusError)
		return m, nil
	}
	parsed, err := editor.ParseAnnotationTOML(string(edited))
	if err != nil {
		m.setStatus(fmt.Sprintf("Parse failed: %v", err), statusError)
		return m, nil
	}
	return m, m.setLocalCmd(msg.number, parsed.ToLocal())
}

func (m *model) setRepoItems(repos []issue.Repository) {
	items := make([]list.Item, 0, len(repos))
	for _, repo := range repos {
		items = append(items, repoItem{repo: repo})
	}
	m.repoList.SetItems(items)
	if len(items) > 0 && m.repoList.Index() < 0 {
		m.repoList.Select(0)
	}
}

func (m *model) setIssueItems(issues []issue.Issue) {
	ordered := make([]issue.Issue, len(issues))
	copy(ordered, issues)
	issue.SortByCategory(ordered, m.oldestFirst)

	items := make([]list.Item, 0, len(ordered))
	for _, iss := range ordered {
		items = append(items, issueItem{issue: iss})
	}
	m.issueList.SetItems(items)
	if m.selectedIssueID != 0 {
		m.selectIssueByID(m.selectedIssueID)
	}
	if len(items) > 0 && m.issueList.Index() < 0 {
		m.issueList.Select(0)
	}
	m.updateIssueSelection()
}

// replaceIssue swaps one issue's record in the list, keeping the rest of
// the ordering as-is until the next refresh.
func (m *model) replaceIssue(updated issue.Issue) {
	items := m.issueList.Items()
	for i, item := range items {
		current, ok := item.(issueItem)
		if !ok || current.issue.ID != updated.ID {
			continue
		}
		items[i] = issueItem{issue: updated}
		m.issueList.SetItems(items)
		break
	}
	m.updateIssueSelectionForce()
}

func (m *model) updateIssueSelection() bool {
	item, ok := m.currentIssueItem()
	selectedID := int64(0)
	if ok {
		selectedID = item.issue.ID
	}
	if selectedID == m.selectedIssueID && ok {
		return false
	}
	if ok {
		m.issueDetail.SetIssue(item.issue)
	} else {
		m.issueDetail.SetIssue(issue.Issue{})
	}
	m.selectedIssueID = selectedID
	return true
}

func (m *model) updateIssueSelectionForce() {
	if item, ok := m.currentIssueItem(); ok {
		m.issueDetail.SetIssue(item.issue)
		m.selectedIssueID = item.issue.ID
	}
}

func (m *model) selectIssueByID(id int64) {
	for i, item := range m.issueList.Items() {
		current, ok := item.(issueItem)
		if ok && current.issue.ID == id {
			m.issueList.Select(i)
			return
		}
	}
}

func (m model) currentRepoItem() (repoItem, bool) {
	item := m.repoList.SelectedItem()
	if item == nil {
		return repoItem{}, false
	}
	current, ok := item.(repoItem)
	return current, ok
}

func (m model) currentIssueItem() (issueItem, bool) {
	item := m.issueList.SelectedItem()
	if item == nil {
		return issueItem{}, false
	}
	current, ok := item.(issueItem)
	return current, ok
}

func (m model) repoFullName() string {
	if m.owner == "" || m.repoName == "" {
		return ""
	}
	return m.owner + "/" + m.repoName
}

func splitRepo(value string) (string, string, bool) {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (m *model) resize() {
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)
	listHeight := contentHeight - 2
	if listHeight < 1 {
		listHeight = 1
	}
	listWidth := leftWidth - 4
	if listWidth < 1 {
		listWidth = 1
	}
	innerDetailWidth := rightWidth - 4
	if innerDetailWidth < 1 {
		innerDetailWidth = 1
	}
	innerDetailHeight := contentHeight - 2
	if innerDetailHeight < 1 {
		innerDetailHeight = 1
	}
	m.repoList.SetSize(listWidth, listHeight)
	m.issueList.SetSize(listWidth, listHeight)
	m.issueDetail.SetSize(innerDetailWidth, innerDetailHeight)
}

func splitWidths(width int) (int, int) {
	left := width / 3
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func (m model) renderTabs() string {
	labels := []string{"[1] Repos", "[2] Issues"}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := tabInactiveStyle
		if (i == 0 && m.activeTab == tabRepos) || (i == 1 && m.activeTab == tabIssues) {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	helpHint := valueMuted.Render("Press ? for help")
	spacerWidth := m.width - lipgloss.Width(content) - lipgloss.Width(helpHint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := strings.Repeat(" ", spacerWidth)
	return tabBarStyle.Width(m.width).Render(content + spacer + helpHint)
}

func (m model) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return style.Width(width).Height(height).Render(content)
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m model) renderHelpLine() string {
	text := strings.TrimSpace(m.helpSummary())
	if text == "" {
		return ""
	}
	return helpBarStyle.Width(m.width).Render(truncateText(text, m.width))
}

func (m model) helpSummary() string {
	if m.activeTab == tabRepos {
		return "Keys: up/down move | enter open repo | r refresh | ? help | q quit"
	}
	if m.focus == focusDetail {
		return "Keys: up/down/pgup/pgdown scroll | esc back | ? help | q quit"
	}
	return "Keys: enter detail | e edit notes | s cycle status | a archive | x close/reopen | r refresh | ? help"
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderModalOverlay(content string) string {
	if m.modal.kind == modalNone {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	if m.modal.kind == modalHelp {
		return modalStyle.Render(m.helpContent())
	}
	buttons := make([]string, 0, 2)
	for i, option := range []string{m.modal.confirmText, m.modal.cancelText} {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedBorder
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	content := strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n")
	return modalStyle.Render(content)
}

func (m model) helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"1 or 2 / tab: switch tabs",
		"?: toggle help",
		"",
		labelStyle.Render("Navigation"),
		"up/down or j/k: move selection",
		"enter: open repo / focus detail",
		"esc: back",
		"",
		labelStyle.Render("Issues"),
		"e: edit notes and annotations in $EDITOR",
		"s: cycle manual status",
		"a: toggle archive",
		"x: close or reopen on GitHub",
		"r: refresh from GitHub",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

func (m model) loadReposCmd() tea.Cmd {
	return func() tea.Msg {
		repos, err := m.tracker.Repos(m.ctx)
		return reposLoadedMsg{repos: repos, err: err}
	}
}

func (m model) refreshIssuesCmd() tea.Cmd {
	owner, name, repo := m.owner, m.repoName, m.repoFullName()
	if repo == "" {
		return nil
	}
	return func() tea.Msg {
		issues, err := m.tracker.RefreshIssues(m.ctx, owner, name, github.FilterAll)
		return issuesLoadedMsg{repo: repo, issues: issues, err: err}
	}
}

func (m model) loadCommentsCmd(number int) tea.Cmd {
	owner, name := m.owner, m.repoName
	return func() tea.Msg {
		comments, err := m.tracker.Comments(m.ctx, owner, name, number)
		return commentsLoadedMsg{number: number, comments: comments, err: err}
	}
}

func (m model) setManualStatusCmd(number int, status issue.ManualStatus) tea.Cmd {
	owner, name, repo := m.owner, m.repoName, m.repoFullName()
	return func() tea.Msg {
		issues, err := m.tracker.SetManualStatus(m.ctx, owner, name, number, status, github.FilterAll)
		return issuesLoadedMsg{repo: repo, issues: issues, err: err}
	}
}

func (m model) setArchivedCmd(number int, archived bool) tea.Cmd {
	name := m.repoName
	return func() tea.Msg {
		updated, err := m.tracker.SetArchived(name, number, archived)
		return localSavedMsg{issue: updated, err: err}
	}
}

func (m model) setLocalCmd(number int, local issue.Local) tea.Cmd {
	name := m.repoName
	return func() tea.Msg {
		updated, err := m.tracker.SetLocal(name, number, local)
		return localSavedMsg{issue: updated, err: err}
	}
}

func (m model) toggleStateCmd(number int) tea.Cmd {
	owner, name := m.owner, m.repoName
	return func() tea.Msg {
		updated, err := m.tracker.ToggleState(m.ctx, owner, name, number)
		return stateToggledMsg{issue: updated, err: err}
	}
}

type reposLoadedMsg struct {
	repos []issue.Repository
	err   error
}

type issuesLoadedMsg struct {
	repo   string
	issues []issue.Issue
	err    error
}

type commentsLoadedMsg struct {
	number   int
	comments []issue.Comment
	err      error
}

type localSavedMsg struct {
	issue issue.Issue
	err   error
}

type stateToggledMsg struct {
	issue issue.Issue
	err   error
}

type annotationsEditedMsg struct {
	path   string
	number int
	err    error
}
