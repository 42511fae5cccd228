package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amonks/issuepad/github"
	"github.com/amonks/issuepad/internal/editor"
	"github.com/amonks/issuepad/issue"
	"github.com/spf13/cobra"
)

var issuesCmd = &cobra.Command{
	Use:   "issues <owner>/<repo>",
	Short: "Fetch a repository's issues and merge them with local annotations",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssues,
}

var (
	issuesState string
	issuesJSON  bool
)

var showCmd = &cobra.Command{
	Use:   "show <owner>/<repo> <number>",
	Short: "Show one issue with its annotations",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

var (
	showJSON     bool
	showComments bool
)

var newCmd = &cobra.Command{
	Use:   "new <owner>/<repo>",
	Short: "Open a new issue on GitHub",
	Long: `Open a new issue on GitHub.

By default, opens $EDITOR to draft the issue when running interactively
and no flags are provided. Use --no-edit with --title to skip the editor.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var (
	newTitle  string
	newBody   string
	newEdit   bool
	newNoEdit bool
)

var editCmd = &cobra.Command{
	Use:   "edit <owner>/<repo> <number>",
	Short: "Edit an issue's title, body, and state in $EDITOR",
	Args:  cobra.ExactArgs(2),
	RunE:  runEdit,
}

var closeCmd = &cobra.Command{
	Use:   "close <owner>/<repo> <number>",
	Short: "Close an issue on GitHub",
	Args:  cobra.ExactArgs(2),
	RunE:  runClose,
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <owner>/<repo> <number>",
	Short: "Reopen a closed issue on GitHub",
	Args:  cobra.ExactArgs(2),
	RunE:  runReopen,
}

var noteCmd = &cobra.Command{
	Use:   "note <owner>/<repo> <number> [text]",
	Short: "Edit an issue's private note",
	Long: `Edit an issue's private note.

Notes never leave the local machine. With a text argument the note is
replaced directly; without one, $EDITOR opens on the issue's annotations.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runNote,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Manage manual status overrides",
}

var statusSetCmd = &cobra.Command{
	Use:   "set <owner>/<repo> <number> <red|yellow|light_green|dark_green>",
	Short: "Set an issue's manual status",
	Long: `Set an issue's manual status.

Red and yellow reopen the issue on GitHub when it is closed; light_green
and dark_green close it when it is open. The GitHub transition is
best-effort; the local status is set either way.`,
	Args: cobra.ExactArgs(3),
	RunE: runStatusSet,
}

var statusClearCmd = &cobra.Command{
	Use:   "clear <owner>/<repo> <number>",
	Short: "Clear an issue's manual status, returning to automatic coloring",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatusClear,
}

var archiveCmd = &cobra.Command{
	Use:   "archive <owner>/<repo> <number>",
	Short: "Archive an issue locally",
	Args:  cobra.ExactArgs(2),
	RunE:  runArchive,
}

var archiveUndo bool

var commentCmd = &cobra.Command{
	Use:   "comment <owner>/<repo> <number> <body>",
	Short: "Post a comment on an issue",
	Args:  cobra.ExactArgs(3),
	RunE:  runComment,
}

var commentsCmd = &cobra.Command{
	Use:   "comments <owner>/<repo> <number>",
	Short: "List an issue's comments",
	Args:  cobra.ExactArgs(2),
	RunE:  runComments,
}

var commentsJSON bool

var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "List archived annotations whose issues left the fetch window",
	Args:  cobra.NoArgs,
	RunE:  runOrphans,
}

var orphansJSON bool

func init() {
	rootCmd.AddCommand(issuesCmd, showCmd, newCmd, editCmd, closeCmd, reopenCmd,
		noteCmd, statusCmd, archiveCmd, commentCmd, commentsCmd, orphansCmd)
	statusCmd.AddCommand(statusSetCmd, statusClearCmd)

	issuesCmd.Flags().StringVar(&issuesState, "state", "all", "Filter by state (open, closed, all)")
	issuesCmd.Flags().BoolVar(&issuesJSON, "json", false, "Output as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showComments, "comments", false, "Include comments")

	newCmd.Flags().StringVar(&newTitle, "title", "", "Issue title")
	newCmd.Flags().StringVarP(&newBody, "body", "b", "", "Issue body")
	newCmd.Flags().BoolVarP(&newEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no flags)")
	newCmd.Flags().BoolVar(&newNoEdit, "no-edit", false, "Do not open $EDITOR")

	archiveCmd.Flags().BoolVar(&archiveUndo, "undo", false, "Unarchive instead")

	commentsCmd.Flags().BoolVar(&commentsJSON, "json", false, "Output as JSON")

	orphansCmd.Flags().BoolVar(&orphansJSON, "json", false, "Output as JSON")
}

func parseIssueNumber(arg string) (int, error) {
	number, err := strconv.Atoi(arg)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("invalid issue number %q", arg)
	}
	return number, nil
}

// shouldUseEditor decides whether a command opens $EDITOR: --edit forces
// it, --no-edit skips it, and otherwise it opens only when no flags were
// given and stdin is a terminal.
func shouldUseEditor(hasFlags, edit, noEdit, interactive bool) bool {
	if noEdit {
		return false
	}
	if edit {
		return true
	}
	return !hasFlags && interactive
}

func runIssues(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	state := github.StateFilter(issuesState)
	if !state.IsValid() {
		return fmt.Errorf("invalid state %q: expected open, closed, or all", issuesState)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	issues, err := a.tracker.RefreshIssues(cmd.Context(), owner, repo, state)
	if err != nil {
		return err
	}

	issue.SortByCategory(issues, a.cfg.OldestFirst())

	if issuesJSON {
		return encodeJSONToStdout(issues)
	}

	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	fmt.Print(formatIssueTable(issues, time.Now()))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	iss, err := findIssue(cmd.Context(), a, owner, repo, number)
	if err != nil {
		return err
	}

	var comments []issue.Comment
	if showComments {
		comments, err = a.tracker.Comments(cmd.Context(), owner, repo, number)
		if err != nil {
			return err
		}
	}

	if showJSON {
		if showComments {
			return encodeJSONToStdout(struct {
				Issue    issue.Issue     `json:"issue"`
				Comments []issue.Comment `json:"comments"`
			}{iss, comments})
		}
		return encodeJSONToStdout(iss)
	}

	printIssueDetail(iss, comments, time.Now())
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}

	hasFlags := cmd.Flags().Changed("title") || cmd.Flags().Changed("body")
	title, body := newTitle, newBody

	if shouldUseEditor(hasFlags, newEdit, newNoEdit, editor.IsInteractive()) {
		data := editor.DefaultIssueData()
		data.Title = newTitle
		data.Body = newBody
		parsed, err := editor.EditIssue(data)
		if err != nil {
			return err
		}
		title, body = parsed.Title, parsed.Body
	} else if title == "" {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	created, err := a.tracker.CreateIssue(cmd.Context(), owner, repo, title, body)
	if err != nil {
		return err
	}

	fmt.Printf("Created issue #%d: %s\n", created.Number, created.Title)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}
	if !editor.IsInteractive() {
		return fmt.Errorf("edit requires an interactive terminal")
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	iss, err := findIssue(cmd.Context(), a, owner, repo, number)
	if err != nil {
		return err
	}

	parsed, err := editor.EditIssue(editor.DataFromIssue(iss))
	if err != nil {
		return err
	}

	if parsed.Title != iss.Title || parsed.Body != iss.Body {
		iss, err = a.tracker.UpdateIssue(cmd.Context(), owner, repo, number, parsed.Title, parsed.Body)
		if err != nil {
			return err
		}
	}

	if parsed.State != nil && *parsed.State != string(iss.State) {
		iss, err = a.tracker.ToggleState(cmd.Context(), owner, repo, number)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Updated issue #%d: %s\n", iss.Number, iss.Title)
	return nil
}

func runClose(cmd *cobra.Command, args []string) error {
	return runStateChange(cmd, args, issue.StateClosed, "Closed")
}

func runReopen(cmd *cobra.Command, args []string) error {
	return runStateChange(cmd, args, issue.StateOpen, "Reopened")
}

func runStateChange(cmd *cobra.Command, args []string, target issue.State, verb string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	current, err := findIssue(cmd.Context(), a, owner, repo, number)
	if err != nil {
		return err
	}
	if current.State == target {
		fmt.Printf("Issue #%d is already %s.\n", number, target)
		return nil
	}

	updated, err := a.tracker.ToggleState(cmd.Context(), owner, repo, number)
	if err != nil {
		return err
	}

	fmt.Printf("%s issue #%d: %s\n", verb, updated.Number, updated.Title)
	return nil
}

func runNote(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) > 2 {
		updated, err := a.tracker.SetNote(repo, number, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Noted issue #%d: %s\n", updated.Number, updated.Title)
		return nil
	}

	iss, err := findIssue(cmd.Context(), a, owner, repo, number)
	if err != nil {
		return err
	}

	parsed, err := editor.EditAnnotations(editor.DataFromLocal(iss))
	if err != nil {
		return err
	}

	updated, err := a.tracker.SetLocal(repo, number, parsed.ToLocal())
	if err != nil {
		return err
	}

	fmt.Printf("Updated annotations for issue #%d: %s\n", updated.Number, updated.Title)
	return nil
}

func runStatusSet(cmd *cobra.Command, args []string) error {
	status := issue.ManualStatus(args[2])
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q: expected red, yellow, light_green, or dark_green", args[2])
	}
	return setManualStatus(cmd, args[0], args[1], status)
}

func runStatusClear(cmd *cobra.Command, args []string) error {
	return setManualStatus(cmd, args[0], args[1], issue.StatusNone)
}

func setManualStatus(cmd *cobra.Command, repoArg, numberArg string, status issue.ManualStatus) error {
	owner, repo, err := splitRepoArg(repoArg)
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(numberArg)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	// Make sure the issue is cached so the status has a record to land on.
	if _, err := findIssue(cmd.Context(), a, owner, repo, number); err != nil {
		return err
	}

	if _, err := a.tracker.SetManualStatus(cmd.Context(), owner, repo, number, status, github.FilterAll); err != nil {
		return err
	}

	if status == issue.StatusNone {
		fmt.Printf("Cleared manual status of issue #%d\n", number)
		return nil
	}
	fmt.Printf("Set issue #%d to %s\n", number, status)
	return nil
}

func runArchive(cmd *cobra.Command, args []string) error {
	_, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	updated, err := a.tracker.SetArchived(repo, number, !archiveUndo)
	if err != nil {
		return err
	}

	verb := "Archived"
	if archiveUndo {
		verb = "Unarchived"
	}
	fmt.Printf("%s issue #%d: %s\n", verb, updated.Number, updated.Title)
	return nil
}

func runComment(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	comment, err := a.tracker.AddComment(cmd.Context(), owner, repo, number, args[2])
	if err != nil {
		return err
	}

	fmt.Printf("Commented on issue #%d as %s\n", number, comment.Author)
	return nil
}

func runComments(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}
	number, err := parseIssueNumber(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	comments, err := a.tracker.Comments(cmd.Context(), owner, repo, number)
	if err != nil {
		return err
	}

	if commentsJSON {
		return encodeJSONToStdout(comments)
	}

	if len(comments) == 0 {
		fmt.Println("No comments found.")
		return nil
	}

	printComments(comments, time.Now())
	return nil
}

func runOrphans(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if a.archive == nil {
		return fmt.Errorf("orphan archive is unavailable")
	}

	records, err := a.archive.List(cmd.Context())
	if err != nil {
		return err
	}

	if orphansJSON {
		return encodeJSONToStdout(records)
	}

	if len(records) == 0 {
		fmt.Println("No orphaned annotations.")
		return nil
	}

	fmt.Print(formatOrphanTable(records, time.Now()))
	return nil
}
