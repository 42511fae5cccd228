package main

import (
	"fmt"
	"strings"

	"github.com/amonks/issuepad/internal/gitx"
	"github.com/amonks/issuepad/internal/paths"
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the configured user's repositories",
	Args:  cobra.NoArgs,
	RunE:  runRepos,
}

var reposJSON bool

var cloneCmd = &cobra.Command{
	Use:   "clone <owner>/<repo> [dir]",
	Short: "Clone a repository to disk with git",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runClone,
}

func init() {
	rootCmd.AddCommand(reposCmd, cloneCmd)

	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "Output as JSON")
}

func runRepos(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	repos, err := a.tracker.Repos(cmd.Context())
	if err != nil {
		return err
	}

	if reposJSON {
		return encodeJSONToStdout(repos)
	}

	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return nil
	}

	fmt.Print(formatRepoTable(repos))
	return nil
}

func runClone(cmd *cobra.Command, args []string) error {
	url := args[0]
	if !strings.Contains(url, "://") && !strings.HasPrefix(url, "git@") {
		owner, repo, err := splitRepoArg(args[0])
		if err != nil {
			return err
		}
		url = fmt.Sprintf("https://github.com/%s/%s.git", owner, repo)
	}

	dir := ""
	if len(args) > 1 {
		dir = args[1]
	} else {
		cwd, err := paths.WorkingDir()
		if err != nil {
			return err
		}
		dir = gitx.CloneDir(cwd, url)
	}

	if err := gitx.Clone(cmd.Context(), url, dir); err != nil {
		return err
	}

	fmt.Printf("Cloned %s into %s\n", url, dir)
	return nil
}
