// Package main implements the issuepad CLI tool.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/issuepad/github"
	"github.com/amonks/issuepad/internal/config"
	"github.com/amonks/issuepad/internal/paths"
	"github.com/amonks/issuepad/issue"
	"github.com/amonks/issuepad/orphan"
	"github.com/amonks/issuepad/store"
	"github.com/amonks/issuepad/tracker"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "issuepad",
	Short:         "Issuepad - browse and privately annotate GitHub issues",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var configFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default ~/.config/issuepad/config.toml)")
}

func configPath() (string, error) {
	return paths.ResolveWithDefault(configFlag, paths.DefaultConfigPath)
}

func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// app bundles the long-lived dependencies a command needs: the loaded
// config and a tracker wired to the GitHub client and local stores.
type app struct {
	cfg     *config.Config
	tracker *tracker.Tracker
	archive *orphan.Archive
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	// A broken archive degrades to losing orphaned annotations, not to a
	// failed command.
	archive, err := orphan.Open(ctx, filepath.Join(dataDir, "orphans.db"))
	if err != nil {
		log.Printf("warning: open orphan archive: %v", err)
		archive = nil
	}

	client := github.NewClient(github.Config{
		Token:    cfg.GitHub.Token,
		Username: cfg.GitHub.Username,
		PageSize: cfg.GitHub.PageSize,
	})

	return &app{
		cfg:     cfg,
		tracker: tracker.New(client, store.New(dataDir), archive),
		archive: archive,
	}, nil
}

func (a *app) Close() {
	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			log.Printf("warning: close orphan archive: %v", err)
		}
	}
}

// splitRepoArg parses an "owner/repo" command argument.
func splitRepoArg(arg string) (string, string, error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", arg)
	}
	return parts[0], parts[1], nil
}

// findIssue looks an issue up in the local cache, refreshing from GitHub
// when it is not cached yet.
func findIssue(ctx context.Context, a *app, owner, repo string, number int) (issue.Issue, error) {
	if iss, ok := cachedIssue(a, repo, number); ok {
		return iss, nil
	}

	issues, err := a.tracker.RefreshIssues(ctx, owner, repo, github.FilterAll)
	if err != nil {
		return issue.Issue{}, err
	}
	for _, iss := range issues {
		if iss.Number == number {
			return iss, nil
		}
	}
	return issue.Issue{}, fmt.Errorf("issue %s/%s#%d not found", owner, repo, number)
}

func cachedIssue(a *app, repo string, number int) (issue.Issue, bool) {
	issues, ok := a.tracker.CachedIssues(repo)
	if !ok {
		return issue.Issue{}, false
	}
	for _, iss := range issues {
		if iss.Number == number {
			return iss, true
		}
	}
	return issue.Issue{}, false
}
