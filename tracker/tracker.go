// Package tracker orchestrates the fetch/reconcile/persist cycle and the
// user-initiated mutations behind it. It owns the wiring between the
// GitHub client, the JSON annotation store, and the orphan archive; all
// presentation surfaces (CLI and TUI) go through a Tracker.
package tracker

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/amonks/issuepad/github"
	"github.com/amonks/issuepad/issue"
	"github.com/amonks/issuepad/orphan"
	"github.com/amonks/issuepad/store"
)

// ErrIssueNotCached indicates a mutation referenced an issue that is not
// in the local cache; refresh first.
var ErrIssueNotCached = errors.New("issue not found in local cache")

// Client is the remote API surface the tracker needs. *github.Client
// satisfies it; tests substitute a fake.
type Client interface {
	ListRepos(ctx context.Context) ([]issue.Repository, error)
	ListIssues(ctx context.Context, owner, repo string, state github.StateFilter) ([]issue.Issue, error)
	GetIssue(ctx context.Context, owner, repo string, number int) (issue.Issue, error)
	CreateIssue(ctx context.Context, owner, repo, title, body string) (issue.Issue, error)
	UpdateIssue(ctx context.Context, owner, repo string, number int, title, body string) (issue.Issue, error)
	SetIssueState(ctx context.Context, owner, repo string, number int, state issue.State) (issue.Issue, error)
	ListComments(ctx context.Context, owner, repo string, number int) ([]issue.Comment, error)
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (issue.Comment, error)
}

// Tracker combines the remote client with the local stores.
type Tracker struct {
	client  Client
	store   *store.Store
	orphans *orphan.Archive

	// generation guards against a stale slow refresh overwriting the
	// cache after a newer refresh has completed.
	generation atomic.Int64
}

// New creates a tracker. The orphan archive may be nil, in which case
// dropped annotations are not preserved.
func New(client Client, st *store.Store, orphans *orphan.Archive) *Tracker {
	return &Tracker{client: client, store: st, orphans: orphans}
}

// CachedIssues returns the locally cached issues for a repository, used to
// seed the UI before any network call completes. The second return value
// is false when no cache exists.
func (t *Tracker) CachedIssues(repo string) ([]issue.Issue, bool) {
	issues, ok, err := t.store.Load(store.RepoKey(repo))
	if err != nil {
		log.Printf("warning: read issue cache for %s: %v", repo, err)
		return nil, false
	}
	return issues, ok
}

// CachedRepos returns the locally cached repository list.
func (t *Tracker) CachedRepos() ([]issue.Repository, bool) {
	repos, ok, err := t.store.LoadRepos()
	if err != nil {
		log.Printf("warning: read repo cache: %v", err)
		return nil, false
	}
	return repos, ok
}

// Repos fetches the configured user's repositories and caches the list.
// A cache write failure is non-fatal.
func (t *Tracker) Repos(ctx context.Context) ([]issue.Repository, error) {
	repos, err := t.client.ListRepos(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.store.SaveRepos(repos); err != nil {
		log.Printf("warning: save repo cache: %v", err)
	}

	return repos, nil
}
