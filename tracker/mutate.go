package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/amonks/issuepad/github"
	"github.com/amonks/issuepad/issue"
	"github.com/amonks/issuepad/store"
)

// SetNote updates an issue's private note. Local only: no remote call.
func (t *Tracker) SetNote(repo string, number int, note string) (issue.Issue, error) {
	return t.updateLocal(repo, number, func(local *issue.Local) {
		local.Notes = note
	})
}

// SetArchived toggles an issue's local archive flag. Local only.
func (t *Tracker) SetArchived(repo string, number int, archived bool) (issue.Issue, error) {
	return t.updateLocal(repo, number, func(local *issue.Local) {
		local.Archived = archived
	})
}

// SetLocal replaces an issue's whole annotation set, as edited through the
// $EDITOR flow. Local only.
func (t *Tracker) SetLocal(repo string, number int, local issue.Local) (issue.Issue, error) {
	if local.ManualStatus != issue.StatusNone && !local.ManualStatus.IsValid() {
		return issue.Issue{}, fmt.Errorf("invalid manual status %q", local.ManualStatus)
	}
	return t.updateLocal(repo, number, func(target *issue.Local) {
		*target = local
	})
}

// SetManualStatus sets an issue's manual status override.
//
// Red and yellow imply reopening the issue upstream when it is closed;
// light and dark green imply closing it when it is open. The remote
// transition is best-effort: a failure is logged, never surfaced, and the
// local status is applied regardless. A full refresh then resyncs upstream
// truth, so the returned list reflects whether the transition stuck.
func (t *Tracker) SetManualStatus(ctx context.Context, owner, repo string, number int, status issue.ManualStatus, state github.StateFilter) ([]issue.Issue, error) {
	if !status.IsValid() && status != issue.StatusNone {
		return nil, fmt.Errorf("invalid manual status %q", status)
	}

	if cached, ok := t.findCached(repo, number); ok {
		switch {
		case status.ImpliesOpen() && cached.State == issue.StateClosed:
			if _, err := t.client.SetIssueState(ctx, owner, repo, number, issue.StateOpen); err != nil {
				log.Printf("warning: reopen %s#%d: %v", repo, number, err)
			}
		case status.ImpliesClosed() && cached.State == issue.StateOpen:
			if _, err := t.client.SetIssueState(ctx, owner, repo, number, issue.StateClosed); err != nil {
				log.Printf("warning: close %s#%d: %v", repo, number, err)
			}
		}
	}

	if _, err := t.updateLocal(repo, number, func(local *issue.Local) {
		local.ManualStatus = status
	}); err != nil {
		return nil, err
	}

	return t.RefreshIssues(ctx, owner, repo, state)
}

// ToggleState closes an open issue or reopens a closed one upstream, then
// re-fetches the issue so the cache reflects upstream truth. Unlike manual
// status transitions, remote failures here are surfaced. Local annotations
// are untouched.
func (t *Tracker) ToggleState(ctx context.Context, owner, repo string, number int) (issue.Issue, error) {
	current, ok := t.findCached(repo, number)
	if !ok {
		fetched, err := t.client.GetIssue(ctx, owner, repo, number)
		if err != nil {
			return issue.Issue{}, err
		}
		current = fetched
	}

	target := issue.StateClosed
	if current.State == issue.StateClosed {
		target = issue.StateOpen
	}

	if _, err := t.client.SetIssueState(ctx, owner, repo, number, target); err != nil {
		return issue.Issue{}, err
	}

	return t.refreshOne(ctx, owner, repo, number)
}

// CreateIssue opens a new issue upstream and adds it to the cache with
// default annotations.
func (t *Tracker) CreateIssue(ctx context.Context, owner, repo, title, body string) (issue.Issue, error) {
	created, err := t.client.CreateIssue(ctx, owner, repo, title, body)
	if err != nil {
		return issue.Issue{}, err
	}
	return t.mergeUpstream(repo, created), nil
}

// UpdateIssue changes an issue's title and body upstream and merges the
// result into the cache.
func (t *Tracker) UpdateIssue(ctx context.Context, owner, repo string, number int, title, body string) (issue.Issue, error) {
	updated, err := t.client.UpdateIssue(ctx, owner, repo, number, title, body)
	if err != nil {
		return issue.Issue{}, err
	}
	return t.mergeUpstream(repo, updated), nil
}

// Comments returns an issue's comments. Pure pass-through.
func (t *Tracker) Comments(ctx context.Context, owner, repo string, number int) ([]issue.Comment, error) {
	return t.client.ListComments(ctx, owner, repo, number)
}

// AddComment posts a comment, then re-fetches the issue so the cached
// comment count stays honest. The re-fetch is best-effort.
func (t *Tracker) AddComment(ctx context.Context, owner, repo string, number int, body string) (issue.Comment, error) {
	comment, err := t.client.CreateComment(ctx, owner, repo, number, body)
	if err != nil {
		return issue.Comment{}, err
	}

	if _, err := t.refreshOne(ctx, owner, repo, number); err != nil {
		log.Printf("warning: refresh %s#%d after comment: %v", repo, number, err)
	}

	return comment, nil
}

func (t *Tracker) findCached(repo string, number int) (issue.Issue, bool) {
	cached, _, err := t.store.Load(store.RepoKey(repo))
	if err != nil {
		log.Printf("warning: read issue cache for %s: %v", repo, err)
		return issue.Issue{}, false
	}
	for _, iss := range cached {
		if iss.Number == number {
			return iss, true
		}
	}
	return issue.Issue{}, false
}

func (t *Tracker) updateLocal(repo string, number int, apply func(*issue.Local)) (issue.Issue, error) {
	repoKey := store.RepoKey(repo)
	cached, ok, err := t.store.Load(repoKey)
	if err != nil {
		return issue.Issue{}, err
	}
	if !ok {
		return issue.Issue{}, fmt.Errorf("%w: %s#%d", ErrIssueNotCached, repo, number)
	}

	for i := range cached {
		if cached[i].Number != number {
			continue
		}
		apply(&cached[i].Local)
		if err := t.store.Save(repoKey, cached); err != nil {
			return issue.Issue{}, fmt.Errorf("save annotations: %w", err)
		}
		return cached[i], nil
	}

	return issue.Issue{}, fmt.Errorf("%w: %s#%d", ErrIssueNotCached, repo, number)
}
