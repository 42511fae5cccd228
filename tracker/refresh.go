package tracker

import (
	"context"
	"log"

	"github.com/amonks/issuepad/github"
	"github.com/amonks/issuepad/issue"
	"github.com/amonks/issuepad/store"
)

// RefreshIssues fetches a repository's issues, merges them with the local
// cache, and persists the merged list.
//
// Upstream attributes always come from the fetch; local annotations from
// the prior cache survive the merge. A fetched issue missing from the
// cache first consults the orphan archive, so annotations survive a cache
// file loss or repository rename. Cached issues absent from the fetch are
// dropped from the merged list and their annotations are archived.
//
// Cache and archive write failures degrade to warnings; the merged list is
// always returned when the fetch itself succeeded. If a newer refresh
// completed while this one was in flight, the stale result is returned to
// the caller but not persisted.
func (t *Tracker) RefreshIssues(ctx context.Context, owner, repo string, state github.StateFilter) ([]issue.Issue, error) {
	generation := t.generation.Add(1)

	fetched, err := t.client.ListIssues(ctx, owner, repo, state)
	if err != nil {
		return nil, err
	}

	repoKey := store.RepoKey(repo)
	cached, _, err := t.store.Load(repoKey)
	if err != nil {
		log.Printf("warning: read issue cache for %s: %v", repo, err)
	}

	merged := issue.Reconcile(fetched, cached)
	t.recoverOrphans(ctx, merged)

	if t.generation.Load() != generation {
		// A newer refresh already committed; don't clobber it.
		return merged, nil
	}

	if orphans := issue.Orphans(fetched, cached); len(orphans) > 0 && t.orphans != nil {
		if err := t.orphans.Store(ctx, repoKey, orphans); err != nil {
			log.Printf("warning: archive orphaned annotations for %s: %v", repo, err)
		}
	}

	if err := t.store.Save(repoKey, merged); err != nil {
		log.Printf("warning: save issue cache for %s: %v", repo, err)
	}

	return merged, nil
}

// recoverOrphans fills default-annotation records from the orphan archive.
func (t *Tracker) recoverOrphans(ctx context.Context, merged []issue.Issue) {
	if t.orphans == nil {
		return
	}
	for i := range merged {
		if !merged[i].Local.IsZero() {
			continue
		}
		local, ok, err := t.orphans.Recover(ctx, merged[i].ID)
		if err != nil {
			log.Printf("warning: recover annotations for issue %d: %v", merged[i].ID, err)
			continue
		}
		if ok {
			merged[i].Local = local
		}
	}
}

// refreshOne re-fetches a single issue's upstream attributes and merges
// them into the cache, leaving local annotations untouched.
func (t *Tracker) refreshOne(ctx context.Context, owner, repo string, number int) (issue.Issue, error) {
	fresh, err := t.client.GetIssue(ctx, owner, repo, number)
	if err != nil {
		return issue.Issue{}, err
	}
	return t.mergeUpstream(repo, fresh), nil
}

// mergeUpstream applies one issue's upstream attributes to the cache. The
// cached record keeps its local annotations; an uncached issue is appended
// with defaults.
func (t *Tracker) mergeUpstream(repo string, fresh issue.Issue) issue.Issue {
	repoKey := store.RepoKey(repo)
	cached, _, err := t.store.Load(repoKey)
	if err != nil {
		log.Printf("warning: read issue cache for %s: %v", repo, err)
	}

	found := false
	for i := range cached {
		if cached[i].ID != fresh.ID {
			continue
		}
		fresh.Local = cached[i].Local
		cached[i] = fresh
		found = true
		break
	}
	if !found {
		cached = append(cached, fresh)
	}

	if err := t.store.Save(repoKey, cached); err != nil {
		log.Printf("warning: save issue cache for %s: %v", repo, err)
	}

	return fresh
}
