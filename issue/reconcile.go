package issue

// Reconcile merges a freshly fetched issue list with the previously cached
// list for the same repository. The result has one record per element of
// fetched, in fetched's order: upstream attributes come from fetched, and
// local annotations come from the cached record with the same ID when one
// exists, otherwise they default to the zero Local.
//
// Reconcile is pure and total. Issues present only in cached are dropped
// from the result; callers that want to keep their annotations should
// archive Orphans separately. If cached somehow contains duplicate IDs,
// the last occurrence wins.
func Reconcile(fetched, cached []Issue) []Issue {
	localByID := make(map[int64]Local, len(cached))
	for _, prior := range cached {
		localByID[prior.ID] = prior.Local
	}

	merged := make([]Issue, len(fetched))
	for i, fresh := range fetched {
		fresh.Local = localByID[fresh.ID]
		merged[i] = fresh
	}
	return merged
}

// Orphans returns the cached issues that are absent from fetched and carry
// non-default annotations. These are the records Reconcile drops.
func Orphans(fetched, cached []Issue) []Issue {
	fetchedIDs := make(map[int64]bool, len(fetched))
	for _, fresh := range fetched {
		fetchedIDs[fresh.ID] = true
	}

	var orphans []Issue
	for _, prior := range cached {
		if fetchedIDs[prior.ID] {
			continue
		}
		if prior.Local.IsZero() {
			continue
		}
		orphans = append(orphans, prior)
	}
	return orphans
}
