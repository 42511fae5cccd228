package orphan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/amonks/issuepad/issue"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()

	archive, err := Open(context.Background(), filepath.Join(t.TempDir(), "orphans.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { archive.Close() })
	return archive
}

func TestArchive_StoreAndRecover(t *testing.T) {
	ctx := context.Background()
	archive := openTestArchive(t)

	issues := []issue.Issue{
		{ID: 1, Number: 1, Title: "annotated", Local: issue.Local{Notes: "keep", ManualStatus: issue.StatusDarkGreen, Archived: true}},
		{ID: 2, Number: 2, Title: "plain"},
	}
	if err := archive.Store(ctx, "widgets", issues); err != nil {
		t.Fatalf("Store: %v", err)
	}

	local, ok, err := archive.Recover(ctx, 1)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if !ok {
		t.Fatal("Recover(1) found nothing")
	}
	want := issue.Local{Notes: "keep", ManualStatus: issue.StatusDarkGreen, Archived: true}
	if local != want {
		t.Errorf("recovered local = %+v, want %+v", local, want)
	}

	// Recovery removes the record.
	if _, ok, err := archive.Recover(ctx, 1); err != nil {
		t.Fatalf("second Recover: %v", err)
	} else if ok {
		t.Error("Recover(1) found a record after recovery")
	}

	// Default annotations are never archived.
	if _, ok, err := archive.Recover(ctx, 2); err != nil {
		t.Fatalf("Recover(2): %v", err)
	} else if ok {
		t.Error("Recover(2) found a record for default annotations")
	}
}

func TestArchive_StoreUpserts(t *testing.T) {
	ctx := context.Background()
	archive := openTestArchive(t)

	first := []issue.Issue{{ID: 7, Number: 7, Title: "one", Local: issue.Local{Notes: "old"}}}
	if err := archive.Store(ctx, "widgets", first); err != nil {
		t.Fatalf("Store: %v", err)
	}

	second := []issue.Issue{{ID: 7, Number: 7, Title: "one", Local: issue.Local{Notes: "new"}}}
	if err := archive.Store(ctx, "gadgets", second); err != nil {
		t.Fatalf("second Store: %v", err)
	}

	local, ok, err := archive.Recover(ctx, 7)
	if err != nil || !ok {
		t.Fatalf("Recover: ok=%v err=%v", ok, err)
	}
	if local.Notes != "new" {
		t.Errorf("notes = %q, want %q", local.Notes, "new")
	}
}

func TestArchive_List(t *testing.T) {
	ctx := context.Background()
	archive := openTestArchive(t)

	issues := []issue.Issue{
		{ID: 1, Number: 1, Title: "a", Local: issue.Local{Notes: "x"}},
		{ID: 2, Number: 2, Title: "b", Local: issue.Local{Archived: true}},
	}
	if err := archive.Store(ctx, "widgets", issues); err != nil {
		t.Fatalf("Store: %v", err)
	}

	records, err := archive.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	for _, rec := range records {
		if rec.RepoKey != "widgets" {
			t.Errorf("RepoKey = %q, want %q", rec.RepoKey, "widgets")
		}
		if rec.OrphanedAt.IsZero() {
			t.Errorf("OrphanedAt not set for issue %d", rec.IssueID)
		}
	}
}
