package issue

import (
	"testing"
	"time"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		iss  Issue
		want Category
	}{
		{
			name: "manual red overrides closed and archived",
			iss:  Issue{State: StateClosed, Comments: 9, Local: Local{ManualStatus: StatusRed, Archived: true}},
			want: CategoryRed,
		},
		{
			name: "manual yellow",
			iss:  Issue{State: StateClosed, Local: Local{ManualStatus: StatusYellow}},
			want: CategoryYellow,
		},
		{
			name: "manual light green",
			iss:  Issue{State: StateOpen, Local: Local{ManualStatus: StatusLightGreen}},
			want: CategoryLightGreen,
		},
		{
			name: "manual dark green on reopened issue",
			iss:  Issue{State: StateOpen, Comments: 3, Local: Local{ManualStatus: StatusDarkGreen}},
			want: CategoryDarkGreen,
		},
		{
			name: "unknown manual status derives automatically",
			iss:  Issue{State: StateOpen, Comments: 0, Local: Local{ManualStatus: ManualStatus("purple")}},
			want: CategoryRed,
		},
		{
			name: "archived",
			iss:  Issue{State: StateOpen, Comments: 5, Local: Local{Archived: true}},
			want: CategoryDarkGreen,
		},
		{
			name: "closed beats comment count",
			iss:  Issue{State: StateClosed, Comments: 0},
			want: CategoryLightGreen,
		},
		{
			name: "open without comments",
			iss:  Issue{State: StateOpen, Comments: 0},
			want: CategoryRed,
		},
		{
			name: "open with comments",
			iss:  Issue{State: StateOpen, Comments: 3},
			want: CategoryYellow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.iss); got != tt.want {
				t.Errorf("Categorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The refresh scenario from the annotation contract: a fresh issue starts
// red, survives a note through a re-fetch, and projects from the new
// upstream state.
func TestCategorize_RefreshScenario(t *testing.T) {
	fetched := fetchedIssue(42, 42, StateOpen, 0)

	merged := Reconcile([]Issue{fetched}, nil)
	if got := Categorize(merged[0]); got != CategoryRed {
		t.Fatalf("initial category = %q, want %q", got, CategoryRed)
	}

	merged[0].Local.Notes = "investigate"

	refetched := fetchedIssue(42, 42, StateClosed, 1)
	merged = Reconcile([]Issue{refetched}, merged)

	if merged[0].State != StateClosed {
		t.Errorf("state = %q, want %q", merged[0].State, StateClosed)
	}
	if merged[0].Local.Notes != "investigate" {
		t.Errorf("notes = %q, want preserved", merged[0].Local.Notes)
	}
	if got := Categorize(merged[0]); got != CategoryLightGreen {
		t.Errorf("category = %q, want %q", got, CategoryLightGreen)
	}
	if got := Categorize(merged[0]).Rank(); got != 2 {
		t.Errorf("rank = %d, want 2", got)
	}
}

func TestSortByCategory(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	old := Issue{ID: 1, State: StateOpen, Comments: 0, CreatedAt: base}
	newer := Issue{ID: 2, State: StateOpen, Comments: 0, CreatedAt: base.Add(time.Hour)}
	closed := Issue{ID: 3, State: StateClosed, CreatedAt: base}
	discussed := Issue{ID: 4, State: StateOpen, Comments: 2, CreatedAt: base}

	issues := []Issue{closed, newer, discussed, old}
	SortByCategory(issues, true)

	wantOrder := []int64{1, 2, 4, 3}
	for i, want := range wantOrder {
		if issues[i].ID != want {
			t.Errorf("issues[%d].ID = %d, want %d", i, issues[i].ID, want)
		}
	}

	issues = []Issue{closed, old, discussed, newer}
	SortByCategory(issues, false)

	wantOrder = []int64{2, 1, 4, 3}
	for i, want := range wantOrder {
		if issues[i].ID != want {
			t.Errorf("newest-first issues[%d].ID = %d, want %d", i, issues[i].ID, want)
		}
	}
}
