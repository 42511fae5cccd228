package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/amonks/issuepad/issue"
)

func testIssues() []issue.Issue {
	created := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	return []issue.Issue{
		{
			ID:        101,
			Number:    1,
			Title:     "flaky login test",
			State:     issue.StateOpen,
			Author:    "octocat",
			Comments:  2,
			CreatedAt: created,
			UpdatedAt: created,
			URL:       "https://github.com/octocat/widgets/issues/1",
			Local:     issue.Local{Notes: "repro on ci only", ManualStatus: issue.StatusYellow},
		},
		{
			ID:        102,
			Number:    2,
			Title:     "add dark mode",
			State:     issue.StateClosed,
			CreatedAt: created.Add(time.Hour),
			UpdatedAt: created.Add(2 * time.Hour),
			Local:     issue.Local{Archived: true},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := New(t.TempDir())

	issues := testIssues()
	if err := s.Save("widgets", issues); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := s.Load("widgets")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported no cache after Save")
	}
	if !reflect.DeepEqual(loaded, issues) {
		t.Errorf("loaded = %+v, want %+v", loaded, issues)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := New(t.TempDir())

	issues, ok, err := s.Load("nothing-here")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || issues != nil {
		t.Errorf("Load(missing) = (%v, %v), want (nil, false)", issues, ok)
	}
}

func TestStore_LoadCorruptTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	path := s.IssuesPath("widgets")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	issues, ok, err := s.Load("widgets")
	if err != nil {
		t.Fatalf("Load on corrupt file returned error: %v", err)
	}
	if ok || issues != nil {
		t.Errorf("Load(corrupt) = (%v, %v), want (nil, false)", issues, ok)
	}
}

func TestStore_SaveEmptyList(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Save("widgets", nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := s.Load("widgets")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported no cache after saving empty list")
	}
	if len(loaded) != 0 {
		t.Errorf("loaded = %+v, want empty", loaded)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := New(t.TempDir())

	issues := testIssues()
	if err := s.Save("widgets", issues); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("widgets", issues[:1]); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, _, err := s.Load("widgets")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("len(loaded) = %d, want 1", len(loaded))
	}
}

func TestStore_SaveAndLoadRepos(t *testing.T) {
	s := New(t.TempDir())

	repos := []issue.Repository{
		{ID: 1, Owner: "octocat", Name: "widgets", FullName: "octocat/widgets", Stars: 12},
	}
	if err := s.SaveRepos(repos); err != nil {
		t.Fatalf("SaveRepos: %v", err)
	}

	loaded, ok, err := s.LoadRepos()
	if err != nil {
		t.Fatalf("LoadRepos: %v", err)
	}
	if !ok {
		t.Fatal("LoadRepos reported no cache after SaveRepos")
	}
	if !reflect.DeepEqual(loaded, repos) {
		t.Errorf("loaded = %+v, want %+v", loaded, repos)
	}
}

func TestRepoKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"widgets", "widgets"},
		{"Widgets", "widgets"},
		{"my widgets", "my-widgets"},
		{"octocat/widgets", "octocat-widgets"},
		{"weird!!name", "weirdname"},
		{"--many---hyphens--", "many-hyphens"},
		{"", "repo"},
		{"!!!", "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepoKey(tt.name); got != tt.want {
				t.Errorf("RepoKey(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRepoKey_Deterministic(t *testing.T) {
	if RepoKey("My Widgets") != RepoKey("My Widgets") {
		t.Error("RepoKey is not deterministic")
	}
}
