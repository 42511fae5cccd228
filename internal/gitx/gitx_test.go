package gitx

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCloneDir(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https with suffix", "https://github.com/octo/widgets.git", "widgets"},
		{"https without suffix", "https://github.com/octo/widgets", "widgets"},
		{"ssh style", "git@github.com:octo/widgets.git", "widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloneDir("/tmp/src", tt.url)
			want := filepath.Join("/tmp/src", tt.want)
			if got != want {
				t.Errorf("CloneDir() = %q, want %q", got, want)
			}
		})
	}
}

func TestClone_BadURLReportsStderr(t *testing.T) {
	err := Clone(context.Background(), "/nonexistent/repo", t.TempDir()+"/dest")
	if err == nil {
		t.Fatal("expected error cloning nonexistent repo")
	}
}
