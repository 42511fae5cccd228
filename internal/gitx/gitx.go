// Package gitx provides a wrapper around the git CLI for cloning
// repositories to disk.
package gitx

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Clone clones the repository at url into dir. If dir is empty, git's
// default naming applies relative to the working directory.
func Clone(ctx context.Context, url, dir string) error {
	args := []string{"clone", url}
	if dir != "" {
		args = append(args, dir)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone %s: %w: %s", url, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// CloneDir returns the directory git would clone url into, relative to base.
func CloneDir(base, url string) string {
	name := strings.TrimSuffix(filepath.Base(url), ".git")
	return filepath.Join(base, name)
}
