package store

import (
	"regexp"
	"strings"
)

var (
	invalidKeyChars = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphens = regexp.MustCompile(`-+`)
)

// RepoKey converts a repository short name to a safe, deterministic cache
// file key. Renaming a repository changes its key and orphans the prior
// cache file; the orphan archive preserves any annotations it held.
func RepoKey(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "/", "-")
	key = strings.ReplaceAll(key, " ", "-")
	key = invalidKeyChars.ReplaceAllString(key, "")
	key = repeatedHyphens.ReplaceAllString(key, "-")
	key = strings.Trim(key, "-")
	if key == "" {
		return "repo"
	}
	return key
}
