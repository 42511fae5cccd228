// Package store persists issue annotations and the repository list as JSON
// files under an application-owned data directory. One file per repository,
// keyed by the repository's sanitized short name.
//
// Reads degrade gracefully: a missing or unparsable cache file is treated
// as "no cache" so a corrupt file never blocks a refresh. Writes are
// whole-file overwrites performed atomically via a temp file and rename.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/amonks/issuepad/issue"
)

const (
	// IssuesDir is the subdirectory holding per-repository issue files.
	IssuesDir = "issues"

	// ReposFile is the name of the cached repository list file.
	ReposFile = "repos.json"
)

// Store reads and writes the JSON caches for one data directory.
type Store struct {
	dir string
}

// New creates a store rooted at the given data directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store was created with.
func (s *Store) Dir() string {
	return s.dir
}

// IssuesPath returns the cache file path for a repository key.
func (s *Store) IssuesPath(repoKey string) string {
	return filepath.Join(s.dir, IssuesDir, repoKey+".json")
}

func (s *Store) reposPath() string {
	return filepath.Join(s.dir, ReposFile)
}

// Load reads the cached issues for a repository. The second return value
// is false when no usable cache exists; a corrupt file is logged and
// treated the same as a missing one.
func (s *Store) Load(repoKey string) ([]issue.Issue, bool, error) {
	return loadList[issue.Issue](s.IssuesPath(repoKey))
}

// Save overwrites the cached issues for a repository, creating the issues
// directory if needed.
func (s *Store) Save(repoKey string, issues []issue.Issue) error {
	return saveList(s.IssuesPath(repoKey), issues)
}

// LoadRepos reads the cached repository list.
func (s *Store) LoadRepos() ([]issue.Repository, bool, error) {
	return loadList[issue.Repository](s.reposPath())
}

// SaveRepos overwrites the cached repository list.
func (s *Store) SaveRepos(repos []issue.Repository) error {
	return saveList(s.reposPath(), repos)
}

func loadList[T any](path string) ([]T, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache file: %w", err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("warning: ignoring corrupt cache file %s: %v", path, err)
		return nil, false, nil
	}

	return items, true, nil
}

func saveList[T any](path string, items []T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read cache file: %w", err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp cache file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename cache file: %w", err)
	}

	return nil
}
