// Package orphan preserves local annotations whose issues have disappeared
// from a fetch. The per-repository JSON caches are keyed by repository
// name, so a repository rename or a narrowed fetch silently drops records;
// this archive keeps their annotations by issue ID in a sqlite database
// that is independent of cache file naming. A later fetch that sees the
// issue again recovers its annotations from here.
package orphan

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amonks/issuepad/issue"
)

//go:embed schema.sql
var schemaFS embed.FS

// DefaultFile is the archive filename under the data directory.
const DefaultFile = "orphans.db"

// Archive stores orphaned annotations in a sqlite database.
type Archive struct {
	db *sql.DB
}

// Record is one archived annotation set.
type Record struct {
	IssueID    int64
	RepoKey    string
	Number     int
	Title      string
	Local      issue.Local
	OrphanedAt time.Time
}

// Open opens (creating if necessary) the archive at the given path.
func Open(ctx context.Context, path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Store upserts the annotations of the given issues, keyed by issue ID.
// Issues with all-default annotations are skipped.
func (a *Archive) Store(ctx context.Context, repoKey string, issues []issue.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, iss := range issues {
		if iss.Local.IsZero() {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orphans (issue_id, repo_key, number, title, notes, archived, manual_status, orphaned_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(issue_id) DO UPDATE SET
				repo_key = excluded.repo_key,
				number = excluded.number,
				title = excluded.title,
				notes = excluded.notes,
				archived = excluded.archived,
				manual_status = excluded.manual_status,
				orphaned_at = excluded.orphaned_at`,
			iss.ID, repoKey, iss.Number, iss.Title,
			iss.Local.Notes, boolToInt(iss.Local.Archived), string(iss.Local.ManualStatus), now)
		if err != nil {
			return fmt.Errorf("store orphan %d: %w", iss.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Recover returns the archived annotations for an issue ID and removes
// them from the archive. The second return value is false when the issue
// has no archived annotations.
func (a *Archive) Recover(ctx context.Context, issueID int64) (issue.Local, bool, error) {
	var local issue.Local
	var archived int
	var status string
	err := a.db.QueryRowContext(ctx,
		`SELECT notes, archived, manual_status FROM orphans WHERE issue_id = ?`, issueID).
		Scan(&local.Notes, &archived, &status)
	if err == sql.ErrNoRows {
		return issue.Local{}, false, nil
	}
	if err != nil {
		return issue.Local{}, false, fmt.Errorf("query orphan %d: %w", issueID, err)
	}

	local.Archived = archived != 0
	local.ManualStatus = issue.ManualStatus(status)

	if _, err := a.db.ExecContext(ctx, `DELETE FROM orphans WHERE issue_id = ?`, issueID); err != nil {
		return issue.Local{}, false, fmt.Errorf("delete orphan %d: %w", issueID, err)
	}

	return local, true, nil
}

// List returns all archived records, most recently orphaned first.
func (a *Archive) List(ctx context.Context) ([]Record, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT issue_id, repo_key, number, title, notes, archived, manual_status, orphaned_at
		FROM orphans ORDER BY orphaned_at DESC, issue_id`)
	if err != nil {
		return nil, fmt.Errorf("query orphans: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var archived int
		var status, orphanedAt string
		if err := rows.Scan(&rec.IssueID, &rec.RepoKey, &rec.Number, &rec.Title,
			&rec.Local.Notes, &archived, &status, &orphanedAt); err != nil {
			return nil, fmt.Errorf("scan orphan: %w", err)
		}
		rec.Local.Archived = archived != 0
		rec.Local.ManualStatus = issue.ManualStatus(status)
		if parsed, err := time.Parse(time.RFC3339, orphanedAt); err == nil {
			rec.OrphanedAt = parsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orphans: %w", err)
	}

	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
