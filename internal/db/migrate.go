package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the full schema. Every statement is idempotent so the
// set can be re-run on open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		course    TEXT NOT NULL,
		year      INTEGER NOT NULL DEFAULT 1,
		semester  INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,

	`CREATE TABLE IF NOT EXISTS completed_modules (
		student_id  TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		module_code TEXT NOT NULL,
		commit_id   TEXT,
		completed_at TEXT NOT NULL DEFAULT (datetime('now')),
		PRIMARY KEY (student_id, module_code)
	)`,

	`CREATE TABLE IF NOT EXISTS commits (
		id          TEXT PRIMARY KEY,
		student_id  TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		source      TEXT NOT NULL CHECK(source IN ('simulation', 'plan', 'import', 'manual')),
		committed_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completed_modules_student
		ON completed_modules(student_id)`,

	`CREATE INDEX IF NOT EXISTS idx_commits_student
		ON commits(student_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
