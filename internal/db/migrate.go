package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id              TEXT PRIMARY KEY,
		short_id        TEXT NOT NULL UNIQUE,
		title           TEXT NOT NULL,
		subject         TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		payout          REAL,
		commission_pct  REAL NOT NULL DEFAULT 0,
		deadline        TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'draft'
		                CHECK(status IN (
		                    'draft','submitted','analyzing','quoted',
		                    'payment_pending','paid','assigning','assigned',
		                    'in_progress','submitted_for_qc','qc_in_progress',
		                    'qc_approved','qc_rejected','delivered',
		                    'revision_requested','in_revision','completed',
		                    'auto_approved','cancelled','refunded')),
		supervisor_id   TEXT NOT NULL DEFAULT '',
		supervisor_name TEXT NOT NULL DEFAULT '',
		doer_id         TEXT NOT NULL DEFAULT '',
		doer_name       TEXT NOT NULL DEFAULT '',
		word_count      INTEGER NOT NULL DEFAULT 0,
		page_count      INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_doer ON projects(doer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_supervisor ON projects(supervisor_id)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id           TEXT PRIMARY KEY,
		role         TEXT NOT NULL CHECK(role IN ('doer','supervisor')),
		display_name TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		activated    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		sender_id  TEXT NOT NULL,
		sender     TEXT NOT NULL CHECK(sender IN ('doer','supervisor')),
		body       TEXT NOT NULL,
		sent_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_project ON messages(project_id)`,
}
