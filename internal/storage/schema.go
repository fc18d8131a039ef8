package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Append-only log of what was done; the plant itself only counts.
		`CREATE TABLE IF NOT EXISTS task_completions (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			goal_met INTEGER DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_task_completions_completed_at ON task_completions(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	alterStmts := []string{
		// Groups completions by the process run that recorded them.
		`ALTER TABLE task_completions ADD COLUMN session_id TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
