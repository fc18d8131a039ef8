package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, sessionID string, label string, completedAt time.Time, goalMet bool) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO task_completions (id, session_id, label, completed_at, goal_met)
		VALUES (?, ?, ?, ?, ?)
	`, id, sessionID, label, completedAt.UTC(), boolToInt(goalMet))
	if err != nil {
		return "", fmt.Errorf("completion insert: %w", err)
	}
	return id, nil
}

func (r *CompletionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM task_completions
		WHERE completed_at >= ?
	`, since.UTC())
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

// ListRecent returns up to limit completions, newest first.
func (r *CompletionRepo) ListRecent(ctx context.Context, limit int) ([]TaskCompletion, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, label, completed_at, goal_met
		FROM task_completions
		ORDER BY completed_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []TaskCompletion
	for rows.Next() {
		var (
			tc      TaskCompletion
			session sql.NullString
			goalMet int
		)
		if err := rows.Scan(&tc.ID, &session, &tc.Label, &tc.CompletedAt, &goalMet); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		tc.SessionID = session.String
		tc.GoalMet = goalMet != 0
		out = append(out, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_completions`)
	if err != nil {
		return 0, fmt.Errorf("completion delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("completion delete rows: %w", err)
	}
	return n, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
