package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Repos bundles the repositories bound to a single transaction.
type Repos struct {
	Records     *RecordRepo
	Completions *CompletionRepo
}

// WithTx runs fn inside a SQL transaction with repos bound to it.
func WithTx(ctx context.Context, db *sql.DB, fn func(r Repos) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	repos := Repos{
		Records:     NewRecordRepo(tx),
		Completions: NewCompletionRepo(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
